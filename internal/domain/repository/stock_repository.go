package repository

import "github.com/jhoicas/tienda-pos/internal/domain/entity"

// StockRepository define el puerto para consultar/actualizar stock por tienda+producto.
// Usado dentro de transacciones para garantizar consistencia.
type StockRepository interface {
	Get(productID, storeID string) (*entity.Stock, error)
	Upsert(stock *entity.Stock) error
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE).
	GetForUpdate(productID, storeID string) (*entity.Stock, error)
	// TotalByProduct suma las cantidades del producto en todas las tiendas.
	TotalByProduct(productID string) (int64, error)
	ListByProduct(productID string) ([]*entity.Stock, error)
}
