package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-pos/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByBarcode(barcode string) (*entity.Product, error)
	GetByName(name string) (*entity.Product, error)
	Update(product *entity.Product) error
	UpdateCost(productID string, cost decimal.Decimal) error
	// UpdateGlobalStock escribe el stock global derivado (suma por tiendas).
	// Solo lo invoca el libro de stock al cierre de un lote.
	UpdateGlobalStock(productID string, total int64) error
	// List pagina el catálogo filtrado por q (Product.MatchesQuery); el filtro
	// se aplica ANTES de paginar y total es el tamaño del conjunto filtrado.
	List(q string, limit, offset int) (items []*entity.Product, total int, err error)
	Delete(id string) error
}
