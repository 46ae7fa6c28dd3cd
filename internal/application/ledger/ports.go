package ledger

import (
	"context"

	"github.com/jhoicas/tienda-pos/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que un lote de movimientos se
// aplica completo o no se aplica: la aplicación parcial es imposible en
// la capa del libro.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		stockRepo repository.StockRepository,
		productRepo repository.ProductRepository,
	) error) error
}
