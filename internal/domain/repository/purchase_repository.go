package repository

import (
	"context"

	"github.com/jhoicas/tienda-pos/internal/domain/entity"
)

// PurchaseRepository define el puerto de persistencia para compras.
// Los documentos cancelados se conservan: no hay borrado físico de históricos.
type PurchaseRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Purchase, error)
	List(ctx context.Context) ([]*entity.Purchase, error)
	// Save inserta o reemplaza el documento por ID.
	Save(ctx context.Context, p *entity.Purchase) error
}

// TransferRepository define el puerto de persistencia para traslados.
type TransferRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Transfer, error)
	List(ctx context.Context) ([]*entity.Transfer, error)
	Save(ctx context.Context, t *entity.Transfer) error
}
