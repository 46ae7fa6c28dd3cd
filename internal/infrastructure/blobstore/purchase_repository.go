package blobstore

import (
	"context"

	"github.com/jhoicas/tienda-pos/internal/domain/entity"
	"github.com/jhoicas/tienda-pos/internal/domain/repository"
)

// Claves de colección dentro del almacén de documentos.
const (
	keyPurchases  = "purchases"
	keyTransfers  = "transfers"
	keyPriceRules = "price-rules"
	keyCart       = "cart"
)

var _ repository.PurchaseRepository = (*PurchaseRepo)(nil)

// PurchaseRepo colección de compras sobre el almacén de documentos.
type PurchaseRepo struct {
	docs repository.DocumentStore
}

// NewPurchaseRepository construye el adaptador.
func NewPurchaseRepository(docs repository.DocumentStore) *PurchaseRepo {
	return &PurchaseRepo{docs: docs}
}

func (r *PurchaseRepo) loadAll(ctx context.Context) ([]*entity.Purchase, error) {
	var all []*entity.Purchase
	if _, err := r.docs.Load(ctx, keyPurchases, &all); err != nil {
		return nil, err
	}
	return all, nil
}

// GetByID devuelve la compra o nil si no existe.
func (r *PurchaseRepo) GetByID(ctx context.Context, id string) (*entity.Purchase, error) {
	all, err := r.loadAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range all {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

// List devuelve la colección completa.
func (r *PurchaseRepo) List(ctx context.Context) ([]*entity.Purchase, error) {
	return r.loadAll(ctx)
}

// Save inserta o reemplaza por ID y reescribe el documento completo.
func (r *PurchaseRepo) Save(ctx context.Context, p *entity.Purchase) error {
	all, err := r.loadAll(ctx)
	if err != nil {
		return err
	}
	replaced := false
	for i := range all {
		if all[i].ID == p.ID {
			all[i] = p
			replaced = true
			break
		}
	}
	if !replaced {
		all = append(all, p)
	}
	return r.docs.Save(ctx, keyPurchases, all)
}

var _ repository.TransferRepository = (*TransferRepo)(nil)

// TransferRepo colección de traslados sobre el almacén de documentos.
type TransferRepo struct {
	docs repository.DocumentStore
}

// NewTransferRepository construye el adaptador.
func NewTransferRepository(docs repository.DocumentStore) *TransferRepo {
	return &TransferRepo{docs: docs}
}

func (r *TransferRepo) loadAll(ctx context.Context) ([]*entity.Transfer, error) {
	var all []*entity.Transfer
	if _, err := r.docs.Load(ctx, keyTransfers, &all); err != nil {
		return nil, err
	}
	return all, nil
}

// GetByID devuelve el traslado o nil si no existe.
func (r *TransferRepo) GetByID(ctx context.Context, id string) (*entity.Transfer, error) {
	all, err := r.loadAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, t := range all {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, nil
}

// List devuelve la colección completa.
func (r *TransferRepo) List(ctx context.Context) ([]*entity.Transfer, error) {
	return r.loadAll(ctx)
}

// Save inserta o reemplaza por ID y reescribe el documento completo.
func (r *TransferRepo) Save(ctx context.Context, t *entity.Transfer) error {
	all, err := r.loadAll(ctx)
	if err != nil {
		return err
	}
	replaced := false
	for i := range all {
		if all[i].ID == t.ID {
			all[i] = t
			replaced = true
			break
		}
	}
	if !replaced {
		all = append(all, t)
	}
	return r.docs.Save(ctx, keyTransfers, all)
}
