package blobstore

import (
	"context"

	"github.com/jhoicas/tienda-pos/internal/domain"
	"github.com/jhoicas/tienda-pos/internal/domain/entity"
	"github.com/jhoicas/tienda-pos/internal/domain/repository"
)

var _ repository.PriceRuleRepository = (*PriceRuleRepo)(nil)

// PriceRuleRepo colección de reglas de precio sobre el almacén de documentos.
type PriceRuleRepo struct {
	docs repository.DocumentStore
}

// NewPriceRuleRepository construye el adaptador.
func NewPriceRuleRepository(docs repository.DocumentStore) *PriceRuleRepo {
	return &PriceRuleRepo{docs: docs}
}

func (r *PriceRuleRepo) loadAll(ctx context.Context) ([]*entity.PriceRule, error) {
	var all []*entity.PriceRule
	if _, err := r.docs.Load(ctx, keyPriceRules, &all); err != nil {
		return nil, err
	}
	return all, nil
}

// GetByID devuelve la regla o nil si no existe.
func (r *PriceRuleRepo) GetByID(ctx context.Context, id string) (*entity.PriceRule, error) {
	all, err := r.loadAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, rule := range all {
		if rule.ID == id {
			return rule, nil
		}
	}
	return nil, nil
}

// List devuelve la colección completa.
func (r *PriceRuleRepo) List(ctx context.Context) ([]*entity.PriceRule, error) {
	return r.loadAll(ctx)
}

// Save inserta o reemplaza por ID y reescribe el documento completo.
func (r *PriceRuleRepo) Save(ctx context.Context, rule *entity.PriceRule) error {
	all, err := r.loadAll(ctx)
	if err != nil {
		return err
	}
	replaced := false
	for i := range all {
		if all[i].ID == rule.ID {
			all[i] = rule
			replaced = true
			break
		}
	}
	if !replaced {
		all = append(all, rule)
	}
	return r.docs.Save(ctx, keyPriceRules, all)
}

// Delete elimina una regla por ID.
func (r *PriceRuleRepo) Delete(ctx context.Context, id string) error {
	all, err := r.loadAll(ctx)
	if err != nil {
		return err
	}
	for i := range all {
		if all[i].ID == id {
			all = append(all[:i], all[i+1:]...)
			return r.docs.Save(ctx, keyPriceRules, all)
		}
	}
	return domain.ErrNotFound
}

var _ repository.CartRepository = (*CartRepo)(nil)

// CartRepo el carrito en curso como documento único.
type CartRepo struct {
	docs repository.DocumentStore
}

// NewCartRepository construye el adaptador.
func NewCartRepository(docs repository.DocumentStore) *CartRepo {
	return &CartRepo{docs: docs}
}

// Load devuelve el carrito persistido o nil si nunca se ha guardado.
func (r *CartRepo) Load(ctx context.Context) (*entity.Cart, error) {
	var c entity.Cart
	found, err := r.docs.Load(ctx, keyCart, &c)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &c, nil
}

// Save reescribe el documento del carrito.
func (r *CartRepo) Save(ctx context.Context, c *entity.Cart) error {
	return r.docs.Save(ctx, keyCart, c)
}
