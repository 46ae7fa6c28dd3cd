package repository

import (
	"context"

	"github.com/jhoicas/tienda-pos/internal/domain/entity"
)

// PriceRuleRepository define el puerto de persistencia para reglas de precio.
type PriceRuleRepository interface {
	GetByID(ctx context.Context, id string) (*entity.PriceRule, error)
	List(ctx context.Context) ([]*entity.PriceRule, error)
	Save(ctx context.Context, r *entity.PriceRule) error
	Delete(ctx context.Context, id string) error
}

// CartRepository define el puerto de persistencia del carrito en curso
// (un único documento: la sesión activa es una sola).
type CartRepository interface {
	Load(ctx context.Context) (*entity.Cart, error)
	Save(ctx context.Context, c *entity.Cart) error
}
