package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/tienda-pos/internal/application/dto"
	"github.com/jhoicas/tienda-pos/internal/domain"
	"github.com/jhoicas/tienda-pos/internal/domain/entity"
	"github.com/jhoicas/tienda-pos/internal/domain/formula"
	"github.com/jhoicas/tienda-pos/internal/domain/repository"
)

// PriceRuleUseCase CRUD de reglas de precio. La fórmula se compila al guardar:
// una regla que no parsea nunca llega a la caja.
type PriceRuleUseCase struct {
	ruleRepo repository.PriceRuleRepository
}

// NewPriceRuleUseCase construye el caso de uso.
func NewPriceRuleUseCase(ruleRepo repository.PriceRuleRepository) *PriceRuleUseCase {
	return &PriceRuleUseCase{ruleRepo: ruleRepo}
}

// Create valida la fórmula y persiste la regla.
func (uc *PriceRuleUseCase) Create(ctx context.Context, in dto.SavePriceRuleRequest) (*entity.PriceRule, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := formula.Validate(in.Formula); err != nil {
		return nil, err
	}
	r := &entity.PriceRule{
		ID:            uuid.New().String(),
		Name:          in.Name,
		Formula:       in.Formula,
		Categories:    in.Categories,
		AllowBundles:  in.AllowBundles,
		AllowDiscount: in.AllowDiscount,
		CreatedAt:     time.Now(),
	}
	if err := uc.ruleRepo.Save(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

// Update reemplaza los campos de una regla existente.
func (uc *PriceRuleUseCase) Update(ctx context.Context, id string, in dto.SavePriceRuleRequest) (*entity.PriceRule, error) {
	r, err := uc.ruleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := formula.Validate(in.Formula); err != nil {
		return nil, err
	}
	r.Name = in.Name
	r.Formula = in.Formula
	r.Categories = in.Categories
	r.AllowBundles = in.AllowBundles
	r.AllowDiscount = in.AllowDiscount
	if err := uc.ruleRepo.Save(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

// GetByID obtiene una regla.
func (uc *PriceRuleUseCase) GetByID(ctx context.Context, id string) (*entity.PriceRule, error) {
	return uc.ruleRepo.GetByID(ctx, id)
}

// List lista todas las reglas.
func (uc *PriceRuleUseCase) List(ctx context.Context) ([]*entity.PriceRule, error) {
	return uc.ruleRepo.List(ctx)
}

// Delete elimina una regla.
func (uc *PriceRuleUseCase) Delete(ctx context.Context, id string) error {
	return uc.ruleRepo.Delete(ctx, id)
}
