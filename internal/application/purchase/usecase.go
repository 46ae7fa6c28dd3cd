// Package purchase implementa el ciclo de vida de compras: alta, edición y
// reversa. Nunca escribe cantidades directamente; toda mutación de stock pasa
// por el planificador de movimientos y el libro de stock.
package purchase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-pos/internal/application/dto"
	"github.com/jhoicas/tienda-pos/internal/application/ledger"
	"github.com/jhoicas/tienda-pos/internal/domain"
	"github.com/jhoicas/tienda-pos/internal/domain/costing"
	"github.com/jhoicas/tienda-pos/internal/domain/entity"
	"github.com/jhoicas/tienda-pos/internal/domain/planner"
	"github.com/jhoicas/tienda-pos/internal/domain/repository"
	"github.com/jhoicas/tienda-pos/pkg/logger"
)

// UseCase gestiona la colección de compras y orquesta libro + planificador.
type UseCase struct {
	stockLedger  *ledger.StockLedger
	purchaseRepo repository.PurchaseRepository
	productRepo  repository.ProductRepository
	storeRepo    repository.StoreRepository
	log          *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	stockLedger *ledger.StockLedger,
	purchaseRepo repository.PurchaseRepository,
	productRepo repository.ProductRepository,
	storeRepo repository.StoreRepository,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		stockLedger:  stockLedger,
		purchaseRepo: purchaseRepo,
		productRepo:  productRepo,
		storeRepo:    storeRepo,
		log:          log,
	}
}

// Create registra una compra recibida: suma cada ítem al stock de la tienda
// destino en un solo lote, pliega el costo de entrada en el costo promedio
// ponderado de cada producto y persiste el documento en estado completed.
func (uc *UseCase) Create(ctx context.Context, in dto.CreatePurchaseRequest) (*entity.Purchase, error) {
	p, err := uc.build(ctx, uuid.New().String(), in, time.Now())
	if err != nil {
		return nil, err
	}

	newCosts, err := uc.computeCosts(p)
	if err != nil {
		return nil, err
	}

	movs := planner.PurchaseCreate(p)
	if err := uc.stockLedger.Apply(ctx, movs); err != nil {
		return nil, err
	}
	for productID, cost := range newCosts {
		if err := uc.productRepo.UpdateCost(productID, cost); err != nil {
			uc.log.Warn().Err(err).Str("product_id", productID).Msg("no se pudo actualizar el costo promedio")
		}
	}

	if err := uc.purchaseRepo.Save(ctx, p); err != nil {
		uc.compensate(ctx, planner.PurchaseRevert(p), p.ID)
		return nil, err
	}
	return p, nil
}

// Revert cancela una compra completed aplicando el lote inverso exacto.
// La reversa NO es idempotente en el libro: se bloquea por estado antes de
// planificar para que una doble reversa no descuente dos veces.
func (uc *UseCase) Revert(ctx context.Context, id string) (*entity.Purchase, error) {
	p, err := uc.purchaseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if p.Status != entity.StatusCompleted {
		return nil, domain.ErrConflict
	}

	movs := planner.PurchaseRevert(p)
	if err := uc.stockLedger.Apply(ctx, movs); err != nil {
		return nil, err
	}

	p.Status = entity.StatusCancelled
	if err := uc.purchaseRepo.Save(ctx, p); err != nil {
		uc.compensate(ctx, planner.PurchaseCreate(p), p.ID)
		return nil, err
	}
	return p, nil
}

// Edit reemplaza una compra por sus nuevos datos: reversa del documento
// original más alta del nuevo, en UN solo lote contra el libro (cada fase usa
// la tienda de su propio documento). El estado queda forzado a completed.
// Solo se editan documentos completed: editar uno cancelled retornaría su
// stock "re-agregado" sin que la reversa lo hubiera repuesto, así que se
// rechaza con ErrConflict.
func (uc *UseCase) Edit(ctx context.Context, id string, in dto.CreatePurchaseRequest) (*entity.Purchase, error) {
	original, err := uc.purchaseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if original == nil {
		return nil, domain.ErrNotFound
	}
	if original.Status != entity.StatusCompleted {
		return nil, domain.ErrConflict
	}

	edited, err := uc.build(ctx, original.ID, in, original.CreatedAt)
	if err != nil {
		return nil, err
	}

	movs := planner.PurchaseEdit(original, edited)
	if err := uc.stockLedger.Apply(ctx, movs); err != nil {
		return nil, err
	}

	if err := uc.purchaseRepo.Save(ctx, edited); err != nil {
		uc.compensate(ctx, planner.PurchaseEdit(edited, original), edited.ID)
		return nil, err
	}
	return edited, nil
}

// GetByID obtiene una compra.
func (uc *UseCase) GetByID(ctx context.Context, id string) (*entity.Purchase, error) {
	return uc.purchaseRepo.GetByID(ctx, id)
}

// List lista todas las compras (completadas y canceladas).
func (uc *UseCase) List(ctx context.Context) ([]*entity.Purchase, error) {
	return uc.purchaseRepo.List(ctx)
}

// build valida la petición y arma el documento con subtotales y total.
func (uc *UseCase) build(ctx context.Context, id string, in dto.CreatePurchaseRequest, createdAt time.Time) (*entity.Purchase, error) {
	if in.StoreID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	store, err := uc.storeRepo.GetByID(in.StoreID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrNotFound
	}

	date := in.Date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	p := &entity.Purchase{
		ID:         id,
		Date:       date,
		StoreID:    in.StoreID,
		SupplierID: in.SupplierID,
		Status:     entity.StatusCompleted,
		CreatedAt:  createdAt,
		Total:      decimal.Zero,
	}
	for _, it := range in.Items {
		if it.ProductID == "" || it.Quantity <= 0 || it.UnitCost.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product, err := uc.productRepo.GetByID(it.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrNotFound
		}
		subtotal := it.UnitCost.Mul(decimal.NewFromInt(it.Quantity))
		p.Items = append(p.Items, entity.PurchaseItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitCost:  it.UnitCost,
			Subtotal:  subtotal,
		})
		p.Total = p.Total.Add(subtotal)
	}
	return p, nil
}

// computeCosts calcula el costo promedio ponderado por producto con el stock
// global previo al lote. Solo se pliega en el alta; la reversa no lo deshace.
func (uc *UseCase) computeCosts(p *entity.Purchase) (map[string]decimal.Decimal, error) {
	costs := make(map[string]decimal.Decimal, len(p.Items))
	for _, it := range p.Items {
		product, err := uc.productRepo.GetByID(it.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrNotFound
		}
		costs[it.ProductID] = costing.WeightedAverage(product.GlobalStock, product.Cost, it.Quantity, it.UnitCost)
	}
	return costs, nil
}

// compensate aplica el lote inverso cuando la persistencia del documento falla
// después de que el libro ya aplicó los movimientos. Mejor esfuerzo: si también
// falla solo queda el log.
func (uc *UseCase) compensate(ctx context.Context, inverse []entity.Movement, purchaseID string) {
	if err := uc.stockLedger.Apply(ctx, inverse); err != nil {
		uc.log.Error().Err(err).Str("purchase_id", purchaseID).
			Msg("compensación de stock fallida: libro inconsistente con los documentos")
	}
}
