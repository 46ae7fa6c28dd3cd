// Package transfer implementa el ciclo de vida de traslados entre tiendas.
// Igual que compras: toda mutación de stock pasa por el planificador y el
// libro, nunca por escritura directa de cantidades.
package transfer

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-pos/internal/application/dto"
	"github.com/jhoicas/tienda-pos/internal/application/ledger"
	"github.com/jhoicas/tienda-pos/internal/domain"
	"github.com/jhoicas/tienda-pos/internal/domain/entity"
	"github.com/jhoicas/tienda-pos/internal/domain/planner"
	"github.com/jhoicas/tienda-pos/internal/domain/repository"
	"github.com/jhoicas/tienda-pos/pkg/logger"
)

// UseCase gestiona la colección de traslados.
type UseCase struct {
	stockLedger  *ledger.StockLedger
	transferRepo repository.TransferRepository
	productRepo  repository.ProductRepository
	storeRepo    repository.StoreRepository
	log          *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	stockLedger *ledger.StockLedger,
	transferRepo repository.TransferRepository,
	productRepo repository.ProductRepository,
	storeRepo repository.StoreRepository,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		stockLedger:  stockLedger,
		transferRepo: transferRepo,
		productRepo:  productRepo,
		storeRepo:    storeRepo,
		log:          log,
	}
}

// Create registra un traslado: por cada ítem resta en origen y suma en destino
// en un solo lote (movimiento neto cero entre tiendas) y persiste el documento
// en completed. Las líneas se valoran al costo promedio actual del producto.
func (uc *UseCase) Create(ctx context.Context, in dto.CreateTransferRequest) (*entity.Transfer, error) {
	t, err := uc.build(ctx, uuid.New().String(), in, time.Now())
	if err != nil {
		return nil, err
	}

	if err := uc.stockLedger.Apply(ctx, planner.TransferCreate(t)); err != nil {
		return nil, err
	}

	if err := uc.transferRepo.Save(ctx, t); err != nil {
		uc.compensate(ctx, planner.TransferRevert(t), t.ID)
		return nil, err
	}
	return t, nil
}

// Revert cancela un traslado completed: repone el origen y descuenta el
// destino. Bloqueado por estado para impedir la doble reversa.
func (uc *UseCase) Revert(ctx context.Context, id string) (*entity.Transfer, error) {
	t, err := uc.transferRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}
	if t.Status != entity.StatusCompleted {
		return nil, domain.ErrConflict
	}

	if err := uc.stockLedger.Apply(ctx, planner.TransferRevert(t)); err != nil {
		return nil, err
	}

	t.Status = entity.StatusCancelled
	if err := uc.transferRepo.Save(ctx, t); err != nil {
		uc.compensate(ctx, planner.TransferCreate(t), t.ID)
		return nil, err
	}
	return t, nil
}

// Edit reversa con el origen/destino originales y alta con los nuevos, en UN
// solo lote. Solo documentos completed son editables (ver compras).
func (uc *UseCase) Edit(ctx context.Context, id string, in dto.CreateTransferRequest) (*entity.Transfer, error) {
	original, err := uc.transferRepo.GetByID(ctx, id)
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

	if err := uc.stockLedger.Apply(ctx, planner.TransferEdit(original, edited)); err != nil {
		return nil, err
	}

	if err := uc.transferRepo.Save(ctx, edited); err != nil {
		uc.compensate(ctx, planner.TransferEdit(edited, original), edited.ID)
		return nil, err
	}
	return edited, nil
}

// GetByID obtiene un traslado.
func (uc *UseCase) GetByID(ctx context.Context, id string) (*entity.Transfer, error) {
	return uc.transferRepo.GetByID(ctx, id)
}

// List lista todos los traslados.
func (uc *UseCase) List(ctx context.Context) ([]*entity.Transfer, error) {
	return uc.transferRepo.List(ctx)
}

func (uc *UseCase) build(ctx context.Context, id string, in dto.CreateTransferRequest, createdAt time.Time) (*entity.Transfer, error) {
	if in.FromStoreID == "" || in.ToStoreID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.FromStoreID == in.ToStoreID {
		return nil, domain.ErrSameStore
	}
	from, err := uc.storeRepo.GetByID(in.FromStoreID)
	if err != nil {
		return nil, err
	}
	to, err := uc.storeRepo.GetByID(in.ToStoreID)
	if err != nil {
		return nil, err
	}
	if from == nil || to == nil {
		return nil, domain.ErrNotFound
	}

	date := in.Date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	t := &entity.Transfer{
		ID:          id,
		Date:        date,
		FromStoreID: in.FromStoreID,
		ToStoreID:   in.ToStoreID,
		Status:      entity.StatusCompleted,
		CreatedAt:   createdAt,
		TotalValue:  decimal.Zero,
	}
	for _, it := range in.Items {
		if it.ProductID == "" || it.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
		product, err := uc.productRepo.GetByID(it.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrNotFound
		}
		subtotal := product.Cost.Mul(decimal.NewFromInt(it.Quantity))
		t.Items = append(t.Items, entity.TransferItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitCost:  product.Cost,
			Subtotal:  subtotal,
		})
		t.TotalValue = t.TotalValue.Add(subtotal)
	}
	return t, nil
}

func (uc *UseCase) compensate(ctx context.Context, inverse []entity.Movement, transferID string) {
	if err := uc.stockLedger.Apply(ctx, inverse); err != nil {
		uc.log.Error().Err(err).Str("transfer_id", transferID).
			Msg("compensación de stock fallida: libro inconsistente con los documentos")
	}
}
