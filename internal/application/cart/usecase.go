// Package cart implementa el motor de precios de la venta en curso: líneas,
// descomposición de combos, cadena de prioridad de precios, descuentos,
// reglas de precio y cierre de venta.
package cart

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-pos/internal/application/dto"
	"github.com/jhoicas/tienda-pos/internal/application/ledger"
	"github.com/jhoicas/tienda-pos/internal/domain"
	"github.com/jhoicas/tienda-pos/internal/domain/entity"
	"github.com/jhoicas/tienda-pos/internal/domain/formula"
	"github.com/jhoicas/tienda-pos/internal/domain/planner"
	"github.com/jhoicas/tienda-pos/internal/domain/pricing"
	"github.com/jhoicas/tienda-pos/internal/domain/repository"
	"github.com/jhoicas/tienda-pos/pkg/logger"
)

// UseCase es el dueño exclusivo de las líneas del carrito durante la venta.
// Cada mutación re-resuelve el precio efectivo de la línea afectada de forma
// explícita (pricing.Resolve) y reescribe el documento del carrito completo.
type UseCase struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	stockRepo   repository.StockRepository
	storeRepo   repository.StoreRepository
	ruleRepo    repository.PriceRuleRepository
	stockLedger *ledger.StockLedger
	log         *logger.Logger
}

// NewUseCase construye el motor del carrito.
func NewUseCase(
	cartRepo repository.CartRepository,
	productRepo repository.ProductRepository,
	stockRepo repository.StockRepository,
	storeRepo repository.StoreRepository,
	ruleRepo repository.PriceRuleRepository,
	stockLedger *ledger.StockLedger,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		stockRepo:   stockRepo,
		storeRepo:   storeRepo,
		ruleRepo:    ruleRepo,
		stockLedger: stockLedger,
		log:         log,
	}
}

// Get devuelve el estado actual del carrito.
func (uc *UseCase) Get(ctx context.Context) (*dto.CartResponse, error) {
	c, err := uc.load(ctx)
	if err != nil {
		return nil, err
	}
	return uc.toResponse(c), nil
}

// AddProduct agrega un producto por id o código de barras. Un combo nunca
// entra como línea propia: se descompone en sus componentes, cada uno con
// precio especial derivado del paquete (precio del paquete / cantidad del
// componente, o el precio base del componente si el paquete no fija precio).
// Si la línea ya existe se suma la cantidad y, cuando el alta trae precio
// especial, se re-aplica el valor.
func (uc *UseCase) AddProduct(ctx context.Context, in dto.AddToCartRequest) (*dto.CartResponse, error) {
	product, err := uc.findProduct(in.ProductID, in.Barcode)
	if err != nil {
		return nil, err
	}

	qty := in.Quantity
	if qty <= 0 {
		qty = 1
	}

	c, err := uc.load(ctx)
	if err != nil {
		return nil, err
	}

	if product.IsBundle() {
		for _, comp := range product.Components {
			component, err := uc.productRepo.GetByID(comp.ProductID)
			if err != nil {
				return nil, err
			}
			if component == nil {
				return nil, domain.ErrNotFound
			}
			special := pricing.BundleUnitPrice(comp, component.Price)
			uc.addOrMerge(c, component, comp.Quantity*qty, &special)
		}
	} else {
		uc.addOrMerge(c, product, qty, nil)
	}

	if err := uc.cartRepo.Save(ctx, c); err != nil {
		return nil, err
	}
	return uc.toResponse(c), nil
}

// UpdateLine aplica las mutaciones presentes en la petición sobre una línea y
// re-resuelve su precio una sola vez al final.
func (uc *UseCase) UpdateLine(ctx context.Context, productID string, in dto.UpdateCartLineRequest) (*dto.CartResponse, error) {
	c, err := uc.load(ctx)
	if err != nil {
		return nil, err
	}
	i := c.FindLine(productID)
	if i < 0 {
		return nil, domain.ErrNotFound
	}
	line := &c.Lines[i]

	if in.Quantity != nil {
		// Set directo: piso en 1, nunca elimina la línea (quitar es acción aparte).
		q := *in.Quantity
		if q < 1 {
			q = 1
		}
		line.Quantity = q
	}
	if in.AdjustQuantity != nil {
		// Delta +1/-1: si cae bajo 1 se ignora y la línea queda igual.
		if q := line.Quantity + *in.AdjustQuantity; q >= 1 {
			line.Quantity = q
		}
	}
	if in.ManualPrice != nil {
		if in.ManualPrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		mp := *in.ManualPrice
		line.ManualPrice = &mp
	}
	if in.Discount != nil {
		if in.Discount.Type != entity.DiscountPercent && in.Discount.Type != entity.DiscountAmount {
			return nil, domain.ErrInvalidInput
		}
		d := *in.Discount
		line.Discount = &d
	}
	if in.ClearDiscount {
		line.Discount = nil
	}
	if in.UseBundlePrice != nil {
		// Alternar combo/normal re-dispara la cadena de prioridad; un precio
		// manual presente sigue ganando, no se limpia automáticamente.
		line.IsSpecialPrice = *in.UseBundlePrice && line.SpecialPrice != nil
	}

	line.Price = pricing.Resolve(line)

	if err := uc.cartRepo.Save(ctx, c); err != nil {
		return nil, err
	}
	return uc.toResponse(c), nil
}

// ApplyRule evalúa la fórmula de la regla contra el costo y el precio base de
// la línea. Si el resultado es válido (>= 0) fija el precio manual y limpia el
// descuento (regla y descuento son excluyentes en esa aplicación). Si la
// fórmula falla la línea queda intacta.
func (uc *UseCase) ApplyRule(ctx context.Context, productID, ruleID string) (*dto.CartResponse, error) {
	c, err := uc.load(ctx)
	if err != nil {
		return nil, err
	}
	i := c.FindLine(productID)
	if i < 0 {
		return nil, domain.ErrNotFound
	}
	line := &c.Lines[i]

	rule, err := uc.ruleRepo.GetByID(ctx, ruleID)
	if err != nil {
		return nil, err
	}
	if rule == nil {
		return nil, domain.ErrNotFound
	}
	if !rule.AppliesTo(line.Category, line.IsSpecialPrice) {
		return nil, domain.ErrInvalidInput
	}

	result, err := formula.Eval(rule.Formula, line.Cost, line.OriginalPrice)
	if err != nil {
		// Sin cambio de precio: la línea no se toca.
		return nil, err
	}

	line.ManualPrice = &result
	line.Discount = nil
	line.Price = pricing.Resolve(line)

	if err := uc.cartRepo.Save(ctx, c); err != nil {
		return nil, err
	}
	return uc.toResponse(c), nil
}

// RulesForLine lista las reglas visibles para una línea: filtro por categoría
// y, para líneas con precio de combo, solo reglas que admiten combos.
func (uc *UseCase) RulesForLine(ctx context.Context, productID string) ([]*entity.PriceRule, error) {
	c, err := uc.load(ctx)
	if err != nil {
		return nil, err
	}
	i := c.FindLine(productID)
	if i < 0 {
		return nil, domain.ErrNotFound
	}
	line := c.Lines[i]

	all, err := uc.ruleRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	visible := make([]*entity.PriceRule, 0, len(all))
	for _, r := range all {
		if r.AppliesTo(line.Category, line.IsSpecialPrice) {
			visible = append(visible, r)
		}
	}
	return visible, nil
}

// RemoveLine elimina una línea (la única forma de llevarla a cero).
func (uc *UseCase) RemoveLine(ctx context.Context, productID string) (*dto.CartResponse, error) {
	c, err := uc.load(ctx)
	if err != nil {
		return nil, err
	}
	i := c.FindLine(productID)
	if i < 0 {
		return nil, domain.ErrNotFound
	}
	c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
	if err := uc.cartRepo.Save(ctx, c); err != nil {
		return nil, err
	}
	return uc.toResponse(c), nil
}

// Clear vacía el carrito sin tocar stock.
func (uc *UseCase) Clear(ctx context.Context) error {
	c, err := uc.load(ctx)
	if err != nil {
		return err
	}
	c.Lines = nil
	return uc.cartRepo.Save(ctx, c)
}

// SetStore cambia la tienda activa. Solo con el carrito vacío: las líneas ya
// agregadas descargarían stock de una tienda distinta a la consultada.
func (uc *UseCase) SetStore(ctx context.Context, storeID string) error {
	store, err := uc.storeRepo.GetByID(storeID)
	if err != nil {
		return err
	}
	if store == nil {
		return domain.ErrNotFound
	}
	c, err := uc.load(ctx)
	if err != nil {
		return err
	}
	if len(c.Lines) > 0 {
		return domain.ErrConflict
	}
	c.StoreID = storeID
	return uc.cartRepo.Save(ctx, c)
}

// Checkout cierra la venta: re-resuelve cada línea, descarga el stock de la
// tienda activa en un solo lote (-cantidad por línea), limpia el carrito y
// entrega el resumen al subsistema de ventas/recibos.
func (uc *UseCase) Checkout(ctx context.Context) (*entity.SaleSummary, error) {
	c, err := uc.load(ctx)
	if err != nil {
		return nil, err
	}
	if len(c.Lines) == 0 {
		return nil, domain.ErrEmptyCart
	}

	summary := &entity.SaleSummary{StoreID: c.StoreID, Total: decimal.Zero}
	for i := range c.Lines {
		line := &c.Lines[i]
		line.Price = pricing.Resolve(line)
		subtotal := line.Price.Mul(decimal.NewFromInt(line.Quantity))
		summary.Lines = append(summary.Lines, entity.SaleLine{
			ProductID:      line.ProductID,
			ProductName:    line.Name,
			Quantity:       line.Quantity,
			UnitPrice:      line.Price,
			Subtotal:       subtotal,
			IsSpecialPrice: line.IsSpecialPrice,
		})
		summary.Total = summary.Total.Add(subtotal)
	}

	movs := planner.Checkout(c.Lines, c.StoreID)
	if err := uc.stockLedger.Apply(ctx, movs); err != nil {
		return nil, err
	}

	sold := c.Lines
	c.Lines = nil
	if err := uc.cartRepo.Save(ctx, c); err != nil {
		// Reponer el stock descargado; si también falla solo queda el log.
		inverse := make([]entity.Movement, 0, len(sold))
		for _, l := range sold {
			inverse = append(inverse, entity.Movement{ProductID: l.ProductID, StoreID: c.StoreID, Delta: l.Quantity})
		}
		if cerr := uc.stockLedger.Apply(ctx, inverse); cerr != nil {
			uc.log.Error().Err(cerr).Msg("compensación de venta fallida: libro inconsistente con el carrito")
		}
		return nil, err
	}
	return summary, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// internos
// ──────────────────────────────────────────────────────────────────────────────

// load carga el carrito; si no existe lo inicializa apuntando a la tienda
// predeterminada del registro.
func (uc *UseCase) load(ctx context.Context) (*entity.Cart, error) {
	c, err := uc.cartRepo.Load(ctx)
	if err != nil {
		return nil, err
	}
	if c == nil {
		c = &entity.Cart{}
	}
	if c.StoreID == "" {
		def, err := uc.storeRepo.Default()
		if err != nil {
			return nil, err
		}
		if def == nil {
			return nil, domain.ErrNotFound
		}
		c.StoreID = def.ID
	}
	return c, nil
}

func (uc *UseCase) findProduct(id, barcode string) (*entity.Product, error) {
	var (
		product *entity.Product
		err     error
	)
	switch {
	case id != "":
		product, err = uc.productRepo.GetByID(id)
	case barcode != "":
		product, err = uc.productRepo.GetByBarcode(barcode)
	default:
		return nil, domain.ErrInvalidInput
	}
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return product, nil
}

// addOrMerge inserta la línea o suma cantidad a la existente. specialPrice no
// nil marca la línea en modo combo y re-aplica el valor derivado; la cantidad
// nunca baja por esta vía (solo quitar elimina líneas).
func (uc *UseCase) addOrMerge(c *entity.Cart, product *entity.Product, qty int64, specialPrice *decimal.Decimal) {
	if i := c.FindLine(product.ID); i >= 0 {
		line := &c.Lines[i]
		line.Quantity += qty
		if specialPrice != nil {
			sp := *specialPrice
			line.SpecialPrice = &sp
			line.IsSpecialPrice = true
		}
		line.Price = pricing.Resolve(line)
		return
	}

	line := entity.CartLine{
		ProductID:     product.ID,
		Barcode:       product.Barcode,
		Name:          product.Name,
		Category:      product.Category,
		Cost:          product.Cost,
		Quantity:      qty,
		OriginalPrice: product.Price, // congelado al momento de agregar
	}
	if specialPrice != nil {
		sp := *specialPrice
		line.SpecialPrice = &sp
		line.IsSpecialPrice = true
	}
	line.Price = pricing.Resolve(&line)
	c.Lines = append(c.Lines, line)
}

// toResponse arma la vista del carrito con la advertencia consultiva de stock:
// si la cantidad pedida supera la disponible en la tienda activa se marca la
// línea, pero la venta nunca se bloquea por sobregiro.
func (uc *UseCase) toResponse(c *entity.Cart) *dto.CartResponse {
	out := &dto.CartResponse{StoreID: c.StoreID, Total: decimal.Zero}
	for _, line := range c.Lines {
		warning := false
		if stock, err := uc.stockRepo.Get(line.ProductID, c.StoreID); err == nil && stock != nil {
			warning = stock.Quantity < line.Quantity
		}
		out.Lines = append(out.Lines, dto.CartLineResponse{CartLine: line, StockWarning: warning})
		out.Total = out.Total.Add(line.Price.Mul(decimal.NewFromInt(line.Quantity)))
	}
	return out
}
