package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-pos/internal/domain/entity"
)

// AddToCartRequest entrada para agregar un producto al carrito (por id o código de barras).
type AddToCartRequest struct {
	ProductID string `json:"product_id"`
	Barcode   string `json:"barcode"`
	Quantity  int64  `json:"quantity"` // <= 0 se trata como 1
}

// UpdateCartLineRequest mutaciones sobre una línea. Todos los campos son
// opcionales; se aplican los presentes y se re-resuelve el precio una vez.
type UpdateCartLineRequest struct {
	Quantity       *int64           `json:"quantity"`        // set directo, piso 1
	AdjustQuantity *int64           `json:"adjust_quantity"` // +1/-1; se ignora si cae bajo 1
	ManualPrice    *decimal.Decimal `json:"manual_price"`
	Discount       *entity.Discount `json:"discount"`
	ClearDiscount  bool             `json:"clear_discount"`
	UseBundlePrice *bool            `json:"use_bundle_price"` // alterna precio combo / precio normal
}

// CartLineResponse línea del carrito con la advertencia de stock (consultiva,
// nunca bloquea la venta).
type CartLineResponse struct {
	entity.CartLine
	StockWarning bool `json:"stock_warning,omitempty"`
}

// CartResponse estado del carrito.
type CartResponse struct {
	StoreID string             `json:"store_id"`
	Lines   []CartLineResponse `json:"lines"`
	Total   decimal.Decimal    `json:"total"`
}

// SetCartStoreRequest cambia la tienda activa del carrito (solo con carrito vacío).
type SetCartStoreRequest struct {
	StoreID string `json:"store_id" validate:"required"`
}

// ApplyRuleRequest aplica una regla de precio a una línea.
type ApplyRuleRequest struct {
	RuleID string `json:"rule_id" validate:"required"`
}
