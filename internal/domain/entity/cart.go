package entity

import "github.com/shopspring/decimal"

// Tipos de descuento por línea.
const (
	DiscountPercent = "percent"
	DiscountAmount  = "amount"
)

// Discount descuento aplicado a una línea del carrito.
type Discount struct {
	Type  string          `json:"type"` // percent | amount
	Value decimal.Decimal `json:"value"`
}

// CartLine una línea de la venta en curso. Snapshot del producto al momento
// de agregarlo: OriginalPrice queda congelado aunque el catálogo cambie.
// Price es el precio efectivo resuelto (manual > especial > original, luego descuento).
type CartLine struct {
	ProductID      string           `json:"product_id"`
	Barcode        string           `json:"barcode"`
	Name           string           `json:"name"`
	Category       string           `json:"category"`
	Cost           decimal.Decimal  `json:"cost"`
	Quantity       int64            `json:"quantity"`
	OriginalPrice  decimal.Decimal  `json:"original_price"`
	SpecialPrice   *decimal.Decimal `json:"special_price,omitempty"` // derivado del combo
	IsSpecialPrice bool             `json:"is_special_price"`
	ManualPrice    *decimal.Decimal `json:"manual_price,omitempty"` // regla o digitado
	Discount       *Discount        `json:"discount,omitempty"`
	Price          decimal.Decimal  `json:"price"`
}

// Cart la venta en composición: líneas más la tienda activa que descargará
// el stock al cierre.
type Cart struct {
	StoreID string     `json:"store_id"`
	Lines   []CartLine `json:"lines"`
}

// FindLine devuelve el índice de la línea del producto, o -1 si no está.
func (c *Cart) FindLine(productID string) int {
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			return i
		}
	}
	return -1
}

// SaleLine línea finalizada que se entrega al subsistema de ventas/recibos.
type SaleLine struct {
	ProductID      string          `json:"product_id"`
	ProductName    string          `json:"product_name"`
	Quantity       int64           `json:"quantity"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	IsSpecialPrice bool            `json:"is_special_price"`
}

// SaleSummary resultado del cierre de venta: líneas y totales calculados.
type SaleSummary struct {
	StoreID string          `json:"store_id"`
	Lines   []SaleLine      `json:"lines"`
	Total   decimal.Decimal `json:"total"`
}
