package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de compras y traslados. No hay más transiciones:
// crear siempre inicia en completed; revert pasa a cancelled; editar fuerza completed.
const (
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Purchase una compra recibida en una tienda destino.
// Invariante: mientras está completed, la cantidad de cada ítem fue sumada
// exactamente una vez al stock de StoreID.
type Purchase struct {
	ID         string          `json:"id"`
	Date       string          `json:"date"` // fecha del documento (YYYY-MM-DD)
	StoreID    string          `json:"store_id"`
	SupplierID string          `json:"supplier_id"`
	Items      []PurchaseItem  `json:"items"`
	Total      decimal.Decimal `json:"total"`
	Status     string          `json:"status"`
	CreatedAt  time.Time       `json:"created_at"`
}

// PurchaseItem línea de una compra.
type PurchaseItem struct {
	ProductID string          `json:"product_id"`
	Quantity  int64           `json:"quantity"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}
