package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transfer un traslado de mercancía entre dos tiendas (origen != destino).
// Invariante: mientras está completed, cada ítem fue restado del origen y
// sumado al destino exactamente una vez; el movimiento neto entre tiendas es cero.
type Transfer struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"`
	FromStoreID string          `json:"from_store_id"`
	ToStoreID   string          `json:"to_store_id"`
	Items       []TransferItem  `json:"items"`
	TotalValue  decimal.Decimal `json:"total_value"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
}

// TransferItem línea de un traslado, valorada al costo del producto.
type TransferItem struct {
	ProductID string          `json:"product_id"`
	Quantity  int64           `json:"quantity"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}
