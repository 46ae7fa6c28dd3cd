package dto

import "github.com/shopspring/decimal"

// PurchaseItemInput línea de compra en una petición.
type PurchaseItemInput struct {
	ProductID string          `json:"product_id" validate:"required"`
	Quantity  int64           `json:"quantity" validate:"required,gt=0"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
}

// CreatePurchaseRequest entrada para registrar una compra recibida.
type CreatePurchaseRequest struct {
	Date       string              `json:"date"`
	StoreID    string              `json:"store_id" validate:"required"`
	SupplierID string              `json:"supplier_id"`
	Items      []PurchaseItemInput `json:"items" validate:"required,min=1"`
}

// TransferItemInput línea de traslado en una petición.
type TransferItemInput struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int64  `json:"quantity" validate:"required,gt=0"`
}

// CreateTransferRequest entrada para registrar un traslado entre tiendas.
type CreateTransferRequest struct {
	Date        string              `json:"date"`
	FromStoreID string              `json:"from_store_id" validate:"required"`
	ToStoreID   string              `json:"to_store_id" validate:"required"`
	Items       []TransferItemInput `json:"items" validate:"required,min=1"`
}
