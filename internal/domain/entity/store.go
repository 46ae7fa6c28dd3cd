package entity

import "time"

// Store representa una tienda física con su propio contador de stock por producto.
type Store struct {
	ID        string
	Name      string
	Address   string
	IsDefault bool
	CreatedAt time.Time
}

// Stock cantidad actual de un producto en una tienda (fila materializada).
type Stock struct {
	ProductID string
	StoreID   string
	Quantity  int64
	UpdatedAt time.Time
}
