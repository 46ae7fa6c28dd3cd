package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-pos/internal/domain/entity"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Barcode    string                   `json:"barcode" validate:"required,min=1,max=100"`
	Name       string                   `json:"name" validate:"required,min=1,max=200"`
	Category   string                   `json:"category"`
	Brand      string                   `json:"brand"`
	Unit       string                   `json:"unit"`
	Cost       decimal.Decimal          `json:"cost"`
	Price      decimal.Decimal          `json:"price"`
	Components []entity.BundleComponent `json:"components"`
}

// UpdateProductRequest entrada para actualizar un producto (sin stock: el
// stock solo cambia vía movimientos).
type UpdateProductRequest struct {
	Barcode    *string                  `json:"barcode" validate:"omitempty,min=1,max=100"`
	Name       *string                  `json:"name" validate:"omitempty,min=1,max=200"`
	Category   *string                  `json:"category"`
	Brand      *string                  `json:"brand"`
	Unit       *string                  `json:"unit"`
	Cost       *decimal.Decimal         `json:"cost"`
	Price      *decimal.Decimal         `json:"price"`
	Components []entity.BundleComponent `json:"components"`
}

// StoreStock cantidad de un producto en una tienda.
type StoreStock struct {
	StoreID  string `json:"store_id"`
	Quantity int64  `json:"quantity"`
}

// ProductResponse salida de un producto con su stock por tienda.
type ProductResponse struct {
	ID          string                   `json:"id"`
	Barcode     string                   `json:"barcode"`
	Name        string                   `json:"name"`
	Category    string                   `json:"category"`
	Brand       string                   `json:"brand"`
	Unit        string                   `json:"unit"`
	Cost        decimal.Decimal          `json:"cost"`
	Price       decimal.Decimal          `json:"price"`
	GlobalStock int64                    `json:"global_stock"`
	Stocks      []StoreStock             `json:"stocks,omitempty"`
	Components  []entity.BundleComponent `json:"components,omitempty"`
	CreatedAt   time.Time                `json:"created_at"`
	UpdatedAt   time.Time                `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
