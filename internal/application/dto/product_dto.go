package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	SKU          string          `json:"sku"`
	CategoryID   *int64          `json:"category_id"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	ReorderLevel int64           `json:"reorder_level"`
}

// UpdateProductRequest entrada para actualizar un producto (campos completos,
// como en PUT).
type UpdateProductRequest struct {
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	SKU          string          `json:"sku"`
	CategoryID   *int64          `json:"category_id"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	ReorderLevel int64           `json:"reorder_level"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	SKU          string          `json:"sku"`
	CategoryID   *int64          `json:"category_id"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	ReorderLevel int64           `json:"reorder_level"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ProductListItem fila del listado: producto + nombre de categoría + total de stock.
type ProductListItem struct {
	ProductResponse
	CategoryName string `json:"category_name,omitempty"`
	TotalStock   int64  `json:"total_stock"`
}

// ProductListResponse listado de productos.
type ProductListResponse struct {
	Items []ProductListItem `json:"items"`
	Total int               `json:"total"`
}
