package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto terminado (SKU) del catálogo.
// El stock se lleva por bodega en StockRecord; ReorderLevel es el umbral
// propio del producto para la clasificación de bajo stock.
type Product struct {
	ID           int64
	Name         string
	Description  string
	SKU          string // único en el catálogo
	CategoryID   *int64 // nil si no tiene categoría
	UnitPrice    decimal.Decimal
	ReorderLevel int64 // umbral por defecto, >= 0
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
