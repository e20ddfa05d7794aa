package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReportStockRequest cuerpo de PUT /products/:id/inventory/:warehouseId.
// Reporta la cantidad actual observada; reemplaza la anterior, no suma.
type ReportStockRequest struct {
	Quantity int64 `json:"quantity"`
}

// ProductStockItem desglose por bodega de un producto.
type ProductStockItem struct {
	WarehouseID   int64     `json:"warehouse_id"`
	WarehouseName string    `json:"warehouse_name"`
	Location      string    `json:"location"`
	Quantity      int64     `json:"quantity"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ProductStockView producto + total agregado + desglose por bodega.
type ProductStockView struct {
	Product      ProductResponse    `json:"product"`
	TotalStock   int64              `json:"total_stock"`
	PerWarehouse []ProductStockItem `json:"per_warehouse"`
}

// WarehouseStockItem fila del inventario de una bodega.
type WarehouseStockItem struct {
	ProductID   int64           `json:"product_id"`
	ProductName string          `json:"product_name"`
	SKU         string          `json:"sku"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    int64           `json:"quantity"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// WarehouseStockView bodega + total de unidades + registros del ledger.
type WarehouseStockView struct {
	Warehouse  WarehouseResponse    `json:"warehouse"`
	TotalItems int64                `json:"total_items"`
	Records    []WarehouseStockItem `json:"records"`
}

// LowStockSignalResponse señal de bajo stock de un producto.
type LowStockSignalResponse struct {
	ProductID          int64 `json:"product_id"`
	TotalStock         int64 `json:"total_stock"`
	EffectiveThreshold int64 `json:"effective_threshold"`
	IsLow              bool  `json:"is_low"`
}

// LowStockListResponse señales ordenadas de más agotado a menos.
type LowStockListResponse struct {
	Items []LowStockSignalResponse `json:"items"`
	Total int                      `json:"total"`
}
