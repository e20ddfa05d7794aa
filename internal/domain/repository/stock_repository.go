package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/multibodega-api/internal/domain/entity"
)

// ProductStockItem fila del desglose de un producto enriquecida con datos de la bodega.
type ProductStockItem struct {
	WarehouseID   int64
	WarehouseName string
	Location      string
	Quantity      int64
	UpdatedAt     time.Time
}

// WarehouseStockItem fila del inventario de una bodega enriquecida con datos del producto.
type WarehouseStockItem struct {
	ProductID   int64
	ProductName string
	SKU         string
	UnitPrice   decimal.Decimal
	Quantity    int64
	UpdatedAt   time.Time
}

// StockRepository define el puerto del ledger de stock por (producto, bodega) (DIP).
//
// Upsert debe ser una única operación atómica insert-or-update contra el store
// (nunca leer-y-escribir desde el caller): dos reportes concurrentes para el
// mismo par se serializan a nivel de fila y ninguno pisa al otro en silencio.
type StockRepository interface {
	Upsert(ctx context.Context, productID, warehouseID, quantity int64) error
	ListByProduct(ctx context.Context, productID int64) ([]entity.StockRecord, error)
	ListByWarehouse(ctx context.Context, warehouseID int64) ([]entity.StockRecord, error)
	ListByProductWithWarehouse(ctx context.Context, productID int64) ([]ProductStockItem, error)
	ListByWarehouseWithProduct(ctx context.Context, warehouseID int64) ([]WarehouseStockItem, error)
}
