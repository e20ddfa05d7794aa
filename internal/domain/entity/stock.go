package entity

import "time"

// StockRecord es la entrada del ledger: cantidad actual de un producto en una
// bodega. Clave compuesta (ProductID, WarehouseID), a lo sumo un registro vivo
// por par. El ledger guarda estado actual, no historial.
type StockRecord struct {
	ProductID   int64
	WarehouseID int64
	Quantity    int64 // siempre >= 0
	UpdatedAt   time.Time
}

// WarehouseQuantity par (bodega, cantidad) del desglose por bodega de un producto.
type WarehouseQuantity struct {
	WarehouseID int64
	Quantity    int64
}

// ProductAggregate total de stock de un producto sumado sobre todas las bodegas.
// Derivado en tiempo de consulta; nunca se persiste, así no puede quedar desfasado
// respecto al ledger.
type ProductAggregate struct {
	ProductID  int64
	TotalStock int64
}

// LowStockSignal resultado de clasificar un producto contra su umbral efectivo.
// IsLow usa <=: un producto exactamente en su nivel de reorden ya debe pedirse.
type LowStockSignal struct {
	ProductID          int64
	TotalStock         int64
	EffectiveThreshold int64
	IsLow              bool
}
