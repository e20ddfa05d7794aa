package inventory

import (
	"context"

	"github.com/jhoicas/multibodega-api/internal/domain/entity"
	"github.com/jhoicas/multibodega-api/internal/domain/repository"
)

// AggregationEngine calcula los agregados de stock en tiempo de consulta,
// sumando sobre los registros vivos del ledger. No mantiene ningún total
// cacheado: el agregado nunca puede quedar desfasado respecto al ledger.
// El costo es un escaneo O(registros-por-entidad) por llamada, acotado por el
// número de bodegas.
type AggregationEngine struct {
	ledger repository.StockRepository
}

// NewAggregationEngine construye el motor de agregación sobre el ledger.
func NewAggregationEngine(ledger repository.StockRepository) *AggregationEngine {
	return &AggregationEngine{ledger: ledger}
}

// TotalStock suma la cantidad del producto sobre todas las bodegas: es el
// desglose por bodega colapsado a un escalar, así ambos nunca pueden
// contradecirse. Un producto sin registros devuelve 0, no error: "nunca
// almacenado" y "almacenado con cero" son equivalentes para el agregado.
func (e *AggregationEngine) TotalStock(ctx context.Context, productID int64) (int64, error) {
	breakdown, err := e.PerWarehouseBreakdown(ctx, productID)
	if err != nil {
		return 0, err
	}
	var total int64
	for _, b := range breakdown {
		total += b.Quantity
	}
	return total, nil
}

// TotalItems suma las unidades de todos los productos almacenados en una bodega.
func (e *AggregationEngine) TotalItems(ctx context.Context, warehouseID int64) (int64, error) {
	records, err := e.ledger.ListByWarehouse(ctx, warehouseID)
	if err != nil {
		return 0, err
	}
	var total int64
	for _, r := range records {
		total += r.Quantity
	}
	return total, nil
}

// PerWarehouseBreakdown devuelve los pares (bodega, cantidad) de un producto.
func (e *AggregationEngine) PerWarehouseBreakdown(ctx context.Context, productID int64) ([]entity.WarehouseQuantity, error) {
	records, err := e.ledger.ListByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	breakdown := make([]entity.WarehouseQuantity, 0, len(records))
	for _, r := range records {
		breakdown = append(breakdown, entity.WarehouseQuantity{
			WarehouseID: r.WarehouseID,
			Quantity:    r.Quantity,
		})
	}
	return breakdown, nil
}
