package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/multibodega-api/internal/application/inventory"
	"github.com/jhoicas/multibodega-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// El motor de agregación suma en tiempo de consulta sobre los registros vivos
// del ledger. No hay totales cacheados: todo cambio en el ledger se refleja en
// la siguiente lectura.
// ──────────────────────────────────────────────────────────────────────────────

func TestTotalStock_SumaSobreBodegas(t *testing.T) {
	ledger := newFakeStockRepo()
	engine := inventory.NewAggregationEngine(ledger)
	ctx := context.Background()

	require.NoError(t, ledger.Upsert(ctx, 1, 10, 7))
	require.NoError(t, ledger.Upsert(ctx, 1, 20, 3))
	require.NoError(t, ledger.Upsert(ctx, 2, 10, 100)) // otro producto, no cuenta

	total, err := engine.TotalStock(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(10), total, "el total es la suma sobre todas las bodegas")
}

func TestTotalStock_SinRegistrosEsCero(t *testing.T) {
	engine := inventory.NewAggregationEngine(newFakeStockRepo())

	total, err := engine.TotalStock(context.Background(), 99)
	require.NoError(t, err, "producto sin registros no es un error")
	assert.Zero(t, total, "nunca almacenado equivale a almacenado con cero")
}

func TestTotalStock_ReflejaUltimoReporte(t *testing.T) {
	ledger := newFakeStockRepo()
	engine := inventory.NewAggregationEngine(ledger)
	ctx := context.Background()

	require.NoError(t, ledger.Upsert(ctx, 1, 10, 7))
	require.NoError(t, ledger.Upsert(ctx, 1, 10, 2)) // reemplaza, no acumula

	total, err := engine.TotalStock(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total, "la cantidad reportada reemplaza a la anterior")
}

func TestTotalItems_SumaSobreProductos(t *testing.T) {
	ledger := newFakeStockRepo()
	engine := inventory.NewAggregationEngine(ledger)
	ctx := context.Background()

	require.NoError(t, ledger.Upsert(ctx, 1, 10, 4))
	require.NoError(t, ledger.Upsert(ctx, 2, 10, 6))
	require.NoError(t, ledger.Upsert(ctx, 1, 20, 50)) // otra bodega, no cuenta

	total, err := engine.TotalItems(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(10), total)
}

// El total es el desglose colapsado; si divergen, alguien cacheó un agregado.
func TestTotalStock_ConsistenteConDesglose(t *testing.T) {
	ledger := newFakeStockRepo()
	engine := inventory.NewAggregationEngine(ledger)
	ctx := context.Background()

	require.NoError(t, ledger.Upsert(ctx, 1, 10, 4))
	require.NoError(t, ledger.Upsert(ctx, 1, 20, 6))
	require.NoError(t, ledger.Upsert(ctx, 1, 30, 0))

	total, err := engine.TotalStock(ctx, 1)
	require.NoError(t, err)
	breakdown, err := engine.PerWarehouseBreakdown(ctx, 1)
	require.NoError(t, err)

	var sum int64
	for _, b := range breakdown {
		sum += b.Quantity
	}
	assert.Equal(t, sum, total)
	assert.Len(t, breakdown, 3, "la bodega con cero unidades sigue en el desglose")
}

func TestPerWarehouseBreakdown(t *testing.T) {
	ledger := newFakeStockRepo()
	engine := inventory.NewAggregationEngine(ledger)
	ctx := context.Background()

	require.NoError(t, ledger.Upsert(ctx, 1, 10, 4))
	require.NoError(t, ledger.Upsert(ctx, 1, 20, 6))

	breakdown, err := engine.PerWarehouseBreakdown(ctx, 1)
	require.NoError(t, err)
	assert.ElementsMatch(t, []entity.WarehouseQuantity{
		{WarehouseID: 10, Quantity: 4},
		{WarehouseID: 20, Quantity: 6},
	}, breakdown)
}
