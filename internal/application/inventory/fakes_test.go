package inventory_test

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/multibodega-api/internal/domain/entity"
	"github.com/jhoicas/multibodega-api/internal/domain/repository"
)

// ── dobles en memoria de los puertos de persistencia ──────────────────────────
//
// Implementan los mismos contratos que los adaptadores de PostgreSQL: upsert
// por par (producto, bodega), nil sin error cuando no existe, y listados
// derivados del estado vivo. El mutex del ledger permite ejercitar reportes
// concurrentes desde varias goroutines.

type pairKey struct {
	productID   int64
	warehouseID int64
}

type fakeStockRepo struct {
	mu      sync.Mutex
	records map[pairKey]entity.StockRecord
	err     error // si no es nil, toda operación lo devuelve
}

func newFakeStockRepo() *fakeStockRepo {
	return &fakeStockRepo{records: make(map[pairKey]entity.StockRecord)}
}

func (f *fakeStockRepo) Upsert(_ context.Context, productID, warehouseID, quantity int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.records[pairKey{productID, warehouseID}] = entity.StockRecord{
		ProductID:   productID,
		WarehouseID: warehouseID,
		Quantity:    quantity,
		UpdatedAt:   time.Now(),
	}
	return nil
}

func (f *fakeStockRepo) ListByProduct(_ context.Context, productID int64) ([]entity.StockRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	var out []entity.StockRecord
	for k, r := range f.records {
		if k.productID == productID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeStockRepo) ListByWarehouse(_ context.Context, warehouseID int64) ([]entity.StockRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	var out []entity.StockRecord
	for k, r := range f.records {
		if k.warehouseID == warehouseID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeStockRepo) ListByProductWithWarehouse(ctx context.Context, productID int64) ([]repository.ProductStockItem, error) {
	records, err := f.ListByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	out := make([]repository.ProductStockItem, 0, len(records))
	for _, r := range records {
		out = append(out, repository.ProductStockItem{
			WarehouseID:   r.WarehouseID,
			WarehouseName: "Bodega",
			Quantity:      r.Quantity,
			UpdatedAt:     r.UpdatedAt,
		})
	}
	return out, nil
}

func (f *fakeStockRepo) ListByWarehouseWithProduct(ctx context.Context, warehouseID int64) ([]repository.WarehouseStockItem, error) {
	records, err := f.ListByWarehouse(ctx, warehouseID)
	if err != nil {
		return nil, err
	}
	out := make([]repository.WarehouseStockItem, 0, len(records))
	for _, r := range records {
		out = append(out, repository.WarehouseStockItem{
			ProductID: r.ProductID,
			Quantity:  r.Quantity,
			UpdatedAt: r.UpdatedAt,
		})
	}
	return out, nil
}

// recordCount cantidad de registros vivos en el ledger.
func (f *fakeStockRepo) recordCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.records)
}

// quantity cantidad actual del par, -1 si no hay registro.
func (f *fakeStockRepo) quantity(productID, warehouseID int64) int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.records[pairKey{productID, warehouseID}]
	if !ok {
		return -1
	}
	return r.Quantity
}

type fakeProductRepo struct {
	mu       sync.Mutex
	products map[int64]entity.Product
	ledger   *fakeStockRepo // para derivar totales en ListWithTotalStock
}

func newFakeProductRepo(ledger *fakeStockRepo) *fakeProductRepo {
	return &fakeProductRepo{products: make(map[int64]entity.Product), ledger: ledger}
}

func (f *fakeProductRepo) put(p entity.Product) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.products[p.ID] = p
}

func (f *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	f.put(*p)
	return nil
}

func (f *fakeProductRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (f *fakeProductRepo) GetBySKU(_ context.Context, sku string) (*entity.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.products {
		if p.SKU == sku {
			p := p
			return &p, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	f.put(*p)
	return nil
}

func (f *fakeProductRepo) Delete(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.products, id)
	return nil
}

func (f *fakeProductRepo) List(_ context.Context, _ repository.ProductFilter) ([]repository.ProductWithStock, int64, error) {
	return nil, 0, nil
}

// ListWithTotalStock deriva los totales del ledger. Devuelve en orden de mapa
// (arbitrario): el orden del resultado es responsabilidad del clasificador.
func (f *fakeProductRepo) ListWithTotalStock(ctx context.Context) ([]repository.ProductTotal, error) {
	f.mu.Lock()
	products := make([]entity.Product, 0, len(f.products))
	for _, p := range f.products {
		products = append(products, p)
	}
	f.mu.Unlock()

	out := make([]repository.ProductTotal, 0, len(products))
	for _, p := range products {
		var total int64
		if f.ledger != nil {
			records, err := f.ledger.ListByProduct(ctx, p.ID)
			if err != nil {
				return nil, err
			}
			for _, r := range records {
				total += r.Quantity
			}
		}
		out = append(out, repository.ProductTotal{Product: p, TotalStock: total})
	}
	return out, nil
}

type fakeWarehouseRepo struct {
	mu         sync.Mutex
	warehouses map[int64]entity.Warehouse
}

func newFakeWarehouseRepo() *fakeWarehouseRepo {
	return &fakeWarehouseRepo{warehouses: make(map[int64]entity.Warehouse)}
}

func (f *fakeWarehouseRepo) put(w entity.Warehouse) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.warehouses[w.ID] = w
}

func (f *fakeWarehouseRepo) Create(_ context.Context, w *entity.Warehouse) error {
	f.put(*w)
	return nil
}

func (f *fakeWarehouseRepo) GetByID(_ context.Context, id int64) (*entity.Warehouse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	w, ok := f.warehouses[id]
	if !ok {
		return nil, nil
	}
	return &w, nil
}

func (f *fakeWarehouseRepo) Update(_ context.Context, w *entity.Warehouse) error {
	f.put(*w)
	return nil
}

func (f *fakeWarehouseRepo) Delete(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.warehouses, id)
	return nil
}

func (f *fakeWarehouseRepo) List(_ context.Context) ([]repository.WarehouseWithStats, error) {
	return nil, nil
}

// Los dobles deben satisfacer los puertos.
var (
	_ repository.StockRepository     = (*fakeStockRepo)(nil)
	_ repository.ProductRepository   = (*fakeProductRepo)(nil)
	_ repository.WarehouseRepository = (*fakeWarehouseRepo)(nil)
)
