package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/multibodega-api/internal/domain"
	"github.com/jhoicas/multibodega-api/internal/domain/entity"
	"github.com/jhoicas/multibodega-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación del ledger de stock sobre PostgreSQL.
// Depende del constraint único sobre (product_id, warehouse_id): es lo que
// vuelve atómico el insert-or-update y garantiza un solo registro vivo por par.
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Upsert inserta o reemplaza la cantidad del par (producto, bodega) en una
// sola sentencia. Dos reporteros concurrentes del mismo par se serializan a
// nivel de fila en el servidor: queda el valor de uno de los dos, nunca una
// mezcla ni un duplicado.
func (r *StockRepo) Upsert(ctx context.Context, productID, warehouseID, quantity int64) error {
	if quantity < 0 {
		// Segunda línea de defensa; el servicio ya validó.
		return domain.ErrInvalidQuantity
	}
	query := `
		INSERT INTO product_inventory (product_id, warehouse_id, quantity, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (product_id, warehouse_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = now()`
	_, err := r.q.Exec(ctx, query, productID, warehouseID, quantity)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrUnknownReference
		}
		if isUniqueViolation(err) {
			return domain.ErrConflictingWrite
		}
		return wrapStoreErr("upsert stock", err)
	}
	return nil
}

// ListByProduct devuelve los registros vivos de un producto, por bodega.
func (r *StockRepo) ListByProduct(ctx context.Context, productID int64) ([]entity.StockRecord, error) {
	query := `
		SELECT product_id, warehouse_id, quantity, updated_at
		FROM product_inventory WHERE product_id = $1
		ORDER BY warehouse_id ASC`
	rows, err := r.q.Query(ctx, query, productID)
	if err != nil {
		return nil, wrapStoreErr("list stock by product", err)
	}
	defer rows.Close()
	return scanStockRecords(rows)
}

// ListByWarehouse devuelve los registros vivos de una bodega, por producto.
func (r *StockRepo) ListByWarehouse(ctx context.Context, warehouseID int64) ([]entity.StockRecord, error) {
	query := `
		SELECT product_id, warehouse_id, quantity, updated_at
		FROM product_inventory WHERE warehouse_id = $1
		ORDER BY product_id ASC`
	rows, err := r.q.Query(ctx, query, warehouseID)
	if err != nil {
		return nil, wrapStoreErr("list stock by warehouse", err)
	}
	defer rows.Close()
	return scanStockRecords(rows)
}

func scanStockRecords(rows pgx.Rows) ([]entity.StockRecord, error) {
	var records []entity.StockRecord
	for rows.Next() {
		var rec entity.StockRecord
		if err := rows.Scan(&rec.ProductID, &rec.WarehouseID, &rec.Quantity, &rec.UpdatedAt); err != nil {
			return nil, wrapStoreErr("scan stock", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapStoreErr("iterate stock", err)
	}
	return records, nil
}

// ListByProductWithWarehouse desglose de un producto con nombre y ubicación de cada bodega.
func (r *StockRepo) ListByProductWithWarehouse(ctx context.Context, productID int64) ([]repository.ProductStockItem, error) {
	query := `
		SELECT pi.warehouse_id, w.name, w.location, pi.quantity, pi.updated_at
		FROM product_inventory pi
		JOIN warehouses w ON w.id = pi.warehouse_id
		WHERE pi.product_id = $1
		ORDER BY w.name ASC`
	rows, err := r.q.Query(ctx, query, productID)
	if err != nil {
		return nil, wrapStoreErr("list product inventory", err)
	}
	defer rows.Close()

	var items []repository.ProductStockItem
	for rows.Next() {
		var it repository.ProductStockItem
		if err := rows.Scan(&it.WarehouseID, &it.WarehouseName, &it.Location, &it.Quantity, &it.UpdatedAt); err != nil {
			return nil, wrapStoreErr("scan product inventory", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapStoreErr("iterate product inventory", err)
	}
	return items, nil
}

// ListByWarehouseWithProduct inventario de una bodega con datos del producto.
func (r *StockRepo) ListByWarehouseWithProduct(ctx context.Context, warehouseID int64) ([]repository.WarehouseStockItem, error) {
	query := `
		SELECT pi.product_id, p.name, p.sku, p.unit_price, pi.quantity, pi.updated_at
		FROM product_inventory pi
		JOIN products p ON p.id = pi.product_id
		WHERE pi.warehouse_id = $1
		ORDER BY p.name ASC`
	rows, err := r.q.Query(ctx, query, warehouseID)
	if err != nil {
		return nil, wrapStoreErr("list warehouse inventory", err)
	}
	defer rows.Close()

	var items []repository.WarehouseStockItem
	for rows.Next() {
		var it repository.WarehouseStockItem
		if err := rows.Scan(&it.ProductID, &it.ProductName, &it.SKU, &it.UnitPrice, &it.Quantity, &it.UpdatedAt); err != nil {
			return nil, wrapStoreErr("scan warehouse inventory", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapStoreErr("iterate warehouse inventory", err)
	}
	return items, nil
}
