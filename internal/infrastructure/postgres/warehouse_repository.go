package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/multibodega-api/internal/domain"
	"github.com/jhoicas/multibodega-api/internal/domain/entity"
	"github.com/jhoicas/multibodega-api/internal/domain/repository"
)

var _ repository.WarehouseRepository = (*WarehouseRepo)(nil)

// WarehouseRepo implementación del puerto WarehouseRepository sobre PostgreSQL.
type WarehouseRepo struct {
	q Querier
}

// NewWarehouseRepository construye el adaptador. Pasar pool o tx (Querier).
func NewWarehouseRepository(q Querier) *WarehouseRepo {
	return &WarehouseRepo{q: q}
}

// Create persiste una bodega nueva y asigna el ID generado.
func (r *WarehouseRepo) Create(ctx context.Context, warehouse *entity.Warehouse) error {
	query := `
		INSERT INTO warehouses (name, location, capacity, manager_name, contact_email, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		warehouse.Name, warehouse.Location, warehouse.Capacity,
		warehouse.ManagerName, warehouse.ContactEmail, warehouse.CreatedAt, warehouse.UpdatedAt,
	).Scan(&warehouse.ID)
	if err != nil {
		return wrapStoreErr("insert warehouse", err)
	}
	return nil
}

// GetByID obtiene una bodega por ID. nil sin error si no existe.
func (r *WarehouseRepo) GetByID(ctx context.Context, id int64) (*entity.Warehouse, error) {
	query := `
		SELECT id, name, location, capacity, manager_name, contact_email, created_at, updated_at
		FROM warehouses WHERE id = $1`
	var w entity.Warehouse
	err := r.q.QueryRow(ctx, query, id).Scan(
		&w.ID, &w.Name, &w.Location, &w.Capacity,
		&w.ManagerName, &w.ContactEmail, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapStoreErr("get warehouse", err)
	}
	return &w, nil
}

// Update actualiza una bodega existente.
func (r *WarehouseRepo) Update(ctx context.Context, warehouse *entity.Warehouse) error {
	query := `
		UPDATE warehouses
		SET name = $2, location = $3, capacity = $4, manager_name = $5,
		    contact_email = $6, updated_at = $7
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		warehouse.ID, warehouse.Name, warehouse.Location, warehouse.Capacity,
		warehouse.ManagerName, warehouse.ContactEmail, warehouse.UpdatedAt,
	)
	if err != nil {
		return wrapStoreErr("update warehouse", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una bodega; sus registros de inventario caen en cascada y su
// contribución a los agregados desaparece con ellos.
func (r *WarehouseRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM warehouses WHERE id = $1`, id)
	if err != nil {
		return wrapStoreErr("delete warehouse", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista bodegas con conteo de productos distintos y total de unidades
// (agregados de tiempo de consulta).
func (r *WarehouseRepo) List(ctx context.Context) ([]repository.WarehouseWithStats, error) {
	query := `
		SELECT w.id, w.name, w.location, w.capacity, w.manager_name, w.contact_email,
		       w.created_at, w.updated_at,
		       COUNT(DISTINCT pi.product_id) AS product_count,
		       COALESCE(SUM(pi.quantity), 0) AS total_items
		FROM warehouses w
		LEFT JOIN product_inventory pi ON pi.warehouse_id = w.id
		GROUP BY w.id
		ORDER BY w.name ASC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, wrapStoreErr("list warehouses", err)
	}
	defer rows.Close()

	var out []repository.WarehouseWithStats
	for rows.Next() {
		var row repository.WarehouseWithStats
		w := &row.Warehouse
		if err := rows.Scan(
			&w.ID, &w.Name, &w.Location, &w.Capacity, &w.ManagerName, &w.ContactEmail,
			&w.CreatedAt, &w.UpdatedAt, &row.ProductCount, &row.TotalItems,
		); err != nil {
			return nil, wrapStoreErr("scan warehouse", err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapStoreErr("iterate warehouses", err)
	}
	return out, nil
}
