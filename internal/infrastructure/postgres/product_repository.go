package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/multibodega-api/internal/domain"
	"github.com/jhoicas/multibodega-api/internal/domain/entity"
	"github.com/jhoicas/multibodega-api/internal/domain/repository"
	"github.com/jhoicas/multibodega-api/pkg/textnorm"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, name, description, sku, category_id, unit_price, reorder_level, created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un producto nuevo y asigna el ID generado. Las columnas
// sombra name_search/sku_search se escriben con el mismo fold que usa el
// listado para el término de búsqueda; si un solo lado foldara, los nombres
// con tilde serían inencontrables.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (name, description, sku, category_id, unit_price, reorder_level,
		                      name_search, sku_search, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		product.Name, product.Description, product.SKU, product.CategoryID,
		product.UnitPrice, product.ReorderLevel,
		textnorm.Fold(product.Name), textnorm.Fold(product.SKU),
		product.CreatedAt, product.UpdatedAt,
	).Scan(&product.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate // SKU ya registrado
		}
		if isForeignKeyViolation(err) {
			return domain.ErrUnknownReference // categoría inexistente
		}
		return wrapStoreErr("insert product", err)
	}
	return nil
}

// GetByID obtiene un producto por ID. nil sin error si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	return r.getOne(ctx, query, id)
}

// GetBySKU obtiene un producto por SKU. nil sin error si no existe.
func (r *ProductRepo) GetBySKU(ctx context.Context, sku string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE sku = $1`
	return r.getOne(ctx, query, sku)
}

func (r *ProductRepo) getOne(ctx context.Context, query string, arg any) (*entity.Product, error) {
	var p entity.Product
	err := r.q.QueryRow(ctx, query, arg).Scan(
		&p.ID, &p.Name, &p.Description, &p.SKU, &p.CategoryID,
		&p.UnitPrice, &p.ReorderLevel, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapStoreErr("get product", err)
	}
	return &p, nil
}

// Update actualiza un producto existente.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE products
		SET name = $2, description = $3, sku = $4, category_id = $5,
		    unit_price = $6, reorder_level = $7,
		    name_search = $8, sku_search = $9, updated_at = $10
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		product.ID, product.Name, product.Description, product.SKU, product.CategoryID,
		product.UnitPrice, product.ReorderLevel,
		textnorm.Fold(product.Name), textnorm.Fold(product.SKU), product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrUnknownReference
		}
		return wrapStoreErr("update product", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un producto; sus registros de inventario caen en cascada.
func (r *ProductRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return wrapStoreErr("delete product", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista productos con nombre de categoría y total de stock calculado en
// la consulta (suma sobre el ledger, nunca un total materializado). El término
// de búsqueda llega foldado y se compara contra las columnas sombra, pobladas
// con el mismo fold al escribir. Devuelve además el total de productos que
// pasan el filtro, independiente de la página (COUNT como función ventana
// sobre los grupos, antes del LIMIT).
func (r *ProductRepo) List(ctx context.Context, filter repository.ProductFilter) ([]repository.ProductWithStock, int64, error) {
	query := `
		SELECT p.id, p.name, p.description, p.sku, p.category_id, p.unit_price,
		       p.reorder_level, p.created_at, p.updated_at,
		       COALESCE(c.name, '') AS category_name,
		       COALESCE(SUM(pi.quantity), 0) AS total_stock,
		       COUNT(*) OVER () AS full_count
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id
		LEFT JOIN product_inventory pi ON pi.product_id = p.id
		WHERE 1=1`
	args := []any{}

	if filter.CategoryID != nil {
		args = append(args, *filter.CategoryID)
		query += fmt.Sprintf(" AND p.category_id = $%d", len(args))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		query += fmt.Sprintf(" AND (p.name_search LIKE $%d OR p.sku_search LIKE $%d)", n, n)
	}

	query += " GROUP BY p.id, c.name ORDER BY p.created_at DESC"
	args = append(args, filter.Limit)
	query += fmt.Sprintf(" LIMIT $%d", len(args))
	args = append(args, filter.Offset)
	query += fmt.Sprintf(" OFFSET $%d", len(args))

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, wrapStoreErr("list products", err)
	}
	defer rows.Close()

	var out []repository.ProductWithStock
	var total int64
	for rows.Next() {
		var row repository.ProductWithStock
		p := &row.Product
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Description, &p.SKU, &p.CategoryID,
			&p.UnitPrice, &p.ReorderLevel, &p.CreatedAt, &p.UpdatedAt,
			&row.CategoryName, &row.TotalStock, &total,
		); err != nil {
			return nil, 0, wrapStoreErr("scan product", err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, wrapStoreErr("iterate products", err)
	}
	return out, total, nil
}

// ListWithTotalStock devuelve todos los productos con su total agregado,
// ordenados de más agotado a menos (empates por id). Alimenta al clasificador.
func (r *ProductRepo) ListWithTotalStock(ctx context.Context) ([]repository.ProductTotal, error) {
	query := `
		SELECT p.id, p.name, p.description, p.sku, p.category_id, p.unit_price,
		       p.reorder_level, p.created_at, p.updated_at,
		       COALESCE(SUM(pi.quantity), 0) AS total_stock
		FROM products p
		LEFT JOIN product_inventory pi ON pi.product_id = p.id
		GROUP BY p.id
		ORDER BY total_stock ASC, p.id ASC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, wrapStoreErr("list product totals", err)
	}
	defer rows.Close()

	var out []repository.ProductTotal
	for rows.Next() {
		var row repository.ProductTotal
		p := &row.Product
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Description, &p.SKU, &p.CategoryID,
			&p.UnitPrice, &p.ReorderLevel, &p.CreatedAt, &p.UpdatedAt,
			&row.TotalStock,
		); err != nil {
			return nil, wrapStoreErr("scan product total", err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapStoreErr("iterate product totals", err)
	}
	return out, nil
}
