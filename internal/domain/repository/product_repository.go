package repository

import (
	"context"

	"github.com/jhoicas/multibodega-api/internal/domain/entity"
)

// ProductFilter filtros opcionales del listado de productos.
type ProductFilter struct {
	CategoryID *int64
	Search     string // sobre nombre y SKU, ya normalizado por el caller
	Limit      int
	Offset     int
}

// ProductWithStock producto enriquecido con nombre de categoría y total de stock
// calculado en tiempo de consulta (suma sobre el ledger).
type ProductWithStock struct {
	Product      entity.Product
	CategoryName string
	TotalStock   int64
}

// ProductTotal par (producto, total) que alimenta al clasificador de reposición.
type ProductTotal struct {
	Product    entity.Product
	TotalStock int64
}

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	GetBySKU(ctx context.Context, sku string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id int64) error

	// List devuelve la página y el total de productos que pasan el filtro
	// (no el tamaño de la página).
	List(ctx context.Context, filter ProductFilter) ([]ProductWithStock, int64, error)

	// ListWithTotalStock devuelve todos los productos con su total agregado,
	// ordenados por total ascendente (empates por id) para que los más
	// agotados salgan primero.
	ListWithTotalStock(ctx context.Context) ([]ProductTotal, error)
}
