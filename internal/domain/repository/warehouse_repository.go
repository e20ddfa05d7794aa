package repository

import (
	"context"

	"github.com/jhoicas/multibodega-api/internal/domain/entity"
)

// WarehouseWithStats bodega enriquecida con conteo de productos distintos y
// total de unidades almacenadas (tiempo de consulta).
type WarehouseWithStats struct {
	Warehouse    entity.Warehouse
	ProductCount int64
	TotalItems   int64
}

// WarehouseRepository define el puerto de persistencia para Warehouse (DIP).
type WarehouseRepository interface {
	Create(ctx context.Context, warehouse *entity.Warehouse) error
	GetByID(ctx context.Context, id int64) (*entity.Warehouse, error)
	Update(ctx context.Context, warehouse *entity.Warehouse) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]WarehouseWithStats, error)
}
