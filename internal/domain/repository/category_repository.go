package repository

import (
	"context"

	"github.com/jhoicas/multibodega-api/internal/domain/entity"
)

// CategoryWithCount categoría con el número de productos que la referencian.
type CategoryWithCount struct {
	Category     entity.Category
	ProductCount int64
}

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id int64) (*entity.Category, error)
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]CategoryWithCount, error)
}
