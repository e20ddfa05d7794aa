package dto

import "time"

// CreateCategoryRequest entrada para crear una categoría.
type CreateCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// UpdateCategoryRequest entrada para actualizar una categoría.
type UpdateCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CategoryListItem fila del listado con conteo de productos.
type CategoryListItem struct {
	CategoryResponse
	ProductCount int64 `json:"product_count"`
}

// CategoryListResponse listado de categorías.
type CategoryListResponse struct {
	Items []CategoryListItem `json:"items"`
	Total int                `json:"total"`
}
