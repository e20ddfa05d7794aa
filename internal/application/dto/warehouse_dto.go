package dto

import "time"

// CreateWarehouseRequest entrada para crear una bodega.
type CreateWarehouseRequest struct {
	Name         string `json:"name"`
	Location     string `json:"location"`
	Capacity     int64  `json:"capacity"`
	ManagerName  string `json:"manager_name"`
	ContactEmail string `json:"contact_email"`
}

// UpdateWarehouseRequest entrada para actualizar una bodega.
type UpdateWarehouseRequest struct {
	Name         string `json:"name"`
	Location     string `json:"location"`
	Capacity     int64  `json:"capacity"`
	ManagerName  string `json:"manager_name"`
	ContactEmail string `json:"contact_email"`
}

// WarehouseResponse salida de una bodega.
type WarehouseResponse struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Location     string    `json:"location"`
	Capacity     int64     `json:"capacity"`
	ManagerName  string    `json:"manager_name,omitempty"`
	ContactEmail string    `json:"contact_email,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// WarehouseListItem fila del listado con agregados de inventario.
type WarehouseListItem struct {
	WarehouseResponse
	ProductCount int64 `json:"product_count"`
	TotalItems   int64 `json:"total_items"`
}

// WarehouseListResponse listado de bodegas.
type WarehouseListResponse struct {
	Items []WarehouseListItem `json:"items"`
	Total int                 `json:"total"`
}
