package entity

import "time"

// Warehouse representa una bodega donde se almacena inventario.
// Capacity es informativa; no se valida contra la suma del ledger.
type Warehouse struct {
	ID           int64
	Name         string
	Location     string
	Capacity     int64
	ManagerName  string
	ContactEmail string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
