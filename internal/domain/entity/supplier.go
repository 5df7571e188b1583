package entity

import "time"

// Supplier representa un proveedor de productos del hospital.
type Supplier struct {
	ID          string
	Name        string
	ContactInfo string
	Address     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
