package entity

import "time"

// Roles válidos para User (personal del hospital).
const (
	RoleAdmin         = "admin"
	RoleDoctor        = "doctor"
	RoleNurse         = "nurse"
	RoleAccountant    = "accountant"
	RoleReceptionist  = "receptionist"
	RoleLabTechnician = "lab_technician"
	RolePharmacist    = "pharmacist"
	RoleStaff         = "staff"
)

// ValidRole indica si el rol es uno de los conocidos.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleDoctor, RoleNurse, RoleAccountant,
		RoleReceptionist, RoleLabTechnician, RolePharmacist, RoleStaff:
		return true
	}
	return false
}

// User representa un usuario del sistema (personal del hospital).
// Cualquier usuario autenticado puede actuar como cajero en el POS.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // admin, doctor, nurse, pharmacist, receptionist, ...
	PhoneNumber  string
	Status       string // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
