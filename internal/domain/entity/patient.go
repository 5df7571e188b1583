package entity

import "time"

// WalkInPatientID es el paciente centinela para ventas de mostrador sin
// paciente asociado. Se siembra en la migración inicial y nunca se borra.
const WalkInPatientID = "00000000-0000-0000-0000-000000000001"

// Géneros válidos para Patient.
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderOther  = "Other"
)

// Patient representa un paciente del hospital (cliente en el POS).
type Patient struct {
	ID                    string
	Name                  string
	Email                 string
	Phone                 string
	DateOfBirth           *time.Time
	Gender                string
	Address               string
	EmergencyContactName  string
	EmergencyContactPhone string
	IsActive              bool
	CreatedAt             time.Time
	UpdatedAt             time.Time
}
