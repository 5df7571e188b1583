package dto

import "time"

// CreatePatientRequest body para POST /api/patients.
type CreatePatientRequest struct {
	Name                  string     `json:"name" validate:"required,min=1,max=200"`
	Email                 string     `json:"email" validate:"omitempty,email"`
	Phone                 string     `json:"phone" validate:"omitempty,max=20"`
	DateOfBirth           *time.Time `json:"date_of_birth"`
	Gender                string     `json:"gender" validate:"omitempty,oneof=Male Female Other"`
	Address               string     `json:"address"`
	EmergencyContactName  string     `json:"emergency_contact_name"`
	EmergencyContactPhone string     `json:"emergency_contact_phone"`
}

// UpdatePatientRequest body para PUT /api/patients/:id.
type UpdatePatientRequest struct {
	Name                  *string    `json:"name" validate:"omitempty,min=1,max=200"`
	Email                 *string    `json:"email" validate:"omitempty,email"`
	Phone                 *string    `json:"phone"`
	DateOfBirth           *time.Time `json:"date_of_birth"`
	Gender                *string    `json:"gender" validate:"omitempty,oneof=Male Female Other"`
	Address               *string    `json:"address"`
	EmergencyContactName  *string    `json:"emergency_contact_name"`
	EmergencyContactPhone *string    `json:"emergency_contact_phone"`
	IsActive              *bool      `json:"is_active"`
}

// PatientResponse paciente en respuestas.
type PatientResponse struct {
	ID                    string     `json:"id"`
	Name                  string     `json:"name"`
	Email                 string     `json:"email,omitempty"`
	Phone                 string     `json:"phone,omitempty"`
	DateOfBirth           *time.Time `json:"date_of_birth,omitempty"`
	Gender                string     `json:"gender,omitempty"`
	Address               string     `json:"address,omitempty"`
	EmergencyContactName  string     `json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone string     `json:"emergency_contact_phone,omitempty"`
	IsActive              bool       `json:"is_active"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`
}

// PatientListResponse lista paginada de pacientes.
type PatientListResponse struct {
	Items []PatientResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
