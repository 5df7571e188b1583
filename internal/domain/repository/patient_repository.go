package repository

import "github.com/jhoicas/hospital-pos-api/internal/domain/entity"

// PatientRepository define el puerto de persistencia para Patient (DIP).
type PatientRepository interface {
	Create(patient *entity.Patient) error
	GetByID(id string) (*entity.Patient, error)
	Update(patient *entity.Patient) error
	List(limit, offset int) ([]*entity.Patient, error)
	Delete(id string) error
}
