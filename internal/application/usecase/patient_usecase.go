package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/hospital-pos-api/internal/application/dto"
	"github.com/jhoicas/hospital-pos-api/internal/domain"
	"github.com/jhoicas/hospital-pos-api/internal/domain/entity"
	"github.com/jhoicas/hospital-pos-api/internal/domain/repository"
)

// PatientUseCase casos de uso CRUD para pacientes.
// El paciente centinela walk-in no se puede modificar ni borrar.
type PatientUseCase struct {
	repo repository.PatientRepository
}

// NewPatientUseCase construye el caso de uso.
func NewPatientUseCase(repo repository.PatientRepository) *PatientUseCase {
	return &PatientUseCase{repo: repo}
}

// Create crea un paciente.
func (uc *PatientUseCase) Create(in dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	now := time.Now()
	patient := &entity.Patient{
		ID:                    uuid.New().String(),
		Name:                  in.Name,
		Email:                 in.Email,
		Phone:                 in.Phone,
		DateOfBirth:           in.DateOfBirth,
		Gender:                in.Gender,
		Address:               in.Address,
		EmergencyContactName:  in.EmergencyContactName,
		EmergencyContactPhone: in.EmergencyContactPhone,
		IsActive:              true,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
	if err := uc.repo.Create(patient); err != nil {
		return nil, err
	}
	return toPatientResponse(patient), nil
}

// GetByID obtiene un paciente por ID.
func (uc *PatientUseCase) GetByID(id string) (*dto.PatientResponse, error) {
	patient, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, nil
	}
	return toPatientResponse(patient), nil
}

// Update actualiza un paciente.
func (uc *PatientUseCase) Update(id string, in dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	if id == entity.WalkInPatientID {
		return nil, domain.ErrForbidden
	}
	patient, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, nil
	}
	if in.Name != nil {
		patient.Name = *in.Name
	}
	if in.Email != nil {
		patient.Email = *in.Email
	}
	if in.Phone != nil {
		patient.Phone = *in.Phone
	}
	if in.DateOfBirth != nil {
		patient.DateOfBirth = in.DateOfBirth
	}
	if in.Gender != nil {
		patient.Gender = *in.Gender
	}
	if in.Address != nil {
		patient.Address = *in.Address
	}
	if in.EmergencyContactName != nil {
		patient.EmergencyContactName = *in.EmergencyContactName
	}
	if in.EmergencyContactPhone != nil {
		patient.EmergencyContactPhone = *in.EmergencyContactPhone
	}
	if in.IsActive != nil {
		patient.IsActive = *in.IsActive
	}
	patient.UpdatedAt = time.Now()
	if err := uc.repo.Update(patient); err != nil {
		return nil, err
	}
	return toPatientResponse(patient), nil
}

// List lista pacientes con paginación.
func (uc *PatientUseCase) List(limit, offset int) (*dto.PatientListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PatientResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toPatientResponse(p))
	}
	return &dto.PatientListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un paciente por ID (el centinela walk-in nunca).
func (uc *PatientUseCase) Delete(id string) error {
	if id == entity.WalkInPatientID {
		return domain.ErrForbidden
	}
	return uc.repo.Delete(id)
}

func toPatientResponse(p *entity.Patient) *dto.PatientResponse {
	return &dto.PatientResponse{
		ID:                    p.ID,
		Name:                  p.Name,
		Email:                 p.Email,
		Phone:                 p.Phone,
		DateOfBirth:           p.DateOfBirth,
		Gender:                p.Gender,
		Address:               p.Address,
		EmergencyContactName:  p.EmergencyContactName,
		EmergencyContactPhone: p.EmergencyContactPhone,
		IsActive:              p.IsActive,
		CreatedAt:             p.CreatedAt,
		UpdatedAt:             p.UpdatedAt,
	}
}
