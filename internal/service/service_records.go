package service

import (
	"context"
	"fmt"

	"github.com/Schmolo/nhplus-umsetzung/internal/logger"
	"github.com/Schmolo/nhplus-umsetzung/internal/store"
	"github.com/Schmolo/nhplus-umsetzung/models"
)

// recordsService implements RecordsService as a thin validation layer over
// the repositories. Listing results never contain locked records because the
// repositories filter them out at the query level.
type recordsService struct {
	repos  *store.Repositories
	logger *logger.Logger
}

// NewRecordsService assembles a RecordsService over the repository set.
func NewRecordsService(repos *store.Repositories, log *logger.Logger) RecordsService {
	return &recordsService{repos: repos, logger: log}
}

func (s *recordsService) CreatePatient(ctx context.Context, patient models.Patient) (models.Patient, error) {
	if patient.FirstName == "" || patient.Surname == "" {
		return models.Patient{}, fmt.Errorf("%w: patient name is required", ErrInvalidDataProvided)
	}
	return s.repos.Patients.CreatePatient(ctx, patient)
}

func (s *recordsService) GetPatient(ctx context.Context, id int64) (models.Patient, error) {
	return s.repos.Patients.FindPatientByID(ctx, id)
}

func (s *recordsService) ListPatients(ctx context.Context) ([]models.Patient, error) {
	return s.repos.Patients.ListPatients(ctx)
}

func (s *recordsService) UpdatePatient(ctx context.Context, patient models.Patient) error {
	if patient.PatientID == 0 {
		return fmt.Errorf("%w: patient id is required", ErrInvalidDataProvided)
	}
	if patient.FirstName == "" || patient.Surname == "" {
		return fmt.Errorf("%w: patient name is required", ErrInvalidDataProvided)
	}
	return s.repos.Patients.UpdatePatient(ctx, patient)
}

func (s *recordsService) ListCaregivers(ctx context.Context) ([]models.Caregiver, error) {
	return s.repos.Caregivers.ListCaregivers(ctx)
}

func (s *recordsService) UpdateCaregiver(ctx context.Context, caregiver models.Caregiver) error {
	if caregiver.CaregiverID == 0 {
		return fmt.Errorf("%w: caregiver id is required", ErrInvalidDataProvided)
	}
	if caregiver.FirstName == "" || caregiver.Surname == "" {
		return fmt.Errorf("%w: caregiver name is required", ErrInvalidDataProvided)
	}
	return s.repos.Caregivers.UpdateCaregiver(ctx, caregiver)
}

func (s *recordsService) CreateTreatment(ctx context.Context, treatment models.Treatment) (models.Treatment, error) {
	if treatment.PatientID == 0 {
		return models.Treatment{}, fmt.Errorf("%w: treatment must reference a patient", ErrInvalidDataProvided)
	}
	if treatment.Description == "" {
		return models.Treatment{}, fmt.Errorf("%w: treatment description is required", ErrInvalidDataProvided)
	}
	return s.repos.Treatments.CreateTreatment(ctx, treatment)
}

func (s *recordsService) GetTreatment(ctx context.Context, id int64) (models.Treatment, error) {
	return s.repos.Treatments.FindTreatmentByID(ctx, id)
}

func (s *recordsService) ListTreatments(ctx context.Context) ([]models.Treatment, error) {
	return s.repos.Treatments.ListTreatments(ctx)
}

func (s *recordsService) ListTreatmentsByPatient(ctx context.Context, patientID int64) ([]models.Treatment, error) {
	return s.repos.Treatments.ListTreatmentsByPatient(ctx, patientID)
}

func (s *recordsService) UpdateTreatment(ctx context.Context, treatment models.Treatment) error {
	if treatment.TreatmentID == 0 {
		return fmt.Errorf("%w: treatment id is required", ErrInvalidDataProvided)
	}
	return s.repos.Treatments.UpdateTreatment(ctx, treatment)
}
