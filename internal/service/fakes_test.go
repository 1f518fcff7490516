package service

import (
	"context"
	"time"

	"github.com/Schmolo/nhplus-umsetzung/internal/store"
	"github.com/Schmolo/nhplus-umsetzung/models"
)

// fakeCaregiverRepo serves caregivers from an in-memory map keyed by
// username.
type fakeCaregiverRepo struct {
	byUsername map[string]models.Caregiver
	created    []models.Caregiver
	updatedPW  map[int64]string
	findErr    error
	createErr  error
	nextID     int64
}

func newFakeCaregiverRepo() *fakeCaregiverRepo {
	return &fakeCaregiverRepo{
		byUsername: make(map[string]models.Caregiver),
		updatedPW:  make(map[int64]string),
		nextID:     1,
	}
}

func (f *fakeCaregiverRepo) CreateCaregiver(_ context.Context, caregiver models.Caregiver) (models.Caregiver, error) {
	if f.createErr != nil {
		return models.Caregiver{}, f.createErr
	}
	caregiver.CaregiverID = f.nextID
	f.nextID++
	f.byUsername[caregiver.Username] = caregiver
	f.created = append(f.created, caregiver)
	return caregiver, nil
}

func (f *fakeCaregiverRepo) FindCaregiverByUsername(_ context.Context, username string) (models.Caregiver, error) {
	if f.findErr != nil {
		return models.Caregiver{}, f.findErr
	}
	caregiver, ok := f.byUsername[username]
	if !ok {
		return models.Caregiver{}, store.ErrRecordNotFound
	}
	return caregiver, nil
}

func (f *fakeCaregiverRepo) ListCaregivers(_ context.Context) ([]models.Caregiver, error) {
	var all []models.Caregiver
	for _, c := range f.byUsername {
		if !c.Locked {
			all = append(all, c)
		}
	}
	return all, nil
}

func (f *fakeCaregiverRepo) UpdateCaregiver(_ context.Context, caregiver models.Caregiver) error {
	f.byUsername[caregiver.Username] = caregiver
	return nil
}

func (f *fakeCaregiverRepo) UpdatePasswordHash(_ context.Context, caregiverID int64, passwordHash string) error {
	f.updatedPW[caregiverID] = passwordHash
	return nil
}

// fakeRevocationList records revoked token ids in a map.
type fakeRevocationList struct {
	revoked   map[string]time.Time
	revokeErr error
	checkErr  error
}

func newFakeRevocationList() *fakeRevocationList {
	return &fakeRevocationList{revoked: make(map[string]time.Time)}
}

func (f *fakeRevocationList) Revoke(_ context.Context, tokenID string, expiresAt time.Time) error {
	if f.revokeErr != nil {
		return f.revokeErr
	}
	f.revoked[tokenID] = expiresAt
	return nil
}

func (f *fakeRevocationList) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	if f.checkErr != nil {
		return false, f.checkErr
	}
	_, ok := f.revoked[tokenID]
	return ok, nil
}

// fakeLockStore records Lock and DeleteByID calls for one kind.
type fakeLockStore struct {
	kind      string
	locked    []int64
	deleted   []int64
	lockErr   error
	deleteErr error
	listErr   error
	records   []models.LockedRecord
}

func (f *fakeLockStore) Kind() string { return f.kind }

func (f *fakeLockStore) Lock(_ context.Context, id int64) error {
	if f.lockErr != nil {
		return f.lockErr
	}
	f.locked = append(f.locked, id)
	return nil
}

func (f *fakeLockStore) ListLocked(_ context.Context) ([]models.LockedRecord, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.records, nil
}

func (f *fakeLockStore) DeleteByID(_ context.Context, id int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

// fakePatientRepo serves a fixed patient list.
type fakePatientRepo struct {
	patients []models.Patient
	listErr  error
}

func (f *fakePatientRepo) CreatePatient(_ context.Context, patient models.Patient) (models.Patient, error) {
	patient.PatientID = int64(len(f.patients) + 1)
	f.patients = append(f.patients, patient)
	return patient, nil
}

func (f *fakePatientRepo) FindPatientByID(_ context.Context, id int64) (models.Patient, error) {
	for _, p := range f.patients {
		if p.PatientID == id {
			return p, nil
		}
	}
	return models.Patient{}, store.ErrRecordNotFound
}

func (f *fakePatientRepo) ListPatients(_ context.Context) ([]models.Patient, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.patients, nil
}

func (f *fakePatientRepo) UpdatePatient(_ context.Context, patient models.Patient) error {
	for i, p := range f.patients {
		if p.PatientID == patient.PatientID {
			f.patients[i] = patient
			return nil
		}
	}
	return store.ErrRecordNotFound
}
