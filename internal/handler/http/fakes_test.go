package http

import (
	"context"
	"io"

	"github.com/Schmolo/nhplus-umsetzung/internal/service"
	"github.com/Schmolo/nhplus-umsetzung/models"
)

// fakeAuthService is a scripted AuthService for handler tests.
type fakeAuthService struct {
	loginIdentity models.Identity
	loginErr      error
	parseErr      error
	parseIdentity models.Identity
	logoutErr     error
	loggedOut     bool
	registered    *models.Caregiver
	registerErr   error
	passwordSet   string
	changePWErr   error
}

func (f *fakeAuthService) Login(_ context.Context, username, password string) (models.Identity, error) {
	if f.loginErr != nil {
		return models.Identity{}, f.loginErr
	}
	return f.loginIdentity, nil
}

func (f *fakeAuthService) CreateToken(_ context.Context, identity models.Identity) (models.Token, error) {
	return models.Token{SignedString: "test-token"}, nil
}

func (f *fakeAuthService) ParseToken(context.Context, string) (models.Token, error) {
	if f.parseErr != nil {
		return models.Token{}, f.parseErr
	}
	token := models.Token{Admin: f.parseIdentity.Admin}
	token.Subject = "42"
	token.ID = "test-jti"
	return token, nil
}

func (f *fakeAuthService) Logout(context.Context, models.Token) error {
	if f.logoutErr != nil {
		return f.logoutErr
	}
	f.loggedOut = true
	return nil
}

func (f *fakeAuthService) RegisterCaregiver(_ context.Context, actor models.Identity, caregiver models.Caregiver, password string) (models.Caregiver, error) {
	if f.registerErr != nil {
		return models.Caregiver{}, f.registerErr
	}
	if !actor.Admin {
		return models.Caregiver{}, service.ErrForbidden
	}
	caregiver.CaregiverID = 7
	f.registered = &caregiver
	return caregiver, nil
}

func (f *fakeAuthService) ChangePassword(_ context.Context, actor models.Identity, caregiverID int64, newPassword string) error {
	if f.changePWErr != nil {
		return f.changePWErr
	}
	f.passwordSet = newPassword
	return nil
}

// fakeRecordsService serves fixed record listings.
type fakeRecordsService struct {
	patients   []models.Patient
	caregivers []models.Caregiver
	treatments []models.Treatment
	err        error
}

func (f *fakeRecordsService) CreatePatient(_ context.Context, patient models.Patient) (models.Patient, error) {
	if f.err != nil {
		return models.Patient{}, f.err
	}
	patient.PatientID = 1
	return patient, nil
}

func (f *fakeRecordsService) GetPatient(context.Context, int64) (models.Patient, error) {
	if f.err != nil {
		return models.Patient{}, f.err
	}
	if len(f.patients) == 0 {
		return models.Patient{}, f.err
	}
	return f.patients[0], nil
}

func (f *fakeRecordsService) ListPatients(context.Context) ([]models.Patient, error) {
	return f.patients, f.err
}

func (f *fakeRecordsService) UpdatePatient(context.Context, models.Patient) error { return f.err }

func (f *fakeRecordsService) ListCaregivers(context.Context) ([]models.Caregiver, error) {
	return f.caregivers, f.err
}

func (f *fakeRecordsService) UpdateCaregiver(context.Context, models.Caregiver) error { return f.err }

func (f *fakeRecordsService) CreateTreatment(_ context.Context, treatment models.Treatment) (models.Treatment, error) {
	if f.err != nil {
		return models.Treatment{}, f.err
	}
	treatment.TreatmentID = 1
	return treatment, nil
}

func (f *fakeRecordsService) GetTreatment(context.Context, int64) (models.Treatment, error) {
	if f.err != nil {
		return models.Treatment{}, f.err
	}
	if len(f.treatments) == 0 {
		return models.Treatment{}, f.err
	}
	return f.treatments[0], nil
}

func (f *fakeRecordsService) ListTreatments(context.Context) ([]models.Treatment, error) {
	return f.treatments, f.err
}

func (f *fakeRecordsService) ListTreatmentsByPatient(context.Context, int64) ([]models.Treatment, error) {
	return f.treatments, f.err
}

func (f *fakeRecordsService) UpdateTreatment(context.Context, models.Treatment) error { return f.err }

// fakeLockService records Lock and Delete invocations.
type fakeLockService struct {
	lockedKind  string
	lockedID    int64
	deletedKind string
	deletedID   int64
	err         error
}

func (f *fakeLockService) Lock(_ context.Context, _ models.Identity, kind string, id int64) error {
	if f.err != nil {
		return f.err
	}
	f.lockedKind, f.lockedID = kind, id
	return nil
}

func (f *fakeLockService) Delete(_ context.Context, _ models.Identity, kind string, id int64) error {
	if f.err != nil {
		return f.err
	}
	f.deletedKind, f.deletedID = kind, id
	return nil
}

// fakeExportService writes a fixed CSV payload.
type fakeExportService struct {
	payload string
	err     error
}

func (f *fakeExportService) ExportPatientsCSV(_ context.Context, _ models.Identity, w io.Writer) error {
	if f.err != nil {
		return f.err
	}
	_, err := io.WriteString(w, f.payload)
	return err
}
