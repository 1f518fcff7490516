// Package adapter implements the client-side HTTP/REST adapter for the
// nhplus server API. It hides transport details (base URL handling, bearer
// token propagation, status-code mapping) behind the ServerAdapter
// interface consumed by the CLI commands.
package adapter

import (
	"context"

	"github.com/Schmolo/nhplus-umsetzung/models"
)

// LoginResult carries the session token and the identity returned by a
// successful login.
type LoginResult struct {
	Token       string `json:"token"`
	CaregiverID int64  `json:"caregiver_id"`
	DisplayName string `json:"display_name"`
	Admin       bool   `json:"admin"`
}

// ServerAdapter is the client-side view of the nhplus server API.
type ServerAdapter interface {
	// SetToken stores the bearer token used on all authenticated requests.
	SetToken(token string)
	// Token returns the bearer token currently held by the adapter.
	Token() string

	Login(ctx context.Context, username, password string) (LoginResult, error)
	Logout(ctx context.Context) error
	Version(ctx context.Context) (string, error)

	ListPatients(ctx context.Context) ([]models.Patient, error)
	CreatePatient(ctx context.Context, patient models.Patient) (models.Patient, error)
	GetPatient(ctx context.Context, id int64) (models.Patient, error)
	UpdatePatient(ctx context.Context, patient models.Patient) error
	ListTreatmentsOfPatient(ctx context.Context, patientID int64) ([]models.Treatment, error)
	ExportPatientsCSV(ctx context.Context) ([]byte, error)

	ListCaregivers(ctx context.Context) ([]models.Caregiver, error)
	RegisterCaregiver(ctx context.Context, caregiver models.Caregiver, password string) (models.Caregiver, error)
	ChangePassword(ctx context.Context, caregiverID int64, newPassword string) error

	ListTreatments(ctx context.Context) ([]models.Treatment, error)
	CreateTreatment(ctx context.Context, treatment models.Treatment) (models.Treatment, error)
	GetTreatment(ctx context.Context, id int64) (models.Treatment, error)
	UpdateTreatment(ctx context.Context, treatment models.Treatment) error

	// LockRecord marks the record of the given kind as retention-locked.
	LockRecord(ctx context.Context, kind string, id int64) error
	// DeleteRecord permanently removes the record of the given kind.
	DeleteRecord(ctx context.Context, kind string, id int64) error
}
