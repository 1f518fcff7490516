package service

import (
	"context"
	"io"

	"github.com/Schmolo/nhplus-umsetzung/models"
)

// AuthService authenticates operators and manages their session tokens and
// credentials.
type AuthService interface {
	// Login verifies a username/password pair and returns the fully
	// populated identity of the account. Every failure mode (unknown
	// username, wrong password, locked account, malformed stored
	// credential) surfaces as ErrAuthenticationFailed.
	Login(ctx context.Context, username, password string) (models.Identity, error)

	// CreateToken issues a signed session token for an authenticated
	// identity.
	CreateToken(ctx context.Context, identity models.Identity) (models.Token, error)

	// ParseToken validates a raw token string, including a revocation-list
	// check, and returns the decoded token.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// Logout revokes a parsed token for its remaining lifetime.
	Logout(ctx context.Context, token models.Token) error

	// RegisterCaregiver creates a caregiver account with a freshly derived
	// credential. Restricted to administrators.
	RegisterCaregiver(ctx context.Context, actor models.Identity, caregiver models.Caregiver, password string) (models.Caregiver, error)

	// ChangePassword re-derives and replaces the stored credential of an
	// account. Operators may change their own password; administrators may
	// change anyone's.
	ChangePassword(ctx context.Context, actor models.Identity, caregiverID int64, newPassword string) error
}

// RecordsService is the CRUD surface over the three record kinds. Listings
// never include retention-locked records.
type RecordsService interface {
	CreatePatient(ctx context.Context, patient models.Patient) (models.Patient, error)
	GetPatient(ctx context.Context, id int64) (models.Patient, error)
	ListPatients(ctx context.Context) ([]models.Patient, error)
	UpdatePatient(ctx context.Context, patient models.Patient) error

	ListCaregivers(ctx context.Context) ([]models.Caregiver, error)
	UpdateCaregiver(ctx context.Context, caregiver models.Caregiver) error

	CreateTreatment(ctx context.Context, treatment models.Treatment) (models.Treatment, error)
	GetTreatment(ctx context.Context, id int64) (models.Treatment, error)
	ListTreatments(ctx context.Context) ([]models.Treatment, error)
	ListTreatmentsByPatient(ctx context.Context, patientID int64) ([]models.Treatment, error)
	UpdateTreatment(ctx context.Context, treatment models.Treatment) error
}

// LockService applies retention locks and performs hard deletes, recording
// both in the audit trail.
type LockService interface {
	// Lock marks the record of the given kind as retention-locked. The lock
	// is irreversible; the record stays hidden until the sweeper erases it
	// after the retention period.
	Lock(ctx context.Context, actor models.Identity, kind string, id int64) error

	// Delete permanently removes the record of the given kind.
	Delete(ctx context.Context, actor models.Identity, kind string, id int64) error
}

// ExportService streams record listings in CSV form.
type ExportService interface {
	// ExportPatientsCSV writes all unlocked patients as CSV to w.
	ExportPatientsCSV(ctx context.Context, actor models.Identity, w io.Writer) error
}
