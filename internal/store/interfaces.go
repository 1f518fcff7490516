package store

import (
	"context"
	"time"

	"github.com/Schmolo/nhplus-umsetzung/models"
)

// LockStore is the per-entity-kind retention-lock contract. One
// implementation exists per managed table (patient, caregiver, treatment);
// all of them share the generic lockStore implementation parameterised by
// table and id column.
//
// Every method executes as a single atomic statement against the backing
// store, so a Lock call and a concurrent sweep pass cannot interleave into an
// inconsistent state.
type LockStore interface {
	// Kind returns the entity kind this store manages ("patient",
	// "caregiver", or "treatment"). Used for logging and sweep isolation.
	Kind() string

	// Lock marks the record as retention-locked and records its expiry as
	// the current date plus the fixed retention period. Locking an
	// already-locked record refreshes the expiry. Returns ErrRecordNotFound
	// if no record with the given id exists.
	Lock(ctx context.Context, id int64) error

	// ListLocked returns the id and lock expiry of every currently locked
	// record of this kind, in unspecified order.
	ListLocked(ctx context.Context) ([]models.LockedRecord, error)

	// DeleteByID permanently removes the record. There is no recovery path.
	// Returns ErrRecordNotFound if no record with the given id exists.
	DeleteByID(ctx context.Context, id int64) error
}

// CaregiverRepository persists caregiver records and serves the credential
// lookup used by authentication.
type CaregiverRepository interface {
	CreateCaregiver(ctx context.Context, caregiver models.Caregiver) (models.Caregiver, error)
	FindCaregiverByUsername(ctx context.Context, username string) (models.Caregiver, error)
	ListCaregivers(ctx context.Context) ([]models.Caregiver, error)
	UpdateCaregiver(ctx context.Context, caregiver models.Caregiver) error
	UpdatePasswordHash(ctx context.Context, caregiverID int64, passwordHash string) error
}

// PatientRepository persists patient records.
type PatientRepository interface {
	CreatePatient(ctx context.Context, patient models.Patient) (models.Patient, error)
	FindPatientByID(ctx context.Context, id int64) (models.Patient, error)
	ListPatients(ctx context.Context) ([]models.Patient, error)
	UpdatePatient(ctx context.Context, patient models.Patient) error
}

// TreatmentRepository persists treatment records.
type TreatmentRepository interface {
	CreateTreatment(ctx context.Context, treatment models.Treatment) (models.Treatment, error)
	FindTreatmentByID(ctx context.Context, id int64) (models.Treatment, error)
	ListTreatments(ctx context.Context) ([]models.Treatment, error)
	ListTreatmentsByPatient(ctx context.Context, patientID int64) ([]models.Treatment, error)
	UpdateTreatment(ctx context.Context, treatment models.Treatment) error
}

// RevocationList records session tokens that were invalidated before their
// natural expiry (logout). Entries disappear on their own once the token
// would have expired anyway.
type RevocationList interface {
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
