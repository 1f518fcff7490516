package store

import (
	"github.com/Schmolo/nhplus-umsetzung/internal/clock"
	"github.com/Schmolo/nhplus-umsetzung/internal/logger"
)

// Repositories bundles every persistence-layer dependency the service layer
// needs, so wiring in main stays a single constructor call.
type Repositories struct {
	Caregivers CaregiverRepository
	Patients   PatientRepository
	Treatments TreatmentRepository

	// LockStores holds one retention-lock store per managed entity kind.
	// The slice order is also the sweep order; each kind is swept
	// independently of the others.
	LockStores []LockStore
}

// NewRepositories constructs all repositories and lock stores over the given
// database handle.
func NewRepositories(db *DB, clk clock.Clock, log *logger.Logger) *Repositories {
	return &Repositories{
		Caregivers: NewCaregiverRepository(db, log),
		Patients:   NewPatientRepository(db, log),
		Treatments: NewTreatmentRepository(db, log),
		LockStores: []LockStore{
			NewPatientLockStore(db, clk, log),
			NewCaregiverLockStore(db, clk, log),
			NewTreatmentLockStore(db, clk, log),
		},
	}
}

// LockStoreFor returns the lock store managing the given entity kind, or nil
// if the kind is unknown.
func (r *Repositories) LockStoreFor(kind string) LockStore {
	for _, s := range r.LockStores {
		if s.Kind() == kind {
			return s
		}
	}
	return nil
}
