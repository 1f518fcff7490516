package models

import "time"

// Record kinds under retention control. Lock stores, sweepers and the audit
// trail all identify entity kinds by these names.
const (
	KindPatient   = "patient"
	KindCaregiver = "caregiver"
	KindTreatment = "treatment"
)

// LockedRecord is one row of a lock store's ListLocked result: the identity
// key of a retention-locked record together with the date after which the
// sweeper may delete it. The sweeper only ever reads these two values; it
// never mutates lock state itself.
type LockedRecord struct {
	// ID is the identity key of the locked record within its entity kind.
	ID int64

	// LockExpiry is the retention deadline recorded at lock time.
	LockExpiry time.Time
}
