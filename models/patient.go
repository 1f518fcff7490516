package models

import "time"

// Patient represents a resident record. Lock fields are owned exclusively by
// the lock store: once Locked is set the record disappears from ordinary
// listings and is permanently erased by the retention sweeper after
// LockExpiry has passed.
type Patient struct {
	// PatientID is the internal unique identifier of the patient.
	PatientID int64 `json:"patient_id"`

	// PersonName holds the patient's first name and surname.
	PersonName

	// DateOfBirth is the patient's date of birth. Only the date part is
	// meaningful; the time component is always midnight UTC.
	DateOfBirth time.Time `json:"date_of_birth"`

	// CareLevel is the assessed care level of the patient (e.g. "3").
	CareLevel string `json:"care_level"`

	// RoomNumber is the room the patient currently occupies.
	RoomNumber string `json:"room_number"`

	// Locked marks the record as retention-locked. Locked records are hidden
	// from List and scheduled for deletion. There is no unlock operation.
	Locked bool `json:"locked"`

	// LockExpiry is the date after which the sweeper may delete the record.
	// Nil while the record is unlocked.
	LockExpiry *time.Time `json:"lock_expiry,omitempty"`
}

// TableName returns the name of the database table
// associated with the Patient model.
func (p Patient) TableName() string {
	return "patient"
}
