package models

import "time"

// Treatment represents a single treatment session of a patient.
type Treatment struct {
	// TreatmentID is the internal unique identifier of the treatment.
	TreatmentID int64 `json:"treatment_id"`

	// PatientID references the treated patient.
	PatientID int64 `json:"patient_id"`

	// Date is the calendar date on which the treatment took place.
	Date time.Time `json:"date"`

	// Begin is the start time of the treatment in "hh:mm" format.
	Begin string `json:"begin"`

	// End is the end time of the treatment in "hh:mm" format.
	End string `json:"end"`

	// Description is a short description of the treatment.
	Description string `json:"description"`

	// Remarks holds free-form remarks about the treatment.
	Remarks string `json:"remarks"`

	// Locked marks the record as retention-locked, hiding it from listings
	// and scheduling its deletion.
	Locked bool `json:"locked"`

	// LockExpiry is the date after which the sweeper may delete the record.
	// Nil while the record is unlocked.
	LockExpiry *time.Time `json:"lock_expiry,omitempty"`
}

// TableName returns the name of the database table
// associated with the Treatment model.
func (t Treatment) TableName() string {
	return "treatment"
}
