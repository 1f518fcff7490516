package models

import "time"

// Caregiver represents a staff member record that doubles as an operator
// account: the Username/PasswordHash pair authenticates logins, and the Admin
// flag gates administrative endpoints.
//
// PasswordHash stores the encoded "salt:hash" credential produced by the
// crypto package, never a plaintext password.
type Caregiver struct {
	// CaregiverID is the internal unique identifier of the caregiver.
	CaregiverID int64 `json:"caregiver_id"`

	// Username is the unique login identifier of the caregiver.
	Username string `json:"username"`

	// PersonName holds the caregiver's first name and surname.
	PersonName

	// DateOfBirth is the caregiver's date of birth.
	DateOfBirth time.Time `json:"date_of_birth"`

	// PhoneNumber is the caregiver's contact telephone number.
	PhoneNumber string `json:"phone_number"`

	// PasswordHash is the stored credential in "salt:hash" form.
	// It is never exposed via JSON.
	PasswordHash string `json:"-"`

	// Admin indicates whether the caregiver may perform administrative
	// operations such as registering new accounts.
	Admin bool `json:"admin"`

	// Locked marks the record as retention-locked, hiding it from listings
	// and scheduling its deletion.
	Locked bool `json:"locked"`

	// LockExpiry is the date after which the sweeper may delete the record.
	// Nil while the record is unlocked.
	LockExpiry *time.Time `json:"lock_expiry,omitempty"`
}

// TableName returns the name of the database table
// associated with the Caregiver model.
func (c Caregiver) TableName() string {
	return "caregiver"
}
