package models

// Identity is the authenticated-caller value returned by a successful login.
// It is always fully populated: an authentication failure never yields a
// partially constructed Identity.
//
// Identity replaces the original application's process-wide session holder;
// callers pass it (or the token it was derived from) explicitly instead of
// reading a mutable singleton.
type Identity struct {
	// CaregiverID is the account's internal identifier.
	CaregiverID int64 `json:"caregiver_id"`

	// DisplayName is the caregiver's full name for display and audit entries.
	DisplayName string `json:"display_name"`

	// Admin indicates whether the account has administrative privileges.
	Admin bool `json:"admin"`
}
