package models

import "strings"

// PersonName is the shared name value for person-like records (patients and
// caregivers). It is composed into each entity instead of being inherited,
// so the entities stay plain structs without virtual dispatch.
type PersonName struct {
	// FirstName is the given name of the person.
	FirstName string `json:"first_name"`

	// Surname is the family name of the person.
	Surname string `json:"surname"`
}

// FullName returns "FirstName Surname" with surrounding whitespace trimmed,
// suitable for display and audit entries.
func (n PersonName) FullName() string {
	return strings.TrimSpace(n.FirstName + " " + n.Surname)
}
