// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, JWT token generation and validation,
// and other common operations.
package utils

import (
	"context"

	"github.com/Schmolo/nhplus-umsetzung/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// IdentityCtxKey is the key used to store the authenticated caregiver's
// identity in the context. Used together with GetIdentityFromContext for
// type-safe retrieval.
var IdentityCtxKey = contextKey("identity")

// SessionTokenCtxKey is the key used to store the parsed session token in
// the context, so the logout handler can revoke it without re-parsing.
var SessionTokenCtxKey = contextKey("sessionToken")

// GetIdentityFromContext retrieves the authenticated identity from the
// context.
//
// Returns the identity and an ok flag:
//   - ok == true  — value is found and has the correct type
//   - ok == false — value is missing or has an unexpected type
func GetIdentityFromContext(ctx context.Context) (models.Identity, bool) {
	identity, ok := ctx.Value(IdentityCtxKey).(models.Identity)
	return identity, ok
}

// GetSessionTokenFromContext retrieves the parsed session token from the
// context.
func GetSessionTokenFromContext(ctx context.Context) (models.Token, bool) {
	token, ok := ctx.Value(SessionTokenCtxKey).(models.Token)
	return token, ok
}
