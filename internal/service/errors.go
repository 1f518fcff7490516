package service

import "errors"

var (
	// ErrInvalidDataProvided is returned when a request is missing required
	// fields before any persistence work is attempted.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrAuthenticationFailed is the uniform login failure: a missing
	// account and a wrong password produce the same error so callers cannot
	// distinguish valid from invalid usernames.
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrTokenIsExpiredOrInvalid normalises every token validation failure
	// (expired, revoked, wrong issuer, malformed) so callers do not need to
	// inspect low-level JWT errors.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrForbidden is returned when the caller's identity lacks the
	// administrator flag required for the operation.
	ErrForbidden = errors.New("operation requires administrator privileges")

	// ErrUnknownKind is returned when a lock or delete names an entity kind
	// no lock store manages.
	ErrUnknownKind = errors.New("unknown entity kind")
)
