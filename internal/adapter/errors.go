package adapter

import "errors"

// Sentinel errors mapped from HTTP response statuses. Callers can match
// against them with [errors.Is] to react to specific failure classes.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
)
