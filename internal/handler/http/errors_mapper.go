package http

import (
	"errors"
	"net/http"

	"github.com/Schmolo/nhplus-umsetzung/internal/service"
	"github.com/Schmolo/nhplus-umsetzung/internal/store"
)

// errorStatuses is checked in order; the first matching sentinel decides the
// status, so an error wrapping several sentinels always maps the same way.
var errorStatuses = []struct {
	target error
	status int
}{
	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{service.ErrAuthenticationFailed, http.StatusUnauthorized},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
	{service.ErrForbidden, http.StatusForbidden},
	{service.ErrUnknownKind, http.StatusNotFound},

	{store.ErrRecordNotFound, http.StatusNotFound},
	{store.ErrUsernameAlreadyExists, http.StatusConflict},

	{store.ErrBuildingSQLQuery, http.StatusInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
	{store.ErrExecutingStatement, http.StatusInternalServerError},
	{store.ErrScanningRow, http.StatusInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	for _, entry := range errorStatuses {
		if errors.Is(err, entry.target) {
			return entry.status
		}
	}
	return http.StatusInternalServerError
}

// writeError maps a service or store error to its HTTP status and writes a
// plain-text body. The body never echoes internal error details for 5xx
// responses.
func writeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		http.Error(w, http.StatusText(status), status)
		return
	}
	http.Error(w, err.Error(), status)
}
