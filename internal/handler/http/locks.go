package http

import (
	"net/http"

	"github.com/Schmolo/nhplus-umsetzung/internal/logger"
)

// lockRecord is the shared implementation of every POST /{id}/lock endpoint.
// Locking is available to any authenticated caregiver; the operation is
// irreversible.
func (h *Handler) lockRecord(w http.ResponseWriter, r *http.Request, kind string) {
	log := logger.FromRequest(r)

	actor, ok := identityFromRequest(r)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	id, err := idFromURL(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.services.Locks.Lock(r.Context(), actor, kind, id); err != nil {
		log.Err(err).Str("func", "*Handler.lockRecord").Str("kind", kind).Int64("id", id).Msg("error locking record")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// deleteRecord is the shared implementation of every DELETE /{id} endpoint.
// Hard deletes bypass the retention period, so they are restricted to
// administrators.
func (h *Handler) deleteRecord(w http.ResponseWriter, r *http.Request, kind string) {
	log := logger.FromRequest(r)

	actor, ok := identityFromRequest(r)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}
	if !actor.Admin {
		http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		return
	}

	id, err := idFromURL(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.services.Locks.Delete(r.Context(), actor, kind, id); err != nil {
		log.Err(err).Str("func", "*Handler.deleteRecord").Str("kind", kind).Int64("id", id).Msg("error deleting record")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
