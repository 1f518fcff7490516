package http

import (
	"net/http"

	"github.com/Schmolo/nhplus-umsetzung/internal/logger"
)

func (h *Handler) exportPatients(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	actor, ok := identityFromRequest(r)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="patients.csv"`)

	if err := h.services.Export.ExportPatientsCSV(r.Context(), actor, w); err != nil {
		// Headers may already be on the wire; all we can do is log.
		log.Err(err).Str("func", "*Handler.exportPatients").Msg("error exporting patients")
		return
	}
}
