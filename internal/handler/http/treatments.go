package http

import (
	"encoding/json"
	"net/http"

	"github.com/Schmolo/nhplus-umsetzung/internal/logger"
	"github.com/Schmolo/nhplus-umsetzung/internal/utils"
	"github.com/Schmolo/nhplus-umsetzung/models"
)

func (h *Handler) listTreatments(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	treatments, err := h.services.Records.ListTreatments(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.listTreatments").Msg("error listing treatments")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, treatments, http.StatusOK)
}

func (h *Handler) createTreatment(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var treatment models.Treatment
	if err := json.NewDecoder(r.Body).Decode(&treatment); err != nil {
		log.Err(err).Str("func", "*Handler.createTreatment").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.Records.CreateTreatment(r.Context(), treatment)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createTreatment").Msg("error creating treatment")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) getTreatment(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := idFromURL(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	treatment, err := h.services.Records.GetTreatment(r.Context(), id)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getTreatment").Int64("id", id).Msg("error finding treatment")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, treatment, http.StatusOK)
}

func (h *Handler) updateTreatment(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := idFromURL(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var treatment models.Treatment
	if err := json.NewDecoder(r.Body).Decode(&treatment); err != nil {
		log.Err(err).Str("func", "*Handler.updateTreatment").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	treatment.TreatmentID = id

	if err := h.services.Records.UpdateTreatment(r.Context(), treatment); err != nil {
		log.Err(err).Str("func", "*Handler.updateTreatment").Int64("id", id).Msg("error updating treatment")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) lockTreatment(w http.ResponseWriter, r *http.Request) {
	h.lockRecord(w, r, models.KindTreatment)
}

func (h *Handler) deleteTreatment(w http.ResponseWriter, r *http.Request) {
	h.deleteRecord(w, r, models.KindTreatment)
}
