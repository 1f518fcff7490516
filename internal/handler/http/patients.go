package http

import (
	"encoding/json"
	"net/http"

	"github.com/Schmolo/nhplus-umsetzung/internal/logger"
	"github.com/Schmolo/nhplus-umsetzung/internal/utils"
	"github.com/Schmolo/nhplus-umsetzung/models"
)

func (h *Handler) listPatients(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	patients, err := h.services.Records.ListPatients(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.listPatients").Msg("error listing patients")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, patients, http.StatusOK)
}

func (h *Handler) createPatient(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var patient models.Patient
	if err := json.NewDecoder(r.Body).Decode(&patient); err != nil {
		log.Err(err).Str("func", "*Handler.createPatient").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.Records.CreatePatient(r.Context(), patient)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createPatient").Msg("error creating patient")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) getPatient(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := idFromURL(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	patient, err := h.services.Records.GetPatient(r.Context(), id)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getPatient").Int64("id", id).Msg("error finding patient")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, patient, http.StatusOK)
}

func (h *Handler) updatePatient(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := idFromURL(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var patient models.Patient
	if err := json.NewDecoder(r.Body).Decode(&patient); err != nil {
		log.Err(err).Str("func", "*Handler.updatePatient").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	patient.PatientID = id

	if err := h.services.Records.UpdatePatient(r.Context(), patient); err != nil {
		log.Err(err).Str("func", "*Handler.updatePatient").Int64("id", id).Msg("error updating patient")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) lockPatient(w http.ResponseWriter, r *http.Request) {
	h.lockRecord(w, r, models.KindPatient)
}

func (h *Handler) deletePatient(w http.ResponseWriter, r *http.Request) {
	h.deleteRecord(w, r, models.KindPatient)
}

func (h *Handler) listTreatmentsOfPatient(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := idFromURL(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	treatments, err := h.services.Records.ListTreatmentsByPatient(r.Context(), id)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listTreatmentsOfPatient").Int64("patient_id", id).Msg("error listing treatments")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, treatments, http.StatusOK)
}
