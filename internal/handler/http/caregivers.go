package http

import (
	"encoding/json"
	"net/http"

	"github.com/Schmolo/nhplus-umsetzung/internal/logger"
	"github.com/Schmolo/nhplus-umsetzung/internal/utils"
	"github.com/Schmolo/nhplus-umsetzung/models"
)

// registerCaregiverRequest is the JSON body of POST /api/caregivers.
type registerCaregiverRequest struct {
	models.Caregiver
	Password string `json:"password"`
}

// changePasswordRequest is the JSON body of POST /api/caregivers/{id}/password.
type changePasswordRequest struct {
	NewPassword string `json:"new_password"`
}

func (h *Handler) listCaregivers(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	caregivers, err := h.services.Records.ListCaregivers(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.listCaregivers").Msg("error listing caregivers")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, caregivers, http.StatusOK)
}

func (h *Handler) registerCaregiver(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	actor, ok := identityFromRequest(r)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req registerCaregiverRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.registerCaregiver").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.Auth.RegisterCaregiver(r.Context(), actor, req.Caregiver, req.Password)
	if err != nil {
		log.Err(err).Str("func", "*Handler.registerCaregiver").Msg("error registering caregiver")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateCaregiver(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := idFromURL(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var caregiver models.Caregiver
	if err := json.NewDecoder(r.Body).Decode(&caregiver); err != nil {
		log.Err(err).Str("func", "*Handler.updateCaregiver").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	caregiver.CaregiverID = id

	if err := h.services.Records.UpdateCaregiver(r.Context(), caregiver); err != nil {
		log.Err(err).Str("func", "*Handler.updateCaregiver").Int64("id", id).Msg("error updating caregiver")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) changeCaregiverPassword(w http.ResponseWriter, r *http.Request) {
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

	var req changePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.changeCaregiverPassword").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.Auth.ChangePassword(r.Context(), actor, id, req.NewPassword); err != nil {
		log.Err(err).Str("func", "*Handler.changeCaregiverPassword").Int64("id", id).Msg("error changing password")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) lockCaregiver(w http.ResponseWriter, r *http.Request) {
	h.lockRecord(w, r, models.KindCaregiver)
}

func (h *Handler) deleteCaregiver(w http.ResponseWriter, r *http.Request) {
	h.deleteRecord(w, r, models.KindCaregiver)
}
