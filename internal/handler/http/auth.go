package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/Schmolo/nhplus-umsetzung/internal/logger"
	"github.com/Schmolo/nhplus-umsetzung/internal/service"
	"github.com/Schmolo/nhplus-umsetzung/internal/utils"
)

// loginRequest is the JSON body of POST /api/login.
type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// loginResponse is the JSON body returned on successful login. The token is
// additionally set in the "Authorization" response header.
type loginResponse struct {
	Token       string `json:"token"`
	CaregiverID int64  `json:"caregiver_id"`
	DisplayName string `json:"display_name"`
	Admin       bool   `json:"admin"`
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	identity, err := h.services.Auth.Login(ctx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrAuthenticationFailed) {
			// Deliberately the same message for every failure cause.
			log.Err(err).Msg("login failed")
			http.Error(w, "invalid username/password", http.StatusUnauthorized)
			return
		}
		log.Err(err).Msg("unexpected error occurred during login")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	log.Debug().Int64("caregiver_id", identity.CaregiverID).Msg("caregiver successfully logged in")

	token, err := h.services.Auth.CreateToken(ctx, identity)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, loginResponse{
		Token:       token.SignedString,
		CaregiverID: identity.CaregiverID,
		DisplayName: identity.DisplayName,
		Admin:       identity.Admin,
	}, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	token, ok := utils.GetSessionTokenFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	if err := h.services.Auth.Logout(ctx, token); err != nil {
		log.Err(err).Msg("logout failed")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
