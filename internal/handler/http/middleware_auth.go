package http

import (
	"context"
	"net/http"

	"github.com/Schmolo/nhplus-umsetzung/internal/logger"
	"github.com/Schmolo/nhplus-umsetzung/internal/utils"
	"github.com/Schmolo/nhplus-umsetzung/models"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer token,
// validates it via [service.AuthService.ParseToken], and — on success —
// stores the caregiver's identity and the parsed token in the request
// context before delegating to the next handler.
//
// Requests with a missing or malformed header, an expired or otherwise
// invalid token, or a revoked session are all rejected with HTTP 401
// Unauthorized.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		if err != nil {
			log.Err(err).Send()
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.Auth.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		caregiverID, err := token.GetCaregiverID()
		if err != nil {
			log.Err(err).Msg("token subject is not a caregiver id")
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		// Store the identity and parsed token in the context so downstream
		// handlers can authorize and log out without re-parsing the token.
		identity := models.Identity{CaregiverID: caregiverID, Admin: token.Admin}
		ctx = context.WithValue(ctx, utils.IdentityCtxKey, identity)
		ctx = context.WithValue(ctx, utils.SessionTokenCtxKey, token)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
