package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Schmolo/nhplus-umsetzung/internal/utils"
	"github.com/Schmolo/nhplus-umsetzung/models"
)

var errInvalidID = errors.New("invalid id in URL")

// idFromURL parses the {id} chi route parameter as a positive int64.
func idFromURL(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}

// identityFromRequest returns the authenticated identity the auth middleware
// stored in the request context. The bool is false only when the handler is
// reached without the middleware, which is a routing bug.
func identityFromRequest(r *http.Request) (models.Identity, bool) {
	return utils.GetIdentityFromContext(r.Context())
}
