package http

import (
	"net/http"

	"github.com/MKhiriev/go-expense-keeper/internal/logger"
	"github.com/MKhiriev/go-expense-keeper/internal/utils"
)

// auth is an HTTP middleware that enforces bearer-token authentication.
//
// It extracts the token from the "Authorization" header, resolves it to a
// user via [service.AuthService.ResolveIdentity] and stores that user in
// the request context under [utils.UserCtxKey].
//
// Every rejection (missing header, wrong scheme, expired, tampered or
// malformed token, deleted user) gets the same 401 response with
// "WWW-Authenticate: Bearer". The specific reason is only logged.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Info().Err(ErrEmptyAuthorizationHeader).Send()
			unauthorized(w)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Info().Err(ErrInvalidAuthorizationHeader).Send()
			unauthorized(w)
			return
		}

		ctx := r.Context()
		user, err := h.services.AuthService.ResolveIdentity(ctx, tokenString)
		if err != nil {
			writeError(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUser(ctx, user)))
	})
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	writeDetail(w, detailNotAuthenticated, http.StatusUnauthorized)
}
