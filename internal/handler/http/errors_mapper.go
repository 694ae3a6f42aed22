package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-expense-keeper/internal/logger"
	"github.com/MKhiriev/go-expense-keeper/internal/service"
	"github.com/MKhiriev/go-expense-keeper/internal/store"
	"github.com/MKhiriev/go-expense-keeper/internal/utils"
	"github.com/MKhiriev/go-expense-keeper/models"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON:       http.StatusBadRequest,
	ErrInvalidQueryParam: http.StatusBadRequest,
	ErrNoUserInContext:   http.StatusInternalServerError,

	service.ErrInvalidDataProvided:       http.StatusBadRequest,
	service.ErrDuplicateIdentity:         http.StatusConflict,
	service.ErrInvalidCredentials:        http.StatusUnauthorized,
	service.ErrExpiredToken:              http.StatusUnauthorized,
	service.ErrInvalidSignature:          http.StatusUnauthorized,
	service.ErrMalformedToken:            http.StatusUnauthorized,
	service.ErrUnknownSubject:            http.StatusUnauthorized,
	service.ErrInvalidOrExpiredResetCode: http.StatusBadRequest,
	service.ErrExpenseNotFound:           http.StatusNotFound,
	service.ErrTokenCreationFailed:       http.StatusInternalServerError,

	store.ErrIdentityAlreadyExists: http.StatusConflict,
	store.ErrExpenseNotFound:       http.StatusNotFound,
	store.ErrBuildingSQLQuery:      http.StatusInternalServerError,
	store.ErrExecutingQuery:        http.StatusInternalServerError,
	store.ErrScanningRow:           http.StatusInternalServerError,
	store.ErrScanningRows:          http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError answers with the status mapped from err and a {"detail": ...}
// body. Server-side failures never expose the error text.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	detail := err.Error()
	switch {
	case status >= http.StatusInternalServerError:
		log.Err(err).Int("status", status).Msg("request failed")
		detail = detailInternalError
	case status == http.StatusUnauthorized:
		log.Info().Err(err).Msg("request unauthenticated")
		w.Header().Set("WWW-Authenticate", "Bearer")
		detail = detailNotAuthenticated
		if errors.Is(err, service.ErrInvalidCredentials) {
			detail = detailWrongCredentials
		}
	default:
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	writeDetail(w, detail, status)
}

func writeDetail(w http.ResponseWriter, detail string, status int) {
	utils.WriteJSON(w, models.DetailResponse{Detail: detail}, status)
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	writeDetail(w, detailNotFound, http.StatusNotFound)
}

func methodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	writeDetail(w, detailMethodNotAllowed, http.StatusMethodNotAllowed)
}
