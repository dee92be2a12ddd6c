package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/internal/metrics"
	"github.com/MKhiriev/go-auth-gate/internal/service"
	"github.com/MKhiriev/go-auth-gate/internal/utils"
	"github.com/MKhiriev/go-auth-gate/models"
)

var errorStatusMap = map[error]int{
	service.ErrValidation:         http.StatusBadRequest,
	service.ErrConflict:           http.StatusBadRequest,
	service.ErrNotFound:           http.StatusBadRequest,
	service.ErrInvalidCredentials: http.StatusBadRequest,

	service.ErrTokenExpired:          http.StatusUnauthorized,
	service.ErrTokenSignatureInvalid: http.StatusUnauthorized,
	service.ErrTokenInvalid:          http.StatusUnauthorized,

	service.ErrSessionTeardown:      http.StatusInternalServerError,
	service.ErrSessionPersistFailed: http.StatusInternalServerError,
	service.ErrTokenCreationFailed:  http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeAuthError answers a failed signup or login. Client errors carry the
// service message, everything else is reported as an internal error.
func (h *Handler) writeAuthError(w http.ResponseWriter, r *http.Request, operation string, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	if status == http.StatusBadRequest {
		log.Debug().Err(err).Str("operation", operation).Msg("request rejected")
		h.metrics.ObserveAuth(operation, metrics.OutcomeRejected)
		utils.WriteJSON(w, models.ErrorResponse{Error: err.Error()}, status)
		return
	}

	log.Err(err).Str("operation", operation).Msg("unexpected error occurred")
	h.metrics.ObserveAuth(operation, metrics.OutcomeError)
	utils.WriteJSON(w, models.ErrorResponse{Error: msgInternalError}, http.StatusInternalServerError)
}
