package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/internal/utils"
	"github.com/MKhiriev/go-auth-gate/internal/validators"
	"github.com/MKhiriev/go-auth-gate/models"
)

// maxRequestBodyBytes caps the JSON body of auth requests.
const maxRequestBodyBytes = 1 << 20

// bindRequest decodes the JSON body into dst and checks its route rules.
// On failure it writes the 4xx response itself and returns false.
func (h *Handler) bindRequest(w http.ResponseWriter, r *http.Request, dst any) bool {
	log := logger.FromRequest(r)

	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			log.Warn().Int64("limit", tooLarge.Limit).Msg(msgBodyTooLarge)
			utils.WriteJSON(w, models.ErrorResponse{Error: msgBodyTooLarge}, http.StatusRequestEntityTooLarge)
			return false
		}

		log.Err(err).Msg(msgInvalidJSON)
		utils.WriteJSON(w, models.ErrorResponse{Error: msgInvalidJSON}, http.StatusBadRequest)
		return false
	}

	err := h.validator.Validate(r.Context(), dst)
	if err == nil {
		return true
	}

	var fieldErrors validators.FieldErrors
	if !errors.As(err, &fieldErrors) {
		log.Err(err).Msg("request validation could not run")
		utils.WriteJSON(w, models.ErrorResponse{Error: msgInternalError}, http.StatusInternalServerError)
		return false
	}

	log.Debug().Err(err).Msg("request validation failed")
	utils.WriteJSON(w, models.ValidationErrorsResponse{Errors: fieldErrors}, http.StatusBadRequest)
	return false
}
