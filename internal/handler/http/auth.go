package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/internal/metrics"
	"github.com/MKhiriev/go-auth-gate/internal/service"
	"github.com/MKhiriev/go-auth-gate/internal/utils"
	"github.com/MKhiriev/go-auth-gate/models"
)

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	var request models.SignupRequest
	if !h.bindRequest(w, r, &request) {
		h.metrics.ObserveAuth(metrics.OperationSignup, metrics.OutcomeRejected)
		return
	}

	result, err := h.services.AuthService.Signup(r.Context(), request.Name, request.Email, request.Password)
	if err != nil {
		h.writeAuthError(w, r, metrics.OperationSignup, err)
		return
	}

	h.authenticated(w, r, metrics.OperationSignup, result)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var request models.LoginRequest
	if !h.bindRequest(w, r, &request) {
		h.metrics.ObserveAuth(metrics.OperationLogin, metrics.OutcomeRejected)
		return
	}

	result, err := h.services.AuthService.Login(r.Context(), request.Email, request.Password)
	if err != nil {
		h.writeAuthError(w, r, metrics.OperationLogin, err)
		return
	}

	h.authenticated(w, r, metrics.OperationLogin, result)
}

// authenticated binds result to the request's session, sets the session
// cookie and the Authorization header and writes the identity with its token.
func (h *Handler) authenticated(w http.ResponseWriter, r *http.Request, operation string, result models.AuthResult) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	sc, _ := utils.GetSessionContext(ctx)
	if err := h.services.SessionGateway.EstablishSession(ctx, sc, result.Identity, result.Token); err != nil {
		h.writeAuthError(w, r, operation, err)
		return
	}

	if err := h.setSessionCookie(w, sc.ID); err != nil {
		h.writeAuthError(w, r, operation, err)
		return
	}

	log.Debug().Str("user_id", result.Identity.UserID).Str("operation", operation).Msg("user authenticated")
	h.metrics.ObserveAuth(operation, metrics.OutcomeSuccess)

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", result.Token.SignedString))
	utils.WriteJSON(w, models.AuthResponse{
		Name:  result.Identity.Name,
		Email: result.Identity.Email,
		Token: result.Token.SignedString,
	}, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	sc, _ := utils.GetSessionContext(ctx)
	if err := h.services.SessionGateway.DestroySession(ctx, sc); err != nil {
		log.Err(err).Msg("error occurred during logout")
		h.metrics.ObserveAuth(metrics.OperationLogout, metrics.OutcomeError)
		utils.WriteJSON(w, models.MessageResponse{Message: msgLogoutFailed}, http.StatusInternalServerError)
		return
	}

	h.clearSessionCookie(w)
	h.metrics.ObserveAuth(metrics.OperationLogout, metrics.OutcomeSuccess)
	utils.WriteJSON(w, models.MessageResponse{Message: msgLoggedOut}, http.StatusOK)
}

// me returns the identity of the bearer-token owner.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	identity, err := h.services.AuthService.Identify(ctx, userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			log.Err(err).Str("user_id", userID).Msg("token owner no longer exists")
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		default:
			log.Err(err).Msg("unexpected error occurred during identity lookup")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return
	}

	utils.WriteJSON(w, identity, http.StatusOK)
}
