package http

import (
	"net/http"

	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/internal/utils"
	"github.com/MKhiriev/go-auth-gate/models"
)

const sessionCookieName = "sid"

// withSession resolves the signed sid cookie into a *models.SessionContext
// and stores it in the request context. A missing, tampered or expired
// cookie yields an anonymous context; the request is never rejected here.
// When the session store fails the decoded id is kept, so logout still
// reaches the store and reports its failure.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromRequest(r)

		var sessionID string
		if cookie, err := r.Cookie(sessionCookieName); err == nil {
			if err = h.cookies.Decode(sessionCookieName, cookie.Value, &sessionID); err != nil {
				log.Debug().Err(err).Msg("session cookie rejected")
				sessionID = ""
			}
		}

		sc, err := h.services.SessionGateway.LoadSession(ctx, sessionID)
		if err != nil {
			log.Err(err).Str("session_id", sessionID).Msg("session could not be loaded, continuing anonymously")
			if sc == nil || sc.ID == "" {
				sc = &models.SessionContext{ID: sessionID}
			}
		}

		next.ServeHTTP(w, r.WithContext(utils.WithSessionContext(ctx, sc)))
	})
}

func (h *Handler) setSessionCookie(w http.ResponseWriter, sessionID string) error {
	encoded, err := h.cookies.Encode(sessionCookieName, sessionID)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    encoded,
		Path:     "/",
		MaxAge:   int(h.sessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}
