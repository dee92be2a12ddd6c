package http

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/internal/mock"
	"github.com/MKhiriev/go-auth-gate/internal/service"
	"github.com/MKhiriev/go-auth-gate/internal/store"
	"github.com/MKhiriev/go-auth-gate/internal/utils"
	"github.com/MKhiriev/go-auth-gate/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func captureSession(t *testing.T, h *Handler, req *http.Request) *models.SessionContext {
	t.Helper()

	var captured *models.SessionContext
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sc, ok := utils.GetSessionContext(r.Context())
		require.True(t, ok)
		captured = sc
	})

	serve(h.withSession(next), req)
	require.NotNil(t, captured)
	return captured
}

func TestWithSession_NoCookie(t *testing.T) {
	h, m := newTestHandler(t)
	m.session.EXPECT().LoadSession(gomock.Any(), "").Return(&models.SessionContext{}, nil)

	sc := captureSession(t, h, newRequest(http.MethodGet, "/"))

	assert.False(t, sc.Authenticated())
}

func TestWithSession_SignedCookie(t *testing.T) {
	h, m := newTestHandler(t)

	want := &models.SessionContext{ID: "session-1", Session: &models.Session{UserID: "user-1"}}
	m.session.EXPECT().LoadSession(gomock.Any(), "session-1").Return(want, nil)

	encoded, err := h.cookies.Encode(sessionCookieName, "session-1")
	require.NoError(t, err)
	req := newRequest(http.MethodGet, "/")
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: encoded})

	assert.Same(t, want, captureSession(t, h, req))
}

func TestWithSession_TamperedCookieIsAnonymous(t *testing.T) {
	h, m := newTestHandler(t)
	m.session.EXPECT().LoadSession(gomock.Any(), "").Return(&models.SessionContext{}, nil)

	req := newRequest(http.MethodGet, "/")
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "session-1"})

	assert.False(t, captureSession(t, h, req).Authenticated())
}

func TestWithSession_StorageErrorKeepsSessionID(t *testing.T) {
	h, m := newTestHandler(t)

	encoded, err := h.cookies.Encode(sessionCookieName, "session-1")
	require.NoError(t, err)
	m.session.EXPECT().LoadSession(gomock.Any(), "session-1").Return(&models.SessionContext{}, errors.New("redis down"))

	req := newRequest(http.MethodGet, "/")
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: encoded})

	sc := captureSession(t, h, req)
	assert.False(t, sc.Authenticated())
	assert.Equal(t, "session-1", sc.ID)
}

func TestLogout_SessionStoreDownReturns500(t *testing.T) {
	ctrl := gomock.NewController(t)
	storage := mock.NewMockSessionStorage(ctrl)
	cfg := testConfig()

	svcs := &service.Services{
		SessionGateway: service.NewSessionGateway(storage, mock.NewMockIDGenerator(ctrl), cfg.App, logger.Nop()),
	}
	h := NewHandler(svcs, cfg, nil, logger.Nop())

	down := errors.New("storage unavailable")
	storage.EXPECT().Get(gomock.Any(), "live-session-id").Return(models.Session{}, down)
	storage.EXPECT().Delete(gomock.Any(), "live-session-id").Return(down).Times(1)

	encoded, err := h.cookies.Encode(sessionCookieName, "live-session-id")
	require.NoError(t, err)
	req := newRequest(http.MethodPost, "/api/user/logout")
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: encoded})

	rec := serve(h.Init(), req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, msgLogoutFailed, decodeBody[models.MessageResponse](t, rec).Message)
	assert.Nil(t, findCookie(rec, sessionCookieName), "the cookie is kept so logout can be retried")
}

func TestLogin_OverExistingSessionIssuesNewSID(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := mock.NewMockAuthService(ctrl)
	sessions := store.NewMemorySessionStorage(logger.Nop())
	cfg := testConfig()

	svcs := &service.Services{
		AuthService:    auth,
		SessionGateway: service.NewSessionGateway(sessions, utils.NewRandomUUIDGenerator(), cfg.App, logger.Nop()),
	}
	h := NewHandler(svcs, cfg, nil, logger.Nop())
	router := h.Init()

	result := models.AuthResult{
		Identity: models.Identity{UserID: "user-1", Name: "John Doe", Email: "john@example.com"},
		Token:    models.Token{SignedString: "signed.jwt.token", UserID: "user-1"},
	}
	auth.EXPECT().Login(gomock.Any(), "john@example.com", "Password123!").Return(result, nil).Times(2)

	const body = `{"email":"john@example.com","password":"Password123!"}`
	first := doJSON(t, router, http.MethodPost, "/api/user/login", body)
	require.Equal(t, http.StatusOK, first.Code)
	firstCookie := findCookie(first, sessionCookieName)
	require.NotNil(t, firstCookie)

	req := newRequest(http.MethodPost, "/api/user/login")
	req.Body = io.NopCloser(strings.NewReader(body))
	req.AddCookie(firstCookie)
	second := serve(router, req)
	require.Equal(t, http.StatusOK, second.Code)
	secondCookie := findCookie(second, sessionCookieName)
	require.NotNil(t, secondCookie)

	var firstID, secondID string
	require.NoError(t, h.cookies.Decode(sessionCookieName, firstCookie.Value, &firstID))
	require.NoError(t, h.cookies.Decode(sessionCookieName, secondCookie.Value, &secondID))
	assert.NotEqual(t, firstID, secondID)

	_, err := sessions.Get(context.Background(), firstID)
	assert.ErrorIs(t, err, store.ErrSessionNotFound, "the replaced session is gone")
	_, err = sessions.Get(context.Background(), secondID)
	assert.NoError(t, err)
}

func TestSetSessionCookie_Secure(t *testing.T) {
	cfg := testConfig()
	cfg.Server.CookieSecure = true
	h, _ := newTestHandlerWithConfig(t, cfg)

	rec := serve(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		require.NoError(t, h.setSessionCookie(w, "session-1"))
	}), newRequest(http.MethodGet, "/"))

	cookie := findCookie(rec, sessionCookieName)
	require.NotNil(t, cookie)
	assert.True(t, cookie.Secure)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, "/", cookie.Path)
}
