package http

import (
	"net/http"
	"testing"

	"github.com/MKhiriev/go-auth-gate/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHome_Guest(t *testing.T) {
	h, m := newTestHandler(t)
	anonymousSessions(m)
	m.session.EXPECT().CurrentIdentity(gomock.Any()).Return(models.Identity{}, false)

	rec := serve(h.Init(), newRequest(http.MethodGet, "/"))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Welcome to the app!", decodeBody[models.MessageResponse](t, rec).Message)
}

func TestHome_SignedIn(t *testing.T) {
	h, m := newTestHandler(t)

	sc := &models.SessionContext{ID: "session-1", Session: &models.Session{UserID: "user-1", DisplayName: "John Doe"}}
	m.session.EXPECT().LoadSession(gomock.Any(), "session-1").Return(sc, nil)
	m.session.EXPECT().CurrentIdentity(sc).Return(models.Identity{UserID: "user-1", Name: "John Doe"}, true)

	encoded, err := h.cookies.Encode(sessionCookieName, "session-1")
	require.NoError(t, err)

	req := newRequest(http.MethodGet, "/")
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: encoded})
	rec := serve(h.Init(), req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Welcome to the app, John Doe!", decodeBody[models.MessageResponse](t, rec).Message)
}
