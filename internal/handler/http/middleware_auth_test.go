package http

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-auth-gate/internal/service"
	"github.com/MKhiriev/go-auth-gate/internal/utils"
	"github.com/MKhiriev/go-auth-gate/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAuth_StoresUserID(t *testing.T) {
	h, m := newTestHandler(t)
	m.auth.EXPECT().ParseToken(gomock.Any(), "good.token").Return(models.Token{UserID: "user-1"}, nil)

	var gotUserID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, _ = utils.GetUserIDFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	req := newRequest(http.MethodGet, "/api/user/me")
	req.Header.Set("Authorization", "Bearer good.token")
	rec := serve(h.auth(next), req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "user-1", gotUserID)
}

func TestAuth_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		parseErr error
		wantBody string
	}{
		{name: "no header", header: "", wantBody: ErrEmptyAuthorizationHeader.Error()},
		{name: "no token", header: "Bearer", wantBody: ErrInvalidAuthorizationHeader.Error()},
		{name: "wrong scheme", header: "Basic dXNlcjpwYXNz", wantBody: ErrInvalidAuthorizationHeader.Error()},
		{name: "expired token", header: "Bearer old.token", parseErr: fmt.Errorf("%w: exp", service.ErrTokenExpired), wantBody: service.ErrTokenExpired.Error()},
		{name: "bad signature", header: "Bearer forged.token", parseErr: service.ErrTokenSignatureInvalid, wantBody: http.StatusText(http.StatusUnauthorized)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			if tt.parseErr != nil {
				m.auth.EXPECT().ParseToken(gomock.Any(), gomock.Any()).Return(models.Token{}, tt.parseErr)
			}

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				t.Fatal("next handler must not be called")
			})

			req := newRequest(http.MethodGet, "/api/user/me")
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := serve(h.auth(next), req)

			require.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}
