package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-auth-gate/internal/config"
	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/internal/store"
	"github.com/MKhiriev/go-auth-gate/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newSQLiteServices wires the real services over an in-memory SQLite user
// table and in-memory sessions.
func newSQLiteServices(t *testing.T) *Services {
	t.Helper()

	cfg := config.StructuredConfig{
		App: testAppConfig(),
		Storage: config.Storage{
			DB: config.DB{Driver: config.DriverSQLite, DSN: ":memory:"},
		},
	}

	storages, err := store.NewStorages(context.Background(), cfg.Storage, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { storages.Close() })

	services, err := NewServices(storages, cfg, models.AppBuildInfo{}, logger.Nop())
	require.NoError(t, err)

	return services
}

func TestServices_SignupLoginLogoutFlow(t *testing.T) {
	s := newSQLiteServices(t)
	ctx := context.Background()

	signup, err := s.AuthService.Signup(ctx, "John Doe", "john@example.com", "Password123!")
	require.NoError(t, err)
	assert.NotEmpty(t, signup.Token.SignedString)
	assert.NotEmpty(t, signup.Identity.UserID)

	// duplicate email is rejected and the first account keeps working
	_, err = s.AuthService.Signup(ctx, "Jane", "john@example.com", "Another123!")
	assert.ErrorIs(t, err, ErrConflict)

	_, err = s.AuthService.Signup(ctx, "Weak", "weak@example.com", "abc")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = s.AuthService.Login(ctx, "nobody@example.com", "Password123!")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.AuthService.Login(ctx, "john@example.com", "Wrong123!")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	login, err := s.AuthService.Login(ctx, "john@example.com", "Password123!")
	require.NoError(t, err)
	assert.Equal(t, "John Doe", login.Identity.Name)

	token, err := s.AuthService.ParseToken(ctx, login.Token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, signup.Identity.UserID, token.UserID, "token subject is the stored id")

	sc := &models.SessionContext{}
	require.NoError(t, s.SessionGateway.EstablishSession(ctx, sc, login.Identity, login.Token))

	loaded, err := s.SessionGateway.LoadSession(ctx, sc.ID)
	require.NoError(t, err)
	identity, ok := s.SessionGateway.CurrentIdentity(loaded)
	require.True(t, ok)
	assert.Equal(t, "John Doe", identity.Name)

	require.NoError(t, s.SessionGateway.DestroySession(ctx, loaded))
	require.NoError(t, s.SessionGateway.DestroySession(ctx, loaded))

	gone, err := s.SessionGateway.LoadSession(ctx, sc.ID)
	require.NoError(t, err)
	assert.False(t, gone.Authenticated())

	assert.Equal(t, "test", s.AppInfoService.GetAppInfo(ctx).Version)
}
