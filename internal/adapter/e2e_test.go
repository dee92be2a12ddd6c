package adapter

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-auth-gate/internal/config"
	authhttp "github.com/MKhiriev/go-auth-gate/internal/handler/http"
	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/internal/service"
	"github.com/MKhiriev/go-auth-gate/internal/store"
	"github.com/MKhiriev/go-auth-gate/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func e2eConfig() config.StructuredConfig {
	return config.StructuredConfig{
		App: config.App{
			TokenSignKey:     "e2e-sign-key",
			TokenIssuer:      "go-auth-gate-e2e",
			TokenDuration:    24 * time.Hour,
			SessionSecret:    "e2e-session-secret",
			SessionTTL:       24 * time.Hour,
			PasswordHashCost: bcrypt.MinCost,
			Version:          "e2e",
		},
		Storage: config.Storage{
			DB: config.DB{Driver: config.DriverSQLite, DSN: ":memory:"},
		},
		Server: config.Server{
			RequestTimeout:  5 * time.Second,
			RateLimit:       100,
			RateLimitWindow: 15 * time.Minute,
		},
	}
}

// newE2EServer runs the real router over SQLite and in-memory sessions.
func newE2EServer(t *testing.T) *httptest.Server {
	t.Helper()

	cfg := e2eConfig()
	storages, err := store.NewStorages(context.Background(), cfg.Storage, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { storages.Close() })

	services, err := service.NewServices(storages, cfg, models.AppBuildInfo{}, logger.Nop())
	require.NoError(t, err)

	srv := httptest.NewServer(authhttp.NewHandler(services, cfg, nil, logger.Nop()).Init())
	t.Cleanup(srv.Close)
	return srv
}

func TestE2E_SignupLoginLogout(t *testing.T) {
	srv := newE2EServer(t)
	ctx := context.Background()
	john := models.SignupRequest{Name: "John Doe", Email: "john@example.com", Password: "Password123!"}

	c := newTestClient(t, srv.URL)

	greeting, err := c.Greeting(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Welcome to the app!", greeting)

	signup, err := c.Signup(ctx, john)
	require.NoError(t, err)
	assert.Equal(t, "John Doe", signup.Name)
	assert.Equal(t, "john@example.com", signup.Email)
	assert.NotEmpty(t, signup.Token)

	greeting, err = c.Greeting(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Welcome to the app, John Doe!", greeting)

	me, err := c.Me(ctx)
	require.NoError(t, err)
	assert.Equal(t, "john@example.com", me.Email)

	claims := jwt.RegisteredClaims{}
	_, _, err = jwt.NewParser().ParseUnverified(signup.Token, &claims)
	require.NoError(t, err)
	assert.Equal(t, me.UserID, claims.Subject)

	// same email again
	_, err = c.Signup(ctx, john)
	require.ErrorIs(t, err, ErrBadRequest)
	assert.Equal(t, "Email already in use", responseMessage(t, err))

	_, err = c.Login(ctx, models.LoginRequest{Email: john.Email, Password: "wrongPassword"})
	require.ErrorIs(t, err, ErrBadRequest)
	assert.Equal(t, "Incorrect password", responseMessage(t, err))

	_, err = c.Login(ctx, models.LoginRequest{Email: "nobody@example.com", Password: john.Password})
	require.ErrorIs(t, err, ErrBadRequest)
	assert.Equal(t, "Incorrect email", responseMessage(t, err))

	login, err := c.Login(ctx, models.LoginRequest{Email: john.Email, Password: john.Password})
	require.NoError(t, err)
	assert.NotEmpty(t, login.Token)

	logout, err := c.Logout(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Logged out successfully.", logout.Message)
	assert.Empty(t, c.Token())

	greeting, err = c.Greeting(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Welcome to the app!", greeting)

	// logging out without a session still succeeds
	_, err = c.Logout(ctx)
	require.NoError(t, err)
}

func TestE2E_RouteValidation(t *testing.T) {
	srv := newE2EServer(t)
	c := newTestClient(t, srv.URL)

	_, err := c.Signup(context.Background(), models.SignupRequest{Name: "Weak", Email: "weak@example.com", Password: "abc"})

	require.ErrorIs(t, err, ErrBadRequest)
	var respErr *ResponseError
	require.ErrorAs(t, err, &respErr)
	assert.Equal(t, []models.FieldError{{Msg: "Password must be at least 6 characters long", Path: "password"}}, respErr.Fields)
}

func TestE2E_WeakPasswordPassingRouteRules(t *testing.T) {
	srv := newE2EServer(t)
	c := newTestClient(t, srv.URL)

	_, err := c.Signup(context.Background(), models.SignupRequest{Name: "Weak", Email: "weak@example.com", Password: "abcdefgh"})

	require.ErrorIs(t, err, ErrBadRequest)
	assert.Equal(t, "Password not strong enough", responseMessage(t, err))
}

func TestE2E_MeWithoutToken(t *testing.T) {
	srv := newE2EServer(t)
	c := newTestClient(t, srv.URL)

	_, err := c.Me(context.Background())

	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestE2E_Version(t *testing.T) {
	srv := newE2EServer(t)
	c := newTestClient(t, srv.URL)

	info, err := c.Version(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "e2e", info.Version)
}

func responseMessage(t *testing.T, err error) string {
	t.Helper()

	var respErr *ResponseError
	require.ErrorAs(t, err, &respErr)
	return respErr.Message
}
