package http

import (
	"crypto/sha256"
	"time"

	"github.com/MKhiriev/go-auth-gate/internal/config"
	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/internal/metrics"
	"github.com/MKhiriev/go-auth-gate/internal/service"
	"github.com/MKhiriev/go-auth-gate/internal/validators"
	"github.com/gorilla/securecookie"
)

type Handler struct {
	services *service.Services

	// cookies signs and verifies the session id carried by the sid cookie.
	cookies      *securecookie.SecureCookie
	sessionTTL   time.Duration
	cookieSecure bool

	requestTimeout time.Duration
	limiter        *ipRateLimiter
	validator      validators.Validator
	metrics        *metrics.Metrics

	logger *logger.Logger
}

// NewHandler builds the HTTP handler. The cookie hash key is derived from
// App.SessionSecret, so cookies survive restarts as long as the secret does.
// m may be nil, in which case nothing is recorded.
func NewHandler(services *service.Services, cfg config.StructuredConfig, m *metrics.Metrics, logger *logger.Logger) *Handler {
	hashKey := sha256.Sum256([]byte(cfg.App.SessionSecret))
	cookies := securecookie.New(hashKey[:], nil)
	cookies.MaxAge(int(cfg.App.SessionTTL.Seconds()))

	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		cookies:        cookies,
		sessionTTL:     cfg.App.SessionTTL,
		cookieSecure:   cfg.Server.CookieSecure,
		requestTimeout: cfg.Server.RequestTimeout,
		limiter:        newIPRateLimiter(cfg.Server.RateLimit, cfg.Server.RateLimitWindow),
		validator:      validators.NewRequestValidator(),
		metrics:        m,
		logger:         logger,
	}
}
