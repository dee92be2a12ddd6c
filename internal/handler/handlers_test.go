package handler

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-auth-gate/internal/config"
	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/internal/metrics"
	"github.com/MKhiriev/go-auth-gate/internal/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(httpAddress string) config.StructuredConfig {
	return config.StructuredConfig{
		App: config.App{
			SessionSecret: "test-session-secret",
			SessionTTL:    24 * time.Hour,
		},
		Server: config.Server{
			HTTPAddress:     httpAddress,
			RateLimit:       100,
			RateLimitWindow: 15 * time.Minute,
		},
	}
}

// TestNewHandlers_HTTPAddress verifies that the HTTP handler is initialised
// when an HTTP address is configured.
func TestNewHandlers_HTTPAddress(t *testing.T) {
	h, err := NewHandlers(&service.Services{}, testConfig(":8080"), metrics.NewMetrics(prometheus.NewRegistry()), logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP)
	assert.NotNil(t, h.HTTP.Init())
}

// TestNewHandlers_NoAddress verifies that NewHandlers returns
// errNoHandlersAreCreated and a nil *Handlers without an HTTP address.
func TestNewHandlers_NoAddress(t *testing.T) {
	h, err := NewHandlers(&service.Services{}, testConfig(""), nil, logger.Nop())

	require.ErrorIs(t, err, errNoHandlersAreCreated)
	assert.Nil(t, h)
}

// TestNewHandlers_IndependentInstances verifies that two calls to NewHandlers
// produce independent *Handlers instances.
func TestNewHandlers_IndependentInstances(t *testing.T) {
	h1, err1 := NewHandlers(&service.Services{}, testConfig(":8080"), nil, logger.Nop())
	h2, err2 := NewHandlers(&service.Services{}, testConfig(":8080"), nil, logger.Nop())

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.NotSame(t, h1, h2)
	assert.NotSame(t, h1.HTTP, h2.HTTP)
}
