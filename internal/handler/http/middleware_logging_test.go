package http

import (
	"bytes"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-auth-gate/internal/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithLogging_RecordsRequest(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{
		logger:  bufferLogger(&buf),
		metrics: metrics.NewMetrics(prometheus.NewRegistry()),
	}

	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Post("/api/user/{action}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("hello"))
	})

	rec := serve(router, newRequest(http.MethodPost, "/api/user/signup"))
	require.Equal(t, http.StatusCreated, rec.Code)

	out := buf.String()
	assert.Contains(t, out, `"uri":"/api/user/signup"`)
	assert.Contains(t, out, `"method":"POST"`)
	assert.Contains(t, out, `"status":201`)
	assert.Contains(t, out, `"size":5`)

	assert.Equal(t, 1, testutil.CollectAndCount(h.metrics.RequestDuration))
	assert.Contains(t, scrapeMetrics(t, h.metrics), `route="/api/user/{action}",status="201"`)
}

func TestWithLogging_ImplicitOK(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: bufferLogger(&buf)}

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {})
	serve(h.withTraceID(h.withLogging(next)), newRequest(http.MethodGet, "/"))

	assert.Contains(t, buf.String(), `"status":200`)
}

func scrapeMetrics(t *testing.T, m *metrics.Metrics) string {
	t.Helper()

	rec := serve(m.Handler(), newRequest(http.MethodGet, "/metrics"))
	require.Equal(t, http.StatusOK, rec.Code)
	return rec.Body.String()
}
