package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T, m *Metrics) string {
	t.Helper()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	return string(body)
}

func TestNew_ExposesStandardCollectors(t *testing.T) {
	body := scrape(t, New())

	assert.Contains(t, body, "# HELP")
	assert.Contains(t, body, "# TYPE")
	assert.Contains(t, body, "go_goroutines")
}

func TestMetrics_ObserveAuth(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	m.ObserveAuth(OperationLogin, OutcomeSuccess)
	m.ObserveAuth(OperationLogin, OutcomeSuccess)
	m.ObserveAuth(OperationSignup, OutcomeRejected)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.AuthOutcomes.WithLabelValues(OperationLogin, OutcomeSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.AuthOutcomes.WithLabelValues(OperationSignup, OutcomeRejected)))

	body := scrape(t, m)
	assert.Contains(t, body, `auth_gate_auth_outcomes_total{operation="login",outcome="success"} 2`)
}

func TestMetrics_ObserveRequest(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	m.ObserveRequest(http.MethodPost, "/api/user/login", http.StatusOK, 15*time.Millisecond)
	m.ObserveRequest(http.MethodGet, "", http.StatusNotFound, time.Millisecond)

	assert.Equal(t, 2, testutil.CollectAndCount(m.RequestDuration))

	body := scrape(t, m)
	assert.Contains(t, body, `route="/api/user/login"`)
	assert.Contains(t, body, `route="unmatched"`)
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveAuth(OperationLogout, OutcomeError)
		m.ObserveRequest(http.MethodGet, "/", http.StatusOK, time.Millisecond)
	})
	assert.NotNil(t, m.Handler())
}

func TestNewMetrics_DoubleRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewMetrics(reg)

	assert.Panics(t, func() { NewMetrics(reg) })
}
