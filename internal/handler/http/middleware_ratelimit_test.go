package http

import (
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-auth-gate/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time { return c.now }

func (c *testClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestLimiter(limit int, window time.Duration) (*ipRateLimiter, *testClock) {
	clock := &testClock{now: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	l := newIPRateLimiter(limit, window)
	l.now = clock.Now
	return l, clock
}

func TestIPRateLimiter_BurstThenDeny(t *testing.T) {
	l, _ := newTestLimiter(3, 15*time.Minute)

	for i := 0; i < 3; i++ {
		assert.True(t, l.allow("192.0.2.1"), "request %d", i+1)
	}
	assert.False(t, l.allow("192.0.2.1"))
}

func TestIPRateLimiter_PerIP(t *testing.T) {
	l, _ := newTestLimiter(1, 15*time.Minute)

	assert.True(t, l.allow("192.0.2.1"))
	assert.False(t, l.allow("192.0.2.1"))
	assert.True(t, l.allow("192.0.2.2"))
}

func TestIPRateLimiter_NoRefillInsideWindow(t *testing.T) {
	l, clock := newTestLimiter(100, 15*time.Minute)

	for i := 0; i < 100; i++ {
		require.True(t, l.allow("192.0.2.1"), "request %d", i+1)
	}

	clock.Advance(7*time.Minute + 30*time.Second)
	assert.False(t, l.allow("192.0.2.1"), "half a window later the allowance is still spent")

	clock.Advance(7*time.Minute + 29*time.Second)
	assert.False(t, l.allow("192.0.2.1"))
}

func TestIPRateLimiter_NewWindowResetsAllowance(t *testing.T) {
	l, clock := newTestLimiter(3, 15*time.Minute)

	for i := 0; i < 3; i++ {
		require.True(t, l.allow("192.0.2.1"))
	}
	require.False(t, l.allow("192.0.2.1"))

	clock.Advance(15 * time.Minute)
	for i := 0; i < 3; i++ {
		assert.True(t, l.allow("192.0.2.1"), "request %d of the next window", i+1)
	}
	assert.False(t, l.allow("192.0.2.1"))
}

func TestIPRateLimiter_PrunesIdleVisitors(t *testing.T) {
	l, clock := newTestLimiter(2, time.Minute)

	l.allow("192.0.2.1")
	clock.Advance(30 * time.Second)
	l.allow("192.0.2.2")
	require.Len(t, l.visitors, 2)

	clock.Advance(45 * time.Second)
	l.allow("192.0.2.3")

	assert.Len(t, l.visitors, 2)
	assert.NotContains(t, l.visitors, "192.0.2.1")
}

func TestIPRateLimiter_NilAllowsEverything(t *testing.T) {
	var l *ipRateLimiter

	assert.Nil(t, newIPRateLimiter(0, time.Minute))
	assert.True(t, l.allow("192.0.2.1"))
}

func TestWithRateLimit_SharedAcrossAuthRoutes(t *testing.T) {
	cfg := testConfig()
	cfg.Server.RateLimit = 2
	h, m := newTestHandlerWithConfig(t, cfg)
	anonymousSessions(m)
	m.session.EXPECT().DestroySession(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	router := h.Init()
	require.Equal(t, http.StatusOK, doJSON(t, router, http.MethodPost, "/api/user/logout", "").Code)
	require.Equal(t, http.StatusOK, doJSON(t, router, http.MethodPost, "/api/user/logout", "").Code)

	rec := doJSON(t, router, http.MethodPost, "/api/user/login", `{"email":"john@example.com","password":"Password123!"}`)

	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, msgTooManyRequests, decodeBody[models.MessageResponse](t, rec).Message)
}
