package http

import (
	"net/http"
	"sync"
	"time"

	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/internal/metrics"
	"github.com/MKhiriev/go-auth-gate/internal/utils"
	"github.com/MKhiriev/go-auth-gate/models"
	"golang.org/x/time/rate"
)

// visitor is one IP's fixed window. The limiter has a zero refill rate, so
// its burst is the whole allowance of the window.
type visitor struct {
	limiter     *rate.Limiter
	windowStart time.Time
}

// ipRateLimiter allows each client IP at most limit requests per fixed
// window that starts with the IP's first request. Visitors whose window has
// ended are pruned once per window.
type ipRateLimiter struct {
	mu        sync.Mutex
	visitors  map[string]*visitor
	limit     int
	window    time.Duration
	lastPrune time.Time
	now       func() time.Time
}

// newIPRateLimiter returns nil when limit is not positive, which disables
// limiting.
func newIPRateLimiter(limit int, window time.Duration) *ipRateLimiter {
	if limit <= 0 || window <= 0 {
		return nil
	}

	return &ipRateLimiter{
		visitors: make(map[string]*visitor),
		limit:    limit,
		window:   window,
		now:      time.Now,
	}
}

// allow reports whether ip may send one more request.
func (l *ipRateLimiter) allow(ip string) bool {
	if l == nil {
		return true
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastPrune) >= l.window {
		l.prune(now)
	}

	v, ok := l.visitors[ip]
	if !ok || now.Sub(v.windowStart) >= l.window {
		v = &visitor{
			limiter:     rate.NewLimiter(0, l.limit),
			windowStart: now,
		}
		l.visitors[ip] = v
	}

	return v.limiter.AllowN(now, 1)
}

// prune drops visitors whose window has ended. Callers hold mu.
func (l *ipRateLimiter) prune(now time.Time) {
	for ip, v := range l.visitors {
		if now.Sub(v.windowStart) >= l.window {
			delete(l.visitors, ip)
		}
	}
	l.lastPrune = now
}

func (h *Handler) withRateLimit(operation string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := utils.ClientIP(r)
			if !h.limiter.allow(ip) {
				logger.FromRequest(r).Warn().Str("ip", ip).Str("operation", operation).Msg("rate limit exceeded")
				h.metrics.ObserveAuth(operation, metrics.OutcomeRateLimited)
				utils.WriteJSON(w, models.MessageResponse{Message: msgTooManyRequests}, http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
