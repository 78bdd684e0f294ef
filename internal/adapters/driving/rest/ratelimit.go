package rest

import (
	"net/http"
	"sync/atomic"

	"golang.org/x/time/rate"

	"github.com/mapmarket/mapmarket-api/internal/core/domain"
)

// RateLimiter throttles requests with a token bucket shared by all clients.
// Update may be called while requests are being served.
type RateLimiter struct {
	limiter atomic.Pointer[rate.Limiter]
}

// NewRateLimiter creates a limiter from settings.
func NewRateLimiter(cfg domain.RateLimitSettings) *RateLimiter {
	l := &RateLimiter{}
	l.Update(cfg)
	return l
}

// Update applies new settings with a full bucket. A zero rate disables
// limiting.
func (l *RateLimiter) Update(cfg domain.RateLimitSettings) {
	if !cfg.Enabled() {
		l.limiter.Store(nil)
		return
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = cfg.RequestsPerSecond
	}
	l.limiter.Store(rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst))
}

// Allow reports whether a request may proceed now.
func (l *RateLimiter) Allow() bool {
	if l == nil {
		return true
	}
	lim := l.limiter.Load()
	return lim == nil || lim.Allow()
}

// WithRateLimit rejects requests over the limit with 429.
func WithRateLimit(l *RateLimiter, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !l.Allow() {
			w.Header().Set("Retry-After", "1")
			WriteJSONError(w, http.StatusTooManyRequests, "Too many requests", "uri="+r.URL.Path)
			return
		}
		next.ServeHTTP(w, r)
	})
}
