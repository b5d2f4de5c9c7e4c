package httpapi

import (
	"net/http"
	"strconv"

	"golang.org/x/time/rate"
)

// RateLimitMiddleware rejects requests with 429 once the limiter set by
// SetRateLimit is exhausted. Probes and metrics are never limited.
func RateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		l := limiter
		if l == nil || isProbePath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}
		if !l.Allow() {
			rateLimitedTotal.Inc()
			w.Header().Set("Retry-After", strconv.Itoa(retryAfterSeconds(l.Limit())))
			writeJSONError(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func isProbePath(p string) bool {
	switch p {
	case "/healthz", "/readyz", "/metrics":
		return true
	}
	return false
}

func retryAfterSeconds(limit rate.Limit) int {
	if limit <= 0 || limit >= 1 {
		return 1
	}
	return int(1/limit + 0.5)
}
