// Package middleware provides the HTTP middleware stack for TerraQuest.
package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// ipLimiter tracks one token bucket per client IP.
type ipLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

var (
	limitersMu sync.Mutex
	limiters   = map[string]*ipLimiter{}
)

func init() {
	// Evict limiters idle for over ten minutes so memory stays bounded.
	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			cutoff := time.Now().Add(-10 * time.Minute)
			limitersMu.Lock()
			for ip, l := range limiters {
				if l.lastSeen.Before(cutoff) {
					delete(limiters, ip)
				}
			}
			limitersMu.Unlock()
		}
	}()
}

func limiterFor(ip string, perSec float64, burst int) *rate.Limiter {
	limitersMu.Lock()
	defer limitersMu.Unlock()

	if l, ok := limiters[ip]; ok {
		l.lastSeen = time.Now()
		return l.limiter
	}

	l := &ipLimiter{
		limiter:  rate.NewLimiter(rate.Limit(perSec), burst),
		lastSeen: time.Now(),
	}
	limiters[ip] = l
	return l.limiter
}

// RateLimit limits each client IP to perSec requests per second with the
// given burst, answering 429 beyond that.
func RateLimit(perSec float64, burst int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := r.RemoteAddr
			if host, _, err := net.SplitHostPort(ip); err == nil {
				ip = host
			}
			if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
				ip = fwd
			}

			if !limiterFor(ip, perSec, burst).Allow() {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				w.Write([]byte(`{"status":429,"message":"Too Many Requests"}`)) //nolint:errcheck
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
