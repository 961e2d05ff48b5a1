// Copyright (c) 2026 Alumni Go Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// limiterCache is a generic rate limiter cache with double-check locking.
type limiterCache[K comparable] struct {
	limiters map[K]*rate.Limiter
	mu       sync.RWMutex
	rate     rate.Limit
	burst    int
}

func newLimiterCache[K comparable](rps float64, burst int) *limiterCache[K] {
	return &limiterCache[K]{
		limiters: make(map[K]*rate.Limiter),
		rate:     rate.Limit(rps),
		burst:    burst,
	}
}

// get returns the rate limiter for a specific key, creating one if needed.
func (lc *limiterCache[K]) get(key K) *rate.Limiter {
	lc.mu.RLock()
	limiter, exists := lc.limiters[key]
	lc.mu.RUnlock()

	if exists {
		return limiter
	}

	lc.mu.Lock()
	defer lc.mu.Unlock()

	if limiter, exists = lc.limiters[key]; exists {
		return limiter
	}

	limiter = rate.NewLimiter(lc.rate, lc.burst)
	lc.limiters[key] = limiter
	return limiter
}

// clearIfExceeds clears all entries if the cache exceeds maxSize.
func (lc *limiterCache[K]) clearIfExceeds(maxSize int) bool {
	lc.mu.Lock()
	defer lc.mu.Unlock()

	if len(lc.limiters) > maxSize {
		lc.limiters = make(map[K]*rate.Limiter)
		return true
	}
	return false
}

// maxTrackedIPs bounds the limiter cache before it is reset wholesale.
const maxTrackedIPs = 10000

// LoginRateLimiter throttles login attempts per client IP.
type LoginRateLimiter struct {
	cache *limiterCache[string]
	done  chan struct{}
	once  sync.Once
}

// NewLoginRateLimiter creates a per-IP login throttle. rps is requests per
// second, burst the number of attempts allowed before throttling kicks in.
func NewLoginRateLimiter(rps float64, burst int) *LoginRateLimiter {
	if rps <= 0 {
		rps = 0.5
	}
	if burst <= 0 {
		burst = 5
	}

	lrl := &LoginRateLimiter{
		cache: newLimiterCache[string](rps, burst),
		done:  make(chan struct{}),
	}
	go lrl.cleanup()
	return lrl
}

// Middleware returns the throttling middleware for the login route.
func (lrl *LoginRateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := clientIP(r)
		if !lrl.cache.get(ip).Allow() {
			slog.Warn("login rate limit exceeded", "ip", ip)
			WriteAPIError(w, http.StatusTooManyRequests, "Terlalu banyak percobaan. Silakan coba lagi nanti")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Stop terminates the background cleanup goroutine.
func (lrl *LoginRateLimiter) Stop() {
	lrl.once.Do(func() { close(lrl.done) })
}

func (lrl *LoginRateLimiter) cleanup() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if lrl.cache.clearIfExceeds(maxTrackedIPs) {
				slog.Info("login limiter cache reset", "maxSize", maxTrackedIPs)
			}
		case <-lrl.done:
			return
		}
	}
}

// clientIP extracts the remote IP. RealIP middleware upstream already
// rewrites RemoteAddr from X-Forwarded-For when present.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
