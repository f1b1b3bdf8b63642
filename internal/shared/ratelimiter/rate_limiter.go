// Package ratelimiter provides a fixed-window rate limiter for throttling
// request-path operations such as login attempts.
package ratelimiter

import (
	"sync"
	"time"
)

// window tracks attempts for one key inside the current interval.
type window struct {
	count     int
	lastReset time.Time
}

// RateLimiter limits how often an operation may run per key (typically a
// client IP) within a fixed interval.
type RateLimiter struct {
	mu       sync.Mutex
	limit    int           // attempts allowed per interval
	interval time.Duration // window size
	windows  map[string]*window
}

// New creates a new RateLimiter allowing limit attempts per interval per key.
func New(limit int, interval time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:    limit,
		interval: interval,
		windows:  make(map[string]*window),
	}
}

// Allow reports whether another attempt is permitted for the key and counts
// it. Unlike a blocking limiter, callers are expected to reject the request
// when Allow returns false.
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	w, ok := rl.windows[key]
	if !ok || now.Sub(w.lastReset) >= rl.interval {
		rl.windows[key] = &window{count: 1, lastReset: now}
		return true
	}

	w.count++
	return w.count <= rl.limit
}
