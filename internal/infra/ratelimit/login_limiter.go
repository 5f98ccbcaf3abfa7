// Package ratelimit implements the login throttling domain service.
package ratelimit

import (
	"sync"
	"time"

	"wishlist/internal/domain/service"
)

// Thresholds for the login limiter. The sliding window throttles bursts;
// repeated authentication failures escalate to a lockout.
const (
	maxAttemptsPerWindow = 3
	attemptWindow        = 60 * time.Second
	maxFailures          = 5
	lockoutDuration      = 15 * time.Minute
)

// ipState tracks the recent login activity of a single client key.
type ipState struct {
	attempts     []time.Time
	failures     int
	blockedUntil time.Time
}

// loginLimiter manages per-IP login throttling with a sliding attempt
// window and a failure-count lockout.
type loginLimiter struct {
	mu    sync.Mutex
	state map[string]*ipState
	now   func() time.Time
}

// NewLoginLimiter creates a limiter with the default thresholds.
func NewLoginLimiter() service.LoginLimiter {
	return &loginLimiter{
		state: make(map[string]*ipState),
		now:   time.Now,
	}
}

// NewLoginLimiterWithClock creates a limiter with an injected clock.
func NewLoginLimiterWithClock(now func() time.Time) service.LoginLimiter {
	return &loginLimiter{
		state: make(map[string]*ipState),
		now:   now,
	}
}

// Allow records a login attempt from key and reports whether it may
// proceed. A blocked key reports blocked=true with the
// remaining lockout as retryAfter; a throttled key reports the window
// length instead.
func (l *loginLimiter) Allow(key string) (allowed bool, retryAfter time.Duration, blocked bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	st, exists := l.state[key]
	if !exists {
		st = &ipState{}
		l.state[key] = st
	}

	if st.blockedUntil.After(now) {
		return false, st.blockedUntil.Sub(now), true
	}
	if !st.blockedUntil.IsZero() && !st.blockedUntil.After(now) {
		// Lockout expired; start fresh.
		*st = ipState{}
	}

	// Drop attempts that slid out of the window.
	valid := st.attempts[:0]
	for _, t := range st.attempts {
		if now.Sub(t) < attemptWindow {
			valid = append(valid, t)
		}
	}
	// The current request counts as an attempt whether or not it proceeds.
	st.attempts = append(valid, now)

	if len(st.attempts) >= maxAttemptsPerWindow {
		return false, attemptWindow, false
	}

	return true, 0, false
}

// RecordFailure counts a failed authentication for key. Reaching the
// failure threshold blocks the key for the lockout duration.
func (l *loginLimiter) RecordFailure(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	st, exists := l.state[key]
	if !exists {
		st = &ipState{}
		l.state[key] = st
	}

	st.failures++
	if st.failures >= maxFailures {
		st.blockedUntil = l.now().Add(lockoutDuration)
	}
}

// RecordSuccess clears all throttling state for key.
func (l *loginLimiter) RecordSuccess(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	delete(l.state, key)
}

// Reset drops all tracked state.
func (l *loginLimiter) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.state = make(map[string]*ipState)
}
