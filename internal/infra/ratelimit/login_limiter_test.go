package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// fakeClock is a manually advanced clock for limiter tests.
type fakeClock struct {
	current time.Time
}

func (c *fakeClock) now() time.Time {
	return c.current
}

func (c *fakeClock) advance(d time.Duration) {
	c.current = c.current.Add(d)
}

func newTestLimiter() (*fakeClock, *loginLimiter) {
	clock := &fakeClock{current: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	limiter := NewLoginLimiterWithClock(clock.now).(*loginLimiter)

	return clock, limiter
}

func TestLoginLimiter_AllowsWithinWindow(t *testing.T) {
	_, limiter := newTestLimiter()

	for i := 0; i < maxAttemptsPerWindow-1; i++ {
		allowed, _, blocked := limiter.Allow("10.0.0.1")
		assert.True(t, allowed, "attempt %d should be allowed", i+1)
		assert.False(t, blocked)
	}
}

func TestLoginLimiter_ThrottlesAtWindowLimit(t *testing.T) {
	_, limiter := newTestLimiter()

	for i := 0; i < maxAttemptsPerWindow-1; i++ {
		limiter.Allow("10.0.0.1")
	}

	// The request that fills the window is itself rejected.
	allowed, retryAfter, blocked := limiter.Allow("10.0.0.1")
	assert.False(t, allowed)
	assert.False(t, blocked)
	assert.Equal(t, attemptWindow, retryAfter)
}

func TestLoginLimiter_RejectedAttemptsStillCount(t *testing.T) {
	clock, limiter := newTestLimiter()

	limiter.Allow("10.0.0.1")
	limiter.Allow("10.0.0.1")

	// Hammering a throttled key keeps refreshing the window; only once the
	// earlier attempts slide out does a request get through again.
	for i := 0; i < 3; i++ {
		clock.advance(10 * time.Second)
		allowed, _, _ := limiter.Allow("10.0.0.1")
		assert.False(t, allowed, "attempt %d should still be throttled", i+3)
	}

	clock.advance(attemptWindow)
	allowed, _, _ := limiter.Allow("10.0.0.1")
	assert.True(t, allowed)
}

func TestLoginLimiter_WindowSlides(t *testing.T) {
	clock, limiter := newTestLimiter()

	for i := 0; i < maxAttemptsPerWindow; i++ {
		limiter.Allow("10.0.0.1")
	}
	allowed, _, _ := limiter.Allow("10.0.0.1")
	assert.False(t, allowed)

	clock.advance(attemptWindow + time.Second)

	allowed, _, blocked := limiter.Allow("10.0.0.1")
	assert.True(t, allowed)
	assert.False(t, blocked)
}

func TestLoginLimiter_KeysAreIndependent(t *testing.T) {
	_, limiter := newTestLimiter()

	for i := 0; i < maxAttemptsPerWindow; i++ {
		limiter.Allow("10.0.0.1")
	}
	allowed, _, _ := limiter.Allow("10.0.0.1")
	assert.False(t, allowed)

	allowed, _, _ = limiter.Allow("10.0.0.2")
	assert.True(t, allowed)
}

func TestLoginLimiter_AppendsBeforeCheck(t *testing.T) {
	_, limiter := newTestLimiter()

	got := make([]bool, 0, maxAttemptsPerWindow)
	for i := 0; i < maxAttemptsPerWindow; i++ {
		allowed, _, _ := limiter.Allow("10.0.0.1")
		got = append(got, allowed)
	}

	assert.Equal(t, []bool{true, true, false}, got)
}

func TestLoginLimiter_LockoutAfterRepeatedFailures(t *testing.T) {
	clock, limiter := newTestLimiter()

	for i := 0; i < maxFailures; i++ {
		limiter.RecordFailure("10.0.0.1")
	}

	allowed, retryAfter, blocked := limiter.Allow("10.0.0.1")
	assert.False(t, allowed)
	assert.True(t, blocked)
	assert.Equal(t, lockoutDuration, retryAfter)

	// Partway through the lockout the remaining time shrinks.
	clock.advance(5 * time.Minute)
	_, retryAfter, blocked = limiter.Allow("10.0.0.1")
	assert.True(t, blocked)
	assert.Equal(t, 10*time.Minute, retryAfter)
}

func TestLoginLimiter_LockoutExpires(t *testing.T) {
	clock, limiter := newTestLimiter()

	for i := 0; i < maxFailures; i++ {
		limiter.RecordFailure("10.0.0.1")
	}
	_, _, blocked := limiter.Allow("10.0.0.1")
	assert.True(t, blocked)

	clock.advance(lockoutDuration + time.Second)

	// Expired lockout clears all state, including the failure count.
	allowed, _, blocked := limiter.Allow("10.0.0.1")
	assert.True(t, allowed)
	assert.False(t, blocked)
}

func TestLoginLimiter_SuccessClearsState(t *testing.T) {
	_, limiter := newTestLimiter()

	limiter.RecordFailure("10.0.0.1")
	limiter.RecordFailure("10.0.0.1")
	limiter.Allow("10.0.0.1")
	limiter.Allow("10.0.0.1")
	limiter.Allow("10.0.0.1")

	limiter.RecordSuccess("10.0.0.1")

	for i := 0; i < maxAttemptsPerWindow-1; i++ {
		allowed, _, _ := limiter.Allow("10.0.0.1")
		assert.True(t, allowed, "attempt %d after reset should be allowed", i+1)
	}
}

func TestLoginLimiter_Reset(t *testing.T) {
	_, limiter := newTestLimiter()

	for i := 0; i < maxFailures; i++ {
		limiter.RecordFailure("10.0.0.1")
	}
	limiter.Reset()

	allowed, _, blocked := limiter.Allow("10.0.0.1")
	assert.True(t, allowed)
	assert.False(t, blocked)
}
