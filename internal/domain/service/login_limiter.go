package service

import "time"

// LoginLimiter tracks login attempts per client key (IP address) and decides
// whether a request may proceed. Implementations hold cross-request mutable
// state and must be safe for concurrent use; an instance is constructed once
// at process start and injected into the request pipeline.
type LoginLimiter interface {
	// Allow records a request attempt for the key and reports whether it may
	// proceed. A denied attempt returns the interval after which the client
	// should retry. Blocked keys are denied regardless of window state, and
	// every call counts as an attempt whether or not credentials are valid.
	Allow(key string) (allowed bool, retryAfter time.Duration, blocked bool)

	// RecordFailure notes a failed login for the key. Crossing the failure
	// threshold puts the key into a temporary block.
	RecordFailure(key string)

	// RecordSuccess resets the failure count and lifts any block for the key.
	RecordSuccess(key string)

	// Reset clears all limiter state. Intended for test isolation.
	Reset()
}
