package middleware

import (
	"net/http"

	"wishlist/config"
	domainerrors "wishlist/internal/domain/errors"
	"wishlist/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// retryAfterSeconds is the advertised backoff for throttled clients.
const retryAfterSeconds = "60"

// loginPaths are the only routes the limiter guards. The exact-path match is
// deliberate: throttling must never spill over onto reads or other writes.
var loginPaths = map[string]struct{}{
	"/auth/login":        {},
	"/api/v1/auth/login": {},
}

// RateLimitMiddleware throttles login attempts per client IP.
type RateLimitMiddleware struct {
	limiter service.LoginLimiter
	enabled bool
}

// NewRateLimitMiddleware is the constructor for RateLimitMiddleware.
func NewRateLimitMiddleware(limiter service.LoginLimiter, cfg *config.Config) *RateLimitMiddleware {
	enabled := cfg.RateLimit != nil && cfg.RateLimit.Enabled

	return &RateLimitMiddleware{limiter: limiter, enabled: enabled}
}

// Throttle gates POST requests on the login routes. Blocked and throttled
// clients get 429 with a Retry-After header; everything else passes through
// untouched.
func (m *RateLimitMiddleware) Throttle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !m.enabled || c.Request().Method != http.MethodPost {
			return next(c)
		}
		if _, guarded := loginPaths[c.Request().URL.Path]; !guarded {
			return next(c)
		}

		allowed, _, blocked := m.limiter.Allow(c.RealIP())
		if allowed {
			return next(c)
		}

		// The header always advertises the attempt window, even mid-lockout.
		c.Response().Header().Set("Retry-After", retryAfterSeconds)
		if blocked {
			return domainerrors.ErrIPBlocked
		}

		return domainerrors.ErrTooManyRequests
	}
}
