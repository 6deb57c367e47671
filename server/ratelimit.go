package server

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

const (
	BurstMultiplier  = 2
	RateLimitCleanup = time.Minute * 3
)

// RateLimit returns a rate limiting middleware keyed by client IP.
// If requestsPerSecond is 0 or negative, rate limiting is disabled.
// A burst of 0 selects requestsPerSecond * BurstMultiplier.
func RateLimit(requestsPerSecond, burst int) echo.MiddlewareFunc {
	if requestsPerSecond <= 0 {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return next
		}
	}
	if burst <= 0 {
		burst = requestsPerSecond * BurstMultiplier
	}

	config := middleware.RateLimiterConfig{
		Skipper: middleware.DefaultSkipper,
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(
			middleware.RateLimiterMemoryStoreConfig{
				Rate:      rate.Limit(requestsPerSecond),
				Burst:     burst,
				ExpiresIn: RateLimitCleanup,
			},
		),
		IdentifierExtractor: func(ctx echo.Context) (string, error) {
			return ctx.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, _ error) error {
			return formatErrorResponse(c, NewTooManyRequestsError(""), false)
		},
		DenyHandler: func(c echo.Context, _ string, _ error) error {
			return formatErrorResponse(c, NewTooManyRequestsError("Too many requests"), false)
		},
	}

	return middleware.RateLimiterWithConfig(config)
}
