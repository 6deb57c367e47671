package server

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/gaborage/paramspec/logger"
)

// LoggerConfig configures the request logging middleware.
type LoggerConfig struct {
	// HealthPath is excluded from logging.
	HealthPath string

	// SlowRequestThreshold marks requests as slow (WARN severity) even when the
	// status is 2xx.
	SlowRequestThreshold time.Duration
}

// LoggerWithConfig returns a middleware that emits one summary log per request.
// Severity follows the response: 5xx logs at ERROR, 4xx and slow requests at
// WARN, everything else at INFO.
func LoggerWithConfig(log logger.Logger, cfg LoggerConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Path()
			if path == "" {
				path = c.Request().URL.Path
			}
			if path == cfg.HealthPath {
				return next(c)
			}

			start := time.Now()
			err := next(c)
			if err != nil {
				// Render the error now so the logged status is the one sent.
				c.Error(err)
			}
			latency := time.Since(start)
			status := c.Response().Status

			event := createLogEvent(log, status, latency, cfg.SlowRequestThreshold)
			if err != nil {
				event = event.Err(err)
			}
			event.
				Str("request_id", getTraceID(c)).
				Str("method", c.Request().Method).
				Str("path", path).
				Str("uri", c.Request().RequestURI).
				Int("status", status).
				Dur("latency", latency).
				Str("remote_ip", c.RealIP()).
				Msg("Request completed")

			return nil
		}
	}
}

func createLogEvent(log logger.Logger, status int, latency, slow time.Duration) logger.LogEvent {
	switch {
	case status >= 500:
		return log.Error()
	case status >= 400:
		return log.Warn()
	case slow > 0 && latency > slow:
		return log.Warn().Bool("slow", true)
	default:
		return log.Info()
	}
}
