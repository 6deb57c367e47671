package server

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/gaborage/paramspec/config"
	"github.com/gaborage/paramspec/logger"
)

const slowRequestThreshold = time.Second

// SetupMiddlewares registers request IDs, request logging, panic recovery,
// security headers, a body limit and rate limiting.
func SetupMiddlewares(e *echo.Echo, log logger.Logger, cfg *config.Config) {
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))

	e.Use(LoggerWithConfig(log, LoggerConfig{
		HealthPath:           healthPath,
		SlowRequestThreshold: slowRequestThreshold,
	}))

	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			log.Error().
				Err(err).
				Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
				Str("stack", string(stack)).
				Msg("Panic recovered")
			return fmt.Errorf("panic recovered: %w", err)
		},
	}))

	e.Use(middleware.SecureWithConfig(middleware.SecureConfig{
		XSSProtection:      "1; mode=block",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "SAMEORIGIN",
	}))

	// Requests carry no body; anything large is a mistake.
	e.Use(middleware.BodyLimit("64K"))

	e.Use(RateLimit(cfg.Server.Rate.Limit, cfg.Server.Rate.Burst))
}
