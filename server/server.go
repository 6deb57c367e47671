// Package server exposes contract schemas and rendered parameter
// declarations over HTTP using the Echo framework.
package server

import (
	"context"
	goerrors "errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gaborage/paramspec"
	"github.com/gaborage/paramspec/config"
	"github.com/gaborage/paramspec/contract"
	"github.com/gaborage/paramspec/logger"
)

const healthPath = "/health"

// Server represents an HTTP server instance with Echo framework.
// It manages server lifecycle, configuration, and request handling.
type Server struct {
	echo      *echo.Echo
	cfg       *config.Config
	logger    logger.Logger
	resolver  *paramspec.Resolver
	contracts *contract.Registry
}

// New creates a server answering for the contracts in registry, rendered
// through resolver.
func New(cfg *config.Config, log logger.Logger, resolver *paramspec.Resolver, contracts *contract.Registry) (*Server, error) {
	if log == nil {
		log = logger.Nop()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		customErrorHandler(err, c, cfg)
	}
	v := NewValidator()
	if v == nil {
		return nil, fmt.Errorf("failed to initialize request validator")
	}
	e.Validator = v

	SetupMiddlewares(e, log, cfg)

	s := &Server{
		echo:      e,
		cfg:       cfg,
		logger:    log.Component("server"),
		resolver:  resolver,
		contracts: contracts,
	}
	s.registerRoutes()

	log.Debug().
		Int("contracts", contracts.Len()).
		Str("default_adapter", string(resolver.DefaultAdapter())).
		Msg("Server routes configured")

	return s, nil
}

func (s *Server) registerRoutes() {
	s.echo.GET(healthPath, s.healthCheck)
	s.echo.GET("/contracts", s.listContracts)
	s.echo.GET("/contracts/:name/schema", s.contractSchema)
	s.echo.GET("/contracts/:name/params", s.contractParams)
}

// Echo returns the underlying Echo instance.
func (s *Server) Echo() *echo.Echo {
	return s.echo
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return fmt.Sprintf("%s:%d", s.cfg.Server.Host, s.cfg.Server.Port)
}

// Start starts the HTTP server and begins accepting requests.
// It blocks until the server is shut down or encounters an error.
func (s *Server) Start() error {
	addr := s.Addr()

	s.logger.Info().
		Str("service", s.cfg.App.Name).
		Str("version", s.cfg.App.Version).
		Str("env", s.cfg.App.Env).
		Str("address", addr).
		Msg("Starting server...")

	s.echo.Server.ReadTimeout = s.cfg.Server.Timeout.Read
	s.echo.Server.WriteTimeout = s.cfg.Server.Timeout.Write

	return s.echo.Start(addr)
}

// Shutdown gracefully shuts down the HTTP server with the given context.
// It waits for existing connections to finish within the context timeout.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func (s *Server) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

func customErrorHandler(err error, c echo.Context, cfg *config.Config) {
	if c.Response().Committed {
		return
	}

	showDetails := cfg.App.Env != config.EnvProduction

	var apiErr IAPIError
	if goerrors.As(err, &apiErr) {
		_ = formatErrorResponse(c, apiErr, showDetails)
		return
	}

	var validationErr *ValidationError
	if goerrors.As(err, &validationErr) {
		base := NewBadRequestError(validationErr.Error())
		base.WithDetails("errors", validationErr.Errors)
		_ = formatErrorResponse(c, base, true)
		return
	}

	var he *echo.HTTPError
	if goerrors.As(err, &he) && he.Code != http.StatusInternalServerError {
		msg := http.StatusText(he.Code)
		switch m := he.Message.(type) {
		case string:
			msg = m
		case error:
			msg = m.Error()
		}
		base := NewBaseAPIError(statusToErrorCode(he.Code), msg, he.Code)
		if showDetails {
			base.WithDetails("error", err.Error())
		}
		_ = formatErrorResponse(c, base, showDetails)
		return
	}

	msg := "Internal server error"
	if !showDetails {
		msg = "An error occurred while processing your request"
	}
	internal := NewInternalServerError(msg)
	if showDetails {
		internal.WithDetails("error", err.Error())
	}
	_ = formatErrorResponse(c, internal, showDetails)
}
