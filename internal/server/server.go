// Package server exposes the scaffold pipeline over HTTP for editor integrations.
package server

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/toyz/quicktest/internal/generator"
	"github.com/toyz/quicktest/internal/utils"
)

// Config holds configuration for the HTTP server
type Config struct {
	// Addr is the listen address (default "127.0.0.1:8085")
	Addr string

	// ShutdownTimeout bounds graceful shutdown (default 10s)
	ShutdownTimeout time.Duration
}

// DefaultConfig returns a server configuration with defaults applied
func DefaultConfig() *Config {
	return &Config{
		Addr:            "127.0.0.1:8085",
		ShutdownTimeout: 10 * time.Second,
	}
}

// Server wraps an Echo instance serving the scaffold API
type Server struct {
	echo        *echo.Echo
	config      *Config
	service     generator.ScaffoldGenerator
	gatherer    prometheus.Gatherer
	diagnostics *utils.DiagnosticSystem
}

// NewServer creates a server with its routes registered. A nil gatherer
// disables the /metrics endpoint.
func NewServer(config *Config, service generator.ScaffoldGenerator, gatherer prometheus.Gatherer, diagnostics *utils.DiagnosticSystem) *Server {
	if config == nil {
		config = DefaultConfig()
	}
	if config.ShutdownTimeout <= 0 {
		config.ShutdownTimeout = DefaultConfig().ShutdownTimeout
	}
	if diagnostics == nil {
		diagnostics = utils.NewSilentDiagnostics()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	s := &Server{
		echo:        e,
		config:      config,
		service:     service,
		gatherer:    gatherer,
		diagnostics: diagnostics,
	}

	e.HTTPErrorHandler = s.handleError
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			s.diagnostics.Verbose("%s %s -> %d (%s)", v.Method, v.URI, v.Status, v.Latency)
			return nil
		},
	}))

	s.registerRoutes()
	return s
}

// Echo returns the underlying Echo instance
func (s *Server) Echo() *echo.Echo {
	return s.echo
}

func (s *Server) registerRoutes() {
	s.echo.GET("/healthz", s.health)
	if s.gatherer != nil {
		s.echo.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})))
	}

	api := s.echo.Group("/api/v1")
	api.POST("/scaffold", s.scaffold)
	api.POST("/map", s.mapPath)
	api.POST("/inspect", s.inspect)
}

// Start serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.diagnostics.Info("Listening on %s", s.config.Addr)
		if err := s.echo.Start(s.config.Addr); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("server failed to start: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.diagnostics.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
	defer cancel()

	if err := s.echo.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	return nil
}
