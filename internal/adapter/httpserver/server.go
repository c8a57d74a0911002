// Package httpserver is the echo transport adapter: it binds and validates
// analysis requests, shapes pipeline results into the response contract,
// and serves the observability endpoints.
package httpserver

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Toheedullah-K3/SentiScope/internal/config"
	"github.com/Toheedullah-K3/SentiScope/internal/domain"
	"github.com/labstack/echo/v4"
)

// analyzer is the slice of the pipeline the transport needs.
type analyzer interface {
	Analyze(ctx context.Context, q domain.Query) (*domain.AggregateResult, error)
}

type Server struct {
	echo   *echo.Echo
	config *config.Config

	pipeline analyzer

	healthChecks []HealthCheck
	startTime    time.Time
}

func NewServer(cfg *config.Config, pipeline analyzer, healthChecks []HealthCheck) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	srv := &Server{
		echo:         e,
		config:       cfg,
		pipeline:     pipeline,
		healthChecks: healthChecks,
		startTime:    time.Now(),
	}

	srv.registerRoutes()

	return srv
}

func (s *Server) Start() error {
	slog.Info("Starting server", "port", s.config.Port)
	if err := s.echo.Start(":" + s.config.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.echo.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}
	return nil
}
