package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Toheedullah-K3/SentiScope/internal/adapter/httpserver"
	"github.com/Toheedullah-K3/SentiScope/internal/analysis"
	"github.com/Toheedullah-K3/SentiScope/internal/config"
	"github.com/Toheedullah-K3/SentiScope/internal/connector"
	"github.com/Toheedullah-K3/SentiScope/internal/domain"
	"github.com/Toheedullah-K3/SentiScope/internal/logging"
	"github.com/Toheedullah-K3/SentiScope/internal/strategy"
	"github.com/jonboulle/clockwork"
)

func setupConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		// Use log before slog is initialized
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

func setupConnectors(cfg *config.Config) map[domain.Platform]domain.SourceConnector {
	// Twitter stays unwired until credentialed API access lands; requests
	// for it succeed with zero items.
	return map[domain.Platform]domain.SourceConnector{
		domain.PlatformGNews:  connector.NewGNews(cfg.GNewsBaseURL, cfg.GNewsAPIKey, cfg.ConnectorTimeout),
		domain.PlatformReddit: connector.NewReddit(cfg.RedditBaseURL, cfg.RedditUserAgent, cfg.ConnectorTimeout),
	}
}

func setupStrategies(cfg *config.Config) (map[domain.Model]domain.ScoringStrategy, domain.ScoringStrategy) {
	vader := strategy.NewVader()
	strategies := map[domain.Model]domain.ScoringStrategy{
		domain.ModelVader:    vader,
		domain.ModelTextBlob: strategy.NewTextBlob(),
		domain.ModelGenAI:    strategy.NewGenAI(cfg.HFBaseURL, cfg.HFModel, cfg.HFAPIToken, cfg.ConnectorTimeout),
	}
	return strategies, vader
}

func runGracefulShutdown(srv *httpserver.Server) <-chan struct{} {
	done := make(chan struct{})
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Shutdown signal received, cleaning up...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}

		close(done)
	}()

	return done
}

func main() {
	clock := clockwork.NewRealClock()

	cfg := setupConfig()

	// Initialize structured logging
	logging.InitLogger(cfg.LogLevel, cfg.LogFormat)
	slog.Info("Application starting", "env", cfg.AppEnv, "port", cfg.Port)

	connectors := setupConnectors(cfg)
	strategies, fallback := setupStrategies(cfg)
	pipeline := analysis.NewPipeline(connectors, strategies, fallback, clock, cfg.ScoringWorkers)

	srv := httpserver.NewServer(cfg, pipeline, nil)

	done := runGracefulShutdown(srv)

	slog.Info("Server starting", "port", cfg.Port)
	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server error", "error", err)
		os.Exit(1)
	}

	<-done
}
