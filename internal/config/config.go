package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"go-simpler.org/env"
)

type Config struct {
	AppEnv    string `env:"APP_ENV" default:"development"`
	Port      string `env:"PORT" default:"8080"`
	LogLevel  string `env:"LOG_LEVEL" default:"info"`
	LogFormat string `env:"LOG_FORMAT" default:"text"`

	// Connector credentials
	GNewsAPIKey     string `env:"GNEWS_API_KEY"`
	GNewsBaseURL    string `env:"GNEWS_BASE_URL" default:"https://gnews.io/api/v4"`
	RedditUserAgent string `env:"REDDIT_USER_AGENT"`
	RedditBaseURL   string `env:"REDDIT_BASE_URL" default:"https://www.reddit.com"`

	// Hosted sentiment model access
	HFAPIToken string `env:"HF_API_TOKEN"`
	HFModel    string `env:"HF_MODEL" default:"cardiffnlp/twitter-roberta-base-sentiment-latest"`
	HFBaseURL  string `env:"HF_BASE_URL" default:"https://api-inference.huggingface.co"`

	ScoringWorkers   int           `env:"SCORING_WORKERS" default:"8"`
	ConnectorTimeout time.Duration `env:"CONNECTOR_TIMEOUT" default:"30s"`
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	var cfg Config
	if err := env.Load(&cfg, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func validate(cfg *Config) error {
	required := map[string]string{
		"GNEWS_API_KEY":     cfg.GNewsAPIKey,
		"REDDIT_USER_AGENT": cfg.RedditUserAgent,
		"HF_API_TOKEN":      cfg.HFAPIToken,
	}
	for name, value := range required {
		if value == "" {
			return fmt.Errorf("%s is required", name)
		}
	}

	if cfg.ScoringWorkers < 1 {
		return fmt.Errorf("SCORING_WORKERS must be at least 1, got %d", cfg.ScoringWorkers)
	}

	return nil
}
