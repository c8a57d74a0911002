package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("GNEWS_API_KEY", "test-key")
	t.Setenv("REDDIT_USER_AGENT", "sentiscope-test/1.0")
	t.Setenv("HF_API_TOKEN", "hf_test")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "https://gnews.io/api/v4", cfg.GNewsBaseURL)
	assert.Equal(t, "https://www.reddit.com", cfg.RedditBaseURL)
	assert.Equal(t, "cardiffnlp/twitter-roberta-base-sentiment-latest", cfg.HFModel)
	assert.Equal(t, 8, cfg.ScoringWorkers)
	assert.Equal(t, 30*time.Second, cfg.ConnectorTimeout)
}

func TestLoad_MissingRequired(t *testing.T) {
	tests := []struct {
		name string
		omit string
	}{
		{"missing gnews key", "GNEWS_API_KEY"},
		{"missing reddit user agent", "REDDIT_USER_AGENT"},
		{"missing hf token", "HF_API_TOKEN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(tt.omit, "")

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.omit)
		})
	}
}

func TestLoad_InvalidWorkerCount(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SCORING_WORKERS", "0")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SCORING_WORKERS")
}

func TestLoad_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "9999")
	t.Setenv("SCORING_WORKERS", "2")
	t.Setenv("CONNECTOR_TIMEOUT", "5s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9999", cfg.Port)
	assert.Equal(t, 2, cfg.ScoringWorkers)
	assert.Equal(t, 5*time.Second, cfg.ConnectorTimeout)
}
