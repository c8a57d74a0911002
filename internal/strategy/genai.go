package strategy

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/Toheedullah-K3/SentiScope/internal/domain"
	"github.com/Toheedullah-K3/SentiScope/internal/platform/retry"
)

// GenAI scores text with a hosted three-way sentiment classifier served
// over the Hugging Face inference API. The client is constructed once at
// startup and is safe for concurrent use.
type GenAI struct {
	baseURL string
	model   string
	token   string
	client  *http.Client
	policy  retry.Policy
}

func NewGenAI(baseURL, model, token string, timeout time.Duration) *GenAI {
	return &GenAI{
		baseURL: baseURL,
		model:   model,
		token:   token,
		client:  &http.Client{Timeout: timeout},
		policy: retry.Policy{
			MaxAttempts:      3,
			InitialBackoff:   500 * time.Millisecond,
			RateLimitBackoff: 2 * time.Second,
			OnRetry: func(attempt int, err error, backoff time.Duration) {
				slog.Warn("genai_retry",
					slog.Int("attempt", attempt),
					slog.Duration("backoff", backoff),
					slog.String("error", err.Error()),
				)
			},
		},
	}
}

func (g *GenAI) Name() domain.Model {
	return domain.ModelGenAI
}

type inferenceRequest struct {
	Inputs  string           `json:"inputs"`
	Options inferenceOptions `json:"options"`
}

type inferenceOptions struct {
	WaitForModel bool `json:"wait_for_model"`
}

type labelScore struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Score returns the canonical score derived from the classifier's
// negative/neutral/positive distribution. Transient upstream failures
// (5xx, rate limiting) are retried before the error is surfaced.
func (g *GenAI) Score(ctx context.Context, text string) (float64, error) {
	scores, err := retry.Do(ctx, g.policy, classifyInferenceError, func() ([]labelScore, error) {
		return g.classify(ctx, text)
	})
	if err != nil {
		return 0, err
	}

	var negative, neutral, positive float64
	for _, s := range scores {
		switch strings.ToLower(s.Label) {
		case "negative", "label_0":
			negative = s.Score
		case "neutral", "label_1":
			neutral = s.Score
		case "positive", "label_2":
			positive = s.Score
		}
	}

	return FromDistribution(negative, neutral, positive), nil
}

func (g *GenAI) classify(ctx context.Context, text string) ([]labelScore, error) {
	payload, err := json.Marshal(inferenceRequest{
		Inputs:  text,
		Options: inferenceOptions{WaitForModel: true},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal inference request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s", g.baseURL, g.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create inference request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+g.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call inference api: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, &inferenceStatusError{status: resp.StatusCode}
	}

	// The API nests one score list per input; we always send one input.
	var body [][]labelScore
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode inference response: %w", err)
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("inference response contained no results")
	}

	return body[0], nil
}

type inferenceStatusError struct {
	status int
}

func (e *inferenceStatusError) Error() string {
	return fmt.Sprintf("inference api returned status: %d", e.status)
}

func classifyInferenceError(err error) retry.Action {
	var statusErr *inferenceStatusError
	if errors.As(err, &statusErr) {
		switch {
		case statusErr.status == http.StatusTooManyRequests:
			return retry.After
		case statusErr.status >= 500:
			return retry.Retry
		default:
			return retry.Stop
		}
	}
	// Network-level failures are worth one more try.
	return retry.Retry
}

var _ domain.ScoringStrategy = (*GenAI)(nil)
