package connector

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Toheedullah-K3/SentiScope/internal/domain"
)

const (
	// redditMaxItems is the connector's hard cap on returned items.
	redditMaxItems = 50
	// redditMinTextLength drops posts too short to carry any sentiment.
	redditMinTextLength = 15
)

// Reddit fetches discussion posts via the public Reddit search API,
// newest first across all subreddits. Posts must contain the search term
// case-insensitively to count as relevant.
type Reddit struct {
	baseURL   string
	userAgent string
	client    *http.Client
}

func NewReddit(baseURL, userAgent string, timeout time.Duration) *Reddit {
	return &Reddit{
		baseURL:   baseURL,
		userAgent: userAgent,
		client:    &http.Client{Timeout: timeout},
	}
}

type redditPost struct {
	Title      string  `json:"title"`
	SelfText   string  `json:"selftext"`
	CreatedUTC float64 `json:"created_utc"`
	Score      int     `json:"score"`
}

type redditListing struct {
	Data struct {
		Children []struct {
			Data redditPost `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

// Fetch returns up to min(limit, 50) relevant posts. limit <= 0 means the cap.
func (r *Reddit) Fetch(ctx context.Context, searchTerm string, limit int) ([]domain.RawItem, error) {
	want := redditMaxItems
	if limit > 0 && limit < want {
		want = limit
	}

	params := url.Values{}
	params.Set("q", searchTerm)
	params.Set("sort", "new")
	params.Set("limit", strconv.Itoa(redditMaxItems))

	reqURL := fmt.Sprintf("%s/r/all/search.json?%s", r.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create reddit request: %w", err)
	}
	// Reddit throttles requests without a descriptive User-Agent.
	req.Header.Set("User-Agent", r.userAgent)

	start := time.Now()
	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call reddit: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("reddit returned status: %d", resp.StatusCode)
	}

	var listing redditListing
	if err := json.NewDecoder(resp.Body).Decode(&listing); err != nil {
		return nil, fmt.Errorf("failed to decode reddit response: %w", err)
	}

	needle := strings.ToLower(searchTerm)
	var items []domain.RawItem
	for _, child := range listing.Data.Children {
		if len(items) >= want {
			break
		}

		fullText := strings.TrimSpace(child.Data.Title + " " + child.Data.SelfText)
		if len(fullText) < redditMinTextLength || !strings.Contains(strings.ToLower(fullText), needle) {
			continue
		}

		items = append(items, domain.RawItem{
			Text:        fullText,
			PublishedAt: strconv.FormatInt(int64(child.Data.CreatedUTC), 10),
			Engagement:  child.Data.Score,
		})
	}

	slog.Info("reddit_fetch_completed",
		slog.Int("item_count", len(items)),
		slog.Int("discarded", len(listing.Data.Children)-len(items)),
		slog.Duration("elapsed", time.Since(start)),
	)
	return items, nil
}

var _ domain.SourceConnector = (*Reddit)(nil)
