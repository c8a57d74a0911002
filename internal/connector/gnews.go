package connector

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/Toheedullah-K3/SentiScope/internal/domain"
)

// gnewsMaxItems is the connector's hard cap on returned items.
const gnewsMaxItems = 100

// GNews fetches news articles from the GNews search API, paginating until
// the cap is reached or a page comes back empty.
type GNews struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewGNews(baseURL, apiKey string, timeout time.Duration) *GNews {
	return &GNews{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: timeout},
	}
}

type gnewsArticle struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	PublishedAt string `json:"publishedAt"`
}

type gnewsResponse struct {
	TotalArticles int            `json:"totalArticles"`
	Articles      []gnewsArticle `json:"articles"`
}

// Fetch returns up to min(limit, 100) articles matching the search term,
// newest pages first as delivered by the API. limit <= 0 means the cap.
func (g *GNews) Fetch(ctx context.Context, searchTerm string, limit int) ([]domain.RawItem, error) {
	want := gnewsMaxItems
	if limit > 0 && limit < want {
		want = limit
	}

	start := time.Now()
	var items []domain.RawItem
	for page := 1; len(items) < want; page++ {
		articles, err := g.fetchPage(ctx, searchTerm, page)
		if err != nil {
			return nil, err
		}
		if len(articles) == 0 {
			break
		}

		for _, a := range articles {
			if len(items) >= want {
				break
			}
			items = append(items, domain.RawItem{
				Text:        a.Title + " - " + a.Description,
				PublishedAt: a.PublishedAt,
			})
		}
	}

	slog.Info("gnews_fetch_completed",
		slog.Int("item_count", len(items)),
		slog.Duration("elapsed", time.Since(start)),
	)
	return items, nil
}

func (g *GNews) fetchPage(ctx context.Context, searchTerm string, page int) ([]gnewsArticle, error) {
	params := url.Values{}
	params.Set("q", searchTerm)
	params.Set("token", g.apiKey)
	params.Set("lang", "en")
	params.Set("max", strconv.Itoa(gnewsMaxItems))
	params.Set("page", strconv.Itoa(page))

	reqURL := fmt.Sprintf("%s/search?%s", g.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create gnews request: %w", err)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call gnews: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gnews returned status: %d", resp.StatusCode)
	}

	var body gnewsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode gnews response: %w", err)
	}

	return body.Articles, nil
}

var _ domain.SourceConnector = (*GNews)(nil)
