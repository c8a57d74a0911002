package connector

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func redditServer(t *testing.T, posts []redditPost) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/r/all/search.json", r.URL.Path)
		assert.Equal(t, "new", r.URL.Query().Get("sort"))
		assert.Equal(t, "sentiscope-test/1.0", r.Header.Get("User-Agent"))

		var listing redditListing
		for _, p := range posts {
			listing.Data.Children = append(listing.Data.Children, struct {
				Data redditPost `json:"data"`
			}{Data: p})
		}
		_ = json.NewEncoder(w).Encode(listing)
	}))
}

func TestReddit_Fetch(t *testing.T) {
	srv := redditServer(t, []redditPost{
		{Title: "Thoughts on golang error handling", SelfText: "I like it", CreatedUTC: 1700000000, Score: 42},
	})
	defer srv.Close()

	r := NewReddit(srv.URL, "sentiscope-test/1.0", time.Second)
	items, err := r.Fetch(context.Background(), "golang", 0)
	require.NoError(t, err)
	require.Len(t, items, 1)

	assert.Equal(t, "Thoughts on golang error handling I like it", items[0].Text)
	assert.Equal(t, "1700000000", items[0].PublishedAt)
	assert.Equal(t, 42, items[0].Engagement)
}

func TestReddit_RelevanceFilter(t *testing.T) {
	srv := redditServer(t, []redditPost{
		{Title: "golang rocks!", SelfText: "", CreatedUTC: 1700000000},             // too short
		{Title: "A long post about rust and nothing else whatsoever", SelfText: ""}, // missing term
		{Title: "GOLANG generics finally clicked for me", SelfText: "", CreatedUTC: 1700003600},
	})
	defer srv.Close()

	r := NewReddit(srv.URL, "sentiscope-test/1.0", time.Second)
	items, err := r.Fetch(context.Background(), "golang", 0)
	require.NoError(t, err)
	require.Len(t, items, 1, "short and off-topic posts are discarded")

	assert.Equal(t, "GOLANG generics finally clicked for me", items[0].Text, "containment check is case-insensitive")
}

func TestReddit_EnforcesCap(t *testing.T) {
	posts := make([]redditPost, 80)
	for i := range posts {
		posts[i] = redditPost{Title: "yet another golang discussion thread", CreatedUTC: 1700000000}
	}
	srv := redditServer(t, posts)
	defer srv.Close()

	r := NewReddit(srv.URL, "sentiscope-test/1.0", time.Second)
	items, err := r.Fetch(context.Background(), "golang", 500)
	require.NoError(t, err)
	assert.Len(t, items, 50)
}

func TestReddit_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	r := NewReddit(srv.URL, "sentiscope-test/1.0", time.Second)
	_, err := r.Fetch(context.Background(), "golang", 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}
