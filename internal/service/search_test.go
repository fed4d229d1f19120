package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helioscope/heliobot/internal/config"
	"github.com/helioscope/heliobot/internal/domain"
)

func newTestSearchService(url string) *SearchService {
	return &SearchService{
		apiKey:     "test-search-key",
		engineID:   "test-engine",
		baseURL:    url,
		httpClient: http.DefaultClient,
	}
}

func TestSearchServiceIsConfigured(t *testing.T) {
	assert.True(t, newTestSearchService("http://x").IsConfigured())

	placeholderKey := &SearchService{apiKey: config.PlaceholderSearchKey, engineID: "real"}
	assert.False(t, placeholderKey.IsConfigured())

	placeholderEngine := &SearchService{apiKey: "real", engineID: config.PlaceholderEngineID}
	assert.False(t, placeholderEngine.IsConfigured())
}

func TestSearchServiceSearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "test-search-key", q.Get("key"))
		assert.Equal(t, "test-engine", q.Get("cx"))
		assert.Equal(t, "aurora "+config.SearchDomainHint, q.Get("q"))
		assert.Equal(t, strconv.Itoa(config.SearchResultLimit), q.Get("num"))
		assert.Equal(t, "image", q.Get("searchType"))
		assert.Equal(t, config.SearchImageSize, q.Get("imgSize"))

		_, _ = w.Write([]byte(`{"items":[
			{"title":"Aurora borealis","snippet":"Green glow over Norway","link":"https://example.com/a",
			 "image":{"thumbnailLink":"https://example.com/a_thumb.jpg","thumbnailWidth":120,"thumbnailHeight":90}},
			{"title":"Aurora australis","snippet":"","link":"https://example.com/b",
			 "image":{"src":"https://example.com/b_full.jpg"}}
		]}`))
	}))
	defer srv.Close()

	s := newTestSearchService(srv.URL)
	results, err := s.Search(context.Background(), "aurora")
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "Aurora borealis", results[0].Title)
	assert.Equal(t, "Green glow over Norway", results[0].Snippet)
	assert.Equal(t, "https://example.com/a_thumb.jpg", results[0].ImageURL)
	assert.Equal(t, 120, results[0].ImageWidth)
	assert.Equal(t, 90, results[0].ImageHeight)

	// Thumbnail link missing, full image source stands in.
	assert.Equal(t, "https://example.com/b_full.jpg", results[1].ImageURL)
}

func TestSearchServiceSearchCapsResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items":[
			{"title":"1"},{"title":"2"},{"title":"3"},{"title":"4"},
			{"title":"5"},{"title":"6"},{"title":"7"}
		]}`))
	}))
	defer srv.Close()

	s := newTestSearchService(srv.URL)
	results, err := s.Search(context.Background(), "sun")
	require.NoError(t, err)
	assert.Len(t, results, config.SearchResultLimit)
}

func TestSearchServiceSearchStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	s := newTestSearchService(srv.URL)
	_, err := s.Search(context.Background(), "sun")
	assert.ErrorContains(t, err, "search api status 403")
}

func TestSearchServiceSearchNotConfigured(t *testing.T) {
	s := &SearchService{apiKey: config.PlaceholderSearchKey, engineID: config.PlaceholderEngineID}
	_, err := s.Search(context.Background(), "sun")
	assert.ErrorIs(t, err, domain.ErrNotConfigured)
}

func TestSummarize(t *testing.T) {
	results := []domain.SearchResult{
		{Title: "Solar flare guide", Snippet: "A **flare** is a burst of radiation", Link: "https://example.com/flare"},
		{Title: "Flare classes", Snippet: "", Link: "https://example.com/classes"},
	}

	got := Summarize("solar flares", results)
	assert.Contains(t, got, `🔍 Here's what I found for "solar flares":`)
	assert.Contains(t, got, "1. *Solar flare guide*")
	assert.Contains(t, got, "A flare is a burst of radiation")
	assert.Contains(t, got, "2. *Flare classes*")
	assert.Contains(t, got, "https://example.com/classes")
	assert.NotContains(t, got, "**")
}

func TestSummarizeEmpty(t *testing.T) {
	got := Summarize("quantum pizza", nil)
	assert.Equal(t, `I couldn't find anything on the web for "quantum pizza". Try rephrasing your question.`, got)
}
