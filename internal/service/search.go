package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/helioscope/heliobot/internal/config"
	"github.com/helioscope/heliobot/internal/domain"
)

// SearchService queries the Google Custom Search API for solar weather
// material. One request per resolution, no retries.
type SearchService struct {
	apiKey     string
	engineID   string
	baseURL    string
	httpClient *http.Client
}

func NewSearchService(cfg *config.Config) *SearchService {
	return &SearchService{
		apiKey:     cfg.SearchAPIKey,
		engineID:   cfg.SearchEngineID,
		baseURL:    cfg.SearchURL,
		httpClient: &http.Client{Timeout: config.RemoteTimeout},
	}
}

// IsConfigured reports whether the key and engine ID hold real values rather
// than the placeholder sentinels.
func (s *SearchService) IsConfigured() bool {
	return s.apiKey != "" && s.apiKey != config.PlaceholderSearchKey &&
		s.engineID != "" && s.engineID != config.PlaceholderEngineID
}

type searchResponse struct {
	Items []struct {
		Title   string `json:"title"`
		Snippet string `json:"snippet"`
		Link    string `json:"link"`
		Image   struct {
			ThumbnailLink   string `json:"thumbnailLink"`
			Src             string `json:"src"`
			ThumbnailWidth  int    `json:"thumbnailWidth"`
			ThumbnailHeight int    `json:"thumbnailHeight"`
		} `json:"image"`
	} `json:"items"`
}

// Search issues a single search request scoped to the solar weather domain
// and maps up to config.SearchResultLimit items into results.
func (s *SearchService) Search(ctx context.Context, query string) ([]domain.SearchResult, error) {
	if !s.IsConfigured() {
		return nil, domain.ErrNotConfigured
	}

	params := url.Values{}
	params.Set("key", s.apiKey)
	params.Set("cx", s.engineID)
	params.Set("q", query+" "+config.SearchDomainHint)
	params.Set("num", strconv.Itoa(config.SearchResultLimit))
	params.Set("searchType", "image")
	params.Set("imgSize", config.SearchImageSize)

	req, err := http.NewRequestWithContext(ctx, "GET", s.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search api status %d", resp.StatusCode)
	}

	var parsed searchResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}

	results := make([]domain.SearchResult, 0, len(parsed.Items))
	for i, item := range parsed.Items {
		if i >= config.SearchResultLimit {
			break
		}
		imageURL := item.Image.ThumbnailLink
		if imageURL == "" {
			imageURL = item.Image.Src
		}
		results = append(results, domain.SearchResult{
			Title:       item.Title,
			Snippet:     item.Snippet,
			Link:        item.Link,
			ImageURL:    imageURL,
			ImageWidth:  item.Image.ThumbnailWidth,
			ImageHeight: item.Image.ThumbnailHeight,
		})
	}
	return results, nil
}

// Summarize builds the reply text shown for a set of search results.
func Summarize(query string, results []domain.SearchResult) string {
	if len(results) == 0 {
		return fmt.Sprintf("I couldn't find anything on the web for %q. Try rephrasing your question.", query)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🔍 Here's what I found for %q:\n", query)
	for i, r := range results {
		fmt.Fprintf(&b, "\n%d. *%s*\n", i+1, r.Title)
		if r.Snippet != "" {
			b.WriteString(StripMarkdown(r.Snippet))
			b.WriteString("\n")
		}
		if r.Link != "" {
			b.WriteString(r.Link)
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
