package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/helioscope/heliobot/internal/config"
)

// SpaceWeatherService reads live sensor data from the NOAA SWPC public feeds
// and scrapes current headlines from the SWPC site.
type SpaceWeatherService struct {
	httpClient *http.Client
	feedURL    string
	siteURL    string
}

func NewSpaceWeatherService(cfg *config.Config) *SpaceWeatherService {
	return &SpaceWeatherService{
		httpClient: &http.Client{Timeout: config.FeedTimeout},
		feedURL:    strings.TrimSuffix(cfg.FeedBaseURL, "/"),
		siteURL:    strings.TrimSuffix(cfg.SiteBaseURL, "/"),
	}
}

// Conditions is a snapshot of the current near-Earth solar readouts.
type Conditions struct {
	KIndex     float64
	KIndexTime time.Time
	WindSpeed  float64 // km/s
	Bt         float64 // nT
	Bz         float64 // nT
}

// CurrentConditions fetches the latest planetary K-index and solar wind
// summary. Partial data is returned when one feed fails; the error is only
// non-nil when nothing could be read.
func (s *SpaceWeatherService) CurrentConditions(ctx context.Context) (*Conditions, error) {
	cond := &Conditions{}
	var kErr, windErr error

	kErr = s.fetchKIndex(ctx, cond)
	windErr = s.fetchSolarWind(ctx, cond)

	if kErr != nil && windErr != nil {
		return nil, fmt.Errorf("fetch conditions: %w", kErr)
	}
	return cond, nil
}

func (s *SpaceWeatherService) fetchKIndex(ctx context.Context, cond *Conditions) error {
	body, err := s.get(ctx, s.feedURL+"/json/planetary_k_index_1m.json")
	if err != nil {
		return err
	}

	var entries []struct {
		TimeTag     string  `json:"time_tag"`
		EstimatedKp float64 `json:"estimated_kp"`
	}
	if err := json.Unmarshal(body, &entries); err != nil {
		return fmt.Errorf("parse k-index: %w", err)
	}
	if len(entries) == 0 {
		return fmt.Errorf("k-index feed is empty")
	}

	last := entries[len(entries)-1]
	cond.KIndex = last.EstimatedKp
	if t, err := time.Parse("2006-01-02T15:04:05", last.TimeTag); err == nil {
		cond.KIndexTime = t.UTC()
	}
	return nil
}

func (s *SpaceWeatherService) fetchSolarWind(ctx context.Context, cond *Conditions) error {
	body, err := s.get(ctx, s.feedURL+"/products/summary/solar-wind-speed.json")
	if err != nil {
		return err
	}
	var speed struct {
		WindSpeed string `json:"WindSpeed"`
	}
	if err := json.Unmarshal(body, &speed); err != nil {
		return fmt.Errorf("parse wind speed: %w", err)
	}
	cond.WindSpeed, _ = strconv.ParseFloat(speed.WindSpeed, 64)

	// Magnetic field is best-effort on top of the speed summary.
	if body, err = s.get(ctx, s.feedURL+"/products/summary/solar-wind-mag-field.json"); err == nil {
		var mag struct {
			Bt string `json:"Bt"`
			Bz string `json:"Bz"`
		}
		if json.Unmarshal(body, &mag) == nil {
			cond.Bt, _ = strconv.ParseFloat(mag.Bt, 64)
			cond.Bz, _ = strconv.ParseFloat(mag.Bz, 64)
		}
	}
	return nil
}

// Headline is one scraped news item from the SWPC site.
type Headline struct {
	Title string
	Link  string
}

// Headlines scrapes the most recent news titles from the SWPC site.
func (s *SpaceWeatherService) Headlines(ctx context.Context, limit int) ([]Headline, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", s.siteURL+"/news", nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch news: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("news page status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse news page: %w", err)
	}

	var headlines []Headline
	doc.Find(".view-content .views-row a").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		title := strings.TrimSpace(sel.Text())
		if title == "" {
			return true
		}
		link, _ := sel.Attr("href")
		if strings.HasPrefix(link, "/") {
			link = s.siteURL + link
		}
		headlines = append(headlines, Headline{Title: title, Link: link})
		return len(headlines) < limit
	})

	return headlines, nil
}

func (s *SpaceWeatherService) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("feed status %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	return body, nil
}
