package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSpaceWeatherService(url string) *SpaceWeatherService {
	return &SpaceWeatherService{
		httpClient: http.DefaultClient,
		feedURL:    url,
		siteURL:    url,
	}
}

func swpcTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/json/planetary_k_index_1m.json", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"time_tag":"2026-08-30T11:59:00","estimated_kp":2.33},
			{"time_tag":"2026-08-30T12:00:00","estimated_kp":4.67}
		]`))
	})
	mux.HandleFunc("/products/summary/solar-wind-speed.json", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"WindSpeed":"512.3","TimeStamp":"2026-08-30 12:00:00"}`))
	})
	mux.HandleFunc("/products/summary/solar-wind-mag-field.json", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"Bt":"7.1","Bz":"-3.4","TimeStamp":"2026-08-30 12:00:00"}`))
	})
	mux.HandleFunc("/news", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body><div class="view-content">
			<div class="views-row"><a href="/news/g2-watch">G2 Watch in Effect</a></div>
			<div class="views-row"><a href="/news/x1-flare">X1 Flare Observed</a></div>
			<div class="views-row"><a href="https://example.com/ext">External Notice</a></div>
		</div></body></html>`))
	})
	return httptest.NewServer(mux)
}

func TestCurrentConditions(t *testing.T) {
	srv := swpcTestServer(t)
	defer srv.Close()

	s := newTestSpaceWeatherService(srv.URL)
	cond, err := s.CurrentConditions(context.Background())
	require.NoError(t, err)

	// Latest entry wins.
	assert.InDelta(t, 4.67, cond.KIndex, 1e-9)
	assert.Equal(t, time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC), cond.KIndexTime)
	assert.InDelta(t, 512.3, cond.WindSpeed, 1e-9)
	assert.InDelta(t, 7.1, cond.Bt, 1e-9)
	assert.InDelta(t, -3.4, cond.Bz, 1e-9)
}

func TestCurrentConditionsPartialData(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/json/planetary_k_index_1m.json", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"time_tag":"2026-08-30T12:00:00","estimated_kp":3.0}]`))
	})
	// Wind feeds are down.
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	s := newTestSpaceWeatherService(srv.URL)
	cond, err := s.CurrentConditions(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 3.0, cond.KIndex, 1e-9)
	assert.Zero(t, cond.WindSpeed)
}

func TestCurrentConditionsAllFeedsDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	s := newTestSpaceWeatherService(srv.URL)
	_, err := s.CurrentConditions(context.Background())
	assert.Error(t, err)
}

func TestHeadlines(t *testing.T) {
	srv := swpcTestServer(t)
	defer srv.Close()

	s := newTestSpaceWeatherService(srv.URL)
	headlines, err := s.Headlines(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, headlines, 3)

	assert.Equal(t, "G2 Watch in Effect", headlines[0].Title)
	assert.Equal(t, srv.URL+"/news/g2-watch", headlines[0].Link)
	// Absolute links pass through untouched.
	assert.Equal(t, "https://example.com/ext", headlines[2].Link)
}

func TestHeadlinesLimit(t *testing.T) {
	srv := swpcTestServer(t)
	defer srv.Close()

	s := newTestSpaceWeatherService(srv.URL)
	headlines, err := s.Headlines(context.Background(), 2)
	require.NoError(t, err)
	assert.Len(t, headlines, 2)
}
