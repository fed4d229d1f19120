package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	// Core
	BotToken string `env:"BOT_TOKEN,required"`

	// Google Custom Search (web mode)
	SearchAPIKey   string `env:"SEARCH_API_KEY" envDefault:"YOUR_SEARCH_API_KEY"`
	SearchEngineID string `env:"SEARCH_ENGINE_ID" envDefault:"YOUR_SEARCH_ENGINE_ID"`
	SearchURL      string `env:"SEARCH_API_URL" envDefault:"https://www.googleapis.com/customsearch/v1"`

	// Hosted text-generation model (model mode)
	ModelAPIKey string `env:"MODEL_API_KEY" envDefault:"YOUR_MODEL_API_KEY"`
	ModelURL    string `env:"MODEL_API_URL" envDefault:"https://api-inference.huggingface.co/models/gpt2"`

	// Space weather data feeds
	FeedBaseURL string `env:"SWPC_FEED_URL" envDefault:"https://services.swpc.noaa.gov"`
	SiteBaseURL string `env:"SWPC_SITE_URL" envDefault:"https://www.swpc.noaa.gov"`

	// Bot behavior
	DefaultMode        string `env:"DEFAULT_RESPONSE_MODE" envDefault:"model"`
	DropPendingUpdates bool   `env:"BOT_DROP_PENDING_UPDATES" envDefault:"false"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// IsSearchConfigured reports whether the search key and engine ID hold real
// values rather than the placeholder sentinels.
func (c *Config) IsSearchConfigured() bool {
	return c.SearchAPIKey != "" && c.SearchAPIKey != PlaceholderSearchKey &&
		c.SearchEngineID != "" && c.SearchEngineID != PlaceholderEngineID
}

// IsModelConfigured reports whether the model API key holds a real value.
func (c *Config) IsModelConfigured() bool {
	return c.ModelAPIKey != "" && c.ModelAPIKey != PlaceholderModelKey
}

// IsAPIConfigured is true only when both remote collaborators are usable.
func (c *Config) IsAPIConfigured() bool {
	return c.IsSearchConfigured() && c.IsModelConfigured()
}
