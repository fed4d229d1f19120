package config

import "time"

const (
	// Remote call timeout: the inference request is raced against this timer
	// and the loser is discarded
	RemoteTimeout = 15 * time.Second

	// Local answers at or above this confidence skip the remote model
	ConfidenceThreshold = 0.8

	// Web search
	SearchResultLimit = 5
	SearchDomainHint  = "solar space weather"
	SearchImageSize   = "medium"

	// Model generation parameters
	ModelMaxLength       = 200
	ModelTemperature     = 0.7
	ModelTopP            = 0.9
	ModelReturnSequences = 1
	ModelPadTokenID      = 50256

	// Generated text shorter than this after echo-stripping is considered
	// too thin to stand alone
	MinGeneratedLength = 10

	// Space weather feed timeout
	FeedTimeout = 30 * time.Second

	// Telegram limits
	MaxTelegramMessageLen = 4096

	// Rate limits (messages per minute per chat)
	RateLimitPerMinute = 20
	RateLimitBurst     = 5

	// Placeholder sentinels; keys equal to these count as unconfigured
	PlaceholderSearchKey = "YOUR_SEARCH_API_KEY"
	PlaceholderEngineID  = "YOUR_SEARCH_ENGINE_ID"
	PlaceholderModelKey  = "YOUR_MODEL_API_KEY"
)
