package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/helioscope/heliobot/internal/config"
	"github.com/helioscope/heliobot/internal/domain"
)

// ModelService calls a hosted text-generation inference API. The response
// format varies between deployments, so extraction tries the known shapes in
// order: array of objects, bare string, single object.
type ModelService struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewModelService(cfg *config.Config) *ModelService {
	return &ModelService{
		apiKey:  cfg.ModelAPIKey,
		baseURL: cfg.ModelURL,
		// The resolver enforces the real deadline by racing the call against
		// config.RemoteTimeout; the client timeout is just a safety net for
		// abandoned requests.
		httpClient: &http.Client{Timeout: 2 * config.RemoteTimeout},
	}
}

// IsConfigured reports whether the API key holds a real value rather than the
// placeholder sentinel.
func (s *ModelService) IsConfigured() bool {
	return s.apiKey != "" && s.apiKey != config.PlaceholderModelKey
}

type generateRequest struct {
	Inputs     string             `json:"inputs"`
	Parameters generateParameters `json:"parameters"`
	Options    generateOptions    `json:"options"`
}

type generateParameters struct {
	MaxLength          int     `json:"max_length"`
	Temperature        float64 `json:"temperature"`
	DoSample           bool    `json:"do_sample"`
	TopP               float64 `json:"top_p"`
	NumReturnSequences int     `json:"num_return_sequences"`
	PadTokenID         int     `json:"pad_token_id"`
	ReturnFullText     bool    `json:"return_full_text"`
}

type generateOptions struct {
	WaitForModel bool `json:"wait_for_model"`
}

type generatedItem struct {
	GeneratedText string `json:"generated_text"`
	Text          string `json:"text"`
}

func (g generatedItem) value() string {
	if g.GeneratedText != "" {
		return g.GeneratedText
	}
	return g.Text
}

// Generate runs one inference request and returns the cleaned generated text.
func (s *ModelService) Generate(ctx context.Context, query string) (string, error) {
	if !s.IsConfigured() {
		return "", domain.ErrNotConfigured
	}

	payload, err := json.Marshal(generateRequest{
		Inputs: query,
		Parameters: generateParameters{
			MaxLength:          config.ModelMaxLength,
			Temperature:        config.ModelTemperature,
			DoSample:           true,
			TopP:               config.ModelTopP,
			NumReturnSequences: config.ModelReturnSequences,
			PadTokenID:         config.ModelPadTokenID,
			ReturnFullText:     false,
		},
		Options: generateOptions{WaitForModel: true},
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", s.baseURL, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("inference request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("model api status %d", resp.StatusCode)
	}

	text, err := extractGenerated(body)
	if err != nil {
		return "", err
	}

	cleaned := cleanGenerated(text, query)
	if cleaned == "" {
		return "", domain.ErrEmptyGeneration
	}
	return cleaned, nil
}

// extractGenerated pulls the generated text out of whichever response shape
// the API produced.
func extractGenerated(body []byte) (string, error) {
	var arr []generatedItem
	if err := json.Unmarshal(body, &arr); err == nil {
		if len(arr) > 0 && arr[0].value() != "" {
			return arr[0].value(), nil
		}
		return "", domain.ErrEmptyGeneration
	}

	var bare string
	if err := json.Unmarshal(body, &bare); err == nil {
		if bare != "" {
			return bare, nil
		}
		return "", domain.ErrEmptyGeneration
	}

	var obj generatedItem
	if err := json.Unmarshal(body, &obj); err == nil {
		if obj.value() != "" {
			return obj.value(), nil
		}
		return "", domain.ErrEmptyGeneration
	}

	return "", domain.ErrMalformedResponse
}

// cleanGenerated strips a leading echo of the query from the generated text.
// If what remains is too short to stand alone, the original text is kept.
func cleanGenerated(text, query string) string {
	text = strings.TrimSpace(text)
	query = strings.TrimSpace(query)

	cleaned := text
	if query != "" && strings.HasPrefix(strings.ToLower(cleaned), strings.ToLower(query)) {
		cleaned = strings.TrimSpace(cleaned[len(query):])
		cleaned = strings.TrimLeft(cleaned, ".,:;!? ")
	}
	if len(cleaned) <= config.MinGeneratedLength {
		return text
	}
	return cleaned
}
