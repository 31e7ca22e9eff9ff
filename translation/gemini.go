package translation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

const defaultGeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// GeminiConfig configures the Gemini-backed translator.
type GeminiConfig struct {
	// APIKey authenticates against the generativelanguage API. Required.
	APIKey string
	// Model is the model identifier, e.g. "gemini-1.5-flash-latest".
	Model string
	// BaseURL overrides the API endpoint, used by tests.
	BaseURL string
	// HTTPClient overrides the transport. Defaults to http.DefaultClient.
	HTTPClient *http.Client
}

// GeminiTranslator translates text via the generativelanguage
// generateContent endpoint. One prompt, one response; no retries,
// no streaming.
type GeminiTranslator struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

// NewGeminiTranslator creates a translator for the configured model.
func NewGeminiTranslator(cfg GeminiConfig) (*GeminiTranslator, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini translator: api key is required")
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("gemini translator: model is required")
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultGeminiBaseURL
	}
	client := cfg.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	return &GeminiTranslator{
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		baseURL: baseURL,
		client:  client,
	}, nil
}

type generateContentRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Translate sends a single templated prompt and returns the model's raw
// text response.
func (g *GeminiTranslator) Translate(ctx context.Context, text string, sourceLang, targetLang string) (Translation, error) {
	prompt := fmt.Sprintf("Translate the following %s text to %s: \"%s\"", sourceLang, targetLang, text)

	payload, err := json.Marshal(generateContentRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	})
	if err != nil {
		return Translation{}, &ModelError{Kind: ModelFailure, Message: fmt.Sprintf("encode request: %v", err)}
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s", g.baseURL, g.model, url.QueryEscape(g.apiKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return Translation{}, &ModelError{Kind: ModelFailure, Message: fmt.Sprintf("build request: %v", err)}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return Translation{}, &ModelError{Kind: ModelFailure, Message: fmt.Sprintf("call model: %v", err)}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Translation{}, &ModelError{Kind: ModelFailure, Message: fmt.Sprintf("read response: %v", err)}
	}

	var decoded generateContentResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return Translation{}, &ModelError{Kind: ModelFailure, Message: fmt.Sprintf("decode response: %v", err)}
	}

	if resp.StatusCode != http.StatusOK {
		message := fmt.Sprintf("model returned status %d", resp.StatusCode)
		if decoded.Error != nil && decoded.Error.Message != "" {
			message = decoded.Error.Message
		}
		return Translation{}, &ModelError{Kind: ModelFailure, Message: message}
	}

	if len(decoded.Candidates) == 0 || len(decoded.Candidates[0].Content.Parts) == 0 {
		return Translation{}, &ModelError{Kind: ModelFailure, Message: "model returned no candidates"}
	}

	return Translation{
		SourceText:     text,
		TranslatedText: decoded.Candidates[0].Content.Parts[0].Text,
		SourceLang:     sourceLang,
		TargetLang:     targetLang,
	}, nil
}

// SupportedLanguages returns the fixed language list.
func (g *GeminiTranslator) SupportedLanguages() []string {
	return Languages
}

// Health reports whether the translator is configured.
func (g *GeminiTranslator) Health() HealthStatus {
	return HealthStatus{Healthy: true, Message: "gemini translator ready (" + g.model + ")"}
}
