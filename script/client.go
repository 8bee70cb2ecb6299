package script

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/podcast-maker/podcast-maker/podcast"
)

//go:generate moq -out mocks/http_client.go -pkg mocks -skip-ensure -fmt goimports . HTTPClient

// HTTPClient defines the interface for HTTP client operations
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// OpenRouter endpoints and request identification headers.
const (
	chatCompletionsURL = "https://openrouter.ai/api/v1/chat/completions"
	modelsURL          = "https://openrouter.ai/api/v1/models"
	appReferer         = "https://podcast-maker.app"
	appTitle           = "Podcast Maker App"

	systemPrompt = "You are an expert podcast scriptwriter who creates engaging, natural-sounding scripts."
	temperature  = 0.7

	defaultHTTPTimeout = 2 * time.Minute
)

// GenerationError reports that the generation endpoint failed for every
// allowed attempt. The last underlying error is embedded.
type GenerationError struct {
	Attempts int
	Err      error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("failed to generate podcast script after %d attempts: %v", e.Attempts, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// Service generates podcast scripts via the OpenRouter chat API.
type Service struct {
	apiKey     string
	httpClient HTTPClient
	log        *slog.Logger
	sleep      func(time.Duration)
}

// NewService creates a new script generation service. A nil httpClient
// gets a default client with a generation-sized timeout.
func NewService(apiKey string, httpClient HTTPClient) *Service {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return &Service{
		apiKey:     apiKey,
		httpClient: httpClient,
		log:        slog.Default(),
		sleep:      time.Sleep,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

// Generate builds the prompt for the request, calls the generation
// endpoint with exponential backoff (1s, 2s, 4s, ...) and parses the
// completion into a script result. After MaxRetries consecutive failures
// it returns a GenerationError wrapping the last attempt's error.
func (s *Service) Generate(ctx context.Context, req podcast.ScriptRequest) (podcast.ScriptResult, error) {
	req = normalize(req)

	request := chatRequest{
		Model: req.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: BuildPrompt(req)},
		},
		Temperature: temperature,
		MaxTokens:   CalculateMaxTokens(req.LengthMinutes),
	}

	var lastErr error
	for attempt := 0; attempt < req.MaxRetries; attempt++ {
		content, err := s.callChatAPI(ctx, request)
		if err == nil {
			return ParseScriptResponse(content, req), nil
		}
		s.log.Warn("script generation attempt failed", "attempt", attempt+1, "error", err)
		lastErr = err
		if attempt < req.MaxRetries-1 {
			s.sleep(time.Duration(1<<attempt) * time.Second)
		}
	}

	return podcast.ScriptResult{}, &GenerationError{Attempts: req.MaxRetries, Err: lastErr}
}

// callChatAPI makes a request to the chat completions API
func (s *Service) callChatAPI(ctx context.Context, request chatRequest) (string, error) {
	requestBody, err := json.Marshal(request)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, chatCompletionsURL, bytes.NewBuffer(requestBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("HTTP-Referer", appReferer)
	req.Header.Set("X-Title", appTitle)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("API request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	// parse the response
	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if len(result.Choices) == 0 {
		return "", fmt.Errorf("no response from API")
	}

	return result.Choices[0].Message.Content, nil
}

// ModelInfo identifies a selectable generation model.
type ModelInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// defaultFreeModels is returned when the model listing call fails.
var defaultFreeModels = []ModelInfo{
	{ID: "meta-llama/llama-3-8b-instruct", Name: "Llama 3 (8B)"},
	{ID: "mistralai/mistral-7b-instruct", Name: "Mistral (7B)"},
	{ID: "google/gemma-7b-it", Name: "Gemma (7B)"},
}

// ListFreeModels returns the generation models with zero prompt and
// completion cost. On any failure it falls back to a hardcoded list
// instead of returning an error; the result may not reflect live data.
func (s *Service) ListFreeModels(ctx context.Context) []ModelInfo {
	models, err := s.fetchFreeModels(ctx)
	if err != nil {
		s.log.Warn("failed to fetch available models, using fallback list", "error", err)
		return append([]ModelInfo(nil), defaultFreeModels...)
	}
	return models
}

func (s *Service) fetchFreeModels(ctx context.Context) ([]ModelInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, modelsURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("HTTP-Referer", appReferer)
	req.Header.Set("X-Title", appTitle)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("models request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("models request failed with status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var result struct {
		Data []struct {
			ID      string `json:"id"`
			Name    string `json:"name"`
			Pricing struct {
				Prompt     price `json:"prompt"`
				Completion price `json:"completion"`
			} `json:"pricing"`
		} `json:"data"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode models response: %w", err)
	}

	var models []ModelInfo
	for _, m := range result.Data {
		if m.Pricing.Prompt != 0 || m.Pricing.Completion != 0 {
			continue
		}
		name := m.Name
		if name == "" {
			name = m.ID
		}
		models = append(models, ModelInfo{ID: m.ID, Name: name})
	}
	return models, nil
}

// price tolerates both numeric and quoted-string pricing values.
type price float64

func (p *price) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*p = 0
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid price %q: %w", s, err)
	}
	*p = price(v)
	return nil
}
