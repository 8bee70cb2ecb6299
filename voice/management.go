package voice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"
)

// Voice management is auxiliary to the synthesis pipeline: list/info style
// calls degrade to hardcoded fallbacks on failure instead of returning
// errors, so callers must assume the result may not be live data.

// ListVoices returns the voices available to the account. On failure it
// falls back to the recommended host voices.
func (c *Client) ListVoices(ctx context.Context) []Voice {
	voices, err := c.fetchVoices(ctx)
	if err != nil {
		c.log.Warn("failed to fetch available voices, using recommended fallback", "error", err)
		fallback := append([]Voice(nil), RecommendedVoices[RoleMaleHosts]...)
		return append(fallback, RecommendedVoices[RoleFemaleHosts]...)
	}
	return voices
}

func (c *Client) fetchVoices(ctx context.Context) ([]Voice, error) {
	var result struct {
		Voices []struct {
			VoiceID     string `json:"voice_id"`
			Name        string `json:"name"`
			Category    string `json:"category"`
			Description string `json:"description"`
			PreviewURL  string `json:"preview_url"`
			Labels      struct {
				Gender   string `json:"gender"`
				Age      string `json:"age"`
				Accent   string `json:"accent"`
				Language string `json:"language"`
				UseCase  string `json:"use_case"`
			} `json:"labels"`
		} `json:"voices"`
	}
	if err := c.getJSON(ctx, "/voices", &result); err != nil {
		return nil, err
	}

	voices := make([]Voice, 0, len(result.Voices))
	for _, v := range result.Voices {
		voices = append(voices, Voice{
			VoiceID:     v.VoiceID,
			Name:        v.Name,
			Category:    v.Category,
			Description: v.Description,
			PreviewURL:  v.PreviewURL,
			Gender:      v.Labels.Gender,
			Age:         v.Labels.Age,
			Accent:      v.Labels.Accent,
			Language:    v.Labels.Language,
			UseCase:     v.Labels.UseCase,
		})
	}
	return voices, nil
}

// CloneRequest describes a voice cloning upload.
type CloneRequest struct {
	Name        string
	Description string
	Samples     [][]byte // mp3 sample recordings
	Labels      map[string]string
}

// CloneVoice uploads sample audio and creates a new cloned voice,
// returning its id. Unlike the list/info calls, cloning failures
// propagate to the caller.
func (c *Client) CloneVoice(ctx context.Context, req CloneRequest) (string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	if err := writer.WriteField("name", req.Name); err != nil {
		return "", fmt.Errorf("voice cloning failed: %w", err)
	}
	if err := writer.WriteField("description", req.Description); err != nil {
		return "", fmt.Errorf("voice cloning failed: %w", err)
	}
	if len(req.Labels) > 0 {
		labels, err := json.Marshal(req.Labels)
		if err != nil {
			return "", fmt.Errorf("voice cloning failed: %w", err)
		}
		if err := writer.WriteField("labels", string(labels)); err != nil {
			return "", fmt.Errorf("voice cloning failed: %w", err)
		}
	}
	for i, sample := range req.Samples {
		part, err := writer.CreateFormFile("files", fmt.Sprintf("sample_%d.mp3", i))
		if err != nil {
			return "", fmt.Errorf("voice cloning failed: %w", err)
		}
		if _, err := part.Write(sample); err != nil {
			return "", fmt.Errorf("voice cloning failed: %w", err)
		}
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("voice cloning failed: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, apiBaseURL+"/voices/add", &buf)
	if err != nil {
		return "", fmt.Errorf("voice cloning failed: %w", err)
	}
	httpReq.Header.Set("xi-api-key", c.apiKey)
	httpReq.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("voice cloning failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("voice cloning failed with status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var result struct {
		VoiceID string `json:"voice_id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("voice cloning failed: %w", err)
	}
	return result.VoiceID, nil
}

// EditVoiceRequest carries optional voice metadata updates; empty fields
// are left unchanged.
type EditVoiceRequest struct {
	Name        string
	Description string
	Labels      map[string]string
}

// EditVoice updates voice metadata. Failures are logged and reported as
// false rather than returned.
func (c *Client) EditVoice(ctx context.Context, voiceID string, req EditVoiceRequest) bool {
	payload := map[string]any{}
	if req.Name != "" {
		payload["name"] = req.Name
	}
	if req.Description != "" {
		payload["description"] = req.Description
	}
	if req.Labels != nil {
		payload["labels"] = req.Labels
	}

	body, err := json.Marshal(payload)
	if err != nil {
		c.log.Warn("failed to edit voice", "voice", voiceID, "error", err)
		return false
	}

	endpoint := apiBaseURL + "/voices/" + url.PathEscape(voiceID) + "/settings/edit"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		c.log.Warn("failed to edit voice", "voice", voiceID, "error", err)
		return false
	}
	httpReq.Header.Set("xi-api-key", c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	if err := c.doDiscard(httpReq); err != nil {
		c.log.Warn("failed to edit voice", "voice", voiceID, "error", err)
		return false
	}
	return true
}

// DeleteVoice removes a voice from the account. Failures are logged and
// reported as false rather than returned.
func (c *Client) DeleteVoice(ctx context.Context, voiceID string) bool {
	endpoint := apiBaseURL + "/voices/" + url.PathEscape(voiceID)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, http.NoBody)
	if err != nil {
		c.log.Warn("failed to delete voice", "voice", voiceID, "error", err)
		return false
	}
	httpReq.Header.Set("xi-api-key", c.apiKey)

	if err := c.doDiscard(httpReq); err != nil {
		c.log.Warn("failed to delete voice", "voice", voiceID, "error", err)
		return false
	}
	return true
}

// SubscriptionInfo describes the account's synthesis quota.
type SubscriptionInfo struct {
	Tier                           string `json:"tier"`
	CharacterCount                 int    `json:"character_count"`
	CharacterLimit                 int    `json:"character_limit"`
	CanExtendCharacterLimit        bool   `json:"can_extend_character_limit"`
	AllowedToExtendCharacterLimit  bool   `json:"allowed_to_extend_character_limit"`
	NextCharacterCountResetUnix    int64  `json:"next_character_count_reset_unix"`
	VoiceLimit                     int    `json:"voice_limit"`
	ProfessionalVoiceLimit         int    `json:"professional_voice_limit"`
	CanExtendVoiceLimit            bool   `json:"can_extend_voice_limit"`
	CanUseInstantVoiceCloning      bool   `json:"can_use_instant_voice_cloning"`
	CanUseProfessionalVoiceCloning bool   `json:"can_use_professional_voice_cloning"`
	Currency                       string `json:"currency"`
	Status                         string `json:"status"`
}

// Subscription returns the account subscription info. On failure it falls
// back to a free-tier placeholder.
func (c *Client) Subscription(ctx context.Context) SubscriptionInfo {
	var info SubscriptionInfo
	if err := c.getJSON(ctx, "/user/subscription", &info); err != nil {
		c.log.Warn("failed to fetch subscription info, using free-tier fallback", "error", err)
		return SubscriptionInfo{
			Tier:                        "free",
			CharacterLimit:              10000,
			NextCharacterCountResetUnix: time.Now().Add(30 * 24 * time.Hour).UnixMilli(),
			VoiceLimit:                  3,
			CanUseInstantVoiceCloning:   true,
			Currency:                    "USD",
			Status:                      "active",
		}
	}
	return info
}

// SynthesisModel describes a selectable synthesis model.
type SynthesisModel struct {
	ModelID         string  `json:"model_id"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	TokenCostFactor float64 `json:"token_cost_factor"`
}

// defaultModels is returned when the model listing call fails.
var defaultModels = []SynthesisModel{
	{
		ModelID:         "eleven_multilingual_v2",
		Name:            "Multilingual v2",
		Description:     "Latest version of the multilingual model, supporting 29 languages",
		TokenCostFactor: 1.5,
	},
	{
		ModelID:         "eleven_turbo_v2",
		Name:            "Turbo v2",
		Description:     "Fastest model with good quality, ideal for real-time applications",
		TokenCostFactor: 0.8,
	},
	{
		ModelID:         "eleven_multilingual_v1",
		Name:            "Multilingual v1",
		Description:     "Original multilingual model",
		TokenCostFactor: 1.5,
	},
	{
		ModelID:         "eleven_monolingual_v1",
		Name:            "Monolingual v1",
		Description:     "English-only model with high quality",
		TokenCostFactor: 1.0,
	},
	{
		ModelID:         "eleven_english_v1",
		Name:            "English v1",
		Description:     "Legacy English model",
		TokenCostFactor: 1.0,
	},
}

// ListModels returns the available synthesis models. On failure it falls
// back to a hardcoded list.
func (c *Client) ListModels(ctx context.Context) []SynthesisModel {
	var models []SynthesisModel
	if err := c.getJSON(ctx, "/models", &models); err != nil {
		c.log.Warn("failed to fetch available models, using fallback list", "error", err)
		return append([]SynthesisModel(nil), defaultModels...)
	}
	return models
}

// getJSON performs an authenticated GET and decodes the JSON response.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, apiBaseURL+path, http.NoBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("xi-api-key", c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// doDiscard performs a request where only the status matters.
func (c *Client) doDiscard(req *http.Request) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(bodyBytes))
	}
	return nil
}
