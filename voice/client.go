package voice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/podcast-maker/podcast-maker/podcast"
)

// HTTPClient defines the interface for HTTP client operations
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// ElevenLabs API defaults.
const (
	apiBaseURL = "https://api.elevenlabs.io/v1"

	DefaultModelID = "eleven_multilingual_v2"

	defaultFormat      = podcast.FormatMP3
	defaultMaxRetries  = 3
	defaultHTTPTimeout = 2 * time.Minute
)

// SynthesisError reports that the synthesis endpoint failed for every
// allowed attempt. The last underlying error is embedded.
type SynthesisError struct {
	Attempts int
	Err      error
}

func (e *SynthesisError) Error() string {
	return fmt.Sprintf("failed to convert text to speech after %d attempts: %v", e.Attempts, e.Err)
}

func (e *SynthesisError) Unwrap() error { return e.Err }

// Client talks to the ElevenLabs text-to-speech API.
type Client struct {
	apiKey     string
	httpClient HTTPClient
	limiter    *rate.Limiter
	log        *slog.Logger
	sleep      func(time.Duration)
}

// NewClient creates a new synthesis client. A nil httpClient gets a
// default client with a synthesis-sized timeout.
func NewClient(apiKey string, httpClient HTTPClient) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return &Client{
		apiKey:     apiKey,
		httpClient: httpClient,
		log:        slog.Default(),
		sleep:      time.Sleep,
	}
}

// SetRateLimit throttles synthesis requests to rps requests per second
// with the given burst. A zero rps removes the throttle.
func (c *Client) SetRateLimit(rps float64, burst int) {
	if rps <= 0 {
		c.limiter = nil
		return
	}
	c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
}

// SynthesisRequest describes one text-to-speech conversion.
type SynthesisRequest struct {
	Text        string
	VoiceID     string
	Settings    *podcast.VoiceSettings // nil means DefaultVoiceSettings
	ModelID     string
	Format      podcast.AudioFormat
	LatencyHint int // streaming latency optimization level 0-4
	MaxRetries  int
	OnProgress  func(progress float64) // fractional progress in [0,1], must not block
}

// Synthesize converts a text span to audio bytes for the requested voice,
// retrying with exponential backoff (1s, 2s, 4s, ...). Progress starts at
// 0.1 plus 0.05 per retry, rises to 0.9 while the audio streams in, and
// ends at 1.0. After MaxRetries consecutive failures it returns a
// SynthesisError wrapping the last attempt's error.
func (c *Client) Synthesize(ctx context.Context, req SynthesisRequest) ([]byte, error) {
	settings := DefaultVoiceSettings()
	if req.Settings != nil {
		settings = *req.Settings
	}
	if req.ModelID == "" {
		req.ModelID = DefaultModelID
	}
	if req.Format == "" {
		req.Format = defaultFormat
	}
	if req.MaxRetries <= 0 {
		req.MaxRetries = defaultMaxRetries
	}

	var lastErr error
	for attempt := 0; attempt < req.MaxRetries; attempt++ {
		if req.OnProgress != nil {
			req.OnProgress(0.1 + float64(attempt)*0.05)
		}
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return nil, fmt.Errorf("rate limit wait: %w", err)
			}
		}

		audio, err := c.callTTSAPI(ctx, req, settings)
		if err == nil {
			if req.OnProgress != nil {
				req.OnProgress(1.0)
			}
			return audio, nil
		}
		c.log.Warn("synthesis attempt failed", "voice", req.VoiceID, "attempt", attempt+1, "error", err)
		lastErr = err
		if attempt < req.MaxRetries-1 {
			c.sleep(time.Duration(1<<attempt) * time.Second)
		}
	}

	return nil, &SynthesisError{Attempts: req.MaxRetries, Err: lastErr}
}

// callTTSAPI makes a single request to the per-voice synthesis endpoint.
func (c *Client) callTTSAPI(ctx context.Context, req SynthesisRequest, settings podcast.VoiceSettings) ([]byte, error) {
	payload := struct {
		Text          string                `json:"text"`
		ModelID       string                `json:"model_id"`
		VoiceSettings podcast.VoiceSettings `json:"voice_settings"`
	}{
		Text:          req.Text,
		ModelID:       req.ModelID,
		VoiceSettings: settings,
	}

	requestBody, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	endpoint := apiBaseURL + "/text-to-speech/" + url.PathEscape(req.VoiceID) +
		"?optimize_streaming_latency=" + strconv.Itoa(req.LatencyHint)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(requestBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("xi-api-key", c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", ContentTypeForFormat(req.Format))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("TTS request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("TTS request failed with status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	audio, err := io.ReadAll(&progressReader{
		r:      resp.Body,
		total:  resp.ContentLength,
		report: req.OnProgress,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read audio stream: %w", err)
	}

	return audio, nil
}

// progressReader reports download progress in the 0.1 to 0.9 range while
// the audio body streams in. Progress is only reported when the response
// declares its length.
type progressReader struct {
	r      io.Reader
	total  int64
	read   int64
	report func(float64)
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	p.read += int64(n)
	if p.report != nil && p.total > 0 {
		progress := 0.1 + float64(p.read)/float64(p.total)*0.8
		if progress > 0.9 {
			progress = 0.9
		}
		p.report(progress)
	}
	return n, err
}
