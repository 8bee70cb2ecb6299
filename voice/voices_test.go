package voice

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapSpeakersToVoices(t *testing.T) {
	mappings := MapSpeakersToVoices([]string{"Alex", "Jordan", "Dana"})
	require.Len(t, mappings, 3)

	assert.Equal(t, "Alex", mappings[0].SpeakerName)
	assert.Equal(t, "pNInz6obpgDQGcFmaJgB", mappings[0].VoiceID) // Adam
	assert.Equal(t, "ErXwobaYiN019PkySvjV", mappings[1].VoiceID) // Antoni
	assert.Equal(t, "ODq5zmih8GrVes37Dizd", mappings[2].VoiceID) // Josh
}

func TestMapSpeakersToVoices_CyclesWhenExhausted(t *testing.T) {
	names := make([]string, 18)
	for i := range names {
		names[i] = string(rune('A' + i))
	}
	mappings := MapSpeakersToVoices(names)
	require.Len(t, mappings, 18)

	// 16 stock voices, so the 17th speaker wraps to the first voice
	assert.Equal(t, mappings[0].VoiceID, mappings[16].VoiceID)
	assert.Equal(t, mappings[1].VoiceID, mappings[17].VoiceID)
}

func TestClient_ListVoices(t *testing.T) {
	t.Run("maps api response", func(t *testing.T) {
		body := `{"voices":[{"voice_id":"v1","name":"Custom","category":"cloned","labels":{"gender":"female","accent":"british"}}]}`
		client := &fakeHTTPClient{do: func(_ *http.Request) (*http.Response, error) {
			return &http.Response{StatusCode: http.StatusOK, Body: io.NopCloser(strings.NewReader(body))}, nil
		}}
		c, _ := newTestClient(client)

		voices := c.ListVoices(context.Background())
		require.Len(t, voices, 1)
		assert.Equal(t, "v1", voices[0].VoiceID)
		assert.Equal(t, "Custom", voices[0].Name)
		assert.Equal(t, "female", voices[0].Gender)
		assert.Equal(t, "british", voices[0].Accent)
	})

	t.Run("falls back to recommended hosts on failure", func(t *testing.T) {
		client := &fakeHTTPClient{do: func(_ *http.Request) (*http.Response, error) {
			return nil, errors.New("network down")
		}}
		c, _ := newTestClient(client)

		voices := c.ListVoices(context.Background())
		require.Len(t, voices, 8, "male and female host voices")
		assert.Equal(t, "Adam", voices[0].Name)
		assert.Equal(t, "Bella", voices[4].Name)
	})
}

func TestClient_CloneVoice(t *testing.T) {
	t.Run("uploads multipart samples", func(t *testing.T) {
		var gotReq *http.Request
		var gotBody []byte
		client := &fakeHTTPClient{do: func(req *http.Request) (*http.Response, error) {
			gotReq = req
			gotBody, _ = io.ReadAll(req.Body)
			return &http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(strings.NewReader(`{"voice_id":"cloned-1"}`)),
			}, nil
		}}
		c, _ := newTestClient(client)

		id, err := c.CloneVoice(context.Background(), CloneRequest{
			Name:    "My Voice",
			Samples: [][]byte{[]byte("sample-audio")},
			Labels:  map[string]string{"accent": "neutral"},
		})
		require.NoError(t, err)
		assert.Equal(t, "cloned-1", id)

		require.NotNil(t, gotReq)
		assert.Contains(t, gotReq.Header.Get("Content-Type"), "multipart/form-data")
		assert.Contains(t, string(gotBody), "My Voice")
		assert.Contains(t, string(gotBody), "sample_0.mp3")
		assert.Contains(t, string(gotBody), "sample-audio")
	})

	t.Run("propagates errors", func(t *testing.T) {
		client := &fakeHTTPClient{do: func(_ *http.Request) (*http.Response, error) {
			return nil, errors.New("quota exceeded")
		}}
		c, _ := newTestClient(client)

		_, err := c.CloneVoice(context.Background(), CloneRequest{Name: "My Voice"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "voice cloning failed")
	})
}

func TestClient_EditAndDeleteVoice(t *testing.T) {
	okClient := &fakeHTTPClient{do: func(_ *http.Request) (*http.Response, error) {
		return &http.Response{StatusCode: http.StatusOK, Body: io.NopCloser(strings.NewReader("{}"))}, nil
	}}
	failClient := &fakeHTTPClient{do: func(_ *http.Request) (*http.Response, error) {
		return nil, errors.New("network down")
	}}

	c, _ := newTestClient(okClient)
	assert.True(t, c.EditVoice(context.Background(), "v1", EditVoiceRequest{Name: "Renamed"}))
	assert.True(t, c.DeleteVoice(context.Background(), "v1"))

	c, _ = newTestClient(failClient)
	assert.False(t, c.EditVoice(context.Background(), "v1", EditVoiceRequest{Name: "Renamed"}))
	assert.False(t, c.DeleteVoice(context.Background(), "v1"))
}

func TestClient_Subscription_Fallback(t *testing.T) {
	client := &fakeHTTPClient{do: func(_ *http.Request) (*http.Response, error) {
		return nil, errors.New("network down")
	}}
	c, _ := newTestClient(client)

	info := c.Subscription(context.Background())
	assert.Equal(t, "free", info.Tier)
	assert.Equal(t, 10000, info.CharacterLimit)
	assert.Equal(t, 3, info.VoiceLimit)
	assert.True(t, info.CanUseInstantVoiceCloning)
	assert.Equal(t, "active", info.Status)
}

func TestClient_ListModels_Fallback(t *testing.T) {
	client := &fakeHTTPClient{do: func(_ *http.Request) (*http.Response, error) {
		return nil, errors.New("network down")
	}}
	c, _ := newTestClient(client)

	models := c.ListModels(context.Background())
	require.Len(t, models, 5)
	assert.Equal(t, "eleven_multilingual_v2", models[0].ModelID)
}
