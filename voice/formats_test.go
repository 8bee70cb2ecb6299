package voice

import (
	"strings"
	"testing"

	"github.com/podcast-maker/podcast-maker/podcast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentTypeForFormat(t *testing.T) {
	tbl := []struct {
		format podcast.AudioFormat
		want   string
	}{
		{podcast.FormatMP3, "audio/mpeg"},
		{podcast.FormatWAV, "audio/wav"},
		{podcast.FormatPCM, "audio/pcm"},
		{podcast.FormatPCM24000, "audio/pcm"},
		{podcast.FormatPCM44100, "audio/pcm"},
		{podcast.AudioFormat("ogg"), "audio/mpeg"},
	}
	for _, tt := range tbl {
		t.Run(string(tt.format), func(t *testing.T) {
			assert.Equal(t, tt.want, ContentTypeForFormat(tt.format))
		})
	}
}

func TestDefaultVoiceSettings(t *testing.T) {
	s := DefaultVoiceSettings()
	assert.Equal(t, 0.5, s.Stability)
	assert.Equal(t, 0.75, s.SimilarityBoost)
	assert.Zero(t, s.Style)
	assert.True(t, s.UseSpeakerBoost)
}

func TestAudioFilename(t *testing.T) {
	name := AudioFilename("episode", "wav")
	assert.True(t, strings.HasPrefix(name, "episode_"), name)
	assert.True(t, strings.HasSuffix(name, ".wav"), name)

	parts := strings.Split(strings.TrimSuffix(name, ".wav"), "_")
	require.Len(t, parts, 3)
	assert.Len(t, parts[2], 8, "short uuid suffix")
	assert.True(t, strings.HasSuffix(parts[1], "Z"), "utc timestamp")

	// defaults
	def := AudioFilename("", "")
	assert.True(t, strings.HasPrefix(def, "podcast_"), def)
	assert.True(t, strings.HasSuffix(def, ".mp3"), def)

	// two calls never collide
	assert.NotEqual(t, AudioFilename("a", "mp3"), AudioFilename("a", "mp3"))
}
