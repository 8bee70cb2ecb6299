package voice

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/podcast-maker/podcast-maker/podcast"
)

// ContentTypeForFormat maps an audio format to the Accept/Content-Type
// value used with the synthesis API.
func ContentTypeForFormat(format podcast.AudioFormat) string {
	switch format {
	case podcast.FormatMP3:
		return "audio/mpeg"
	case podcast.FormatWAV:
		return "audio/wav"
	case podcast.FormatPCM, podcast.FormatPCM24000, podcast.FormatPCM44100:
		return "audio/pcm"
	default:
		return "audio/mpeg"
	}
}

// DefaultVoiceSettings returns the standard synthesis tuning.
func DefaultVoiceSettings() podcast.VoiceSettings {
	return podcast.VoiceSettings{
		Stability:       0.5,
		SimilarityBoost: 0.75,
		Style:           0.0,
		UseSpeakerBoost: true,
	}
}

// AudioFilename builds a unique storage filename of the form
// prefix_timestamp_shortuuid.ext. Empty prefix and extension default to
// "podcast" and "mp3".
func AudioFilename(prefix, ext string) string {
	if prefix == "" {
		prefix = "podcast"
	}
	if ext == "" {
		ext = "mp3"
	}
	now := time.Now().UTC()
	stamp := fmt.Sprintf("%s%03dZ", now.Format("20060102T150405"), now.Nanosecond()/1e6)
	return fmt.Sprintf("%s_%s_%s.%s", prefix, stamp, uuid.NewString()[:8], ext)
}
