package audio

import (
	"github.com/podcast-maker/podcast-maker/podcast"
)

// EstimateDuration approximates the playback length in seconds of an audio
// buffer from its byte size and the format's nominal bitrate. MP3 assumes
// 128 kbps CBR, WAV assumes 44.1 kHz 16-bit stereo, and the PCM formats
// assume 16-bit mono at their sample rate.
func EstimateDuration(data []byte, format podcast.AudioFormat) float64 {
	size := float64(len(data))
	switch format {
	case podcast.FormatMP3:
		return size / (128 * 1024 / 8)
	case podcast.FormatWAV:
		return size / (44100 * 2 * 2)
	case podcast.FormatPCM, podcast.FormatPCM24000:
		return size / (24000 * 2)
	case podcast.FormatPCM44100:
		return size / (44100 * 2)
	default:
		return size / 32000
	}
}
