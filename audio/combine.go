package audio

import (
	"bytes"

	"github.com/podcast-maker/podcast-maker/podcast"
)

// Combiner merges per-segment audio buffers into one continuous track.
type Combiner interface {
	Combine(segments [][]byte, format podcast.AudioFormat) ([]byte, error)
}

// RawConcat joins audio buffers back to back. This is only correct for
// headerless PCM streams; framed formats like mp3 or wav need FFmpegCombiner
// to rewrite container headers.
type RawConcat struct{}

// Combine concatenates the segment buffers in order.
func (RawConcat) Combine(segments [][]byte, _ podcast.AudioFormat) ([]byte, error) {
	var buf bytes.Buffer
	for _, seg := range segments {
		buf.Write(seg)
	}
	return buf.Bytes(), nil
}
