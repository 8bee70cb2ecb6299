package audio

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/podcast-maker/podcast-maker/podcast"
)

// FFmpegCombiner merges audio segments with ffmpeg's concat demuxer, which
// handles framed formats correctly. Headerless PCM formats skip ffmpeg and
// fall back to raw concatenation.
type FFmpegCombiner struct {
	FFmpegPath string // path to the ffmpeg binary, "ffmpeg" when empty
}

// Combine writes the segments to a temp directory, concatenates them with
// ffmpeg stream copy, and returns the combined bytes.
func (c *FFmpegCombiner) Combine(segments [][]byte, format podcast.AudioFormat) ([]byte, error) {
	if format != podcast.FormatMP3 && format != podcast.FormatWAV {
		return RawConcat{}.Combine(segments, format)
	}

	ffmpeg := c.FFmpegPath
	if ffmpeg == "" {
		ffmpeg = "ffmpeg"
	}

	tempDir, err := os.MkdirTemp("", "podcast-audio-")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(tempDir)

	ext := string(format)
	var concatContent strings.Builder
	for i, seg := range segments {
		segFile := filepath.Join(tempDir, fmt.Sprintf("segment_%03d.%s", i, ext))
		if err := os.WriteFile(segFile, seg, 0o600); err != nil {
			return nil, fmt.Errorf("failed to write segment file: %w", err)
		}
		// escape single quotes in filenames for ffmpeg concat format
		safeFile := strings.ReplaceAll(segFile, "'", "'\\''")
		concatContent.WriteString(fmt.Sprintf("file '%s'\n", safeFile))
	}

	concatFile := filepath.Join(tempDir, "concat.txt")
	if err := os.WriteFile(concatFile, []byte(concatContent.String()), 0o600); err != nil {
		return nil, fmt.Errorf("failed to write concat file: %w", err)
	}

	outputFile := filepath.Join(tempDir, "combined."+ext)
	args := []string{
		"-hide_banner",
		"-loglevel", "error",
		"-y",
		"-f", "concat",
		"-safe", "0",
		"-i", concatFile,
		"-c", "copy",
		outputFile,
	}

	// #nosec G204 -- Arguments are constructed internally, not from external input
	cmd := exec.Command(ffmpeg, args...)
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("failed to concatenate audio segments: %w", err)
	}

	combined, err := os.ReadFile(outputFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read combined audio: %w", err)
	}
	return combined, nil
}
