package audio

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/podcast-maker/podcast-maker/podcast"
	"github.com/podcast-maker/podcast-maker/voice"
)

// Synthesizer converts one text span to audio. Implemented by voice.Client.
type Synthesizer interface {
	Synthesize(ctx context.Context, req voice.SynthesisRequest) ([]byte, error)
}

// Assembler turns a parsed script into a single audio track by
// synthesizing each segment with its speaker's voice and concatenating
// the results.
type Assembler struct {
	tts      Synthesizer
	combiner Combiner
	log      *slog.Logger
}

// NewAssembler creates an assembler. A nil combiner defaults to RawConcat
// and a nil logger to slog.Default().
func NewAssembler(tts Synthesizer, combiner Combiner, log *slog.Logger) *Assembler {
	if combiner == nil {
		combiner = RawConcat{}
	}
	if log == nil {
		log = slog.Default()
	}
	return &Assembler{tts: tts, combiner: combiner, log: log}
}

// AssembleOptions configures one assembly run.
type AssembleOptions struct {
	Segments       []podcast.Segment
	SpeakerVoices  []podcast.SpeakerVoiceMapping
	ModelID        string
	Format         podcast.AudioFormat
	LatencyHint    int
	MaxRetries     int
	DefaultVoiceID string                 // voice for unmapped speakers, stock default when empty
	OnSegmentDone  func(i, total int)     // called after each segment, synthesized or skipped
	OnProgress     func(progress float64) // fractional progress in [0,1]
}

// Assemble synthesizes the script segments in order and combines them into
// one track. Speaker lookup is case-insensitive. Segments whose synthesis
// fails after retries are logged and skipped, so the result can be shorter
// than the script. Start times are rebuilt as prefix sums over the
// estimated durations of the segments that made it in.
func (a *Assembler) Assemble(ctx context.Context, opts AssembleOptions) (*podcast.AudioAssemblyResult, error) {
	if opts.ModelID == "" {
		opts.ModelID = voice.DefaultModelID
	}
	if opts.Format == "" {
		opts.Format = podcast.FormatMP3
	}
	defaultVoice := opts.DefaultVoiceID
	if defaultVoice == "" {
		defaultVoice = voice.DefaultVoiceID()
	}

	// speakers resolve to voices by lowercased name; settings attach to
	// the voice id, so speakers sharing a voice share its settings
	voiceByName := make(map[string]string, len(opts.SpeakerVoices))
	settingsByVoice := make(map[string]*podcast.VoiceSettings, len(opts.SpeakerVoices))
	for _, m := range opts.SpeakerVoices {
		voiceByName[strings.ToLower(m.SpeakerName)] = m.VoiceID
		if m.VoiceSettings != nil {
			settingsByVoice[m.VoiceID] = m.VoiceSettings
		}
	}

	total := len(opts.Segments)
	segmentAudios := make([]podcast.SegmentAudio, 0, total)
	var audioBuffers [][]byte
	var elapsed float64

	for i, seg := range opts.Segments {
		if opts.OnProgress != nil {
			opts.OnProgress(float64(i) / float64(total) * 0.9)
		}

		voiceID := defaultVoice
		if id, ok := voiceByName[strings.ToLower(seg.Speaker)]; ok {
			voiceID = id
		}
		settings := settingsByVoice[voiceID]

		data, err := a.tts.Synthesize(ctx, voice.SynthesisRequest{
			Text:        seg.Content,
			VoiceID:     voiceID,
			Settings:    settings,
			ModelID:     opts.ModelID,
			Format:      opts.Format,
			LatencyHint: opts.LatencyHint,
			MaxRetries:  opts.MaxRetries,
		})
		if err != nil {
			a.log.Error("skipping segment after synthesis failure",
				"segment", i, "speaker", seg.Speaker, "error", err)
			if opts.OnSegmentDone != nil {
				opts.OnSegmentDone(i, total)
			}
			continue
		}

		duration := EstimateDuration(data, opts.Format)
		segmentAudios = append(segmentAudios, podcast.SegmentAudio{
			Segment:   seg,
			Audio:     data,
			Duration:  duration,
			StartTime: elapsed,
		})
		audioBuffers = append(audioBuffers, data)
		elapsed += duration

		if opts.OnSegmentDone != nil {
			opts.OnSegmentDone(i, total)
		}
	}

	if len(segmentAudios) == 0 {
		return nil, fmt.Errorf("no segments could be synthesized")
	}

	fullAudio, err := a.combiner.Combine(audioBuffers, opts.Format)
	if err != nil {
		return nil, fmt.Errorf("failed to combine segments: %w", err)
	}
	if opts.OnProgress != nil {
		opts.OnProgress(1.0)
	}

	speakers := make([]podcast.SpeakerAssignment, 0, len(opts.SpeakerVoices))
	for _, m := range opts.SpeakerVoices {
		speakers = append(speakers, podcast.SpeakerAssignment{
			Name:    strings.ToLower(m.SpeakerName),
			VoiceID: m.VoiceID,
		})
	}

	return &podcast.AudioAssemblyResult{
		FullAudio:     fullAudio,
		SegmentAudios: segmentAudios,
		TotalDuration: elapsed,
		Metadata: podcast.AudioMetadata{
			Format:      opts.Format,
			Model:       opts.ModelID,
			GeneratedAt: time.Now(),
			Speakers:    speakers,
		},
	}, nil
}
