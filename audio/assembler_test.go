package audio

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/podcast-maker/podcast-maker/podcast"
	"github.com/podcast-maker/podcast-maker/voice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSynthesizer struct {
	synthesize func(ctx context.Context, req voice.SynthesisRequest) ([]byte, error)
}

func (f *fakeSynthesizer) Synthesize(ctx context.Context, req voice.SynthesisRequest) ([]byte, error) {
	return f.synthesize(ctx, req)
}

func testSegments() []podcast.Segment {
	return []podcast.Segment{
		{Type: podcast.SegmentIntro, Speaker: "Alex", Content: "Welcome to the show."},
		{Type: podcast.SegmentMain, Speaker: "Jordan", Content: "Today we discuss things."},
		{Type: podcast.SegmentOutro, Speaker: "Alex", Content: "Thanks for listening."},
	}
}

func testMappings() []podcast.SpeakerVoiceMapping {
	return []podcast.SpeakerVoiceMapping{
		{SpeakerName: "Alex", VoiceID: "voice-alex"},
		{SpeakerName: "Jordan", VoiceID: "voice-jordan"},
	}
}

func TestAssembler_Assemble(t *testing.T) {
	var voiceIDs []string
	tts := &fakeSynthesizer{synthesize: func(_ context.Context, req voice.SynthesisRequest) ([]byte, error) {
		voiceIDs = append(voiceIDs, req.VoiceID)
		// 16384 bytes is one second of mp3 at the assumed bitrate
		return make([]byte, 16384), nil
	}}
	a := NewAssembler(tts, nil, nil)

	result, err := a.Assemble(context.Background(), AssembleOptions{
		Segments:      testSegments(),
		SpeakerVoices: testMappings(),
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"voice-alex", "voice-jordan", "voice-alex"}, voiceIDs)
	require.Len(t, result.SegmentAudios, 3)
	assert.Len(t, result.FullAudio, 3*16384, "raw concat of three segments")
	assert.InDelta(t, 3.0, result.TotalDuration, 1e-9, "three one-second mp3 segments")
	assert.Equal(t, podcast.FormatMP3, result.Metadata.Format)
	assert.Equal(t, "eleven_multilingual_v2", result.Metadata.Model)

	require.Len(t, result.Metadata.Speakers, 2)
	assert.Equal(t, "alex", result.Metadata.Speakers[0].Name, "speaker names are lowercased")
	assert.Equal(t, "voice-alex", result.Metadata.Speakers[0].VoiceID)
}

func TestAssembler_Assemble_CaseInsensitiveLookup(t *testing.T) {
	var voiceIDs []string
	tts := &fakeSynthesizer{synthesize: func(_ context.Context, req voice.SynthesisRequest) ([]byte, error) {
		voiceIDs = append(voiceIDs, req.VoiceID)
		return []byte("audio"), nil
	}}
	a := NewAssembler(tts, nil, nil)

	segments := []podcast.Segment{
		{Type: podcast.SegmentMain, Speaker: "ALEX", Content: "Shouting."},
		{Type: podcast.SegmentMain, Speaker: "Nobody", Content: "Unmapped."},
	}
	_, err := a.Assemble(context.Background(), AssembleOptions{
		Segments:      segments,
		SpeakerVoices: testMappings(),
	})
	require.NoError(t, err)

	assert.Equal(t, "voice-alex", voiceIDs[0])
	assert.Equal(t, voice.DefaultVoiceID(), voiceIDs[1], "unmapped speaker gets the default voice")
}

func TestAssembler_Assemble_SettingsFollowVoiceID(t *testing.T) {
	custom := &podcast.VoiceSettings{Stability: 0.9, SimilarityBoost: 0.2}
	var settingsByText = map[string]*podcast.VoiceSettings{}
	tts := &fakeSynthesizer{synthesize: func(_ context.Context, req voice.SynthesisRequest) ([]byte, error) {
		settingsByText[req.Text] = req.Settings
		return []byte("audio"), nil
	}}
	a := NewAssembler(tts, nil, nil)

	segments := []podcast.Segment{
		{Type: podcast.SegmentMain, Speaker: "Alex", Content: "first"},
		{Type: podcast.SegmentMain, Speaker: "Casey", Content: "second"},
		{Type: podcast.SegmentMain, Speaker: "Drew", Content: "third"},
	}
	// Alex and Casey share one voice; only Alex's mapping carries settings
	mappings := []podcast.SpeakerVoiceMapping{
		{SpeakerName: "Alex", VoiceID: "shared-voice", VoiceSettings: custom},
		{SpeakerName: "Casey", VoiceID: "shared-voice"},
		{SpeakerName: "Drew", VoiceID: "other-voice"},
	}

	_, err := a.Assemble(context.Background(), AssembleOptions{
		Segments:      segments,
		SpeakerVoices: mappings,
	})
	require.NoError(t, err)

	assert.Equal(t, custom, settingsByText["first"])
	assert.Equal(t, custom, settingsByText["second"], "settings attach to the voice, not the speaker")
	assert.Nil(t, settingsByText["third"])
}

func TestAssembler_Assemble_SkipsFailedSegments(t *testing.T) {
	tts := &fakeSynthesizer{synthesize: func(_ context.Context, req voice.SynthesisRequest) ([]byte, error) {
		if req.VoiceID == "voice-jordan" {
			return nil, errors.New("voice unavailable")
		}
		return make([]byte, 32768), nil
	}}
	a := NewAssembler(tts, nil, nil)

	var done int
	result, err := a.Assemble(context.Background(), AssembleOptions{
		Segments:      testSegments(),
		SpeakerVoices: testMappings(),
		OnSegmentDone: func(_, _ int) { done++ },
	})
	require.NoError(t, err)

	assert.Equal(t, 3, done, "failed segments still report completion")
	require.Len(t, result.SegmentAudios, 2, "failed segment is dropped")
	for _, sa := range result.SegmentAudios {
		assert.Equal(t, "Alex", sa.Segment.Speaker)
	}

	// timeline is rebuilt over the surviving segments only
	assert.Zero(t, result.SegmentAudios[0].StartTime)
	assert.InDelta(t, 2.0, result.SegmentAudios[1].StartTime, 1e-9)
	assert.InDelta(t, 4.0, result.TotalDuration, 1e-9)
}

func TestAssembler_Assemble_AllSegmentsFail(t *testing.T) {
	tts := &fakeSynthesizer{synthesize: func(_ context.Context, _ voice.SynthesisRequest) ([]byte, error) {
		return nil, errors.New("voice unavailable")
	}}
	a := NewAssembler(tts, nil, nil)

	_, err := a.Assemble(context.Background(), AssembleOptions{Segments: testSegments()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no segments could be synthesized")
}

func TestAssembler_Assemble_Progress(t *testing.T) {
	tts := &fakeSynthesizer{synthesize: func(_ context.Context, _ voice.SynthesisRequest) ([]byte, error) {
		return []byte("audio"), nil
	}}
	a := NewAssembler(tts, nil, nil)

	var progress []float64
	_, err := a.Assemble(context.Background(), AssembleOptions{
		Segments:   testSegments(),
		OnProgress: func(p float64) { progress = append(progress, p) },
	})
	require.NoError(t, err)

	require.Len(t, progress, 4)
	assert.Zero(t, progress[0])
	assert.InDelta(t, 0.3, progress[1], 1e-9)
	assert.InDelta(t, 0.6, progress[2], 1e-9)
	assert.Equal(t, 1.0, progress[3])
}

func TestEstimateDuration(t *testing.T) {
	tbl := []struct {
		format podcast.AudioFormat
		bytes  int
		want   float64
	}{
		{podcast.FormatMP3, 16384, 1.0},      // 128 kbps
		{podcast.FormatWAV, 176400, 1.0},     // 44.1 kHz 16-bit stereo
		{podcast.FormatPCM, 48000, 1.0},      // 24 kHz 16-bit mono
		{podcast.FormatPCM24000, 48000, 1.0}, // same rate as pcm
		{podcast.FormatPCM44100, 88200, 1.0}, // 44.1 kHz 16-bit mono
		{podcast.AudioFormat("ogg"), 64000, 2.0},
		{podcast.FormatMP3, 0, 0},
	}
	for _, tt := range tbl {
		t.Run(string(tt.format), func(t *testing.T) {
			data := make([]byte, tt.bytes)
			assert.InDelta(t, tt.want, EstimateDuration(data, tt.format), 1e-9)
		})
	}
}

func TestRawConcat_Combine(t *testing.T) {
	combined, err := RawConcat{}.Combine([][]byte{[]byte("abc"), []byte("def"), nil, []byte("g")}, podcast.FormatPCM)
	require.NoError(t, err)
	assert.Equal(t, "abcdefg", string(combined))
}

func TestFFmpegCombiner_PCMBypassesFFmpeg(t *testing.T) {
	// a bogus binary path proves ffmpeg is never invoked for raw pcm
	c := &FFmpegCombiner{FFmpegPath: "/nonexistent/ffmpeg"}
	combined, err := c.Combine([][]byte{[]byte(strings.Repeat("a", 10)), []byte("bb")}, podcast.FormatPCM)
	require.NoError(t, err)
	assert.Len(t, combined, 12)
}
