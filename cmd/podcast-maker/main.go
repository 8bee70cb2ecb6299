package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/podcast-maker/podcast-maker/analysis"
	"github.com/podcast-maker/podcast-maker/audio"
	"github.com/podcast-maker/podcast-maker/catalog"
	"github.com/podcast-maker/podcast-maker/config"
	"github.com/podcast-maker/podcast-maker/fetch"
	"github.com/podcast-maker/podcast-maker/podcast"
	"github.com/podcast-maker/podcast-maker/script"
	"github.com/podcast-maker/podcast-maker/store"
	"github.com/podcast-maker/podcast-maker/voice"
)

type options struct {
	category   string
	tone       string
	title      string
	length     int
	hosts      string
	guests     string
	articleURL string
	outputFile string
	skipIntro  bool
	skipOutro  bool
	publish    bool
}

func main() {
	var opts options
	flag.StringVar(&opts.category, "category", "tech", "podcast category")
	flag.StringVar(&opts.tone, "tone", "conversational", "podcast tone")
	flag.StringVar(&opts.title, "title", "", "suggested episode title (optional)")
	flag.IntVar(&opts.length, "length", 5, "target length in minutes")
	flag.StringVar(&opts.hosts, "hosts", "Alex,Jordan", "comma-separated host names")
	flag.StringVar(&opts.guests, "guests", "", "comma-separated guest names (optional)")
	flag.StringVar(&opts.articleURL, "url", "", "article URL to use as discussion context (optional)")
	flag.StringVar(&opts.outputFile, "mp3", "podcast.mp3", "output MP3 file path")
	flag.BoolVar(&opts.skipIntro, "no-intro", false, "skip the intro segment")
	flag.BoolVar(&opts.skipOutro, "no-outro", false, "skip the outro segment")
	flag.BoolVar(&opts.publish, "publish", false, "mark the resulting podcast as published")
	flag.Parse()

	cfg := config.Load()
	if cfg.OpenRouterAPIKey == "" {
		log.Fatal("OPENROUTER_API_KEY is required")
	}
	if cfg.ElevenLabsAPIKey == "" {
		log.Fatal("ELEVENLABS_API_KEY is required")
	}

	if err := run(context.Background(), cfg, opts); err != nil {
		log.Fatalf("podcast generation failed: %v", err)
	}
}

func run(ctx context.Context, cfg config.Config, opts options) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	provider, err := openProvider(ctx, cfg)
	if err != nil {
		return err
	}

	// optional article context for the script prompt
	var additionalContext string
	if opts.articleURL != "" {
		content, title, err := fetch.NewArticleFetcher(nil).Fetch(ctx, opts.articleURL)
		if err != nil {
			return fmt.Errorf("failed to fetch article: %w", err)
		}
		logger.Info("fetched article context", "title", title, "chars", len(content))
		additionalContext = content
	}

	scripts := script.NewService(cfg.OpenRouterAPIKey, nil)
	result, err := scripts.Generate(ctx, podcast.ScriptRequest{
		Category:          podcast.Category(opts.category),
		Title:             opts.title,
		LengthMinutes:     opts.length,
		Tone:              podcast.Tone(opts.tone),
		AdditionalContext: additionalContext,
		Model:             cfg.Model,
		HostNames:         splitNames(opts.hosts),
		GuestNames:        splitNames(opts.guests),
		SkipIntro:         opts.skipIntro,
		SkipOutro:         opts.skipOutro,
	})
	if err != nil {
		return fmt.Errorf("script generation: %w", err)
	}
	logger.Info("generated script", "title", result.Title,
		"segments", len(result.Segments), "words", result.Metadata.WordCount)

	mappings := voice.MapSpeakersToVoices(speakerNames(result.Segments))

	tts := voice.NewClient(cfg.ElevenLabsAPIKey, nil)
	assembler := audio.NewAssembler(tts, &audio.FFmpegCombiner{}, logger)
	assembled, err := assembler.Assemble(ctx, audio.AssembleOptions{
		Segments:      result.Segments,
		SpeakerVoices: mappings,
		ModelID:       cfg.VoiceModel,
		Format:        podcast.FormatMP3,
		OnSegmentDone: func(i, total int) {
			logger.Info("synthesized segment", "segment", i+1, "total", total)
		},
	})
	if err != nil {
		return fmt.Errorf("audio assembly: %w", err)
	}
	logger.Info("assembled audio", "duration", assembled.TotalDuration)

	contentAnalysis := analysis.NewAnalyzer(nil).Analyze(result.Script)
	record := podcast.NewPodcastFromGenerated(result, *assembled, podcast.CreateOptions{
		IsPublished: opts.publish,
		Keywords:    analysis.ExtractKeywords(result.Script, 5),
	})
	analysis.CategorizePodcast(record, contentAnalysis, result.Script)

	if err := provider.SaveAudio(ctx, record.ID, assembled.FullAudio); err != nil {
		return fmt.Errorf("failed to store audio: %w", err)
	}
	record.AudioID = record.ID
	if _, err := provider.SavePodcast(ctx, record); err != nil {
		return fmt.Errorf("failed to store podcast: %w", err)
	}

	outputFile := opts.outputFile
	if !filepath.IsAbs(outputFile) {
		outputFile = filepath.Join(cfg.OutputDir, outputFile)
	}
	if err := os.WriteFile(outputFile, assembled.FullAudio, 0o600); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	logger.Info("podcast ready", "id", record.ID, "file", outputFile,
		"mood", contentAnalysis.Mood.Overall, "sentiment", contentAnalysis.Sentiment.Overall)
	printCatalogPreview(ctx, provider, record, logger)
	return nil
}

// openProvider picks redis when configured, in-memory otherwise.
func openProvider(ctx context.Context, cfg config.Config) (store.Provider, error) {
	if cfg.RedisAddr == "" {
		return store.NewMemoryProvider(), nil
	}
	provider, err := store.OpenRedis(ctx, cfg.RedisAddr)
	if err != nil {
		return nil, fmt.Errorf("failed to open redis store: %w", err)
	}
	return provider, nil
}

// printCatalogPreview shows where the new episode lands among the stored
// catalog: recommendations and mood playlists.
func printCatalogPreview(ctx context.Context, provider store.Provider, record *podcast.Podcast, logger *slog.Logger) {
	all, err := provider.ListPodcasts(ctx, store.PodcastListOptions{})
	if err != nil {
		logger.Warn("failed to list stored podcasts", "error", err)
		return
	}

	for _, rec := range catalog.Recommend(record, all, 3) {
		logger.Info("related episode", "title", rec.Title)
	}
	for _, pl := range catalog.MoodPlaylists(all) {
		if len(pl.PodcastIDs) > 0 {
			logger.Info("mood playlist", "name", pl.Name, "episodes", len(pl.PodcastIDs))
		}
	}
}

func splitNames(s string) []string {
	var names []string
	for _, name := range strings.Split(s, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// speakerNames collects distinct speakers in order of first appearance.
func speakerNames(segments []podcast.Segment) []string {
	var names []string
	seen := map[string]bool{}
	for _, seg := range segments {
		if seg.Speaker != "" && !seen[seg.Speaker] {
			seen[seg.Speaker] = true
			names = append(names, seg.Speaker)
		}
	}
	return names
}
