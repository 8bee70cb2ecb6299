package podcast

import (
	"time"

	"github.com/google/uuid"
)

// CreateOptions customizes a podcast record built from generation results.
type CreateOptions struct {
	CoverImageURL string
	IsPublished   bool
	Private       *bool // defaults to true
	Tags          []string
	LanguageCode  string
	ContentRating ContentRating
	AudioURL      string
	ScriptID      string
	AudioID       string
	Keywords      []string
}

// NewPodcastFromGenerated builds a podcast record from a generated script
// and its assembled audio. The record is always marked ai-generated and is
// private unless opts.Private overrides it.
func NewPodcastFromGenerated(script ScriptResult, audio AudioAssemblyResult, opts CreateOptions) *Podcast {
	now := time.Now()

	isPrivate := true
	if opts.Private != nil {
		isPrivate = *opts.Private
	}
	languageCode := opts.LanguageCode
	if languageCode == "" {
		languageCode = "en"
	}
	rating := opts.ContentRating
	if rating == "" {
		rating = RatingPG
	}

	// distinct speakers in order of first appearance
	var speakers []string
	seen := map[string]bool{}
	for _, seg := range script.Segments {
		if seg.Speaker != "" && !seen[seg.Speaker] {
			seen[seg.Speaker] = true
			speakers = append(speakers, seg.Speaker)
		}
	}

	var publishedAt time.Time
	if opts.IsPublished {
		publishedAt = now
	}

	tags := append([]string(nil), opts.Tags...)
	tags = append(tags, string(script.Metadata.Category), string(script.Metadata.Tone), "ai-generated")

	return &Podcast{
		ID:            uuid.NewString(),
		Title:         script.Title,
		Description:   script.Summary,
		CoverImageURL: opts.CoverImageURL,
		AudioURL:      opts.AudioURL,
		ScriptID:      opts.ScriptID,
		AudioID:       opts.AudioID,
		Duration:      audio.TotalDuration,
		CreatedAt:     now,
		UpdatedAt:     now,
		PublishedAt:   publishedAt,
		IsPublished:   opts.IsPublished,
		IsPrivate:     isPrivate,
		Metadata: Metadata{
			Category:       script.Metadata.Category,
			Subcategories:  []string{},
			Tone:           script.Metadata.Tone,
			ContentRating:  rating,
			LanguageCode:   languageCode,
			TargetAudience: []string{"general"},
			Speakers:       speakers,
			Keywords:       opts.Keywords,
			AIGenerated:    true,
			SourceModel:    script.Metadata.Model,
			VoiceModel:     audio.Metadata.Model,
		},
		Tags:  tags,
		Stats: Stats{},
	}
}

// EmptyOptions describes a manually created podcast.
type EmptyOptions struct {
	Title         string
	Description   string
	Category      Category
	Tone          Tone
	CoverImageURL string
	Private       *bool // defaults to true
	LanguageCode  string
	ContentRating ContentRating
}

// NewEmptyPodcast builds an unpublished podcast record with no audio.
func NewEmptyPodcast(opts EmptyOptions) *Podcast {
	now := time.Now()

	tone := opts.Tone
	if tone == "" {
		tone = ToneConversational
	}
	isPrivate := true
	if opts.Private != nil {
		isPrivate = *opts.Private
	}
	languageCode := opts.LanguageCode
	if languageCode == "" {
		languageCode = "en"
	}
	rating := opts.ContentRating
	if rating == "" {
		rating = RatingPG
	}

	return &Podcast{
		ID:            uuid.NewString(),
		Title:         opts.Title,
		Description:   opts.Description,
		CoverImageURL: opts.CoverImageURL,
		CreatedAt:     now,
		UpdatedAt:     now,
		IsPrivate:     isPrivate,
		Metadata: Metadata{
			Category:       opts.Category,
			Subcategories:  []string{},
			Tone:           tone,
			ContentRating:  rating,
			LanguageCode:   languageCode,
			TargetAudience: []string{"general"},
			Speakers:       []string{},
			Keywords:       []string{},
		},
		Tags:  []string{string(opts.Category), string(tone)},
		Stats: Stats{},
	}
}

// UpdatePodcast applies a mutation to a podcast record and refreshes
// UpdatedAt. When the mutation publishes the podcast for the first time,
// PublishedAt is set as well.
func UpdatePodcast(p *Podcast, apply func(*Podcast)) {
	wasPublished := p.IsPublished
	apply(p)
	p.UpdatedAt = time.Now()
	if p.IsPublished && !wasPublished {
		p.PublishedAt = p.UpdatedAt
	}
}

// RecordPlay records one listening session of listenSeconds and updates
// the running play statistics. Completion rate is clamped to 1.
func RecordPlay(p *Podcast, listenSeconds float64) {
	UpdatePodcast(p, func(p *Podcast) {
		plays := p.Stats.Plays
		totalPlays := plays + 1
		totalListenTime := p.Stats.AverageListenTime*float64(plays) + listenSeconds

		completionRate := 0.0
		if p.Duration > 0 {
			completionRate = (p.Stats.CompletionRate*float64(plays) + listenSeconds/p.Duration) / float64(totalPlays)
			if completionRate > 1 {
				completionRate = 1
			}
		}

		p.Stats.Plays = totalPlays
		p.Stats.AverageListenTime = totalListenTime / float64(totalPlays)
		p.Stats.CompletionRate = completionRate
		p.Stats.LastPlayed = time.Now()
	})
}
