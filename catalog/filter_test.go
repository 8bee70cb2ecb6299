package catalog

import (
	"testing"

	"github.com/podcast-maker/podcast-maker/podcast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func analyzedPodcast(id, mood, sentiment string, readability float64) *podcast.Podcast {
	return makePodcast(id, "Show", func(p *podcast.Podcast) {
		p.Metadata.ContentAnalysis = &podcast.ContentAnalysis{
			Mood:       podcast.MoodScores{Overall: mood},
			Sentiment:  podcast.SentimentScores{Overall: sentiment},
			Complexity: podcast.Complexity{ReadabilityScore: readability},
		}
		p.Metadata.TargetAudience = []string{"general"}
	})
}

func TestFilterByContent_MoodAndSentiment(t *testing.T) {
	podcasts := []*podcast.Podcast{
		analyzedPodcast("a", "informative", "positive", 70),
		analyzedPodcast("b", "entertaining", "positive", 70),
		analyzedPodcast("c", "informative", "negative", 70),
	}

	results := FilterByContent(podcasts, ContentCriteria{Moods: []string{"informative"}})
	require.Len(t, results, 2)

	results = FilterByContent(podcasts, ContentCriteria{
		Moods:      []string{"informative"},
		Sentiments: []string{"positive"},
	})
	require.Len(t, results, 1)
	assert.Equal(t, "a", results[0].ID)
}

func TestFilterByContent_ReadabilityRange(t *testing.T) {
	low, high := 50.0, 80.0
	podcasts := []*podcast.Podcast{
		analyzedPodcast("easy", "informative", "neutral", 90),
		analyzedPodcast("mid", "informative", "neutral", 65),
		analyzedPodcast("hard", "informative", "neutral", 30),
	}

	results := FilterByContent(podcasts, ContentCriteria{MinReadability: &low, MaxReadability: &high})
	require.Len(t, results, 1)
	assert.Equal(t, "mid", results[0].ID)
}

func TestFilterByContent_NoAnalysisPassesRatingAndCategoryOnly(t *testing.T) {
	plain := makePodcast("plain", "Unanalyzed", nil)

	// analysis-dependent criteria are skipped for unanalyzed podcasts
	results := FilterByContent([]*podcast.Podcast{plain}, ContentCriteria{Moods: []string{"informative"}})
	require.Len(t, results, 1)

	// rating and category checks still apply
	results = FilterByContent([]*podcast.Podcast{plain}, ContentCriteria{MaxRating: podcast.RatingG})
	assert.Empty(t, results, "PG exceeds a G ceiling")

	results = FilterByContent([]*podcast.Podcast{plain}, ContentCriteria{Categories: []podcast.Category{podcast.CategoryComedy}})
	assert.Empty(t, results)
}

func TestFilterByContent_UnknownRatingPassesCeiling(t *testing.T) {
	odd := makePodcast("odd", "Unrated", func(p *podcast.Podcast) {
		p.Metadata.ContentRating = podcast.ContentRating("unrated")
	})

	results := FilterByContent([]*podcast.Podcast{odd}, ContentCriteria{MaxRating: podcast.RatingG})
	require.Len(t, results, 1, "ratings outside the known ladder are not filtered")
}

func TestFilterByContent_TargetAudience(t *testing.T) {
	podcasts := []*podcast.Podcast{
		analyzedPodcast("gen", "informative", "neutral", 70),
	}

	results := FilterByContent(podcasts, ContentCriteria{TargetAudience: []string{"general", "students"}})
	require.Len(t, results, 1)

	results = FilterByContent(podcasts, ContentCriteria{TargetAudience: []string{"professionals"}})
	assert.Empty(t, results)
}
