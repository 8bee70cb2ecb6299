package catalog

import (
	"github.com/podcast-maker/podcast-maker/podcast"
)

// ContentCriteria is a combinable content filter. All fields are
// optional and AND-combined. Checks that need content analysis are
// skipped for podcasts without one, so such podcasts pass on the rating
// and category checks alone.
type ContentCriteria struct {
	MaxRating      podcast.ContentRating
	Categories     []podcast.Category
	Moods          []string // dominant mood labels
	TargetAudience []string // match any
	MinReadability *float64
	MaxReadability *float64
	Sentiments     []string // overall sentiment labels
}

// FilterByContent returns the podcasts matching all set criteria.
func FilterByContent(podcasts []*podcast.Podcast, criteria ContentCriteria) []*podcast.Podcast {
	var results []*podcast.Podcast
	for _, p := range podcasts {
		if matchesContent(p, criteria) {
			results = append(results, p)
		}
	}
	return results
}

func matchesContent(p *podcast.Podcast, criteria ContentCriteria) bool {
	if criteria.MaxRating != "" {
		// unknown ratings index as -1 and pass any ceiling
		ceiling := podcast.RatingIndex(criteria.MaxRating)
		if podcast.RatingIndex(p.Metadata.ContentRating) > ceiling {
			return false
		}
	}
	if len(criteria.Categories) > 0 && !containsCategory(criteria.Categories, p.Metadata.Category) {
		return false
	}

	analysis := p.Metadata.ContentAnalysis
	if analysis == nil {
		return true
	}

	if len(criteria.Moods) > 0 && !containsString(criteria.Moods, analysis.Mood.Overall) {
		return false
	}
	if len(criteria.TargetAudience) > 0 && !sharesAnyTag(p.Metadata.TargetAudience, criteria.TargetAudience) {
		return false
	}
	if criteria.MinReadability != nil && analysis.Complexity.ReadabilityScore < *criteria.MinReadability {
		return false
	}
	if criteria.MaxReadability != nil && analysis.Complexity.ReadabilityScore > *criteria.MaxReadability {
		return false
	}
	if len(criteria.Sentiments) > 0 && !containsString(criteria.Sentiments, analysis.Sentiment.Overall) {
		return false
	}
	return true
}
