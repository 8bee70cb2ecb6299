// Package catalog implements search, recommendations, trending, and
// playlist generation over in-memory podcast collections. Callers load
// candidate sets from a store.Provider and pass them in; the catalog
// itself holds no state.
package catalog

import (
	"sort"
	"strings"
	"time"

	"github.com/podcast-maker/podcast-maker/podcast"
)

// SortMode orders search results.
type SortMode string

// Supported sort modes.
const (
	SortByDate       SortMode = "date"
	SortByPopularity SortMode = "popularity"
	SortByDuration   SortMode = "duration"
	SortByRelevance  SortMode = "relevance"
)

const defaultSearchLimit = 20

// SearchOptions filters and orders a podcast search. Zero values leave
// the corresponding constraint unset; MaxDuration zero means unbounded.
type SearchOptions struct {
	Query          string
	Categories     []podcast.Category
	Tones          []podcast.Tone
	MaxRating      podcast.ContentRating // highest allowed maturity rating
	MinDuration    float64               // seconds
	MaxDuration    float64               // seconds
	Start          time.Time             // created at or after
	End            time.Time             // created at or before
	Tags           []string              // match any
	CreatorID      string                // matches the first listed speaker
	IncludePrivate bool
	SortBy         SortMode
	Limit          int
	Offset         int
}

// Search filters the podcasts by every constraint in opts, orders them,
// and returns one page. Private podcasts are excluded unless
// IncludePrivate is set.
func Search(podcasts []*podcast.Podcast, opts SearchOptions) []*podcast.Podcast {
	var results []*podcast.Podcast
	for _, p := range podcasts {
		if matchesSearch(p, opts) {
			results = append(results, p)
		}
	}

	sortResults(results, opts.SortBy)

	limit := opts.Limit
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	if opts.Offset >= len(results) {
		return nil
	}
	results = results[opts.Offset:]
	if len(results) > limit {
		results = results[:limit]
	}
	return results
}

func matchesSearch(p *podcast.Podcast, opts SearchOptions) bool {
	if !opts.IncludePrivate && p.IsPrivate {
		return false
	}
	if opts.CreatorID != "" {
		if len(p.Metadata.Speakers) == 0 || p.Metadata.Speakers[0] != opts.CreatorID {
			return false
		}
	}
	if opts.Query != "" && !matchesQuery(p, opts.Query) {
		return false
	}
	if len(opts.Categories) > 0 && !containsCategory(opts.Categories, p.Metadata.Category) {
		return false
	}
	if len(opts.Tones) > 0 && !containsTone(opts.Tones, p.Metadata.Tone) {
		return false
	}
	if opts.MaxRating != "" {
		// unknown ratings index as -1 and pass any ceiling
		ceiling := podcast.RatingIndex(opts.MaxRating)
		if podcast.RatingIndex(p.Metadata.ContentRating) > ceiling {
			return false
		}
	}
	if opts.MinDuration > 0 && p.Duration < opts.MinDuration {
		return false
	}
	if opts.MaxDuration > 0 && p.Duration > opts.MaxDuration {
		return false
	}
	if !opts.Start.IsZero() && p.CreatedAt.Before(opts.Start) {
		return false
	}
	if !opts.End.IsZero() && p.CreatedAt.After(opts.End) {
		return false
	}
	if len(opts.Tags) > 0 && !sharesAnyTag(p.Tags, opts.Tags) {
		return false
	}
	return true
}

// matchesQuery requires every whitespace-separated query term to appear
// in the title, description, or tags.
func matchesQuery(p *podcast.Podcast, query string) bool {
	haystack := strings.ToLower(p.Title + " " + p.Description + " " + strings.Join(p.Tags, " "))
	for _, term := range strings.Fields(strings.ToLower(query)) {
		if !strings.Contains(haystack, term) {
			return false
		}
	}
	return true
}

func sortResults(results []*podcast.Podcast, mode SortMode) {
	switch mode {
	case SortByDate:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].CreatedAt.After(results[j].CreatedAt)
		})
	case SortByPopularity:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].Stats.Plays > results[j].Stats.Plays
		})
	case SortByDuration:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].Duration < results[j].Duration
		})
	default:
		// relevance, the default: raw creation timestamp dominates the
		// score, with play counts as a secondary signal
		sort.SliceStable(results, func(i, j int) bool {
			return relevanceScore(results[i]) > relevanceScore(results[j])
		})
	}
}

func relevanceScore(p *podcast.Podcast) float64 {
	return float64(p.CreatedAt.UnixMilli())*0.7 + float64(p.Stats.Plays)*0.3
}

func containsCategory(set []podcast.Category, c podcast.Category) bool {
	for _, v := range set {
		if v == c {
			return true
		}
	}
	return false
}

func containsTone(set []podcast.Tone, t podcast.Tone) bool {
	for _, v := range set {
		if v == t {
			return true
		}
	}
	return false
}

func sharesAnyTag(tags, wanted []string) bool {
	set := make(map[string]bool, len(tags))
	for _, t := range tags {
		set[t] = true
	}
	for _, w := range wanted {
		if set[w] {
			return true
		}
	}
	return false
}
