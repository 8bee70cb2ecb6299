package catalog

import (
	"sort"
	"time"

	"github.com/podcast-maker/podcast-maker/podcast"
)

const (
	defaultTrendingLimit = 10
	defaultWindowDays    = 7
)

// Trending returns the most engaging podcasts that were played inside
// the recent window. Shares weigh most, then likes, then raw plays.
func Trending(podcasts []*podcast.Podcast, limit, windowDays int) []*podcast.Podcast {
	if limit <= 0 {
		limit = defaultTrendingLimit
	}
	if windowDays <= 0 {
		windowDays = defaultWindowDays
	}
	cutoff := time.Now().Add(-time.Duration(windowDays) * 24 * time.Hour)

	var results []*podcast.Podcast
	for _, p := range podcasts {
		if p.Stats.LastPlayed.IsZero() || p.Stats.LastPlayed.Before(cutoff) {
			continue
		}
		results = append(results, p)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return engagementScore(results[i]) > engagementScore(results[j])
	})

	if len(results) > limit {
		results = results[:limit]
	}
	return results
}

func engagementScore(p *podcast.Podcast) int {
	return p.Stats.Plays + 3*p.Stats.Likes + 5*p.Stats.Shares
}
