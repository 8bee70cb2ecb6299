package catalog

import (
	"sort"

	"github.com/podcast-maker/podcast-maker/podcast"
)

const defaultRecommendLimit = 5

// Recommend scores every candidate against a reference podcast and
// returns the top matches. Weights favor shared category, then tone and
// mood, with tags and topics as weak signals. Equal scores keep the
// input order.
func Recommend(ref *podcast.Podcast, all []*podcast.Podcast, limit int) []*podcast.Podcast {
	if limit <= 0 {
		limit = defaultRecommendLimit
	}

	type scored struct {
		p     *podcast.Podcast
		score float64
	}
	var candidates []scored
	for _, p := range all {
		if p.ID == ref.ID {
			continue
		}
		candidates = append(candidates, scored{p: p, score: similarity(ref, p)})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	results := make([]*podcast.Podcast, 0, len(candidates))
	for _, c := range candidates {
		results = append(results, c.p)
	}
	return results
}

func similarity(ref, p *podcast.Podcast) float64 {
	var score float64

	if p.Metadata.Category == ref.Metadata.Category {
		score += 5
	}
	// subcategory overlap counts on its own, with or without a category match
	for _, sub := range p.Metadata.Subcategories {
		if containsString(ref.Metadata.Subcategories, sub) {
			score++
		}
	}
	if p.Metadata.Tone == ref.Metadata.Tone {
		score += 3
	}
	for _, tag := range p.Tags {
		if containsString(ref.Tags, tag) {
			score += 0.5
		}
	}

	refAnalysis := ref.Metadata.ContentAnalysis
	pAnalysis := p.Metadata.ContentAnalysis
	if refAnalysis != nil && pAnalysis != nil {
		if pAnalysis.Mood.Overall == refAnalysis.Mood.Overall {
			score += 2
		}
		if pAnalysis.Sentiment.Overall == refAnalysis.Sentiment.Overall {
			score++
		}
		if pAnalysis.Complexity.VocabularyLevel == refAnalysis.Complexity.VocabularyLevel {
			score++
		}
		for _, topic := range pAnalysis.Topics {
			if containsTopic(refAnalysis.Topics, topic.Name) {
				score += 0.5
			}
		}
	}

	return score
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func containsTopic(topics []podcast.Topic, name string) bool {
	for _, t := range topics {
		if t.Name == name {
			return true
		}
	}
	return false
}
