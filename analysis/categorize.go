package analysis

import (
	"strings"

	"github.com/podcast-maker/podcast-maker/podcast"
)

// CategorizePodcast enriches a podcast's metadata from its content
// analysis: curated subcategories matched against the detected topics,
// audience buckets derived from mood and complexity, topic and mood tags,
// and keywords when none are set yet.
func CategorizePodcast(p *podcast.Podcast, analysis *podcast.ContentAnalysis, script string) {
	podcast.UpdatePodcast(p, func(p *podcast.Podcast) {
		p.Metadata.ContentAnalysis = analysis
		p.Metadata.Subcategories = matchSubcategories(p.Metadata.Category, analysis.Topics)
		p.Metadata.TargetAudience = deriveAudiences(analysis)
		p.Tags = appendUnique(p.Tags, topicTags(analysis)...)
		if len(p.Metadata.Keywords) == 0 {
			p.Metadata.Keywords = ExtractKeywords(script, 5)
		}
	})
}

// matchSubcategories resolves each detected topic to the first curated
// subcategory whose name contains the topic word and collects the
// subcategory ids. Categories without a curated entry yield none.
func matchSubcategories(category podcast.Category, topics []podcast.Topic) []string {
	info, ok := podcast.CategoryByID(string(category))
	if !ok {
		return nil
	}

	var matched []string
	seen := map[string]bool{}
	for _, topic := range topics {
		topicName := strings.ToLower(topic.Name)
		for _, sub := range info.Subcategories {
			if strings.Contains(strings.ToLower(sub.Name), topicName) {
				if !seen[sub.ID] {
					seen[sub.ID] = true
					matched = append(matched, sub.ID)
				}
				break
			}
		}
	}
	return matched
}

// deriveAudiences builds the target audience list from complexity and
// mood signals. Everyone gets "general".
func deriveAudiences(analysis *podcast.ContentAnalysis) []string {
	audiences := []string{"general"}
	if analysis.Complexity.VocabularyLevel == "advanced" || analysis.Complexity.SentenceComplexity == "complex" {
		audiences = append(audiences, "professionals", "enthusiasts")
	}
	if analysis.Mood.Educational > 0.15 {
		audiences = append(audiences, "students")
	}
	if analysis.Complexity.VocabularyLevel == "basic" && analysis.Complexity.SentenceComplexity == "simple" {
		audiences = append(audiences, "beginners")
	}
	return audiences
}

// topicTags returns the top three topic names plus the overall mood.
func topicTags(analysis *podcast.ContentAnalysis) []string {
	var tags []string
	for i, topic := range analysis.Topics {
		if i == 3 {
			break
		}
		tags = append(tags, topic.Name)
	}
	return append(tags, analysis.Mood.Overall)
}

// appendUnique appends values not already present, preserving order.
func appendUnique(dst []string, values ...string) []string {
	seen := make(map[string]bool, len(dst))
	for _, v := range dst {
		seen[v] = true
	}
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			dst = append(dst, v)
		}
	}
	return dst
}
