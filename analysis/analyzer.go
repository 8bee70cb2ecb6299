package analysis

import (
	"math"
	"math/rand"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/podcast-maker/podcast-maker/podcast"
)

var (
	tokenSplitRe    = regexp.MustCompile(`\W+`)
	sentenceSplitRe = regexp.MustCompile(`[.!?]+`)
)

// Analyzer derives topics, sentiment, mood, and complexity from a script
// with lightweight word-list heuristics. No external NLP service is
// involved, so results are rough but instantaneous.
type Analyzer struct {
	rnd *rand.Rand
}

// NewAnalyzer creates an analyzer. A nil rnd gets a time-seeded source;
// tests inject a fixed seed for reproducible topic confidences.
func NewAnalyzer(rnd *rand.Rand) *Analyzer {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano())) //nolint:gosec // confidence jitter, not crypto
	}
	return &Analyzer{rnd: rnd}
}

// tokenize lowercases the text and splits it on non-word runs. Leading
// punctuation yields an empty first token, matching the word totals the
// ratio thresholds were tuned against.
func tokenize(text string) []string {
	return tokenSplitRe.Split(strings.ToLower(text), -1)
}

// Analyze runs the full heuristic analysis over a script.
func (a *Analyzer) Analyze(script string) *podcast.ContentAnalysis {
	words := tokenize(script)
	mood := analyzeMood(words)
	complexity := analyzeComplexity(script, words)

	return &podcast.ContentAnalysis{
		Topics:        a.extractTopics(script),
		Sentiment:     analyzeSentiment(words),
		Mood:          mood,
		Complexity:    complexity,
		AudienceMatch: matchAudiences(words, mood, complexity),
	}
}

// extractTopics promotes the top keywords to topics with a randomized
// confidence in [0.5, 1.0).
func (a *Analyzer) extractTopics(script string) []podcast.Topic {
	keywords := ExtractKeywords(script, 10)
	topics := make([]podcast.Topic, 0, len(keywords))
	for _, kw := range keywords {
		topics = append(topics, podcast.Topic{
			Name:       kw,
			Confidence: a.rnd.Float64()*0.5 + 0.5,
		})
	}
	return topics
}

// ExtractKeywords returns up to maxKeywords frequent words from the text,
// ignoring short and common words. Ordering is by frequency, with ties
// broken by first appearance.
func ExtractKeywords(text string, maxKeywords int) []string {
	freq := map[string]int{}
	var order []string
	for _, word := range tokenize(text) {
		if len(word) <= 3 || stopWords[word] {
			continue
		}
		if freq[word] == 0 {
			order = append(order, word)
		}
		freq[word]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return freq[order[i]] > freq[order[j]]
	})

	if len(order) > maxKeywords {
		order = order[:maxKeywords]
	}
	return order
}

func countOccurrences(words []string, list []string) int {
	set := make(map[string]bool, len(list))
	for _, w := range list {
		set[w] = true
	}
	count := 0
	for _, w := range words {
		if set[w] {
			count++
		}
	}
	return count
}

// analyzeSentiment scores the positive and negative fractions of the text
// and labels the overall sentiment. The label flips away from neutral only
// when one polarity clearly outweighs both the other and the neutral mass.
func analyzeSentiment(words []string) podcast.SentimentScores {
	total := float64(len(words))
	positive := float64(countOccurrences(words, positiveWords)) / total
	negative := float64(countOccurrences(words, negativeWords)) / total
	neutral := 1 - positive - negative

	overall := "neutral"
	switch {
	case positive > negative && positive > neutral*0.7:
		overall = "positive"
	case negative > positive && negative > neutral*0.7:
		overall = "negative"
	}

	return podcast.SentimentScores{
		Positive: positive,
		Neutral:  neutral,
		Negative: negative,
		Overall:  overall,
	}
}

// analyzeMood scores each mood lexicon and picks the strictly highest as
// the overall mood, earlier lexicons winning ties.
func analyzeMood(words []string) podcast.MoodScores {
	total := float64(len(words))
	scores := make(map[string]float64, len(moodLexicons))
	overall := moodLexicons[0].name
	best := -1.0
	for _, lex := range moodLexicons {
		score := float64(countOccurrences(words, lex.words)) / total
		scores[lex.name] = score
		if score > best {
			best = score
			overall = lex.name
		}
	}

	return podcast.MoodScores{
		Informative:   scores["informative"],
		Entertaining:  scores["entertaining"],
		Inspirational: scores["inspirational"],
		Controversial: scores["controversial"],
		Educational:   scores["educational"],
		Overall:       overall,
	}
}

// analyzeComplexity estimates vocabulary and sentence difficulty. Words
// longer than eight characters count as complex; readability follows the
// Flesch reading-ease formula with the complex-word ratio standing in for
// syllable density.
func analyzeComplexity(script string, words []string) podcast.Complexity {
	sentences := 0
	for _, s := range sentenceSplitRe.Split(script, -1) {
		if strings.TrimSpace(s) != "" {
			sentences++
		}
	}
	if sentences == 0 {
		sentences = 1
	}
	avgWordsPerSentence := float64(len(words)) / float64(sentences)

	complexWords := 0
	for _, w := range words {
		if len(w) > 8 {
			complexWords++
		}
	}
	complexRatio := float64(complexWords) / float64(len(words))

	vocabulary := "intermediate"
	switch {
	case complexRatio < 0.05:
		vocabulary = "basic"
	case complexRatio > 0.15:
		vocabulary = "advanced"
	}

	sentenceComplexity := "moderate"
	switch {
	case avgWordsPerSentence < 10:
		sentenceComplexity = "simple"
	case avgWordsPerSentence > 20:
		sentenceComplexity = "complex"
	}

	return podcast.Complexity{
		VocabularyLevel:    vocabulary,
		SentenceComplexity: sentenceComplexity,
		TechnicalTerms:     int(math.Round(float64(complexWords) * 0.3)),
		ReadabilityScore:   206.835 - 1.015*avgWordsPerSentence - 84.6*complexRatio,
	}
}

// matchAudiences scores how well the script fits each audience bucket.
func matchAudiences(words []string, mood podcast.MoodScores, complexity podcast.Complexity) map[string]float64 {
	complexWords := 0
	for _, w := range words {
		if len(w) > 8 {
			complexWords++
		}
	}
	complexRatio := float64(complexWords) / float64(len(words))

	match := map[string]float64{
		"general":       0.7,
		"professionals": 0.4,
		"students":      0.5,
		"enthusiasts":   0.5,
		"beginners":     0.3,
	}
	if complexRatio > 0.1 {
		match["professionals"] = 0.8
	}
	if mood.Educational > 0.1 {
		match["students"] = 0.9
	}
	if mood.Informative > 0.15 {
		match["enthusiasts"] = 0.85
	}
	if complexity.VocabularyLevel == "basic" {
		match["beginners"] = 0.9
	}
	return match
}
