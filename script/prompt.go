package script

import (
	"fmt"
	"math"
	"strings"

	"github.com/podcast-maker/podcast-maker/podcast"
)

// generation defaults and tuning constants
const (
	DefaultModel = "meta-llama/llama-3-8b-instruct"

	wordsPerMinute    = 150
	tokensPerWord     = 1.3
	maxTokensCeiling  = 8000
	maxTokensPadding  = 500
	defaultAudience   = "general audience"
	defaultMaxRetries = 3
)

const promptTemplate = `Create a complete podcast script %s for %s%s.

PODCAST DETAILS:
- Category: %s (%s)
- Target length: %d minutes
- Tone: %s (%s)
- Target audience: %s
%s

SCRIPT STRUCTURE:
%s

FORMAT YOUR RESPONSE AS FOLLOWS:
1. Title: [Podcast Title]
2. Summary: [Brief 1-2 sentence summary]
3. Full Script: [Complete script with speaker names clearly indicated]

The script should be detailed, engaging, and approximately %d minutes long when read aloud (about %d words).`

// BuildPrompt renders the generation prompt for a script request.
// Defaults are applied first, so a sparse request is valid input.
func BuildPrompt(req podcast.ScriptRequest) string {
	req = normalize(req)

	suggestedTitle := fmt.Sprintf("about %s", podcast.CategoryDescriptions[req.Category])
	if req.Title != "" {
		suggestedTitle = fmt.Sprintf("titled %q", req.Title)
	}

	contextLine := ""
	if req.AdditionalContext != "" {
		contextLine = "- Additional context: " + req.AdditionalContext
	}

	targetWords := int(math.Round(float64(req.LengthMinutes) * wordsPerMinute))

	return fmt.Sprintf(promptTemplate,
		suggestedTitle, hostPhrase(req.HostNames), guestPhrase(req.GuestNames),
		req.Category, podcast.CategoryDescriptions[req.Category],
		req.LengthMinutes,
		req.Tone, podcast.ToneDescriptions[req.Tone],
		req.TargetAudience,
		contextLine,
		structureChecklist(req),
		req.LengthMinutes, targetWords)
}

// CalculateMaxTokens returns the token budget for a generation call,
// assuming ~150 words per minute and ~1.3 tokens per word.
func CalculateMaxTokens(lengthMinutes int) int {
	tokens := int(math.Round(float64(lengthMinutes)*wordsPerMinute*tokensPerWord)) + maxTokensPadding
	if tokens > maxTokensCeiling {
		return maxTokensCeiling
	}
	return tokens
}

// normalize fills in the documented request defaults.
func normalize(req podcast.ScriptRequest) podcast.ScriptRequest {
	if req.Model == "" {
		req.Model = DefaultModel
	}
	if len(req.HostNames) == 0 {
		req.HostNames = []string{"Host"}
	}
	if req.TargetAudience == "" {
		req.TargetAudience = defaultAudience
	}
	if req.MaxRetries <= 0 {
		req.MaxRetries = defaultMaxRetries
	}
	return req
}

func hostPhrase(hosts []string) string {
	if len(hosts) == 1 {
		return "a host named " + hosts[0]
	}
	return "hosts named " + joinNames(hosts)
}

func guestPhrase(guests []string) string {
	switch len(guests) {
	case 0:
		return ""
	case 1:
		return " and a guest named " + guests[0]
	default:
		return " and guests named " + joinNames(guests)
	}
}

// joinNames lists names with an "and" before the last one.
func joinNames(names []string) string {
	return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
}

func structureChecklist(req podcast.ScriptRequest) string {
	var lines []string
	if !req.SkipIntro {
		lines = append(lines, "- An engaging introduction that hooks the listener")
	}
	lines = append(lines, "- Main content with clear speaker transitions")
	if req.IncludeAds {
		lines = append(lines, "- A brief mid-roll advertisement segment")
	}
	if !req.SkipOutro {
		lines = append(lines, "- A conclusion that summarizes key points and includes a call to action")
	}
	return strings.Join(lines, "\n")
}
