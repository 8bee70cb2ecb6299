package script

import (
	"fmt"
	"testing"

	"github.com/podcast-maker/podcast-maker/podcast"
	"github.com/stretchr/testify/assert"
)

func TestBuildPrompt(t *testing.T) {
	prompt := BuildPrompt(podcast.ScriptRequest{
		Category:      podcast.CategoryTech,
		LengthMinutes: 5,
		Tone:          podcast.ToneCasual,
		HostNames:     []string{"Alex"},
	})

	assert.Contains(t, prompt, "a host named Alex")
	assert.Contains(t, prompt, "technology, digital trends, and innovations")
	assert.Contains(t, prompt, "relaxed, informal, and conversational")
	assert.Contains(t, prompt, "Target length: 5 minutes")
	assert.Contains(t, prompt, "about 750 words")
	assert.Contains(t, prompt, "general audience")
	assert.Contains(t, prompt, "An engaging introduction")
	assert.Contains(t, prompt, "call to action")
	assert.NotContains(t, prompt, "advertisement")
	assert.NotContains(t, prompt, "Additional context")
}

func TestBuildPrompt_HostAndGuestPhrasing(t *testing.T) {
	tests := []struct {
		name     string
		hosts    []string
		guests   []string
		contains string
	}{
		{
			name:     "single host",
			hosts:    []string{"Alex"},
			contains: "a host named Alex",
		},
		{
			name:     "multiple hosts",
			hosts:    []string{"Alex", "Sam", "Riley"},
			contains: "hosts named Alex, Sam and Riley",
		},
		{
			name:     "single guest",
			hosts:    []string{"Alex"},
			guests:   []string{"Dana"},
			contains: "a host named Alex and a guest named Dana",
		},
		{
			name:     "multiple guests",
			hosts:    []string{"Alex"},
			guests:   []string{"Dana", "Kim"},
			contains: "a host named Alex and guests named Dana and Kim",
		},
		{
			name:     "no hosts defaults to Host",
			contains: "a host named Host",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			prompt := BuildPrompt(podcast.ScriptRequest{
				Category:      podcast.CategoryComedy,
				LengthMinutes: 10,
				Tone:          podcast.ToneHumorous,
				HostNames:     tc.hosts,
				GuestNames:    tc.guests,
			})
			assert.Contains(t, prompt, tc.contains)
		})
	}
}

func TestBuildPrompt_StructureFlags(t *testing.T) {
	prompt := BuildPrompt(podcast.ScriptRequest{
		Category:      podcast.CategoryNews,
		LengthMinutes: 5,
		Tone:          podcast.ToneSerious,
		SkipIntro:     true,
		SkipOutro:     true,
		IncludeAds:    true,
	})

	assert.NotContains(t, prompt, "An engaging introduction")
	assert.NotContains(t, prompt, "call to action")
	assert.Contains(t, prompt, "mid-roll advertisement segment")
	assert.Contains(t, prompt, "Main content with clear speaker transitions")
}

func TestBuildPrompt_TitleAndContext(t *testing.T) {
	prompt := BuildPrompt(podcast.ScriptRequest{
		Category:          podcast.CategoryScience,
		Title:             "Black Holes Explained",
		LengthMinutes:     15,
		Tone:              podcast.ToneEducational,
		AdditionalContext: "focus on recent telescope findings",
	})

	assert.Contains(t, prompt, `titled "Black Holes Explained"`)
	assert.Contains(t, prompt, "- Additional context: focus on recent telescope findings")
}

func TestCalculateMaxTokens(t *testing.T) {
	tests := []struct {
		minutes  int
		expected int
	}{
		{1, 695},
		{5, 1475},
		{10, 2450},
		{38, 7910},
		{39, 8000}, // hits the ceiling
		{60, 8000},
	}

	for _, tc := range tests {
		t.Run(fmt.Sprintf("%d minutes", tc.minutes), func(t *testing.T) {
			assert.Equal(t, tc.expected, CalculateMaxTokens(tc.minutes))
		})
	}
}
