package catalog

import (
	"fmt"
	"sort"

	"github.com/podcast-maker/podcast-maker/podcast"
)

const moodPlaylistSize = 10

// moodTuples are the fixed mood playlists, in generation order.
var moodTuples = []struct {
	name        string
	mood        string
	description string
}{
	{"Motivational Morning", "inspirational", "Start your day with inspiring and motivational podcasts"},
	{"Learn Something New", "educational", "Expand your knowledge with these educational podcasts"},
	{"Laugh Out Loud", "entertaining", "Brighten your day with these hilarious comedy podcasts"},
	{"Deep Thinking", "informative", "Thought-provoking podcasts to stimulate your mind"},
}

// MoodPlaylists builds one public, ai-generated playlist per fixed mood,
// holding the ten most played podcasts with that dominant mood. Moods
// without matching podcasts still yield an empty playlist. Returns nil
// when there are no podcasts at all.
func MoodPlaylists(podcasts []*podcast.Podcast) []*podcast.Playlist {
	if len(podcasts) == 0 {
		return nil
	}

	playlists := make([]*podcast.Playlist, 0, len(moodTuples))
	for _, tuple := range moodTuples {
		var matching []*podcast.Podcast
		for _, p := range podcasts {
			analysis := p.Metadata.ContentAnalysis
			if analysis != nil && analysis.Mood.Overall == tuple.mood {
				matching = append(matching, p)
			}
		}

		sort.SliceStable(matching, func(i, j int) bool {
			return matching[i].Stats.Plays > matching[j].Stats.Plays
		})
		if len(matching) > moodPlaylistSize {
			matching = matching[:moodPlaylistSize]
		}

		ids := make([]string, 0, len(matching))
		for _, p := range matching {
			ids = append(ids, p.ID)
		}

		playlists = append(playlists, podcast.NewPlaylist(podcast.PlaylistOptions{
			Name:        tuple.name,
			Description: tuple.description,
			PodcastIDs:  ids,
			IsPublic:    true,
			Type:        podcast.PlaylistMoodBased,
			Tags:        []string{tuple.mood, "auto-generated"},
			AIGenerated: true,
		}))
	}
	return playlists
}

// PlaylistCriteria drives auto playlist generation. Empty fields are
// ignored; MaxItems defaults to 10.
type PlaylistCriteria struct {
	Name     string
	Category podcast.Category
	Mood     string
	Audience string
	MaxItems int
}

// GeneratePlaylist builds an auto-generated playlist of the most played
// podcasts matching the criteria.
func GeneratePlaylist(podcasts []*podcast.Podcast, criteria PlaylistCriteria) *podcast.Playlist {
	maxItems := criteria.MaxItems
	if maxItems <= 0 {
		maxItems = moodPlaylistSize
	}

	var matching []*podcast.Podcast
	for _, p := range podcasts {
		if criteria.Category != "" && p.Metadata.Category != criteria.Category {
			continue
		}
		if criteria.Mood != "" {
			analysis := p.Metadata.ContentAnalysis
			if analysis == nil || analysis.Mood.Overall != criteria.Mood {
				continue
			}
		}
		if criteria.Audience != "" && !containsString(p.Metadata.TargetAudience, criteria.Audience) {
			continue
		}
		matching = append(matching, p)
	}

	sort.SliceStable(matching, func(i, j int) bool {
		return matching[i].Stats.Plays > matching[j].Stats.Plays
	})
	if len(matching) > maxItems {
		matching = matching[:maxItems]
	}

	ids := make([]string, 0, len(matching))
	for _, p := range matching {
		ids = append(ids, p.ID)
	}

	return podcast.NewPlaylist(podcast.PlaylistOptions{
		Name:        criteria.Name,
		PodcastIDs:  ids,
		Type:        podcast.PlaylistAutoGenerated,
		Category:    string(criteria.Category),
		AIGenerated: true,
		GenerationPrompt: fmt.Sprintf("Category: %s, Mood: %s, Audience: %s",
			criteria.Category, criteria.Mood, criteria.Audience),
	})
}
