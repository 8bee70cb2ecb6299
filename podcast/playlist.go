package podcast

import (
	"time"

	"github.com/google/uuid"
)

// PlaylistOptions describes a new playlist.
type PlaylistOptions struct {
	Name             string
	Description      string
	CoverImageURL    string
	PodcastIDs       []string
	IsPublic         bool
	CreatorID        string
	Type             PlaylistType
	Tags             []string
	Category         string
	AIGenerated      bool
	GenerationPrompt string
}

// NewPlaylist builds a playlist record. The type defaults to user-created.
func NewPlaylist(opts PlaylistOptions) *Playlist {
	now := time.Now()

	playlistType := opts.Type
	if playlistType == "" {
		playlistType = PlaylistUserCreated
	}
	ids := opts.PodcastIDs
	if ids == nil {
		ids = []string{}
	}
	tags := opts.Tags
	if tags == nil {
		tags = []string{}
	}

	return &Playlist{
		ID:               uuid.NewString(),
		Name:             opts.Name,
		Description:      opts.Description,
		CoverImageURL:    opts.CoverImageURL,
		CreatedAt:        now,
		UpdatedAt:        now,
		PodcastIDs:       ids,
		IsPublic:         opts.IsPublic,
		CreatorID:        opts.CreatorID,
		Type:             playlistType,
		Tags:             tags,
		Category:         opts.Category,
		AIGenerated:      opts.AIGenerated,
		GenerationPrompt: opts.GenerationPrompt,
	}
}

// UpdatePlaylist applies a mutation to a playlist and refreshes UpdatedAt.
func UpdatePlaylist(pl *Playlist, apply func(*Playlist)) {
	apply(pl)
	pl.UpdatedAt = time.Now()
}

// AddPodcast appends a podcast id to the playlist. Adding an id already
// present is a no-op and does not touch UpdatedAt.
func AddPodcast(pl *Playlist, podcastID string) {
	for _, id := range pl.PodcastIDs {
		if id == podcastID {
			return
		}
	}
	UpdatePlaylist(pl, func(pl *Playlist) {
		pl.PodcastIDs = append(pl.PodcastIDs, podcastID)
	})
}

// RemovePodcast removes a podcast id from the playlist.
func RemovePodcast(pl *Playlist, podcastID string) {
	UpdatePlaylist(pl, func(pl *Playlist) {
		kept := pl.PodcastIDs[:0]
		for _, id := range pl.PodcastIDs {
			if id != podcastID {
				kept = append(kept, id)
			}
		}
		pl.PodcastIDs = kept
	})
}

// DefaultMoodPlaylists are seed templates for the standard mood playlists.
func DefaultMoodPlaylists() []PlaylistOptions {
	return []PlaylistOptions{
		{
			Name:        "Motivational Morning",
			Description: "Start your day with inspiring and motivational podcasts",
			Type:        PlaylistMoodBased,
			AIGenerated: true,
			Tags:        []string{"morning", "motivation", "inspiration"},
		},
		{
			Name:        "Learn Something New",
			Description: "Expand your knowledge with these educational podcasts",
			Type:        PlaylistMoodBased,
			AIGenerated: true,
			Tags:        []string{"educational", "learning", "informative"},
		},
		{
			Name:        "Laugh Out Loud",
			Description: "Brighten your day with these hilarious comedy podcasts",
			Type:        PlaylistMoodBased,
			AIGenerated: true,
			Tags:        []string{"comedy", "humor", "entertainment"},
		},
		{
			Name:        "Deep Thinking",
			Description: "Thought-provoking podcasts to stimulate your mind",
			Type:        PlaylistMoodBased,
			AIGenerated: true,
			Tags:        []string{"philosophy", "analysis", "thought-provoking"},
		},
		{
			Name:        "Relax & Unwind",
			Description: "Calming podcasts to help you relax and de-stress",
			Type:        PlaylistMoodBased,
			AIGenerated: true,
			Tags:        []string{"relaxing", "mindfulness", "calm"},
		},
	}
}
