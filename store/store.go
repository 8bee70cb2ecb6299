// Package store defines the persistence interface for podcast records,
// playlists, and raw media blobs, with in-memory and redis backed
// implementations.
package store

import (
	"context"
	"errors"

	"github.com/podcast-maker/podcast-maker/podcast"
)

// ErrUnavailable reports that the backing store cannot be reached.
var ErrUnavailable = errors.New("store unavailable")

// PodcastFilter is an equality filter over podcast records. Nil fields
// are unconstrained; set fields are AND-combined.
type PodcastFilter struct {
	Category    *podcast.Category
	Tone        *podcast.Tone
	IsPublished *bool
	IsPrivate   *bool
	AIGenerated *bool
}

// Matches reports whether the podcast satisfies every set constraint.
func (f *PodcastFilter) Matches(p *podcast.Podcast) bool {
	if f == nil {
		return true
	}
	if f.Category != nil && p.Metadata.Category != *f.Category {
		return false
	}
	if f.Tone != nil && p.Metadata.Tone != *f.Tone {
		return false
	}
	if f.IsPublished != nil && p.IsPublished != *f.IsPublished {
		return false
	}
	if f.IsPrivate != nil && p.IsPrivate != *f.IsPrivate {
		return false
	}
	if f.AIGenerated != nil && p.Metadata.AIGenerated != *f.AIGenerated {
		return false
	}
	return true
}

// PlaylistFilter is an equality filter over playlists. Nil fields are
// unconstrained; set fields are AND-combined.
type PlaylistFilter struct {
	Type      *podcast.PlaylistType
	CreatorID *string
	IsPublic  *bool
}

// Matches reports whether the playlist satisfies every set constraint.
func (f *PlaylistFilter) Matches(pl *podcast.Playlist) bool {
	if f == nil {
		return true
	}
	if f.Type != nil && pl.Type != *f.Type {
		return false
	}
	if f.CreatorID != nil && pl.CreatorID != *f.CreatorID {
		return false
	}
	if f.IsPublic != nil && pl.IsPublic != *f.IsPublic {
		return false
	}
	return true
}

// PodcastListOptions pages and filters a podcast listing.
type PodcastListOptions struct {
	Limit  int
	Offset int
	Filter *PodcastFilter
}

// PlaylistListOptions pages and filters a playlist listing.
type PlaylistListOptions struct {
	Limit  int
	Offset int
	Filter *PlaylistFilter
}

// Provider persists podcasts, playlists, and media blobs. Get calls
// return (nil, nil) for missing records. List calls sort by creation
// time descending before paginating. Implementations are safe for
// concurrent use but offer no cross-call atomicity.
type Provider interface {
	SavePodcast(ctx context.Context, p *podcast.Podcast) (string, error)
	GetPodcast(ctx context.Context, id string) (*podcast.Podcast, error)
	DeletePodcast(ctx context.Context, id string) error
	ListPodcasts(ctx context.Context, opts PodcastListOptions) ([]*podcast.Podcast, error)

	SavePlaylist(ctx context.Context, pl *podcast.Playlist) (string, error)
	GetPlaylist(ctx context.Context, id string) (*podcast.Playlist, error)
	DeletePlaylist(ctx context.Context, id string) error
	ListPlaylists(ctx context.Context, opts PlaylistListOptions) ([]*podcast.Playlist, error)

	SaveAudio(ctx context.Context, id string, data []byte) error
	GetAudio(ctx context.Context, id string) ([]byte, error)
	SaveImage(ctx context.Context, id string, data []byte) error
	GetImage(ctx context.Context, id string) ([]byte, error)
}

// paginate applies offset and limit to an already sorted slice. A zero
// or negative limit means no limit.
func paginate[T any](items []T, limit, offset int) []T {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(items) {
		return nil
	}
	items = items[offset:]
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items
}
