package store

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/podcast-maker/podcast-maker/podcast"
)

// MemoryProvider keeps everything in process memory. Useful for tests
// and single-run pipelines that write their output to disk anyway.
type MemoryProvider struct {
	mu        sync.RWMutex
	podcasts  map[string]*podcast.Podcast
	playlists map[string]*podcast.Playlist
	audio     map[string][]byte
	images    map[string][]byte
}

// NewMemoryProvider creates an empty in-memory store.
func NewMemoryProvider() *MemoryProvider {
	return &MemoryProvider{
		podcasts:  map[string]*podcast.Podcast{},
		playlists: map[string]*podcast.Playlist{},
		audio:     map[string][]byte{},
		images:    map[string][]byte{},
	}
}

// SavePodcast stores the podcast, assigning an id if it has none.
func (m *MemoryProvider) SavePodcast(_ context.Context, p *podcast.Podcast) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	m.podcasts[p.ID] = p
	return p.ID, nil
}

// GetPodcast returns the podcast or (nil, nil) when absent.
func (m *MemoryProvider) GetPodcast(_ context.Context, id string) (*podcast.Podcast, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.podcasts[id], nil
}

// DeletePodcast removes the podcast. Deleting an absent id is a no-op.
func (m *MemoryProvider) DeletePodcast(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.podcasts, id)
	return nil
}

// ListPodcasts returns matching podcasts, newest first.
func (m *MemoryProvider) ListPodcasts(_ context.Context, opts PodcastListOptions) ([]*podcast.Podcast, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var results []*podcast.Podcast
	for _, p := range m.podcasts {
		if opts.Filter.Matches(p) {
			results = append(results, p)
		}
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].CreatedAt.After(results[j].CreatedAt)
	})
	return paginate(results, opts.Limit, opts.Offset), nil
}

// SavePlaylist stores the playlist, assigning an id if it has none.
func (m *MemoryProvider) SavePlaylist(_ context.Context, pl *podcast.Playlist) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if pl.ID == "" {
		pl.ID = uuid.NewString()
	}
	m.playlists[pl.ID] = pl
	return pl.ID, nil
}

// GetPlaylist returns the playlist or (nil, nil) when absent.
func (m *MemoryProvider) GetPlaylist(_ context.Context, id string) (*podcast.Playlist, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.playlists[id], nil
}

// DeletePlaylist removes the playlist. Deleting an absent id is a no-op.
func (m *MemoryProvider) DeletePlaylist(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.playlists, id)
	return nil
}

// ListPlaylists returns matching playlists, newest first.
func (m *MemoryProvider) ListPlaylists(_ context.Context, opts PlaylistListOptions) ([]*podcast.Playlist, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var results []*podcast.Playlist
	for _, pl := range m.playlists {
		if opts.Filter.Matches(pl) {
			results = append(results, pl)
		}
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].CreatedAt.After(results[j].CreatedAt)
	})
	return paginate(results, opts.Limit, opts.Offset), nil
}

// SaveAudio stores an audio blob under id.
func (m *MemoryProvider) SaveAudio(_ context.Context, id string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.audio[id] = data
	return nil
}

// GetAudio returns the audio blob or (nil, nil) when absent.
func (m *MemoryProvider) GetAudio(_ context.Context, id string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.audio[id], nil
}

// SaveImage stores an image blob under id.
func (m *MemoryProvider) SaveImage(_ context.Context, id string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.images[id] = data
	return nil
}

// GetImage returns the image blob or (nil, nil) when absent.
func (m *MemoryProvider) GetImage(_ context.Context, id string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.images[id], nil
}
