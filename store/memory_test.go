package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/podcast-maker/podcast-maker/podcast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

func storedPodcast(id string, created time.Time, mut func(*podcast.Podcast)) *podcast.Podcast {
	p := &podcast.Podcast{
		ID:        id,
		Title:     "Show " + id,
		CreatedAt: created,
		Metadata:  podcast.Metadata{Category: podcast.CategoryTech, Tone: podcast.ToneCasual},
	}
	if mut != nil {
		mut(p)
	}
	return p
}

func TestMemoryProvider_PodcastRoundTrip(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryProvider()

	p := storedPodcast("", time.Now(), nil)
	id, err := m.SavePodcast(ctx, p)
	require.NoError(t, err)
	assert.NotEmpty(t, id, "id assigned on save")

	got, err := m.GetPodcast(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, p.Title, got.Title)

	require.NoError(t, m.DeletePodcast(ctx, id))
	got, err = m.GetPodcast(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, got, "missing records are nil, not an error")
}

func TestMemoryProvider_GetMissing(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryProvider()

	p, err := m.GetPodcast(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, p)

	pl, err := m.GetPlaylist(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, pl)

	audio, err := m.GetAudio(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, audio)
}

func TestMemoryProvider_ListPodcasts(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryProvider()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		p := storedPodcast(fmt.Sprintf("p%d", i), base.Add(time.Duration(i)*time.Hour), func(p *podcast.Podcast) {
			p.IsPublished = i%2 == 0
		})
		_, err := m.SavePodcast(ctx, p)
		require.NoError(t, err)
	}

	t.Run("sorted newest first", func(t *testing.T) {
		results, err := m.ListPodcasts(ctx, PodcastListOptions{})
		require.NoError(t, err)
		require.Len(t, results, 5)
		assert.Equal(t, "p4", results[0].ID)
		assert.Equal(t, "p0", results[4].ID)
	})

	t.Run("filter by published", func(t *testing.T) {
		results, err := m.ListPodcasts(ctx, PodcastListOptions{
			Filter: &PodcastFilter{IsPublished: boolPtr(true)},
		})
		require.NoError(t, err)
		assert.Len(t, results, 3)
	})

	t.Run("paginate after sort", func(t *testing.T) {
		results, err := m.ListPodcasts(ctx, PodcastListOptions{Limit: 2, Offset: 1})
		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, "p3", results[0].ID)
		assert.Equal(t, "p2", results[1].ID)
	})

	t.Run("offset past end", func(t *testing.T) {
		results, err := m.ListPodcasts(ctx, PodcastListOptions{Offset: 10})
		require.NoError(t, err)
		assert.Empty(t, results)
	})
}

func TestMemoryProvider_PlaylistFilter(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryProvider()

	public := podcast.NewPlaylist(podcast.PlaylistOptions{Name: "Public", IsPublic: true, CreatorID: "alex"})
	private := podcast.NewPlaylist(podcast.PlaylistOptions{Name: "Private", CreatorID: "jordan", Type: podcast.PlaylistMoodBased})
	for _, pl := range []*podcast.Playlist{public, private} {
		_, err := m.SavePlaylist(ctx, pl)
		require.NoError(t, err)
	}

	results, err := m.ListPlaylists(ctx, PlaylistListOptions{
		Filter: &PlaylistFilter{IsPublic: boolPtr(true)},
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Public", results[0].Name)

	moodType := podcast.PlaylistMoodBased
	creator := "jordan"
	results, err = m.ListPlaylists(ctx, PlaylistListOptions{
		Filter: &PlaylistFilter{Type: &moodType, CreatorID: &creator},
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Private", results[0].Name)
}

func TestMemoryProvider_Blobs(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryProvider()

	require.NoError(t, m.SaveAudio(ctx, "a1", []byte("mp3 bytes")))
	data, err := m.GetAudio(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, []byte("mp3 bytes"), data)

	require.NoError(t, m.SaveImage(ctx, "i1", []byte("png bytes")))
	img, err := m.GetImage(ctx, "i1")
	require.NoError(t, err)
	assert.Equal(t, []byte("png bytes"), img)
}

func TestPodcastFilter_Matches(t *testing.T) {
	tech := podcast.CategoryTech
	casual := podcast.ToneCasual
	p := storedPodcast("p", time.Now(), func(p *podcast.Podcast) {
		p.IsPublished = true
		p.Metadata.AIGenerated = true
	})

	assert.True(t, (*PodcastFilter)(nil).Matches(p), "nil filter matches everything")
	assert.True(t, (&PodcastFilter{Category: &tech, Tone: &casual}).Matches(p))
	assert.True(t, (&PodcastFilter{IsPublished: boolPtr(true), AIGenerated: boolPtr(true)}).Matches(p))
	assert.False(t, (&PodcastFilter{IsPrivate: boolPtr(true)}).Matches(p))

	comedy := podcast.CategoryComedy
	assert.False(t, (&PodcastFilter{Category: &comedy}).Matches(p))
}
