package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/podcast-maker/podcast-maker/podcast"
)

// redis key layout: records are JSON values under "podcast:{id}" and
// "playlist:{id}", with the known ids tracked in the "podcasts" and
// "playlists" sets. Media blobs live under "audio:{id}" and "image:{id}".
const (
	podcastKeyPrefix  = "podcast:"
	playlistKeyPrefix = "playlist:"
	audioKeyPrefix    = "audio:"
	imageKeyPrefix    = "image:"
	podcastSetKey     = "podcasts"
	playlistSetKey    = "playlists"
)

// RedisProvider persists records in redis as JSON values.
type RedisProvider struct {
	client *redis.Client
}

// OpenRedis connects to redis and verifies the connection with a ping.
func OpenRedis(ctx context.Context, addr string) (*RedisProvider, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return &RedisProvider{client: client}, nil
}

// NewRedisProvider wraps an existing redis client.
func NewRedisProvider(client *redis.Client) *RedisProvider {
	return &RedisProvider{client: client}
}

// Close releases the underlying redis connection.
func (r *RedisProvider) Close() error {
	return r.client.Close()
}

// SavePodcast stores the podcast, assigning an id if it has none.
func (r *RedisProvider) SavePodcast(ctx context.Context, p *podcast.Podcast) (string, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	data, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("failed to marshal podcast: %w", err)
	}
	if err := r.client.Set(ctx, podcastKeyPrefix+p.ID, data, 0).Err(); err != nil {
		return "", fmt.Errorf("failed to save podcast: %w", err)
	}
	if err := r.client.SAdd(ctx, podcastSetKey, p.ID).Err(); err != nil {
		return "", fmt.Errorf("failed to index podcast: %w", err)
	}
	return p.ID, nil
}

// GetPodcast returns the podcast or (nil, nil) when absent.
func (r *RedisProvider) GetPodcast(ctx context.Context, id string) (*podcast.Podcast, error) {
	data, err := r.client.Get(ctx, podcastKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get podcast: %w", err)
	}
	var p podcast.Podcast
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to unmarshal podcast: %w", err)
	}
	return &p, nil
}

// DeletePodcast removes the podcast and its index entry.
func (r *RedisProvider) DeletePodcast(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, podcastKeyPrefix+id).Err(); err != nil {
		return fmt.Errorf("failed to delete podcast: %w", err)
	}
	if err := r.client.SRem(ctx, podcastSetKey, id).Err(); err != nil {
		return fmt.Errorf("failed to unindex podcast: %w", err)
	}
	return nil
}

// ListPodcasts returns matching podcasts, newest first.
func (r *RedisProvider) ListPodcasts(ctx context.Context, opts PodcastListOptions) ([]*podcast.Podcast, error) {
	ids, err := r.client.SMembers(ctx, podcastSetKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list podcast ids: %w", err)
	}

	var results []*podcast.Podcast
	for _, id := range ids {
		p, err := r.GetPodcast(ctx, id)
		if err != nil {
			return nil, err
		}
		if p != nil && opts.Filter.Matches(p) {
			results = append(results, p)
		}
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].CreatedAt.After(results[j].CreatedAt)
	})
	return paginate(results, opts.Limit, opts.Offset), nil
}

// SavePlaylist stores the playlist, assigning an id if it has none.
func (r *RedisProvider) SavePlaylist(ctx context.Context, pl *podcast.Playlist) (string, error) {
	if pl.ID == "" {
		pl.ID = uuid.NewString()
	}
	data, err := json.Marshal(pl)
	if err != nil {
		return "", fmt.Errorf("failed to marshal playlist: %w", err)
	}
	if err := r.client.Set(ctx, playlistKeyPrefix+pl.ID, data, 0).Err(); err != nil {
		return "", fmt.Errorf("failed to save playlist: %w", err)
	}
	if err := r.client.SAdd(ctx, playlistSetKey, pl.ID).Err(); err != nil {
		return "", fmt.Errorf("failed to index playlist: %w", err)
	}
	return pl.ID, nil
}

// GetPlaylist returns the playlist or (nil, nil) when absent.
func (r *RedisProvider) GetPlaylist(ctx context.Context, id string) (*podcast.Playlist, error) {
	data, err := r.client.Get(ctx, playlistKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get playlist: %w", err)
	}
	var pl podcast.Playlist
	if err := json.Unmarshal(data, &pl); err != nil {
		return nil, fmt.Errorf("failed to unmarshal playlist: %w", err)
	}
	return &pl, nil
}

// DeletePlaylist removes the playlist and its index entry.
func (r *RedisProvider) DeletePlaylist(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, playlistKeyPrefix+id).Err(); err != nil {
		return fmt.Errorf("failed to delete playlist: %w", err)
	}
	if err := r.client.SRem(ctx, playlistSetKey, id).Err(); err != nil {
		return fmt.Errorf("failed to unindex playlist: %w", err)
	}
	return nil
}

// ListPlaylists returns matching playlists, newest first.
func (r *RedisProvider) ListPlaylists(ctx context.Context, opts PlaylistListOptions) ([]*podcast.Playlist, error) {
	ids, err := r.client.SMembers(ctx, playlistSetKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list playlist ids: %w", err)
	}

	var results []*podcast.Playlist
	for _, id := range ids {
		pl, err := r.GetPlaylist(ctx, id)
		if err != nil {
			return nil, err
		}
		if pl != nil && opts.Filter.Matches(pl) {
			results = append(results, pl)
		}
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].CreatedAt.After(results[j].CreatedAt)
	})
	return paginate(results, opts.Limit, opts.Offset), nil
}

// SaveAudio stores an audio blob under id.
func (r *RedisProvider) SaveAudio(ctx context.Context, id string, data []byte) error {
	if err := r.client.Set(ctx, audioKeyPrefix+id, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save audio: %w", err)
	}
	return nil
}

// GetAudio returns the audio blob or (nil, nil) when absent.
func (r *RedisProvider) GetAudio(ctx context.Context, id string) ([]byte, error) {
	data, err := r.client.Get(ctx, audioKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get audio: %w", err)
	}
	return data, nil
}

// SaveImage stores an image blob under id.
func (r *RedisProvider) SaveImage(ctx context.Context, id string, data []byte) error {
	if err := r.client.Set(ctx, imageKeyPrefix+id, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}

// GetImage returns the image blob or (nil, nil) when absent.
func (r *RedisProvider) GetImage(ctx context.Context, id string) ([]byte, error) {
	data, err := r.client.Get(ctx, imageKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get image: %w", err)
	}
	return data, nil
}
