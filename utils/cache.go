package utils

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

// VideoCache is a TTL cache for video metadata keyed by video id.
// Metadata is near-static, so entries are only ever expired, never invalidated.
// A nil *VideoCache is valid and means caching is disabled.
type VideoCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewVideoCache connects to Redis; returns nil when addr is empty
func NewVideoCache(addr, password string, ttl time.Duration) *VideoCache {
	if addr == "" {
		return nil
	}
	return &VideoCache{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
		}),
		ttl: ttl,
	}
}

// Get returns the cached video for the id, or false on a miss
func (vc *VideoCache) Get(ctx context.Context, videoID string) (Video, bool) {
	if vc == nil {
		return Video{}, false
	}

	raw, err := vc.client.Get(ctx, "video:"+videoID).Result()
	if err != nil {
		if err != redis.Nil {
			log.Printf("Video cache read failed for %s: %v", videoID, err)
		}
		return Video{}, false
	}

	var video Video
	if err := json.Unmarshal([]byte(raw), &video); err != nil {
		log.Printf("Video cache entry corrupt for %s: %v", videoID, err)
		return Video{}, false
	}
	return video, true
}

// Set stores a video with the configured TTL; cache failures are logged, never fatal
func (vc *VideoCache) Set(ctx context.Context, video Video) {
	if vc == nil || video.VideoID == "" {
		return
	}

	raw, err := json.Marshal(video)
	if err != nil {
		return
	}
	if err := vc.client.Set(ctx, "video:"+video.VideoID, raw, vc.ttl).Err(); err != nil {
		log.Printf("Video cache write failed for %s: %v", video.VideoID, err)
	}
}
