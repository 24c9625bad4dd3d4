package utils

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Kunal-Ingale/Learn-Quest/config"

	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"
)

// videos.list accepts at most 50 ids per call
const videoBatchSize = 50

// UnknownChannel is the sentinel used when the channel name cannot be resolved
const UnknownChannel = "Unknown Channel"

// Video is the hydrated metadata for one playlist entry. Position is the
// 1-based index in the course's stored video order, not the provider's order.
type Video struct {
	VideoID     string `json:"videoId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Thumbnail   string `json:"thumbnail"`
	Position    int    `json:"position"`
	Duration    string `json:"duration"` // ISO-8601 as encoded by YouTube, e.g. PT4M13S
	Channel     string `json:"channelTitle,omitempty"`
}

// UpstreamError carries the YouTube API failure status so handlers can propagate it
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("youtube api error (%d): %s", e.StatusCode, e.Message)
}

type ytThumbnail struct {
	URL string `json:"url"`
}

type ytSnippet struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	ChannelTitle string `json:"channelTitle"`
	Thumbnails   struct {
		Default ytThumbnail `json:"default"`
		Medium  ytThumbnail `json:"medium"`
		High    ytThumbnail `json:"high"`
	} `json:"thumbnails"`
	ResourceID struct {
		VideoID string `json:"videoId"`
	} `json:"resourceId"`
}

type ytErrorBody struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type playlistItemsResponse struct {
	Items []struct {
		Snippet ytSnippet `json:"snippet"`
	} `json:"items"`
}

type videosResponse struct {
	Items []struct {
		ID             string    `json:"id"`
		Snippet        ytSnippet `json:"snippet"`
		ContentDetails struct {
			Duration string `json:"duration"`
		} `json:"contentDetails"`
	} `json:"items"`
}

// YouTubeClient talks to the YouTube Data API v3
type YouTubeClient struct {
	http    *resty.Client
	apiKey  string
	limiter *rate.Limiter
	cache   *VideoCache
}

// YouTube is the global metadata provider client
var YouTube *YouTubeClient

// InitYouTube builds the global client from the application config
func InitYouTube() {
	cfg := config.AppConfig
	YouTube = NewYouTubeClient(
		cfg.YouTubeApiUrl,
		cfg.YouTubeApiKey,
		cfg.YouTubeRateLimit,
		NewVideoCache(cfg.RedisAddr, cfg.RedisPassword, time.Duration(cfg.CacheTTLHours)*time.Hour),
	)
}

// NewYouTubeClient creates a client against the given API base URL
func NewYouTubeClient(baseURL, apiKey string, ratePerSecond int, cache *VideoCache) *YouTubeClient {
	if ratePerSecond <= 0 {
		ratePerSecond = 10
	}
	return &YouTubeClient{
		http:    resty.New().SetBaseURL(baseURL).SetTimeout(15 * time.Second),
		apiKey:  apiKey,
		limiter: rate.NewLimiter(rate.Limit(ratePerSecond), ratePerSecond),
		cache:   cache,
	}
}

// FetchPlaylistItems returns the first page of playlist entries in playlist order.
// Playlists longer than one provider page (50 items) are truncated.
func (yc *YouTubeClient) FetchPlaylistItems(ctx context.Context, playlistID string) ([]Video, error) {
	if err := yc.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	var result playlistItemsResponse
	var apiErr ytErrorBody

	resp, err := yc.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"part":       "snippet",
			"maxResults": "50",
			"playlistId": playlistID,
			"key":        yc.apiKey,
		}).
		SetResult(&result).
		SetError(&apiErr).
		Get("/playlistItems")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch playlist %s: %w", playlistID, err)
	}
	if resp.IsError() {
		return nil, upstreamError(resp.StatusCode(), &apiErr)
	}

	videos := make([]Video, 0, len(result.Items))
	for i, item := range result.Items {
		videos = append(videos, Video{
			VideoID:     item.Snippet.ResourceID.VideoID,
			Title:       item.Snippet.Title,
			Description: item.Snippet.Description,
			Thumbnail:   item.Snippet.Thumbnails.High.URL,
			Position:    i + 1,
			Channel:     item.Snippet.ChannelTitle,
		})
	}
	return videos, nil
}

// FetchVideos hydrates the given video ids. Results are re-keyed by id rather
// than zipped positionally, so provider ordering cannot corrupt positions:
// the returned slice follows the order of ids, with 1-based positions matching
// that order. Ids the provider no longer knows (deleted videos) are skipped.
func (yc *YouTubeClient) FetchVideos(ctx context.Context, ids []string) ([]Video, error) {
	byID := make(map[string]Video, len(ids))

	// Cache pass first; only misses go to the API
	misses := make([]string, 0, len(ids))
	for _, id := range ids {
		if video, ok := yc.cache.Get(ctx, id); ok {
			byID[id] = video
		} else {
			misses = append(misses, id)
		}
	}

	for start := 0; start < len(misses); start += videoBatchSize {
		end := start + videoBatchSize
		if end > len(misses) {
			end = len(misses)
		}

		fetched, err := yc.fetchVideoBatch(ctx, misses[start:end])
		if err != nil {
			return nil, err
		}
		for id, video := range fetched {
			byID[id] = video
			yc.cache.Set(ctx, video)
		}
	}

	videos := make([]Video, 0, len(ids))
	for i, id := range ids {
		video, ok := byID[id]
		if !ok {
			continue
		}
		video.Position = i + 1
		videos = append(videos, video)
	}
	return videos, nil
}

// FetchVideo hydrates a single video; returns nil when the provider does not know the id
func (yc *YouTubeClient) FetchVideo(ctx context.Context, id string) (*Video, error) {
	videos, err := yc.FetchVideos(ctx, []string{id})
	if err != nil {
		return nil, err
	}
	if len(videos) == 0 {
		return nil, nil
	}
	return &videos[0], nil
}

func (yc *YouTubeClient) fetchVideoBatch(ctx context.Context, ids []string) (map[string]Video, error) {
	if err := yc.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	var result videosResponse
	var apiErr ytErrorBody

	resp, err := yc.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"part": "snippet,contentDetails",
			"id":   strings.Join(ids, ","),
			"key":  yc.apiKey,
		}).
		SetResult(&result).
		SetError(&apiErr).
		Get("/videos")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch videos: %w", err)
	}
	if resp.IsError() {
		return nil, upstreamError(resp.StatusCode(), &apiErr)
	}

	videos := make(map[string]Video, len(result.Items))
	for _, item := range result.Items {
		videos[item.ID] = Video{
			VideoID:     item.ID,
			Title:       item.Snippet.Title,
			Description: item.Snippet.Description,
			Thumbnail:   item.Snippet.Thumbnails.High.URL,
			Duration:    item.ContentDetails.Duration,
			Channel:     item.Snippet.ChannelTitle,
		}
	}
	return videos, nil
}

func upstreamError(status int, body *ytErrorBody) *UpstreamError {
	message := body.Error.Message
	if message == "" {
		message = "YouTube API request failed"
	}
	return &UpstreamError{StatusCode: status, Message: message}
}
