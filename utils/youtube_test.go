package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func playlistItemsBody(videoIDs ...string) string {
	type item struct {
		Snippet map[string]interface{} `json:"snippet"`
	}
	items := make([]item, len(videoIDs))
	for i, id := range videoIDs {
		items[i] = item{Snippet: map[string]interface{}{
			"title":        fmt.Sprintf("Video %s | Extra", id),
			"description":  "desc " + id,
			"channelTitle": "Test Channel",
			"thumbnails":   map[string]interface{}{"high": map[string]string{"url": "https://img/" + id}},
			"resourceId":   map[string]string{"videoId": id},
		}}
	}
	raw, _ := json.Marshal(map[string]interface{}{"items": items})
	return string(raw)
}

func videosBody(videoIDs ...string) string {
	type item struct {
		ID             string                 `json:"id"`
		Snippet        map[string]interface{} `json:"snippet"`
		ContentDetails map[string]string      `json:"contentDetails"`
	}
	items := make([]item, len(videoIDs))
	for i, id := range videoIDs {
		items[i] = item{
			ID: id,
			Snippet: map[string]interface{}{
				"title":        "Video " + id,
				"description":  "desc " + id,
				"channelTitle": "Test Channel",
				"thumbnails":   map[string]interface{}{"high": map[string]string{"url": "https://img/" + id}},
			},
			ContentDetails: map[string]string{"duration": "PT4M13S"},
		}
	}
	raw, _ := json.Marshal(map[string]interface{}{"items": items})
	return string(raw)
}

func TestFetchPlaylistItems(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/playlistItems", r.URL.Path)
		assert.Equal(t, "PLtest", r.URL.Query().Get("playlistId"))
		assert.Equal(t, "50", r.URL.Query().Get("maxResults"))
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, playlistItemsBody("a1", "b2", "c3"))
	}))
	defer srv.Close()

	client := NewYouTubeClient(srv.URL, "test-key", 100, nil)
	videos, err := client.FetchPlaylistItems(context.Background(), "PLtest")
	require.NoError(t, err)
	require.Len(t, videos, 3)

	assert.Equal(t, "a1", videos[0].VideoID)
	assert.Equal(t, 1, videos[0].Position)
	assert.Equal(t, "Video a1 | Extra", videos[0].Title)
	assert.Equal(t, "https://img/a1", videos[0].Thumbnail)
	assert.Equal(t, "Test Channel", videos[0].Channel)
	assert.Equal(t, 3, videos[2].Position)
}

func TestFetchPlaylistItems_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		fmt.Fprint(w, `{"error":{"code":403,"message":"quotaExceeded"}}`)
	}))
	defer srv.Close()

	client := NewYouTubeClient(srv.URL, "test-key", 100, nil)
	_, err := client.FetchPlaylistItems(context.Background(), "PLtest")
	require.Error(t, err)

	var upstream *UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, http.StatusForbidden, upstream.StatusCode)
	assert.Contains(t, upstream.Message, "quotaExceeded")
}

// Provider ordering must not matter: results are re-keyed by id, positions
// follow the requested order
func TestFetchVideos_ReorderedProviderResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/videos", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		// Respond in reversed order
		fmt.Fprint(w, videosBody("c3", "b2", "a1"))
	}))
	defer srv.Close()

	client := NewYouTubeClient(srv.URL, "test-key", 100, nil)
	videos, err := client.FetchVideos(context.Background(), []string{"a1", "b2", "c3"})
	require.NoError(t, err)
	require.Len(t, videos, 3)

	assert.Equal(t, "a1", videos[0].VideoID)
	assert.Equal(t, 1, videos[0].Position)
	assert.Equal(t, "b2", videos[1].VideoID)
	assert.Equal(t, 2, videos[1].Position)
	assert.Equal(t, "c3", videos[2].VideoID)
	assert.Equal(t, 3, videos[2].Position)
	assert.Equal(t, "PT4M13S", videos[0].Duration)
}

func TestFetchVideos_BatchesAtFifty(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		ids := strings.Split(r.URL.Query().Get("id"), ",")
		assert.LessOrEqual(t, len(ids), 50)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, videosBody(ids...))
	}))
	defer srv.Close()

	ids := make([]string, 120)
	for i := range ids {
		ids[i] = fmt.Sprintf("vid%03d", i)
	}

	client := NewYouTubeClient(srv.URL, "test-key", 1000, nil)
	videos, err := client.FetchVideos(context.Background(), ids)
	require.NoError(t, err)

	assert.Equal(t, 3, calls)
	require.Len(t, videos, 120)
	assert.Equal(t, "vid000", videos[0].VideoID)
	assert.Equal(t, 120, videos[119].Position)
}

func TestFetchVideos_SkipsDeletedVideos(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		// b2 is gone from the provider
		fmt.Fprint(w, videosBody("a1", "c3"))
	}))
	defer srv.Close()

	client := NewYouTubeClient(srv.URL, "test-key", 100, nil)
	videos, err := client.FetchVideos(context.Background(), []string{"a1", "b2", "c3"})
	require.NoError(t, err)
	require.Len(t, videos, 2)

	assert.Equal(t, "a1", videos[0].VideoID)
	assert.Equal(t, 1, videos[0].Position)
	assert.Equal(t, "c3", videos[1].VideoID)
	// Position reflects the stored order, not the compacted slice
	assert.Equal(t, 3, videos[1].Position)
}

func TestFetchVideo_UnknownID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"items":[]}`)
	}))
	defer srv.Close()

	client := NewYouTubeClient(srv.URL, "test-key", 100, nil)
	video, err := client.FetchVideo(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, video)
}
