package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractPlaylistID(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{
			name: "plain playlist url",
			url:  "https://www.youtube.com/playlist?list=PLu0W_9lII9agwh1XjRt242xIpHhPT2llg",
			want: "PLu0W_9lII9agwh1XjRt242xIpHhPT2llg",
		},
		{
			name: "watch url with list parameter",
			url:  "https://www.youtube.com/watch?v=abc123&list=PLabc&index=2",
			want: "PLabc",
		},
		{
			name: "no list parameter",
			url:  "https://www.youtube.com/watch?v=abc123",
			want: "",
		},
		{
			name: "empty url",
			url:  "",
			want: "",
		},
		{
			name: "list not a query parameter",
			url:  "https://example.com/list=PLabc",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractPlaylistID(tt.url))
		})
	}
}

func TestCourseTitle(t *testing.T) {
	assert.Equal(t, "Go Tutorial", CourseTitle("Go Tutorial | Episode 1 | Basics"))
	assert.Equal(t, "Plain Title", CourseTitle("Plain Title"))
	assert.Equal(t, "", CourseTitle(""))
}

func TestCompletedCount(t *testing.T) {
	tests := []struct {
		progress int
		total    int
		want     int
	}{
		{progress: 50, total: 10, want: 5},
		{progress: 33, total: 3, want: 1},
		{progress: 100, total: 7, want: 7},
		{progress: 0, total: 12, want: 0},
		{progress: 0, total: 0, want: 0},
		{progress: 67, total: 3, want: 2},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CompletedCount(tt.progress, tt.total),
			"progress=%d total=%d", tt.progress, tt.total)
	}
}

func TestProgressPercent(t *testing.T) {
	assert.Equal(t, 33, ProgressPercent(1, 3))
	assert.Equal(t, 67, ProgressPercent(2, 3))
	assert.Equal(t, 100, ProgressPercent(7, 7))
	assert.Equal(t, 0, ProgressPercent(0, 10))
	assert.Equal(t, 0, ProgressPercent(0, 0))
	assert.Equal(t, 50, ProgressPercent(5, 10))
}

// Round-tripping a completed count through the scalar must never lose videos
// for the prefix rule to be stable across reloads
func TestProgressRoundTrip(t *testing.T) {
	for total := 1; total <= 20; total++ {
		for completed := 0; completed <= total; completed++ {
			p := ProgressPercent(completed, total)
			assert.Equal(t, completed, CompletedCount(p, total),
				"completed=%d total=%d percent=%d", completed, total, p)
		}
	}
}
