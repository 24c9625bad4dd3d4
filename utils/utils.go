package utils

import (
	"math"
	"regexp"
	"strings"
)

var playlistIDPattern = regexp.MustCompile(`[?&]list=([^&]+)`)

// ExtractPlaylistID pulls the playlist id out of a YouTube playlist URL.
// Returns an empty string when the URL has no list query parameter.
func ExtractPlaylistID(playlistURL string) string {
	match := playlistIDPattern.FindStringSubmatch(playlistURL)
	if match == nil {
		return ""
	}
	return match[1]
}

// CourseTitle derives a course title from the first video's title,
// truncated at the "|" delimiter when present
func CourseTitle(firstVideoTitle string) string {
	title, _, _ := strings.Cut(firstVideoTitle, "|")
	return strings.TrimSpace(title)
}

// CompletedCount maps a scalar progress percentage back onto a video list:
// the completed set is the first CompletedCount videos by position.
func CompletedCount(progress, totalVideos int) int {
	if totalVideos <= 0 {
		return 0
	}
	return int(math.Round(float64(progress) / 100 * float64(totalVideos)))
}

// ProgressPercent computes the scalar progress from a completed-video count
func ProgressPercent(completedCount, totalVideos int) int {
	if totalVideos <= 0 {
		return 0
	}
	return int(math.Round(float64(completedCount) / float64(totalVideos) * 100))
}
