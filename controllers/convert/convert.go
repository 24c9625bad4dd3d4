package controllers

import (
	"errors"
	"log"

	"github.com/Kunal-Ingale/Learn-Quest/database"
	"github.com/Kunal-Ingale/Learn-Quest/middleware"
	"github.com/Kunal-Ingale/Learn-Quest/models"
	"github.com/Kunal-Ingale/Learn-Quest/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ConvertPlaylist turns a validated playlist ID into a persisted course for the caller
func ConvertPlaylist(c *fiber.Ctx) error {
	// Retrieve userId from JWT middleware
	userID, ok := c.Locals("userId").(string)
	if !ok || userID == "" {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	// Retrieve validated playlist ID
	playlistID := c.Locals("playlistID").(string)

	// Check if a course already exists for this user and playlist
	var existing models.Course
	if err := database.Database.Db.Where("owner_id = ? AND playlist_id = ?", userID, playlistID).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Course already exists!", fiber.Map{
			"courseId": existing.ID,
			"existing": true,
		})
	}

	// Fetch playlist items from the YouTube API (first page only, longer playlists truncate)
	items, err := utils.YouTube.FetchPlaylistItems(c.Context(), playlistID)
	if err != nil {
		return UpstreamResponse(c, err, "Failed to fetch playlist!")
	}
	if len(items) == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No videos found in playlist!", nil)
	}

	// Resolve the channel name from the first video's own metadata
	channel := utils.UnknownChannel
	if video, err := utils.YouTube.FetchVideo(c.Context(), items[0].VideoID); err == nil && video != nil && video.Channel != "" {
		channel = video.Channel
	}

	videoIDs := make([]string, len(items))
	for i, item := range items {
		videoIDs[i] = item.VideoID
	}

	course := models.Course{
		OwnerID:     userID,
		PlaylistID:  playlistID,
		Title:       utils.CourseTitle(items[0].Title),
		Description: channel,
		VideoIDs:    videoIDs,
	}

	// Save to database with transaction
	tx := database.Database.Db.Begin()
	if err := tx.Create(&course).Error; err != nil {
		tx.Rollback()

		// The unique index on (owner_id, playlist_id) is the authoritative duplicate
		// guard; the pre-check above can lose a race with a concurrent convert
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			if lookupErr := database.Database.Db.Where("owner_id = ? AND playlist_id = ?", userID, playlistID).First(&existing).Error; lookupErr == nil {
				return middleware.JsonResponse(c, fiber.StatusConflict, false, "Course already exists!", fiber.Map{
					"courseId": existing.ID,
					"existing": true,
				})
			}
		}

		log.Printf("Failed to create course for user %s, playlist %s: %v", userID, playlistID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}
	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course created successfully!", fiber.Map{
		"courseId": course.ID,
	})
}

// UpstreamResponse maps a YouTube client failure onto the response, propagating
// the provider's status code when one is available
func UpstreamResponse(c *fiber.Ctx, err error, message string) error {
	log.Printf("YouTube API call failed: %v", err)

	var upstream *utils.UpstreamError
	if errors.As(err, &upstream) && upstream.StatusCode >= 400 {
		return middleware.JsonResponse(c, upstream.StatusCode, false, message, nil)
	}
	return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, message, nil)
}
