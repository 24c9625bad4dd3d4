package controllers

import (
	"errors"
	"log"
	"time"

	convertControllers "github.com/Kunal-Ingale/Learn-Quest/controllers/convert"
	"github.com/Kunal-Ingale/Learn-Quest/database"
	"github.com/Kunal-Ingale/Learn-Quest/middleware"
	"github.com/Kunal-Ingale/Learn-Quest/models"
	"github.com/Kunal-Ingale/Learn-Quest/utils"
	validators "github.com/Kunal-Ingale/Learn-Quest/validators/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetCourseDetails gets a course with all of its videos hydrated from the YouTube API
func GetCourseDetails(c *fiber.Ctx) error {
	// Retrieve userId from JWT middleware
	userID, ok := c.Locals("userId").(string)
	if !ok || userID == "" {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(string)

	var course models.Course
	if err := database.Database.Db.Where("id = ? AND owner_id = ?", courseID, userID).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	videos, err := utils.YouTube.FetchVideos(c.Context(), course.VideoIDs)
	if err != nil {
		return convertControllers.UpstreamResponse(c, err, "Failed to fetch course videos!")
	}

	// Lazy channel fallback when the stored description is empty
	channelName := course.Description
	if channelName == "" {
		channelName = utils.UnknownChannel
		if len(videos) > 0 && videos[0].Channel != "" {
			channelName = videos[0].Channel
		}
	}

	// Completed flags are derived from the scalar progress: the completed set
	// is always the first N videos by position
	completedCount := utils.CompletedCount(course.Progress, len(course.VideoIDs))

	type videoWithState struct {
		utils.Video
		Completed bool `json:"completed"`
	}

	result := make([]videoWithState, len(videos))
	for i, video := range videos {
		result[i] = videoWithState{
			Video:     video,
			Completed: video.Position <= completedCount,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", fiber.Map{
		"id":             course.ID,
		"title":          course.Title,
		"playlistId":     course.PlaylistID,
		"description":    channelName,
		"createdAt":      course.CreatedAt,
		"progress":       course.Progress,
		"currentVideoId": course.CurrentVideoID,
		"videos":         result,
	})
}

// GetMyCourses lists the caller's courses. Only the first video of each course is
// hydrated, for a thumbnail and a channel fallback; hydrating every video of every
// course just to render a list would multiply YouTube API calls for nothing.
func GetMyCourses(c *fiber.Ctx) error {
	// Retrieve userId from JWT middleware
	userID, ok := c.Locals("userId").(string)
	if !ok || userID == "" {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var courses []models.Course
	if err := database.Database.Db.Where("owner_id = ?", userID).Order("created_at desc").Find(&courses).Error; err != nil {
		log.Printf("Failed to fetch courses for user %s: %v", userID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	type courseSummary struct {
		ID          string    `json:"id"`
		Title       string    `json:"title"`
		PlaylistID  string    `json:"playlistId"`
		Description string    `json:"description"`
		CreatedAt   time.Time `json:"createdAt"`
		Thumbnail   *string   `json:"thumbnail"`
		Progress    int       `json:"progress"`
		VideoIDs    []string  `json:"videoIds"`
	}

	summaries := make([]courseSummary, len(courses))
	for i, course := range courses {
		summary := courseSummary{
			ID:          course.ID,
			Title:       course.Title,
			PlaylistID:  course.PlaylistID,
			Description: course.Description,
			CreatedAt:   course.CreatedAt,
			Progress:    course.Progress,
			VideoIDs:    course.VideoIDs,
		}

		if len(course.VideoIDs) > 0 {
			video, err := utils.YouTube.FetchVideo(c.Context(), course.VideoIDs[0])
			if err != nil {
				// A provider failure degrades the summary, it does not fail the list
				log.Printf("Failed to hydrate first video of course %s: %v", course.ID, err)
			} else if video != nil {
				if video.Thumbnail != "" {
					summary.Thumbnail = &video.Thumbnail
				}
				if summary.Description == "" && video.Channel != "" {
					summary.Description = video.Channel
				}
			}
		}
		if summary.Description == "" {
			summary.Description = utils.UnknownChannel
		}

		summaries[i] = summary
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": summaries,
	})
}

// SaveCourse persists a pre-assembled course (the client already holds the video list)
func SaveCourse(c *fiber.Ctx) error {
	// Retrieve userId from JWT middleware
	userID, ok := c.Locals("userId").(string)
	if !ok || userID == "" {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	// Retrieve validated course payload
	reqData := c.Locals("validatedCourse").(*validators.SaveCoursePayload)

	var existing models.Course
	if err := database.Database.Db.Where("owner_id = ? AND playlist_id = ?", userID, reqData.PlaylistID).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Course already exists!", fiber.Map{
			"courseId": existing.ID,
			"existing": true,
		})
	}

	course := models.Course{
		OwnerID:     userID,
		PlaylistID:  reqData.PlaylistID,
		Title:       reqData.Title,
		Description: reqData.Description,
		VideoIDs:    reqData.VideoIDs,
	}

	// Save to database with transaction
	tx := database.Database.Db.Begin()
	if err := tx.Create(&course).Error; err != nil {
		tx.Rollback()

		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Course already exists!", nil)
		}

		log.Printf("Failed to save course for user %s: %v", userID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save course!", nil)
	}
	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course saved successfully!", course)
}

// DeleteCourse removes a course wholesale; there is no per-video deletion
func DeleteCourse(c *fiber.Ctx) error {
	// Retrieve userId from JWT middleware
	userID, ok := c.Locals("userId").(string)
	if !ok || userID == "" {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(string)

	result := database.Database.Db.Where("id = ? AND owner_id = ?", courseID, userID).Delete(&models.Course{})
	if result.Error != nil {
		log.Printf("Failed to delete course %s: %v", courseID, result.Error)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}
	if result.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}
