package controllers

import (
	"log"

	"github.com/Kunal-Ingale/Learn-Quest/database"
	"github.com/Kunal-Ingale/Learn-Quest/middleware"
	"github.com/Kunal-Ingale/Learn-Quest/models"
	validators "github.com/Kunal-Ingale/Learn-Quest/validators/course"

	"github.com/gofiber/fiber/v2"
)

// GetCourseProgress returns the stored scalar progress and current-video pointer
func GetCourseProgress(c *fiber.Ctx) error {
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

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", fiber.Map{
		"progress":       course.Progress,
		"currentVideoId": course.CurrentVideoID,
	})
}

// UpdateCourseProgress applies a partial update to the progress fields.
// Last write wins at the granularity of the course row; concurrent updates
// are never merged.
func UpdateCourseProgress(c *fiber.Ctx) error {
	// Retrieve userId from JWT middleware
	userID, ok := c.Locals("userId").(string)
	if !ok || userID == "" {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(string)

	// Retrieve validated progress payload
	reqData := c.Locals("validatedProgress").(*validators.UpdateProgressPayload)

	var course models.Course
	if err := database.Database.Db.Where("id = ? AND owner_id = ?", courseID, userID).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	updates := map[string]interface{}{}
	if reqData.Progress != nil {
		updates["progress"] = *reqData.Progress
		course.Progress = *reqData.Progress
	}
	if reqData.CurrentVideoID != nil {
		updates["current_video_id"] = *reqData.CurrentVideoID
		course.CurrentVideoID = *reqData.CurrentVideoID
	}

	if err := database.Database.Db.Model(&models.Course{}).Where("id = ?", course.ID).Updates(updates).Error; err != nil {
		log.Printf("Failed to update progress for course %s: %v", course.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update progress!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress updated successfully!", fiber.Map{
		"course": course,
	})
}
