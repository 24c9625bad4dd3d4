package courseValidator

import (
	"strings"

	"github.com/Kunal-Ingale/Learn-Quest/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// SaveCoursePayload is the body of POST /course
type SaveCoursePayload struct {
	Title       string   `json:"title" validate:"required"`
	PlaylistID  string   `json:"playlistId" validate:"required"`
	Description string   `json:"description" validate:"required"`
	VideoIDs    []string `json:"videoIds" validate:"required,min=1,dive,required"`
}

// UpdateProgressPayload is the body of PATCH /course/:id/progress.
// Both fields are optional but at least one must be present. Progress outside
// [0,100] is rejected, not clamped.
type UpdateProgressPayload struct {
	Progress       *int    `json:"progress" validate:"omitempty,min=0,max=100"`
	CurrentVideoID *string `json:"currentVideoId"`
}

// CourseID validates the :id path parameter and stashes it in locals
func CourseID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID := strings.TrimSpace(c.Params("id"))
		if courseID == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course ID is required!", nil)
		}

		c.Locals("courseID", courseID)
		return c.Next()
	}
}

func SaveCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SaveCoursePayload)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if err := validate.Struct(reqData); err != nil {
			for _, fieldErr := range err.(validator.ValidationErrors) {
				switch fieldErr.Field() {
				case "Title":
					errors["title"] = "Title is required!"
				case "PlaylistID":
					errors["playlistId"] = "Playlist ID is required!"
				case "Description":
					errors["description"] = "Description is required!"
				case "VideoIDs":
					errors["videoIds"] = "At least one video ID is required!"
				}
			}
		}

		// Respond with validation errors if any exist
		if len(errors) > 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Missing required fields!", errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

func UpdateProgress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateProgressPayload)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		// At least one field is required for a partial update
		if reqData.Progress == nil && reqData.CurrentVideoID == nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "At least one of progress or currentVideoId is required!", nil)
		}

		errors := make(map[string]string)

		if err := validate.Struct(reqData); err != nil {
			for _, fieldErr := range err.(validator.ValidationErrors) {
				if fieldErr.Field() == "Progress" {
					errors["progress"] = "Progress must be between 0 and 100!"
				}
			}
		}

		// Respond with validation errors if any exist
		if len(errors) > 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Validation failed!", errors)
		}

		c.Locals("validatedProgress", reqData)
		return c.Next()
	}
}
