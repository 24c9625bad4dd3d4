package courseRoutes

import (
	controllers "github.com/Kunal-Ingale/Learn-Quest/controllers/course"
	"github.com/Kunal-Ingale/Learn-Quest/middleware"
	validators "github.com/Kunal-Ingale/Learn-Quest/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up all course routes
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/course")

	// Save a pre-assembled course
	courseGroup.Post("/", middleware.JWTMiddleware, validators.SaveCourse(), controllers.SaveCourse)

	// Course listing; registered before /:id so "mycourses" is not captured as an id
	courseGroup.Get("/mycourses", middleware.JWTMiddleware, controllers.GetMyCourses)

	// Course detail with hydrated videos
	courseGroup.Get("/:id", middleware.JWTMiddleware, validators.CourseID(), controllers.GetCourseDetails)

	// Progress tracking
	courseGroup.Get("/:id/progress", middleware.JWTMiddleware, validators.CourseID(), controllers.GetCourseProgress)
	courseGroup.Patch("/:id/progress", middleware.JWTMiddleware, validators.CourseID(), validators.UpdateProgress(), controllers.UpdateCourseProgress)

	// Wholesale deletion
	courseGroup.Delete("/:id", middleware.JWTMiddleware, validators.CourseID(), controllers.DeleteCourse)
}
