package convertRoutes

import (
	controllers "github.com/Kunal-Ingale/Learn-Quest/controllers/convert"
	"github.com/Kunal-Ingale/Learn-Quest/middleware"
	validators "github.com/Kunal-Ingale/Learn-Quest/validators/convert"

	"github.com/gofiber/fiber/v2"
)

// SetupConvertRoutes sets up the playlist conversion route
func SetupConvertRoutes(app *fiber.App) {
	app.Post("/convert", middleware.JWTMiddleware, validators.ConvertPlaylist(), controllers.ConvertPlaylist)
}
