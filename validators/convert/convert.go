package convertValidator

import (
	"strings"

	"github.com/Kunal-Ingale/Learn-Quest/middleware"
	"github.com/Kunal-Ingale/Learn-Quest/utils"

	"github.com/gofiber/fiber/v2"
)

func ConvertPlaylist() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			PlaylistUrl string `json:"playlistUrl"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		// Validate PlaylistUrl
		if strings.TrimSpace(reqData.PlaylistUrl) == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Missing playlist URL!", nil)
		}

		playlistID := utils.ExtractPlaylistID(reqData.PlaylistUrl)
		if playlistID == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid playlist URL!", nil)
		}

		c.Locals("playlistID", playlistID)
		return c.Next()
	}
}
