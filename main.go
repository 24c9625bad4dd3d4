package main

import (
	"log"

	"github.com/Kunal-Ingale/Learn-Quest/config"
	"github.com/Kunal-Ingale/Learn-Quest/database"
	convertRoutes "github.com/Kunal-Ingale/Learn-Quest/routers/convertRoutes"
	courseRoutes "github.com/Kunal-Ingale/Learn-Quest/routers/courseRoutes"
	"github.com/Kunal-Ingale/Learn-Quest/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()
	utils.InitYouTube()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PATCH,DELETE",      // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	convertRoutes.SetupConvertRoutes(app)
	courseRoutes.SetupCourseRoutes(app)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
