package main

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/skillchain-dev/Backend-SkillChain/src/controllers"
	"github.com/skillchain-dev/Backend-SkillChain/src/lib"
	"github.com/skillchain-dev/Backend-SkillChain/src/routes"
)

func main() {
	app := fiber.New()

	app.Use(cors.New())
	app.Use(logger.New())

	lib.ConnectDB()
	lib.ConnectCache()
	controllers.Init()

	app.Get("/api-check", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	routes.AuthRoutes(app)
	routes.ConnectionRoutes(app)
	routes.FeedRoutes(app)
	routes.UserRoutes(app)
	routes.VideoRoutes(app)
	routes.NotificationRoutes(app)

	port := lib.GetEnv("PORT", "3000")

	fmt.Println("Server is running on http://localhost:" + port)
	log.Fatal(app.Listen(":" + port))
}
