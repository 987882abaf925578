package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/skillchain-dev/Backend-SkillChain/src/controllers"
	"github.com/skillchain-dev/Backend-SkillChain/src/middleware"
)

// VideoRoutes sets up educator upload/analysis routes and the video feed
func VideoRoutes(app *fiber.App) {
	videos := app.Group("/api/auth", middleware.ProtectRoute)

	videos.Get("/educator/videos", controllers.GetMyVideos)
	videos.Post("/educator/upload-video", controllers.UploadVideo)
	videos.Post("/educator/analyze-video/:id", controllers.AnalyzeVideo)
	videos.Get("/videos/feed", controllers.GetVideoFeed)
}
