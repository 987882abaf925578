package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/skillchain-dev/Backend-SkillChain/src/controllers"
	"github.com/skillchain-dev/Backend-SkillChain/src/middleware"
)

// FeedRoutes sets up the community feed routes
func FeedRoutes(app *fiber.App) {
	feed := app.Group("/api/auth/feed", middleware.ProtectRoute)

	feed.Get("/", controllers.GetFeed)
	feed.Post("/", controllers.CreateFeed)
	feed.Get("/saved", controllers.GetSavedFeed)
	feed.Post("/:id/like", controllers.LikeFeed)
	feed.Delete("/:id/like", controllers.UnlikeFeed)
	feed.Post("/:id/save", controllers.SaveFeed)
	feed.Delete("/:id/save", controllers.UnsaveFeed)
	feed.Post("/:id/comment", controllers.AddFeedComment)
}
