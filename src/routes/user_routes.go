package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/skillchain-dev/Backend-SkillChain/src/controllers"
	"github.com/skillchain-dev/Backend-SkillChain/src/middleware"
)

// UserRoutes sets up the user directory and AI matching routes
func UserRoutes(app *fiber.App) {
	users := app.Group("/api/auth", middleware.ProtectRoute)

	users.Get("/users", controllers.GetUsers)
	users.Post("/ai-match", controllers.GetAIMatches)
}
