package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/skillchain-dev/Backend-SkillChain/src/controllers"
	"github.com/skillchain-dev/Backend-SkillChain/src/middleware"
)

// AuthRoutes sets up account, profile and skill-tracking routes under the
// /api/auth mount
func AuthRoutes(app *fiber.App) {
	auth := app.Group("/api/auth")

	auth.Post("/signup", controllers.Signup)
	auth.Post("/login", controllers.Login)

	auth.Get("/verify-token", middleware.ProtectRoute, controllers.VerifyToken)
	auth.Get("/profile", middleware.ProtectRoute, controllers.GetProfile)
	auth.Post("/onboarding", middleware.ProtectRoute, controllers.Onboarding)
	auth.Put("/update-profile", middleware.ProtectRoute, controllers.UpdateProfile)
	auth.Put("/social-profiles", middleware.ProtectRoute, controllers.UpdateSocialProfiles)
	auth.Get("/dashboard", middleware.ProtectRoute, controllers.GetDashboard)

	auth.Post("/current-learning", middleware.ProtectRoute, controllers.AddCurrentLearning)
	auth.Put("/current-learning/:id", middleware.ProtectRoute, controllers.UpdateCurrentLearning)
	auth.Post("/project", middleware.ProtectRoute, controllers.AddProject)
	auth.Put("/project/:id", middleware.ProtectRoute, controllers.UpdateProject)
	auth.Post("/doubt", middleware.ProtectRoute, controllers.AddDoubt)
}
