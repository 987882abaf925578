package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/skillchain-dev/Backend-SkillChain/src/controllers"
	"github.com/skillchain-dev/Backend-SkillChain/src/middleware"
)

// NotificationRoutes sets up the notification inbox routes
func NotificationRoutes(app *fiber.App) {
	notifications := app.Group("/api/auth/notifications", middleware.ProtectRoute)

	notifications.Get("/", controllers.GetNotifications)
	notifications.Put("/:id/read", controllers.MarkNotificationRead)
	notifications.Delete("/:id", controllers.DeleteNotification)
}
