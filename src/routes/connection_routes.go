package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/skillchain-dev/Backend-SkillChain/src/controllers"
	"github.com/skillchain-dev/Backend-SkillChain/src/middleware"
)

// ConnectionRoutes sets up routes for sending, accepting and rejecting
// connection requests, listing connections, and the chat gate
func ConnectionRoutes(app *fiber.App) {
	connection := app.Group("/api/auth", middleware.ProtectRoute)

	connection.Post("/connect-request", controllers.SendConnectionRequest)
	connection.Put("/accept-connection", controllers.AcceptConnection)
	connection.Post("/reject-connection", controllers.RejectConnection)
	connection.Get("/connections", controllers.GetConnections)

	connection.Get("/chat/:userId", controllers.GetChatMessages)
	connection.Post("/chat", controllers.SendChatMessage)
}
