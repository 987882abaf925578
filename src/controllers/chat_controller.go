package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/skillchain-dev/Backend-SkillChain/src/lib"
	"github.com/skillchain-dev/Backend-SkillChain/src/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Chat is gated on an established connection. Message persistence is not
// wired up yet; the endpoints validate access and return placeholder payloads
// so clients can build against the final shape.

// GetChatMessages returns the conversation with a connected user
func GetChatMessages(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)

	otherID, err := primitive.ObjectIDFromHex(c.Params("userId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid user ID"))
	}

	if !user.IsConnectedWith(otherID) {
		return c.Status(fiber.StatusForbidden).JSON(lib.MessageResponse("You can only chat with connected users"))
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"messages": []fiber.Map{},
	})
}

// SendChatMessage accepts a message for a connected user, addressed in the
// request body
func SendChatMessage(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)

	var req struct {
		ReceiverID string `json:"receiverId"`
		Message    string `json:"message"`
	}
	if err := c.BodyParser(&req); err != nil || req.Message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Message cannot be empty"))
	}

	receiverID, err := primitive.ObjectIDFromHex(req.ReceiverID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid user ID"))
	}

	if !user.IsConnectedWith(receiverID) {
		return c.Status(fiber.StatusForbidden).JSON(lib.MessageResponse("You can only chat with connected users"))
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Message sent",
	})
}
