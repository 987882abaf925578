package controllers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/skillchain-dev/Backend-SkillChain/src/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GetNotifications returns the authenticated user's notifications,
// newest first
func GetNotifications(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)

	notifications, err := notificationRepo.ListByRecipient(c.Context(), user.Id)
	if err != nil {
		log.Printf("Get notifications error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to fetch notifications",
		})
	}

	if notifications == nil {
		notifications = []models.Notification{}
	}

	return c.Status(fiber.StatusOK).JSON(notifications)
}

// MarkNotificationRead flags one of the user's notifications as read
func MarkNotificationRead(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)

	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid notification ID",
		})
	}

	found, err := notificationRepo.MarkRead(c.Context(), id, user.Id)
	if err != nil {
		log.Printf("Mark notification error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to update notification",
		})
	}
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Notification not found",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Notification marked as read",
	})
}

// DeleteNotification removes one of the user's notifications
func DeleteNotification(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)

	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid notification ID",
		})
	}

	found, err := notificationRepo.Delete(c.Context(), id, user.Id)
	if err != nil {
		log.Printf("Delete notification error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to delete notification",
		})
	}
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Notification not found",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Notification deleted",
	})
}
