package controllers

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/skillchain-dev/Backend-SkillChain/src/lib"
	"github.com/skillchain-dev/Backend-SkillChain/src/models"
	"github.com/skillchain-dev/Backend-SkillChain/src/services"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SendConnectionRequest creates a pending connection between the
// authenticated user and the target user, stored on both sides
func SendConnectionRequest(c *fiber.Ctx) error {
	var req struct {
		UserID string `json:"userId"`
	}
	if err := c.BodyParser(&req); err != nil || req.UserID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "User ID is required",
		})
	}

	targetID, err := primitive.ObjectIDFromHex(req.UserID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid user ID format",
		})
	}

	user := c.Locals("user").(models.User)

	err = connectionService.Request(c.Context(), user.Id, targetID)
	if err != nil {
		var exists *services.AlreadyExistsError
		switch {
		case errors.Is(err, services.ErrInvalidRequest):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Cannot connect to yourself",
			})
		case errors.Is(err, services.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "User not found",
			})
		case errors.As(err, &exists):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Connection already exists",
				"status":  exists.Status,
			})
		default:
			log.Printf("Connect request error: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Failed to send connection request",
			})
		}
	}

	invalidateMatchCache(c, user.Id, targetID)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Connection request sent",
	})
}

// AcceptConnection marks the pending request from the given user as
// connected on both sides
func AcceptConnection(c *fiber.Ctx) error {
	var req struct {
		UserID string `json:"userId"`
	}
	if err := c.BodyParser(&req); err != nil || req.UserID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "User ID is required",
		})
	}

	requesterID, err := primitive.ObjectIDFromHex(req.UserID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid user ID format",
		})
	}

	user := c.Locals("user").(models.User)

	if err := connectionService.Accept(c.Context(), user.Id, requesterID); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Connection request not found",
			})
		}
		log.Printf("Accept connection error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to accept connection",
		})
	}

	invalidateMatchCache(c, user.Id, requesterID)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Connection accepted",
	})
}

// RejectConnection removes the connection edge from both users whatever its
// status, doubling as "remove connection". Safe to call when no edge exists.
func RejectConnection(c *fiber.Ctx) error {
	var req struct {
		UserID string `json:"userId"`
	}
	if err := c.BodyParser(&req); err != nil || req.UserID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "User ID is required",
		})
	}

	targetID, err := primitive.ObjectIDFromHex(req.UserID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid user ID format",
		})
	}

	user := c.Locals("user").(models.User)

	if err := connectionService.Reject(c.Context(), user.Id, targetID); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "User not found",
			})
		}
		log.Printf("Reject connection error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to reject connection",
		})
	}

	invalidateMatchCache(c, user.Id, targetID)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Connection request rejected",
	})
}

// GetConnections returns the authenticated user's connections with the
// counterpart users populated, optionally filtered by status
func GetConnections(c *fiber.Ctx) error {
	status := c.Query("status", "all")

	user := c.Locals("user").(models.User)

	edges := user.Connections
	if status != "all" {
		filtered := make([]models.ConnectionEdge, 0, len(edges))
		for _, edge := range edges {
			if string(edge.Status) == status {
				filtered = append(filtered, edge)
			}
		}
		edges = filtered
	}

	ids := make([]primitive.ObjectID, len(edges))
	for i, edge := range edges {
		ids[i] = edge.User
	}

	counterparts, err := userRepo.FindManyByIDs(c.Context(), ids)
	if err != nil {
		log.Printf("Get connections error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to fetch connections",
		})
	}

	byID := make(map[primitive.ObjectID]models.UserDto, len(counterparts))
	for i := range counterparts {
		byID[counterparts[i].Id] = counterparts[i].Dto()
	}

	type connectionResponse struct {
		User        models.UserDto          `json:"user"`
		Status      models.ConnectionStatus `json:"status"`
		ConnectedAt *time.Time              `json:"connectedAt,omitempty"`
	}

	response := make([]connectionResponse, 0, len(edges))
	for _, edge := range edges {
		dto, ok := byID[edge.User]
		if !ok {
			// Counterpart deleted, skip the dangling edge
			continue
		}
		response = append(response, connectionResponse{
			User:        dto,
			Status:      edge.Status,
			ConnectedAt: edge.ConnectedAt,
		})
	}

	return c.Status(fiber.StatusOK).JSON(response)
}

// invalidateMatchCache drops both users' cached match lists after a
// connection change so stale connectionStatus values don't linger
func invalidateMatchCache(c *fiber.Ctx, a, b primitive.ObjectID) {
	lib.CacheInvalidate(c.Context(),
		lib.MatchCacheKey+a.Hex(),
		lib.MatchCacheKey+b.Hex(),
	)
}
