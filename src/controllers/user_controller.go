package controllers

import (
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/skillchain-dev/Backend-SkillChain/src/lib"
	"github.com/skillchain-dev/Backend-SkillChain/src/models"
	"github.com/skillchain-dev/Backend-SkillChain/src/repository"
	"github.com/skillchain-dev/Backend-SkillChain/src/services"
)

// GetUsers lists the user directory with optional filters, each entry
// carrying the connection status relative to the authenticated user
func GetUsers(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)

	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "50"))

	params := repository.ListParams{
		ExcludeID:       user.Id,
		Role:            c.Query("role"),
		ExperienceLevel: c.Query("experienceLevel"),
		Skills:          c.Query("skills"),
		Location:        c.Query("location"),
		Search:          c.Query("search"),
		Page:            int64(page),
		Limit:           int64(limit),
	}

	usersList, err := userRepo.List(c.Context(), params)
	if err != nil {
		log.Printf("Get users error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to fetch users",
		})
	}

	type directoryEntry struct {
		models.UserDto
		ConnectionStatus models.ConnectionStatus `json:"connectionStatus"`
	}

	response := make([]directoryEntry, 0, len(usersList))
	for i := range usersList {
		response = append(response, directoryEntry{
			UserDto:          usersList[i].Dto(),
			ConnectionStatus: user.ConnectionStatusWith(usersList[i].Id),
		})
	}

	return c.Status(fiber.StatusOK).JSON(response)
}

// GetAIMatches scores every active user against the authenticated user and
// returns the top candidates. Results are cached briefly since the pool scan
// touches every active profile.
func GetAIMatches(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)

	cacheKey := lib.MatchCacheKey + user.Id.Hex()

	var cached []models.MatchCandidate
	if lib.CacheGetJSON(c.Context(), cacheKey, &cached) {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"matches": cached,
		})
	}

	pool, err := userRepo.FindActiveExcept(c.Context(), user.Id)
	if err != nil {
		log.Printf("AI match error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to compute matches",
		})
	}

	matches := services.ComputeMatches(&user, pool)

	lib.CacheSetJSON(c.Context(), cacheKey, matches, lib.MatchCacheTTL)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"matches": matches,
	})
}
