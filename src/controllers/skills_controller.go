package controllers

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/skillchain-dev/Backend-SkillChain/src/models"
	"github.com/skillchain-dev/Backend-SkillChain/src/services"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// withLearningIDs backfills ids and start dates on client-supplied learnings
func withLearningIDs(learnings []models.CurrentLearning) []models.CurrentLearning {
	for i := range learnings {
		if learnings[i].Id.IsZero() {
			learnings[i].Id = primitive.NewObjectID()
		}
		if learnings[i].StartDate.IsZero() {
			learnings[i].StartDate = time.Now()
		}
	}
	return learnings
}

// AddCurrentLearning adds a new skill the user is currently learning
func AddCurrentLearning(c *fiber.Ctx) error {
	var req struct {
		Skill      string     `json:"skill"`
		Level      string     `json:"level"`
		TargetDate *time.Time `json:"targetDate"`
	}

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	if req.Skill == "" || req.Level == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Skill and level are required",
		})
	}

	user := c.Locals("user").(models.User)

	user.CurrentLearnings = append(user.CurrentLearnings, models.CurrentLearning{
		Id:         primitive.NewObjectID(),
		Skill:      req.Skill,
		Level:      req.Level,
		Progress:   0,
		StartDate:  time.Now(),
		TargetDate: req.TargetDate,
	})

	if err := userRepo.SaveLearnings(c.Context(), &user); err != nil {
		log.Printf("Add learning error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to add current learning",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"currentLearnings": user.CurrentLearnings,
	})
}

// UpdateCurrentLearning updates learning progress; at 100% the skill moves to completed skills
func UpdateCurrentLearning(c *fiber.Ctx) error {
	learningID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid learning ID format",
		})
	}

	var req struct {
		Progress *int    `json:"progress"`
		Level    *string `json:"level"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	user := c.Locals("user").(models.User)

	if err := services.ApplyLearningProgress(&user, learningID, req.Progress, req.Level); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Learning not found",
		})
	}

	if err := userRepo.SaveLearnings(c.Context(), &user); err != nil {
		log.Printf("Update learning error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to update learning progress",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"currentLearnings": user.CurrentLearnings,
		"completedSkills":  user.CompletedSkills,
	})
}

// AddProject adds a new project to the user's profile
func AddProject(c *fiber.Ctx) error {
	var req struct {
		Title        string   `json:"title"`
		Description  string   `json:"description"`
		Status       string   `json:"status"`
		Technologies []string `json:"technologies"`
		Github       string   `json:"github"`
		LiveUrl      string   `json:"liveUrl"`
	}

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	if req.Title == "" || req.Description == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Title and description are required",
		})
	}

	if req.Status == "" {
		req.Status = "planning"
	}
	if req.Technologies == nil {
		req.Technologies = []string{}
	}

	user := c.Locals("user").(models.User)

	now := time.Now()
	user.Projects = append(user.Projects, models.Project{
		Id:            primitive.NewObjectID(),
		Title:         req.Title,
		Description:   req.Description,
		Status:        req.Status,
		Technologies:  req.Technologies,
		Github:        req.Github,
		LiveUrl:       req.LiveUrl,
		Collaborators: []primitive.ObjectID{},
		CreatedAt:     now,
		UpdatedAt:     now,
	})

	if err := userRepo.SaveProjects(c.Context(), &user); err != nil {
		log.Printf("Add project error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to add project",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"projects": user.Projects,
	})
}

// UpdateProject updates an existing project on the user's profile
func UpdateProject(c *fiber.Ctx) error {
	projectID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid project ID format",
		})
	}

	var req struct {
		Title        string   `json:"title"`
		Description  string   `json:"description"`
		Status       string   `json:"status"`
		Technologies []string `json:"technologies"`
		Github       *string  `json:"github"`
		LiveUrl      *string  `json:"liveUrl"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	user := c.Locals("user").(models.User)

	project := user.FindProject(projectID)
	if project == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Project not found",
		})
	}

	if req.Title != "" {
		project.Title = req.Title
	}
	if req.Description != "" {
		project.Description = req.Description
	}
	if req.Status != "" {
		project.Status = req.Status
	}
	if req.Technologies != nil {
		project.Technologies = req.Technologies
	}
	if req.Github != nil {
		project.Github = *req.Github
	}
	if req.LiveUrl != nil {
		project.LiveUrl = *req.LiveUrl
	}
	project.UpdatedAt = time.Now()

	if err := userRepo.SaveProjects(c.Context(), &user); err != nil {
		log.Printf("Update project error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to update project",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"projects": user.Projects,
	})
}

// AddDoubt adds a new doubt to the user's profile
func AddDoubt(c *fiber.Ctx) error {
	var req struct {
		Title       string   `json:"title"`
		Description string   `json:"description"`
		Category    string   `json:"category"`
		Tags        []string `json:"tags"`
	}

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	if req.Title == "" || req.Description == "" || req.Category == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Title, description, and category are required",
		})
	}

	if req.Tags == nil {
		req.Tags = []string{}
	}

	user := c.Locals("user").(models.User)

	now := time.Now()
	user.Doubts = append(user.Doubts, models.Doubt{
		Id:          primitive.NewObjectID(),
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Tags:        req.Tags,
		Status:      "open",
		Responses:   []models.DoubtResponse{},
		CreatedAt:   now,
		UpdatedAt:   now,
	})

	if err := userRepo.SaveDoubts(c.Context(), &user); err != nil {
		log.Printf("Add doubt error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to add doubt",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"doubts": user.Doubts,
	})
}
