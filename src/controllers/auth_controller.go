package controllers

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/skillchain-dev/Backend-SkillChain/src/lib"
	"github.com/skillchain-dev/Backend-SkillChain/src/models"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

// Signup handles user registration, validates input, checks for duplicates, hashes password, and returns a JWT
func Signup(c *fiber.Ctx) error {
	var userData struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := c.BodyParser(&userData); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	if userData.Name == "" || userData.Email == "" || userData.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Name, email and password are required",
		})
	}

	if len(userData.Password) < 6 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Password must be at least 6 characters",
		})
	}

	existing, err := userRepo.FindByEmail(c.Context(), userData.Email)
	if err != nil {
		log.Printf("Error checking existing user: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Server error",
		})
	}
	if existing != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "User already exists",
		})
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(userData.Password), 10)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Server error",
		})
	}

	now := time.Now()
	newUser := models.User{
		Name:               userData.Name,
		Email:              userData.Email,
		Password:           string(hashedPassword),
		KnownSkills:        []models.SkillExperience{},
		CurrentLearnings:   []models.CurrentLearning{},
		CompletedSkills:    []models.SkillExperience{},
		Connections:        []models.ConnectionEdge{},
		Videos:             []models.Video{},
		OnboardingComplete: false,
		IsActive:           true,
		LastActiveAt:       now,
	}

	if err := userRepo.Insert(c.Context(), &newUser); err != nil {
		log.Printf("Error creating user: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to create user",
		})
	}

	token, err := lib.GenerateJWT(newUser.Id.Hex())
	if err != nil {
		log.Printf("Error generating token: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to generate token",
		})
	}

	newUser.Password = ""
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"user":  newUser,
		"token": token,
	})
}

// Login authenticates a user by email and password and returns a JWT
func Login(c *fiber.Ctx) error {
	var loginData struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := c.BodyParser(&loginData); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	user, err := userRepo.FindByEmail(c.Context(), loginData.Email)
	if err != nil {
		log.Printf("Error finding user: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Server error",
		})
	}
	if user == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "User not found",
		})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(loginData.Password)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Invalid credentials",
		})
	}

	// Mark the user active again on login
	updated, err := userRepo.UpdateFields(c.Context(), user.Id, bson.M{
		"isActive":     true,
		"lastActiveAt": time.Now(),
	})
	if err != nil || updated == nil {
		log.Printf("Error updating last active: %v", err)
		updated = user
	}

	token, err := lib.GenerateJWT(user.Id.Hex())
	if err != nil {
		log.Printf("Error generating token: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Server error",
		})
	}

	updated.Password = ""
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"user":  updated,
		"token": token,
	})
}

// VerifyToken confirms the bearer token and returns the current user
func VerifyToken(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)
	return c.JSON(fiber.Map{
		"valid": true,
		"user":  user,
	})
}

// GetProfile returns the authenticated user's profile
func GetProfile(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)
	return c.JSON(user)
}

// Onboarding completes the multi-step onboarding process
func Onboarding(c *fiber.Ctx) error {
	var req struct {
		SelectedRole     string                   `json:"selectedRole"`
		ExperienceLevel  string                   `json:"experienceLevel"`
		Bio              string                   `json:"bio"`
		Location         string                   `json:"location"`
		KnownSkills      []models.SkillExperience `json:"knownSkills"`
		CurrentLearnings []models.CurrentLearning `json:"currentLearnings"`
		Interests        []string                 `json:"interests"`
	}

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	if req.SelectedRole == "" || req.ExperienceLevel == "" || req.Bio == "" || len(req.KnownSkills) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Role, experience level, bio, and at least one skill are required",
		})
	}

	user := c.Locals("user").(models.User)

	updated, err := userRepo.UpdateFields(c.Context(), user.Id, bson.M{
		"selectedRole":       req.SelectedRole,
		"experienceLevel":    req.ExperienceLevel,
		"bio":                req.Bio,
		"location":           req.Location,
		"knownSkills":        req.KnownSkills,
		"currentLearnings":   withLearningIDs(req.CurrentLearnings),
		"interests":          req.Interests,
		"onboardingComplete": true,
		"isActive":           true,
		"lastActiveAt":       time.Now(),
	})
	if err != nil {
		log.Printf("Onboarding completion error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to complete onboarding",
		})
	}
	if updated == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "User not found",
		})
	}

	updated.Password = ""
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"user":    updated,
		"message": "Onboarding completed successfully",
	})
}

// UpdateProfile updates user profile data for profile page editing
func UpdateProfile(c *fiber.Ctx) error {
	var req struct {
		Bio              *string                   `json:"bio"`
		Location         *string                   `json:"location"`
		KnownSkills      *[]models.SkillExperience `json:"knownSkills"`
		CurrentLearnings *[]models.CurrentLearning `json:"currentLearnings"`
		Interests        *[]string                 `json:"interests"`
		SelectedRole     *string                   `json:"selectedRole"`
		ExperienceLevel  *string                   `json:"experienceLevel"`
		SocialProfiles   *models.SocialProfiles    `json:"socialProfiles"`
	}

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	updateData := bson.M{"lastActiveAt": time.Now()}
	if req.Bio != nil {
		updateData["bio"] = *req.Bio
	}
	if req.Location != nil {
		updateData["location"] = *req.Location
	}
	if req.KnownSkills != nil {
		updateData["knownSkills"] = *req.KnownSkills
	}
	if req.CurrentLearnings != nil {
		updateData["currentLearnings"] = withLearningIDs(*req.CurrentLearnings)
	}
	if req.Interests != nil {
		updateData["interests"] = *req.Interests
	}
	if req.SelectedRole != nil {
		updateData["selectedRole"] = *req.SelectedRole
	}
	if req.ExperienceLevel != nil {
		updateData["experienceLevel"] = *req.ExperienceLevel
	}
	if req.SocialProfiles != nil {
		updateData["socialProfiles"] = *req.SocialProfiles
	}

	user := c.Locals("user").(models.User)

	updated, err := userRepo.UpdateFields(c.Context(), user.Id, updateData)
	if err != nil {
		log.Printf("Profile update error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to update profile data",
		})
	}
	if updated == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "User not found",
		})
	}

	updated.Password = ""
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"user":    updated,
		"message": "Profile updated successfully",
	})
}

// UpdateSocialProfiles updates the user's social links individually
func UpdateSocialProfiles(c *fiber.Ctx) error {
	var req models.SocialProfiles
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	user := c.Locals("user").(models.User)

	updated, err := userRepo.UpdateFields(c.Context(), user.Id, bson.M{
		"socialProfiles": req,
		"lastActiveAt":   time.Now(),
	})
	if err != nil {
		log.Printf("Social profiles update error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to update social profiles",
		})
	}
	if updated == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "User not found",
		})
	}

	updated.Password = ""
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"user":    updated,
		"message": "Social profiles updated successfully",
	})
}

// GetDashboard aggregates profile stats for the dashboard screen
func GetDashboard(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)

	activeProjects := 0
	completedProjects := 0
	for _, p := range user.Projects {
		switch p.Status {
		case "active":
			activeProjects++
		case "completed":
			completedProjects++
		}
	}

	openDoubts := 0
	resolvedDoubts := 0
	for _, d := range user.Doubts {
		switch d.Status {
		case "open":
			openDoubts++
		case "resolved":
			resolvedDoubts++
		}
	}

	recentProjects := user.Projects
	if len(recentProjects) > 3 {
		recentProjects = recentProjects[len(recentProjects)-3:]
	}
	recentDoubts := user.Doubts
	if len(recentDoubts) > 3 {
		recentDoubts = recentDoubts[len(recentDoubts)-3:]
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"user": fiber.Map{
			"name":            user.Name,
			"bio":             user.Bio,
			"selectedRole":    user.SelectedRole,
			"experienceLevel": user.ExperienceLevel,
		},
		"stats": fiber.Map{
			"totalProjects":     len(user.Projects),
			"activeProjects":    activeProjects,
			"completedProjects": completedProjects,
			"totalSkills":       len(user.KnownSkills),
			"currentLearnings":  len(user.CurrentLearnings),
			"completedSkills":   len(user.CompletedSkills),
			"openDoubts":        openDoubts,
			"resolvedDoubts":    resolvedDoubts,
		},
		"recentProjects":   recentProjects,
		"currentLearnings": user.CurrentLearnings,
		"recentDoubts":     recentDoubts,
	})
}
