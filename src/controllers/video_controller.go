package controllers

import (
	"log"
	"sort"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/skillchain-dev/Backend-SkillChain/src/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GetMyVideos returns the authenticated educator's uploaded videos
func GetMyVideos(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)

	videos := user.Videos
	if videos == nil {
		videos = []models.Video{}
	}

	return c.Status(fiber.StatusOK).JSON(videos)
}

// UploadVideo stores video metadata on the educator's profile. The upload
// starts in pending status until analysis runs.
func UploadVideo(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)

	var video models.Video
	if err := c.BodyParser(&video); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	if video.Title == "" || video.Description == "" || video.Category == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Title, description, and category are required",
		})
	}
	if video.Difficulty == "" {
		video.Difficulty = "beginner"
	}

	video.Id = primitive.NewObjectID()
	video.Status = models.VideoStatusPending
	video.AIAnalysis = nil
	video.Views = 0
	video.Likes = 0
	video.UploadedAt = time.Now()
	video.ApprovedAt = nil

	user.Videos = append(user.Videos, video)

	if err := userRepo.SaveVideos(c.Context(), &user); err != nil {
		log.Printf("Upload video error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to upload video",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(video)
}

// AnalyzeVideo runs the analyzer over a pending upload and approves it
func AnalyzeVideo(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)

	videoID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid video ID",
		})
	}

	video := user.FindVideo(videoID)
	if video == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Video not found",
		})
	}

	analysis := videoAnalyzer.Analyze(video)

	if err := userRepo.SaveVideos(c.Context(), &user); err != nil {
		log.Printf("Analyze video error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to analyze video",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":  "Video analyzed",
		"analysis": analysis,
		"video":    video,
	})
}

// GetVideoFeed returns approved videos across all educators, newest first,
// with optional category and difficulty filters
func GetVideoFeed(c *fiber.Ctx) error {
	category := c.Query("category")
	difficulty := c.Query("difficulty")

	educators, err := userRepo.FindWithApprovedVideos(c.Context(), 200)
	if err != nil {
		log.Printf("Video feed error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to fetch video feed",
		})
	}

	feed := make([]models.VideoDto, 0)
	for i := range educators {
		dto := educators[i].Dto()
		for _, video := range educators[i].Videos {
			if video.Status != models.VideoStatusApproved {
				continue
			}
			if category != "" && video.Category != category {
				continue
			}
			if difficulty != "" && video.Difficulty != difficulty {
				continue
			}
			feed = append(feed, models.VideoDto{Video: video, Educator: dto})
		}
	}

	sort.SliceStable(feed, func(i, j int) bool {
		return feed[i].UploadedAt.After(feed[j].UploadedAt)
	})

	return c.Status(fiber.StatusOK).JSON(feed)
}
