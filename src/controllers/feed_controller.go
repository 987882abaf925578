package controllers

import (
	"log"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/skillchain-dev/Backend-SkillChain/src/models"
	"github.com/skillchain-dev/Backend-SkillChain/src/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// GetFeed returns the public feed with authors populated. Supports type,
// category and search filters plus pagination.
func GetFeed(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)

	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))

	params := repository.FeedListParams{
		Type:     c.Query("type"),
		Category: c.Query("category"),
		Search:   c.Query("search"),
		Page:     page,
		Limit:    limit,
	}

	feeds, err := feedRepo.List(c.Context(), params)
	if err != nil {
		log.Printf("Get feed error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to fetch feed",
		})
	}

	response, err := populateAuthors(c, feeds, user.Id)
	if err != nil {
		log.Printf("Get feed error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to fetch feed",
		})
	}

	return c.Status(fiber.StatusOK).JSON(response)
}

// CreateFeed publishes a new post authored by the authenticated user
func CreateFeed(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)

	var feed models.Feed
	if err := c.BodyParser(&feed); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	if feed.Content == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Content is required",
		})
	}
	if feed.Type == "" {
		feed.Type = models.FeedTypePost
	}

	feed.Author = user.Id
	feed.IsPublic = true
	feed.Likes = []primitive.ObjectID{}
	feed.Comments = []models.Comment{}
	feed.Shares = []primitive.ObjectID{}
	feed.SavedBy = []primitive.ObjectID{}

	if err := feedRepo.Insert(c.Context(), &feed); err != nil {
		log.Printf("Create feed error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to create post",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(models.FeedDto{
		Feed:   feed,
		Author: user.Dto(),
	})
}

// LikeFeed records a like and notifies the author
func LikeFeed(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)

	feedID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid post ID",
		})
	}

	feed, err := feedRepo.FindByID(c.Context(), feedID)
	if err != nil {
		log.Printf("Like feed error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to like post",
		})
	}
	if feed == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Post not found",
		})
	}
	if feed.HasLike(user.Id) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Post already liked",
		})
	}

	liked, err := feedRepo.AddLike(c.Context(), feedID, user.Id)
	if err != nil {
		log.Printf("Like feed error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to like post",
		})
	}
	if !liked {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Post already liked",
		})
	}

	if feed.Author != user.Id {
		notification := models.Notification{
			Recipient:   feed.Author,
			Type:        models.NotificationTypeLike,
			RelatedUser: user.Id,
			RelatedPost: feedID,
			CreatedAt:   time.Now(),
			UpdatedAt:   time.Now(),
		}
		if err := notificationRepo.Insert(c.Context(), &notification); err != nil {
			log.Printf("Warning: like notification failed: %v", err)
		}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Post liked",
	})
}

// UnlikeFeed removes the user's like. Unliking a post that was never liked
// still succeeds.
func UnlikeFeed(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)

	feedID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid post ID",
		})
	}

	if err := feedRepo.RemoveLike(c.Context(), feedID, user.Id); err != nil {
		log.Printf("Unlike feed error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to unlike post",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Post unliked",
	})
}

// SaveFeed bookmarks a post for the authenticated user
func SaveFeed(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)

	feedID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid post ID",
		})
	}

	if err := feedRepo.AddSave(c.Context(), feedID, user.Id); err != nil {
		log.Printf("Save feed error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to save post",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Post saved",
	})
}

// UnsaveFeed removes a bookmark
func UnsaveFeed(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)

	feedID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid post ID",
		})
	}

	if err := feedRepo.RemoveSave(c.Context(), feedID, user.Id); err != nil {
		log.Printf("Unsave feed error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to unsave post",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Post unsaved",
	})
}

// GetSavedFeed returns the authenticated user's saved posts
func GetSavedFeed(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)

	feeds, err := feedRepo.FindSavedBy(c.Context(), user.Id)
	if err != nil {
		log.Printf("Get saved feed error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to fetch saved posts",
		})
	}

	response, err := populateAuthors(c, feeds, user.Id)
	if err != nil {
		log.Printf("Get saved feed error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to fetch saved posts",
		})
	}

	return c.Status(fiber.StatusOK).JSON(response)
}

// AddFeedComment appends a comment to a post and notifies its author
func AddFeedComment(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)

	feedID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid post ID",
		})
	}

	var req struct {
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil || req.Content == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Comment content is required",
		})
	}

	feed, err := feedRepo.FindByID(c.Context(), feedID)
	if err != nil {
		log.Printf("Add comment error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to add comment",
		})
	}
	if feed == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Post not found",
		})
	}

	comment := models.Comment{
		User:    user.Id,
		Content: req.Content,
		Likes:   []primitive.ObjectID{},
	}
	if err := feedRepo.AddComment(c.Context(), feedID, &comment); err != nil {
		if err == mongo.ErrNoDocuments {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Post not found",
			})
		}
		log.Printf("Add comment error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to add comment",
		})
	}

	if feed.Author != user.Id {
		notification := models.Notification{
			Recipient:   feed.Author,
			Type:        models.NotificationTypeComment,
			RelatedUser: user.Id,
			RelatedPost: feedID,
			CreatedAt:   time.Now(),
			UpdatedAt:   time.Now(),
		}
		if err := notificationRepo.Insert(c.Context(), &notification); err != nil {
			log.Printf("Warning: comment notification failed: %v", err)
		}
	}

	return c.Status(fiber.StatusCreated).JSON(comment)
}

// populateAuthors resolves each post's author in one query and flattens the
// viewer's like/save state onto each entry
func populateAuthors(c *fiber.Ctx, feeds []models.Feed, viewerID primitive.ObjectID) ([]models.FeedDto, error) {
	seen := make(map[primitive.ObjectID]bool, len(feeds))
	ids := make([]primitive.ObjectID, 0, len(feeds))
	for _, feed := range feeds {
		if !seen[feed.Author] {
			seen[feed.Author] = true
			ids = append(ids, feed.Author)
		}
	}

	authors, err := userRepo.FindManyByIDs(c.Context(), ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[primitive.ObjectID]models.UserDto, len(authors))
	for i := range authors {
		byID[authors[i].Id] = authors[i].Dto()
	}

	response := make([]models.FeedDto, 0, len(feeds))
	for i := range feeds {
		response = append(response, models.FeedDto{
			Feed:    feeds[i],
			Author:  byID[feeds[i].Author],
			IsLiked: feeds[i].HasLike(viewerID),
			IsSaved: feeds[i].HasSave(viewerID),
		})
	}
	return response, nil
}
