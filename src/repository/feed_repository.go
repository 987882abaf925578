package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/skillchain-dev/Backend-SkillChain/src/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type FeedRepository struct {
	collection *mongo.Collection
}

func NewFeedRepository(db *mongo.Database) *FeedRepository {
	return &FeedRepository{
		collection: db.Collection("feeds"),
	}
}

func (r *FeedRepository) Insert(ctx context.Context, feed *models.Feed) error {
	if feed.Id.IsZero() {
		feed.Id = primitive.NewObjectID()
	}
	now := time.Now()
	feed.CreatedAt = now
	feed.UpdatedAt = now
	if _, err := r.collection.InsertOne(ctx, feed); err != nil {
		return fmt.Errorf("failed to insert feed post: %w", err)
	}
	return nil
}

// FindByID returns nil without error when no post matches.
func (r *FeedRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Feed, error) {
	var feed models.Feed
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&feed)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find feed post: %w", err)
	}
	return &feed, nil
}

// FeedListParams filters the public feed listing.
type FeedListParams struct {
	Type     string
	Category string
	Search   string
	Page     int
	Limit    int
}

// List returns public posts newest first, applying optional filters.
func (r *FeedRepository) List(ctx context.Context, params FeedListParams) ([]models.Feed, error) {
	filter := bson.M{"isPublic": true}
	if params.Type != "" && params.Type != "all" {
		filter["type"] = params.Type
	}
	if params.Category != "" {
		filter["category"] = params.Category
	}
	if params.Search != "" {
		filter["$or"] = []bson.M{
			{"content": bson.M{"$regex": params.Search, "$options": "i"}},
			{"tags": bson.M{"$regex": params.Search, "$options": "i"}},
		}
	}

	page := params.Page
	if page < 1 {
		page = 1
	}
	limit := params.Limit
	if limit < 1 || limit > 100 {
		limit = 20
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "isPinned", Value: -1}, {Key: "createdAt", Value: -1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find feed posts: %w", err)
	}
	defer cursor.Close(ctx)

	var feeds []models.Feed
	if err := cursor.All(ctx, &feeds); err != nil {
		return nil, fmt.Errorf("failed to decode feed posts: %w", err)
	}
	return feeds, nil
}

// FindSavedBy returns the posts a user has saved, newest first.
func (r *FeedRepository) FindSavedBy(ctx context.Context, userID primitive.ObjectID) ([]models.Feed, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"savedBy": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find saved posts: %w", err)
	}
	defer cursor.Close(ctx)

	var feeds []models.Feed
	if err := cursor.All(ctx, &feeds); err != nil {
		return nil, fmt.Errorf("failed to decode saved posts: %w", err)
	}
	return feeds, nil
}

// AddLike records a like unless the user already liked the post. Reports
// whether the like was new.
func (r *FeedRepository) AddLike(ctx context.Context, feedID, userID primitive.ObjectID) (bool, error) {
	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": feedID, "likes": bson.M{"$ne": userID}},
		bson.M{
			"$push": bson.M{"likes": userID},
			"$inc":  bson.M{"engagement": 1},
			"$set":  bson.M{"updatedAt": time.Now()},
		},
	)
	if err != nil {
		return false, fmt.Errorf("failed to like post: %w", err)
	}
	return result.ModifiedCount > 0, nil
}

// RemoveLike drops the user's like. Removing a like that does not exist is
// not an error.
func (r *FeedRepository) RemoveLike(ctx context.Context, feedID, userID primitive.ObjectID) error {
	_, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": feedID},
		bson.M{
			"$pull": bson.M{"likes": userID},
			"$set":  bson.M{"updatedAt": time.Now()},
		},
	)
	if err != nil {
		return fmt.Errorf("failed to unlike post: %w", err)
	}
	return nil
}

// AddSave bookmarks the post for the user. Duplicates are filtered by $addToSet.
func (r *FeedRepository) AddSave(ctx context.Context, feedID, userID primitive.ObjectID) error {
	_, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": feedID},
		bson.M{
			"$addToSet": bson.M{"savedBy": userID},
			"$set":      bson.M{"updatedAt": time.Now()},
		},
	)
	if err != nil {
		return fmt.Errorf("failed to save post: %w", err)
	}
	return nil
}

func (r *FeedRepository) RemoveSave(ctx context.Context, feedID, userID primitive.ObjectID) error {
	_, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": feedID},
		bson.M{
			"$pull": bson.M{"savedBy": userID},
			"$set":  bson.M{"updatedAt": time.Now()},
		},
	)
	if err != nil {
		return fmt.Errorf("failed to unsave post: %w", err)
	}
	return nil
}

// AddComment appends a comment and returns it with its assigned ID.
func (r *FeedRepository) AddComment(ctx context.Context, feedID primitive.ObjectID, comment *models.Comment) error {
	comment.Id = primitive.NewObjectID()
	comment.CreatedAt = time.Now()

	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": feedID},
		bson.M{
			"$push": bson.M{"comments": comment},
			"$inc":  bson.M{"engagement": 1},
			"$set":  bson.M{"updatedAt": time.Now()},
		},
	)
	if err != nil {
		return fmt.Errorf("failed to add comment: %w", err)
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
