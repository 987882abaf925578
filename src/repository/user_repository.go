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

// UserRepository wraps the users collection. Connection edges are only ever
// written through SaveConnections so both sides of a relationship go through
// the same code path.
type UserRepository struct {
	collection *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{
		collection: db.Collection("users"),
	}
}

// FindByID returns (nil, nil) when no user has the given id.
func (r *UserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &user, nil
}

// FindByEmail returns (nil, nil) when no user has the given email.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) Insert(ctx context.Context, user *models.User) error {
	if user.Id.IsZero() {
		user.Id = primitive.NewObjectID()
	}
	now := time.Now()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now

	if _, err := r.collection.InsertOne(ctx, user); err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

// UpdateFields applies a partial $set update and returns the new document.
func (r *UserRepository) UpdateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.User, error) {
	fields["updatedAt"] = time.Now()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.User
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": fields}, opts).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return &updated, nil
}

// SaveConnections persists the user's connections array. One of the two
// writes of a dual-sided mutation; the caller issues both.
func (r *UserRepository) SaveConnections(ctx context.Context, user *models.User) error {
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": user.Id}, bson.M{
		"$set": bson.M{
			"connections": user.Connections,
			"updatedAt":   time.Now(),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to save connections: %w", err)
	}
	return nil
}

// SaveVideos persists the user's embedded videos array.
func (r *UserRepository) SaveVideos(ctx context.Context, user *models.User) error {
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": user.Id}, bson.M{
		"$set": bson.M{
			"videos":    user.Videos,
			"updatedAt": time.Now(),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to save videos: %w", err)
	}
	return nil
}

// SaveLearnings persists the learning-related embedded arrays together since
// completing a learning moves it into completedSkills.
func (r *UserRepository) SaveLearnings(ctx context.Context, user *models.User) error {
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": user.Id}, bson.M{
		"$set": bson.M{
			"currentLearnings": user.CurrentLearnings,
			"completedSkills":  user.CompletedSkills,
			"updatedAt":        time.Now(),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to save learnings: %w", err)
	}
	return nil
}

// SaveDoubts persists the user's embedded doubts array.
func (r *UserRepository) SaveDoubts(ctx context.Context, user *models.User) error {
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": user.Id}, bson.M{
		"$set": bson.M{
			"doubts":    user.Doubts,
			"updatedAt": time.Now(),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to save doubts: %w", err)
	}
	return nil
}

// SaveProjects persists the user's embedded projects array.
func (r *UserRepository) SaveProjects(ctx context.Context, user *models.User) error {
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": user.Id}, bson.M{
		"$set": bson.M{
			"projects":  user.Projects,
			"updatedAt": time.Now(),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to save projects: %w", err)
	}
	return nil
}

// FindActiveExcept returns the active users other than the given one. This is
// the raw match pool; role/skill eligibility is decided in the service where
// skill names can be compared case-insensitively.
func (r *UserRepository) FindActiveExcept(ctx context.Context, id primitive.ObjectID) ([]models.User, error) {
	filter := bson.M{
		"_id":      bson.M{"$ne": id},
		"isActive": true,
	}
	opts := options.Find().SetSort(bson.D{{Key: "lastActiveAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find active users: %w", err)
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}
	return users, nil
}

// FindManyByIDs returns the users with the given ids.
func (r *UserRepository) FindManyByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.User, error) {
	if len(ids) == 0 {
		return []models.User{}, nil
	}

	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("failed to find users: %w", err)
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}
	return users, nil
}

// ListParams are the discovery filters of the user directory.
type ListParams struct {
	ExcludeID       primitive.ObjectID
	Role            string
	ExperienceLevel string
	Skills          string
	Location        string
	Search          string
	Page            int64
	Limit           int64
}

// List returns active users matching the directory filters, most recently
// active first.
func (r *UserRepository) List(ctx context.Context, params ListParams) ([]models.User, error) {
	filter := bson.M{
		"_id":      bson.M{"$ne": params.ExcludeID},
		"isActive": true,
	}

	if params.Role != "" && params.Role != "all" {
		filter["selectedRole"] = params.Role
	}
	if params.ExperienceLevel != "" && params.ExperienceLevel != "all" {
		filter["experienceLevel"] = params.ExperienceLevel
	}
	if params.Skills != "" {
		filter["knownSkills.skill"] = bson.M{"$regex": params.Skills, "$options": "i"}
	}
	if params.Location != "" {
		filter["location"] = bson.M{"$regex": params.Location, "$options": "i"}
	}
	if params.Search != "" {
		filter["$or"] = []bson.M{
			{"name": bson.M{"$regex": params.Search, "$options": "i"}},
			{"knownSkills.skill": bson.M{"$regex": params.Search, "$options": "i"}},
			{"selectedRole": bson.M{"$regex": params.Search, "$options": "i"}},
		}
	}

	if params.Page < 1 {
		params.Page = 1
	}
	if params.Limit < 1 {
		params.Limit = 50
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "lastActiveAt", Value: -1}}).
		SetSkip((params.Page - 1) * params.Limit).
		SetLimit(params.Limit)

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}
	return users, nil
}

// FindWithApprovedVideos returns users owning at least one approved video.
func (r *UserRepository) FindWithApprovedVideos(ctx context.Context, limit int64) ([]models.User, error) {
	filter := bson.M{"videos.status": models.VideoStatusApproved}
	opts := options.Find().SetLimit(limit)

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find educators: %w", err)
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("failed to decode educators: %w", err)
	}
	return users, nil
}
