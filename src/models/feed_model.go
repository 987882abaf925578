package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type FeedType string

const (
	FeedTypePost        FeedType = "post"
	FeedTypeDoubt       FeedType = "doubt"
	FeedTypeCourse      FeedType = "course"
	FeedTypeAchievement FeedType = "achievement"
	FeedTypeShowcase    FeedType = "project-showcase"
)

type Feed struct {
	Id       primitive.ObjectID   `json:"id" bson:"_id,omitempty"`
	Author   primitive.ObjectID   `json:"author" bson:"author"`
	Content  string               `json:"content" bson:"content"`
	Type     FeedType             `json:"type" bson:"type"`
	Tags     []string             `json:"tags" bson:"tags"`
	Category string               `json:"category,omitempty" bson:"category,omitempty"`
	Media    []Media              `json:"media" bson:"media"`
	Likes    []primitive.ObjectID `json:"likes" bson:"likes"`
	Comments []Comment            `json:"comments" bson:"comments"`
	Shares   []primitive.ObjectID `json:"shares" bson:"shares"`
	SavedBy  []primitive.ObjectID `json:"savedBy" bson:"savedBy"`
	IsPublic bool                 `json:"isPublic" bson:"isPublic"`
	IsPinned bool                 `json:"isPinned" bson:"isPinned"`

	// Doubt posts
	IsResolved bool               `json:"isResolved" bson:"isResolved"`
	BestAnswer primitive.ObjectID `json:"bestAnswer,omitempty" bson:"bestAnswer,omitempty"`

	// Course posts
	DifficultyLevel string   `json:"difficulty_level,omitempty" bson:"difficulty_level,omitempty"`
	ComplexityScore int      `json:"complexity_score,omitempty" bson:"complexity_score,omitempty"`
	Duration        int      `json:"duration,omitempty" bson:"duration,omitempty"`
	Summary         string   `json:"summary,omitempty" bson:"summary,omitempty"`
	Keywords        []string `json:"keywords,omitempty" bson:"keywords,omitempty"`

	Views      int       `json:"views" bson:"views"`
	Engagement int       `json:"engagement" bson:"engagement"`
	CreatedAt  time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt" bson:"updatedAt"`
}

type Media struct {
	Type    string `json:"type" bson:"type"` // image, video, document
	Url     string `json:"url" bson:"url"`
	Caption string `json:"caption,omitempty" bson:"caption,omitempty"`
}

type Comment struct {
	Id        primitive.ObjectID   `json:"id" bson:"_id,omitempty"`
	User      primitive.ObjectID   `json:"user" bson:"user"`
	Content   string               `json:"content" bson:"content"`
	Likes     []primitive.ObjectID `json:"likes" bson:"likes"`
	CreatedAt time.Time            `json:"createdAt" bson:"createdAt"`
}

// FeedDto is a feed post with its author populated and the viewer's own
// like/save state flattened for responses.
type FeedDto struct {
	Feed
	Author  UserDto `json:"author"`
	IsLiked bool    `json:"isLiked"`
	IsSaved bool    `json:"isSaved"`
}

// HasLike reports whether the given user already liked the post.
func (f *Feed) HasLike(userID primitive.ObjectID) bool {
	for _, id := range f.Likes {
		if id == userID {
			return true
		}
	}
	return false
}

// HasSave reports whether the given user already saved the post.
func (f *Feed) HasSave(userID primitive.ObjectID) bool {
	for _, id := range f.SavedBy {
		if id == userID {
			return true
		}
	}
	return false
}
