package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type VideoStatus string

const (
	VideoStatusPending  VideoStatus = "pending"
	VideoStatusApproved VideoStatus = "approved"
	VideoStatusRejected VideoStatus = "rejected"
)

// Video is educator content embedded in the owning user's document. Only the
// metadata lives here; storage and streaming are handled elsewhere.
type Video struct {
	Id           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title        string             `json:"title" bson:"title"`
	Description  string             `json:"description" bson:"description"`
	Category     string             `json:"category" bson:"category"`
	Difficulty   string             `json:"difficulty" bson:"difficulty"` // beginner, intermediate, advanced
	Duration     int                `json:"duration" bson:"duration"`     // minutes
	ThumbnailUrl string             `json:"thumbnailUrl,omitempty" bson:"thumbnailUrl,omitempty"`
	VideoUrl     string             `json:"videoUrl,omitempty" bson:"videoUrl,omitempty"`
	Tags         []string           `json:"tags" bson:"tags"`
	Status       VideoStatus        `json:"status" bson:"status"`
	AIAnalysis   *VideoAnalysis     `json:"aiAnalysis,omitempty" bson:"aiAnalysis,omitempty"`
	Views        int                `json:"views" bson:"views"`
	Likes        int                `json:"likes" bson:"likes"`
	UploadedAt   time.Time          `json:"uploadedAt" bson:"uploadedAt"`
	ApprovedAt   *time.Time         `json:"approvedAt,omitempty" bson:"approvedAt,omitempty"`
}

type VideoAnalysis struct {
	Complexity      int    `json:"complexity" bson:"complexity"` // 1-10
	SuggestedTokens int    `json:"suggestedTokens" bson:"suggestedTokens"`
	Feedback        string `json:"feedback" bson:"feedback"`
}

// VideoDto is an approved video with its educator attached, for the video feed.
type VideoDto struct {
	Video
	Educator UserDto `json:"educator"`
}
