package services

import (
	"testing"

	"github.com/skillchain-dev/Backend-SkillChain/src/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func userWithLearning(skill string, progress int) (*models.User, primitive.ObjectID) {
	id := primitive.NewObjectID()
	user := &models.User{
		Id: primitive.NewObjectID(),
		CurrentLearnings: []models.CurrentLearning{
			{Id: id, Skill: skill, Level: "beginner", Progress: progress},
		},
	}
	return user, id
}

func TestApplyLearningProgressUpdates(t *testing.T) {
	user, id := userWithLearning("Go", 20)

	err := ApplyLearningProgress(user, id, intPtr(55), strPtr("intermediate"))
	require.NoError(t, err)

	learning := user.FindLearning(id)
	require.NotNil(t, learning)
	assert.Equal(t, 55, learning.Progress)
	assert.Equal(t, "intermediate", learning.Level)
}

func TestApplyLearningProgressClamps(t *testing.T) {
	user, id := userWithLearning("Go", 20)

	require.NoError(t, ApplyLearningProgress(user, id, intPtr(-10), nil))
	assert.Equal(t, 0, user.FindLearning(id).Progress)

	require.NoError(t, ApplyLearningProgress(user, id, intPtr(150), nil))
	// Clamping to 100 completes the learning
	assert.Nil(t, user.FindLearning(id))
}

func TestApplyLearningProgressCompletion(t *testing.T) {
	user, id := userWithLearning("Go", 90)

	err := ApplyLearningProgress(user, id, intPtr(100), strPtr("advanced"))
	require.NoError(t, err)

	assert.Nil(t, user.FindLearning(id))
	require.Len(t, user.CompletedSkills, 1)
	assert.Equal(t, "Go", user.CompletedSkills[0].Skill)
	assert.Equal(t, "advanced", user.CompletedSkills[0].Experience)
}

func TestApplyLearningProgressUnknownID(t *testing.T) {
	user, _ := userWithLearning("Go", 20)

	err := ApplyLearningProgress(user, primitive.NewObjectID(), intPtr(50), nil)
	assert.ErrorIs(t, err, ErrNotFound)
}
