package services

import (
	"github.com/skillchain-dev/Backend-SkillChain/src/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ApplyLearningProgress updates an in-progress learning's progress and level.
// Progress is clamped to 0-100; reaching 100 moves the skill into the user's
// completed skills and drops the learning entry. Returns ErrNotFound when the
// learning id does not exist on the user.
func ApplyLearningProgress(user *models.User, learningID primitive.ObjectID, progress *int, level *string) error {
	learning := user.FindLearning(learningID)
	if learning == nil {
		return ErrNotFound
	}

	if progress != nil {
		p := *progress
		if p < 0 {
			p = 0
		}
		if p > 100 {
			p = 100
		}
		learning.Progress = p
	}
	if level != nil {
		learning.Level = *level
	}

	if learning.Progress == 100 {
		user.CompletedSkills = append(user.CompletedSkills, models.SkillExperience{
			Skill:      learning.Skill,
			Experience: learning.Level,
		})
		removeLearning(user, learningID)
	}

	return nil
}

func removeLearning(user *models.User, learningID primitive.ObjectID) {
	for i := range user.CurrentLearnings {
		if user.CurrentLearnings[i].Id == learningID {
			user.CurrentLearnings = append(user.CurrentLearnings[:i], user.CurrentLearnings[i+1:]...)
			return
		}
	}
}
