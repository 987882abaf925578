package services

import (
	"math/rand"
	"strings"
	"sync"
	"testing"

	"github.com/skillchain-dev/Backend-SkillChain/src/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeApprovesAndFillsAnalysis(t *testing.T) {
	analyzer := NewVideoAnalyzer(rand.New(rand.NewSource(1)))

	video := models.Video{
		Title:      "Intro to Go",
		Category:   "Programming Fundamentals",
		Difficulty: "beginner",
		Status:     models.VideoStatusPending,
	}

	analysis := analyzer.Analyze(&video)

	assert.Equal(t, models.VideoStatusApproved, video.Status)
	require.NotNil(t, video.ApprovedAt)
	require.NotNil(t, video.AIAnalysis)
	assert.Equal(t, analysis, *video.AIAnalysis)

	assert.GreaterOrEqual(t, analysis.Complexity, 1)
	assert.LessOrEqual(t, analysis.Complexity, 10)
	assert.GreaterOrEqual(t, analysis.SuggestedTokens, 50)
	assert.LessOrEqual(t, analysis.SuggestedTokens, 149)
	assert.True(t, strings.HasSuffix(analysis.Feedback, "Solid programming foundations!"))
}

func TestAnalyzeValueRanges(t *testing.T) {
	analyzer := NewVideoAnalyzer(rand.New(rand.NewSource(42)))

	for i := 0; i < 200; i++ {
		video := models.Video{Difficulty: "advanced", Category: "DevOps"}
		analysis := analyzer.Analyze(&video)

		assert.GreaterOrEqual(t, analysis.Complexity, 1)
		assert.LessOrEqual(t, analysis.Complexity, 10)
		assert.GreaterOrEqual(t, analysis.SuggestedTokens, 50)
		assert.LessOrEqual(t, analysis.SuggestedTokens, 149)
		assert.NotEmpty(t, analysis.Feedback)
	}
}

func TestAnalyzeConcurrentUse(t *testing.T) {
	analyzer := NewVideoAnalyzer(rand.New(rand.NewSource(1)))

	var wg sync.WaitGroup
	results := make([]models.VideoAnalysis, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			video := models.Video{Difficulty: "intermediate", Category: "Data Science"}
			results[i] = analyzer.Analyze(&video)
		}(i)
	}
	wg.Wait()

	for _, analysis := range results {
		assert.GreaterOrEqual(t, analysis.Complexity, 1)
		assert.LessOrEqual(t, analysis.Complexity, 10)
		assert.GreaterOrEqual(t, analysis.SuggestedTokens, 50)
		assert.LessOrEqual(t, analysis.SuggestedTokens, 149)
		assert.NotEmpty(t, analysis.Feedback)
	}
}

func TestAnalyzeFallsBackOnUnknownInputs(t *testing.T) {
	analyzer := NewVideoAnalyzer(rand.New(rand.NewSource(7)))

	video := models.Video{Difficulty: "wizard", Category: "Underwater Basket Weaving"}
	analysis := analyzer.Analyze(&video)

	// Unknown difficulty uses the beginner pool, unknown category the
	// generic line
	assert.True(t, strings.HasSuffix(analysis.Feedback, "Valuable educational content!"))
}
