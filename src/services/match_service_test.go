package services

import (
	"testing"
	"time"

	"github.com/skillchain-dev/Backend-SkillChain/src/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func matchUser(name, role string, active bool, skills ...string) models.User {
	user := models.User{
		Id:           primitive.NewObjectID(),
		Name:         name,
		SelectedRole: role,
		IsActive:     active,
	}
	for _, s := range skills {
		user.KnownSkills = append(user.KnownSkills, models.SkillExperience{Skill: s})
	}
	return user
}

func TestScoreCandidateComponents(t *testing.T) {
	requester := matchUser("Alice", "Backend Developer", true, "Python", "SQL")

	// Same role, one overlapping skill (case-insensitive), active:
	// 30 + 10 + 10 = 50
	candidate := matchUser("Bob", "Backend Developer", true, "python", "aws")
	assert.Equal(t, 50, ScoreCandidate(&requester, &candidate))

	// Role only, active
	candidate = matchUser("Carol", "Backend Developer", true, "go")
	assert.Equal(t, 40, ScoreCandidate(&requester, &candidate))

	// Skill overlap only, inactive
	candidate = matchUser("Dave", "Designer", false, "SQL")
	assert.Equal(t, 10, ScoreCandidate(&requester, &candidate))

	// Nothing shared
	candidate = matchUser("Eve", "Designer", false, "figma")
	assert.Equal(t, 0, ScoreCandidate(&requester, &candidate))
}

func TestScoreCandidateDeterministic(t *testing.T) {
	requester := matchUser("Alice", "Backend Developer", true, "Python", "SQL", "Go")
	candidate := matchUser("Bob", "Backend Developer", true, "python", "sql", "go")

	first := ScoreCandidate(&requester, &candidate)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ScoreCandidate(&requester, &candidate))
	}
}

func TestScoreCandidateClampedAt100(t *testing.T) {
	skills := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
	requester := matchUser("Alice", "Backend Developer", true, skills...)
	candidate := matchUser("Bob", "Backend Developer", true, skills...)

	// 30 role + 80 skills + 10 active exceeds the cap
	assert.Equal(t, 100, ScoreCandidate(&requester, &candidate))
}

func TestEligibleForMatch(t *testing.T) {
	requester := matchUser("Alice", "Backend Developer", true, "Python")

	sameRole := matchUser("Bob", "Backend Developer", true)
	assert.True(t, EligibleForMatch(&requester, &sameRole))

	sharedSkill := matchUser("Carol", "Designer", true, "PYTHON")
	assert.True(t, EligibleForMatch(&requester, &sharedSkill))

	inactive := matchUser("Dave", "Backend Developer", false)
	assert.False(t, EligibleForMatch(&requester, &inactive))

	unrelated := matchUser("Eve", "Designer", true, "figma")
	assert.False(t, EligibleForMatch(&requester, &unrelated))

	assert.False(t, EligibleForMatch(&requester, &requester))
}

func TestComputeMatchesOrdersAndTruncates(t *testing.T) {
	requester := matchUser("Alice", "Backend Developer", true, "Python", "SQL")

	pool := make([]models.User, 0, 15)
	// Five strong candidates: role + both skills + active = 60
	for i := 0; i < 5; i++ {
		pool = append(pool, matchUser("strong", "Backend Developer", true, "python", "sql"))
	}
	// Ten weaker ones: role + active = 40
	for i := 0; i < 10; i++ {
		pool = append(pool, matchUser("weak", "Backend Developer", true))
	}

	matches := ComputeMatches(&requester, pool)
	require.Len(t, matches, 10)

	for i := 0; i < 5; i++ {
		assert.Equal(t, 60, matches[i].MatchScore)
	}
	for i := 5; i < 10; i++ {
		assert.Equal(t, 40, matches[i].MatchScore)
	}
	for i := 1; i < len(matches); i++ {
		assert.GreaterOrEqual(t, matches[i-1].MatchScore, matches[i].MatchScore)
	}
}

func TestComputeMatchesStableOnTies(t *testing.T) {
	requester := matchUser("Alice", "Backend Developer", true)

	first := matchUser("First", "Backend Developer", true)
	second := matchUser("Second", "Backend Developer", true)
	third := matchUser("Third", "Backend Developer", true)

	matches := ComputeMatches(&requester, []models.User{first, second, third})
	require.Len(t, matches, 3)
	assert.Equal(t, first.Id, matches[0].Id)
	assert.Equal(t, second.Id, matches[1].Id)
	assert.Equal(t, third.Id, matches[2].Id)
}

func TestComputeMatchesExcludesIneligible(t *testing.T) {
	requester := matchUser("Alice", "Backend Developer", true, "Python")

	inactive := matchUser("Bob", "Backend Developer", false, "python")
	unrelated := matchUser("Carol", "Designer", true, "figma")

	matches := ComputeMatches(&requester, []models.User{inactive, unrelated, requester})
	assert.Empty(t, matches)
	assert.NotNil(t, matches)
}

func TestComputeMatchesEmptyPool(t *testing.T) {
	requester := matchUser("Alice", "Backend Developer", true)

	matches := ComputeMatches(&requester, nil)
	assert.NotNil(t, matches)
	assert.Empty(t, matches)
}

func TestComputeMatchesAttachesConnectionStatus(t *testing.T) {
	requester := matchUser("Alice", "Backend Developer", true)
	pending := matchUser("Bob", "Backend Developer", true)
	connected := matchUser("Carol", "Backend Developer", true)
	stranger := matchUser("Dave", "Backend Developer", true)

	now := time.Now()
	requester.Connections = []models.ConnectionEdge{
		{User: pending.Id, Status: models.ConnectionStatusPending, CreatedAt: now},
		{User: connected.Id, Status: models.ConnectionStatusConnected, ConnectedAt: &now, CreatedAt: now},
	}

	matches := ComputeMatches(&requester, []models.User{pending, connected, stranger})
	require.Len(t, matches, 3)

	byID := make(map[primitive.ObjectID]models.MatchCandidate)
	for _, m := range matches {
		byID[m.Id] = m
	}
	assert.Equal(t, models.ConnectionStatusPending, byID[pending.Id].ConnectionStatus)
	assert.Equal(t, models.ConnectionStatusConnected, byID[connected.Id].ConnectionStatus)
	assert.Equal(t, models.ConnectionStatusNone, byID[stranger.Id].ConnectionStatus)
}
