package services

import (
	"sort"
	"strings"

	"github.com/skillchain-dev/Backend-SkillChain/src/models"
)

// Match scoring weights. A candidate sharing the requester's role gets 30,
// every overlapping skill adds 10 (unbounded before clamping), and being
// active adds 10; the total is clamped to 100.
const (
	matchRoleScore   = 30
	matchSkillScore  = 10
	matchActiveScore = 10
	matchMaxScore    = 100
	matchResultLimit = 10
)

// EligibleForMatch reports whether a candidate enters the scoring pool: an
// active user other than the requester whose role matches exactly or who
// shares at least one skill name case-insensitively. A user failing both
// conditions never reaches scoring, activity bonus or not.
func EligibleForMatch(requester *models.User, candidate *models.User) bool {
	if candidate.Id == requester.Id || !candidate.IsActive {
		return false
	}
	if candidate.SelectedRole == requester.SelectedRole {
		return true
	}
	requesterSkills := requester.SkillSet()
	for _, s := range candidate.KnownSkills {
		if requesterSkills[strings.ToLower(s.Skill)] {
			return true
		}
	}
	return false
}

// ScoreCandidate computes the compatibility score of a candidate against the
// requester. Pure and deterministic: same inputs, same score.
func ScoreCandidate(requester *models.User, candidate *models.User) int {
	score := 0

	if candidate.SelectedRole == requester.SelectedRole {
		score += matchRoleScore
	}

	requesterSkills := requester.SkillSet()
	for _, s := range candidate.KnownSkills {
		if requesterSkills[strings.ToLower(s.Skill)] {
			score += matchSkillScore
		}
	}

	if candidate.IsActive {
		score += matchActiveScore
	}

	if score > matchMaxScore {
		score = matchMaxScore
	}
	return score
}

// ComputeMatches filters the pool, scores each eligible candidate, attaches
// the requester-side connection status, and returns at most ten results
// ordered by score descending. The sort is stable so candidates with equal
// scores keep their input order, which keeps the output deterministic. An
// empty pool yields an empty slice, not an error.
func ComputeMatches(requester *models.User, pool []models.User) []models.MatchCandidate {
	matches := make([]models.MatchCandidate, 0, len(pool))
	for i := range pool {
		candidate := &pool[i]
		if !EligibleForMatch(requester, candidate) {
			continue
		}
		matches = append(matches, models.MatchCandidate{
			UserDto:          candidate.Dto(),
			MatchScore:       ScoreCandidate(requester, candidate),
			ConnectionStatus: requester.ConnectionStatusWith(candidate.Id),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchScore > matches[j].MatchScore
	})

	if len(matches) > matchResultLimit {
		matches = matches[:matchResultLimit]
	}
	return matches
}
