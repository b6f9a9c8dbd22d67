package services

import (
	"samvidhan-sarathi/backend/models"
	"strings"
)

// QuizResult is one completed quiz outcome used by the badge interpreter.
// TopicKey holds the quiz's topic customId and title, lowercased, so
// specificQuiz requirements can match by keyword ("preamble", "rights").
type QuizResult struct {
	Score    int
	TopicKey string
}

// AggregateStats is the snapshot of a user's progress that badge
// requirements are evaluated against.
type AggregateStats struct {
	QuizResults         []QuizResult
	ScenariosCompleted  int
	ActivitiesCompleted int
	MaxTopicCompletion  float64
}

// MeetsRequirements is the single generic interpreter for declarative
// badge rules: every field set in the requirement must hold against the
// stats. A badge with no requirements set is never earned.
func MeetsRequirements(req models.BadgeRequirements, stats AggregateStats) bool {
	set := false

	if req.SpecificQuiz != "" {
		set = true
		if !hasQuizMatching(stats.QuizResults, req.SpecificQuiz, req.MinScore) {
			return false
		}
	} else if req.MinQuizzes > 0 {
		set = true
		if countQuizzesAbove(stats.QuizResults, req.MinScore) < req.MinQuizzes {
			return false
		}
	} else if req.MinScore > 0 {
		set = true
		if countQuizzesAbove(stats.QuizResults, req.MinScore) == 0 {
			return false
		}
	}

	if req.MinScenarios > 0 {
		set = true
		if stats.ScenariosCompleted < req.MinScenarios {
			return false
		}
	}

	if req.MinActivities > 0 {
		set = true
		if stats.ActivitiesCompleted < req.MinActivities {
			return false
		}
	}

	if req.PerfectScore {
		set = true
		if countQuizzesAbove(stats.QuizResults, 100) == 0 {
			return false
		}
	}

	if req.TopicCompletion > 0 {
		set = true
		if stats.MaxTopicCompletion < req.TopicCompletion {
			return false
		}
	}

	return set
}

func countQuizzesAbove(results []QuizResult, minScore int) int {
	count := 0
	for _, r := range results {
		if r.Score >= minScore {
			count++
		}
	}
	return count
}

func hasQuizMatching(results []QuizResult, keyword string, minScore int) bool {
	keyword = strings.ToLower(keyword)
	for _, r := range results {
		if strings.Contains(r.TopicKey, keyword) && r.Score >= minScore {
			return true
		}
	}
	return false
}
