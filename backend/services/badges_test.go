package services

import (
	"samvidhan-sarathi/backend/models"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMeetsRequirementsMinQuizzes(t *testing.T) {
	req := models.BadgeRequirements{MinQuizzes: 5, MinScore: 80}

	stats := AggregateStats{}
	for i := 0; i < 5; i++ {
		stats.QuizResults = append(stats.QuizResults, QuizResult{Score: 85})
	}
	assert.True(t, MeetsRequirements(req, stats))

	// One quiz below threshold doesn't count
	stats.QuizResults[4].Score = 60
	assert.False(t, MeetsRequirements(req, stats))
}

func TestMeetsRequirementsSpecificQuiz(t *testing.T) {
	req := models.BadgeRequirements{SpecificQuiz: "preamble", MinScore: 80}

	stats := AggregateStats{
		QuizResults: []QuizResult{
			{Score: 90, TopicKey: "l1-2 part iii: fundamental rights"},
		},
	}
	assert.False(t, MeetsRequirements(req, stats))

	stats.QuizResults = append(stats.QuizResults, QuizResult{Score: 85, TopicKey: "l0-1 preamble"})
	assert.True(t, MeetsRequirements(req, stats))

	// Matching topic but below min score
	stats.QuizResults[1].Score = 70
	assert.False(t, MeetsRequirements(req, stats))
}

func TestMeetsRequirementsScenarios(t *testing.T) {
	req := models.BadgeRequirements{MinScenarios: 3}
	assert.False(t, MeetsRequirements(req, AggregateStats{ScenariosCompleted: 2}))
	assert.True(t, MeetsRequirements(req, AggregateStats{ScenariosCompleted: 3}))
}

func TestMeetsRequirementsActivities(t *testing.T) {
	req := models.BadgeRequirements{MinActivities: 10}
	assert.False(t, MeetsRequirements(req, AggregateStats{ActivitiesCompleted: 9}))
	assert.True(t, MeetsRequirements(req, AggregateStats{ActivitiesCompleted: 10}))
}

func TestMeetsRequirementsPerfectScore(t *testing.T) {
	req := models.BadgeRequirements{PerfectScore: true}
	assert.False(t, MeetsRequirements(req, AggregateStats{
		QuizResults: []QuizResult{{Score: 99}},
	}))
	assert.True(t, MeetsRequirements(req, AggregateStats{
		QuizResults: []QuizResult{{Score: 99}, {Score: 100}},
	}))
}

func TestMeetsRequirementsTopicCompletion(t *testing.T) {
	req := models.BadgeRequirements{TopicCompletion: 100}
	assert.False(t, MeetsRequirements(req, AggregateStats{MaxTopicCompletion: 60}))
	assert.True(t, MeetsRequirements(req, AggregateStats{MaxTopicCompletion: 100}))
}

func TestMeetsRequirementsCombined(t *testing.T) {
	// All set fields must hold together
	req := models.BadgeRequirements{MinQuizzes: 2, MinScore: 80, MinActivities: 5}

	stats := AggregateStats{
		QuizResults:         []QuizResult{{Score: 90}, {Score: 85}},
		ActivitiesCompleted: 4,
	}
	assert.False(t, MeetsRequirements(req, stats))

	stats.ActivitiesCompleted = 5
	assert.True(t, MeetsRequirements(req, stats))
}

func TestMeetsRequirementsEmptyNeverEarned(t *testing.T) {
	assert.False(t, MeetsRequirements(models.BadgeRequirements{}, AggregateStats{
		QuizResults:         []QuizResult{{Score: 100}},
		ActivitiesCompleted: 50,
	}))
}
