package services

import (
	"encoding/json"
	"samvidhan-sarathi/backend/models"
	"testing"

	"github.com/stretchr/testify/assert"
)

func makeQuestion(t *testing.T, correctIndex, optionCount int) models.Question {
	t.Helper()
	options := make([]models.QuestionOption, optionCount)
	for i := range options {
		options[i] = models.QuestionOption{Text: "option", IsCorrect: i == correctIndex}
	}
	raw, err := json.Marshal(options)
	assert.NoError(t, err)
	return models.Question{Text: "q", Options: string(raw)}
}

func intPtr(v int) *int { return &v }

func TestScoreQuizAllCorrect(t *testing.T) {
	questions := []models.Question{
		makeQuestion(t, 0, 4),
		makeQuestion(t, 2, 4),
	}
	score, err := ScoreQuiz(questions, []*int{intPtr(0), intPtr(2)})
	assert.NoError(t, err)
	assert.Equal(t, 100, score)
}

func TestScoreQuizHalfCorrect(t *testing.T) {
	// 4 questions, correct for Q1 and Q3, wrong for Q2, unanswered Q4
	questions := []models.Question{
		makeQuestion(t, 1, 4),
		makeQuestion(t, 0, 4),
		makeQuestion(t, 3, 4),
		makeQuestion(t, 2, 4),
	}
	score, err := ScoreQuiz(questions, []*int{intPtr(1), intPtr(2), intPtr(3), nil})
	assert.NoError(t, err)
	assert.Equal(t, 50, score)
}

func TestScoreQuizRounding(t *testing.T) {
	// 1 of 3 correct = 33.33 -> 33; 2 of 3 = 66.67 -> 67
	questions := []models.Question{
		makeQuestion(t, 0, 3),
		makeQuestion(t, 0, 3),
		makeQuestion(t, 0, 3),
	}
	score, err := ScoreQuiz(questions, []*int{intPtr(0), intPtr(1), intPtr(1)})
	assert.NoError(t, err)
	assert.Equal(t, 33, score)

	score, err = ScoreQuiz(questions, []*int{intPtr(0), intPtr(0), intPtr(1)})
	assert.NoError(t, err)
	assert.Equal(t, 67, score)
}

func TestScoreQuizZeroQuestions(t *testing.T) {
	score, err := ScoreQuiz(nil, nil)
	assert.NoError(t, err)
	assert.Equal(t, 0, score)
}

func TestScoreQuizNilAnswersIncorrect(t *testing.T) {
	questions := []models.Question{
		makeQuestion(t, 0, 4),
		makeQuestion(t, 0, 4),
	}
	score, err := ScoreQuiz(questions, []*int{nil, nil})
	assert.NoError(t, err)
	assert.Equal(t, 0, score)
}

func TestScoreQuizOutOfRangeAnswerIncorrect(t *testing.T) {
	questions := []models.Question{makeQuestion(t, 0, 4)}

	score, err := ScoreQuiz(questions, []*int{intPtr(7)})
	assert.NoError(t, err)
	assert.Equal(t, 0, score)

	score, err = ScoreQuiz(questions, []*int{intPtr(-1)})
	assert.NoError(t, err)
	assert.Equal(t, 0, score)
}

func TestScoreQuizLengthMismatch(t *testing.T) {
	questions := []models.Question{
		makeQuestion(t, 0, 4),
		makeQuestion(t, 0, 4),
	}
	_, err := ScoreQuiz(questions, []*int{intPtr(0)})
	assert.ErrorIs(t, err, ErrInvalidContent)
}

func TestScoreQuizEmptyOptions(t *testing.T) {
	questions := []models.Question{{Text: "q", Options: "[]"}}
	_, err := ScoreQuiz(questions, []*int{intPtr(0)})
	assert.ErrorIs(t, err, ErrInvalidContent)
}

func TestScoreQuizMalformedOptions(t *testing.T) {
	questions := []models.Question{{Text: "q", Options: "not json"}}
	_, err := ScoreQuiz(questions, []*int{intPtr(0)})
	assert.ErrorIs(t, err, ErrInvalidContent)
}

func TestScoreQuizBounds(t *testing.T) {
	for n := 1; n <= 10; n++ {
		questions := make([]models.Question, n)
		answers := make([]*int, n)
		for i := range questions {
			questions[i] = makeQuestion(t, 0, 4)
			if i%2 == 0 {
				answers[i] = intPtr(0)
			}
		}
		score, err := ScoreQuiz(questions, answers)
		assert.NoError(t, err)
		assert.GreaterOrEqual(t, score, 0)
		assert.LessOrEqual(t, score, 100)
	}
}

func TestScoreScenario(t *testing.T) {
	cfg := &models.ScenarioConfig{
		Scenarios: []models.Scenario{
			{
				Situation: "s1",
				Options: []models.ScenarioOption{
					{Text: "a", IsCorrect: false},
					{Text: "b", IsCorrect: true},
				},
			},
			{
				Situation: "s2",
				Options: []models.ScenarioOption{
					{Text: "a", IsCorrect: true},
					{Text: "b", IsCorrect: false},
				},
			},
		},
	}

	score, err := ScoreScenario(cfg, []*int{intPtr(1), nil})
	assert.NoError(t, err)
	assert.Equal(t, 50, score)

	score, err = ScoreScenario(cfg, []*int{intPtr(1), intPtr(0)})
	assert.NoError(t, err)
	assert.Equal(t, 100, score)
}

func TestScoreScenarioEmpty(t *testing.T) {
	score, err := ScoreScenario(&models.ScenarioConfig{}, nil)
	assert.NoError(t, err)
	assert.Equal(t, 0, score)
}

func TestScoreScenarioLengthMismatch(t *testing.T) {
	cfg := &models.ScenarioConfig{
		Scenarios: []models.Scenario{
			{Options: []models.ScenarioOption{{Text: "a", IsCorrect: true}}},
		},
	}
	_, err := ScoreScenario(cfg, []*int{intPtr(0), intPtr(0)})
	assert.ErrorIs(t, err, ErrInvalidContent)
}
