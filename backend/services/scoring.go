package services

import (
	"fmt"
	"math"
	"samvidhan-sarathi/backend/models"
)

// PassThreshold is the fixed passing score used for client messaging.
// It is a policy value, not a property of any content item.
const PassThreshold = 70

// ScoreQuiz scores a quiz submission against the content's answer key.
// answers holds one selected option index per question, nil when the
// question was left unanswered; unanswered counts as incorrect.
//
// A quiz with zero questions scores 0. A submission whose length does not
// match the question count, or a question with no options, is rejected
// with ErrInvalidContent.
func ScoreQuiz(questions []models.Question, answers []*int) (int, error) {
	if len(questions) == 0 {
		return 0, nil
	}
	if len(answers) != len(questions) {
		return 0, fmt.Errorf("%w: %d answers for %d questions", ErrInvalidContent, len(answers), len(questions))
	}

	correct := 0
	for i, q := range questions {
		options, err := q.DecodeOptions()
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrInvalidContent, err)
		}
		if len(options) == 0 {
			return 0, fmt.Errorf("%w: question %d has no options", ErrInvalidContent, q.ID)
		}
		if isCorrectChoice(answers[i], optionFlags(options)) {
			correct++
		}
	}

	return roundScore(correct, len(questions)), nil
}

// ScoreScenario scores a scenario game: one selected option per step.
func ScoreScenario(cfg *models.ScenarioConfig, answers []*int) (int, error) {
	if len(cfg.Scenarios) == 0 {
		return 0, nil
	}
	if len(answers) != len(cfg.Scenarios) {
		return 0, fmt.Errorf("%w: %d answers for %d scenarios", ErrInvalidContent, len(answers), len(cfg.Scenarios))
	}

	correct := 0
	for i, sc := range cfg.Scenarios {
		if len(sc.Options) == 0 {
			return 0, fmt.Errorf("%w: scenario %d has no options", ErrInvalidContent, i+1)
		}
		flags := make([]bool, len(sc.Options))
		for j, opt := range sc.Options {
			flags[j] = opt.IsCorrect
		}
		if isCorrectChoice(answers[i], flags) {
			correct++
		}
	}

	return roundScore(correct, len(cfg.Scenarios)), nil
}

func optionFlags(options []models.QuestionOption) []bool {
	flags := make([]bool, len(options))
	for i, opt := range options {
		flags[i] = opt.IsCorrect
	}
	return flags
}

func isCorrectChoice(answer *int, flags []bool) bool {
	if answer == nil || *answer < 0 || *answer >= len(flags) {
		return false
	}
	return flags[*answer]
}

func roundScore(correct, total int) int {
	return int(math.Round(float64(correct) / float64(total) * 100))
}
