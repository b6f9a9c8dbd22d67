package models

import (
	"encoding/json"
	"fmt"

	"gorm.io/gorm"
)

// Badge is a declarative achievement rule. Requirements is a JSON predicate
// evaluated against a user's aggregate progress by the badge interpreter;
// no badge carries bespoke awarding code.
type Badge struct {
	gorm.Model
	Name         string `gorm:"uniqueIndex;not null"`
	Description  string
	Icon         string
	Category     string // mastery, achievement, progress
	Requirements string `gorm:"not null"`
	Points       int
	Rarity       string `gorm:"default:common"` // common, uncommon, rare, epic
}

// BadgeRequirements is the tagged predicate stored in Badge.Requirements.
// Zero-valued fields are unset; all set fields must hold for the badge to
// be earned.
type BadgeRequirements struct {
	MinQuizzes      int     `json:"minQuizzes,omitempty"`
	MinScore        int     `json:"minScore,omitempty"`
	MinScenarios    int     `json:"minScenarios,omitempty"`
	MinActivities   int     `json:"minActivities,omitempty"`
	PerfectScore    bool    `json:"perfectScore,omitempty"`
	TopicCompletion float64 `json:"topicCompletion,omitempty"`
	SpecificQuiz    string  `json:"specificQuiz,omitempty"`
}

func (b *Badge) DecodeRequirements() (BadgeRequirements, error) {
	var req BadgeRequirements
	if err := json.Unmarshal([]byte(b.Requirements), &req); err != nil {
		return req, fmt.Errorf("badge %q: malformed requirements: %w", b.Name, err)
	}
	return req, nil
}
