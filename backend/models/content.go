package models

import (
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Content types
const (
	ContentTypeLesson  = "lesson"
	ContentTypeArticle = "article"
	ContentTypeVideo   = "video"
	ContentTypeQuiz    = "quiz"
	ContentTypeGame    = "game"
)

// Game config types
const (
	GameTypeQuiz     = "quiz"
	GameTypeMatching = "matching"
	GameTypeScenario = "scenario"
	GameTypeTimeline = "timeline"
	GameTypeSpiral   = "spiral"
)

// Content is one learning item within a Topic.
type Content struct {
	gorm.Model
	TopicID       uint   `gorm:"index;not null"`
	Title         string `gorm:"not null"`
	Type          string `gorm:"not null"` // lesson, article, video, quiz, game
	Body          string
	EstimatedTime int // minutes
	Points        int
	Order         int  `gorm:"column:display_order"`
	IsActive      bool `gorm:"default:true"`
	GameConfig    string // JSON tagged union, only for type=game
	Questions     []Question
}

// Question belongs to a quiz-type Content. Options are stored as a JSON
// array of {text, isCorrect}; exactly one option is marked correct.
type Question struct {
	gorm.Model
	ContentID     uint   `gorm:"index;not null"`
	Text          string `gorm:"not null"`
	Options       string `gorm:"not null"`
	SequenceOrder int
}

type QuestionOption struct {
	Text      string `json:"text"`
	IsCorrect bool   `json:"isCorrect"`
}

func (q *Question) DecodeOptions() ([]QuestionOption, error) {
	var options []QuestionOption
	if err := json.Unmarshal([]byte(q.Options), &options); err != nil {
		return nil, fmt.Errorf("question %d: malformed options: %w", q.ID, err)
	}
	return options, nil
}

// GameConfig is the tagged union describing which interactive game a
// content item renders and its data.
type GameConfig struct {
	Type   string          `json:"type"`
	Config json.RawMessage `json:"config"`
}

type MatchingPair struct {
	Term       string `json:"term"`
	Definition string `json:"definition"`
}

type MatchingConfig struct {
	Pairs []MatchingPair `json:"pairs"`
}

type TimelineEvent struct {
	Year    int    `json:"year"`
	Event   string `json:"event"`
	Details string `json:"details"`
}

type TimelineConfig struct {
	Events []TimelineEvent `json:"events"`
}

type ScenarioOption struct {
	Text      string `json:"text"`
	IsCorrect bool   `json:"isCorrect"`
	Feedback  string `json:"feedback"`
}

type Scenario struct {
	Situation string           `json:"situation"`
	Question  string           `json:"question"`
	Hint      string           `json:"hint"`
	Options   []ScenarioOption `json:"options"`
}

type ScenarioConfig struct {
	Scenarios []Scenario `json:"scenarios"`
}

type SpiralLevel struct {
	Title string   `json:"title"`
	Color string   `json:"color"`
	Items []string `json:"items"`
}

type SpiralConfig struct {
	CenterTitle string        `json:"centerTitle"`
	Levels      []SpiralLevel `json:"levels"`
}

// DecodeGameConfig parses the stored game config of a game-type content item.
func (c *Content) DecodeGameConfig() (*GameConfig, error) {
	if c.Type != ContentTypeGame {
		return nil, errors.New("content is not a game")
	}
	var cfg GameConfig
	if err := json.Unmarshal([]byte(c.GameConfig), &cfg); err != nil {
		return nil, fmt.Errorf("content %d: malformed game config: %w", c.ID, err)
	}
	switch cfg.Type {
	case GameTypeQuiz, GameTypeMatching, GameTypeScenario, GameTypeTimeline, GameTypeSpiral:
		return &cfg, nil
	default:
		return nil, fmt.Errorf("content %d: unknown game type %q", c.ID, cfg.Type)
	}
}

// DecodeScenarioConfig parses the config of a scenario game.
func (c *Content) DecodeScenarioConfig() (*ScenarioConfig, error) {
	cfg, err := c.DecodeGameConfig()
	if err != nil {
		return nil, err
	}
	if cfg.Type != GameTypeScenario {
		return nil, fmt.Errorf("content %d: game type is %q, not scenario", c.ID, cfg.Type)
	}
	var sc ScenarioConfig
	if err := json.Unmarshal(cfg.Config, &sc); err != nil {
		return nil, fmt.Errorf("content %d: malformed scenario config: %w", c.ID, err)
	}
	return &sc, nil
}
