package controllers

import (
	"encoding/json"
	"errors"
	"samvidhan-sarathi/backend/config"
	"samvidhan-sarathi/backend/models"
	"samvidhan-sarathi/backend/services"
	"samvidhan-sarathi/backend/utils"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ContentController struct {
	DB       *gorm.DB
	Cfg      *config.Config
	Progress *services.ProgressService
}

func NewContentController(db *gorm.DB, cfg *config.Config) *ContentController {
	return &ContentController{DB: db, Cfg: cfg, Progress: services.NewProgressService(db)}
}

// GetTopics returns the active topics for a country in display order.
func (cc *ContentController) GetTopics(c *fiber.Ctx) error {
	country := c.Params("country")

	var topics []models.Topic
	if err := cc.DB.Where("country = ? AND is_active = ?", country, true).
		Order("display_order").
		Find(&topics).Error; err != nil {
		return utils.InternalServerError(c, "Could not query topics")
	}

	result := make([]fiber.Map, 0, len(topics))
	for _, topic := range topics {
		result = append(result, fiber.Map{
			"id":          topic.ID,
			"customId":    topic.CustomID,
			"title":       topic.Title,
			"description": topic.Description,
			"category":    topic.Category,
			"difficulty":  topic.Difficulty,
			"country":     topic.Country,
			"order":       topic.Order,
		})
	}

	return c.JSON(result)
}

// GetContent returns one content item. Quiz questions are returned
// without the answer key; game configs are returned as stored.
func (cc *ContentController) GetContent(c *fiber.Ctx) error {
	contentID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid content ID")
	}

	var content models.Content
	if err := cc.DB.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("sequence_order")
	}).First(&content, contentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Content not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	payload := fiber.Map{
		"id":            content.ID,
		"topicId":       content.TopicID,
		"title":         content.Title,
		"type":          content.Type,
		"body":          content.Body,
		"estimatedTime": content.EstimatedTime,
		"points":        content.Points,
		"order":         content.Order,
	}

	switch content.Type {
	case models.ContentTypeQuiz:
		questions := make([]fiber.Map, 0, len(content.Questions))
		for _, q := range content.Questions {
			options, err := q.DecodeOptions()
			if err != nil {
				return utils.InternalServerError(c, "Malformed question options")
			}
			texts := make([]string, len(options))
			for i, opt := range options {
				texts[i] = opt.Text
			}
			questions = append(questions, fiber.Map{
				"id":      q.ID,
				"text":    q.Text,
				"options": texts,
				"order":   q.SequenceOrder,
			})
		}
		payload["questions"] = questions
	case models.ContentTypeGame:
		cfg, err := content.DecodeGameConfig()
		if err != nil {
			return utils.InternalServerError(c, "Malformed game config")
		}
		payload["gameConfig"] = cfg
	}

	return c.JSON(payload)
}

// SubmitAnswers scores a quiz or scenario-game submission server-side
// and records the outcome. Answers hold one selected option index per
// question, null for unanswered.
func (cc *ContentController) SubmitAnswers(c *fiber.Ctx) error {
	userID := utils.UserIDFromCtx(c)

	contentID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid content ID")
	}

	type SubmitInput struct {
		Answers []*int `json:"answers"`
	}
	var input SubmitInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	var content models.Content
	if err := cc.DB.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("sequence_order")
	}).First(&content, contentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Content not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	var score int
	activityType := content.Type

	switch content.Type {
	case models.ContentTypeQuiz:
		score, err = services.ScoreQuiz(content.Questions, input.Answers)
	case models.ContentTypeGame:
		var sc *models.ScenarioConfig
		sc, err = content.DecodeScenarioConfig()
		if err == nil {
			activityType = models.GameTypeScenario
			score, err = services.ScoreScenario(sc, input.Answers)
		}
	default:
		return utils.BadRequest(c, "Content is not scorable")
	}

	if err != nil {
		if errors.Is(err, services.ErrInvalidContent) {
			return utils.UnprocessableEntity(c, err.Error())
		}
		return utils.BadRequest(c, err.Error())
	}

	progress, err := cc.Progress.RecordActivity(userID, content.TopicID, content.ID, activityType, score, true)
	if err != nil {
		return mapProgressError(c, err)
	}

	return c.JSON(fiber.Map{
		"score":     score,
		"passed":    score >= services.PassThreshold,
		"completed": progress.Completed,
		"points":    content.Points,
	})
}

// TrackProgress records the outcome of an activity scored or completed
// client-side (lessons, videos, matching/timeline/spiral games).
func (cc *ContentController) TrackProgress(c *fiber.Ctx) error {
	userID := utils.UserIDFromCtx(c)

	type TrackInput struct {
		TopicID   uint   `json:"topicId"`
		ContentID uint   `json:"contentId"`
		Type      string `json:"type"`
		Score     int    `json:"score"`
		Completed bool   `json:"completed"`
	}
	var input TrackInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	if input.Score < 0 || input.Score > 100 {
		return utils.BadRequest(c, "Score must be between 0 and 100")
	}

	progress, err := cc.Progress.RecordActivity(userID, input.TopicID, input.ContentID, input.Type, input.Score, input.Completed)
	if err != nil {
		return mapProgressError(c, err)
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"contentId":   progress.ContentID,
		"score":       progress.Score,
		"completed":   progress.Completed,
		"completedAt": progress.CompletedAt,
	})
}

// Search matches topics and content by title and description.
func (cc *ContentController) Search(c *fiber.Ctx) error {
	query := c.Query("query")
	if query == "" {
		return utils.BadRequest(c, "Missing search query")
	}
	pattern := "%" + query + "%"

	var topics []models.Topic
	if err := cc.DB.Where("is_active = ?", true).
		Where("title ILIKE ? OR description ILIKE ?", pattern, pattern).
		Order("display_order").
		Find(&topics).Error; err != nil {
		return utils.InternalServerError(c, "Could not search topics")
	}

	var contents []models.Content
	if err := cc.DB.Where("is_active = ?", true).
		Where("title ILIKE ? OR body ILIKE ?", pattern, pattern).
		Order("display_order").
		Find(&contents).Error; err != nil {
		return utils.InternalServerError(c, "Could not search content")
	}

	topicResults := make([]fiber.Map, 0, len(topics))
	for _, t := range topics {
		topicResults = append(topicResults, fiber.Map{
			"id":       t.ID,
			"customId": t.CustomID,
			"title":    t.Title,
			"category": t.Category,
		})
	}
	contentResults := make([]fiber.Map, 0, len(contents))
	for _, ct := range contents {
		contentResults = append(contentResults, fiber.Map{
			"id":      ct.ID,
			"topicId": ct.TopicID,
			"title":   ct.Title,
			"type":    ct.Type,
		})
	}

	return c.JSON(fiber.Map{
		"topics":  topicResults,
		"content": contentResults,
	})
}

func mapProgressError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return utils.NotFound(c, err.Error())
	case errors.Is(err, services.ErrInvalidReference):
		return utils.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrInvalidContent):
		return utils.UnprocessableEntity(c, err.Error())
	default:
		return utils.InternalServerError(c, "Could not save progress")
	}
}

// marshalJSON is a helper for admin handlers storing JSON columns.
func marshalJSON(v interface{}) (string, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
