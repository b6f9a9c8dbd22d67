package controllers

import (
	"errors"
	"samvidhan-sarathi/backend/config"
	"samvidhan-sarathi/backend/models"
	"samvidhan-sarathi/backend/utils"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type TopicsController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewTopicsController(db *gorm.DB, cfg *config.Config) *TopicsController {
	return &TopicsController{DB: db, Cfg: cfg}
}

// GetTopicDetails returns a topic with its active content list and the
// caller's progress on each item. The id parameter accepts either the
// numeric id or the topic's customId (e.g. "l0-1").
func (tc *TopicsController) GetTopicDetails(c *fiber.Ctx) error {
	userID := utils.UserIDFromCtx(c)
	param := c.Params("id")

	var topic models.Topic
	var err error
	if topicID, convErr := strconv.Atoi(param); convErr == nil {
		err = tc.DB.First(&topic, topicID).Error
	} else {
		err = tc.DB.Where("custom_id = ?", param).First(&topic).Error
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Topic not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	var contents []models.Content
	if err := tc.DB.Where("topic_id = ? AND is_active = ?", topic.ID, true).
		Order("display_order").
		Find(&contents).Error; err != nil {
		return utils.InternalServerError(c, "Could not query content")
	}

	var records []models.Progress
	tc.DB.Where("user_id = ? AND topic_id = ?", userID, topic.ID).Find(&records)
	progressByContent := make(map[uint]models.Progress, len(records))
	for _, p := range records {
		progressByContent[p.ContentID] = p
	}

	items := make([]fiber.Map, 0, len(contents))
	completed := 0
	for _, ct := range contents {
		item := fiber.Map{
			"id":            ct.ID,
			"title":         ct.Title,
			"type":          ct.Type,
			"estimatedTime": ct.EstimatedTime,
			"points":        ct.Points,
			"order":         ct.Order,
		}
		if p, ok := progressByContent[ct.ID]; ok {
			item["score"] = p.Score
			item["completed"] = p.Completed
			if p.Completed {
				completed++
			}
		} else {
			item["completed"] = false
		}
		items = append(items, item)
	}

	completionPercentage := 0.0
	if len(contents) > 0 {
		completionPercentage = float64(completed) / float64(len(contents)) * 100
	}

	return c.JSON(fiber.Map{
		"topic": fiber.Map{
			"id":          topic.ID,
			"customId":    topic.CustomID,
			"title":       topic.Title,
			"description": topic.Description,
			"category":    topic.Category,
			"difficulty":  topic.Difficulty,
		},
		"content":              items,
		"completionPercentage": completionPercentage,
	})
}
