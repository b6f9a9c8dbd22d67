package controllers

import (
	"encoding/json"
	"errors"
	"samvidhan-sarathi/backend/config"
	"samvidhan-sarathi/backend/models"
	"samvidhan-sarathi/backend/utils"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type AdminController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewAdminController(db *gorm.DB, cfg *config.Config) *AdminController {
	return &AdminController{DB: db, Cfg: cfg}
}

func (ac *AdminController) CreateTopic(c *fiber.Ctx) error {
	var input struct {
		CustomID    string `json:"customId"`
		Title       string `json:"title"`
		Description string `json:"description"`
		Category    string `json:"category"`
		Difficulty  string `json:"difficulty"`
		Country     string `json:"country"`
		Order       int    `json:"order"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.Title == "" {
		return utils.BadRequest(c, "Title is required")
	}

	topic := models.Topic{
		CustomID:    input.CustomID,
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		Difficulty:  input.Difficulty,
		Country:     input.Country,
		Order:       input.Order,
		IsActive:    true,
	}
	if topic.Category == "" {
		topic.Category = "other"
	}
	if topic.Country == "" {
		topic.Country = "India"
	}

	if err := ac.DB.Create(&topic).Error; err != nil {
		return utils.InternalServerError(c, "Could not create topic")
	}

	return utils.Created(c, topic)
}

func (ac *AdminController) CreateContent(c *fiber.Ctx) error {
	var input struct {
		TopicID       uint               `json:"topicId"`
		Title         string             `json:"title"`
		Type          string             `json:"type"`
		Body          string             `json:"body"`
		EstimatedTime int                `json:"estimatedTime"`
		Points        int                `json:"points"`
		Order         int                `json:"order"`
		GameConfig    *models.GameConfig `json:"gameConfig"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	switch input.Type {
	case models.ContentTypeLesson, models.ContentTypeArticle, models.ContentTypeVideo,
		models.ContentTypeQuiz, models.ContentTypeGame:
	default:
		return utils.BadRequest(c, "Invalid content type")
	}

	var topic models.Topic
	if err := ac.DB.First(&topic, input.TopicID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Topic not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	content := models.Content{
		TopicID:       input.TopicID,
		Title:         input.Title,
		Type:          input.Type,
		Body:          input.Body,
		EstimatedTime: input.EstimatedTime,
		Points:        input.Points,
		Order:         input.Order,
		IsActive:      true,
	}

	if input.Type == models.ContentTypeGame {
		if input.GameConfig == nil {
			return utils.BadRequest(c, "Game content requires a gameConfig")
		}
		raw, err := json.Marshal(input.GameConfig)
		if err != nil {
			return utils.InternalServerError(c, "Could not encode game config")
		}
		content.GameConfig = string(raw)
		if _, err := content.DecodeGameConfig(); err != nil {
			return utils.BadRequest(c, "Invalid game config: "+err.Error())
		}
	}

	if err := ac.DB.Create(&content).Error; err != nil {
		return utils.InternalServerError(c, "Could not create content")
	}

	return utils.Created(c, content)
}

func (ac *AdminController) AddQuestion(c *fiber.Ctx) error {
	contentID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid content ID")
	}

	var input struct {
		Text    string                  `json:"text"`
		Options []models.QuestionOption `json:"options"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	var content models.Content
	if err := ac.DB.First(&content, contentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Content not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}
	if content.Type != models.ContentTypeQuiz {
		return utils.BadRequest(c, "Questions can only be added to quiz content")
	}

	if len(input.Options) == 0 {
		return utils.BadRequest(c, "At least one option is required")
	}
	correctCount := 0
	for _, opt := range input.Options {
		if opt.IsCorrect {
			correctCount++
		}
	}
	if correctCount != 1 {
		return utils.BadRequest(c, "Exactly one option must be marked correct")
	}

	optionsJSON, err := marshalJSON(input.Options)
	if err != nil {
		return utils.InternalServerError(c, "Could not encode options")
	}

	var questionCount int64
	ac.DB.Model(&models.Question{}).Where("content_id = ?", contentID).Count(&questionCount)

	question := models.Question{
		ContentID:     uint(contentID),
		Text:          input.Text,
		Options:       optionsJSON,
		SequenceOrder: int(questionCount) + 1,
	}

	if err := ac.DB.Create(&question).Error; err != nil {
		return utils.InternalServerError(c, "Could not create question")
	}

	return utils.Created(c, question)
}

func (ac *AdminController) UpdateContent(c *fiber.Ctx) error {
	contentID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid content ID")
	}

	var input struct {
		Title         string `json:"title"`
		Body          string `json:"body"`
		EstimatedTime int    `json:"estimatedTime"`
		Points        int    `json:"points"`
		Order         int    `json:"order"`
		IsActive      *bool  `json:"isActive"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	var content models.Content
	if err := ac.DB.First(&content, contentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Content not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	if input.Title != "" {
		content.Title = input.Title
	}
	if input.Body != "" {
		content.Body = input.Body
	}
	if input.EstimatedTime > 0 {
		content.EstimatedTime = input.EstimatedTime
	}
	if input.Points > 0 {
		content.Points = input.Points
	}
	if input.Order != 0 {
		content.Order = input.Order
	}
	if input.IsActive != nil {
		content.IsActive = *input.IsActive
	}

	if err := ac.DB.Save(&content).Error; err != nil {
		return utils.InternalServerError(c, "Could not update content")
	}

	return utils.Success(c, fiber.StatusOK, content)
}
