package tests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"samvidhan-sarathi/backend/models"
	"samvidhan-sarathi/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func doJSON(t *testing.T, method, path, token string, payload interface{}) *http.Response {
	t.Helper()
	var body io.Reader
	if payload != nil {
		jsonData, err := json.Marshal(payload)
		assert.NoError(t, err)
		body = bytes.NewBuffer(jsonData)
	}
	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	assert.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return result
}

func newAuthedUser(t *testing.T, username string) (models.User, string) {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	assert.NoError(t, err)
	user := models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: string(hashed),
		Name:         username,
		Role:         "user",
	}
	assert.NoError(t, db.Create(&user).Error)
	token, err := utils.GenerateJWTToken(user.ID, user.Role, cfg)
	assert.NoError(t, err)
	return user, token
}

func findContentByTitle(t *testing.T, title string) models.Content {
	t.Helper()
	var content models.Content
	assert.NoError(t, db.Where("title = ?", title).First(&content).Error)
	return content
}

func testGetTopics(t *testing.T) {
	resp := doJSON(t, "GET", "/api/content/topics/India", userToken, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var topics []map[string]interface{}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&topics))
	assert.NotEmpty(t, topics)

	// Ordered by display order
	prev := -1.0
	for _, topic := range topics {
		order := topic["order"].(float64)
		assert.GreaterOrEqual(t, order, prev)
		prev = order
	}
}

func testGetContentHidesAnswers(t *testing.T) {
	quiz := findContentByTitle(t, "Fundamental Rights Quiz")

	resp := doJSON(t, "GET", fmt.Sprintf("/api/content/content/%d", quiz.ID), userToken, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)
	assert.NotContains(t, string(raw), "isCorrect")

	var result map[string]interface{}
	assert.NoError(t, json.Unmarshal(raw, &result))
	questions, ok := result["questions"].([]interface{})
	assert.True(t, ok)
	assert.Len(t, questions, 3)
}

func testSubmitQuiz(t *testing.T) {
	quiz := findContentByTitle(t, "Fundamental Rights Quiz")
	path := fmt.Sprintf("/api/content/content/%d/submit", quiz.ID)

	// Two of three correct (correct option is index 2 for all questions),
	// third left unanswered.
	resp := doJSON(t, "POST", path, userToken, map[string]interface{}{
		"answers": []interface{}{2, 2, nil},
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	result := decodeBody(t, resp)
	assert.Equal(t, float64(67), result["score"])
	assert.Equal(t, false, result["passed"])

	// Retake with all correct overwrites the record
	resp = doJSON(t, "POST", path, userToken, map[string]interface{}{
		"answers": []interface{}{2, 2, 2},
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	result = decodeBody(t, resp)
	assert.Equal(t, float64(100), result["score"])
	assert.Equal(t, true, result["passed"])

	var count int64
	db.Model(&models.Progress{}).
		Where("user_id = ? AND content_id = ?", testUser.ID, quiz.ID).
		Count(&count)
	assert.Equal(t, int64(1), count)

	var progress models.Progress
	db.Where("user_id = ? AND content_id = ?", testUser.ID, quiz.ID).First(&progress)
	assert.Equal(t, 100, progress.Score)
	assert.True(t, progress.Completed)

	// Wrong submission shape is rejected
	resp = doJSON(t, "POST", path, userToken, map[string]interface{}{
		"answers": []interface{}{2},
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func testTrackUpsert(t *testing.T) {
	lesson := findContentByTitle(t, "Understanding the Preamble")

	track := map[string]interface{}{
		"topicId":   lesson.TopicID,
		"contentId": lesson.ID,
		"type":      "lesson",
		"score":     0,
		"completed": false,
	}
	resp := doJSON(t, "POST", "/api/content/track", userToken, track)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	track["completed"] = true
	resp = doJSON(t, "POST", "/api/content/track", userToken, track)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var count int64
	db.Model(&models.Progress{}).
		Where("user_id = ? AND content_id = ?", testUser.ID, lesson.ID).
		Count(&count)
	assert.Equal(t, int64(1), count)

	var progress models.Progress
	db.Where("user_id = ? AND content_id = ?", testUser.ID, lesson.ID).First(&progress)
	assert.True(t, progress.Completed)

	// Mismatched topic reference is rejected
	badTrack := map[string]interface{}{
		"topicId":   lesson.TopicID + 9999,
		"contentId": lesson.ID,
		"type":      "lesson",
		"completed": true,
	}
	resp = doJSON(t, "POST", "/api/content/track", userToken, badTrack)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func testSearch(t *testing.T) {
	resp := doJSON(t, "GET", "/api/content/search?query=Preamble", userToken, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	result := decodeBody(t, resp)
	topics, ok := result["topics"].([]interface{})
	assert.True(t, ok)
	assert.NotEmpty(t, topics)

	resp = doJSON(t, "GET", "/api/content/search", userToken, nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
