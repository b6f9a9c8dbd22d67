package tests

import (
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func testDashboardQuizScore(t *testing.T) {
	_, token := newAuthedUser(t, "quizscorer")

	quiz := findContentByTitle(t, "Fundamental Rights Quiz")
	resp := doJSON(t, "POST", "/api/content/track", token, map[string]interface{}{
		"topicId":   quiz.TopicID,
		"contentId": quiz.ID,
		"type":      "quiz",
		"score":     85,
		"completed": true,
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doJSON(t, "GET", "/api/users/dashboard", token, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	result := decodeBody(t, resp)
	stats, ok := result["stats"].(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, float64(85), stats["averageQuizScore"])

	recent, ok := result["recentActivities"].([]interface{})
	assert.True(t, ok)
	assert.Len(t, recent, 1)
	activity := recent[0].(map[string]interface{})
	assert.Equal(t, "quiz", activity["activityType"])
	assert.Equal(t, float64(85), activity["score"])
}

func testDashboardTopicCompletion(t *testing.T) {
	admin := adminToken(t)

	// Topic with five active lessons, three of which get completed
	resp := doJSON(t, "POST", "/api/admin/topics", admin, map[string]interface{}{
		"customId":   "t-completion",
		"title":      "Completion Topic",
		"category":   "other",
		"difficulty": "beginner",
		"country":    "India",
		"order":      99,
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	created := decodeBody(t, resp)
	data := created["data"].(map[string]interface{})
	topicID := uint(data["ID"].(float64))

	contentIDs := make([]uint, 0, 5)
	for i := 1; i <= 5; i++ {
		resp = doJSON(t, "POST", "/api/admin/content", admin, map[string]interface{}{
			"topicId":       topicID,
			"title":         fmt.Sprintf("Completion Lesson %d", i),
			"type":          "lesson",
			"body":          "lesson body",
			"estimatedTime": 5,
			"points":        10,
			"order":         i,
		})
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
		body := decodeBody(t, resp)
		item := body["data"].(map[string]interface{})
		contentIDs = append(contentIDs, uint(item["ID"].(float64)))
	}

	_, token := newAuthedUser(t, "completer")
	for i := 0; i < 3; i++ {
		resp = doJSON(t, "POST", "/api/content/track", token, map[string]interface{}{
			"topicId":   topicID,
			"contentId": contentIDs[i],
			"type":      "lesson",
			"completed": true,
		})
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	}

	resp = doJSON(t, "GET", "/api/users/dashboard", token, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	result := decodeBody(t, resp)

	progress, ok := result["progress"].([]interface{})
	assert.True(t, ok)
	assert.Len(t, progress, 1)
	entry := progress[0].(map[string]interface{})
	assert.Equal(t, float64(60), entry["completionPercentage"])
	assert.Equal(t, float64(3), entry["completedItems"])
	assert.Equal(t, float64(5), entry["totalItems"])

	stats := result["stats"].(map[string]interface{})
	assert.Equal(t, float64(60), stats["overallProgress"])
	assert.Equal(t, float64(0), stats["completedTopics"])
}

func testDashboardIdempotent(t *testing.T) {
	read := func() string {
		req := httptest.NewRequest("GET", "/api/users/dashboard", nil)
		req.Header.Set("Authorization", "Bearer "+userToken)
		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		raw, err := io.ReadAll(resp.Body)
		assert.NoError(t, err)
		return string(raw)
	}

	first := read()
	second := read()
	assert.Equal(t, first, second)
}
