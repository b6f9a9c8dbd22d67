package services

import (
	"fmt"
	"math"
	"samvidhan-sarathi/backend/models"
	"strings"
	"time"

	"gorm.io/gorm"
)

const recentActivityLimit = 10

type DashboardStats struct {
	OverallProgress  int `json:"overallProgress"`
	CompletedTopics  int `json:"completedTopics"`
	TotalTopics      int `json:"totalTopics"`
	AverageQuizScore int `json:"averageQuizScore"`
	TotalBadges      int `json:"totalBadges"`
}

type TopicProgress struct {
	TopicID              uint    `json:"topicId"`
	Title                string  `json:"title"`
	Category             string  `json:"category"`
	CompletedItems       int     `json:"completedItems"`
	TotalItems           int     `json:"totalItems"`
	CompletionPercentage float64 `json:"completionPercentage"`
}

type RecentActivity struct {
	ContentTitle string    `json:"contentTitle"`
	TopicTitle   string    `json:"topicTitle"`
	ActivityType string    `json:"activityType"`
	Score        int       `json:"score"`
	Completed    bool      `json:"completed"`
	Timestamp    time.Time `json:"timestamp"`
}

type Dashboard struct {
	Stats            DashboardStats   `json:"stats"`
	Progress         []TopicProgress  `json:"progress"`
	RecentActivities []RecentActivity `json:"recentActivities"`
}

type DashboardService struct {
	DB *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{DB: db}
}

// BuildDashboard computes summary statistics from the user's full
// progress set. It is a pure read: the same snapshot always yields the
// same dashboard.
func (s *DashboardService) BuildDashboard(userID uint) (*Dashboard, error) {
	var records []models.Progress
	if err := s.DB.Where("user_id = ?", userID).Order("completed_at DESC, id DESC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	var topics []models.Topic
	if err := s.DB.Where("is_active = ?", true).Order("display_order").Find(&topics).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	topicsByID := make(map[uint]models.Topic, len(topics))
	for _, t := range topics {
		topicsByID[t.ID] = t
	}

	completedByTopic := make(map[uint]int)
	for _, p := range records {
		if p.Completed {
			completedByTopic[p.TopicID]++
		}
	}

	// Per-topic completion, only for topics the user has touched.
	progress := make([]TopicProgress, 0)
	var percentageSum float64
	completedTopics := 0
	touched := make(map[uint]bool)
	for _, p := range records {
		touched[p.TopicID] = true
	}
	for _, topic := range topics {
		if !touched[topic.ID] {
			continue
		}
		var totalItems int64
		if err := s.DB.Model(&models.Content{}).
			Where("topic_id = ? AND is_active = ?", topic.ID, true).
			Count(&totalItems).Error; err != nil {
			return nil, fmt.Errorf("%w: %v", ErrStorage, err)
		}

		percentage := 0.0
		if totalItems > 0 {
			percentage = float64(completedByTopic[topic.ID]) / float64(totalItems) * 100
		}
		if percentage == 100 {
			completedTopics++
		}
		percentageSum += percentage

		progress = append(progress, TopicProgress{
			TopicID:              topic.ID,
			Title:                topic.Title,
			Category:             topic.Category,
			CompletedItems:       completedByTopic[topic.ID],
			TotalItems:           int(totalItems),
			CompletionPercentage: percentage,
		})
	}

	overall := 0
	if len(progress) > 0 {
		overall = int(math.Round(percentageSum / float64(len(progress))))
	}

	// Average score across quiz activities, 0 for the empty set.
	quizSum, quizCount := 0, 0
	for _, p := range records {
		if p.ActivityType == models.ContentTypeQuiz {
			quizSum += p.Score
			quizCount++
		}
	}
	avgQuizScore := 0
	if quizCount > 0 {
		avgQuizScore = int(math.Round(float64(quizSum) / float64(quizCount)))
	}

	totalBadges, err := s.countEarnedBadges(records, topicsByID, progress)
	if err != nil {
		return nil, err
	}

	recent := make([]RecentActivity, 0, recentActivityLimit)
	for _, p := range records {
		if len(recent) == recentActivityLimit {
			break
		}
		var content models.Content
		if err := s.DB.First(&content, p.ContentID).Error; err != nil {
			continue
		}
		recent = append(recent, RecentActivity{
			ContentTitle: content.Title,
			TopicTitle:   topicsByID[p.TopicID].Title,
			ActivityType: p.ActivityType,
			Score:        p.Score,
			Completed:    p.Completed,
			Timestamp:    p.CompletedAt,
		})
	}

	return &Dashboard{
		Stats: DashboardStats{
			OverallProgress:  overall,
			CompletedTopics:  completedTopics,
			TotalTopics:      len(topics),
			AverageQuizScore: avgQuizScore,
			TotalBadges:      totalBadges,
		},
		Progress:         progress,
		RecentActivities: recent,
	}, nil
}

func (s *DashboardService) countEarnedBadges(records []models.Progress, topicsByID map[uint]models.Topic, progress []TopicProgress) (int, error) {
	stats := buildAggregateStats(records, topicsByID, progress)

	var badges []models.Badge
	if err := s.DB.Find(&badges).Error; err != nil {
		return 0, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	earned := 0
	for _, badge := range badges {
		req, err := badge.DecodeRequirements()
		if err != nil {
			// Data-quality defect in a badge rule; skip it rather than
			// fail the whole dashboard.
			continue
		}
		if MeetsRequirements(req, stats) {
			earned++
		}
	}
	return earned, nil
}

func buildAggregateStats(records []models.Progress, topicsByID map[uint]models.Topic, progress []TopicProgress) AggregateStats {
	stats := AggregateStats{}
	for _, p := range records {
		if !p.Completed {
			continue
		}
		stats.ActivitiesCompleted++
		switch p.ActivityType {
		case models.ContentTypeQuiz:
			topic := topicsByID[p.TopicID]
			stats.QuizResults = append(stats.QuizResults, QuizResult{
				Score:    p.Score,
				TopicKey: strings.ToLower(topic.CustomID + " " + topic.Title),
			})
		case models.GameTypeScenario:
			stats.ScenariosCompleted++
		}
	}
	for _, tp := range progress {
		if tp.CompletionPercentage > stats.MaxTopicCompletion {
			stats.MaxTopicCompletion = tp.CompletionPercentage
		}
	}
	return stats
}
