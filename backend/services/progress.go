package services

import (
	"errors"
	"fmt"
	"samvidhan-sarathi/backend/models"
	"time"

	"gorm.io/gorm"
)

type ProgressService struct {
	DB *gorm.DB
}

func NewProgressService(db *gorm.DB) *ProgressService {
	return &ProgressService{DB: db}
}

// RecordActivity durably records the outcome of one learning activity.
// There is one authoritative record per (user, content): a repeat
// completion overwrites score, completed flag and timestamp. No retry on
// persistence failure; the error is surfaced to the caller.
func (s *ProgressService) RecordActivity(userID, topicID, contentID uint, activityType string, score int, completed bool) (*models.Progress, error) {
	var content models.Content
	if err := s.DB.First(&content, contentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: content %d", ErrNotFound, contentID)
		}
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	if content.TopicID != topicID {
		return nil, fmt.Errorf("%w: content %d belongs to topic %d, not %d",
			ErrInvalidReference, contentID, content.TopicID, topicID)
	}

	var progress models.Progress
	err := s.DB.Where("user_id = ? AND content_id = ?", userID, contentID).First(&progress).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %v", ErrStorage, err)
		}
		progress = models.Progress{
			UserID:    userID,
			ContentID: contentID,
			TopicID:   topicID,
		}
	}

	progress.ActivityType = activityType
	progress.Score = score
	progress.Completed = completed
	progress.CompletedAt = time.Now()

	if err := s.DB.Save(&progress).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	return &progress, nil
}
