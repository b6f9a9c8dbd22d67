package models

import (
	"time"

	"gorm.io/gorm"
)

// Progress records one user's outcome on one content item. The composite
// unique index keeps a single authoritative record per (user, content);
// re-completion overwrites it, latest attempt wins.
type Progress struct {
	gorm.Model
	UserID       uint `gorm:"not null;uniqueIndex:idx_user_content"`
	ContentID    uint `gorm:"not null;uniqueIndex:idx_user_content"`
	TopicID      uint `gorm:"index;not null"`
	ActivityType string
	Score        int `gorm:"check:score>=0 AND score<=100"`
	Completed    bool
	CompletedAt  time.Time
}
