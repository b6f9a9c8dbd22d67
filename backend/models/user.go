package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username         string `gorm:"unique;not null"`
	Email            string `gorm:"unique;not null"`
	PasswordHash     string `gorm:"not null"`
	Name             string
	PreferredCountry string `gorm:"default:India"`
	Role             string `gorm:"default:user"` // user, admin
	LastLogin        time.Time
}
