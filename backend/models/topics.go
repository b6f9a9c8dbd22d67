package models

import "gorm.io/gorm"

// Topic is one unit of the constitutional syllabus, e.g. "Part III: Fundamental Rights".
type Topic struct {
	gorm.Model
	CustomID    string `gorm:"uniqueIndex"` // stable id used by the client map, e.g. "l0-1"
	Title       string `gorm:"not null"`
	Description string
	Category    string `gorm:"default:other"` // fundamental-rights, directive-principles, judiciary, legislature, executive, amendments, other
	Difficulty  string `gorm:"default:beginner"` // beginner, intermediate, advanced
	Country     string `gorm:"default:India"`
	Order       int    `gorm:"column:display_order"`
	IsActive    bool   `gorm:"default:true"`
	Contents    []Content
}
