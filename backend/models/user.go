package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username     string       `gorm:"unique;not null"`
	PasswordHash string       `gorm:"not null"`
	Steps        []StepRecord `gorm:"constraint:OnDelete:CASCADE"`
}

// StepRecord is one user's step total for one calendar day. The composite
// unique index enforces at most one row per (user, date); submissions for an
// existing pair overwrite the count.
type StepRecord struct {
	gorm.Model
	UserID uint   `gorm:"not null;uniqueIndex:idx_steps_user_date"`
	Date   string `gorm:"size:10;not null;uniqueIndex:idx_steps_user_date"` // YYYY-MM-DD
	Steps  int    `gorm:"not null;default:0"`
}
