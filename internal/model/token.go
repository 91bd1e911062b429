package model

import (
	"time"
)

// RefreshToken is a persisted long-lived token. Each login creates a new row,
// so multiple concurrent sessions per user are permitted. Rows are destroyed
// at logout or when the refresh flow detects expiry or invalidity.
type RefreshToken struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"not null;index"`
	Token     string    `gorm:"uniqueIndex;not null"`
	ExpiresAt time.Time `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (RefreshToken) TableName() string {
	return "refresh_tokens"
}
