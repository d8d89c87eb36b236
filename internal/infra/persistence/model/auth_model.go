package model

import (
	"time"

	"github.com/google/uuid"
)

// RefreshTokenModel maps the 'refresh_tokens' table, one row per session.
type RefreshTokenModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index:idx_refresh_tokens_user_created,priority:1"`
	TokenHash  string    `gorm:"type:char(64);uniqueIndex;not null"`
	UserAgent  string    `gorm:"type:varchar(255)"`
	ClientIP   string    `gorm:"type:varchar(45)"`
	ExpiresAt  time.Time `gorm:"not null;index"`
	LastUsedAt time.Time `gorm:"not null;default:now()"`
	CreatedAt  time.Time `gorm:"index:idx_refresh_tokens_user_created,priority:2"`
}

func (RefreshTokenModel) TableName() string {
	return "refresh_tokens"
}
