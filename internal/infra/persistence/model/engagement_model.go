package model

import (
	"time"

	"github.com/google/uuid"
)

// ReviewModel mirrors the 'reviews' table; one review per (user, product).
type ReviewModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_user_product"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_user_product;index"`
	SellerID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Rating    int       `gorm:"not null;check:rating BETWEEN 1 AND 5"`
	Comment   string    `gorm:"type:text"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}

// FavoriteModel mirrors the 'favorites' table; one row per (user, product).
type FavoriteModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_favorites_user_product"`
	ProductID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_favorites_user_product;index"`
	NotifyStock bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (FavoriteModel) TableName() string {
	return "favorites"
}

// NotificationModel is the GORM-specific struct for the 'notifications' table.
type NotificationModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID        uuid.UUID  `gorm:"type:uuid;not null;index"`
	SenderID      *uuid.UUID `gorm:"type:uuid;index"`
	Type          string     `gorm:"type:varchar(20);not null"`
	Priority      string     `gorm:"type:varchar(10);not null;default:'normal'"`
	RecipientKind string     `gorm:"type:varchar(20);not null;default:'individual'"`
	Title         string     `gorm:"type:varchar(200);not null"`
	Message       string     `gorm:"type:text;not null"`
	Read          bool       `gorm:"not null;default:false"`
	ReadAt        *time.Time
	CreatedAt     time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}
