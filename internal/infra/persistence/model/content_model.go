package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BlogModel mirrors the 'blogs' table.
type BlogModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	AuthorID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	CategoryID  *uuid.UUID `gorm:"type:uuid"`
	Title       string     `gorm:"type:varchar(250);not null"`
	Summary     string     `gorm:"type:text"`
	Content     string     `gorm:"type:text;not null"`
	ImageKey    string     `gorm:"type:varchar(255)"`
	Published   bool       `gorm:"not null;default:false;index"`
	PublishedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (BlogModel) TableName() string {
	return "blogs"
}

// EventModel mirrors the 'events' table.
type EventModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrganizerID uuid.UUID `gorm:"type:uuid;not null;index"`
	Title       string    `gorm:"type:varchar(200);not null"`
	Description string    `gorm:"type:text"`
	Location    string    `gorm:"type:varchar(255)"`
	ImageKey    string    `gorm:"type:varchar(255)"`
	StartsAt    time.Time `gorm:"not null"`
	EndsAt      time.Time `gorm:"not null;index;check:ends_at > starts_at"`
	Active      bool      `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (EventModel) TableName() string {
	return "events"
}

// SellerMetricModel mirrors the 'seller_metrics' table; one snapshot per (seller, day).
type SellerMetricModel struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	SellerID        uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_seller_metrics_seller_day"`
	Day             time.Time       `gorm:"type:date;not null;uniqueIndex:idx_seller_metrics_seller_day"`
	TotalSales      decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	UnitsSold       int             `gorm:"not null"`
	CompletedOrders int             `gorm:"not null"`
	AverageRating   float64         `gorm:"type:numeric(3,2);not null"`
	ActiveProducts  int             `gorm:"not null"`
	CreatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (SellerMetricModel) TableName() string {
	return "seller_metrics"
}
