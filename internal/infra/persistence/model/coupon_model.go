package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CouponModel mirrors the 'coupons' table. Code is stored upper-cased.
type CouponModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Code        string          `gorm:"type:varchar(50);unique;not null"`
	Description string          `gorm:"type:varchar(500)"`
	Type        string          `gorm:"type:varchar(20);not null"`
	Value       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	StartsAt    time.Time       `gorm:"not null"`
	ExpiresAt   time.Time       `gorm:"not null;index"`
	MaxUses     int             `gorm:"not null"`
	UsesSoFar   int             `gorm:"not null;default:0;check:uses_so_far <= max_uses"`
	Active      bool            `gorm:"not null;default:true"`
	CreatorID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (CouponModel) TableName() string {
	return "coupons"
}
