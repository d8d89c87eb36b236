package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserDeviceModel maps the 'user_devices' table of push targets.
type UserDeviceModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index:idx_user_devices_user_device,priority:1"`
	DeviceID   string    `gorm:"type:varchar(255);not null;index:idx_user_devices_user_device,priority:2"`
	FCMToken   string    `gorm:"type:varchar(4096);not null;index"`
	Platform   string    `gorm:"type:varchar(16);not null"`
	AppVersion string    `gorm:"type:varchar(32)"`
	IsActive   bool      `gorm:"not null;default:true"`
	LastSeenAt time.Time `gorm:"not null;default:now()"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}

func (UserDeviceModel) TableName() string {
	return "user_devices"
}
