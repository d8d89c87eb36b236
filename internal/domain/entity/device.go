package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Supported device platforms.
const (
	PlatformIOS     = "ios"
	PlatformAndroid = "android"
	PlatformWeb     = "web"
)

// MaxDevicesPerUser caps the active push targets of one account.
const MaxDevicesPerUser = 10

var platforms = []string{PlatformIOS, PlatformAndroid, PlatformWeb}

// ValidPlatform reports whether p is a platform pushes can be sent to.
func ValidPlatform(p string) bool {
	return slices.Contains(platforms, p)
}

// UserDevice is a device registered by a user to receive push notifications.
type UserDevice struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	FCMToken   string    `json:"-"`         // Firebase Cloud Messaging registration token.
	DeviceID   string    `json:"device_id"` // Client-side device identifier.
	Platform   string    `json:"platform"`
	AppVersion string    `json:"app_version,omitempty"`
	IsActive   bool      `json:"is_active"`
	LastSeenAt time.Time `json:"last_seen_at"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// LeastRecentlySeen returns the device that checked in longest ago, or nil.
func LeastRecentlySeen(devices []*UserDevice) *UserDevice {
	var oldest *UserDevice
	for _, device := range devices {
		if oldest == nil || device.LastSeenAt.Before(oldest.LastSeenAt) {
			oldest = device
		}
	}

	return oldest
}
