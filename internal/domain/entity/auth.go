package entity

import (
	"time"

	"github.com/google/uuid"
)

// maxUserAgentLength bounds the client description stored with a session.
const maxUserAgentLength = 255

// RefreshToken is one signed-in session. Only the SHA-256 hash of the raw token is stored.
type RefreshToken struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	TokenHash  string
	UserAgent  string
	ClientIP   string
	ExpiresAt  time.Time
	LastUsedAt time.Time
	CreatedAt  time.Time
}

// Expired reports whether the session can no longer mint access tokens.
func (t *RefreshToken) Expired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}

// Session is what a user sees about one of their sign-ins.
type Session struct {
	ID         uuid.UUID `json:"id"`
	UserAgent  string    `json:"user_agent,omitempty"`
	ClientIP   string    `json:"client_ip,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	LastUsedAt time.Time `json:"last_used_at"`
	ExpiresAt  time.Time `json:"expires_at"`
}

// Session strips the token hash for display.
func (t *RefreshToken) Session() *Session {
	return &Session{
		ID:         t.ID,
		UserAgent:  t.UserAgent,
		ClientIP:   t.ClientIP,
		CreatedAt:  t.CreatedAt,
		LastUsedAt: t.LastUsedAt,
		ExpiresAt:  t.ExpiresAt,
	}
}

// TruncateUserAgent cuts a User-Agent header to what a session keeps.
func TruncateUserAgent(ua string) string {
	if len(ua) <= maxUserAgentLength {
		return ua
	}

	return ua[:maxUserAgentLength]
}
