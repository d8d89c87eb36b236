package entity

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRefreshToken_Expired(t *testing.T) {
	expiresAt := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	token := &RefreshToken{ExpiresAt: expiresAt}

	assert.False(t, token.Expired(expiresAt.Add(-time.Second)))
	assert.True(t, token.Expired(expiresAt))
	assert.True(t, token.Expired(expiresAt.Add(time.Minute)))
}

func TestTruncateUserAgent(t *testing.T) {
	assert.Equal(t, "curl/8.5.0", TruncateUserAgent("curl/8.5.0"))
	assert.Len(t, TruncateUserAgent(strings.Repeat("a", 400)), maxUserAgentLength)
}

func TestValidPlatform(t *testing.T) {
	for _, platform := range []string{PlatformIOS, PlatformAndroid, PlatformWeb} {
		assert.True(t, ValidPlatform(platform), platform)
	}
	assert.False(t, ValidPlatform("IOS"))
	assert.False(t, ValidPlatform(""))
}

func TestLeastRecentlySeen(t *testing.T) {
	now := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)
	stale := &UserDevice{ID: uuid.New(), LastSeenAt: now.Add(-30 * 24 * time.Hour)}
	devices := []*UserDevice{
		{ID: uuid.New(), LastSeenAt: now},
		stale,
		{ID: uuid.New(), LastSeenAt: now.Add(-time.Hour)},
	}

	assert.Same(t, stale, LeastRecentlySeen(devices))
	assert.Nil(t, LeastRecentlySeen(nil))
}
