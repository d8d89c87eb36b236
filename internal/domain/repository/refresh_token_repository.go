package repository

import (
	"context"
	"time"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Session persistence errors.
var (
	ErrRefreshTokenNotFound = errors.New("refresh token not found")
	ErrRefreshTokenExpired  = errors.New("refresh token has expired")
)

// RefreshTokenRepository stores user sessions, one refresh token each.
type RefreshTokenRepository interface {
	CreateRefreshToken(ctx context.Context, token *entity.RefreshToken) error

	// FindRefreshTokenByHash retrieves an unexpired refresh token by its hash.
	FindRefreshTokenByHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error)

	// TouchRefreshToken records that the session was just used.
	TouchRefreshToken(ctx context.Context, id uuid.UUID, usedAt time.Time) error

	// ListActiveSessionsByUserID returns the unexpired sessions of a user, most recently used first.
	ListActiveSessionsByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.RefreshToken, error)

	DeleteRefreshTokenByHash(ctx context.Context, tokenHash string) error

	// DeleteSessionByID ends one session of the user. Sessions of other
	// users are reported as not found.
	DeleteSessionByID(ctx context.Context, userID, id uuid.UUID) error

	DeleteRefreshTokensByUserID(ctx context.Context, userID uuid.UUID) error

	// DeleteExpiredRefreshTokens removes expired sessions and reports how many were deleted.
	DeleteExpiredRefreshTokens(ctx context.Context) (int64, error)

	CountActiveSessionsByUserID(ctx context.Context, userID uuid.UUID) (int, error)

	// DeleteOldestSessionByUserID removes the oldest session of a user.
	DeleteOldestSessionByUserID(ctx context.Context, userID uuid.UUID) error
}
