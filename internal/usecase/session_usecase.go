package usecase

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// SessionUsecase manages the signed-in sessions of users.
type SessionUsecase interface {
	// ActiveSessionCount returns the number of unexpired sessions of a user.
	ActiveSessionCount(ctx context.Context, userID uuid.UUID) (int, error)
	// ListSessions returns the unexpired sessions of a user, most recently used first.
	ListSessions(ctx context.Context, userID uuid.UUID) ([]*entity.Session, error)
	// RevokeSession ends one session of the user.
	RevokeSession(ctx context.Context, userID, sessionID uuid.UUID) error
	// RevokeAllSessions ends every session of the user.
	RevokeAllSessions(ctx context.Context, userID uuid.UUID) error
	// CleanupExpiredSessions deletes expired refresh tokens and returns how many were removed.
	CleanupExpiredSessions(ctx context.Context) (int64, error)
}
