package impl

import (
	"context"
	"log/slog"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	txManager        repository.TransactionManager
	refreshTokenRepo repository.RefreshTokenRepository
	logger           *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(
	txManager repository.TransactionManager,
	refreshTokenRepo repository.RefreshTokenRepository,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionService{
		txManager:        txManager,
		refreshTokenRepo: refreshTokenRepo,
		logger:           logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ActiveSessionCount returns the number of unexpired refresh tokens held by the user.
func (srv *sessionService) ActiveSessionCount(ctx context.Context, userID uuid.UUID) (int, error) {
	count, err := srv.refreshTokenRepo.CountActiveSessionsByUserID(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to count active sessions", slog.Any("error", err), slog.Any("user_id", userID))

		return 0, errors.Wrap(err, "failed to count active sessions")
	}

	return count, nil
}

func (srv *sessionService) ListSessions(ctx context.Context, userID uuid.UUID) ([]*entity.Session, error) {
	tokens, err := srv.refreshTokenRepo.ListActiveSessionsByUserID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list sessions")
	}

	sessions := make([]*entity.Session, 0, len(tokens))
	for _, token := range tokens {
		sessions = append(sessions, token.Session())
	}

	return sessions, nil
}

// RevokeSession signs one device out. Unknown ids and sessions of other
// users both answer not found.
func (srv *sessionService) RevokeSession(ctx context.Context, userID, sessionID uuid.UUID) error {
	if err := srv.refreshTokenRepo.DeleteSessionByID(ctx, userID, sessionID); err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			return domainerrors.ErrSessionNotFound.WrapMessage("session not found")
		}

		return errors.Wrap(err, "failed to revoke session")
	}
	srv.log(ctx).Info("Revoked session", slog.Any("user_id", userID), slog.Any("session_id", sessionID))

	return nil
}

// RevokeAllSessions revokes all sessions for a user.
func (srv *sessionService) RevokeAllSessions(ctx context.Context, userID uuid.UUID) error {
	srv.log(ctx).Info("Revoking all sessions", slog.Any("user_id", userID))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		// 1. Verify user exists
		if _, err := repoFactory.UserRepo().FindByID(ctx, userID); err != nil {
			return translateRepoError(err, "failed to find user")
		}

		// 2. Delete all sessions
		if err := repoFactory.RefreshTokenRepo().DeleteRefreshTokensByUserID(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to delete all sessions")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to revoke all sessions", slog.Any("error", err), slog.Any("user_id", userID))

		return errors.Wrap(err, "failed to revoke all sessions")
	}
	srv.log(ctx).Info("Successfully revoked all sessions", slog.Any("user_id", userID))

	return nil
}

// CleanupExpiredSessions removes expired refresh tokens and reports how many were deleted.
func (srv *sessionService) CleanupExpiredSessions(ctx context.Context) (int64, error) {
	srv.log(ctx).Info("Cleaning up expired sessions")

	deleted, err := srv.refreshTokenRepo.DeleteExpiredRefreshTokens(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to cleanup expired sessions", slog.Any("error", err))

		return 0, errors.Wrap(err, "failed to cleanup expired sessions")
	}
	srv.log(ctx).Info("Successfully cleaned up expired sessions", slog.Int64("deleted", deleted))

	return deleted, nil
}
