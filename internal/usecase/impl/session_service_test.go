package impl

import (
	"context"
	"testing"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	mockRepo "marketplace/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSessionService_ActiveSessionCount_Success(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	refreshRepo := mockRepo.NewMockRefreshTokenRepository(t)
	service := NewSessionService(txManager, refreshRepo, newDiscardLogger())

	ctx := context.Background()
	userID := uuid.New()
	refreshRepo.EXPECT().CountActiveSessionsByUserID(ctx, userID).Return(3, nil)

	count, err := service.ActiveSessionCount(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestSessionService_RevokeAllSessions_Success(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	service := NewSessionService(txManager, mockRepo.NewMockRefreshTokenRepository(t), newDiscardLogger())

	ctx := context.Background()
	userID := uuid.New()

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().RefreshTokenRepo().Return(mockRefreshRepo)

			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
			mockRefreshRepo.EXPECT().DeleteRefreshTokensByUserID(ctx, userID).Return(nil)

			require.NoError(t, fn(mockFactory))
		}).
		Return(nil)

	err := service.RevokeAllSessions(ctx, userID)

	require.NoError(t, err)
}

func TestSessionService_RevokeAllSessions_UserNotFound(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	service := NewSessionService(txManager, mockRepo.NewMockRefreshTokenRepository(t), newDiscardLogger())

	ctx := context.Background()
	userID := uuid.New()

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
	mockUserRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)
	expectTx(txManager, mockFactory)

	err := service.RevokeAllSessions(ctx, userID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestSessionService_CleanupExpiredSessions_ReturnsDeletedCount(t *testing.T) {
	refreshRepo := mockRepo.NewMockRefreshTokenRepository(t)
	service := NewSessionService(mockRepo.NewMockTransactionManager(t), refreshRepo, newDiscardLogger())

	ctx := context.Background()
	refreshRepo.EXPECT().DeleteExpiredRefreshTokens(ctx).Return(int64(7), nil)

	deleted, err := service.CleanupExpiredSessions(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(7), deleted)
}

func TestSessionService_CleanupExpiredSessions_Error(t *testing.T) {
	refreshRepo := mockRepo.NewMockRefreshTokenRepository(t)
	service := NewSessionService(mockRepo.NewMockTransactionManager(t), refreshRepo, newDiscardLogger())

	ctx := context.Background()
	refreshRepo.EXPECT().DeleteExpiredRefreshTokens(ctx).Return(int64(0), errors.New("database error"))

	deleted, err := service.CleanupExpiredSessions(ctx)

	require.Error(t, err)
	assert.Zero(t, deleted)
	assert.Contains(t, err.Error(), "failed to cleanup expired sessions")
}

func TestSessionService_ListSessions_HidesTokenHash(t *testing.T) {
	refreshRepo := mockRepo.NewMockRefreshTokenRepository(t)
	service := NewSessionService(mockRepo.NewMockTransactionManager(t), refreshRepo, newDiscardLogger())

	ctx := context.Background()
	userID := uuid.New()
	token := &entity.RefreshToken{
		ID:        uuid.New(),
		UserID:    userID,
		TokenHash: "secret-hash",
		UserAgent: "Mozilla/5.0",
		ClientIP:  "198.51.100.4",
	}
	refreshRepo.EXPECT().ListActiveSessionsByUserID(ctx, userID).Return([]*entity.RefreshToken{token}, nil)

	sessions, err := service.ListSessions(ctx, userID)

	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, token.ID, sessions[0].ID)
	assert.Equal(t, "Mozilla/5.0", sessions[0].UserAgent)
	assert.Equal(t, "198.51.100.4", sessions[0].ClientIP)
}

func TestSessionService_RevokeSession(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	sessionID := uuid.New()

	t.Run("revoked", func(t *testing.T) {
		refreshRepo := mockRepo.NewMockRefreshTokenRepository(t)
		service := NewSessionService(mockRepo.NewMockTransactionManager(t), refreshRepo, newDiscardLogger())

		refreshRepo.EXPECT().DeleteSessionByID(ctx, userID, sessionID).Return(nil)

		require.NoError(t, service.RevokeSession(ctx, userID, sessionID))
	})

	t.Run("not the caller's session", func(t *testing.T) {
		refreshRepo := mockRepo.NewMockRefreshTokenRepository(t)
		service := NewSessionService(mockRepo.NewMockTransactionManager(t), refreshRepo, newDiscardLogger())

		refreshRepo.EXPECT().DeleteSessionByID(ctx, userID, sessionID).Return(repository.ErrRefreshTokenNotFound)

		assert.ErrorIs(t, service.RevokeSession(ctx, userID, sessionID), domainerrors.ErrSessionNotFound)
	})

	t.Run("database failure", func(t *testing.T) {
		refreshRepo := mockRepo.NewMockRefreshTokenRepository(t)
		service := NewSessionService(mockRepo.NewMockTransactionManager(t), refreshRepo, newDiscardLogger())

		refreshRepo.EXPECT().DeleteSessionByID(ctx, userID, sessionID).Return(errors.New("connection reset"))

		err := service.RevokeSession(ctx, userID, sessionID)
		require.Error(t, err)
		assert.True(t, domainerrors.IsRetryable(err))
	})
}
