package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"marketplace/config"
	"marketplace/internal/domain/repository"
	mockRepo "marketplace/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(maxActiveSessions int) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:        12,
			MaxActiveSessions: maxActiveSessions,
		},
		Storage: &config.StorageConfig{
			MaxImageBytes: 1 << 20,
		},
		Coupon: &config.CouponConfig{
			ExpiringWindow: 7 * 24 * time.Hour,
		},
	}
}

// fixedClock returns a clock frozen at at.
func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

// expectTx makes txManager run the transaction body against factory.
func expectTx(txManager *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) *mockRepo.MockTransactionManager_Execute_Call {
	return txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}
