package usecase

import (
	"context"
	"time"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// MetricsUsecase exposes seller aggregates and their daily snapshots.
type MetricsUsecase interface {
	// SellerStats recomputes the seller's aggregates at call time.
	SellerStats(ctx context.Context, sellerID uuid.UUID) (*entity.SellerStats, error)

	// SnapshotDailyMetrics stores the stats of every active seller for day
	// and returns how many snapshots were written.
	SnapshotDailyMetrics(ctx context.Context, day time.Time) (int, error)

	MetricsHistory(ctx context.Context, sellerID uuid.UUID, from, to time.Time) ([]*entity.SellerMetric, error)
}
