package repository

import (
	"context"
	"time"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// SellerMetricRepository computes and stores seller aggregates.
type SellerMetricRepository interface {
	// Stats aggregates orders, reviews and products of the seller at call time.
	// Cancelled orders do not count towards sales.
	Stats(ctx context.Context, sellerID uuid.UUID) (*entity.SellerStats, error)

	// ListSellerIDs returns every active seller.
	ListSellerIDs(ctx context.Context) ([]uuid.UUID, error)

	// Upsert stores the snapshot, replacing the existing row for the same seller and day.
	Upsert(ctx context.Context, metric *entity.SellerMetric) error

	// History returns the snapshots of a seller with from <= day <= to, oldest first.
	History(ctx context.Context, sellerID uuid.UUID, from, to time.Time) ([]*entity.SellerMetric, error)
}
