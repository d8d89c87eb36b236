package impl

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/repository"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// snapshotConcurrency bounds the sellers aggregated at once by the daily job.
const snapshotConcurrency = 4

type metricsService struct {
	metricRepo repository.SellerMetricRepository
	logger     *slog.Logger
}

// NewMetricsService creates the seller metrics usecase.
func NewMetricsService(metricRepo repository.SellerMetricRepository, logger *slog.Logger) usecase.MetricsUsecase {
	return &metricsService{
		metricRepo: metricRepo,
		logger:     logger,
	}
}

func (srv *metricsService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *metricsService) SellerStats(ctx context.Context, sellerID uuid.UUID) (*entity.SellerStats, error) {
	stats, err := srv.metricRepo.Stats(ctx, sellerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to compute seller stats")
	}

	return stats, nil
}

// SnapshotDailyMetrics writes one row per active seller for day. Rows are upserted,
// so running the job twice for the same day leaves a single snapshot per seller.
func (srv *metricsService) SnapshotDailyMetrics(ctx context.Context, day time.Time) (int, error) {
	sellerIDs, err := srv.metricRepo.ListSellerIDs(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to list sellers")
	}

	var written atomic.Int64

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(snapshotConcurrency)

	for _, sellerID := range sellerIDs {
		group.Go(func() error {
			stats, err := srv.metricRepo.Stats(groupCtx, sellerID)
			if err != nil {
				return errors.Wrapf(err, "failed to compute stats of seller %s", sellerID)
			}

			if err := srv.metricRepo.Upsert(groupCtx, entity.NewSellerMetric(stats, day)); err != nil {
				return errors.Wrapf(err, "failed to store snapshot of seller %s", sellerID)
			}
			written.Add(1)

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		srv.log(ctx).Error("Metrics snapshot incomplete", slog.Int64("written", written.Load()), slog.Any("error", err))

		return int(written.Load()), err
	}
	srv.log(ctx).Info("Metrics snapshot written", slog.Time("day", entity.TruncateDay(day)), slog.Int("sellers", len(sellerIDs)))

	return int(written.Load()), nil
}

// MetricsHistory returns the seller's snapshots between two days, both included.
func (srv *metricsService) MetricsHistory(ctx context.Context, sellerID uuid.UUID, from, to time.Time) ([]*entity.SellerMetric, error) {
	from, to = entity.TruncateDay(from), entity.TruncateDay(to)
	if to.Before(from) {
		return nil, validationError("from must not be after to")
	}

	history, err := srv.metricRepo.History(ctx, sellerID, from, to)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load metrics history")
	}

	return history, nil
}
