package postgres

import (
	"context"
	"time"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// sellerMetricRepository implements the repository.SellerMetricRepository interface.
type sellerMetricRepository struct {
	db *gorm.DB
}

// NewSellerMetricRepository is the constructor for sellerMetricRepository.
func NewSellerMetricRepository(db *gorm.DB) repository.SellerMetricRepository {
	return &sellerMetricRepository{db: db}
}

type salesRow struct {
	TotalSales      decimal.Decimal
	UnitsSold       int
	CompletedOrders int
}

// Stats aggregates the seller's sales, ratings and catalog at call time.
func (repo *sellerMetricRepository) Stats(ctx context.Context, sellerID uuid.UUID) (*entity.SellerStats, error) {
	db := repo.db.WithContext(ctx)

	var sales salesRow
	if err := db.Table("order_items AS oi").
		Select(`COALESCE(SUM(oi.unit_price * oi.quantity), 0) AS total_sales,
			COALESCE(SUM(oi.quantity), 0) AS units_sold,
			COUNT(DISTINCT o.id) FILTER (WHERE o.status = ?) AS completed_orders`,
			string(entity.OrderStatusDelivered)).
		Joins("JOIN orders AS o ON o.id = oi.order_id").
		Where("oi.seller_id = ? AND o.status <> ?", sellerID, string(entity.OrderStatusCancelled)).
		Scan(&sales).Error; err != nil {
		return nil, errors.Wrap(err, "failed to aggregate seller sales")
	}

	var rating ratingRow
	if err := db.Model(&model.ReviewModel{}).
		Select("COALESCE(AVG(rating), 0) AS average, COUNT(*) AS count").
		Where("seller_id = ?", sellerID).
		Scan(&rating).Error; err != nil {
		return nil, errors.Wrap(err, "failed to aggregate seller ratings")
	}

	var activeProducts int64
	if err := db.Model(&model.ProductModel{}).
		Where("seller_id = ? AND active = ?", sellerID, true).
		Count(&activeProducts).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count seller products")
	}

	return &entity.SellerStats{
		SellerID:        sellerID,
		TotalSales:      sales.TotalSales,
		UnitsSold:       sales.UnitsSold,
		CompletedOrders: sales.CompletedOrders,
		AverageRating:   rating.Average,
		ReviewCount:     rating.Count,
		ActiveProducts:  int(activeProducts),
	}, nil
}

// ListSellerIDs returns every active seller.
func (repo *sellerMetricRepository) ListSellerIDs(ctx context.Context) ([]uuid.UUID, error) {
	var sellerIDs []uuid.UUID

	if err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("role = ? AND active = ?", string(entity.RoleSeller), true).
		Order("id").
		Pluck("id", &sellerIDs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list sellers")
	}

	return sellerIDs, nil
}

// Upsert stores the snapshot, replacing the row of the same seller and day.
func (repo *sellerMetricRepository) Upsert(ctx context.Context, metric *entity.SellerMetric) error {
	metricM := fromSellerMetricDomain(metric)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "seller_id"}, {Name: "day"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"total_sales", "units_sold", "completed_orders", "average_rating", "active_products",
			}),
		}).
		Create(metricM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to store seller metric")
	}

	metric.ID = metricM.ID
	metric.CreatedAt = metricM.CreatedAt

	return nil
}

// History returns the seller's snapshots between from and to inclusive, oldest first.
func (repo *sellerMetricRepository) History(ctx context.Context, sellerID uuid.UUID, from, to time.Time) ([]*entity.SellerMetric, error) {
	var metricModels []*model.SellerMetricModel

	if err := repo.db.WithContext(ctx).
		Where("seller_id = ? AND day BETWEEN ? AND ?", sellerID, entity.TruncateDay(from), entity.TruncateDay(to)).
		Order("day ASC").
		Find(&metricModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load seller metric history")
	}

	metrics := make([]*entity.SellerMetric, 0, len(metricModels))
	for _, metricM := range metricModels {
		metrics = append(metrics, toSellerMetricDomain(metricM))
	}

	return metrics, nil
}

// --- Mapper Functions ---

func toSellerMetricDomain(data *model.SellerMetricModel) *entity.SellerMetric {
	if data == nil {
		return nil
	}

	return &entity.SellerMetric{
		ID:              data.ID,
		SellerID:        data.SellerID,
		Day:             data.Day,
		TotalSales:      data.TotalSales,
		UnitsSold:       data.UnitsSold,
		CompletedOrders: data.CompletedOrders,
		AverageRating:   data.AverageRating,
		ActiveProducts:  data.ActiveProducts,
		CreatedAt:       data.CreatedAt,
	}
}

func fromSellerMetricDomain(data *entity.SellerMetric) *model.SellerMetricModel {
	if data == nil {
		return nil
	}

	return &model.SellerMetricModel{
		ID:              data.ID,
		SellerID:        data.SellerID,
		Day:             entity.TruncateDay(data.Day),
		TotalSales:      data.TotalSales,
		UnitsSold:       data.UnitsSold,
		CompletedOrders: data.CompletedOrders,
		AverageRating:   data.AverageRating,
		ActiveProducts:  data.ActiveProducts,
		CreatedAt:       data.CreatedAt,
	}
}
