package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SellerStats is the live aggregate view of a seller's business.
type SellerStats struct {
	SellerID        uuid.UUID       `json:"seller_id"`
	TotalSales      decimal.Decimal `json:"total_sales"`
	UnitsSold       int             `json:"units_sold"`
	CompletedOrders int             `json:"completed_orders"`
	AverageRating   float64         `json:"average_rating"`
	ReviewCount     int             `json:"review_count"`
	ActiveProducts  int             `json:"active_products"`
}

// SellerMetric is a daily snapshot of SellerStats.
type SellerMetric struct {
	ID              uuid.UUID       `json:"id"`
	SellerID        uuid.UUID       `json:"seller_id"`
	Day             time.Time       `json:"day"` // Truncated to midnight UTC.
	TotalSales      decimal.Decimal `json:"total_sales"`
	UnitsSold       int             `json:"units_sold"`
	CompletedOrders int             `json:"completed_orders"`
	AverageRating   float64         `json:"average_rating"`
	ActiveProducts  int             `json:"active_products"`
	CreatedAt       time.Time       `json:"created_at"`
}

// NewSellerMetric snapshots stats for the given day.
func NewSellerMetric(stats *SellerStats, day time.Time) *SellerMetric {
	return &SellerMetric{
		SellerID:        stats.SellerID,
		Day:             TruncateDay(day),
		TotalSales:      stats.TotalSales,
		UnitsSold:       stats.UnitsSold,
		CompletedOrders: stats.CompletedOrders,
		AverageRating:   stats.AverageRating,
		ActiveProducts:  stats.ActiveProducts,
	}
}

// TruncateDay returns midnight UTC of t's day.
func TruncateDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
