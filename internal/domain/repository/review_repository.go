package repository

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for review and favorite persistence.
var (
	ErrReviewNotFound    = errors.New("review not found")
	ErrDuplicateReview   = errors.New("review already exists")
	ErrFavoriteNotFound  = errors.New("favorite not found")
	ErrDuplicateFavorite = errors.New("favorite already exists")
)

// ReviewRepository stores product reviews.
type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error)
	FindByProduct(ctx context.Context, productID uuid.UUID, limit, offset int) ([]*entity.Review, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// ProductRating averages the ratings of one product.
	ProductRating(ctx context.Context, productID uuid.UUID) (*entity.RatingSummary, error)

	// SellerRating averages the ratings of every product of a seller.
	SellerRating(ctx context.Context, sellerID uuid.UUID) (*entity.RatingSummary, error)
}

// FavoriteRepository stores favorites and stock alerts.
type FavoriteRepository interface {
	Create(ctx context.Context, favorite *entity.Favorite) error
	FindByUserAndProduct(ctx context.Context, userID, productID uuid.UUID) (*entity.Favorite, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Favorite, error)
	SetNotifyStock(ctx context.Context, id uuid.UUID, notify bool) error
	Delete(ctx context.Context, id uuid.UUID) error

	// FindStockWatchers returns the users with the stock alert on for the product.
	FindStockWatchers(ctx context.Context, productID uuid.UUID) ([]uuid.UUID, error)

	// MostFavorited ranks products by number of favorites, highest first.
	MostFavorited(ctx context.Context, limit int) ([]*entity.ProductPopularity, error)
}
