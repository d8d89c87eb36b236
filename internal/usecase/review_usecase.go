package usecase

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateReviewInput describes a product review.
type CreateReviewInput struct {
	ProductID uuid.UUID
	Rating    int
	Comment   string
}

// ReviewUsecase manages product reviews and ratings.
type ReviewUsecase interface {
	CreateReview(ctx context.Context, userID uuid.UUID, input *CreateReviewInput) (*entity.Review, error)
	ListProductReviews(ctx context.Context, productID uuid.UUID, limit, offset int) ([]*entity.Review, error)
	ProductRating(ctx context.Context, productID uuid.UUID) (*entity.RatingSummary, error)
	SellerRating(ctx context.Context, sellerID uuid.UUID) (*entity.RatingSummary, error)
	// DeleteReview removes a review written by the user.
	DeleteReview(ctx context.Context, userID, reviewID uuid.UUID) error
}

// FavoriteUsecase manages favorites and restock alerts.
type FavoriteUsecase interface {
	AddFavorite(ctx context.Context, userID, productID uuid.UUID, notifyStock bool) (*entity.Favorite, error)
	RemoveFavorite(ctx context.Context, userID, productID uuid.UUID) error
	ListFavorites(ctx context.Context, userID uuid.UUID) ([]*entity.Favorite, error)
	SetStockAlert(ctx context.Context, userID, productID uuid.UUID, enabled bool) error
	MostFavorited(ctx context.Context, limit int) ([]*entity.ProductPopularity, error)
}
