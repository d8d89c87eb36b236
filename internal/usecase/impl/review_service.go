package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const defaultPopularLimit = 10

type reviewService struct {
	reviewRepo  repository.ReviewRepository
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// NewReviewService creates the review usecase.
func NewReviewService(
	reviewRepo repository.ReviewRepository,
	productRepo repository.ProductRepository,
	logger *slog.Logger,
) usecase.ReviewUsecase {
	return &reviewService{
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
		logger:      logger,
	}
}

func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateReview records a rating of a product. A user reviews a product at most once.
func (srv *reviewService) CreateReview(ctx context.Context, userID uuid.UUID, input *usecase.CreateReviewInput) (*entity.Review, error) {
	if input == nil || input.Rating < entity.MinRating || input.Rating > entity.MaxRating {
		return nil, validationError(fmt.Sprintf("rating must be between %d and %d", entity.MinRating, entity.MaxRating))
	}

	product, err := srv.productRepo.FindByID(ctx, input.ProductID)
	if err != nil {
		return nil, translateRepoError(err, "failed to find product")
	}

	review := &entity.Review{
		UserID:    userID,
		ProductID: product.ID,
		SellerID:  product.SellerID,
		Rating:    input.Rating,
		Comment:   strings.TrimSpace(input.Comment),
	}
	if err := srv.reviewRepo.Create(ctx, review); err != nil {
		return nil, translateRepoError(err, "failed to create review")
	}
	srv.log(ctx).Info("Review created", slog.Any("review_id", review.ID), slog.Any("product_id", product.ID), slog.Int("rating", review.Rating))

	return review, nil
}

func (srv *reviewService) ListProductReviews(ctx context.Context, productID uuid.UUID, limit, offset int) ([]*entity.Review, error) {
	limit, offset = normalizePage(limit, offset)

	reviews, err := srv.reviewRepo.FindByProduct(ctx, productID, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	return reviews, nil
}

func (srv *reviewService) ProductRating(ctx context.Context, productID uuid.UUID) (*entity.RatingSummary, error) {
	summary, err := srv.reviewRepo.ProductRating(ctx, productID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to compute product rating")
	}

	return summary, nil
}

func (srv *reviewService) SellerRating(ctx context.Context, sellerID uuid.UUID) (*entity.RatingSummary, error) {
	summary, err := srv.reviewRepo.SellerRating(ctx, sellerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to compute seller rating")
	}

	return summary, nil
}

// DeleteReview removes a review; only its author may do so.
func (srv *reviewService) DeleteReview(ctx context.Context, userID, reviewID uuid.UUID) error {
	review, err := srv.reviewRepo.FindByID(ctx, reviewID)
	if err != nil {
		return translateRepoError(err, "failed to find review")
	}
	if review.UserID != userID {
		return domainerrors.ErrForbidden.WrapMessage("review written by another user")
	}

	if err := srv.reviewRepo.Delete(ctx, reviewID); err != nil {
		return translateRepoError(err, "failed to delete review")
	}

	return nil
}

type favoriteService struct {
	favoriteRepo repository.FavoriteRepository
	productRepo  repository.ProductRepository
	logger       *slog.Logger
}

// NewFavoriteService creates the favorites usecase.
func NewFavoriteService(
	favoriteRepo repository.FavoriteRepository,
	productRepo repository.ProductRepository,
	logger *slog.Logger,
) usecase.FavoriteUsecase {
	return &favoriteService{
		favoriteRepo: favoriteRepo,
		productRepo:  productRepo,
		logger:       logger,
	}
}

func (srv *favoriteService) AddFavorite(ctx context.Context, userID, productID uuid.UUID, notifyStock bool) (*entity.Favorite, error) {
	if _, err := srv.productRepo.FindByID(ctx, productID); err != nil {
		return nil, translateRepoError(err, "failed to find product")
	}

	favorite := &entity.Favorite{
		UserID:      userID,
		ProductID:   productID,
		NotifyStock: notifyStock,
	}
	if err := srv.favoriteRepo.Create(ctx, favorite); err != nil {
		return nil, translateRepoError(err, "failed to add favorite")
	}

	return favorite, nil
}

func (srv *favoriteService) RemoveFavorite(ctx context.Context, userID, productID uuid.UUID) error {
	favorite, err := srv.favoriteRepo.FindByUserAndProduct(ctx, userID, productID)
	if err != nil {
		return translateRepoError(err, "failed to find favorite")
	}

	if err := srv.favoriteRepo.Delete(ctx, favorite.ID); err != nil {
		return translateRepoError(err, "failed to remove favorite")
	}

	return nil
}

func (srv *favoriteService) ListFavorites(ctx context.Context, userID uuid.UUID) ([]*entity.Favorite, error) {
	favorites, err := srv.favoriteRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list favorites")
	}

	return favorites, nil
}

// SetStockAlert turns the restock notification of a favorite on or off.
func (srv *favoriteService) SetStockAlert(ctx context.Context, userID, productID uuid.UUID, enabled bool) error {
	favorite, err := srv.favoriteRepo.FindByUserAndProduct(ctx, userID, productID)
	if err != nil {
		return translateRepoError(err, "failed to find favorite")
	}
	if favorite.NotifyStock == enabled {
		return nil
	}

	if err := srv.favoriteRepo.SetNotifyStock(ctx, favorite.ID, enabled); err != nil {
		return translateRepoError(err, "failed to update stock alert")
	}

	return nil
}

func (srv *favoriteService) MostFavorited(ctx context.Context, limit int) ([]*entity.ProductPopularity, error) {
	if limit <= 0 || limit > maxPageLimit {
		limit = defaultPopularLimit
	}

	popular, err := srv.favoriteRepo.MostFavorited(ctx, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to rank favorites")
	}

	return popular, nil
}
