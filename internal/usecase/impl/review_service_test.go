package impl

import (
	"context"
	"testing"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	mockRepo "marketplace/internal/mocks/repository"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReviewService_CreateReview(t *testing.T) {
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	svc := NewReviewService(reviewRepo, productRepo, newDiscardLogger())
	ctx := context.Background()
	userID := uuid.New()
	product := &entity.Product{ID: uuid.New(), SellerID: uuid.New()}

	productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	reviewRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(r *entity.Review) bool {
			return r.SellerID == product.SellerID && r.Rating == 4 && r.Comment == "Fresh"
		})).
		Return(nil)

	review, err := svc.CreateReview(ctx, userID, &usecase.CreateReviewInput{
		ProductID: product.ID,
		Rating:    4,
		Comment:   " Fresh ",
	})
	require.NoError(t, err)
	assert.Equal(t, userID, review.UserID)
}

func TestReviewService_CreateReview_RatingOutOfRange(t *testing.T) {
	for _, rating := range []int{0, 6, -1} {
		svc := NewReviewService(mockRepo.NewMockReviewRepository(t), mockRepo.NewMockProductRepository(t), newDiscardLogger())

		_, err := svc.CreateReview(context.Background(), uuid.New(), &usecase.CreateReviewInput{ProductID: uuid.New(), Rating: rating})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed, "rating %d", rating)
	}
}

func TestReviewService_CreateReview_Duplicate(t *testing.T) {
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	svc := NewReviewService(reviewRepo, productRepo, newDiscardLogger())
	ctx := context.Background()
	product := &entity.Product{ID: uuid.New(), SellerID: uuid.New()}

	productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	reviewRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrDuplicateReview)

	_, err := svc.CreateReview(ctx, uuid.New(), &usecase.CreateReviewInput{ProductID: product.ID, Rating: 5})
	assert.ErrorIs(t, err, domainerrors.ErrReviewAlreadyExists)
}

func TestReviewService_DeleteReview(t *testing.T) {
	ctx := context.Background()
	authorID := uuid.New()

	t.Run("author", func(t *testing.T) {
		reviewRepo := mockRepo.NewMockReviewRepository(t)
		svc := NewReviewService(reviewRepo, mockRepo.NewMockProductRepository(t), newDiscardLogger())
		review := &entity.Review{ID: uuid.New(), UserID: authorID}

		reviewRepo.EXPECT().FindByID(ctx, review.ID).Return(review, nil)
		reviewRepo.EXPECT().Delete(ctx, review.ID).Return(nil)

		assert.NoError(t, svc.DeleteReview(ctx, authorID, review.ID))
	})

	t.Run("someone else", func(t *testing.T) {
		reviewRepo := mockRepo.NewMockReviewRepository(t)
		svc := NewReviewService(reviewRepo, mockRepo.NewMockProductRepository(t), newDiscardLogger())
		review := &entity.Review{ID: uuid.New(), UserID: authorID}

		reviewRepo.EXPECT().FindByID(ctx, review.ID).Return(review, nil)

		assert.ErrorIs(t, svc.DeleteReview(ctx, uuid.New(), review.ID), domainerrors.ErrForbidden)
	})
}

func TestReviewService_ListProductReviews_NormalizesPage(t *testing.T) {
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	svc := NewReviewService(reviewRepo, mockRepo.NewMockProductRepository(t), newDiscardLogger())
	ctx := context.Background()
	productID := uuid.New()

	reviewRepo.EXPECT().FindByProduct(ctx, productID, maxPageLimit, 0).Return(nil, nil)

	_, err := svc.ListProductReviews(ctx, productID, 1000, -5)
	assert.NoError(t, err)
}

func TestFavoriteService_AddFavorite(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()

	t.Run("new favorite", func(t *testing.T) {
		favoriteRepo := mockRepo.NewMockFavoriteRepository(t)
		productRepo := mockRepo.NewMockProductRepository(t)
		svc := NewFavoriteService(favoriteRepo, productRepo, newDiscardLogger())

		productRepo.EXPECT().FindByID(ctx, productID).Return(&entity.Product{ID: productID}, nil)
		favoriteRepo.EXPECT().
			Create(ctx, mock.MatchedBy(func(f *entity.Favorite) bool { return f.NotifyStock })).
			Return(nil)

		favorite, err := svc.AddFavorite(ctx, userID, productID, true)
		require.NoError(t, err)
		assert.Equal(t, productID, favorite.ProductID)
	})

	t.Run("already favorited", func(t *testing.T) {
		favoriteRepo := mockRepo.NewMockFavoriteRepository(t)
		productRepo := mockRepo.NewMockProductRepository(t)
		svc := NewFavoriteService(favoriteRepo, productRepo, newDiscardLogger())

		productRepo.EXPECT().FindByID(ctx, productID).Return(&entity.Product{ID: productID}, nil)
		favoriteRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrDuplicateFavorite)

		_, err := svc.AddFavorite(ctx, userID, productID, false)
		assert.ErrorIs(t, err, domainerrors.ErrFavoriteAlreadyExists)
	})

	t.Run("unknown product", func(t *testing.T) {
		productRepo := mockRepo.NewMockProductRepository(t)
		svc := NewFavoriteService(mockRepo.NewMockFavoriteRepository(t), productRepo, newDiscardLogger())

		productRepo.EXPECT().FindByID(ctx, productID).Return(nil, repository.ErrProductNotFound)

		_, err := svc.AddFavorite(ctx, userID, productID, false)
		assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
	})
}

func TestFavoriteService_RemoveFavorite_Missing(t *testing.T) {
	favoriteRepo := mockRepo.NewMockFavoriteRepository(t)
	svc := NewFavoriteService(favoriteRepo, mockRepo.NewMockProductRepository(t), newDiscardLogger())
	ctx := context.Background()
	userID, productID := uuid.New(), uuid.New()

	favoriteRepo.EXPECT().FindByUserAndProduct(ctx, userID, productID).Return(nil, repository.ErrFavoriteNotFound)

	assert.ErrorIs(t, svc.RemoveFavorite(ctx, userID, productID), domainerrors.ErrFavoriteNotFound)
}

func TestFavoriteService_SetStockAlert(t *testing.T) {
	ctx := context.Background()
	userID, productID := uuid.New(), uuid.New()

	t.Run("toggles", func(t *testing.T) {
		favoriteRepo := mockRepo.NewMockFavoriteRepository(t)
		svc := NewFavoriteService(favoriteRepo, mockRepo.NewMockProductRepository(t), newDiscardLogger())
		favorite := &entity.Favorite{ID: uuid.New(), UserID: userID, ProductID: productID}

		favoriteRepo.EXPECT().FindByUserAndProduct(ctx, userID, productID).Return(favorite, nil)
		favoriteRepo.EXPECT().SetNotifyStock(ctx, favorite.ID, true).Return(nil)

		assert.NoError(t, svc.SetStockAlert(ctx, userID, productID, true))
	})

	t.Run("unchanged", func(t *testing.T) {
		favoriteRepo := mockRepo.NewMockFavoriteRepository(t)
		svc := NewFavoriteService(favoriteRepo, mockRepo.NewMockProductRepository(t), newDiscardLogger())
		favorite := &entity.Favorite{ID: uuid.New(), UserID: userID, ProductID: productID, NotifyStock: true}

		favoriteRepo.EXPECT().FindByUserAndProduct(ctx, userID, productID).Return(favorite, nil)

		assert.NoError(t, svc.SetStockAlert(ctx, userID, productID, true))
		favoriteRepo.AssertNotCalled(t, "SetNotifyStock", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestFavoriteService_MostFavorited_DefaultLimit(t *testing.T) {
	favoriteRepo := mockRepo.NewMockFavoriteRepository(t)
	svc := NewFavoriteService(favoriteRepo, mockRepo.NewMockProductRepository(t), newDiscardLogger())
	ctx := context.Background()

	favoriteRepo.EXPECT().MostFavorited(ctx, defaultPopularLimit).Return([]*entity.ProductPopularity{}, nil)

	_, err := svc.MostFavorited(ctx, 0)
	assert.NoError(t, err)
}
