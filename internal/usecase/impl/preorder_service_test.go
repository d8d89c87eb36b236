package impl

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	mockRepo "marketplace/internal/mocks/repository"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// preOrderServiceFixtures holds all test dependencies for pre-order service tests.
type preOrderServiceFixtures struct {
	service      usecase.PreOrderUsecase
	preOrderRepo *mockRepo.MockPreOrderRepository
	productRepo  *mockRepo.MockProductRepository
	now          time.Time
}

func createTestPreOrderService(t *testing.T) preOrderServiceFixtures {
	preOrderRepo := mockRepo.NewMockPreOrderRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)

	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	svc := NewPreOrderService(preOrderRepo, productRepo, newDiscardLogger())
	svc.(*preOrderService).now = fixedClock(now)

	return preOrderServiceFixtures{
		service:      svc,
		preOrderRepo: preOrderRepo,
		productRepo:  productRepo,
		now:          now,
	}
}

func TestPreOrderService_CreatePreOrder(t *testing.T) {
	fx := createTestPreOrderService(t)
	ctx := context.Background()
	userID := uuid.New()
	product := &entity.Product{
		ID:       uuid.New(),
		SellerID: uuid.New(),
		Price:    decimal.RequireFromString("12.50"),
		Active:   true,
		PreOrder: true,
	}
	delivery := fx.now.Add(14 * 24 * time.Hour)

	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	fx.preOrderRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(p *entity.PreOrder) bool {
			return p.SellerID == product.SellerID && p.Status == entity.PreOrderStatusPending
		})).
		Return(nil)

	preOrder, err := fx.service.CreatePreOrder(ctx, userID, &usecase.CreatePreOrderInput{
		ProductID:         product.ID,
		Quantity:          4,
		EstimatedDelivery: &delivery,
		Notes:             " gift wrap ",
	})
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("50.00").Equal(preOrder.Total))
	assert.True(t, product.Price.Equal(preOrder.UnitPrice))
	assert.Equal(t, "gift wrap", preOrder.Notes)
}

func TestPreOrderService_CreatePreOrder_Rejections(t *testing.T) {
	ctx := context.Background()

	t.Run("zero quantity", func(t *testing.T) {
		fx := createTestPreOrderService(t)

		_, err := fx.service.CreatePreOrder(ctx, uuid.New(), &usecase.CreatePreOrderInput{ProductID: uuid.New()})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("delivery in the past", func(t *testing.T) {
		fx := createTestPreOrderService(t)
		past := fx.now.Add(-time.Hour)

		_, err := fx.service.CreatePreOrder(ctx, uuid.New(), &usecase.CreatePreOrderInput{
			ProductID:         uuid.New(),
			Quantity:          1,
			EstimatedDelivery: &past,
		})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("inactive product", func(t *testing.T) {
		fx := createTestPreOrderService(t)
		product := &entity.Product{ID: uuid.New(), Active: false}

		fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)

		_, err := fx.service.CreatePreOrder(ctx, uuid.New(), &usecase.CreatePreOrderInput{ProductID: product.ID, Quantity: 1})
		assert.ErrorIs(t, err, domainerrors.ErrProductInactive)
	})

	t.Run("unknown product", func(t *testing.T) {
		fx := createTestPreOrderService(t)
		productID := uuid.New()

		fx.productRepo.EXPECT().FindByID(ctx, productID).Return(nil, repository.ErrProductNotFound)

		_, err := fx.service.CreatePreOrder(ctx, uuid.New(), &usecase.CreatePreOrderInput{ProductID: productID, Quantity: 1})
		assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
	})
}

func TestPreOrderService_UpdatePreOrderStatus(t *testing.T) {
	ctx := context.Background()
	sellerID := uuid.New()

	t.Run("one step forward", func(t *testing.T) {
		fx := createTestPreOrderService(t)
		preOrder := &entity.PreOrder{ID: uuid.New(), SellerID: sellerID, Status: entity.PreOrderStatusConfirmed}

		fx.preOrderRepo.EXPECT().FindByID(ctx, preOrder.ID).Return(preOrder, nil)
		fx.preOrderRepo.EXPECT().
			UpdateStatus(ctx, preOrder.ID, entity.PreOrderStatusConfirmed, entity.PreOrderStatusInProduction, "").
			Return(nil)

		updated, err := fx.service.UpdatePreOrderStatus(ctx, sellerID, preOrder.ID, entity.PreOrderStatusInProduction)
		require.NoError(t, err)
		assert.Equal(t, entity.PreOrderStatusInProduction, updated.Status)
	})

	t.Run("skipping a step", func(t *testing.T) {
		fx := createTestPreOrderService(t)
		preOrder := &entity.PreOrder{ID: uuid.New(), SellerID: sellerID, Status: entity.PreOrderStatusPending}

		fx.preOrderRepo.EXPECT().FindByID(ctx, preOrder.ID).Return(preOrder, nil)

		_, err := fx.service.UpdatePreOrderStatus(ctx, sellerID, preOrder.ID, entity.PreOrderStatusReady)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
	})

	t.Run("another seller", func(t *testing.T) {
		fx := createTestPreOrderService(t)
		preOrder := &entity.PreOrder{ID: uuid.New(), SellerID: uuid.New(), Status: entity.PreOrderStatusPending}

		fx.preOrderRepo.EXPECT().FindByID(ctx, preOrder.ID).Return(preOrder, nil)

		_, err := fx.service.UpdatePreOrderStatus(ctx, sellerID, preOrder.ID, entity.PreOrderStatusConfirmed)
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("concurrent change", func(t *testing.T) {
		fx := createTestPreOrderService(t)
		preOrder := &entity.PreOrder{ID: uuid.New(), SellerID: sellerID, Status: entity.PreOrderStatusPending}

		fx.preOrderRepo.EXPECT().FindByID(ctx, preOrder.ID).Return(preOrder, nil)
		fx.preOrderRepo.EXPECT().
			UpdateStatus(ctx, preOrder.ID, entity.PreOrderStatusPending, entity.PreOrderStatusConfirmed, "").
			Return(repository.ErrStatusConflict)

		_, err := fx.service.UpdatePreOrderStatus(ctx, sellerID, preOrder.ID, entity.PreOrderStatusConfirmed)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
	})
}

func TestPreOrderService_CancelPreOrder_AppendsReason(t *testing.T) {
	fx := createTestPreOrderService(t)
	ctx := context.Background()
	buyerID := uuid.New()
	preOrder := &entity.PreOrder{
		ID:       uuid.New(),
		UserID:   buyerID,
		SellerID: uuid.New(),
		Status:   entity.PreOrderStatusConfirmed,
		Notes:    "gift wrap",
	}

	fx.preOrderRepo.EXPECT().FindByID(ctx, preOrder.ID).Return(preOrder, nil)
	fx.preOrderRepo.EXPECT().
		UpdateStatus(ctx, preOrder.ID, entity.PreOrderStatusConfirmed, entity.PreOrderStatusCancelled, "gift wrap\nCancelled: changed my mind").
		Return(nil)

	cancelled, err := fx.service.CancelPreOrder(ctx, buyerID, preOrder.ID, " changed my mind ")
	require.NoError(t, err)
	assert.Equal(t, entity.PreOrderStatusCancelled, cancelled.Status)
}

func TestPreOrderService_CancelPreOrder_Delivered(t *testing.T) {
	fx := createTestPreOrderService(t)
	ctx := context.Background()
	buyerID := uuid.New()
	preOrder := &entity.PreOrder{ID: uuid.New(), UserID: buyerID, Status: entity.PreOrderStatusDelivered}

	fx.preOrderRepo.EXPECT().FindByID(ctx, preOrder.ID).Return(preOrder, nil)

	_, err := fx.service.CancelPreOrder(ctx, buyerID, preOrder.ID, "")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
}

func TestPreOrderService_GetPreOrder_Stranger(t *testing.T) {
	fx := createTestPreOrderService(t)
	ctx := context.Background()
	preOrder := &entity.PreOrder{ID: uuid.New(), UserID: uuid.New(), SellerID: uuid.New()}

	fx.preOrderRepo.EXPECT().FindByID(ctx, preOrder.ID).Return(preOrder, nil)

	_, err := fx.service.GetPreOrder(ctx, uuid.New(), preOrder.ID)
	assert.ErrorIs(t, err, domainerrors.ErrPreOrderNotFound)
}

func TestPreOrderService_ListMyPreOrders_InvalidStatus(t *testing.T) {
	fx := createTestPreOrderService(t)

	_, err := fx.service.ListMyPreOrders(context.Background(), uuid.New(), "shipped")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestPreOrderService_PreOrderSummary_SkipsCancelled(t *testing.T) {
	fx := createTestPreOrderService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.preOrderRepo.EXPECT().
		List(ctx, repository.PreOrderFilter{UserID: &userID}).
		Return([]*entity.PreOrder{
			{Status: entity.PreOrderStatusPending, Total: decimal.RequireFromString("10.00")},
			{Status: entity.PreOrderStatusCancelled, Total: decimal.RequireFromString("99.00")},
			{Status: entity.PreOrderStatusReady, Total: decimal.RequireFromString("5.50")},
		}, nil)

	summary, err := fx.service.PreOrderSummary(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Count)
	assert.True(t, decimal.RequireFromString("15.50").Equal(summary.Total))
}
