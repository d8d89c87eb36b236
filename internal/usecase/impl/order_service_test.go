package impl

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	mockRepo "marketplace/internal/mocks/repository"
	mockSvc "marketplace/internal/mocks/service"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// orderServiceFixtures holds all test dependencies for order service tests.
type orderServiceFixtures struct {
	service     usecase.OrderUsecase
	txManager   *mockRepo.MockTransactionManager
	factory     *mockRepo.MockRepositoryFactory
	orderRepo   *mockRepo.MockOrderRepository
	cartRepo    *mockRepo.MockCartRepository
	productRepo *mockRepo.MockProductRepository
	couponRepo  *mockRepo.MockCouponRepository
	addressRepo *mockRepo.MockAddressRepository
	qrService   *mockSvc.MockQRCodeService
	publisher   *mockSvc.MockEventPublisher
	now         time.Time
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	cartRepo := mockRepo.NewMockCartRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	couponRepo := mockRepo.NewMockCouponRepository(t)
	addressRepo := mockRepo.NewMockAddressRepository(t)
	qrService := mockSvc.NewMockQRCodeService(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	factory.EXPECT().OrderRepo().Return(orderRepo).Maybe()
	factory.EXPECT().CartRepo().Return(cartRepo).Maybe()
	factory.EXPECT().ProductRepo().Return(productRepo).Maybe()
	factory.EXPECT().CouponRepo().Return(couponRepo).Maybe()
	factory.EXPECT().AddressRepo().Return(addressRepo).Maybe()

	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := NewOrderService(OrderServiceParams{
		TxManager: txManager,
		OrderRepo: orderRepo,
		QRService: qrService,
		Publisher: publisher,
		Logger:    newDiscardLogger(),
	})
	svc.(*orderService).now = fixedClock(now)

	return orderServiceFixtures{
		service:     svc,
		txManager:   txManager,
		factory:     factory,
		orderRepo:   orderRepo,
		cartRepo:    cartRepo,
		productRepo: productRepo,
		couponRepo:  couponRepo,
		addressRepo: addressRepo,
		qrService:   qrService,
		publisher:   publisher,
		now:         now,
	}
}

type checkoutScenario struct {
	userID   uuid.UUID
	sellerID uuid.UUID
	product  *entity.Product
	item     *entity.CartItem
}

func newCheckoutScenario(stock, quantity int) checkoutScenario {
	userID := uuid.New()
	sellerID := uuid.New()
	product := &entity.Product{
		ID:       uuid.New(),
		SellerID: sellerID,
		Name:     "Honey Jar",
		Price:    decimal.RequireFromString("12.50"),
		Stock:    stock,
		Active:   true,
	}
	item := &entity.CartItem{
		ID:        uuid.New(),
		UserID:    userID,
		ProductID: product.ID,
		Quantity:  quantity,
		UnitPrice: decimal.RequireFromString("10.00"), // frozen lower than the current price
	}

	return checkoutScenario{userID: userID, sellerID: sellerID, product: product, item: item}
}

func TestOrderService_Checkout_WithCoupon(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	sc := newCheckoutScenario(5, 3)

	coupon := &entity.Coupon{
		ID:        uuid.New(),
		Code:      "SAVE10",
		Type:      entity.DiscountPercentage,
		Value:     decimal.NewFromInt(10),
		StartsAt:  fx.now.Add(-time.Hour),
		ExpiresAt: fx.now.Add(time.Hour),
		MaxUses:   5,
		Active:    true,
	}

	expectTx(fx.txManager, fx.factory)
	fx.cartRepo.EXPECT().FindByUser(ctx, sc.userID).Return([]*entity.CartItem{sc.item}, nil)
	fx.productRepo.EXPECT().FindByIDs(ctx, []uuid.UUID{sc.product.ID}).Return([]*entity.Product{sc.product}, nil)
	fx.couponRepo.EXPECT().FindByCode(ctx, "SAVE10").Return(coupon, nil)
	fx.couponRepo.EXPECT().IncrementUsage(ctx, coupon.ID, fx.now).Return(coupon, nil)
	fx.orderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(_ context.Context, order *entity.Order) {
			order.ID = uuid.New()
		}).
		Return(nil)
	fx.productRepo.EXPECT().DecrementStock(ctx, sc.product.ID, 3).Return(nil)
	fx.cartRepo.EXPECT().DeleteByUser(ctx, sc.userID).Return(int64(1), nil)
	fx.publisher.EXPECT().
		Publish(ctx, mock.MatchedBy(func(event *service.DomainEvent) bool {
			return event.Type == service.EventOrderPlaced &&
				event.OrderPlaced != nil &&
				event.OrderPlaced.Total == "27.00" &&
				assert.ObjectsAreEqual([]string{sc.sellerID.String()}, event.OrderPlaced.SellerIDs)
		})).
		Return(nil)

	output, err := fx.service.Checkout(ctx, sc.userID, &usecase.CheckoutInput{
		DeliveryAddress: " 1 Market Street ",
		CouponCode:      " save10 ",
	})
	require.NoError(t, err)

	assert.True(t, decimal.RequireFromString("30.00").Equal(output.Subtotal))
	assert.True(t, decimal.RequireFromString("3.00").Equal(output.Discount))
	assert.True(t, decimal.RequireFromString("27.00").Equal(output.Total))

	order := output.Order
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Equal(t, "1 Market Street", order.DeliveryAddress)
	require.NotNil(t, order.CouponID)
	assert.Equal(t, coupon.ID, *order.CouponID)
	require.Len(t, order.Items, 1)
	assert.Equal(t, sc.sellerID, order.Items[0].SellerID)
	assert.Equal(t, "Honey Jar", order.Items[0].ProductName)
	assert.True(t, sc.item.UnitPrice.Equal(order.Items[0].UnitPrice))
}

// twoItemCart is a cart of two units of A at 10.00 and one unit of B at 5.00
// from two different sellers.
type twoItemCart struct {
	userID   uuid.UUID
	products []*entity.Product
	items    []*entity.CartItem
}

func newTwoItemCart() twoItemCart {
	userID := uuid.New()
	a := &entity.Product{ID: uuid.New(), SellerID: uuid.New(), Name: "Apple Butter", Price: decimal.RequireFromString("10.00"), Stock: 10, Active: true}
	b := &entity.Product{ID: uuid.New(), SellerID: uuid.New(), Name: "Bread Loaf", Price: decimal.RequireFromString("5.00"), Stock: 10, Active: true}

	return twoItemCart{
		userID:   userID,
		products: []*entity.Product{a, b},
		items: []*entity.CartItem{
			{ID: uuid.New(), UserID: userID, ProductID: a.ID, Quantity: 2, UnitPrice: a.Price},
			{ID: uuid.New(), UserID: userID, ProductID: b.ID, Quantity: 1, UnitPrice: b.Price},
		},
	}
}

func (c twoItemCart) expectCheckout(fx orderServiceFixtures, ctx context.Context) {
	expectTx(fx.txManager, fx.factory)
	fx.cartRepo.EXPECT().FindByUser(ctx, c.userID).Return(c.items, nil)
	fx.productRepo.EXPECT().FindByIDs(ctx, []uuid.UUID{c.products[0].ID, c.products[1].ID}).Return(c.products, nil)
	fx.orderRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	fx.productRepo.EXPECT().DecrementStock(ctx, c.products[0].ID, 2).Return(nil).Once()
	fx.productRepo.EXPECT().DecrementStock(ctx, c.products[1].ID, 1).Return(nil).Once()
	fx.cartRepo.EXPECT().DeleteByUser(ctx, c.userID).Return(int64(2), nil)
}

func TestOrderService_Checkout_TwoItems_NoCoupon(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	cart := newTwoItemCart()

	cart.expectCheckout(fx, ctx)
	fx.publisher.EXPECT().
		Publish(ctx, mock.MatchedBy(func(event *service.DomainEvent) bool {
			return event.OrderPlaced != nil && event.OrderPlaced.Total == "25.00" && len(event.OrderPlaced.SellerIDs) == 2
		})).
		Return(nil)

	output, err := fx.service.Checkout(ctx, cart.userID, &usecase.CheckoutInput{DeliveryAddress: "1 Market Street"})
	require.NoError(t, err)

	assert.Equal(t, "25.00", output.Subtotal.StringFixed(2))
	assert.True(t, output.Discount.IsZero())
	assert.Equal(t, "25.00", output.Total.StringFixed(2))
	require.Len(t, output.Order.Items, 2)
	assert.Nil(t, output.Order.CouponID)
}

func TestOrderService_Checkout_TwoItems_Save10(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	cart := newTwoItemCart()
	coupon := &entity.Coupon{
		ID:        uuid.New(),
		Code:      "SAVE10",
		Type:      entity.DiscountPercentage,
		Value:     decimal.NewFromInt(10),
		StartsAt:  fx.now.Add(-time.Hour),
		ExpiresAt: fx.now.Add(time.Hour),
		MaxUses:   100,
		Active:    true,
	}

	cart.expectCheckout(fx, ctx)
	fx.couponRepo.EXPECT().FindByCode(ctx, "SAVE10").Return(coupon, nil)
	fx.couponRepo.EXPECT().IncrementUsage(ctx, coupon.ID, fx.now).Return(coupon, nil)
	fx.publisher.EXPECT().Publish(ctx, mock.Anything).Return(nil)

	output, err := fx.service.Checkout(ctx, cart.userID, &usecase.CheckoutInput{
		DeliveryAddress: "1 Market Street",
		CouponCode:      "SAVE10",
	})
	require.NoError(t, err)

	assert.Equal(t, "25.00", output.Subtotal.StringFixed(2))
	assert.Equal(t, "2.50", output.Discount.StringFixed(2))
	assert.Equal(t, "22.50", output.Total.StringFixed(2))

	items := output.Order.Items
	require.Len(t, items, 2)
	assert.Equal(t, cart.products[0].ID, items[0].ProductID)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, cart.products[1].SellerID, items[1].SellerID)
	assert.Equal(t, "5.00", items[1].UnitPrice.StringFixed(2))
	require.NotNil(t, output.Order.CouponID)
	assert.Equal(t, coupon.ID, *output.Order.CouponID)
}

func TestOrderService_Checkout_SavedAddress(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	sc := newCheckoutScenario(5, 1)

	address := &entity.Address{
		ID:          uuid.New(),
		UserID:      sc.userID,
		FullAddress: "5 Harbour Road",
		City:        "Porto",
	}

	expectTx(fx.txManager, fx.factory)
	fx.addressRepo.EXPECT().FindByID(ctx, address.ID).Return(address, nil)
	fx.cartRepo.EXPECT().FindByUser(ctx, sc.userID).Return([]*entity.CartItem{sc.item}, nil)
	fx.productRepo.EXPECT().FindByIDs(ctx, mock.Anything).Return([]*entity.Product{sc.product}, nil)
	fx.orderRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	fx.productRepo.EXPECT().DecrementStock(ctx, sc.product.ID, 1).Return(nil)
	fx.cartRepo.EXPECT().DeleteByUser(ctx, sc.userID).Return(int64(1), nil)
	fx.publisher.EXPECT().Publish(ctx, mock.Anything).Return(nil)

	output, err := fx.service.Checkout(ctx, sc.userID, &usecase.CheckoutInput{AddressID: &address.ID})
	require.NoError(t, err)
	assert.Equal(t, address.Formatted(), output.Order.DeliveryAddress)
	assert.Nil(t, output.Order.CouponID)
	assert.True(t, output.Discount.IsZero())
}

func TestOrderService_Checkout_EmptyCart(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	userID := uuid.New()

	expectTx(fx.txManager, fx.factory)
	fx.cartRepo.EXPECT().FindByUser(ctx, userID).Return([]*entity.CartItem{}, nil)

	output, err := fx.service.Checkout(ctx, userID, &usecase.CheckoutInput{DeliveryAddress: "somewhere"})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrEmptyCart)
}

func TestOrderService_Checkout_MissingAddress(t *testing.T) {
	fx := createTestOrderService(t)

	expectTx(fx.txManager, fx.factory)

	_, err := fx.service.Checkout(context.Background(), uuid.New(), &usecase.CheckoutInput{DeliveryAddress: "   "})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestOrderService_Checkout_InsufficientStock(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	sc := newCheckoutScenario(2, 3)

	expectTx(fx.txManager, fx.factory)
	fx.cartRepo.EXPECT().FindByUser(ctx, sc.userID).Return([]*entity.CartItem{sc.item}, nil)
	fx.productRepo.EXPECT().FindByIDs(ctx, mock.Anything).Return([]*entity.Product{sc.product}, nil)

	_, err := fx.service.Checkout(ctx, sc.userID, &usecase.CheckoutInput{DeliveryAddress: "somewhere"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInsufficientStock)
	fx.orderRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestOrderService_Checkout_InactiveProduct(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	sc := newCheckoutScenario(5, 1)
	sc.product.Active = false

	expectTx(fx.txManager, fx.factory)
	fx.cartRepo.EXPECT().FindByUser(ctx, sc.userID).Return([]*entity.CartItem{sc.item}, nil)
	fx.productRepo.EXPECT().FindByIDs(ctx, mock.Anything).Return([]*entity.Product{sc.product}, nil)

	_, err := fx.service.Checkout(ctx, sc.userID, &usecase.CheckoutInput{DeliveryAddress: "somewhere"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrProductInactive)
}

func TestOrderService_Checkout_ExpiredCouponFailsCheckout(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	sc := newCheckoutScenario(5, 1)

	coupon := &entity.Coupon{
		ID:        uuid.New(),
		Code:      "OLD",
		Type:      entity.DiscountFixedAmount,
		Value:     decimal.NewFromInt(5),
		StartsAt:  fx.now.Add(-48 * time.Hour),
		ExpiresAt: fx.now.Add(-time.Hour),
		MaxUses:   5,
		Active:    true,
	}

	expectTx(fx.txManager, fx.factory)
	fx.cartRepo.EXPECT().FindByUser(ctx, sc.userID).Return([]*entity.CartItem{sc.item}, nil)
	fx.productRepo.EXPECT().FindByIDs(ctx, mock.Anything).Return([]*entity.Product{sc.product}, nil)
	fx.couponRepo.EXPECT().FindByID(ctx, coupon.ID).Return(coupon, nil)

	_, err := fx.service.Checkout(ctx, sc.userID, &usecase.CheckoutInput{
		DeliveryAddress: "somewhere",
		CouponID:        &coupon.ID,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCoupon)
	fx.orderRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	fx.couponRepo.AssertNotCalled(t, "IncrementUsage", mock.Anything, mock.Anything, mock.Anything)
}

func TestOrderService_Checkout_UnknownCoupon(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	sc := newCheckoutScenario(5, 1)

	expectTx(fx.txManager, fx.factory)
	fx.cartRepo.EXPECT().FindByUser(ctx, sc.userID).Return([]*entity.CartItem{sc.item}, nil)
	fx.productRepo.EXPECT().FindByIDs(ctx, mock.Anything).Return([]*entity.Product{sc.product}, nil)
	fx.couponRepo.EXPECT().FindByCode(ctx, "NOPE").Return(nil, repository.ErrCouponNotFound)

	_, err := fx.service.Checkout(ctx, sc.userID, &usecase.CheckoutInput{
		DeliveryAddress: "somewhere",
		CouponCode:      "nope",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCouponNotFound)
}

func TestOrderService_Checkout_StockTakenConcurrently(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	sc := newCheckoutScenario(1, 1)

	expectTx(fx.txManager, fx.factory)
	fx.cartRepo.EXPECT().FindByUser(ctx, sc.userID).Return([]*entity.CartItem{sc.item}, nil)
	fx.productRepo.EXPECT().FindByIDs(ctx, mock.Anything).Return([]*entity.Product{sc.product}, nil)
	fx.orderRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	fx.productRepo.EXPECT().DecrementStock(ctx, sc.product.ID, 1).Return(repository.ErrInsufficientStock)

	_, err := fx.service.Checkout(ctx, sc.userID, &usecase.CheckoutInput{DeliveryAddress: "somewhere"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInsufficientStock)
	fx.cartRepo.AssertNotCalled(t, "DeleteByUser", mock.Anything, mock.Anything)
	fx.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func newPlacedOrder(buyerID, sellerID uuid.UUID, status entity.OrderStatus) *entity.Order {
	return &entity.Order{
		ID:     uuid.New(),
		UserID: buyerID,
		Status: status,
		Items: []*entity.OrderItem{
			{ID: uuid.New(), ProductID: uuid.New(), SellerID: sellerID, Quantity: 2},
			{ID: uuid.New(), ProductID: uuid.New(), SellerID: sellerID, Quantity: 1},
		},
	}
}

func TestOrderService_CancelOrder_RestoresStock(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	buyerID := uuid.New()
	order := newPlacedOrder(buyerID, uuid.New(), entity.OrderStatusConfirmed)

	expectTx(fx.txManager, fx.factory)
	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	fx.orderRepo.EXPECT().
		UpdateStatus(ctx, order.ID, entity.OrderStatusConfirmed, entity.OrderStatusCancelled).
		Return(nil)
	fx.productRepo.EXPECT().IncrementStock(ctx, order.Items[0].ProductID, 2).Return(7, nil)
	fx.productRepo.EXPECT().IncrementStock(ctx, order.Items[1].ProductID, 1).Return(0, repository.ErrProductNotFound)

	cancelled, err := fx.service.CancelOrder(ctx, buyerID, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCancelled, cancelled.Status)
}

func TestOrderService_CancelOrder_Delivered(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	buyerID := uuid.New()
	order := newPlacedOrder(buyerID, uuid.New(), entity.OrderStatusDelivered)

	expectTx(fx.txManager, fx.factory)
	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

	_, err := fx.service.CancelOrder(ctx, buyerID, order.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
	fx.productRepo.AssertNotCalled(t, "IncrementStock", mock.Anything, mock.Anything, mock.Anything)
}

func TestOrderService_CancelOrder_OtherBuyer(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	order := newPlacedOrder(uuid.New(), uuid.New(), entity.OrderStatusPending)

	expectTx(fx.txManager, fx.factory)
	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

	_, err := fx.service.CancelOrder(ctx, uuid.New(), order.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_UpdateOrderStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("seller advances the order", func(t *testing.T) {
		fx := createTestOrderService(t)
		sellerID := uuid.New()
		order := newPlacedOrder(uuid.New(), sellerID, entity.OrderStatusPending)

		expectTx(fx.txManager, fx.factory)
		fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
		fx.orderRepo.EXPECT().
			UpdateStatus(ctx, order.ID, entity.OrderStatusPending, entity.OrderStatusConfirmed).
			Return(nil)

		updated, err := fx.service.UpdateOrderStatus(ctx, sellerID, order.ID, entity.OrderStatusConfirmed)
		require.NoError(t, err)
		assert.Equal(t, entity.OrderStatusConfirmed, updated.Status)
	})

	t.Run("skipping a step is rejected", func(t *testing.T) {
		fx := createTestOrderService(t)
		sellerID := uuid.New()
		order := newPlacedOrder(uuid.New(), sellerID, entity.OrderStatusPending)

		expectTx(fx.txManager, fx.factory)
		fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

		_, err := fx.service.UpdateOrderStatus(ctx, sellerID, order.ID, entity.OrderStatusDelivered)
		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
	})

	t.Run("seller without items is forbidden", func(t *testing.T) {
		fx := createTestOrderService(t)
		order := newPlacedOrder(uuid.New(), uuid.New(), entity.OrderStatusPending)

		expectTx(fx.txManager, fx.factory)
		fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

		_, err := fx.service.UpdateOrderStatus(ctx, uuid.New(), order.ID, entity.OrderStatusConfirmed)
		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("lost race reports invalid transition", func(t *testing.T) {
		fx := createTestOrderService(t)
		sellerID := uuid.New()
		order := newPlacedOrder(uuid.New(), sellerID, entity.OrderStatusConfirmed)

		expectTx(fx.txManager, fx.factory)
		fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
		fx.orderRepo.EXPECT().
			UpdateStatus(ctx, order.ID, entity.OrderStatusConfirmed, entity.OrderStatusShipped).
			Return(repository.ErrStatusConflict)

		_, err := fx.service.UpdateOrderStatus(ctx, sellerID, order.ID, entity.OrderStatusShipped)
		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
	})

	t.Run("unknown status", func(t *testing.T) {
		fx := createTestOrderService(t)

		_, err := fx.service.UpdateOrderStatus(ctx, uuid.New(), uuid.New(), entity.OrderStatus("lost"))
		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestOrderService_GetOrder_Visibility(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	buyerID := uuid.New()
	sellerID := uuid.New()
	order := newPlacedOrder(buyerID, sellerID, entity.OrderStatusPending)

	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil).Times(3)

	got, err := fx.service.GetOrder(ctx, buyerID, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, got.ID)

	got, err = fx.service.GetOrder(ctx, sellerID, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, got.ID)

	_, err = fx.service.GetOrder(ctx, uuid.New(), order.ID)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_ListSellerOrders_NormalizesPage(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	sellerID := uuid.New()

	fx.orderRepo.EXPECT().
		List(ctx, repository.OrderFilter{
			SellerID: &sellerID,
			Status:   entity.OrderStatusShipped,
			Limit:    maxPageLimit,
			Offset:   0,
		}).
		Return([]*entity.Order{}, nil)

	orders, err := fx.service.ListSellerOrders(ctx, sellerID, &usecase.ListOrdersInput{
		Status: entity.OrderStatusShipped,
		Limit:  1000,
		Offset: -5,
	})
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestOrderService_OrderPickupQR(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	buyerID := uuid.New()
	order := newPlacedOrder(buyerID, uuid.New(), entity.OrderStatusShipped)

	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	fx.qrService.EXPECT().GenerateOrderPickupQR(order.ID).Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	png, err := fx.service.OrderPickupQR(ctx, buyerID, order.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png)
}
