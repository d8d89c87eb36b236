package impl

import (
	"context"
	"sync"
	"testing"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	mockSvc "marketplace/internal/mocks/service"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// checkoutTestStore is an in-memory database for the checkout race. Rows touched by
// DecrementStock stay locked until the owning transaction ends.
type checkoutTestStore struct {
	mu       sync.Mutex
	products map[uuid.UUID]*entity.Product
	carts    map[uuid.UUID][]*entity.CartItem
	orders   map[uuid.UUID]*entity.Order
	rowLocks map[uuid.UUID]*sync.Mutex

	// readers blocks product reads until every buyer has read, so all of them
	// see the same stock before anyone writes.
	readers sync.WaitGroup

	// afterRead runs once every buyer has read product stock, standing in
	// for a sale made by another request in that window.
	afterRead func()
}

func (s *checkoutTestStore) rowLock(id uuid.UUID) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.rowLocks[id]
	if !ok {
		lock = &sync.Mutex{}
		s.rowLocks[id] = lock
	}

	return lock
}

type checkoutTestTx struct {
	store   *checkoutTestStore
	undo    []func()
	unlocks []func()
}

type checkoutTestTxManager struct {
	store *checkoutTestStore
}

func (tm *checkoutTestTxManager) Execute(_ context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
	tx := &checkoutTestTx{store: tm.store}

	err := fn(&checkoutTestRepoFactory{tx: tx})
	if err != nil {
		tm.store.mu.Lock()
		for i := len(tx.undo) - 1; i >= 0; i-- {
			tx.undo[i]()
		}
		tm.store.mu.Unlock()
	}

	for i := len(tx.unlocks) - 1; i >= 0; i-- {
		tx.unlocks[i]()
	}

	return err
}

// checkoutTestRepoFactory serves the repositories checkout uses; the embedded
// interface leaves every other accessor unimplemented.
type checkoutTestRepoFactory struct {
	repository.RepositoryFactory
	tx *checkoutTestTx
}

func (f *checkoutTestRepoFactory) CartRepo() repository.CartRepository {
	return &checkoutTestCartRepo{tx: f.tx}
}

func (f *checkoutTestRepoFactory) AddressRepo() repository.AddressRepository {
	return nil
}

func (f *checkoutTestRepoFactory) CouponRepo() repository.CouponRepository {
	return nil
}

func (f *checkoutTestRepoFactory) ProductRepo() repository.ProductRepository {
	return &checkoutTestProductRepo{tx: f.tx}
}

func (f *checkoutTestRepoFactory) OrderRepo() repository.OrderRepository {
	return &checkoutTestOrderRepo{tx: f.tx}
}

type checkoutTestCartRepo struct {
	repository.CartRepository
	tx *checkoutTestTx
}

func (r *checkoutTestCartRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.CartItem, error) {
	r.tx.store.mu.Lock()
	defer r.tx.store.mu.Unlock()

	return append([]*entity.CartItem(nil), r.tx.store.carts[userID]...), nil
}

func (r *checkoutTestCartRepo) DeleteByUser(_ context.Context, userID uuid.UUID) (int64, error) {
	store := r.tx.store
	store.mu.Lock()
	defer store.mu.Unlock()

	items := store.carts[userID]
	delete(store.carts, userID)
	r.tx.undo = append(r.tx.undo, func() { store.carts[userID] = items })

	return int64(len(items)), nil
}

type checkoutTestProductRepo struct {
	repository.ProductRepository
	tx *checkoutTestTx
}

func (r *checkoutTestProductRepo) FindByIDs(_ context.Context, ids []uuid.UUID) ([]*entity.Product, error) {
	store := r.tx.store

	store.mu.Lock()
	products := make([]*entity.Product, 0, len(ids))
	for _, id := range ids {
		if product, ok := store.products[id]; ok {
			snapshot := *product
			products = append(products, &snapshot)
		}
	}
	store.mu.Unlock()

	store.readers.Done()
	store.readers.Wait()

	if store.afterRead != nil {
		store.mu.Lock()
		store.afterRead()
		store.mu.Unlock()
	}

	return products, nil
}

func (r *checkoutTestProductRepo) DecrementStock(_ context.Context, id uuid.UUID, quantity int) error {
	store := r.tx.store

	lock := store.rowLock(id)
	lock.Lock()
	r.tx.unlocks = append(r.tx.unlocks, lock.Unlock)

	store.mu.Lock()
	defer store.mu.Unlock()

	product, ok := store.products[id]
	if !ok {
		return repository.ErrProductNotFound
	}
	if product.Stock < quantity {
		return repository.ErrInsufficientStock
	}

	product.Stock -= quantity
	r.tx.undo = append(r.tx.undo, func() { product.Stock += quantity })

	return nil
}

type checkoutTestOrderRepo struct {
	repository.OrderRepository
	tx *checkoutTestTx
}

func (r *checkoutTestOrderRepo) Create(_ context.Context, order *entity.Order) error {
	store := r.tx.store
	store.mu.Lock()
	defer store.mu.Unlock()

	order.ID = uuid.New()
	store.orders[order.ID] = order
	r.tx.undo = append(r.tx.undo, func() { delete(store.orders, order.ID) })

	return nil
}

func TestOrderService_Checkout_LastUnitSoldOnce(t *testing.T) {
	product := &entity.Product{
		ID:       uuid.New(),
		SellerID: uuid.New(),
		Name:     "Last Loaf",
		Price:    decimal.NewFromInt(4),
		Stock:    1,
		Active:   true,
	}
	buyers := []uuid.UUID{uuid.New(), uuid.New()}

	store := &checkoutTestStore{
		products: map[uuid.UUID]*entity.Product{product.ID: product},
		carts:    make(map[uuid.UUID][]*entity.CartItem),
		orders:   make(map[uuid.UUID]*entity.Order),
		rowLocks: make(map[uuid.UUID]*sync.Mutex),
	}
	for _, buyerID := range buyers {
		store.carts[buyerID] = []*entity.CartItem{{
			ID:        uuid.New(),
			UserID:    buyerID,
			ProductID: product.ID,
			Quantity:  1,
			UnitPrice: product.Price,
		}}
	}
	store.readers.Add(len(buyers))

	publisher := mockSvc.NewMockEventPublisher(t)
	publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Once()

	svc := NewOrderService(OrderServiceParams{
		TxManager: &checkoutTestTxManager{store: store},
		Publisher: publisher,
		Logger:    newDiscardLogger(),
	})

	var wg sync.WaitGroup
	errs := make([]error, len(buyers))
	for i, buyerID := range buyers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = svc.Checkout(context.Background(), buyerID, &usecase.CheckoutInput{DeliveryAddress: "Bakery counter"})
		}()
	}
	wg.Wait()

	var succeeded, soldOut int
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		case assert.ErrorIs(t, err, domainerrors.ErrInsufficientStock):
			soldOut++
		}
	}
	require.Equal(t, 1, succeeded)
	require.Equal(t, 1, soldOut)

	assert.Equal(t, 0, product.Stock)
	assert.Len(t, store.orders, 1)

	// The losing buyer keeps their cart.
	assert.Len(t, store.carts, 1)
}

func TestOrderService_Checkout_SecondItemSoldOutRollsBack(t *testing.T) {
	first := &entity.Product{ID: uuid.New(), SellerID: uuid.New(), Name: "Apple Butter", Price: decimal.RequireFromString("10.00"), Stock: 5, Active: true}
	second := &entity.Product{ID: uuid.New(), SellerID: uuid.New(), Name: "Bread Loaf", Price: decimal.RequireFromString("5.00"), Stock: 3, Active: true}
	// Stock is taken in product id order; make sure "second" is decremented last.
	if second.ID.String() < first.ID.String() {
		first.ID, second.ID = second.ID, first.ID
	}
	buyerID := uuid.New()
	cart := []*entity.CartItem{
		{ID: uuid.New(), UserID: buyerID, ProductID: first.ID, Quantity: 2, UnitPrice: first.Price},
		{ID: uuid.New(), UserID: buyerID, ProductID: second.ID, Quantity: 1, UnitPrice: second.Price},
	}

	store := &checkoutTestStore{
		products: map[uuid.UUID]*entity.Product{first.ID: first, second.ID: second},
		carts:    map[uuid.UUID][]*entity.CartItem{buyerID: cart},
		orders:   make(map[uuid.UUID]*entity.Order),
		rowLocks: make(map[uuid.UUID]*sync.Mutex),
		afterRead: func() {
			second.Stock = 0
		},
	}
	store.readers.Add(1)

	svc := NewOrderService(OrderServiceParams{
		TxManager: &checkoutTestTxManager{store: store},
		Publisher: mockSvc.NewMockEventPublisher(t),
		Logger:    newDiscardLogger(),
	})

	_, err := svc.Checkout(context.Background(), buyerID, &usecase.CheckoutInput{DeliveryAddress: "Stall 4"})
	require.ErrorIs(t, err, domainerrors.ErrInsufficientStock)

	assert.Equal(t, 5, first.Stock, "first product decremented and then restored")
	assert.Equal(t, 0, second.Stock)
	assert.Empty(t, store.orders)
	assert.Equal(t, cart, store.carts[buyerID])
}
