package impl

import (
	"context"
	"strings"
	"testing"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	mockRepo "marketplace/internal/mocks/repository"
	mockSvc "marketplace/internal/mocks/service"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCategoryService_CreateCategory(t *testing.T) {
	ctx := context.Background()

	t.Run("trims and stores", func(t *testing.T) {
		categoryRepo := mockRepo.NewMockCategoryRepository(t)
		svc := NewCategoryService(categoryRepo, newDiscardLogger())

		categoryRepo.EXPECT().
			Create(ctx, mock.MatchedBy(func(c *entity.Category) bool { return c.Name == "Bakery" })).
			Return(nil)

		category, err := svc.CreateCategory(ctx, &usecase.CategoryInput{Name: "  Bakery ", Active: true})
		require.NoError(t, err)
		assert.Equal(t, "Bakery", category.Name)
		assert.True(t, category.Active)
	})

	t.Run("duplicate name", func(t *testing.T) {
		categoryRepo := mockRepo.NewMockCategoryRepository(t)
		svc := NewCategoryService(categoryRepo, newDiscardLogger())

		categoryRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrDuplicateCategory)

		_, err := svc.CreateCategory(ctx, &usecase.CategoryInput{Name: "Bakery"})
		assert.ErrorIs(t, err, domainerrors.ErrCategoryAlreadyExist)
	})

	t.Run("name too long", func(t *testing.T) {
		svc := NewCategoryService(mockRepo.NewMockCategoryRepository(t), newDiscardLogger())

		_, err := svc.CreateCategory(ctx, &usecase.CategoryInput{Name: strings.Repeat("x", 101)})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

// productServiceFixtures holds all test dependencies for product service tests.
type productServiceFixtures struct {
	service     usecase.ProductUsecase
	txManager   *mockRepo.MockTransactionManager
	factory     *mockRepo.MockRepositoryFactory
	productRepo *mockRepo.MockProductRepository
	imageStore  *mockSvc.MockImageStore
	publisher   *mockSvc.MockEventPublisher
}

func createTestProductService(t *testing.T) productServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	imageStore := mockSvc.NewMockImageStore(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	factory.EXPECT().ProductRepo().Return(productRepo).Maybe()

	svc := NewProductService(ProductServiceParams{
		TxManager:   txManager,
		ProductRepo: productRepo,
		ImageStore:  imageStore,
		Publisher:   publisher,
		Config:      newTestConfig(0),
		Logger:      newDiscardLogger(),
	})

	return productServiceFixtures{
		service:     svc,
		txManager:   txManager,
		factory:     factory,
		productRepo: productRepo,
		imageStore:  imageStore,
		publisher:   publisher,
	}
}

func TestProductService_CreateProduct(t *testing.T) {
	ctx := context.Background()
	sellerID := uuid.New()

	t.Run("rounds price and activates", func(t *testing.T) {
		fx := createTestProductService(t)
		fx.productRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Product")).Return(nil)

		product, err := fx.service.CreateProduct(ctx, sellerID, &usecase.CreateProductInput{
			Name:  "Sourdough",
			Price: decimal.RequireFromString("4.999"),
			Stock: 12,
		})
		require.NoError(t, err)
		assert.True(t, decimal.RequireFromString("5.00").Equal(product.Price))
		assert.True(t, product.Active)
		assert.Equal(t, sellerID, product.SellerID)
	})

	cases := map[string]*usecase.CreateProductInput{
		"zero price":     {Name: "Sourdough", Price: decimal.Zero, Stock: 1},
		"negative stock": {Name: "Sourdough", Price: decimal.NewFromInt(1), Stock: -1},
		"empty name":     {Name: "  ", Price: decimal.NewFromInt(1)},
		"long name":      {Name: strings.Repeat("a", entity.ProductNameMaxLength+1), Price: decimal.NewFromInt(1)},
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			fx := createTestProductService(t)

			_, err := fx.service.CreateProduct(ctx, sellerID, input)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestProductService_UpdateProduct_OtherSeller(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()
	product := &entity.Product{ID: uuid.New(), SellerID: uuid.New(), Name: "Jam"}

	expectTx(fx.txManager, fx.factory)
	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)

	name := "Stolen Jam"
	_, err := fx.service.UpdateProduct(ctx, uuid.New(), product.ID, &usecase.UpdateProductInput{Name: &name})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestProductService_DeactivateProduct(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()
	sellerID := uuid.New()
	product := &entity.Product{ID: uuid.New(), SellerID: sellerID, Name: "Jam", Active: true}

	expectTx(fx.txManager, fx.factory)
	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	fx.productRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(p *entity.Product) bool { return !p.Active })).
		Return(nil)

	require.NoError(t, fx.service.DeactivateProduct(ctx, sellerID, product.ID))
}

func TestProductService_ListProducts_OnlyActive(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	fx.productRepo.EXPECT().
		List(ctx, repository.ProductFilter{Query: "bread", ActiveOnly: true, Limit: defaultPageLimit}).
		Return([]*entity.Product{{Name: "Bread"}}, int64(1), nil)

	page, err := fx.service.ListProducts(ctx, &usecase.ListProductsInput{Query: "bread"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Total)
	assert.Equal(t, defaultPageLimit, page.Limit)
	assert.Len(t, page.Products, 1)
}

func TestProductService_Restock_PublishesEvent(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()
	sellerID := uuid.New()
	product := &entity.Product{ID: uuid.New(), SellerID: sellerID, Name: "Jam", Stock: 0}

	expectTx(fx.txManager, fx.factory)
	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	fx.productRepo.EXPECT().IncrementStock(ctx, product.ID, 4).Return(4, nil)
	fx.publisher.EXPECT().
		Publish(ctx, mock.MatchedBy(func(event *service.DomainEvent) bool {
			return event.Type == service.EventProductRestocked &&
				event.ProductRestocked.ProductID == product.ID.String() &&
				event.ProductRestocked.Stock == 4
		})).
		Return(errors.New("broker down"))

	// A failed publish does not undo the committed restock.
	restocked, err := fx.service.Restock(ctx, sellerID, product.ID, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, restocked.Stock)
}

func TestProductService_Restock_InvalidQuantity(t *testing.T) {
	fx := createTestProductService(t)

	_, err := fx.service.Restock(context.Background(), uuid.New(), uuid.New(), 0)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestProductService_UploadImage(t *testing.T) {
	ctx := context.Background()
	sellerID := uuid.New()
	png := []byte{0x89, 'P', 'N', 'G'}

	t.Run("replaces previous image", func(t *testing.T) {
		fx := createTestProductService(t)
		product := &entity.Product{ID: uuid.New(), SellerID: sellerID, ImageKey: "old.png"}

		fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
		fx.imageStore.EXPECT().Save(ctx, "photo.png", "image/png", png).Return("new.png", nil)
		fx.productRepo.EXPECT().Update(ctx, product).Return(nil)
		fx.imageStore.EXPECT().Delete(ctx, "old.png").Return(true, nil)

		updated, err := fx.service.UploadImage(ctx, sellerID, product.ID, &usecase.UploadImageInput{
			FileName:    "photo.png",
			ContentType: "image/png",
			Data:        png,
		})
		require.NoError(t, err)
		assert.Equal(t, "new.png", updated.ImageKey)
	})

	t.Run("removes new blob when update fails", func(t *testing.T) {
		fx := createTestProductService(t)
		product := &entity.Product{ID: uuid.New(), SellerID: sellerID, ImageKey: "old.png"}

		fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
		fx.imageStore.EXPECT().Save(ctx, "photo.png", "image/png", png).Return("new.png", nil)
		fx.productRepo.EXPECT().Update(ctx, product).Return(errors.New("db down"))
		fx.imageStore.EXPECT().Delete(ctx, "new.png").Return(true, nil)

		_, err := fx.service.UploadImage(ctx, sellerID, product.ID, &usecase.UploadImageInput{
			FileName:    "photo.png",
			ContentType: "image/png",
			Data:        png,
		})
		require.Error(t, err)
		fx.imageStore.AssertNotCalled(t, "Delete", ctx, "old.png")
	})

	t.Run("rejects non images", func(t *testing.T) {
		fx := createTestProductService(t)

		_, err := fx.service.UploadImage(ctx, sellerID, uuid.New(), &usecase.UploadImageInput{
			FileName:    "notes.txt",
			ContentType: "text/plain",
			Data:        []byte("hello"),
		})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidImage)
	})

	t.Run("rejects oversized images", func(t *testing.T) {
		fx := createTestProductService(t)

		_, err := fx.service.UploadImage(ctx, sellerID, uuid.New(), &usecase.UploadImageInput{
			FileName:    "huge.png",
			ContentType: "image/png",
			Data:        make([]byte, 1<<20+1),
		})
		assert.ErrorIs(t, err, domainerrors.ErrImageTooLarge)
	})
}
