package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"marketplace/config"
	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	"marketplace/internal/usecase"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const categoryNameMaxLength = 100

type categoryService struct {
	categoryRepo repository.CategoryRepository
	logger       *slog.Logger
}

// NewCategoryService creates the category usecase.
func NewCategoryService(categoryRepo repository.CategoryRepository, logger *slog.Logger) usecase.CategoryUsecase {
	return &categoryService{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

func (srv *categoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *categoryService) CreateCategory(ctx context.Context, input *usecase.CategoryInput) (*entity.Category, error) {
	name, err := validateCategoryName(input.Name)
	if err != nil {
		return nil, err
	}

	category := &entity.Category{
		Name:        name,
		Description: strings.TrimSpace(input.Description),
		Active:      input.Active,
	}
	if err := srv.categoryRepo.Create(ctx, category); err != nil {
		return nil, translateRepoError(err, "failed to create category")
	}
	srv.log(ctx).Info("Category created", slog.Any("category_id", category.ID), slog.String("name", category.Name))

	return category, nil
}

func (srv *categoryService) UpdateCategory(ctx context.Context, id uuid.UUID, input *usecase.CategoryInput) (*entity.Category, error) {
	name, err := validateCategoryName(input.Name)
	if err != nil {
		return nil, err
	}

	category, err := srv.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translateRepoError(err, "failed to find category")
	}

	category.Name = name
	category.Description = strings.TrimSpace(input.Description)
	category.Active = input.Active

	if err := srv.categoryRepo.Update(ctx, category); err != nil {
		return nil, translateRepoError(err, "failed to update category")
	}

	return category, nil
}

// DeleteCategory removes a category; its products become uncategorized.
func (srv *categoryService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	if err := srv.categoryRepo.Delete(ctx, id); err != nil {
		return translateRepoError(err, "failed to delete category")
	}
	srv.log(ctx).Info("Category deleted", slog.Any("category_id", id))

	return nil
}

func (srv *categoryService) GetCategory(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	category, err := srv.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translateRepoError(err, "failed to get category")
	}

	return category, nil
}

// ListCategories returns the active categories ordered by name.
func (srv *categoryService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := srv.categoryRepo.FindAll(ctx, true)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

func validateCategoryName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", validationError("category name is required")
	}
	if utf8.RuneCountInString(name) > categoryNameMaxLength {
		return "", validationError("category name is too long")
	}

	return name, nil
}

// productService implements the ProductUsecase interface.
type productService struct {
	txManager     repository.TransactionManager
	productRepo   repository.ProductRepository
	imageStore    service.ImageStore
	publisher     service.EventPublisher
	maxImageBytes int64
	logger        *slog.Logger
	now           func() time.Time
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ProductRepo repository.ProductRepository
	ImageStore  service.ImageStore
	Publisher   service.EventPublisher
	Config      *config.Config
	Logger      *slog.Logger
}

// NewProductService creates the product usecase.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	var maxImageBytes int64
	if params.Config != nil && params.Config.Storage != nil {
		maxImageBytes = params.Config.Storage.MaxImageBytes
	}

	return &productService{
		txManager:     params.TxManager,
		productRepo:   params.ProductRepo,
		imageStore:    params.ImageStore,
		publisher:     params.Publisher,
		maxImageBytes: maxImageBytes,
		logger:        params.Logger,
		now:           time.Now,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateProduct lists a new active product for the seller.
func (srv *productService) CreateProduct(ctx context.Context, sellerID uuid.UUID, input *usecase.CreateProductInput) (*entity.Product, error) {
	name := strings.TrimSpace(input.Name)
	if err := validateProductName(name); err != nil {
		return nil, err
	}
	if !input.Price.IsPositive() {
		return nil, validationError("price must be greater than zero")
	}
	if input.Stock < 0 {
		return nil, validationError("stock must not be negative")
	}

	product := &entity.Product{
		SellerID:    sellerID,
		CategoryID:  input.CategoryID,
		Name:        name,
		Description: strings.TrimSpace(input.Description),
		Price:       input.Price.Round(2),
		Stock:       input.Stock,
		Active:      true,
		PreOrder:    input.PreOrder,
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		srv.log(ctx).Error("Failed to create product", slog.Any("seller_id", sellerID), slog.Any("error", err))

		return nil, translateRepoError(err, "failed to create product")
	}
	srv.log(ctx).Info("Product created", slog.Any("product_id", product.ID), slog.Any("seller_id", sellerID))

	return product, nil
}

// UpdateProduct applies the provided fields to a product owned by the seller.
func (srv *productService) UpdateProduct(ctx context.Context, sellerID, productID uuid.UUID, input *usecase.UpdateProductInput) (*entity.Product, error) {
	var updated *entity.Product

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()

		product, err := ownedProduct(ctx, productRepo, sellerID, productID)
		if err != nil {
			return err
		}

		if input.Name != nil {
			name := strings.TrimSpace(*input.Name)
			if err := validateProductName(name); err != nil {
				return err
			}
			product.Name = name
		}
		if input.Description != nil {
			product.Description = strings.TrimSpace(*input.Description)
		}
		if input.Price != nil {
			if !input.Price.IsPositive() {
				return validationError("price must be greater than zero")
			}
			product.Price = input.Price.Round(2)
		}
		if input.CategoryID != nil {
			product.CategoryID = input.CategoryID
		}
		if input.Active != nil {
			product.Active = *input.Active
		}
		if input.PreOrder != nil {
			product.PreOrder = *input.PreOrder
		}

		if err := productRepo.Update(ctx, product); err != nil {
			return translateRepoError(err, "failed to update product")
		}
		updated = product

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update product")
	}

	return updated, nil
}

// DeactivateProduct hides a product from the catalog without deleting it.
func (srv *productService) DeactivateProduct(ctx context.Context, sellerID, productID uuid.UUID) error {
	inactive := false
	if _, err := srv.UpdateProduct(ctx, sellerID, productID, &usecase.UpdateProductInput{Active: &inactive}); err != nil {
		return err
	}
	srv.log(ctx).Info("Product deactivated", slog.Any("product_id", productID))

	return nil
}

func (srv *productService) GetProduct(ctx context.Context, productID uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, translateRepoError(err, "failed to get product")
	}

	return product, nil
}

// ListProducts returns one page of active products matching input.
func (srv *productService) ListProducts(ctx context.Context, input *usecase.ListProductsInput) (*usecase.ProductPage, error) {
	limit, offset := normalizePage(input.Limit, input.Offset)

	products, total, err := srv.productRepo.List(ctx, repository.ProductFilter{
		CategoryID:   input.CategoryID,
		SellerID:     input.SellerID,
		Query:        input.Query,
		PreOrderOnly: input.PreOrderOnly,
		ActiveOnly:   true,
		Limit:        limit,
		Offset:       offset,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return &usecase.ProductPage{
		Products: products,
		Total:    total,
		Limit:    limit,
		Offset:   offset,
	}, nil
}

// Restock adds units to a product and announces it to stock watchers.
func (srv *productService) Restock(ctx context.Context, sellerID, productID uuid.UUID, quantity int) (*entity.Product, error) {
	if quantity <= 0 {
		return nil, validationError("restock quantity must be greater than zero")
	}

	var restocked *entity.Product
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()

		product, err := ownedProduct(ctx, productRepo, sellerID, productID)
		if err != nil {
			return err
		}

		stock, err := productRepo.IncrementStock(ctx, productID, quantity)
		if err != nil {
			return translateRepoError(err, "failed to increment stock")
		}
		product.Stock = stock
		restocked = product

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to restock product")
	}
	srv.log(ctx).Info("Product restocked", slog.Any("product_id", productID), slog.Int("added", quantity), slog.Int("stock", restocked.Stock))

	event := newDomainEvent(ctx, service.EventProductRestocked, srv.now())
	event.ProductRestocked = &service.ProductRestockedPayload{
		ProductID:   restocked.ID.String(),
		ProductName: restocked.Name,
		Stock:       restocked.Stock,
	}
	publishAfterCommit(ctx, srv.log(ctx), srv.publisher, event)

	return restocked, nil
}

// UploadImage stores a new product image and replaces the previous one.
func (srv *productService) UploadImage(ctx context.Context, sellerID, productID uuid.UUID, input *usecase.UploadImageInput) (*entity.Product, error) {
	if !strings.HasPrefix(strings.ToLower(input.ContentType), "image/") {
		return nil, errors.WithStack(domainerrors.ErrInvalidImage.WithDetails("content type " + input.ContentType + " is not an image"))
	}
	if len(input.Data) == 0 {
		return nil, errors.WithStack(domainerrors.ErrInvalidImage.WithDetails("image is empty"))
	}
	if srv.maxImageBytes > 0 && int64(len(input.Data)) > srv.maxImageBytes {
		return nil, errors.WithStack(domainerrors.ErrImageTooLarge.WithDetails(
			fmt.Sprintf("image is %s, limit is %s", humanize.IBytes(uint64(len(input.Data))), humanize.IBytes(uint64(srv.maxImageBytes))),
		))
	}

	product, err := ownedProduct(ctx, srv.productRepo, sellerID, productID)
	if err != nil {
		return nil, err
	}

	newKey, err := srv.imageStore.Save(ctx, input.FileName, input.ContentType, input.Data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to store product image")
	}

	oldKey := product.ImageKey
	product.ImageKey = newKey

	if err := srv.productRepo.Update(ctx, product); err != nil {
		// Roll back the blob that no row points to.
		if _, delErr := srv.imageStore.Delete(ctx, newKey); delErr != nil {
			srv.log(ctx).Warn("Failed to remove orphaned image", slog.String("image", newKey), slog.Any("error", delErr))
		}

		return nil, translateRepoError(err, "failed to attach product image")
	}

	if oldKey != "" && oldKey != newKey {
		if _, err := srv.imageStore.Delete(ctx, oldKey); err != nil {
			srv.log(ctx).Warn("Failed to delete replaced image", slog.String("image", oldKey), slog.Any("error", err))
		}
	}
	srv.log(ctx).Info("Product image replaced", slog.Any("product_id", productID), slog.String("image", newKey))

	return product, nil
}

func ownedProduct(ctx context.Context, productRepo repository.ProductRepository, sellerID, productID uuid.UUID) (*entity.Product, error) {
	product, err := productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, translateRepoError(err, "failed to find product")
	}
	if !product.IsOwnedBy(sellerID) {
		return nil, domainerrors.ErrForbidden.WrapMessage("product belongs to another seller")
	}

	return product, nil
}

func validateProductName(name string) error {
	if name == "" {
		return validationError("product name is required")
	}
	if utf8.RuneCountInString(name) > entity.ProductNameMaxLength {
		return validationError("product name exceeds 150 characters")
	}

	return nil
}
