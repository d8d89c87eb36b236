package usecase

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CategoryInput holds the fields of a category.
type CategoryInput struct {
	Name        string
	Description string
	Active      bool
}

// CreateProductInput holds the fields of a new product.
type CreateProductInput struct {
	CategoryID  *uuid.UUID
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int
	PreOrder    bool
}

// UpdateProductInput lists the editable product fields. Nil fields are left unchanged.
type UpdateProductInput struct {
	CategoryID  *uuid.UUID
	Name        *string
	Description *string
	Price       *decimal.Decimal
	Active      *bool
	PreOrder    *bool
}

// ListProductsInput narrows a product listing.
type ListProductsInput struct {
	CategoryID   *uuid.UUID
	SellerID     *uuid.UUID
	Query        string
	PreOrderOnly bool
	Limit        int
	Offset       int
}

// ProductPage is one page of a product listing.
type ProductPage struct {
	Products []*entity.Product
	Total    int64
	Limit    int
	Offset   int
}

// UploadImageInput carries an uploaded image file.
type UploadImageInput struct {
	FileName    string
	ContentType string
	Data        []byte
}

// CategoryUsecase manages product categories.
type CategoryUsecase interface {
	CreateCategory(ctx context.Context, input *CategoryInput) (*entity.Category, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, input *CategoryInput) (*entity.Category, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error
	GetCategory(ctx context.Context, id uuid.UUID) (*entity.Category, error)
	ListCategories(ctx context.Context) ([]*entity.Category, error)
}

// ProductUsecase manages the catalog of sellers.
type ProductUsecase interface {
	CreateProduct(ctx context.Context, sellerID uuid.UUID, input *CreateProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, sellerID, productID uuid.UUID, input *UpdateProductInput) (*entity.Product, error)
	DeactivateProduct(ctx context.Context, sellerID, productID uuid.UUID) error
	GetProduct(ctx context.Context, productID uuid.UUID) (*entity.Product, error)
	ListProducts(ctx context.Context, input *ListProductsInput) (*ProductPage, error)

	// Restock adds quantity units and announces the restock to users watching the product.
	Restock(ctx context.Context, sellerID, productID uuid.UUID, quantity int) (*entity.Product, error)

	// UploadImage stores a new product image and replaces the previous one.
	UploadImage(ctx context.Context, sellerID, productID uuid.UUID, input *UploadImageInput) (*entity.Product, error)
}
