package repository

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for catalog persistence.
var (
	ErrCategoryNotFound  = errors.New("category not found")
	ErrDuplicateCategory = errors.New("category already exists")
	ErrProductNotFound   = errors.New("product not found")
	// ErrInsufficientStock is returned when a conditional stock decrement matched no row.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// ProductFilter narrows product listings. Zero values do not filter.
type ProductFilter struct {
	CategoryID   *uuid.UUID
	SellerID     *uuid.UUID
	Query        string // Case-insensitive match on name or description.
	PreOrderOnly bool
	ActiveOnly   bool
	Limit        int
	Offset       int
}

// CategoryRepository stores product categories.
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)
	FindAll(ctx context.Context, activeOnly bool) ([]*entity.Category, error)
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ProductRepository stores products and owns every stock mutation.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error)
	List(ctx context.Context, filter ProductFilter) ([]*entity.Product, int64, error)
	Update(ctx context.Context, product *entity.Product) error

	// DecrementStock atomically takes quantity units when at least that many remain.
	// It returns ErrInsufficientStock when the guard fails and ErrProductNotFound for unknown ids.
	DecrementStock(ctx context.Context, id uuid.UUID, quantity int) error

	// IncrementStock atomically adds quantity units and returns the new stock.
	IncrementStock(ctx context.Context, id uuid.UUID, quantity int) (int, error)
}
