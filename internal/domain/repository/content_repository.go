package repository

import (
	"context"
	"time"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for blog and event persistence.
var (
	ErrBlogNotFound  = errors.New("blog not found")
	ErrEventNotFound = errors.New("event not found")
)

// BlogRepository stores blog posts.
type BlogRepository interface {
	Create(ctx context.Context, blog *entity.Blog) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Blog, error)

	// FindPublished lists published blogs, most recently published first.
	FindPublished(ctx context.Context, limit, offset int) ([]*entity.Blog, error)
	Update(ctx context.Context, blog *entity.Blog) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// EventRepository stores seller events.
type EventRepository interface {
	Create(ctx context.Context, event *entity.Event) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Event, error)

	// FindUpcoming lists active events that have not ended at now, soonest first.
	FindUpcoming(ctx context.Context, now time.Time, limit int) ([]*entity.Event, error)
	Update(ctx context.Context, event *entity.Event) error
	Delete(ctx context.Context, id uuid.UUID) error
}
