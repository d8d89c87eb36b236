package usecase

import (
	"context"
	"time"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// BlogInput holds the fields of a blog post.
type BlogInput struct {
	CategoryID *uuid.UUID
	Title      string
	Summary    string
	Content    string
	ImageKey   string
}

// EventInput holds the fields of an event.
type EventInput struct {
	Title       string
	Description string
	Location    string
	ImageKey    string
	StartsAt    time.Time
	EndsAt      time.Time
	Active      bool
}

// BlogUsecase manages seller blog posts.
type BlogUsecase interface {
	CreateBlog(ctx context.Context, authorID uuid.UUID, input *BlogInput) (*entity.Blog, error)
	UpdateBlog(ctx context.Context, authorID, blogID uuid.UUID, input *BlogInput) (*entity.Blog, error)
	DeleteBlog(ctx context.Context, authorID, blogID uuid.UUID) error
	PublishBlog(ctx context.Context, authorID, blogID uuid.UUID) (*entity.Blog, error)
	GetBlog(ctx context.Context, blogID uuid.UUID) (*entity.Blog, error)
	ListPublishedBlogs(ctx context.Context, limit, offset int) ([]*entity.Blog, error)
}

// EventUsecase manages seller events.
type EventUsecase interface {
	CreateEvent(ctx context.Context, organizerID uuid.UUID, input *EventInput) (*entity.Event, error)
	UpdateEvent(ctx context.Context, organizerID, eventID uuid.UUID, input *EventInput) (*entity.Event, error)
	DeleteEvent(ctx context.Context, organizerID, eventID uuid.UUID) error
	GetEvent(ctx context.Context, eventID uuid.UUID) (*entity.Event, error)
	ListUpcomingEvents(ctx context.Context, limit int) ([]*entity.Event, error)
}
