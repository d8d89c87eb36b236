package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type blogService struct {
	blogRepo repository.BlogRepository
	logger   *slog.Logger
	now      func() time.Time
}

// NewBlogService creates the blog usecase.
func NewBlogService(blogRepo repository.BlogRepository, logger *slog.Logger) usecase.BlogUsecase {
	return &blogService{
		blogRepo: blogRepo,
		logger:   logger,
		now:      time.Now,
	}
}

func (srv *blogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateBlog stores a draft blog post of the author.
func (srv *blogService) CreateBlog(ctx context.Context, authorID uuid.UUID, input *usecase.BlogInput) (*entity.Blog, error) {
	if err := validateBlogInput(input); err != nil {
		return nil, err
	}

	blog := &entity.Blog{AuthorID: authorID}
	applyBlogInput(blog, input)

	if err := srv.blogRepo.Create(ctx, blog); err != nil {
		return nil, errors.Wrap(err, "failed to create blog")
	}
	srv.log(ctx).Info("Blog created", slog.Any("blog_id", blog.ID), slog.Any("author_id", authorID))

	return blog, nil
}

func (srv *blogService) UpdateBlog(ctx context.Context, authorID, blogID uuid.UUID, input *usecase.BlogInput) (*entity.Blog, error) {
	if err := validateBlogInput(input); err != nil {
		return nil, err
	}

	blog, err := srv.ownedBlog(ctx, authorID, blogID)
	if err != nil {
		return nil, err
	}

	applyBlogInput(blog, input)
	if err := srv.blogRepo.Update(ctx, blog); err != nil {
		return nil, translateRepoError(err, "failed to update blog")
	}

	return blog, nil
}

func (srv *blogService) DeleteBlog(ctx context.Context, authorID, blogID uuid.UUID) error {
	if _, err := srv.ownedBlog(ctx, authorID, blogID); err != nil {
		return err
	}

	if err := srv.blogRepo.Delete(ctx, blogID); err != nil {
		return translateRepoError(err, "failed to delete blog")
	}

	return nil
}

// PublishBlog makes a draft visible. Publishing twice keeps the first publication time.
func (srv *blogService) PublishBlog(ctx context.Context, authorID, blogID uuid.UUID) (*entity.Blog, error) {
	blog, err := srv.ownedBlog(ctx, authorID, blogID)
	if err != nil {
		return nil, err
	}
	if blog.Published {
		return blog, nil
	}

	blog.Publish(srv.now().UTC())
	if err := srv.blogRepo.Update(ctx, blog); err != nil {
		return nil, translateRepoError(err, "failed to publish blog")
	}
	srv.log(ctx).Info("Blog published", slog.Any("blog_id", blog.ID))

	return blog, nil
}

// GetBlog returns a published blog. Drafts are reported as missing.
func (srv *blogService) GetBlog(ctx context.Context, blogID uuid.UUID) (*entity.Blog, error) {
	blog, err := srv.blogRepo.FindByID(ctx, blogID)
	if err != nil {
		return nil, translateRepoError(err, "failed to get blog")
	}
	if !blog.Published {
		return nil, domainerrors.ErrBlogNotFound.WrapMessage("blog is not published")
	}

	return blog, nil
}

func (srv *blogService) ListPublishedBlogs(ctx context.Context, limit, offset int) ([]*entity.Blog, error) {
	limit, offset = normalizePage(limit, offset)

	blogs, err := srv.blogRepo.FindPublished(ctx, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list blogs")
	}

	return blogs, nil
}

func (srv *blogService) ownedBlog(ctx context.Context, authorID, blogID uuid.UUID) (*entity.Blog, error) {
	blog, err := srv.blogRepo.FindByID(ctx, blogID)
	if err != nil {
		return nil, translateRepoError(err, "failed to find blog")
	}
	if blog.AuthorID != authorID {
		return nil, domainerrors.ErrForbidden.WrapMessage("blog written by another author")
	}

	return blog, nil
}

func validateBlogInput(input *usecase.BlogInput) error {
	if input == nil {
		return validationError("blog is required")
	}

	title := strings.TrimSpace(input.Title)
	switch {
	case title == "":
		return validationError("title is required")
	case len(title) > entity.BlogTitleMaxLength:
		return validationError("title is too long")
	case strings.TrimSpace(input.Content) == "":
		return validationError("content is required")
	}

	return nil
}

func applyBlogInput(blog *entity.Blog, input *usecase.BlogInput) {
	blog.CategoryID = input.CategoryID
	blog.Title = strings.TrimSpace(input.Title)
	blog.Summary = strings.TrimSpace(input.Summary)
	blog.Content = input.Content
	blog.ImageKey = input.ImageKey
}

type eventService struct {
	eventRepo repository.EventRepository
	logger    *slog.Logger
	now       func() time.Time
}

// NewEventService creates the seller event usecase.
func NewEventService(eventRepo repository.EventRepository, logger *slog.Logger) usecase.EventUsecase {
	return &eventService{
		eventRepo: eventRepo,
		logger:    logger,
		now:       time.Now,
	}
}

func (srv *eventService) CreateEvent(ctx context.Context, organizerID uuid.UUID, input *usecase.EventInput) (*entity.Event, error) {
	if err := validateEventInput(input); err != nil {
		return nil, err
	}

	event := &entity.Event{OrganizerID: organizerID}
	applyEventInput(event, input)

	if err := srv.eventRepo.Create(ctx, event); err != nil {
		return nil, errors.Wrap(err, "failed to create event")
	}
	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Event created", slog.Any("event_id", event.ID))

	return event, nil
}

func (srv *eventService) UpdateEvent(ctx context.Context, organizerID, eventID uuid.UUID, input *usecase.EventInput) (*entity.Event, error) {
	if err := validateEventInput(input); err != nil {
		return nil, err
	}

	event, err := srv.ownedEvent(ctx, organizerID, eventID)
	if err != nil {
		return nil, err
	}

	applyEventInput(event, input)
	if err := srv.eventRepo.Update(ctx, event); err != nil {
		return nil, translateRepoError(err, "failed to update event")
	}

	return event, nil
}

func (srv *eventService) DeleteEvent(ctx context.Context, organizerID, eventID uuid.UUID) error {
	if _, err := srv.ownedEvent(ctx, organizerID, eventID); err != nil {
		return err
	}

	if err := srv.eventRepo.Delete(ctx, eventID); err != nil {
		return translateRepoError(err, "failed to delete event")
	}

	return nil
}

func (srv *eventService) GetEvent(ctx context.Context, eventID uuid.UUID) (*entity.Event, error) {
	event, err := srv.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		return nil, translateRepoError(err, "failed to get event")
	}

	return event, nil
}

// ListUpcomingEvents returns active events that have not ended yet, soonest first.
func (srv *eventService) ListUpcomingEvents(ctx context.Context, limit int) ([]*entity.Event, error) {
	limit, _ = normalizePage(limit, 0)

	events, err := srv.eventRepo.FindUpcoming(ctx, srv.now().UTC(), limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list events")
	}

	return events, nil
}

func (srv *eventService) ownedEvent(ctx context.Context, organizerID, eventID uuid.UUID) (*entity.Event, error) {
	event, err := srv.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		return nil, translateRepoError(err, "failed to find event")
	}
	if event.OrganizerID != organizerID {
		return nil, domainerrors.ErrForbidden.WrapMessage("event organized by another seller")
	}

	return event, nil
}

func validateEventInput(input *usecase.EventInput) error {
	if input == nil {
		return validationError("event is required")
	}

	title := strings.TrimSpace(input.Title)
	switch {
	case title == "":
		return validationError("title is required")
	case len(title) > entity.EventTitleMaxLength:
		return validationError("title is too long")
	case input.StartsAt.IsZero() || input.EndsAt.IsZero():
		return validationError("starts_at and ends_at are required")
	case !input.StartsAt.Before(input.EndsAt):
		return validationError("starts_at must be before ends_at")
	}

	return nil
}

func applyEventInput(event *entity.Event, input *usecase.EventInput) {
	event.Title = strings.TrimSpace(input.Title)
	event.Description = strings.TrimSpace(input.Description)
	event.Location = strings.TrimSpace(input.Location)
	event.ImageKey = input.ImageKey
	event.StartsAt = input.StartsAt.UTC()
	event.EndsAt = input.EndsAt.UTC()
	event.Active = input.Active
}
