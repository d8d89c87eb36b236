package postgres

import (
	"context"
	"time"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// blogRepository implements the repository.BlogRepository interface.
type blogRepository struct {
	db *gorm.DB
}

// NewBlogRepository is the constructor for blogRepository.
func NewBlogRepository(db *gorm.DB) repository.BlogRepository {
	return &blogRepository{db: db}
}

// Create persists a new blog post.
func (repo *blogRepository) Create(ctx context.Context, blog *entity.Blog) error {
	blogM := fromBlogDomain(blog)

	if err := repo.db.WithContext(ctx).Create(blogM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrCategoryNotFound.WrapMessage("invalid author or category reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create blog")
	}

	blog.ID = blogM.ID
	blog.CreatedAt = blogM.CreatedAt
	blog.UpdatedAt = blogM.UpdatedAt

	return nil
}

// FindByID retrieves a blog by its unique ID.
func (repo *blogRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Blog, error) {
	var blogM model.BlogModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&blogM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBlogNotFound
		}

		return nil, errors.Wrap(err, "failed to find blog by ID")
	}

	return toBlogDomain(&blogM), nil
}

// FindPublished lists published blogs, most recently published first.
func (repo *blogRepository) FindPublished(ctx context.Context, limit, offset int) ([]*entity.Blog, error) {
	var blogModels []*model.BlogModel

	query := repo.db.WithContext(ctx).Where("published = ?", true)
	if err := paginate(query, limit, offset).
		Order("published_at DESC").
		Find(&blogModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find published blogs")
	}

	blogs := make([]*entity.Blog, 0, len(blogModels))
	for _, blogM := range blogModels {
		blogs = append(blogs, toBlogDomain(blogM))
	}

	return blogs, nil
}

// Update modifies the editable fields of a blog.
func (repo *blogRepository) Update(ctx context.Context, blog *entity.Blog) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BlogModel{}).
		Where("id = ?", blog.ID).
		Updates(map[string]any{
			"category_id":  blog.CategoryID,
			"title":        blog.Title,
			"summary":      blog.Summary,
			"content":      blog.Content,
			"image_key":    blog.ImageKey,
			"published":    blog.Published,
			"published_at": blog.PublishedAt,
		})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrCategoryNotFound.WrapMessage("invalid category reference")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update blog")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBlogNotFound
	}

	return nil
}

// Delete removes a blog.
func (repo *blogRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.BlogModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete blog")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBlogNotFound
	}

	return nil
}

// eventRepository implements the repository.EventRepository interface.
type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository is the constructor for eventRepository.
func NewEventRepository(db *gorm.DB) repository.EventRepository {
	return &eventRepository{db: db}
}

// Create persists a new event.
func (repo *eventRepository) Create(ctx context.Context, event *entity.Event) error {
	eventM := fromEventDomain(event)

	if err := repo.db.WithContext(ctx).Create(eventM).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("event must end after it starts")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create event")
	}

	event.ID = eventM.ID
	event.CreatedAt = eventM.CreatedAt
	event.UpdatedAt = eventM.UpdatedAt

	return nil
}

// FindByID retrieves an event by its unique ID.
func (repo *eventRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	var eventM model.EventModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&eventM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEventNotFound
		}

		return nil, errors.Wrap(err, "failed to find event by ID")
	}

	return toEventDomain(&eventM), nil
}

// FindUpcoming lists active events that have not ended at now, soonest first.
func (repo *eventRepository) FindUpcoming(ctx context.Context, now time.Time, limit int) ([]*entity.Event, error) {
	var eventModels []*model.EventModel

	query := repo.db.WithContext(ctx).Where("active = ? AND ends_at > ?", true, now)
	if err := paginate(query, limit, 0).
		Order("starts_at ASC").
		Find(&eventModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find upcoming events")
	}

	events := make([]*entity.Event, 0, len(eventModels))
	for _, eventM := range eventModels {
		events = append(events, toEventDomain(eventM))
	}

	return events, nil
}

// Update modifies the editable fields of an event.
func (repo *eventRepository) Update(ctx context.Context, event *entity.Event) error {
	result := repo.db.WithContext(ctx).
		Model(&model.EventModel{}).
		Where("id = ?", event.ID).
		Updates(map[string]any{
			"title":       event.Title,
			"description": event.Description,
			"location":    event.Location,
			"image_key":   event.ImageKey,
			"starts_at":   event.StartsAt,
			"ends_at":     event.EndsAt,
			"active":      event.Active,
		})
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("event must end after it starts")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update event")
	}
	if result.RowsAffected == 0 {
		return repository.ErrEventNotFound
	}

	return nil
}

// Delete removes an event.
func (repo *eventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.EventModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete event")
	}
	if result.RowsAffected == 0 {
		return repository.ErrEventNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toBlogDomain(data *model.BlogModel) *entity.Blog {
	if data == nil {
		return nil
	}

	return &entity.Blog{
		ID:          data.ID,
		AuthorID:    data.AuthorID,
		CategoryID:  data.CategoryID,
		Title:       data.Title,
		Summary:     data.Summary,
		Content:     data.Content,
		ImageKey:    data.ImageKey,
		Published:   data.Published,
		PublishedAt: data.PublishedAt,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromBlogDomain(data *entity.Blog) *model.BlogModel {
	if data == nil {
		return nil
	}

	return &model.BlogModel{
		ID:          data.ID,
		AuthorID:    data.AuthorID,
		CategoryID:  data.CategoryID,
		Title:       data.Title,
		Summary:     data.Summary,
		Content:     data.Content,
		ImageKey:    data.ImageKey,
		Published:   data.Published,
		PublishedAt: data.PublishedAt,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func toEventDomain(data *model.EventModel) *entity.Event {
	if data == nil {
		return nil
	}

	return &entity.Event{
		ID:          data.ID,
		OrganizerID: data.OrganizerID,
		Title:       data.Title,
		Description: data.Description,
		Location:    data.Location,
		ImageKey:    data.ImageKey,
		StartsAt:    data.StartsAt,
		EndsAt:      data.EndsAt,
		Active:      data.Active,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromEventDomain(data *entity.Event) *model.EventModel {
	if data == nil {
		return nil
	}

	return &model.EventModel{
		ID:          data.ID,
		OrganizerID: data.OrganizerID,
		Title:       data.Title,
		Description: data.Description,
		Location:    data.Location,
		ImageKey:    data.ImageKey,
		StartsAt:    data.StartsAt,
		EndsAt:      data.EndsAt,
		Active:      data.Active,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
