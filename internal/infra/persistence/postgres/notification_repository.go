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

const notificationBatchSize = 100

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// Create persists a new notification.
func (repo *notificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	notificationM := fromNotificationDomain(notification)

	if err := repo.db.WithContext(ctx).Create(notificationM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid recipient or sender reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required notification information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create notification")
	}

	notification.ID = notificationM.ID
	notification.CreatedAt = notificationM.CreatedAt

	return nil
}

// CreateBatch inserts the notifications in chunks of notificationBatchSize.
func (repo *notificationRepository) CreateBatch(ctx context.Context, notifications []*entity.Notification) error {
	if len(notifications) == 0 {
		return nil
	}

	notificationModels := make([]*model.NotificationModel, 0, len(notifications))
	for _, notification := range notifications {
		notificationModels = append(notificationModels, fromNotificationDomain(notification))
	}

	if err := repo.db.WithContext(ctx).CreateInBatches(notificationModels, notificationBatchSize).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid recipient or sender reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create notifications")
	}

	for i, notificationM := range notificationModels {
		notifications[i].ID = notificationM.ID
		notifications[i].CreatedAt = notificationM.CreatedAt
	}

	return nil
}

// FindByID retrieves a notification by its unique ID.
func (repo *notificationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error) {
	var notificationM model.NotificationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&notificationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotificationNotFound
		}

		return nil, errors.Wrap(err, "failed to find notification by ID")
	}

	return toNotificationDomain(&notificationM), nil
}

// FindByUser retrieves the inbox of a user, newest first.
func (repo *notificationRepository) FindByUser(
	ctx context.Context,
	userID uuid.UUID,
	filter repository.NotificationFilter,
) ([]*entity.Notification, error) {
	query := repo.db.WithContext(ctx).Where("user_id = ?", userID)
	if filter.UnreadOnly {
		query = query.Where("read = ?", false)
	}
	if filter.Type != "" {
		query = query.Where("type = ?", string(filter.Type))
	}

	var notificationModels []*model.NotificationModel
	if err := paginate(query, filter.Limit, filter.Offset).
		Order("created_at DESC").
		Find(&notificationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find notifications by user")
	}

	return toNotificationDomains(notificationModels), nil
}

// CountUnread counts the unread notifications of a user.
func (repo *notificationRepository) CountUnread(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("user_id = ? AND read = ?", userID, false).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count unread notifications")
	}

	return count, nil
}

// MarkRead flags one notification of the user as read. Already read
// notifications keep their original read time.
func (repo *notificationRepository) MarkRead(ctx context.Context, id, userID uuid.UUID, at time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]any{
			"read":    true,
			"read_at": gorm.Expr("COALESCE(read_at, ?)", at),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark notification as read")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

// MarkAllRead flags every unread notification of the user.
func (repo *notificationRepository) MarkAllRead(ctx context.Context, userID uuid.UUID, at time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("user_id = ? AND read = ?", userID, false).
		Updates(map[string]any{
			"read":    true,
			"read_at": at,
		})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark notifications as read")
	}

	return result.RowsAffected, nil
}

// FindBySender retrieves the notifications sent by a user with pagination.
func (repo *notificationRepository) FindBySender(ctx context.Context, senderID uuid.UUID, limit, offset int) ([]*entity.Notification, error) {
	var notificationModels []*model.NotificationModel

	query := repo.db.WithContext(ctx).Where("sender_id = ?", senderID)
	if err := paginate(query, limit, offset).
		Order("created_at DESC").
		Find(&notificationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find notifications by sender")
	}

	return toNotificationDomains(notificationModels), nil
}

// --- Mapper Functions ---

func toNotificationDomain(data *model.NotificationModel) *entity.Notification {
	if data == nil {
		return nil
	}

	return &entity.Notification{
		ID:            data.ID,
		UserID:        data.UserID,
		SenderID:      data.SenderID,
		Type:          entity.NotificationType(data.Type),
		Priority:      entity.NotificationPriority(data.Priority),
		RecipientKind: entity.RecipientKind(data.RecipientKind),
		Title:         data.Title,
		Message:       data.Message,
		Read:          data.Read,
		ReadAt:        data.ReadAt,
		CreatedAt:     data.CreatedAt,
	}
}

func toNotificationDomains(models []*model.NotificationModel) []*entity.Notification {
	notifications := make([]*entity.Notification, 0, len(models))
	for _, notificationM := range models {
		notifications = append(notifications, toNotificationDomain(notificationM))
	}

	return notifications
}

func fromNotificationDomain(data *entity.Notification) *model.NotificationModel {
	if data == nil {
		return nil
	}

	priority := data.Priority
	if priority == "" {
		priority = entity.PriorityNormal
	}
	kind := data.RecipientKind
	if kind == "" {
		kind = entity.RecipientIndividual
	}

	return &model.NotificationModel{
		ID:            data.ID,
		UserID:        data.UserID,
		SenderID:      data.SenderID,
		Type:          string(data.Type),
		Priority:      string(priority),
		RecipientKind: string(kind),
		Title:         data.Title,
		Message:       data.Message,
		Read:          data.Read,
		ReadAt:        data.ReadAt,
		CreatedAt:     data.CreatedAt,
	}
}
