package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "marketplace/internal/delivery/context"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// repositoryErrors maps repository sentinels onto the application errors returned to callers.
var repositoryErrors = []struct {
	sentinel error
	appErr   *domainerrors.BaseError
}{
	{repository.ErrUserNotFound, domainerrors.ErrUserNotFound},
	{repository.ErrRefreshTokenNotFound, domainerrors.ErrRefreshTokenInvalid},
	{repository.ErrRefreshTokenExpired, domainerrors.ErrRefreshTokenInvalid},
	{repository.ErrAddressNotFound, domainerrors.ErrAddressNotFound},
	{repository.ErrDeviceNotFound, domainerrors.ErrDeviceNotFound},
	{repository.ErrDuplicateDevice, domainerrors.ErrConflict},
	{repository.ErrCategoryNotFound, domainerrors.ErrCategoryNotFound},
	{repository.ErrDuplicateCategory, domainerrors.ErrCategoryAlreadyExist},
	{repository.ErrProductNotFound, domainerrors.ErrProductNotFound},
	{repository.ErrInsufficientStock, domainerrors.ErrInsufficientStock},
	{repository.ErrCartItemNotFound, domainerrors.ErrCartItemNotFound},
	{repository.ErrCouponNotFound, domainerrors.ErrCouponNotFound},
	{repository.ErrDuplicateCoupon, domainerrors.ErrCouponAlreadyExists},
	{repository.ErrCouponUnavailable, domainerrors.ErrInvalidCoupon},
	{repository.ErrOrderNotFound, domainerrors.ErrOrderNotFound},
	{repository.ErrPreOrderNotFound, domainerrors.ErrPreOrderNotFound},
	{repository.ErrStatusConflict, domainerrors.ErrInvalidTransition},
	{repository.ErrReviewNotFound, domainerrors.ErrReviewNotFound},
	{repository.ErrDuplicateReview, domainerrors.ErrReviewAlreadyExists},
	{repository.ErrFavoriteNotFound, domainerrors.ErrFavoriteNotFound},
	{repository.ErrDuplicateFavorite, domainerrors.ErrFavoriteAlreadyExists},
	{repository.ErrNotificationNotFound, domainerrors.ErrNotificationNotFound},
	{repository.ErrBlogNotFound, domainerrors.ErrBlogNotFound},
	{repository.ErrEventNotFound, domainerrors.ErrEventNotFound},
}

// translateRepoError converts a repository sentinel into its application error and
// wraps everything else with message.
func translateRepoError(err error, message string) error {
	if err == nil {
		return nil
	}

	for _, mapping := range repositoryErrors {
		if errors.Is(err, mapping.sentinel) {
			return mapping.appErr.WrapMessage(message)
		}
	}

	return errors.Wrap(err, message)
}

// validationError builds a VALIDATION_FAILED error carrying details for the client.
func validationError(details string) error {
	return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(details))
}

// normalizePage clamps pagination to sane bounds.
func normalizePage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	if offset < 0 {
		offset = 0
	}

	return limit, offset
}

// newDomainEvent stamps an event with an ID plus the request and actor found in ctx.
func newDomainEvent(ctx context.Context, eventType service.EventType, now time.Time) *service.DomainEvent {
	event := &service.DomainEvent{
		ID:         uuid.NewString(),
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       eventType,
		OccurredAt: now.UTC(),
	}
	if actorID, ok := deliverycontext.GetActorID(ctx); ok {
		event.ActorID = actorID.String()
	}

	return event
}

// publishAfterCommit hands event to the publisher. Delivery is best effort: the write it
// describes is already committed, so a failure is logged and swallowed.
func publishAfterCommit(ctx context.Context, logger *slog.Logger, publisher service.EventPublisher, event *service.DomainEvent) {
	if publisher == nil || event == nil {
		return
	}

	if err := publisher.Publish(ctx, event); err != nil {
		logger.Warn("Failed to publish domain event",
			slog.String("event_id", event.ID),
			slog.String("event_type", string(event.Type)),
			slog.Any("error", err),
		)
	}
}

func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}

	return out
}

func trimmedOrEmpty(s *string) string {
	if s == nil {
		return ""
	}

	return strings.TrimSpace(*s)
}
