package impl

import (
	"context"
	"testing"
	"time"

	deliverycontext "marketplace/internal/delivery/context"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestNewDomainEvent_StampsRequestAndActor(t *testing.T) {
	actorID := uuid.New()
	ctx := deliverycontext.WithRequestID(context.Background(), "req-7")
	ctx = deliverycontext.WithActorID(ctx, actorID)
	now := time.Date(2025, 8, 1, 10, 0, 0, 0, time.FixedZone("UTC+8", 8*3600))

	event := newDomainEvent(ctx, service.EventOrderPlaced, now)

	assert.NotEmpty(t, event.ID)
	assert.Equal(t, "req-7", event.RequestID)
	assert.Equal(t, actorID.String(), event.ActorID)
	assert.Equal(t, time.UTC, event.OccurredAt.Location())
	assert.True(t, now.Equal(event.OccurredAt))
}

func TestNewDomainEvent_OutsideRequest(t *testing.T) {
	event := newDomainEvent(context.Background(), service.EventProductRestocked, time.Now())

	assert.Empty(t, event.RequestID)
	assert.Empty(t, event.ActorID)
}

func TestNormalizePage(t *testing.T) {
	tests := []struct {
		limit, offset         int
		wantLimit, wantOffset int
	}{
		{0, 0, defaultPageLimit, 0},
		{-3, -1, defaultPageLimit, 0},
		{500, 40, maxPageLimit, 40},
		{10, 5, 10, 5},
	}

	for _, tt := range tests {
		limit, offset := normalizePage(tt.limit, tt.offset)
		assert.Equal(t, tt.wantLimit, limit)
		assert.Equal(t, tt.wantOffset, offset)
	}
}

func TestTranslateRepoError(t *testing.T) {
	assert.NoError(t, translateRepoError(nil, "ignored"))

	err := translateRepoError(errors.WithStack(repository.ErrProductNotFound), "load product")
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)

	err = translateRepoError(errors.New("connection reset"), "load product")
	assert.ErrorContains(t, err, "load product: connection reset")
	assert.True(t, domainerrors.IsRetryable(err))
}
