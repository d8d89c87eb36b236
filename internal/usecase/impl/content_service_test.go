package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	mockRepo "marketplace/internal/mocks/repository"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestBlogService(t *testing.T, now time.Time) (usecase.BlogUsecase, *mockRepo.MockBlogRepository) {
	blogRepo := mockRepo.NewMockBlogRepository(t)
	svc := NewBlogService(blogRepo, newDiscardLogger())
	svc.(*blogService).now = fixedClock(now)

	return svc, blogRepo
}

func TestBlogService_CreateBlog_Validation(t *testing.T) {
	cases := map[string]*usecase.BlogInput{
		"missing title":   {Content: "body"},
		"title too long":  {Title: strings.Repeat("x", entity.BlogTitleMaxLength+1), Content: "body"},
		"missing content": {Title: "Harvest notes", Content: "   "},
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			svc, _ := newTestBlogService(t, time.Now())

			_, err := svc.CreateBlog(context.Background(), uuid.New(), input)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestBlogService_CreateBlog_StartsAsDraft(t *testing.T) {
	svc, blogRepo := newTestBlogService(t, time.Now())
	ctx := context.Background()
	authorID := uuid.New()

	blogRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(b *entity.Blog) bool { return !b.Published && b.AuthorID == authorID })).
		Return(nil)

	blog, err := svc.CreateBlog(ctx, authorID, &usecase.BlogInput{Title: " Harvest notes ", Content: "It rained."})
	require.NoError(t, err)
	assert.Equal(t, "Harvest notes", blog.Title)
}

func TestBlogService_PublishBlog(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	ctx := context.Background()
	authorID := uuid.New()

	t.Run("draft gets published", func(t *testing.T) {
		svc, blogRepo := newTestBlogService(t, now)
		blog := &entity.Blog{ID: uuid.New(), AuthorID: authorID}

		blogRepo.EXPECT().FindByID(ctx, blog.ID).Return(blog, nil)
		blogRepo.EXPECT().Update(ctx, blog).Return(nil)

		published, err := svc.PublishBlog(ctx, authorID, blog.ID)
		require.NoError(t, err)
		assert.True(t, published.Published)
		require.NotNil(t, published.PublishedAt)
		assert.Equal(t, now, *published.PublishedAt)
	})

	t.Run("already published keeps first time", func(t *testing.T) {
		svc, blogRepo := newTestBlogService(t, now)
		first := now.Add(-48 * time.Hour)
		blog := &entity.Blog{ID: uuid.New(), AuthorID: authorID, Published: true, PublishedAt: &first}

		blogRepo.EXPECT().FindByID(ctx, blog.ID).Return(blog, nil)

		published, err := svc.PublishBlog(ctx, authorID, blog.ID)
		require.NoError(t, err)
		assert.Equal(t, first, *published.PublishedAt)
		blogRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("another author", func(t *testing.T) {
		svc, blogRepo := newTestBlogService(t, now)
		blog := &entity.Blog{ID: uuid.New(), AuthorID: uuid.New()}

		blogRepo.EXPECT().FindByID(ctx, blog.ID).Return(blog, nil)

		_, err := svc.PublishBlog(ctx, authorID, blog.ID)
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})
}

func TestBlogService_GetBlog_HidesDrafts(t *testing.T) {
	svc, blogRepo := newTestBlogService(t, time.Now())
	ctx := context.Background()
	draft := &entity.Blog{ID: uuid.New(), AuthorID: uuid.New()}

	blogRepo.EXPECT().FindByID(ctx, draft.ID).Return(draft, nil)

	_, err := svc.GetBlog(ctx, draft.ID)
	assert.ErrorIs(t, err, domainerrors.ErrBlogNotFound)
}

func TestEventService_CreateEvent(t *testing.T) {
	ctx := context.Background()
	startsAt := time.Date(2025, 7, 4, 10, 0, 0, 0, time.UTC)

	t.Run("valid", func(t *testing.T) {
		eventRepo := mockRepo.NewMockEventRepository(t)
		svc := NewEventService(eventRepo, newDiscardLogger())
		organizerID := uuid.New()

		eventRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Event")).Return(nil)

		event, err := svc.CreateEvent(ctx, organizerID, &usecase.EventInput{
			Title:    "Farmers market",
			Location: "Town square",
			StartsAt: startsAt,
			EndsAt:   startsAt.Add(4 * time.Hour),
			Active:   true,
		})
		require.NoError(t, err)
		assert.Equal(t, organizerID, event.OrganizerID)
	})

	t.Run("ends before it starts", func(t *testing.T) {
		svc := NewEventService(mockRepo.NewMockEventRepository(t), newDiscardLogger())

		_, err := svc.CreateEvent(ctx, uuid.New(), &usecase.EventInput{
			Title:    "Farmers market",
			StartsAt: startsAt,
			EndsAt:   startsAt,
		})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("missing times", func(t *testing.T) {
		svc := NewEventService(mockRepo.NewMockEventRepository(t), newDiscardLogger())

		_, err := svc.CreateEvent(ctx, uuid.New(), &usecase.EventInput{Title: "Farmers market"})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestEventService_DeleteEvent_OtherOrganizer(t *testing.T) {
	eventRepo := mockRepo.NewMockEventRepository(t)
	svc := NewEventService(eventRepo, newDiscardLogger())
	ctx := context.Background()
	event := &entity.Event{ID: uuid.New(), OrganizerID: uuid.New()}

	eventRepo.EXPECT().FindByID(ctx, event.ID).Return(event, nil)

	assert.ErrorIs(t, svc.DeleteEvent(ctx, uuid.New(), event.ID), domainerrors.ErrForbidden)
}

func TestEventService_ListUpcomingEvents(t *testing.T) {
	eventRepo := mockRepo.NewMockEventRepository(t)
	svc := NewEventService(eventRepo, newDiscardLogger())
	now := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	svc.(*eventService).now = fixedClock(now)
	ctx := context.Background()

	eventRepo.EXPECT().FindUpcoming(ctx, now, defaultPageLimit).Return([]*entity.Event{{ID: uuid.New()}}, nil)

	events, err := svc.ListUpcomingEvents(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, events, 1)
}
