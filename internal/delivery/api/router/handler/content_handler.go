package handler

import (
	"net/http"
	"time"

	"marketplace/internal/delivery/api/middleware"
	"marketplace/internal/delivery/api/response"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ContentHandlerParams holds dependencies for ContentHandler, injected by Fx.
type ContentHandlerParams struct {
	fx.In

	BlogUC  usecase.BlogUsecase
	EventUC usecase.EventUsecase
}

// ContentHandler serves seller blogs and events.
type ContentHandler struct {
	blogUC  usecase.BlogUsecase
	eventUC usecase.EventUsecase
}

// NewContentHandler is the constructor for ContentHandler.
func NewContentHandler(params ContentHandlerParams) *ContentHandler {
	return &ContentHandler{
		blogUC:  params.BlogUC,
		eventUC: params.EventUC,
	}
}

// BlogRequest represents the request body for creating or replacing a blog post.
type BlogRequest struct {
	CategoryID *uuid.UUID `json:"category_id"`
	Title      string     `json:"title" validate:"required"`
	Summary    string     `json:"summary" validate:"max=500"`
	Content    string     `json:"content" validate:"required"`
	ImageKey   string     `json:"image_key" validate:"max=255"`
}

func (r *BlogRequest) toInput() *usecase.BlogInput {
	return &usecase.BlogInput{
		CategoryID: r.CategoryID,
		Title:      r.Title,
		Summary:    r.Summary,
		Content:    r.Content,
		ImageKey:   r.ImageKey,
	}
}

// EventRequest represents the request body for creating or replacing an event.
type EventRequest struct {
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description" validate:"max=2000"`
	Location    string    `json:"location" validate:"max=255"`
	ImageKey    string    `json:"image_key" validate:"max=255"`
	StartsAt    time.Time `json:"starts_at" validate:"required"`
	EndsAt      time.Time `json:"ends_at" validate:"required"`
	Active      *bool     `json:"active"`
}

func (r *EventRequest) toInput() *usecase.EventInput {
	active := true
	if r.Active != nil {
		active = *r.Active
	}

	return &usecase.EventInput{
		Title:       r.Title,
		Description: r.Description,
		Location:    r.Location,
		ImageKey:    r.ImageKey,
		StartsAt:    r.StartsAt,
		EndsAt:      r.EndsAt,
		Active:      active,
	}
}

// --- Blogs ---

// ListBlogs lists published blog posts.
func (h *ContentHandler) ListBlogs(c echo.Context) error {
	limit, offset, err := pageParams(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	blogs, err := h.blogUC.ListPublishedBlogs(c.Request().Context(), limit, offset)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithPage(c, blogs, &response.PageInfo{Limit: limit, Offset: offset})
}

// GetBlog returns a published blog post.
func (h *ContentHandler) GetBlog(c echo.Context) error {
	blogID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	blog, err := h.blogUC.GetBlog(c.Request().Context(), blogID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, blog)
}

// CreateBlog drafts a blog post for the calling seller.
func (h *ContentHandler) CreateBlog(c echo.Context) error {
	authorID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	var req BlogRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	blog, err := h.blogUC.CreateBlog(c.Request().Context(), authorID, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, blog)
}

// UpdateBlog replaces one of the calling seller's blog posts.
func (h *ContentHandler) UpdateBlog(c echo.Context) error {
	authorID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	blogID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req BlogRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	blog, err := h.blogUC.UpdateBlog(c.Request().Context(), authorID, blogID, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, blog)
}

// PublishBlog makes one of the calling seller's drafts public.
func (h *ContentHandler) PublishBlog(c echo.Context) error {
	authorID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	blogID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	blog, err := h.blogUC.PublishBlog(c.Request().Context(), authorID, blogID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, blog)
}

// DeleteBlog removes one of the calling seller's blog posts.
func (h *ContentHandler) DeleteBlog(c echo.Context) error {
	authorID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	blogID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.blogUC.DeleteBlog(c.Request().Context(), authorID, blogID); err != nil {
		return response.HandleAppError(c, err)
	}

	return acknowledge(c, "Blog deleted")
}

// --- Events ---

// ListUpcomingEvents lists active events that have not ended.
func (h *ContentHandler) ListUpcomingEvents(c echo.Context) error {
	limit, _, err := pageParams(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	events, err := h.eventUC.ListUpcomingEvents(c.Request().Context(), limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, events)
}

// GetEvent returns one event.
func (h *ContentHandler) GetEvent(c echo.Context) error {
	eventID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	event, err := h.eventUC.GetEvent(c.Request().Context(), eventID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, event)
}

// CreateEvent schedules an event organized by the calling seller.
func (h *ContentHandler) CreateEvent(c echo.Context) error {
	organizerID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	var req EventRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	event, err := h.eventUC.CreateEvent(c.Request().Context(), organizerID, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, event)
}

// UpdateEvent replaces one of the calling seller's events.
func (h *ContentHandler) UpdateEvent(c echo.Context) error {
	organizerID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	eventID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req EventRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	event, err := h.eventUC.UpdateEvent(c.Request().Context(), organizerID, eventID, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, event)
}

// DeleteEvent removes one of the calling seller's events.
func (h *ContentHandler) DeleteEvent(c echo.Context) error {
	organizerID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	eventID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.eventUC.DeleteEvent(c.Request().Context(), organizerID, eventID); err != nil {
		return response.HandleAppError(c, err)
	}

	return acknowledge(c, "Event deleted")
}
