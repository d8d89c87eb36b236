package handler

import (
	"net/http"
	"strconv"

	"marketplace/internal/delivery/api/middleware"
	"marketplace/internal/delivery/api/response"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// NotificationHandlerParams holds dependencies for NotificationHandler, injected by Fx.
type NotificationHandlerParams struct {
	fx.In

	NotificationUC usecase.NotificationUsecase
}

// NotificationHandler serves the inbox and the seller notification tools.
type NotificationHandler struct {
	notificationUC usecase.NotificationUsecase
}

// NewNotificationHandler is the constructor for NotificationHandler.
func NewNotificationHandler(params NotificationHandlerParams) *NotificationHandler {
	return &NotificationHandler{notificationUC: params.NotificationUC}
}

// SendNotificationRequest represents a notification to one user.
type SendNotificationRequest struct {
	UserID   uuid.UUID `json:"user_id" validate:"required"`
	Type     string    `json:"type" validate:"required"`
	Priority string    `json:"priority" validate:"omitempty,oneof=low normal high urgent"`
	Title    string    `json:"title" validate:"required,max=200"`
	Message  string    `json:"message" validate:"required,max=2000"`
}

// BroadcastRequest represents a notification fanned out to an audience.
type BroadcastRequest struct {
	Audience string      `json:"audience" validate:"required,oneof=all buyers users"`
	UserIDs  []uuid.UUID `json:"user_ids" validate:"required_if=Audience users"`
	Type     string      `json:"type" validate:"required"`
	Priority string      `json:"priority" validate:"omitempty,oneof=low normal high urgent"`
	Title    string      `json:"title" validate:"required,max=200"`
	Message  string      `json:"message" validate:"required,max=2000"`
}

// SendNotification stores and pushes a notification from the calling seller to one user.
func (h *NotificationHandler) SendNotification(c echo.Context) error {
	senderID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	var req SendNotificationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	notification, err := h.notificationUC.Send(c.Request().Context(), &usecase.SendNotificationInput{
		UserID:   req.UserID,
		SenderID: &senderID,
		Type:     entity.NotificationType(req.Type),
		Priority: entity.NotificationPriority(req.Priority),
		Title:    req.Title,
		Message:  req.Message,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, notification)
}

// Broadcast stores and pushes a notification from the calling seller to an audience.
func (h *NotificationHandler) Broadcast(c echo.Context) error {
	senderID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	var req BroadcastRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.notificationUC.Broadcast(c.Request().Context(), &usecase.BroadcastInput{
		Audience: entity.Audience(req.Audience),
		UserIDs:  req.UserIDs,
		SenderID: &senderID,
		Type:     entity.NotificationType(req.Type),
		Priority: entity.NotificationPriority(req.Priority),
		Title:    req.Title,
		Message:  req.Message,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusAccepted, map[string]int{"recipients": output.Recipients})
}

// SentHistory lists the notifications sent by the calling seller.
func (h *NotificationHandler) SentHistory(c echo.Context) error {
	senderID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	limit, offset, err := pageParams(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	notifications, err := h.notificationUC.SentHistory(c.Request().Context(), senderID, limit, offset)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithPage(c, notifications, &response.PageInfo{Limit: limit, Offset: offset})
}

// ListMine lists the caller's inbox, narrowed by the unread and type query parameters.
func (h *NotificationHandler) ListMine(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	limit, offset, err := pageParams(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	unreadOnly := false
	if raw := c.QueryParam("unread"); raw != "" {
		if unreadOnly, err = strconv.ParseBool(raw); err != nil {
			return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails("unread: must be a boolean"))
		}
	}

	notifications, err := h.notificationUC.ListMine(c.Request().Context(), userID, &usecase.ListNotificationsInput{
		UnreadOnly: unreadOnly,
		Type:       entity.NotificationType(c.QueryParam("type")),
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithPage(c, notifications, &response.PageInfo{Limit: limit, Offset: offset})
}

// UnreadCount counts the caller's unread notifications.
func (h *NotificationHandler) UnreadCount(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	count, err := h.notificationUC.UnreadCount(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"unread": count})
}

// MarkRead marks one of the caller's notifications as read.
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	notificationID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.notificationUC.MarkRead(c.Request().Context(), userID, notificationID); err != nil {
		return response.HandleAppError(c, err)
	}

	return acknowledge(c, "Notification marked as read")
}

// MarkAllRead marks the caller's whole inbox as read.
func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	updated, err := h.notificationUC.MarkAllRead(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"updated": updated})
}
