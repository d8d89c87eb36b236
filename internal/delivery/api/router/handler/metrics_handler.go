package handler

import (
	"net/http"
	"time"

	"marketplace/internal/delivery/api/middleware"
	"marketplace/internal/delivery/api/response"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// defaultHistoryDays is the window returned when the history range is omitted.
const defaultHistoryDays = 30

// MetricsHandlerParams holds dependencies for MetricsHandler, injected by Fx.
type MetricsHandlerParams struct {
	fx.In

	MetricsUC usecase.MetricsUsecase
}

// MetricsHandler serves seller dashboards.
type MetricsHandler struct {
	metricsUC usecase.MetricsUsecase
	now       func() time.Time
}

// NewMetricsHandler is the constructor for MetricsHandler.
func NewMetricsHandler(params MetricsHandlerParams) *MetricsHandler {
	return &MetricsHandler{
		metricsUC: params.MetricsUC,
		now:       time.Now,
	}
}

// SellerStats returns the calling seller's live aggregates.
func (h *MetricsHandler) SellerStats(c echo.Context) error {
	sellerID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	stats, err := h.metricsUC.SellerStats(c.Request().Context(), sellerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stats)
}

// MetricsHistory returns the calling seller's daily snapshots between the
// from and to query parameters (YYYY-MM-DD), the last 30 days by default.
func (h *MetricsHandler) MetricsHistory(c echo.Context) error {
	sellerID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	to := h.now().UTC()
	from := to.AddDate(0, 0, -defaultHistoryDays)
	err := echo.QueryParamsBinder(c).
		Time("from", &from, time.DateOnly).
		Time("to", &to, time.DateOnly).
		BindError()
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails("from and to must be dates formatted as YYYY-MM-DD"))
	}

	history, err := h.metricsUC.MetricsHistory(c.Request().Context(), sellerID, from, to)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, history)
}
