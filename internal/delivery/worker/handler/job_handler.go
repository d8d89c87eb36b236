package handler

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"marketplace/config"
	"marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// JobHandler runs maintenance jobs triggered by a scheduler.
type JobHandler struct {
	token     string
	logger    *slog.Logger
	couponUC  usecase.CouponUsecase
	metricsUC usecase.MetricsUsecase
	sessionUC usecase.SessionUsecase
	now       func() time.Time
}

// JobHandlerParams holds dependencies for the JobHandler
type JobHandlerParams struct {
	fx.In

	Config    *config.Config
	Logger    *slog.Logger
	CouponUC  usecase.CouponUsecase
	MetricsUC usecase.MetricsUsecase
	SessionUC usecase.SessionUsecase
}

// NewJobHandler creates a new job handler
func NewJobHandler(params JobHandlerParams) *JobHandler {
	var token string
	if params.Config.Worker != nil {
		token = params.Config.Worker.JobToken
	}

	return &JobHandler{
		token:     token,
		logger:    params.Logger,
		couponUC:  params.CouponUC,
		metricsUC: params.MetricsUC,
		sessionUC: params.SessionUC,
		now:       time.Now,
	}
}

// jobResponse reports what a job did.
type jobResponse struct {
	Job      string `json:"job"`
	Affected int64  `json:"affected"`
}

// RequireJobToken rejects requests without the configured bearer token.
// Without a configured token every job request is refused.
func (h *JobHandler) RequireJobToken(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if h.token == "" {
			return c.NoContent(http.StatusNotFound)
		}

		token, ok := strings.CutPrefix(c.Request().Header.Get(echo.HeaderAuthorization), "Bearer ")
		if !ok || subtle.ConstantTimeCompare([]byte(token), []byte(h.token)) != 1 {
			h.logger.Warn("[Worker] Rejected job request", slog.String("path", c.Path()))

			return c.NoContent(http.StatusUnauthorized)
		}

		return next(c)
	}
}

// ExpireCoupons deactivates coupons whose validity window has closed.
func (h *JobHandler) ExpireCoupons(c echo.Context) error {
	started := time.Now()
	count, err := h.couponUC.DeactivateExpiredCoupons(c.Request().Context(), h.now())
	if err != nil {
		return h.failed(c, "coupons.expire", err)
	}

	return h.done(c, "coupons.expire", count, started)
}

// SnapshotMetrics stores the daily stats of every seller. The optional
// day query (YYYY-MM-DD) defaults to yesterday.
func (h *JobHandler) SnapshotMetrics(c echo.Context) error {
	day := h.now().UTC().AddDate(0, 0, -1)
	if raw := c.QueryParam("day"); raw != "" {
		parsed, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "day must be YYYY-MM-DD"})
		}
		day = parsed
	}

	started := time.Now()
	written, err := h.metricsUC.SnapshotDailyMetrics(c.Request().Context(), day)
	if err != nil {
		return h.failed(c, "metrics.snapshot", err)
	}

	return h.done(c, "metrics.snapshot", int64(written), started)
}

// CleanupSessions removes expired refresh tokens.
func (h *JobHandler) CleanupSessions(c echo.Context) error {
	started := time.Now()
	count, err := h.sessionUC.CleanupExpiredSessions(c.Request().Context())
	if err != nil {
		return h.failed(c, "sessions.cleanup", err)
	}

	return h.done(c, "sessions.cleanup", count, started)
}

func (h *JobHandler) done(c echo.Context, job string, affected int64, started time.Time) error {
	h.logger.Info("[Worker] Job finished",
		slog.String("job", job),
		slog.Int64("affected", affected),
		slog.Duration("elapsed", time.Since(started).Round(time.Millisecond)),
	)

	return c.JSON(http.StatusOK, jobResponse{Job: job, Affected: affected})
}

func (h *JobHandler) failed(c echo.Context, job string, err error) error {
	h.logger.Error("[Worker] Job failed", slog.String("job", job), slog.Any("error", err))

	return c.NoContent(http.StatusInternalServerError)
}
