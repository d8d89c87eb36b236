package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"marketplace/config"
	mockUC "marketplace/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// jobHandlerFixtures holds all test dependencies for job handler tests.
type jobHandlerFixtures struct {
	handler   *JobHandler
	couponUC  *mockUC.MockCouponUsecase
	metricsUC *mockUC.MockMetricsUsecase
	sessionUC *mockUC.MockSessionUsecase
	now       time.Time
}

func createTestJobHandler(t *testing.T, token string) jobHandlerFixtures {
	couponUC := mockUC.NewMockCouponUsecase(t)
	metricsUC := mockUC.NewMockMetricsUsecase(t)
	sessionUC := mockUC.NewMockSessionUsecase(t)

	h := NewJobHandler(JobHandlerParams{
		Config:    &config.Config{Worker: &config.WorkerConfig{JobToken: token}},
		Logger:    newDiscardLogger(),
		CouponUC:  couponUC,
		MetricsUC: metricsUC,
		SessionUC: sessionUC,
	})
	now := time.Date(2025, 5, 20, 3, 0, 0, 0, time.UTC)
	h.now = func() time.Time { return now }

	return jobHandlerFixtures{handler: h, couponUC: couponUC, metricsUC: metricsUC, sessionUC: sessionUC, now: now}
}

func serveJob(fx jobHandlerFixtures, target, authorization string) *httptest.ResponseRecorder {
	e := echo.New()
	jobs := e.Group("/jobs", fx.handler.RequireJobToken)
	jobs.POST("/coupons/expire", fx.handler.ExpireCoupons)
	jobs.POST("/metrics/snapshot", fx.handler.SnapshotMetrics)
	jobs.POST("/sessions/cleanup", fx.handler.CleanupSessions)

	req := httptest.NewRequest(http.MethodPost, target, nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestJobHandler_RequireJobToken(t *testing.T) {
	t.Run("no token configured", func(t *testing.T) {
		fx := createTestJobHandler(t, "")

		rec := serveJob(fx, "/jobs/sessions/cleanup", "Bearer anything")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("wrong token", func(t *testing.T) {
		fx := createTestJobHandler(t, "s3cret")

		rec := serveJob(fx, "/jobs/sessions/cleanup", "Bearer guess")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("missing header", func(t *testing.T) {
		fx := createTestJobHandler(t, "s3cret")

		rec := serveJob(fx, "/jobs/sessions/cleanup", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestJobHandler_ExpireCoupons(t *testing.T) {
	fx := createTestJobHandler(t, "s3cret")
	fx.couponUC.EXPECT().DeactivateExpiredCoupons(mock.Anything, fx.now).Return(int64(3), nil)

	rec := serveJob(fx, "/jobs/coupons/expire", "Bearer s3cret")
	require.Equal(t, http.StatusOK, rec.Code)

	var body jobResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, jobResponse{Job: "coupons.expire", Affected: 3}, body)
}

func TestJobHandler_SnapshotMetrics(t *testing.T) {
	t.Run("defaults to yesterday", func(t *testing.T) {
		fx := createTestJobHandler(t, "s3cret")
		fx.metricsUC.EXPECT().SnapshotDailyMetrics(mock.Anything, fx.now.AddDate(0, 0, -1)).Return(4, nil)

		rec := serveJob(fx, "/jobs/metrics/snapshot", "Bearer s3cret")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("explicit day", func(t *testing.T) {
		fx := createTestJobHandler(t, "s3cret")
		fx.metricsUC.EXPECT().SnapshotDailyMetrics(mock.Anything, time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)).Return(1, nil)

		rec := serveJob(fx, "/jobs/metrics/snapshot?day=2025-01-02", "Bearer s3cret")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("bad day", func(t *testing.T) {
		fx := createTestJobHandler(t, "s3cret")

		rec := serveJob(fx, "/jobs/metrics/snapshot?day=02/01/2025", "Bearer s3cret")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestJobHandler_CleanupSessions_Failure(t *testing.T) {
	fx := createTestJobHandler(t, "s3cret")
	fx.sessionUC.EXPECT().CleanupExpiredSessions(mock.Anything).Return(int64(0), errors.New("connection reset"))

	rec := serveJob(fx, "/jobs/sessions/cleanup", "Bearer s3cret")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
