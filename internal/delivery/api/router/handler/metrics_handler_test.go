package handler

import (
	"net/http"
	"testing"
	"time"

	"marketplace/internal/domain/entity"
	mockUC "marketplace/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMetricsHandler_MetricsHistory(t *testing.T) {
	sellerID := uuid.New()

	t.Run("explicit range", func(t *testing.T) {
		metricsUC := mockUC.NewMockMetricsUsecase(t)
		h := NewMetricsHandler(MetricsHandlerParams{MetricsUC: metricsUC})
		from := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2025, 4, 7, 0, 0, 0, 0, time.UTC)

		metricsUC.EXPECT().
			MetricsHistory(mock.Anything, sellerID, from, to).
			Return([]*entity.SellerMetric{{SellerID: sellerID, Day: from}}, nil)

		c, rec := newTestContext(t, testRequest{
			method: http.MethodGet,
			target: "/api/v1/seller/metrics/history?from=2025-04-01&to=2025-04-07",
			userID: sellerID,
		})
		require.NoError(t, h.MetricsHistory(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("defaults to the last thirty days", func(t *testing.T) {
		metricsUC := mockUC.NewMockMetricsUsecase(t)
		h := NewMetricsHandler(MetricsHandlerParams{MetricsUC: metricsUC})
		now := time.Date(2025, 5, 31, 15, 0, 0, 0, time.UTC)
		h.now = func() time.Time { return now }

		metricsUC.EXPECT().
			MetricsHistory(mock.Anything, sellerID, now.AddDate(0, 0, -30), now).
			Return(nil, nil)

		c, rec := newTestContext(t, testRequest{method: http.MethodGet, target: "/api/v1/seller/metrics/history", userID: sellerID})
		require.NoError(t, h.MetricsHistory(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("malformed date", func(t *testing.T) {
		h := NewMetricsHandler(MetricsHandlerParams{MetricsUC: mockUC.NewMockMetricsUsecase(t)})

		c, rec := newTestContext(t, testRequest{
			method: http.MethodGet,
			target: "/api/v1/seller/metrics/history?from=04/01/2025",
			userID: sellerID,
		})
		require.NoError(t, h.MetricsHistory(c))
		requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
	})
}
