package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "marketplace/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "business error keeps details",
			err:        errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("quantity: is required")),
			wantStatus: http.StatusBadRequest,
			wantBody:   `"details":"quantity: is required"`,
		},
		{
			name:       "database error hides details",
			err:        domainerrors.NewDatabaseExecuteError(errors.New("pq: deadlock detected"), "orders insert"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"code":"DATABASE_EXECUTE_FAILED"`,
		},
		{
			name:       "echo error",
			err:        echo.NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed"),
			wantStatus: http.StatusMethodNotAllowed,
			wantBody:   `"code":"HTTP_ERROR"`,
		},
		{
			name:       "anything else",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"code":"INTERNAL_ERROR"`,
		},
	}

	m := NewErrorMiddleware(newDiscardLogger())
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			m.HandleHTTPError(tc.err, c)

			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tc.wantBody)
			assert.NotContains(t, rec.Body.String(), "deadlock")
		})
	}
}
