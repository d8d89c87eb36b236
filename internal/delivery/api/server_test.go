package api

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"marketplace/config"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newLimitedEcho(maxImageBytes int64) *echo.Echo {
	cfg := &config.Config{Storage: &config.StorageConfig{MaxImageBytes: maxImageBytes}}
	cfg.HTTP.MaxRequestBodySize = "1KB"

	e := echo.New()
	e.Use(bodyLimits(cfg)...)
	e.POST("/upload", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) })

	return e
}

func TestBodyLimits(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		size        int
		wantStatus  int
	}{
		{name: "small json", contentType: echo.MIMEApplicationJSON, size: 512, wantStatus: http.StatusNoContent},
		{name: "large json", contentType: echo.MIMEApplicationJSON, size: 4 << 10, wantStatus: http.StatusRequestEntityTooLarge},
		{name: "image within limit", contentType: echo.MIMEMultipartForm + "; boundary=x", size: 200 << 10, wantStatus: http.StatusNoContent},
		{name: "image over limit", contentType: echo.MIMEMultipartForm + "; boundary=x", size: 2 << 20, wantStatus: http.StatusRequestEntityTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newLimitedEcho(1 << 20)
			req := httptest.NewRequest(http.MethodPost, "/upload", bytes.NewReader([]byte(strings.Repeat("x", tt.size))))
			req.Header.Set(echo.HeaderContentType, tt.contentType)
			rec := httptest.NewRecorder()

			e.ServeHTTP(rec, req)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestBodyLimits_WithoutStorageConfig(t *testing.T) {
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1KB"

	assert.Len(t, bodyLimits(cfg), 1)
}
