package middleware

import (
	"log/slog"
	"net/http"

	"marketplace/config"
	deliverycontext "marketplace/internal/delivery/context"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

// LoggerMiddleware writes one access log line per request. Server errors are
// always logged; everything else only with env.debug.
type LoggerMiddleware struct {
	logger  *slog.Logger
	debug   bool
	handler echo.MiddlewareFunc
}

func NewLoggerMiddleware(logger *slog.Logger, cfg *config.Config) *LoggerMiddleware {
	m := &LoggerMiddleware{logger: logger, debug: cfg.Env.Debug}
	m.handler = echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/health"
		},
		// The error handler runs first so the logged status is the one sent
		HandleError:     true,
		LogMethod:       true,
		LogRoutePath:    true,
		LogURIPath:      true,
		LogStatus:       true,
		LogResponseSize: true,
		LogLatency:      true,
		LogRemoteIP:     true,
		LogUserAgent:    true,
		LogError:        true,
		LogValuesFunc:   m.logValues,
	})

	return m
}

func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return m.handler(next)
}

func (m *LoggerMiddleware) logValues(c echo.Context, v echomiddleware.RequestLoggerValues) error {
	if !m.debug && v.Status < http.StatusInternalServerError {
		return nil
	}

	attrs := []slog.Attr{
		slog.String("method", v.Method),
		slog.String("route", v.RoutePath),
		slog.String("uri", v.URIPath),
		slog.Int("status", v.Status),
		slog.Int64("bytes_out", v.ResponseSize),
		slog.Duration("latency", v.Latency),
		slog.String("remote_ip", v.RemoteIP),
		slog.String("user_agent", v.UserAgent),
	}
	if query := c.Request().URL.RawQuery; query != "" {
		attrs = append(attrs, slog.String("query", query))
	}
	if v.Error != nil {
		attrs = append(attrs, slog.Any("error", v.Error))
	}

	level := slog.LevelInfo
	switch {
	case v.Status >= http.StatusInternalServerError:
		level = slog.LevelError
	case v.Status >= http.StatusBadRequest:
		level = slog.LevelWarn
	}

	// Carries request_id and, once authenticated, user_id
	ctx := c.Request().Context()
	deliverycontext.GetLoggerOrDefault(ctx, m.logger).LogAttrs(ctx, level, "HTTP Request", attrs...)

	return nil
}
