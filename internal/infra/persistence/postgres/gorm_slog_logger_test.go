package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"marketplace/config"
	deliverycontext "marketplace/internal/delivery/context"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var lines []map[string]any
	dec := json.NewDecoder(buf)
	for dec.More() {
		var line map[string]any
		require.NoError(t, dec.Decode(&line))
		lines = append(lines, line)
	}

	return lines
}

func newTestGormLogger(fallback *slog.Logger, threshold time.Duration, elapsed time.Duration) *gormSlogLogger {
	cfg := &config.Config{Database: &config.DatabaseConfig{SlowQueryThreshold: threshold}}
	l := newGormSlogLogger(fallback, cfg).(*gormSlogLogger)
	begin := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return begin.Add(elapsed) }

	return l
}

func traceBegin() time.Time {
	return time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
}

func sqlFn() (string, int64) {
	return `SELECT * FROM "orders" WHERE id = 1`, 1
}

func TestGormSlogLogger_SlowQueryUsesRequestLogger(t *testing.T) {
	var fallbackBuf, requestBuf bytes.Buffer
	l := newTestGormLogger(newBufferLogger(&fallbackBuf), 100*time.Millisecond, 300*time.Millisecond)

	reqLogger := newBufferLogger(&requestBuf).With(slog.String("request_id", "req-42"))
	ctx := deliverycontext.WithLogger(context.Background(), reqLogger)

	l.Trace(ctx, traceBegin(), sqlFn, nil)

	assert.Zero(t, fallbackBuf.Len())
	lines := decodeLines(t, &requestBuf)
	require.Len(t, lines, 1)
	assert.Equal(t, "WARN", lines[0]["level"])
	assert.Equal(t, "[DB] Slow query", lines[0]["msg"])
	assert.Equal(t, "req-42", lines[0]["request_id"])
}

func TestGormSlogLogger_Trace(t *testing.T) {
	cases := []struct {
		name      string
		err       error
		elapsed   time.Duration
		wantLevel string
	}{
		{"failed query", errors.New("relation does not exist"), time.Millisecond, "ERROR"},
		{"record not found is quiet", gorm.ErrRecordNotFound, time.Millisecond, ""},
		{"fast query is quiet", nil, time.Millisecond, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := newTestGormLogger(newBufferLogger(&buf), 100*time.Millisecond, tc.elapsed)

			l.Trace(context.Background(), traceBegin(), sqlFn, tc.err)

			lines := decodeLines(t, &buf)
			if tc.wantLevel == "" {
				assert.Empty(t, lines)

				return
			}
			require.Len(t, lines, 1)
			assert.Equal(t, tc.wantLevel, lines[0]["level"])
		})
	}
}

func TestGormSlogLogger_SilentMode(t *testing.T) {
	var buf bytes.Buffer
	l := newTestGormLogger(newBufferLogger(&buf), time.Millisecond, time.Second).LogMode(logger.Silent)

	l.Trace(context.Background(), traceBegin(), sqlFn, errors.New("boom"))

	assert.Zero(t, buf.Len())
}

func TestPoolWaitReport(t *testing.T) {
	prev := sql.DBStats{WaitCount: 10, WaitDuration: time.Second}

	t.Run("no new waits", func(t *testing.T) {
		_, _, ok := poolWaitReport(prev, prev)
		assert.False(t, ok)
	})

	t.Run("short waits", func(t *testing.T) {
		cur := sql.DBStats{WaitCount: 12, WaitDuration: time.Second + 10*time.Millisecond}

		level, attrs, ok := poolWaitReport(prev, cur)
		require.True(t, ok)
		assert.Equal(t, slog.LevelDebug, level)
		assert.Equal(t, int64(2), attrs[0].Value.Int64())
	})

	t.Run("long waits", func(t *testing.T) {
		cur := sql.DBStats{WaitCount: 11, WaitDuration: 2 * time.Second}

		level, _, ok := poolWaitReport(prev, cur)
		require.True(t, ok)
		assert.Equal(t, slog.LevelWarn, level)
	})
}
