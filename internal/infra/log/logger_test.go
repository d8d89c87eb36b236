package logs

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"marketplace/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"":        slog.LevelInfo,
		"debug":   slog.LevelDebug,
		" INFO ":  slog.LevelInfo,
		"warning": slog.LevelWarn,
		"Error":   slog.LevelError,
		"info+2":  slog.LevelInfo + 2,
	}
	for input, want := range tests {
		got, err := parseLogLevel(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}

	_, err := parseLogLevel("verbose")
	assert.ErrorContains(t, err, "unknown log level")
}

func TestNewLogger_JSONCarriesServiceAttributes(t *testing.T) {
	cfg := new(config.Config)
	cfg.Env.ServiceName = "marketplace"
	cfg.Env.Env = "develop"

	var buf bytes.Buffer
	logger := newLogger(&buf, cfg, slog.LevelInfo)
	logger.Debug("hidden")
	logger.Info("visible")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "visible", record["msg"])
	assert.Equal(t, "marketplace", record["service"])
	assert.Equal(t, "develop", record["env"])
	assert.NotContains(t, record, slog.SourceKey)
}

func TestNewLogger_DebugAddsSource(t *testing.T) {
	cfg := new(config.Config)
	cfg.Env.Debug = true

	var buf bytes.Buffer
	newLogger(&buf, cfg, slog.LevelDebug).Debug("traced")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Contains(t, record, slog.SourceKey)
	assert.NotContains(t, record, "service")
}
