package logs

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"brandsafe/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogConfig(level string, pretty bool) *config.Config {
	cfg := &config.Config{}
	cfg.Env.ServiceName = "brandsafe"
	cfg.Env.Log.Level = level
	cfg.Env.Log.Pretty = pretty

	return cfg
}

func TestBuild_JSONWithServiceName(t *testing.T) {
	var buf bytes.Buffer
	logger, err := build(&buf, testLogConfig("info", false))
	require.NoError(t, err)

	logger.Info("server started")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "server started", record["msg"])
	assert.Equal(t, "brandsafe", record["service"])
}

func TestBuild_LevelFiltersRecords(t *testing.T) {
	var buf bytes.Buffer
	logger, err := build(&buf, testLogConfig("warn", false))
	require.NoError(t, err)

	logger.Info("dropped")
	assert.Zero(t, buf.Len())

	logger.Warn("kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestBuild_RejectsUnknownLevel(t *testing.T) {
	var buf bytes.Buffer
	_, err := build(&buf, testLogConfig("verbose", false))
	assert.Error(t, err)
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: "info", want: slog.LevelInfo},
		{in: "WARN", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
	}

	for _, tt := range tests {
		level, err := parseLogLevel(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, level)
	}
}
