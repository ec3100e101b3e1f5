package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/rugwirobaker/uptime/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigureLoggerQuietByDefault(t *testing.T) {
	var stderr bytes.Buffer

	closeLog, err := configureLogger(config.Default(), &stderr)
	require.NoError(t, err)
	defer closeLog()

	slog.Info("hidden")
	slog.Warn("shown")

	assert.NotContains(t, stderr.String(), "hidden")
	assert.Contains(t, stderr.String(), "shown")
}

func TestConfigureLoggerDebugJSONWithoutTime(t *testing.T) {
	var stderr bytes.Buffer

	cfg := config.Default()
	cfg.Log.Format = "json"
	cfg.Log.Debug = true
	cfg.Log.Timestamp = false

	closeLog, err := configureLogger(cfg, &stderr)
	require.NoError(t, err)
	defer closeLog()

	slog.Debug("probe", "users", 2)

	assert.JSONEq(t, `{"level":"DEBUG","msg":"probe","users":2}`, stderr.String())
}

func TestConfigureLoggerFile(t *testing.T) {
	var stderr bytes.Buffer
	path := filepath.Join(t.TempDir(), "uptime.log")

	cfg := config.Default()
	cfg.Log.Path = &path

	closeLog, err := configureLogger(cfg, &stderr)
	require.NoError(t, err)

	slog.Warn("to file")
	require.NoError(t, closeLog())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")
	assert.Empty(t, stderr.String())
}

func TestConfigureLoggerInvalidFormat(t *testing.T) {
	cfg := config.Default()
	cfg.Log.Format = "xml"

	_, err := configureLogger(cfg, &bytes.Buffer{})
	assert.EqualError(t, err, `invalid log format: "xml"`)
}
