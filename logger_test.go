package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger("warn", "text", &buf)

	logger.Info("hidden")
	logger.Warn("shown", "k", 1)

	out := buf.String()
	require.NotContains(t, out, "hidden")
	require.Contains(t, out, "msg=shown")
	require.Contains(t, out, "k=1")
}

func TestNewLoggerUnknownLevelIsInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger("verbose", "", &buf)

	logger.Debug("debug line")
	logger.Info("info line")

	require.NotContains(t, buf.String(), "debug line")
	require.Contains(t, buf.String(), "info line")
}

func TestNewLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger("DEBUG", "JSON", &buf)

	logger.Debug("tick processed", "tick", 3)

	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &rec))
	require.Equal(t, "tick processed", rec["msg"])
	require.Equal(t, "DEBUG", rec["level"])
	require.EqualValues(t, 3, rec["tick"])
}
