package configs

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" WARN ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"err":     slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, Logger{Level: in}.SlogLevel(), in)
	}
}

func TestLoggerHandler(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(Logger{Level: "warn", Format: "JSON", Source: true}.Handler(&buf))

	l.Info("dropped")
	l.Warn("dashboard cache write failed", slog.String("key", "dashboard"))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "dashboard cache write failed", rec["msg"])
	assert.Equal(t, "WARN", rec["level"])
	assert.Contains(t, rec, slog.SourceKey)
}

func TestLoggerTextDefault(t *testing.T) {
	var buf bytes.Buffer
	slog.New(Logger{Format: "yaml"}.Handler(&buf)).Info("ready")
	assert.Contains(t, buf.String(), "msg=ready")
}
