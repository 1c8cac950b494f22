package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"gotest.tools/v3/assert"
	"gotest.tools/v3/assert/cmp"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Check(t, cmp.Equal(ParseLevel(tt.in), tt.want))
		})
	}
}

func TestNewWithFormat_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithFormat("info", "json", &buf)

	log.Debug("hidden")
	log.Info("server listening", "address", "0.0.0.0:8080")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Assert(t, cmp.Len(lines, 1))

	var entry map[string]any
	assert.NilError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Check(t, cmp.Equal(entry["msg"], "server listening"))
	assert.Check(t, cmp.Equal(entry["address"], "0.0.0.0:8080"))
}

func TestNewWithFormat_Text(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithFormat("debug", "text", &buf)

	log.Debug("route registered", "path", "/health")

	assert.Check(t, cmp.Contains(buf.String(), "msg=\"route registered\""))
	assert.Check(t, cmp.Contains(buf.String(), "path=/health"))
}
