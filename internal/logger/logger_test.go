package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func capture(t *testing.T, level string) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	Configure(Config{Level: level, Format: "json", Writer: &buf})
	t.Cleanup(func() { Configure(DefaultConfig()) })
	return &buf
}

func lines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &m), line)
		out = append(out, m)
	}
	return out
}

func TestInfo_Success_Warn_Error(t *testing.T) {
	buf := capture(t, "debug")

	Info("TAG", "message")
	Success("TAG", "message")
	Warn("TAG", "message")
	Error("TAG", "message")
	Debug("TAG", "message")

	got := lines(t, buf)
	require.Len(t, got, 5)
	assert.Equal(t, "info", got[0]["level"])
	assert.Equal(t, "TAG", got[0]["tag"])
	assert.Equal(t, "message", got[0]["message"])
	assert.Equal(t, true, got[1]["ok"])
	assert.Equal(t, "warn", got[2]["level"])
	assert.Equal(t, "error", got[3]["level"])
	assert.Equal(t, "debug", got[4]["level"])
}

func TestLevelFilter(t *testing.T) {
	buf := capture(t, "warn")

	Info("TAG", "hidden")
	Warn("TAG", "shown")

	got := lines(t, buf)
	require.Len(t, got, 1)
	assert.Equal(t, "shown", got[0]["message"])
}

func TestInvalidLevelFallsBackToInfo(t *testing.T) {
	buf := capture(t, "loud")

	Debug("TAG", "hidden")
	Info("TAG", "shown")

	assert.Len(t, lines(t, buf), 1)
}

func TestBanner(t *testing.T) {
	buf := capture(t, "info")

	Banner("v1.0.0")
	Banner("")

	got := lines(t, buf)
	require.Len(t, got, 2)
	assert.Equal(t, "v1.0.0", got[0]["version"])
	assert.Equal(t, "dev", got[1]["version"])
}

func TestSectionAndStats(t *testing.T) {
	buf := capture(t, "info")

	Section("Map")
	Stats("systems", 42)

	got := lines(t, buf)
	require.Len(t, got, 2)
	assert.Equal(t, "Map", got[0]["message"])
	assert.Equal(t, float64(42), got[1]["systems"])
}

func TestConsoleFormat_NoPanic(t *testing.T) {
	var buf bytes.Buffer
	Configure(Config{Level: "info", Format: "console", NoColor: true, Writer: &buf})
	t.Cleanup(func() { Configure(DefaultConfig()) })

	Info("TAG", "readable")
	assert.Contains(t, buf.String(), "readable")
}
