package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewWithWriter(&buf, "warn")
	require.NoError(t, err)

	log.Info("hidden %d", 1)
	log.Warn("visible restaurant=%d", 42)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "visible restaurant=42")
	assert.Contains(t, out, `"level":"warn"`)
}

func TestLogger_UnknownLevel(t *testing.T) {
	_, err := NewWithWriter(&bytes.Buffer{}, "verbose")
	assert.Error(t, err)
}

func TestLogger_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "service.log")

	log, err := New(path, "info")
	require.NoError(t, err)
	log.Error("failed to load restaurant id=%d", 7)
	require.NoError(t, log.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "failed to load restaurant id=7")
}
