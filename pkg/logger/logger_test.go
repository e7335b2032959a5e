package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMake_FromBuffer(t *testing.T) {
	var buf bytes.Buffer
	data, err := New().FromBuffer(&buf).Level("warn").Make()
	require.NoError(t, err)

	data.Logger.Info().Msg("dropped")
	data.Logger.Warn().Str("store", "goals").Msg("kept")

	var line map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line))
	assert.Equal(t, "kept", line["message"])
	assert.Equal(t, "goals", line["store"])
	assert.Equal(t, "warn", line["level"])
	assert.Contains(t, line, "time")
	assert.NoError(t, data.Close())
}

func TestMake_FromPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lifenav.log")
	data, err := New().FromPath(path).Make()
	require.NoError(t, err)

	data.Logger.Info().Msg("hello")
	require.NoError(t, data.Close())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), `"message":"hello"`)
}

func TestMake_badPath(t *testing.T) {
	_, err := New().FromPath(filepath.Join(t.TempDir(), "missing", "dir", "x.log")).Make()
	assert.Error(t, err)
}
