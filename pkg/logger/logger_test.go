package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_WritesFormattedMessage(t *testing.T) {
	var buf bytes.Buffer
	log := NewWriter(&buf)

	log.Warn("closed day %s applied, cancelled=%d", "2025-01-03", 2)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "closed day 2025-01-03 applied, cancelled=2", entry["message"])
}

func TestNew_RejectsUnknownLevel(t *testing.T) {
	_, err := New("", "loud")
	assert.Error(t, err)
}

func TestNew_FileOutputRespectsLevel(t *testing.T) {
	path := t.TempDir() + "/app.log"
	log, err := New(path, "warn")
	require.NoError(t, err)

	log.Info("skipped")
	log.Error("kept")
	require.NoError(t, log.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "skipped")
	assert.Contains(t, string(data), "kept")
}
