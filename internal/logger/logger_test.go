package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWritesRotatedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.log")

	log, err := New(Options{Level: "info", Production: true, FilePath: path})
	require.NoError(t, err)

	log.Info("dataset loaded")
	log.Debug("not written")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"dataset loaded"`)
	assert.NotContains(t, string(data), "not written")
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New(Options{Level: "loud"})
	assert.Error(t, err)
}

func TestNewWritesConsole(t *testing.T) {
	buf := new(bytes.Buffer)

	log, err := New(Options{Level: "info", Console: buf})
	require.NoError(t, err)

	log.Warn("skipped malformed records")
	_ = log.Sync()

	assert.Contains(t, buf.String(), "skipped malformed records")
}
