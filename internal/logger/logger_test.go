package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xala-technologies/xala-cli/internal/ports"
)

type logEntry map[string]any

func TestLoggerInfoWithFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", HumanReadable: false, Writer: buf})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"theme": "acme", "format": "css"})
	log.Info(context.Background(), "writing theme file")

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "writing theme file", entry["message"])
	require.Equal(t, "acme", entry["theme"])
	require.Equal(t, "css", entry["format"])
	require.Equal(t, "info", entry["level"])
	require.Equal(t, "infrastructure", entry["layer"])
}

func TestLoggerDebugRespectsLevel(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", HumanReadable: false, Writer: buf})
	require.NoError(t, err)

	log.Debug(context.Background(), "this should not appear")
	require.Equal(t, "", strings.TrimSpace(buf.String()))
}

func TestLoggerErrorIncludesContext(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", HumanReadable: false, Writer: buf, Component: "config_store"})
	require.NoError(t, err)

	ctx := ports.WithCorrelationID(context.Background(), "corr-1")
	log.With("path", "xala.config.json").Error(ctx, "failed", "error", errors.New("boom"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry logEntry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	require.Equal(t, "failed", entry["message"])
	require.Equal(t, "xala.config.json", entry["path"])
	require.Equal(t, "boom", entry["error"])
	require.Equal(t, "config_store", entry["component"])
	require.Equal(t, "corr-1", entry["correlation_id"])
	require.Equal(t, "error", entry["level"])
}

func TestLoggerSuccessTagsStatus(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Writer: buf})
	require.NoError(t, err)

	log.Success(context.Background(), "theme generated", "files", 6)

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "success", entry["status"])
	require.Equal(t, float64(6), entry["files"])
}

func TestLoggerRejectsInvalidLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "verbose"})
	require.Error(t, err)
}

func TestNilLoggerIsSafe(t *testing.T) {
	t.Parallel()

	var log *Logger
	require.NotPanics(t, func() {
		log.Info(context.Background(), "ignored")
		log.With("k", "v").Warn(context.Background(), "ignored")
	})
}
