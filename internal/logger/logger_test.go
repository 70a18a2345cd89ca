package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type logEntry map[string]any

func TestLoggerInfoWithFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Writer: buf})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"mode": "hex", "size": "medium"})
	log.Info("panel mounted")

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "panel mounted", entry["message"])
	require.Equal(t, "hex", entry["mode"])
	require.Equal(t, "medium", entry["size"])
	require.Equal(t, "info", entry["level"])
}

func TestLoggerDebugRespectsLevel(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Writer: buf})
	require.NoError(t, err)

	log.Debug("this should not appear")
	log.DebugFields("nor this", map[string]any{"value": "#fff"})
	require.Equal(t, "", strings.TrimSpace(buf.String()))
}

func TestLoggerDebugFieldsAndComponent(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	log.Component("colorpicker").DebugFields("undo ignored", map[string]any{"index": 0})

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "colorpicker", entry["component"])
	require.Equal(t, float64(0), entry["index"])
}

func TestLoggerErrorIncludesContext(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"widget": "input"})
	log.Error(errors.New("boom"), "failed")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry logEntry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	require.Equal(t, "failed", entry["message"])
	require.Equal(t, "input", entry["widget"])
	require.Equal(t, "boom", entry["error"])
}

func TestInvalidLevelFails(t *testing.T) {
	_, err := New(Options{Level: "loud"})
	require.Error(t, err)
}

func TestNilAndNopLoggersAreSafe(t *testing.T) {
	var nilLogger *Logger
	nilLogger.Info("ignored")
	nilLogger.Error(errors.New("x"), "ignored")
	require.Nil(t, nilLogger.WithFields(map[string]any{"a": 1}))
	require.Nil(t, nilLogger.Component("x"))

	Nop().Warn("discarded")
}
