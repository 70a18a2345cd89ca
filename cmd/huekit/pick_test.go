package main

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/huekit/internal/config"
	huekiterrors "github.com/alexisbeaulieu97/huekit/pkg/errors"
)

// stubPick replaces the program runner and the TTY check, returning a pointer
// to the request the runner received. The stub logs through the model logger
// the way a failing clipboard copy would.
func stubPick(t *testing.T, tty bool) **pickRequest {
	t.Helper()

	originalRunner := pickCmdRunner
	originalTerminal := isTerminal
	t.Cleanup(func() {
		pickCmdRunner = originalRunner
		isTerminal = originalTerminal
	})

	var received *pickRequest
	pickCmdRunner = func(req pickRequest) error {
		received = &req
		req.ModelLog.Error(errors.New("no clipboard utility"), "copy to clipboard failed")
		_, err := io.WriteString(req.Out, "#123456\n")
		return err
	}
	isTerminal = func() bool { return tty }
	return &received
}

func TestPickCommandUsesDefaults(t *testing.T) {
	received := stubPick(t, true)

	stdout, _, err := executeCommand("pick")
	require.NoError(t, err)
	require.Equal(t, "#123456\n", stdout)
	require.Equal(t, config.Default(), (*received).Config)
}

func TestPickCommandFlagsOverrideConfigFile(t *testing.T) {
	received := stubPick(t, true)

	path := filepath.Join(t.TempDir(), "panel.yaml")
	require.NoError(t, os.WriteFile(path, []byte("modes: [hsl]\nsize: small\nshow_preview: true\ntheme: dark\n"), 0o600))

	_, _, err := executeCommand("pick", "--config", path, "--modes", "hex,rgb", "--show-alpha=false", "--actions", "undo,redo")
	require.NoError(t, err)

	cfg := (*received).Config
	require.Equal(t, []string{"hex", "rgb"}, cfg.Modes)
	require.False(t, *cfg.ShowAlpha)
	require.Equal(t, []string{"undo", "redo"}, cfg.Actions)
	require.Equal(t, "small", cfg.Size)
	require.True(t, cfg.ShowPreview)
	require.Equal(t, "dark", cfg.Theme)
}

func TestPickCommandValidatesMergedConfig(t *testing.T) {
	received := stubPick(t, true)

	_, stderr, err := executeCommand("pick", "--swatches", "#FF0000,nope")
	var validationErr *huekiterrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "swatches[1]", validationErr.Field)
	require.Nil(t, *received)
	require.Contains(t, stderr, "invalid picker configuration")
}

func TestPickCommandRejectsDeriveDefaultWithDefault(t *testing.T) {
	stubPick(t, true)

	_, _, err := executeCommand("pick", "--default", "#000", "--derive-default")
	var validationErr *huekiterrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "derive_default", validationErr.Field)
}

func TestPickCommandReportsConfigParseErrors(t *testing.T) {
	stubPick(t, true)

	_, _, err := executeCommand("pick", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	var parseErr *huekiterrors.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestPickCommandNeedsTerminal(t *testing.T) {
	received := stubPick(t, false)

	_, _, err := executeCommand("pick")
	require.ErrorContains(t, err, "interactive terminal")
	require.Nil(t, *received)
}

func TestPickCommandKeepsModelLogsOffTheScreen(t *testing.T) {
	received := stubPick(t, true)

	_, stderr, err := executeCommand("pick", "--verbose")
	require.NoError(t, err)

	req := *received
	require.NotNil(t, req.ModelLog)
	require.NotNil(t, req.Screen)
	require.NotContains(t, stderr, "copy to clipboard failed")
}

func TestPickCommandWritesModelLogsToLogFile(t *testing.T) {
	stubPick(t, true)

	path := filepath.Join(t.TempDir(), "picker.log")
	_, stderr, err := executeCommand("pick", "--log-file", path)
	require.NoError(t, err)
	require.NotContains(t, stderr, "copy to clipboard failed")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "copy to clipboard failed")
	require.Contains(t, string(data), "no clipboard utility")
}

func TestPickCommandReportsUnwritableLogFile(t *testing.T) {
	received := stubPick(t, true)

	_, _, err := executeCommand("pick", "--log-file", filepath.Join(t.TempDir(), "missing", "picker.log"))
	require.ErrorContains(t, err, "failed to open log file")
	require.Nil(t, *received)
}
