package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/huekit/internal/colorpicker"
	"github.com/alexisbeaulieu97/huekit/pkg/color"
	huekiterrors "github.com/alexisbeaulieu97/huekit/pkg/errors"
)

func TestParseConfig(t *testing.T) {
	t.Parallel()

	validYAML := `modes: [hex, hsv]
show_alpha: false
show_preview: true
swatches:
  - "#FF0000"
  - "hsl(120, 100%, 50%)"
actions: [undo, redo, clear]
size: large
default_value: "#336699"
theme: dark
locale:
  clear: Effacer
`

	cases := []struct {
		name     string
		contents string
		assert   func(t *testing.T, cfg *PanelConfig, err error)
	}{
		{
			name:     "valid configuration is parsed",
			contents: validYAML,
			assert: func(t *testing.T, cfg *PanelConfig, err error) {
				require.NoError(t, err)
				require.Equal(t, []string{"hex", "hsv"}, cfg.Modes)
				require.False(t, *cfg.ShowAlpha)
				require.Equal(t, "large", cfg.Size)
				require.Equal(t, "dark", cfg.Theme)
				require.Equal(t, "Effacer", cfg.Locale.Clear)
			},
		},
		{
			name:     "empty document takes defaults",
			contents: "",
			assert: func(t *testing.T, cfg *PanelConfig, err error) {
				require.NoError(t, err)
				require.Equal(t, Default(), cfg)
			},
		},
		{
			name:     "invalid yaml returns parse error with line",
			contents: "modes: [hex\nsize: small\n",
			assert: func(t *testing.T, cfg *PanelConfig, err error) {
				require.Nil(t, cfg)
				var parseErr *huekiterrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Positive(t, parseErr.Line)
			},
		},
		{
			name:     "type mismatch returns parse error",
			contents: "show_alpha: [1, 2]\n",
			assert: func(t *testing.T, cfg *PanelConfig, err error) {
				var parseErr *huekiterrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Contains(t, parseErr.Message, "cannot unmarshal")
				require.Equal(t, 1, parseErr.Line)
			},
		},
		{
			name:     "unknown keys are rejected",
			contents: "size: small\npalette: big\n",
			assert: func(t *testing.T, cfg *PanelConfig, err error) {
				var parseErr *huekiterrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Equal(t, 2, parseErr.Line)
			},
		},
		{
			name:     "unknown mode returns validation error",
			contents: "modes: [rgb, cmyk]\n",
			assert: func(t *testing.T, cfg *PanelConfig, err error) {
				var validationErr *huekiterrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "modes[1]", validationErr.Field)
				require.Contains(t, validationErr.Message, `"cmyk" is not a valid color mode`)
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path := writeTempConfig(t, tc.contents)
			cfg, err := ParseConfig(path)
			tc.assert(t, cfg, err)
		})
	}
}

func TestParseConfigMissingFile(t *testing.T) {
	t.Parallel()

	_, err := ParseConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	var parseErr *huekiterrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Zero(t, parseErr.Line)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestOptionsMapping(t *testing.T) {
	t.Parallel()

	cfg, err := Parse("inline", []byte(`modes: [hsl, hex]
show_alpha: false
actions: [clear, undo]
size: small
default_value: "hsl(10, 20%, 30%)"
disabled: true
locale:
  undo: Annuler
`))
	require.NoError(t, err)

	opts := cfg.Options()
	require.Equal(t, []color.Mode{color.ModeHSL, color.ModeHex}, opts.Modes)
	require.False(t, opts.ShowAlpha)
	require.Equal(t, []colorpicker.Action{colorpicker.ActionClear, colorpicker.ActionUndo}, opts.Actions)
	require.Equal(t, colorpicker.SizeSmall, opts.Size)
	require.Equal(t, colorpicker.Some("hsl(10, 20%, 30%)"), opts.DefaultValue)
	require.True(t, opts.Disabled)
	require.Equal(t, &colorpicker.Locale{Undo: "Annuler"}, cfg.PanelLocale())
}

func TestDefaultOptionsMatchPanelDefaults(t *testing.T) {
	t.Parallel()

	opts := Default().Options()
	want := colorpicker.DefaultOptions()
	require.Equal(t, want.Modes, opts.Modes)
	require.Equal(t, want.ShowAlpha, opts.ShowAlpha)
	require.Equal(t, want.Size, opts.Size)
	require.False(t, opts.DefaultValue.IsSet())
	require.Nil(t, Default().PanelLocale())
}

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "huekit.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}
