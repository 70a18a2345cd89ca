package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	huekiterrors "github.com/alexisbeaulieu97/huekit/pkg/errors"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		cfg   *PanelConfig
		field string
	}{
		{name: "nil config", cfg: nil, field: "config"},
		{name: "duplicate modes", cfg: &PanelConfig{Modes: []string{"hex", "hex"}}, field: "modes"},
		{name: "malformed swatch", cfg: &PanelConfig{Swatches: []string{"#FF0000", "#GGG"}}, field: "swatches[1]"},
		{name: "out of range swatch", cfg: &PanelConfig{Swatches: []string{"rgb(256, 0, 0)"}}, field: "swatches[0]"},
		{name: "unknown action", cfg: &PanelConfig{Actions: []string{"paste"}}, field: "actions[0]"},
		{name: "unknown size", cfg: &PanelConfig{Size: "huge"}, field: "size"},
		{name: "unknown theme", cfg: &PanelConfig{Theme: "solarized"}, field: "theme"},
		{name: "malformed default", cfg: &PanelConfig{DefaultValue: "red"}, field: "default_value"},
		{name: "long locale label", cfg: &PanelConfig{Locale: LocaleConfig{Redo: "0123456789012345678901234567890123"}}, field: "locale.redo"},
		{
			name:  "derive default with default value",
			cfg:   &PanelConfig{DefaultValue: "#000", DeriveDefault: true},
			field: "derive_default",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := Validate(tc.cfg)
			var validationErr *huekiterrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			require.Equal(t, tc.field, validationErr.Field)
		})
	}
}

func TestValidateAcceptsEveryEncoding(t *testing.T) {
	t.Parallel()

	cfg := &PanelConfig{
		Modes:    []string{"RGB", "hex", "hsl", "hsv"},
		Swatches: []string{"#abc", "#abcd", "#aabbcc", "#aabbccdd", "rgba(1, 2, 3, 0.5)", "hsla(1, 2%, 3%, 1)", "hsv(1, 2%, 3%)"},
		Actions:  []string{"clear", "undo", "redo"},
	}
	require.NoError(t, Validate(cfg))
	require.Same(t, validatorInstance(), validatorInstance())
}
