package config

import (
	"github.com/alexisbeaulieu97/huekit/internal/colorpicker"
	"github.com/alexisbeaulieu97/huekit/pkg/color"
)

// PanelConfig is the YAML document describing one colour picker panel.
type PanelConfig struct {
	Modes         []string     `yaml:"modes,omitempty" validate:"omitempty,unique,dive,color_mode"`
	ShowAlpha     *bool        `yaml:"show_alpha,omitempty"`
	ShowPreview   bool         `yaml:"show_preview,omitempty"`
	Swatches      []string     `yaml:"swatches,omitempty" validate:"omitempty,max=64,dive,color_value"`
	Disabled      bool         `yaml:"disabled,omitempty"`
	Actions       []string     `yaml:"actions,omitempty" validate:"omitempty,unique,dive,picker_action"`
	Size          string       `yaml:"size,omitempty" validate:"omitempty,oneof=small medium large"`
	DefaultValue  string       `yaml:"default_value,omitempty" validate:"omitempty,color_value"`
	DeriveDefault bool         `yaml:"derive_default,omitempty"`
	Theme         string       `yaml:"theme,omitempty" validate:"omitempty,oneof=light dark"`
	Locale        LocaleConfig `yaml:"locale,omitempty"`
}

// LocaleConfig overrides the action button labels. Empty labels keep the
// defaults.
type LocaleConfig struct {
	Clear string `yaml:"clear,omitempty" validate:"omitempty,max=32"`
	Undo  string `yaml:"undo,omitempty" validate:"omitempty,max=32"`
	Redo  string `yaml:"redo,omitempty" validate:"omitempty,max=32"`
}

// Default returns the configuration used when no file is given.
func Default() *PanelConfig {
	cfg := &PanelConfig{}
	cfg.applyDefaults()
	return cfg
}

func (c *PanelConfig) applyDefaults() {
	if len(c.Modes) == 0 {
		c.Modes = []string{string(color.ModeRGB), string(color.ModeHex), string(color.ModeHSL)}
	}
	if c.ShowAlpha == nil {
		showAlpha := true
		c.ShowAlpha = &showAlpha
	}
	if c.Size == "" {
		c.Size = string(colorpicker.SizeMedium)
	}
	if c.Theme == "" {
		c.Theme = "light"
	}
}

// Options maps the document onto panel options. The document must have
// passed validation.
func (c *PanelConfig) Options() colorpicker.Options {
	opts := colorpicker.DefaultOptions()

	opts.Modes = make([]color.Mode, 0, len(c.Modes))
	for _, name := range c.Modes {
		if mode, err := color.ParseModeName(name); err == nil {
			opts.Modes = append(opts.Modes, mode)
		}
	}
	if c.ShowAlpha != nil {
		opts.ShowAlpha = *c.ShowAlpha
	}
	opts.ShowPreview = c.ShowPreview
	opts.Swatches = append([]string(nil), c.Swatches...)
	opts.Disabled = c.Disabled
	for _, name := range c.Actions {
		if action, err := colorpicker.ParseAction(name); err == nil {
			opts.Actions = append(opts.Actions, action)
		}
	}
	if c.Size != "" {
		opts.Size = colorpicker.Size(c.Size)
	}
	opts.DefaultValue = colorpicker.Some(c.DefaultValue)
	opts.DeriveDefault = c.DeriveDefault
	return opts
}

// PanelLocale returns the configured labels, or nil when none is set.
func (c *PanelConfig) PanelLocale() *colorpicker.Locale {
	if c.Locale == (LocaleConfig{}) {
		return nil
	}
	return &colorpicker.Locale{Clear: c.Locale.Clear, Undo: c.Locale.Undo, Redo: c.Locale.Redo}
}
