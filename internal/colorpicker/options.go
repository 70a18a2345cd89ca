package colorpicker

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/huekit/pkg/color"
)

// Action is an optional button rendered under the panel.
type Action string

const (
	ActionClear Action = "clear"
	ActionUndo  Action = "undo"
	ActionRedo  Action = "redo"
)

// ParseAction converts a user supplied action name.
func ParseAction(name string) (Action, error) {
	switch action := Action(strings.ToLower(strings.TrimSpace(name))); action {
	case ActionClear, ActionUndo, ActionRedo:
		return action, nil
	default:
		return "", fmt.Errorf("unknown action %q (want clear, undo or redo)", name)
	}
}

// Size selects the size-keyed theme tokens.
type Size string

const (
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
	SizeLarge  Size = "large"
)

// LabelRenderer returns the label shown next to the text input for a mode.
type LabelRenderer func(mode color.Mode) string

// Options configures a Panel. Callbacks are optional.
type Options struct {
	// Value is the caller-owned colour. Whenever it is present it wins over
	// the panel's internal value.
	Value Value
	// DefaultValue seeds the internal value.
	DefaultValue Value
	// DeriveDefault seeds an absent DefaultValue with black opaque encoded in
	// the first mode.
	DeriveDefault bool

	Modes       []color.Mode
	ShowAlpha   bool
	ShowPreview bool
	Swatches    []string
	Disabled    bool
	Actions     []Action
	Size        Size
	RenderLabel LabelRenderer

	// OnUpdateValue fires on every commit, live or final.
	OnUpdateValue func(Value)
	// OnComplete fires when a gesture completes with a present value.
	OnComplete func(string)
	// OnClear fires after Clear.
	OnClear func()
}

// DefaultOptions mirrors the panel's stock configuration: rgb, hex and hsl
// modes with the alpha slider shown.
func DefaultOptions() Options {
	return Options{
		Modes:     []color.Mode{color.ModeRGB, color.ModeHex, color.ModeHSL},
		ShowAlpha: true,
		Size:      SizeMedium,
	}
}

// DeriveDefaultValue returns black opaque in the first mode, or in hex when
// no mode is configured. Alpha is appended when showAlpha is set.
func DeriveDefaultValue(modes []color.Mode, showAlpha bool) string {
	black := color.HSVA{A: 1}
	for _, mode := range modes {
		if mode.Valid() {
			return color.FromTuple(black, mode, showAlpha)
		}
	}
	return color.FromTuple(black, color.ModeHex, showAlpha)
}

func sanitizeModes(modes []color.Mode) []color.Mode {
	out := make([]color.Mode, 0, len(modes))
	seen := make(map[color.Mode]struct{}, len(modes))
	for _, mode := range modes {
		if !mode.Valid() {
			continue
		}
		if _, dup := seen[mode]; dup {
			continue
		}
		seen[mode] = struct{}{}
		out = append(out, mode)
	}
	return out
}
