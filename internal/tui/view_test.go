package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/huekit/internal/colorpicker"
	"github.com/alexisbeaulieu97/huekit/pkg/color"
)

func TestViewRendersWidgets(t *testing.T) {
	m, _ := newTestModel(t, func(o *colorpicker.Options) {
		o.DefaultValue = colorpicker.Some("rgb(255, 0, 0)")
		o.ShowPreview = true
		o.Actions = []colorpicker.Action{colorpicker.ActionClear, colorpicker.ActionUndo, colorpicker.ActionRedo}
	})

	view := m.View()
	require.Contains(t, view, "RGBA")
	require.Contains(t, view, "rgba(255, 0, 0, 1)")
	require.Contains(t, view, "rgb(255, 0, 0)")
	require.Contains(t, view, "Clear")
	require.Contains(t, view, "Undo")
	require.Contains(t, view, "Redo")
	require.Contains(t, view, "1.00")
	require.Contains(t, view, strings.Repeat(helpRule, m.tokens.SliderWidth+2))
}

func TestViewUsesLocaleAndLabelRenderer(t *testing.T) {
	opts := colorpicker.DefaultOptions()
	opts.Actions = []colorpicker.Action{colorpicker.ActionUndo}
	opts.RenderLabel = func(mode color.Mode) string { return "mode:" + mode.String() }
	m := NewModel(Config{
		Options:   opts,
		Locale:    &colorpicker.Locale{Undo: "Annuler"},
		Clipboard: &fakeClipboard{},
	})

	view := m.View()
	require.Contains(t, view, "Annuler")
	require.Contains(t, view, "mode:rgb")
}

func TestViewHidesOptionalSections(t *testing.T) {
	m, _ := newTestModel(t, func(o *colorpicker.Options) {
		o.ShowAlpha = false
		o.DefaultValue = colorpicker.Some("#00FF00")
	})
	view := m.View()
	require.NotContains(t, view, "1.00")
	require.NotContains(t, view, "Undo")
}

func TestViewShowsInputError(t *testing.T) {
	m, _ := newTestModel(t, nil)
	m = press(t, m, keyOf(tea.KeyTab), keyOf(tea.KeyTab), keyOf(tea.KeyTab), keyOf(tea.KeyEnter))
	require.Contains(t, m.View(), "enter a color")
}

func TestViewShowsDisabledHint(t *testing.T) {
	m, _ := newTestModel(t, func(o *colorpicker.Options) { o.Disabled = true })
	require.Contains(t, m.View(), "disabled")
}
