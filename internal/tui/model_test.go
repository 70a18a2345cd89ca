package tui

import (
	"bytes"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/huekit/internal/colorpicker"
	"github.com/alexisbeaulieu97/huekit/internal/logger"
	"github.com/alexisbeaulieu97/huekit/pkg/color"
)

type fakeClipboard struct {
	content string
	err     error
	writes  []string
}

func (c *fakeClipboard) ReadAll() (string, error) {
	return c.content, c.err
}

func (c *fakeClipboard) WriteAll(text string) error {
	if c.err != nil {
		return c.err
	}
	c.writes = append(c.writes, text)
	c.content = text
	return nil
}

func newTestModel(t *testing.T, mutate func(*colorpicker.Options)) (Model, *fakeClipboard) {
	t.Helper()
	opts := colorpicker.DefaultOptions()
	if mutate != nil {
		mutate(&opts)
	}
	clip := &fakeClipboard{}
	return NewModel(Config{Options: opts, Clipboard: clip}), clip
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyOf(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

// press feeds keys through Update. After enter it runs the scheduled flush,
// as the program would after rendering the frame.
func press(t *testing.T, m Model, keys ...tea.KeyMsg) Model {
	t.Helper()
	for _, k := range keys {
		updated, cmd := m.Update(k)
		m = updated.(Model)
		if cmd == nil || k.Type != tea.KeyEnter {
			continue
		}
		if msg, ok := cmd().(flushMsg); ok {
			updated, _ = m.Update(msg)
			m = updated.(Model)
		}
	}
	return m
}

func TestNewModelInitialisesState(t *testing.T) {
	m, _ := newTestModel(t, nil)

	require.Equal(t, FocusPalette, m.Focus())
	require.Equal(t, []Focus{FocusPalette, FocusHue, FocusAlpha, FocusInput}, m.ring)
	require.False(t, m.Value().IsSet())
	require.Empty(t, m.input.Value())
	require.Nil(t, m.Init())
	require.Equal(t, 32, m.tokens.PaletteWidth)
}

func TestFocusRingFollowsOptions(t *testing.T) {
	m, _ := newTestModel(t, func(o *colorpicker.Options) {
		o.ShowAlpha = false
		o.Swatches = []string{"#FFFFFF"}
		o.Actions = []colorpicker.Action{colorpicker.ActionRedo, colorpicker.ActionUndo}
		o.Size = colorpicker.SizeSmall
	})

	require.Equal(t, []Focus{FocusPalette, FocusHue, FocusInput, FocusSwatches, FocusActions}, m.ring)
	require.Equal(t, []colorpicker.Action{colorpicker.ActionUndo, colorpicker.ActionRedo}, m.actions)
	require.Equal(t, 24, m.tokens.PaletteWidth)
}

func TestInputTextUsesDisplayedMode(t *testing.T) {
	m, _ := newTestModel(t, func(o *colorpicker.Options) {
		o.DefaultValue = colorpicker.Some("#FF0000")
	})
	require.Equal(t, color.ModeHex, m.panel.DisplayedMode())
	require.Equal(t, "#FF0000FF", m.input.Value())

	m = press(t, m, runes("m"))
	require.Equal(t, color.ModeHSL, m.panel.DisplayedMode())
	require.Equal(t, "hsla(0, 100%, 50%, 1)", m.input.Value())
	require.Equal(t, colorpicker.Some("#FF0000"), m.Value(), "cycling the mode does not commit")
}

func TestCopyAndPaste(t *testing.T) {
	m, clip := newTestModel(t, nil)

	m = press(t, m, runes("y"))
	require.Empty(t, clip.writes)
	require.Equal(t, "nothing to copy", m.status)

	clip.content = " #0000FF\n"
	m = press(t, m, runes("p"))
	require.Equal(t, colorpicker.Some("#0000FF"), m.Value())
	entries, _ := m.panel.History()
	require.Len(t, entries, 1, "paste commits without completing")

	m = press(t, m, runes("y"))
	require.Equal(t, []string{"#0000FF"}, clip.writes)
	require.Equal(t, "copied #0000FF", m.status)

	clip.content = "banana"
	m = press(t, m, runes("p"))
	require.Equal(t, colorpicker.Some("#0000FF"), m.Value())
	require.Contains(t, m.status, "no color")

	clip.err = errors.New("no clipboard utility")
	m = press(t, m, runes("y"))
	require.Contains(t, m.status, "copy failed")
}

func TestClipboardProblemsGoToTheModelLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	log, err := logger.New(logger.Options{Level: "info", Writer: buf})
	require.NoError(t, err)

	clip := &fakeClipboard{content: "banana"}
	m := NewModel(Config{Options: colorpicker.DefaultOptions(), Clipboard: clip, Logger: log})

	m = press(t, m, runes("p"))
	require.Contains(t, buf.String(), "clipboard content is not a color")
	require.Contains(t, buf.String(), `"level":"warn"`)

	clip.content = "#00FF00"
	m = press(t, m, runes("p"))
	clip.err = errors.New("no clipboard utility")
	m = press(t, m, runes("y"))
	require.Contains(t, buf.String(), "copy to clipboard failed")
	require.Contains(t, buf.String(), "no clipboard utility")
	require.Contains(t, m.status, "copy failed")
}

func TestQuitFlushesAndStops(t *testing.T) {
	m, _ := newTestModel(t, nil)

	updated, cmd := m.Update(runes("q"))
	m = updated.(Model)
	require.NotNil(t, cmd)
	require.True(t, m.Quitting())
	require.Empty(t, m.View())

	m, _ = newTestModel(t, nil)
	updated, _ = m.Update(keyOf(tea.KeyEsc))
	require.True(t, updated.(Model).Quitting())
}

func TestFocusString(t *testing.T) {
	require.Equal(t, "palette", FocusPalette.String())
	require.Equal(t, "actions", FocusActions.String())
	require.Equal(t, "unknown", Focus(42).String())
}
