package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/huekit/internal/colorpicker"
	"github.com/alexisbeaulieu97/huekit/internal/tui/components"
	"github.com/alexisbeaulieu97/huekit/pkg/color"
)

const (
	alphaStep     = 0.01
	alphaFastStep = 0.1
	hueFastCells  = 10
)

// Update handles Bubbletea messages and drives the panel.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	case flushMsg:
		if n := m.queue.Flush(); n > 0 {
			m.syncInput()
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.focus == FocusInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return m.quit()
	case key.Matches(msg, m.keys.Next):
		return m.moveFocus(1)
	case key.Matches(msg, m.keys.Prev):
		return m.moveFocus(-1)
	}

	if m.focus == FocusInput {
		if key.Matches(msg, m.keys.Confirm) {
			return m.submitInput()
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.inputErr = ""
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Mode):
		m.panel.CycleDisplayedMode()
		m.syncInput()
		return m, nil
	case key.Matches(msg, m.keys.Copy):
		return m.copyValue()
	case key.Matches(msg, m.keys.Paste):
		return m.pasteValue()
	case key.Matches(msg, m.keys.Clear):
		return m.trigger(colorpicker.ActionClear)
	case key.Matches(msg, m.keys.Undo):
		return m.trigger(colorpicker.ActionUndo)
	case key.Matches(msg, m.keys.Redo):
		return m.trigger(colorpicker.ActionRedo)
	}

	switch m.focus {
	case FocusPalette:
		return m.handlePalette(msg)
	case FocusHue:
		return m.handleHue(msg)
	case FocusAlpha:
		return m.handleAlpha(msg)
	case FocusSwatches:
		return m.handleSwatches(msg)
	case FocusActions:
		return m.handleActions(msg)
	}
	return m, nil
}

func (m Model) handlePalette(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	palette := components.Palette{Width: m.tokens.PaletteWidth, Height: m.tokens.PaletteHeight}
	cursor := m.panel.Cursor()
	sat, val := cursor.Sat, cursor.Val
	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.completeGesture()
		return m, nil
	case key.Matches(msg, m.keys.Left):
		sat -= palette.StepSat()
	case key.Matches(msg, m.keys.Right):
		sat += palette.StepSat()
	case key.Matches(msg, m.keys.Up):
		val += palette.StepVal()
	case key.Matches(msg, m.keys.Down):
		val -= palette.StepVal()
	default:
		return m, nil
	}
	m.panel.UpdateSV(sat, val)
	m.markGesture()
	return m, nil
}

func (m Model) handleHue(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	step := components.HueSlider{Width: m.tokens.SliderWidth}.Step()
	hue := m.panel.Cursor().Hue
	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.completeGesture()
		return m, nil
	case key.Matches(msg, m.keys.Left):
		hue -= step
	case key.Matches(msg, m.keys.Right):
		hue += step
	case key.Matches(msg, m.keys.FastLeft):
		hue -= step * hueFastCells
	case key.Matches(msg, m.keys.FastRight):
		hue += step * hueFastCells
	default:
		return m, nil
	}
	m.panel.UpdateHue(math.Max(0, math.Min(360, hue)))
	m.markGesture()
	return m, nil
}

func (m Model) handleAlpha(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	alpha := m.panel.Cursor().Alpha
	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.completeGesture()
		return m, nil
	case key.Matches(msg, m.keys.Left):
		alpha -= alphaStep
	case key.Matches(msg, m.keys.Right):
		alpha += alphaStep
	case key.Matches(msg, m.keys.FastLeft):
		alpha -= alphaFastStep
	case key.Matches(msg, m.keys.FastRight):
		alpha += alphaFastStep
	default:
		return m, nil
	}
	// Snap to the slider resolution so repeated steps do not drift.
	m.panel.UpdateAlpha(math.Round(alpha*100) / 100)
	m.markGesture()
	return m, nil
}

func (m Model) handleSwatches(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	swatches := m.panel.Swatches()
	switch {
	case key.Matches(msg, m.keys.Left):
		m.swatch = (m.swatch - 1 + len(swatches)) % len(swatches)
	case key.Matches(msg, m.keys.Right):
		m.swatch = (m.swatch + 1) % len(swatches)
	case key.Matches(msg, m.keys.Confirm):
		m.panel.SelectSwatch(swatches[m.swatch])
		m.syncInput()
	}
	return m, nil
}

func (m Model) handleActions(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Left):
		m.action = (m.action - 1 + len(m.actions)) % len(m.actions)
	case key.Matches(msg, m.keys.Right):
		m.action = (m.action + 1) % len(m.actions)
	case key.Matches(msg, m.keys.Confirm):
		return m.trigger(m.actions[m.action])
	}
	return m, nil
}

// markGesture records a live commit awaiting completion.
func (m *Model) markGesture() {
	if m.panel.Disabled() {
		return
	}
	m.gesture = true
	m.syncInput()
}

// completeGesture ends the running palette or slider gesture.
func (m *Model) completeGesture() {
	if !m.gesture {
		return
	}
	m.gesture = false
	m.panel.Complete(true)
	m.syncInput()
}

func (m Model) moveFocus(delta int) (tea.Model, tea.Cmd) {
	m.completeGesture()
	if m.focus == FocusInput {
		m.input.Blur()
	}

	current := 0
	for i, f := range m.ring {
		if f == m.focus {
			current = i
			break
		}
	}
	m.focus = m.ring[(current+delta+len(m.ring))%len(m.ring)]
	m.log.DebugFields("focus moved", map[string]any{"focus": m.focus.String()})

	if m.focus == FocusInput {
		return m, m.input.Focus()
	}
	m.syncInput()
	return m, nil
}

func (m Model) submitInput() (tea.Model, tea.Cmd) {
	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		m.inputErr = "enter a color"
		return m, nil
	}
	if _, _, err := color.Parse(text); err != nil {
		m.inputErr = err.Error()
		return m, nil
	}
	m.inputErr = ""
	m.panel.InputUpdateValue(text)
	return m, flush
}

func (m Model) trigger(action colorpicker.Action) (tea.Model, tea.Cmd) {
	if !m.actionEnabled(action) {
		return m, nil
	}
	m.completeGesture()
	switch action {
	case colorpicker.ActionClear:
		m.panel.Clear()
	case colorpicker.ActionUndo:
		m.panel.Undo()
	case colorpicker.ActionRedo:
		m.panel.Redo()
	}
	m.syncInput()
	return m, nil
}

func (m Model) copyValue() (tea.Model, tea.Cmd) {
	value, ok := m.panel.Value().Get()
	if !ok {
		m.status = "nothing to copy"
		return m, nil
	}
	if err := m.clipboard.WriteAll(value); err != nil {
		m.log.Error(err, "copy to clipboard failed")
		m.status = fmt.Sprintf("copy failed: %v", err)
		return m, nil
	}
	m.status = "copied " + value
	return m, nil
}

// pasteValue commits a colour from the clipboard the way the preview's
// native picker would: through the input path without completion.
func (m Model) pasteValue() (tea.Model, tea.Cmd) {
	text, err := m.clipboard.ReadAll()
	if err != nil {
		m.log.Error(err, "read clipboard failed")
		m.status = fmt.Sprintf("paste failed: %v", err)
		return m, nil
	}
	text = strings.TrimSpace(text)
	if _, _, err := color.Parse(text); err != nil {
		m.log.Warn("clipboard content is not a color")
		m.status = fmt.Sprintf("clipboard has no color: %q", text)
		return m, nil
	}
	m.panel.SelectColor(text)
	m.syncInput()
	m.status = ""
	return m, nil
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.completeGesture()
	m.queue.Flush()
	m.quitting = true
	return m, tea.Quit
}
