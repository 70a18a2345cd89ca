package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/huekit/internal/colorpicker"
	"github.com/alexisbeaulieu97/huekit/internal/tui/components"
	ui "github.com/alexisbeaulieu97/huekit/internal/ui/components"
)

const (
	labelWidth = 8
	helpRule   = "╌"
)

// rendered adapts an already rendered block to ui.Renderable.
type rendered string

func (r rendered) View() string { return string(r) }

// View renders the panel.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	ctx := ui.DefaultContext().WithTheme(m.theme)
	cursor := m.panel.Cursor()

	sections := []ui.Renderable{
		rendered(components.Palette{
			Hue:     cursor.Hue,
			Sat:     cursor.Sat,
			Val:     cursor.Val,
			Width:   m.tokens.PaletteWidth,
			Height:  m.tokens.PaletteHeight,
			Focused: m.focus == FocusPalette,
		}.View()),
		rendered(components.HueSlider{
			Hue:     cursor.Hue,
			Width:   m.tokens.SliderWidth,
			Focused: m.focus == FocusHue,
		}.View()),
	}
	if m.panel.ShowAlpha() {
		sections = append(sections, rendered(components.AlphaSlider{
			Color:   components.DisplayHex(m.panel.Value().OrEmpty()),
			Alpha:   cursor.Alpha,
			Width:   m.tokens.SliderWidth,
			Focused: m.focus == FocusAlpha,
		}.View()))
	}
	sections = append(sections, rendered(m.inputView(ctx)))
	if m.inputErr != "" {
		sections = append(sections, ui.ErrorText(m.inputErr).WithMaxWidth(m.tokens.SliderWidth))
	}
	sections = append(sections, rendered(components.SwatchRow{
		Swatches: m.panel.Swatches(),
		Selected: m.swatch,
		Focused:  m.focus == FocusSwatches,
		Width:    m.tokens.SwatchWidth,
		Gap:      m.tokens.Gap,
	}.View(ctx)))
	if m.panel.ShowPreview() {
		sections = append(sections, rendered(components.Preview{
			Value: m.panel.Value().OrEmpty(),
			Label: m.panel.Label(m.panel.DisplayedMode()),
			Width: m.tokens.PreviewWidth,
		}.View(ctx)))
	}
	sections = append(sections, rendered(m.actionsView(ctx)))
	if m.panel.Disabled() {
		sections = append(sections, ui.HintText("disabled"))
	}
	if m.status != "" {
		sections = append(sections, ui.HintText(m.status).WithMaxWidth(m.width))
	}
	sections = append(sections,
		ui.NewDivider().WithChar(helpRule).WithWidth(m.tokens.SliderWidth+2),
		rendered(m.help.View(m.keys)),
	)

	return ui.VStack(sections...).WithGap(m.tokens.Gap).ViewWithContext(ctx)
}

func (m Model) inputView(ctx ui.RenderContext) string {
	state := ui.InputStateDefault
	switch {
	case m.inputErr != "":
		state = ui.InputStateInvalid
	case m.focus == FocusInput:
		state = ui.InputStateFocus
	}
	label := ui.LabelText(m.panel.Label(m.panel.DisplayedMode())).WithMaxWidth(labelWidth)
	box := ui.InputStyle(ctx.Theme, state).Width(m.tokens.InputWidth).Render(m.input.View())
	return ui.HStack(
		rendered(lipgloss.NewStyle().Width(labelWidth+1).Render(label.ViewWithContext(ctx))),
		rendered(box),
	).WithAlign(lipgloss.Center).ViewWithContext(ctx)
}

func (m Model) actionsView(ctx ui.RenderContext) string {
	if len(m.actions) == 0 {
		return ""
	}
	buttons := make([]ui.Renderable, 0, len(m.actions))
	for i, action := range m.actions {
		button := ui.SecondaryButton(m.actionLabel(action))
		if action == colorpicker.ActionClear {
			button = ui.DangerButton(m.actionLabel(action))
		}
		buttons = append(buttons, button.
			WithPadding(m.tokens.ButtonPadding).
			WithDisabled(!m.actionEnabled(action)).
			WithActive(m.focus == FocusActions && i == m.action))
	}
	return ui.HStack(buttons...).WithGap(1).ViewWithContext(ctx)
}
