package components

import (
	ui "github.com/alexisbeaulieu97/huekit/internal/ui/components"
)

// Preview shows the canonical colour next to its label and text.
type Preview struct {
	Value string
	Label string
	Width int
}

// View renders the preview block. An absent value renders the empty
// placeholder.
func (p Preview) View(ctx ui.RenderContext) string {
	text := p.Value
	if text == "" {
		text = "no color"
	}
	return ui.HStack(
		ui.NewSwatch(DisplayHex(p.Value), p.Width),
		ui.NewText(" "),
		ui.LabelText(p.Label),
		ui.NewText(" "),
		ui.NewText(text),
	).ViewWithContext(ctx)
}
