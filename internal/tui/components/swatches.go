package components

import (
	ui "github.com/alexisbeaulieu97/huekit/internal/ui/components"
	"github.com/alexisbeaulieu97/huekit/pkg/color"
)

// SwatchRow renders the configured swatches with the selection marked
// while the row holds focus.
type SwatchRow struct {
	Swatches []string
	Selected int
	Focused  bool
	Width    int
	Gap      int
}

// View renders the row, or nothing without swatches. Swatches that do not
// parse render as the empty placeholder.
func (r SwatchRow) View(ctx ui.RenderContext) string {
	if len(r.Swatches) == 0 {
		return ""
	}
	cells := make([]ui.Renderable, 0, len(r.Swatches))
	for i, swatch := range r.Swatches {
		cell := ui.NewSwatch(DisplayHex(swatch), r.Width).
			WithSelected(r.Focused && i == r.Selected)
		cells = append(cells, cell)
	}
	return ui.HStack(cells...).WithGap(r.Gap).ViewWithContext(ctx)
}

// DisplayHex returns the opaque "#rrggbb" a terminal can paint for value,
// or "" when value is not a colour. Alpha is dropped.
func DisplayHex(value string) string {
	_, tuple, err := color.Parse(value)
	if err != nil {
		return ""
	}
	return color.Colorful(tuple).Clamped().Hex()
}
