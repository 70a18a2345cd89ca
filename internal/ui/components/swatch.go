package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Swatch paints a block of cells with a colour. An empty colour renders a
// checkered placeholder, the usual stand-in for "no colour".
type Swatch struct {
	BaseComponent
	color    string
	width    int
	height   int
	selected bool
}

// NewSwatch creates a one-line swatch of width cells. color is any string
// lipgloss accepts, typically "#RRGGBB".
func NewSwatch(color string, width int) *Swatch {
	if width < 1 {
		width = 1
	}
	return &Swatch{
		BaseComponent: NewBaseComponent(),
		color:         color,
		width:         width,
		height:        1,
	}
}

// View renders the swatch with the default theme.
func (s *Swatch) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the swatch.
func (s *Swatch) ViewWithContext(ctx RenderContext) string {
	style := s.ComputeStyle(ctx.Theme)
	var row string
	if s.color == "" {
		row = strings.Repeat("░", s.width)
		style = style.Foreground(ctx.Theme.Palette.Neutral.Muted)
	} else {
		row = strings.Repeat(" ", s.width)
		style = style.Background(lipgloss.Color(s.color))
	}
	rows := make([]string, s.height)
	for i := range rows {
		rows[i] = row
	}
	if s.selected {
		style = style.Border(BorderForVariant(ctx.Theme, BorderVariantRounded)).
			BorderForeground(ctx.Theme.Palette.Primary.Base)
	}
	return style.Render(strings.Join(rows, "\n"))
}

// WithHeight sets the number of lines.
func (s *Swatch) WithHeight(height int) *Swatch {
	if height > 0 {
		s.height = height
	}
	return s
}

// WithSelected frames the swatch as the focused one.
func (s *Swatch) WithSelected(selected bool) *Swatch {
	s.selected = selected
	return s
}

// Color returns the painted colour.
func (s *Swatch) Color() string {
	return s.color
}
