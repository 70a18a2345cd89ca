package components

import (
	"strings"
)

// Divider renders a horizontal rule. Without an explicit width it fills the
// context width, or 40 cells when unconstrained.
type Divider struct {
	BaseComponent
	char  string
	width int
}

// NewDivider creates a thin divider.
func NewDivider() *Divider {
	d := &Divider{BaseComponent: NewBaseComponent(), char: "─"}
	d.SetAppliers(Foreground(PaletteNeutral))
	return d
}

// View renders the divider with the default theme.
func (d *Divider) View() string {
	return d.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the divider.
func (d *Divider) ViewWithContext(ctx RenderContext) string {
	width := d.width
	if width <= 0 {
		width = ctx.MaxWidth
	}
	if width <= 0 {
		width = 40
	}
	return d.ComputeStyle(ctx.Theme).Render(strings.Repeat(d.char, width))
}

// WithWidth sets an explicit width.
func (d *Divider) WithWidth(width int) *Divider {
	d.width = width
	return d
}

// WithChar sets the rule character.
func (d *Divider) WithChar(char string) *Divider {
	if char != "" {
		d.char = char
	}
	return d
}
