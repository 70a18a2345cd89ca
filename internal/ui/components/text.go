package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const ellipsis = "…"

// Truncate shortens s to at most width display cells, ending with an
// ellipsis when it had to cut. Wide runes count as two cells.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, ellipsis)
}

// Text renders styled text.
type Text struct {
	BaseComponent
	content  string
	maxWidth int
}

// NewText creates a text component.
func NewText(content string) *Text {
	return &Text{
		BaseComponent: NewBaseComponent(),
		content:       content,
	}
}

// View renders the text with the default theme.
func (t *Text) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the text, truncated to the narrower of its own
// and the context's width limit.
func (t *Text) ViewWithContext(ctx RenderContext) string {
	content := t.content
	limit := t.maxWidth
	if ctx.MaxWidth > 0 && (limit <= 0 || ctx.MaxWidth < limit) {
		limit = ctx.MaxWidth
	}
	if limit > 0 {
		content = Truncate(content, limit)
	}
	return t.ComputeStyle(ctx.Theme).Render(content)
}

// Content returns the untruncated text.
func (t *Text) Content() string {
	return t.content
}

// WithMaxWidth limits the rendered width in cells.
func (t *Text) WithMaxWidth(width int) *Text {
	t.maxWidth = width
	return t
}

// WithStyle sets the lipgloss style directly.
func (t *Text) WithStyle(style lipgloss.Style) *Text {
	t.SetStyle(style)
	return t
}

// WithAppliers replaces the theme-based style modifiers.
func (t *Text) WithAppliers(appliers ...StyleFunc) *Text {
	t.SetAppliers(appliers...)
	return t
}

// LabelText creates label-styled text.
func LabelText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyVariantLabel))
}

// HintText creates faint help text.
func HintText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyVariantHint))
}

// ErrorText creates error-styled text.
func ErrorText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyVariantError))
}

// TitleText creates title-styled text.
func TitleText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyVariantTitle))
}
