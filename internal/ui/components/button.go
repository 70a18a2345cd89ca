package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Button renders an action button. Disabled buttons render faint; the
// focused button is underlined.
type Button struct {
	BaseComponent
	label    string
	variant  ButtonVariant
	padding  int
	disabled bool
	active   bool
}

// NewButton creates a primary button with the given label.
func NewButton(label string) *Button {
	return &Button{
		BaseComponent: NewBaseComponent(),
		label:         label,
		variant:       ButtonVariantPrimary,
		padding:       1,
	}
}

// PrimaryButton creates a primary button.
func PrimaryButton(label string) *Button {
	return NewButton(label)
}

// SecondaryButton creates a neutral button.
func SecondaryButton(label string) *Button {
	return NewButton(label).WithVariant(ButtonVariantSecondary)
}

// DangerButton creates a destructive-action button.
func DangerButton(label string) *Button {
	return NewButton(label).WithVariant(ButtonVariantDanger)
}

// View renders the button.
func (b *Button) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the button with the given theme context.
func (b *Button) ViewWithContext(ctx RenderContext) string {
	label := b.label
	if ctx.MaxWidth > 0 {
		label = Truncate(label, ctx.MaxWidth-2*b.padding)
	}
	return b.computeStyle(ctx.Theme).Render(label)
}

func (b *Button) computeStyle(theme Theme) lipgloss.Style {
	style := b.ComputeStyle(theme)
	if strategy := theme.Variants.Get(b.variant); strategy != nil {
		style = strategy.Apply(style, theme)
	}
	style = PaddingX(b.padding)(style, theme)
	if b.disabled {
		cs := theme.Palette.Neutral
		style = style.Background(cs.Base).Foreground(cs.Muted).Faint(true)
	}
	if b.active {
		style = style.Bold(true).Underline(true)
	}
	return style
}

// WithVariant sets the button variant.
func (b *Button) WithVariant(variant ButtonVariant) *Button {
	b.variant = variant
	return b
}

// WithPadding sets the horizontal padding in cells.
func (b *Button) WithPadding(padding int) *Button {
	if padding >= 0 {
		b.padding = padding
	}
	return b
}

// WithDisabled sets the disabled state.
func (b *Button) WithDisabled(disabled bool) *Button {
	b.disabled = disabled
	return b
}

// WithActive marks the button as focused.
func (b *Button) WithActive(active bool) *Button {
	b.active = active
	return b
}

// WithAppliers appends theme-based style modifiers.
func (b *Button) WithAppliers(appliers ...StyleFunc) *Button {
	b.AddAppliers(appliers...)
	return b
}

func (b *Button) Label() string    { return b.label }
func (b *Button) IsDisabled() bool { return b.disabled }
func (b *Button) IsActive() bool   { return b.active }
