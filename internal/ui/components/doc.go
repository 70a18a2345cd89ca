// Package components provides the theme-aware building blocks the colour
// picker renders with.
//
// Components render to strings through lipgloss. Themes are immutable and
// travel explicitly through a RenderContext:
//
//	ctx := components.DefaultContext().WithTheme(components.DarkTheme())
//	out := components.PrimaryButton("Undo").WithDisabled(true).ViewWithContext(ctx)
//
// View() renders with the default theme.
//
// # Components
//
//   - Text: styled text, optionally truncated to a display width
//   - Button: an action button with variants and disabled/focused states
//   - Stack: vertical or horizontal arrangement with gaps
//   - Divider: a horizontal rule
//   - Swatch: a block painted with a colour
//
// # Size tokens
//
// Each theme carries colour picker dimensions keyed by size name (small,
// medium, large). PickerTokens falls back to medium for unknown names.
//
// # Style modifiers
//
// StyleFunc values apply theme data to a lipgloss style:
//
//	text := components.NewText("HEX").WithAppliers(
//	    components.Foreground(components.PaletteNeutral),
//	    components.Typography(components.TypographyVariantLabel),
//	)
package components
