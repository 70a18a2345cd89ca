package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ColourSet is a semantic colour slot: a base colour, the text colour that
// reads on it, a muted variant, and an accent that stands out against it.
type ColourSet struct {
	Base     lipgloss.AdaptiveColor
	OnBase   lipgloss.AdaptiveColor
	Muted    lipgloss.AdaptiveColor
	Contrast lipgloss.AdaptiveColor
}

// Palette describes the semantic colour slots used by components.
type Palette struct {
	Primary ColourSet
	Surface ColourSet
	Neutral ColourSet
	Danger  ColourSet
}

// PaletteSlot selects a ColourSet from a Palette.
type PaletteSlot func(Palette) ColourSet

var (
	PalettePrimary PaletteSlot = func(p Palette) ColourSet { return p.Primary }
	PaletteSurface PaletteSlot = func(p Palette) ColourSet { return p.Surface }
	PaletteNeutral PaletteSlot = func(p Palette) ColourSet { return p.Neutral }
	PaletteDanger  PaletteSlot = func(p Palette) ColourSet { return p.Danger }
)

// BorderSet groups reusable border definitions.
type BorderSet struct {
	Normal  lipgloss.Border
	Rounded lipgloss.Border
	Thick   lipgloss.Border
}

type BorderVariant int

const (
	BorderVariantNormal BorderVariant = iota
	BorderVariantRounded
	BorderVariantThick
)

type TypographyVariant int

const (
	TypographyVariantBody TypographyVariant = iota
	TypographyVariantTitle
	TypographyVariantLabel
	TypographyVariantCode
	TypographyVariantHint
	TypographyVariantError
)

// TypographyScale holds the text presets.
type TypographyScale struct {
	Body  lipgloss.Style
	Title lipgloss.Style
	Label lipgloss.Style
	Code  lipgloss.Style
	Hint  lipgloss.Style
	Error lipgloss.Style
}

// InputStyles describes the text input frame per InputState.
type InputStyles struct {
	Default lipgloss.Style
	Focus   lipgloss.Style
	Invalid lipgloss.Style
}

type InputState int

const (
	InputStateDefault InputState = iota
	InputStateFocus
	InputStateInvalid
)

type ButtonVariant int

const (
	ButtonVariantPrimary ButtonVariant = iota
	ButtonVariantSecondary
	ButtonVariantDanger
)

// PickerTokens are the colour picker dimensions for one size, in terminal
// cells.
type PickerTokens struct {
	PaletteWidth  int
	PaletteHeight int
	SliderWidth   int
	SwatchWidth   int
	PreviewWidth  int
	InputWidth    int
	ButtonPadding int
	Gap           int
}

// VariantRegistry maps component variants to styling strategies.
type VariantRegistry struct {
	strategies map[any]StyleStrategy
}

// NewVariantRegistry creates an empty registry.
func NewVariantRegistry() *VariantRegistry {
	return &VariantRegistry{strategies: make(map[any]StyleStrategy)}
}

// Register adds a variant-to-strategy mapping.
func (vr *VariantRegistry) Register(variant any, strategy StyleStrategy) {
	vr.strategies[variant] = strategy
}

// Get returns the strategy for variant, or nil.
func (vr *VariantRegistry) Get(variant any) StyleStrategy {
	if vr == nil {
		return nil
	}
	return vr.strategies[variant]
}

// Theme is an immutable styling theme. Build one with LightTheme or
// DarkTheme and reuse it.
type Theme struct {
	Name       string
	Palette    Palette
	Borders    BorderSet
	Typography TypographyScale
	Input      InputStyles
	Variants   *VariantRegistry
	Picker     map[string]PickerTokens
}

// PickerTokens returns the tokens for size, falling back to medium.
func (t Theme) PickerTokens(size string) PickerTokens {
	if tokens, ok := t.Picker[size]; ok {
		return tokens
	}
	return t.Picker["medium"]
}

// DefaultTheme returns the light theme.
func DefaultTheme() Theme {
	return LightTheme()
}

// ThemeByName resolves "light" or "dark". An empty name is light.
func ThemeByName(name string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "light":
		return LightTheme(), nil
	case "dark":
		return DarkTheme(), nil
	default:
		return Theme{}, fmt.Errorf("unknown theme %q", name)
	}
}

// LightTheme returns the light theme.
func LightTheme() Theme {
	ac := func(light, dark string) lipgloss.AdaptiveColor {
		return lipgloss.AdaptiveColor{Light: light, Dark: dark}
	}
	palette := Palette{
		Primary: ColourSet{
			Base:     ac("#18a058", "#63e2b7"),
			OnBase:   ac("#ffffff", "#0b1120"),
			Muted:    ac("#0c7a43", "#36ad6a"),
			Contrast: ac("#facc15", "#ca8a04"),
		},
		Surface: ColourSet{
			Base:     ac("#ffffff", "#18181c"),
			OnBase:   ac("#1f2225", "#e5e7eb"),
			Muted:    ac("#f3f3f5", "#26262a"),
			Contrast: ac("#18a058", "#63e2b7"),
		},
		Neutral: ColourSet{
			Base:     ac("#e0e0e6", "#48484e"),
			OnBase:   ac("#333639", "#e5e7eb"),
			Muted:    ac("#76787b", "#9ca3af"),
			Contrast: ac("#1f2225", "#f8fafc"),
		},
		Danger: ColourSet{
			Base:     ac("#d03050", "#e88080"),
			OnBase:   ac("#ffffff", "#450a0a"),
			Muted:    ac("#ab1f3f", "#d03050"),
			Contrast: ac("#f8fafc", "#f8fafc"),
		},
	}
	return newTheme("light", palette)
}

// DarkTheme returns the dark theme.
func DarkTheme() Theme {
	theme := LightTheme()
	palette := theme.Palette
	palette.Surface = ColourSet{
		Base:     lipgloss.AdaptiveColor{Light: "#18181c", Dark: "#101014"},
		OnBase:   lipgloss.AdaptiveColor{Light: "#f9fafb", Dark: "#e5e7eb"},
		Muted:    lipgloss.AdaptiveColor{Light: "#26262a", Dark: "#1f1f23"},
		Contrast: lipgloss.AdaptiveColor{Light: "#63e2b7", Dark: "#63e2b7"},
	}
	palette.Neutral = ColourSet{
		Base:     lipgloss.AdaptiveColor{Light: "#48484e", Dark: "#333338"},
		OnBase:   lipgloss.AdaptiveColor{Light: "#e5e7eb", Dark: "#cbd5f5"},
		Muted:    lipgloss.AdaptiveColor{Light: "#9ca3af", Dark: "#6b7280"},
		Contrast: lipgloss.AdaptiveColor{Light: "#f8fafc", Dark: "#f8fafc"},
	}
	return newTheme("dark", palette)
}

func newTheme(name string, palette Palette) Theme {
	borders := BorderSet{
		Normal:  lipgloss.NormalBorder(),
		Rounded: lipgloss.RoundedBorder(),
		Thick:   lipgloss.ThickBorder(),
	}
	frame := lipgloss.NewStyle().Padding(0, 1).
		Background(palette.Surface.Base).
		Foreground(palette.Surface.OnBase)

	variants := NewVariantRegistry()
	registerButtonVariants(variants)

	return Theme{
		Name:       name,
		Palette:    palette,
		Borders:    borders,
		Typography: defaultTypography(palette),
		Input: InputStyles{
			Default: frame.BorderStyle(borders.Rounded).BorderForeground(palette.Neutral.Base),
			Focus:   frame.BorderStyle(borders.Rounded).BorderForeground(palette.Primary.Base),
			Invalid: frame.BorderStyle(borders.Rounded).BorderForeground(palette.Danger.Base),
		},
		Variants: variants,
		Picker:   defaultPickerTokens(),
	}
}

func defaultPickerTokens() map[string]PickerTokens {
	return map[string]PickerTokens{
		"small": {
			PaletteWidth: 24, PaletteHeight: 8, SliderWidth: 24,
			SwatchWidth: 2, PreviewWidth: 4, InputWidth: 18, ButtonPadding: 1, Gap: 0,
		},
		"medium": {
			PaletteWidth: 32, PaletteHeight: 10, SliderWidth: 32,
			SwatchWidth: 3, PreviewWidth: 6, InputWidth: 24, ButtonPadding: 1, Gap: 1,
		},
		"large": {
			PaletteWidth: 48, PaletteHeight: 14, SliderWidth: 48,
			SwatchWidth: 4, PreviewWidth: 8, InputWidth: 30, ButtonPadding: 2, Gap: 1,
		},
	}
}

func registerButtonVariants(registry *VariantRegistry) {
	registry.Register(ButtonVariantPrimary, NewCompositeStrategy(Background(PalettePrimary)))
	registry.Register(ButtonVariantSecondary, NewCompositeStrategy(Background(PaletteNeutral)))
	registry.Register(ButtonVariantDanger, NewCompositeStrategy(Background(PaletteDanger)))
}

func defaultTypography(p Palette) TypographyScale {
	body := lipgloss.NewStyle().Foreground(p.Surface.OnBase)
	return TypographyScale{
		Body:  body,
		Title: body.Bold(true).Foreground(p.Primary.Base),
		Label: body.Bold(true).Foreground(p.Neutral.Muted),
		Code:  body.Background(p.Surface.Muted).Padding(0, 1),
		Hint:  body.Foreground(p.Neutral.Muted).Faint(true),
		Error: body.Foreground(p.Danger.Base),
	}
}

// BorderForVariant returns the border for variant.
func BorderForVariant(theme Theme, variant BorderVariant) lipgloss.Border {
	switch variant {
	case BorderVariantThick:
		return theme.Borders.Thick
	case BorderVariantRounded:
		return theme.Borders.Rounded
	default:
		return theme.Borders.Normal
	}
}

// TypographyStyle returns the text preset for variant.
func TypographyStyle(theme Theme, variant TypographyVariant) lipgloss.Style {
	typo := theme.Typography
	switch variant {
	case TypographyVariantTitle:
		return typo.Title
	case TypographyVariantLabel:
		return typo.Label
	case TypographyVariantCode:
		return typo.Code
	case TypographyVariantHint:
		return typo.Hint
	case TypographyVariantError:
		return typo.Error
	default:
		return typo.Body
	}
}

// InputStyle returns the input frame for state.
func InputStyle(theme Theme, state InputState) lipgloss.Style {
	switch state {
	case InputStateFocus:
		return theme.Input.Focus
	case InputStateInvalid:
		return theme.Input.Invalid
	default:
		return theme.Input.Default
	}
}

// Background applies a slot's base colour with its matching text colour.
func Background(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		return base.Background(cs.Base).Foreground(cs.OnBase)
	}
}

// Foreground applies a slot's base colour to text only.
func Foreground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(slot(theme.Palette).Base)
	}
}

// Border applies a border from the theme.
func Border(variant BorderVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Border(BorderForVariant(theme, variant))
	}
}

// PaddingX pads left and right by n cells.
func PaddingX(n int) StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style {
		return base.PaddingLeft(n).PaddingRight(n)
	}
}

// Typography inherits a text preset.
func Typography(variant TypographyVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Inherit(TypographyStyle(theme, variant))
	}
}
