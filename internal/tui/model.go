package tui

import (
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/huekit/internal/colorpicker"
	"github.com/alexisbeaulieu97/huekit/internal/logger"
	ui "github.com/alexisbeaulieu97/huekit/internal/ui/components"
	"github.com/alexisbeaulieu97/huekit/pkg/color"
)

// Focus identifies the widget receiving keys.
type Focus int

const (
	FocusPalette Focus = iota
	FocusHue
	FocusAlpha
	FocusInput
	FocusSwatches
	FocusActions
)

func (f Focus) String() string {
	switch f {
	case FocusPalette:
		return "palette"
	case FocusHue:
		return "hue"
	case FocusAlpha:
		return "alpha"
	case FocusInput:
		return "input"
	case FocusSwatches:
		return "swatches"
	case FocusActions:
		return "actions"
	default:
		return "unknown"
	}
}

// Clipboard is the system clipboard.
type Clipboard interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

type systemClipboard struct{}

func (systemClipboard) ReadAll() (string, error)   { return clipboard.ReadAll() }
func (systemClipboard) WriteAll(text string) error { return clipboard.WriteAll(text) }

// Config assembles a picker Model. Zero fields take defaults.
type Config struct {
	Options   colorpicker.Options
	Locale    *colorpicker.Locale
	FormItem  colorpicker.FormItem
	Theme     *ui.Theme
	Logger    *logger.Logger
	Clipboard Clipboard
}

// flushMsg runs completions deferred during the previous update, after the
// frame for that update has been rendered.
type flushMsg struct{}

func flush() tea.Msg { return flushMsg{} }

// Model is the bubbletea program hosting one colour picker panel.
type Model struct {
	panel *colorpicker.Panel
	queue *colorpicker.DeferQueue

	keys  KeyMap
	help  help.Model
	input textinput.Model

	focus   Focus
	ring    []Focus
	swatch  int
	action  int
	actions []colorpicker.Action
	// gesture is set by live commits and cleared when the gesture completes.
	gesture bool

	inputErr string
	status   string

	theme     ui.Theme
	tokens    ui.PickerTokens
	clipboard Clipboard
	log       *logger.Logger

	width    int
	quitting bool
}

// NewModel builds the picker model and mounts its panel.
func NewModel(cfg Config) Model {
	theme := ui.DefaultTheme()
	if cfg.Theme != nil {
		theme = *cfg.Theme
	}
	clip := cfg.Clipboard
	if clip == nil {
		clip = systemClipboard{}
	}

	queue := &colorpicker.DeferQueue{}
	panel := colorpicker.New(cfg.Options, colorpicker.Deps{
		Locale:    cfg.Locale,
		FormItem:  cfg.FormItem,
		Scheduler: queue,
		Logger:    cfg.Logger,
	})
	tokens := theme.PickerTokens(string(panel.Size()))

	input := textinput.New()
	input.Prompt = ""
	input.CharLimit = 64
	input.Width = tokens.InputWidth
	input.Placeholder = "#RRGGBB"

	m := Model{
		panel:     panel,
		queue:     queue,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		input:     input,
		theme:     theme,
		tokens:    tokens,
		clipboard: clip,
		log:       cfg.Logger.Component("tui"),
		width:     80,
	}
	for _, action := range []colorpicker.Action{colorpicker.ActionClear, colorpicker.ActionUndo, colorpicker.ActionRedo} {
		if panel.HasAction(action) {
			m.actions = append(m.actions, action)
		}
	}
	m.ring = m.focusRing()
	m.syncInput()
	return m
}

// Init starts the program.
func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) focusRing() []Focus {
	ring := []Focus{FocusPalette, FocusHue}
	if m.panel.ShowAlpha() {
		ring = append(ring, FocusAlpha)
	}
	ring = append(ring, FocusInput)
	if len(m.panel.Swatches()) > 0 {
		ring = append(ring, FocusSwatches)
	}
	if len(m.actions) > 0 {
		ring = append(ring, FocusActions)
	}
	return ring
}

// Panel exposes the panel state.
func (m Model) Panel() *colorpicker.Panel {
	return m.panel
}

// Value returns the canonical value.
func (m Model) Value() colorpicker.Value {
	return m.panel.Value()
}

// Focus returns the focused widget.
func (m Model) Focus() Focus {
	return m.focus
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}

// inputText is the canonical value in the displayed encoding, or the raw
// value when it does not parse.
func (m Model) inputText() string {
	value, ok := m.panel.Value().Get()
	if !ok {
		return ""
	}
	converted, err := color.Convert(value, m.panel.DisplayedMode(), m.panel.ShowAlpha())
	if err != nil {
		return value
	}
	return converted
}

// syncInput refreshes the input text unless the user is editing it.
func (m *Model) syncInput() {
	if m.focus == FocusInput {
		return
	}
	m.input.SetValue(m.inputText())
	m.inputErr = ""
}

func (m Model) actionEnabled(action colorpicker.Action) bool {
	if m.panel.Disabled() || !m.panel.HasAction(action) {
		return false
	}
	switch action {
	case colorpicker.ActionClear:
		return m.panel.HasValue()
	case colorpicker.ActionUndo:
		return m.panel.Undoable()
	case colorpicker.ActionRedo:
		return m.panel.Redoable()
	default:
		return false
	}
}

func (m Model) actionLabel(action colorpicker.Action) string {
	locale := m.panel.Locale()
	switch action {
	case colorpicker.ActionClear:
		return locale.Clear
	case colorpicker.ActionUndo:
		return locale.Undo
	default:
		return locale.Redo
	}
}
