package colorpicker

import (
	"slices"
	"strings"

	"github.com/alexisbeaulieu97/huekit/internal/logger"
	"github.com/alexisbeaulieu97/huekit/pkg/color"
)

type updateSource int

const (
	sourceCursor updateSource = iota
	sourceInput
)

// Cursor is the displayed position of the palette and sliders. It follows
// the canonical value except while a drag is in flight.
type Cursor struct {
	Hue   float64
	Sat   float64
	Val   float64
	Alpha float64
}

// Panel is the colour picker state machine. It is not safe for concurrent
// use; all calls belong to the goroutine driving the UI.
type Panel struct {
	opts      Options
	modes     []color.Mode
	locale    Locale
	formItem  FormItem
	scheduler Scheduler
	queue     *DeferQueue
	log       *logger.Logger

	controlled   Value
	uncontrolled Value
	merged       Value
	// upcoming is the value produced by the last cursor update. Reconciliation
	// skips a merged value equal to it so a drag does not snap the cursor.
	upcoming Value

	derived       derivedCache
	history       *History
	displayedMode color.Mode
	cursor        Cursor
}

// New mounts a panel.
func New(opts Options, deps Deps) *Panel {
	p := &Panel{
		opts:      opts,
		modes:     sanitizeModes(opts.Modes),
		locale:    DefaultLocale(),
		formItem:  deps.FormItem,
		scheduler: deps.Scheduler,
		log:       deps.Logger.Component("colorpicker"),
		cursor:    Cursor{Alpha: 1},
	}
	if deps.Locale != nil {
		p.locale = deps.Locale.withFallback()
	}
	if p.formItem == nil {
		p.formItem = nopFormItem{}
	}
	if p.scheduler == nil {
		p.queue = &DeferQueue{}
		p.scheduler = p.queue
	}
	if p.opts.Size == "" {
		p.opts.Size = SizeMedium
	}

	p.uncontrolled = opts.DefaultValue
	if !p.uncontrolled.IsSet() && opts.DeriveDefault {
		p.uncontrolled = Some(DeriveDefaultValue(p.modes, opts.ShowAlpha))
	}
	p.controlled = opts.Value
	p.merged = p.mergedValue()
	p.history = NewHistory(p.merged)

	p.displayedMode = color.ParseMode(p.merged.OrEmpty())
	if !p.displayedMode.Valid() {
		if len(p.modes) > 0 {
			p.displayedMode = p.modes[0]
		} else {
			p.displayedMode = color.ModeRGB
		}
	}

	p.reconcile()
	p.log.DebugFields("panel mounted", map[string]any{
		"value": p.merged.String(),
		"mode":  p.displayedMode.String(),
	})
	return p
}

func (p *Panel) mergedValue() Value {
	if p.controlled.IsSet() {
		return p.controlled
	}
	return p.uncontrolled
}

// SetValue updates the caller-owned value, as on a re-render with a new prop.
func (p *Panel) SetValue(v Value) {
	p.controlled = v
	p.sync()
}

// Value returns the canonical value.
func (p *Panel) Value() Value {
	return p.merged
}

// HasValue reports whether a canonical value is present.
func (p *Panel) HasValue() bool {
	return p.merged.IsSet()
}

func (p *Panel) sync() {
	next := p.mergedValue()
	if next == p.merged {
		return
	}
	p.merged = next
	p.reconcile()
}

func (p *Panel) reconcile() {
	if p.upcoming.IsSet() && p.upcoming == p.merged {
		p.upcoming = Value{}
		return
	}
	if d := p.derive(); d.OK {
		p.cursor = Cursor{Hue: d.HSVA.H, Sat: d.HSVA.S, Val: d.HSVA.V, Alpha: d.HSVA.A}
	}
	p.upcoming = Value{}
}

func (p *Panel) derive() Derived {
	d, fresh := p.derived.get(p.merged)
	if fresh && d.Err != nil {
		p.log.DebugFields("canonical value is not a color", map[string]any{
			"value": p.merged.String(),
			"error": d.Err.Error(),
		})
	}
	return d
}

// ValueMode returns the mode of the canonical value, or ModeUnknown.
func (p *Panel) ValueMode() color.Mode {
	return p.derive().Mode
}

// HSVA returns the canonical value in HSV.
func (p *Panel) HSVA() (color.HSVA, bool) {
	d := p.derive()
	return d.HSVA, d.OK
}

// RGBA returns the canonical value in RGB.
func (p *Panel) RGBA() (color.RGBA, bool) {
	d := p.derive()
	return d.RGBA, d.OK
}

// HSLA returns the canonical value in HSL.
func (p *Panel) HSLA() (color.HSLA, bool) {
	d := p.derive()
	return d.HSLA, d.OK
}

// DisplayedTuple returns the canonical value in the space of the displayed
// mode: RGBA for rgb and hex, HSVA for hsv, HSLA for hsl.
func (p *Panel) DisplayedTuple() (color.Tuple, bool) {
	d := p.derive()
	if !d.OK {
		return nil, false
	}
	switch p.displayedMode {
	case color.ModeHSV:
		return d.HSVA, true
	case color.ModeHSL:
		return d.HSLA, true
	default:
		return d.RGBA, true
	}
}

// Cursor returns the displayed cursor state.
func (p *Panel) Cursor() Cursor {
	return p.cursor
}

// DisplayedMode returns the mode the input shows and new commits use.
func (p *Panel) DisplayedMode() color.Mode {
	return p.displayedMode
}

// CycleDisplayedMode advances to the next configured mode, wrapping. A
// displayed mode outside the configured list falls back to rgb.
func (p *Panel) CycleDisplayedMode() {
	current := slices.Index(p.modes, p.displayedMode)
	if current >= 0 {
		p.displayedMode = p.modes[(current+1)%len(p.modes)]
	} else {
		p.displayedMode = color.ModeRGB
	}
}

func (p *Panel) ignoreGesture(gesture string) bool {
	if !p.opts.Disabled {
		return false
	}
	p.log.DebugFields("gesture ignored on disabled panel", map[string]any{"gesture": gesture})
	return true
}

// UpdateSV moves the palette cursor and performs a live commit.
func (p *Panel) UpdateSV(s, v float64) {
	if p.ignoreGesture("sv") {
		return
	}
	s, v = clampUnit(s), clampUnit(v)
	alpha := 1.0
	if hsva, ok := p.HSVA(); ok {
		alpha = hsva.A
	}
	p.cursor.Sat, p.cursor.Val = s, v
	tuple := color.HSVA{H: p.cursor.Hue, S: s, V: v, A: alpha}
	p.doUpdateValue(Some(color.FromTuple(tuple, p.displayedMode, p.opts.ShowAlpha)), sourceCursor)
}

// UpdateHue moves the hue slider. Without an established colour only the
// displayed hue moves; nothing is committed.
func (p *Panel) UpdateHue(hue float64) {
	if p.ignoreGesture("hue") {
		return
	}
	p.cursor.Hue = hue
	hsva, ok := p.HSVA()
	if !ok {
		p.log.Debug("hue moved without a base color")
		return
	}
	hsva.H = hue
	p.doUpdateValue(Some(color.FromTuple(hsva, p.displayedMode, p.opts.ShowAlpha)), sourceCursor)
}

// UpdateAlpha moves the alpha slider. The commit always carries alpha and
// keeps the other channels of the displayed mode's tuple.
func (p *Panel) UpdateAlpha(alpha float64) {
	if p.ignoreGesture("alpha") {
		return
	}
	alpha = clampUnit(alpha)
	tuple, ok := p.DisplayedTuple()
	if !ok {
		p.cursor.Alpha = alpha
		p.log.Debug("alpha moved without a base color")
		return
	}
	var next color.Tuple
	switch t := tuple.(type) {
	case color.HSVA:
		t.A = alpha
		next = t
	case color.HSLA:
		t.A = alpha
		next = t
	case color.RGBA:
		t.A = alpha
		next = t
	}
	p.doUpdateValue(Some(color.FromTuple(next, p.displayedMode, true)), sourceCursor)
	p.cursor.Alpha = alpha
}

// Complete marks the end of a gesture. With a present value it notifies
// OnComplete and, when pushStack is set, truncates the history after the
// current index and appends the value.
func (p *Panel) Complete(pushStack bool) {
	value, ok := p.merged.Get()
	if !ok {
		p.log.Debug("completion skipped without a value")
		return
	}
	if p.opts.OnComplete != nil {
		p.opts.OnComplete(value)
	}
	if pushStack {
		p.history.Push(p.merged)
	}
	p.formItem.TriggerChange()
	p.formItem.TriggerInput()
}

// InputUpdateValue commits a full colour string from the text input and
// schedules its completion after the next render.
func (p *Panel) InputUpdateValue(value string) {
	if p.ignoreGesture("input") {
		return
	}
	p.doUpdateValue(Some(value), sourceInput)
	p.scheduler.Defer(func() { p.Complete(true) })
}

// SelectColor commits a colour picked from the preview. It is not completed,
// so it does not enter the history on its own.
func (p *Panel) SelectColor(value string) {
	if p.ignoreGesture("preview") {
		return
	}
	p.doUpdateValue(Some(value), sourceInput)
}

// SelectSwatch commits a swatch re-encoded in the displayed mode. Malformed
// swatches are ignored.
func (p *Panel) SelectSwatch(swatch string) {
	if p.ignoreGesture("swatch") {
		return
	}
	normalized, err := color.Convert(swatch, p.displayedMode, p.opts.ShowAlpha)
	if err != nil {
		p.log.DebugFields("swatch ignored", map[string]any{"swatch": swatch, "error": err.Error()})
		return
	}
	p.doUpdateValue(Some(normalized), sourceInput)
}

// Undo restores the previous history entry.
func (p *Panel) Undo() {
	if p.ignoreGesture("undo") {
		return
	}
	prev, ok := p.history.Undo()
	if !ok {
		p.log.DebugFields("undo ignored", map[string]any{"index": p.history.Index()})
		return
	}
	p.doUpdateValue(prev, sourceInput)
	p.Complete(false)
}

// Redo restores the next history entry.
func (p *Panel) Redo() {
	if p.ignoreGesture("redo") {
		return
	}
	next, ok := p.history.Redo()
	if !ok {
		p.log.DebugFields("redo ignored", map[string]any{"index": p.history.Index(), "len": p.history.Len()})
		return
	}
	p.doUpdateValue(next, sourceInput)
	p.Complete(false)
}

// Clear removes the canonical value and fires OnClear. Clearing is not part
// of the history.
func (p *Panel) Clear() {
	if p.ignoreGesture("clear") {
		return
	}
	if !p.HasValue() {
		return
	}
	p.doUpdateValue(Value{}, sourceInput)
	if p.opts.OnClear != nil {
		p.opts.OnClear()
	}
}

func (p *Panel) doUpdateValue(v Value, source updateSource) {
	if source == sourceCursor {
		p.upcoming = v
	} else {
		p.upcoming = Value{}
	}
	if p.opts.OnUpdateValue != nil {
		p.opts.OnUpdateValue(v)
	}
	p.formItem.TriggerChange()
	p.formItem.TriggerInput()
	p.uncontrolled = v
	p.sync()
}

// Flush runs completions deferred on the panel's own queue. It is a no-op
// when a Scheduler was supplied.
func (p *Panel) Flush() int {
	if p.queue == nil {
		return 0
	}
	return p.queue.Flush()
}

// Undoable reports whether Undo would change the value.
func (p *Panel) Undoable() bool {
	return p.history.Undoable()
}

// Redoable reports whether Redo would change the value.
func (p *Panel) Redoable() bool {
	return p.history.Redoable()
}

// History returns the undo stack and current index.
func (p *Panel) History() ([]Value, int) {
	return p.history.Entries(), p.history.Index()
}

// Modes returns the configured modes.
func (p *Panel) Modes() []color.Mode {
	return slices.Clone(p.modes)
}

// ShowAlpha reports whether the alpha slider is shown.
func (p *Panel) ShowAlpha() bool { return p.opts.ShowAlpha }

// ShowPreview reports whether the preview is shown.
func (p *Panel) ShowPreview() bool { return p.opts.ShowPreview }

// Swatches returns the configured swatches.
func (p *Panel) Swatches() []string { return slices.Clone(p.opts.Swatches) }

// Disabled reports whether gestures are ignored.
func (p *Panel) Disabled() bool { return p.opts.Disabled }

// Size returns the size token.
func (p *Panel) Size() Size { return p.opts.Size }

// Locale returns the action labels.
func (p *Panel) Locale() Locale { return p.locale }

// HasAction reports whether action is enabled.
func (p *Panel) HasAction(action Action) bool {
	return slices.Contains(p.opts.Actions, action)
}

// Label returns the input label for mode, honouring RenderLabel.
func (p *Panel) Label(mode color.Mode) string {
	if p.opts.RenderLabel != nil {
		return p.opts.RenderLabel(mode)
	}
	if mode == color.ModeHex {
		return "HEX"
	}
	return strings.ToUpper(mode.String()) + alphaSuffix(p.opts.ShowAlpha)
}

func alphaSuffix(showAlpha bool) string {
	if showAlpha {
		return "A"
	}
	return ""
}

func clampUnit(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
