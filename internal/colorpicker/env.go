package colorpicker

import "github.com/alexisbeaulieu97/huekit/internal/logger"

// Locale supplies the action button labels.
type Locale struct {
	Clear string `yaml:"clear"`
	Undo  string `yaml:"undo"`
	Redo  string `yaml:"redo"`
}

// DefaultLocale is used when no locale is supplied.
func DefaultLocale() Locale {
	return Locale{Clear: "Clear", Undo: "Undo", Redo: "Redo"}
}

func (l Locale) withFallback() Locale {
	def := DefaultLocale()
	if l.Clear == "" {
		l.Clear = def.Clear
	}
	if l.Undo == "" {
		l.Undo = def.Undo
	}
	if l.Redo == "" {
		l.Redo = def.Redo
	}
	return l
}

// FormItem receives fire-and-forget notifications on every commit and
// completion, for validation or dirty tracking by an enclosing form.
type FormItem interface {
	TriggerChange()
	TriggerInput()
}

type nopFormItem struct{}

func (nopFormItem) TriggerChange() {}
func (nopFormItem) TriggerInput()  {}

// Scheduler defers a function until after the next render pass.
type Scheduler interface {
	Defer(fn func())
}

// DeferQueue is a Scheduler whose deferred functions run on Flush.
type DeferQueue struct {
	pending []func()
}

// Defer queues fn.
func (q *DeferQueue) Defer(fn func()) {
	q.pending = append(q.pending, fn)
}

// Len returns the number of queued functions.
func (q *DeferQueue) Len() int {
	return len(q.pending)
}

// Flush runs the functions queued so far, in order, and returns how many ran.
// Functions deferred while flushing wait for the next Flush.
func (q *DeferQueue) Flush() int {
	batch := q.pending
	q.pending = nil
	for _, fn := range batch {
		fn()
	}
	return len(batch)
}

// Deps are the collaborators a Panel is constructed with. Every field is
// optional.
type Deps struct {
	Locale    *Locale
	FormItem  FormItem
	Scheduler Scheduler
	Logger    *logger.Logger
}
