// Package colorpicker is the framework-free core of the colour picker panel.
//
// A Panel owns one canonical colour string (controlled by the caller or held
// internally), derives RGB/HSL/HSV tuples from it on demand, tracks the
// displayed cursor position of the palette and sliders separately from the
// committed value, and keeps a linear undo history of completed values.
//
// Gestures come in two flavours. Cursor updates (UpdateSV, UpdateHue,
// UpdateAlpha) fire during a drag: they notify OnUpdateValue but never touch
// the history. Completion (Complete) marks the end of a gesture: it notifies
// OnComplete and pushes the value onto the history. Text input commits
// immediately and schedules its completion through the Scheduler so derived
// state has settled before the history push reads it.
package colorpicker
