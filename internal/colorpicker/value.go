package colorpicker

// Value is an optional colour string. The zero Value is absent, and so is
// Some("").
type Value struct {
	s   string
	set bool
}

// Some wraps s as a present Value.
func Some(s string) Value {
	if s == "" {
		return Value{}
	}
	return Value{s: s, set: true}
}

// Get returns the string and whether it is present.
func (v Value) Get() (string, bool) {
	return v.s, v.set
}

// IsSet reports whether v holds a colour.
func (v Value) IsSet() bool {
	return v.set
}

// String returns the colour, or "<none>" when absent.
func (v Value) String() string {
	if !v.set {
		return "<none>"
	}
	return v.s
}

// OrEmpty returns the colour or "".
func (v Value) OrEmpty() string {
	return v.s
}
