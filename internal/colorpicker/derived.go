package colorpicker

import (
	"github.com/alexisbeaulieu97/huekit/pkg/color"
)

// Derived holds the tuples computed from one canonical value. OK is false
// when the value is absent or unparseable; the tuples are then zero.
type Derived struct {
	Mode color.Mode
	HSVA color.HSVA
	RGBA color.RGBA
	HSLA color.HSLA
	OK   bool
	Err  error
}

// Derive parses v in its own mode and converts it into every space. A tuple
// whose space matches the mode is the parsed tuple itself.
func Derive(v Value) Derived {
	s, ok := v.Get()
	if !ok {
		return Derived{}
	}
	mode, tuple, err := color.Parse(s)
	if err != nil {
		return Derived{Err: err}
	}
	return Derived{
		Mode: mode,
		HSVA: color.ToHSVA(tuple),
		RGBA: color.ToRGBA(tuple),
		HSLA: color.ToHSLA(tuple),
		OK:   true,
	}
}

// derivedCache recomputes only when the canonical value changed.
type derivedCache struct {
	key   Value
	valid bool
	value Derived
}

func (c *derivedCache) get(v Value) (Derived, bool) {
	if c.valid && c.key == v {
		return c.value, false
	}
	c.key = v
	c.value = Derive(v)
	c.valid = true
	return c.value, true
}
