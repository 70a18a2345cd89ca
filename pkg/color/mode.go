package color

import (
	"fmt"
	"regexp"
	"strings"
)

// Mode is the textual encoding family of a colour string.
type Mode string

const (
	ModeUnknown Mode = ""
	ModeHex     Mode = "hex"
	ModeRGB     Mode = "rgb"
	ModeHSL     Mode = "hsl"
	ModeHSV     Mode = "hsv"
)

// AllModes lists every supported mode in canonical order.
var AllModes = []Mode{ModeRGB, ModeHex, ModeHSL, ModeHSV}

// Space is a colour space a tuple lives in.
type Space int

const (
	SpaceRGB Space = iota
	SpaceHSL
	SpaceHSV
)

func (s Space) String() string {
	switch s {
	case SpaceRGB:
		return "rgb"
	case SpaceHSL:
		return "hsl"
	case SpaceHSV:
		return "hsv"
	default:
		return fmt.Sprintf("space(%d)", int(s))
	}
}

// Valid reports whether m is one of the four supported modes.
func (m Mode) Valid() bool {
	switch m {
	case ModeHex, ModeRGB, ModeHSL, ModeHSV:
		return true
	default:
		return false
	}
}

// Space returns the colour space strings of this mode are parsed into.
func (m Mode) Space() Space {
	switch m {
	case ModeHSL:
		return SpaceHSL
	case ModeHSV:
		return SpaceHSV
	default:
		return SpaceRGB
	}
}

func (m Mode) String() string {
	return string(m)
}

// ParseModeName converts a user supplied mode name such as "HEX" into a Mode.
func ParseModeName(name string) (Mode, error) {
	mode := Mode(strings.ToLower(strings.TrimSpace(name)))
	if !mode.Valid() {
		return ModeUnknown, fmt.Errorf("unknown color mode %q (want one of rgb, hex, hsl, hsv)", name)
	}
	return mode, nil
}

const numberPattern = `[-+]?(?:\d+\.?\d*|\.\d+)`

var (
	hexPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{4}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)
	rgbPattern = regexp.MustCompile(`(?i)^rgba?\(\s*(` + numberPattern + `)\s*,\s*(` + numberPattern + `)\s*,\s*(` +
		numberPattern + `)\s*(?:,\s*(` + numberPattern + `)\s*)?\)$`)
	hslPattern = functionalPattern("hsl")
	hsvPattern = functionalPattern("hsv")
)

func functionalPattern(prefix string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)^` + prefix + `a?\(\s*(` + numberPattern + `)(?:deg)?\s*,\s*(` +
		numberPattern + `)%?\s*,\s*(` + numberPattern + `)%?\s*(?:,\s*(` + numberPattern + `)\s*)?\)$`)
}

// ParseMode classifies value by syntax. It returns ModeUnknown for anything
// that is not a hex literal or an rgb/hsl/hsv functional notation; callers
// treat that as "no colour". Channel ranges are checked by the Parse
// functions, not here.
func ParseMode(value string) Mode {
	value = strings.TrimSpace(value)
	switch {
	case value == "":
		return ModeUnknown
	case hexPattern.MatchString(value):
		return ModeHex
	case rgbPattern.MatchString(value):
		return ModeRGB
	case hslPattern.MatchString(value):
		return ModeHSL
	case hsvPattern.MatchString(value):
		return ModeHSV
	default:
		return ModeUnknown
	}
}
