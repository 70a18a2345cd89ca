package color

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Tuple is a colour expressed as three channels plus alpha in one Space.
type Tuple interface {
	Space() Space
	Channels() [4]float64
}

// RGBA holds red, green and blue in [0,255] and alpha in [0,1].
type RGBA struct {
	R, G, B, A float64
}

// HSLA holds hue in degrees and saturation, lightness and alpha in [0,1].
type HSLA struct {
	H, S, L, A float64
}

// HSVA holds hue in degrees and saturation, value and alpha in [0,1].
type HSVA struct {
	H, S, V, A float64
}

func (c RGBA) Space() Space         { return SpaceRGB }
func (c RGBA) Channels() [4]float64 { return [4]float64{c.R, c.G, c.B, c.A} }
func (c HSLA) Space() Space         { return SpaceHSL }
func (c HSLA) Channels() [4]float64 { return [4]float64{c.H, c.S, c.L, c.A} }
func (c HSVA) Space() Space         { return SpaceHSV }
func (c HSVA) Channels() [4]float64 { return [4]float64{c.H, c.S, c.V, c.A} }

func (c RGBA) colorful() colorful.Color {
	return colorful.Color{R: clamp(c.R, 0, 255) / 255, G: clamp(c.G, 0, 255) / 255, B: clamp(c.B, 0, 255) / 255}
}

func fromColorful(col colorful.Color, alpha float64) RGBA {
	return RGBA{R: col.R * 255, G: col.G * 255, B: col.B * 255, A: alpha}
}

// HSVA converts to HSV. Achromatic colours report hue 0.
func (c RGBA) HSVA() HSVA {
	h, s, v := c.colorful().Hsv()
	return HSVA{H: normalizeHue(h), S: s, V: v, A: c.A}
}

// HSLA converts to HSL. Achromatic colours report hue 0.
func (c RGBA) HSLA() HSLA {
	h, s, l := c.colorful().Hsl()
	return HSLA{H: normalizeHue(h), S: s, L: l, A: c.A}
}

// RGBA converts to RGB with unrounded channels.
func (c HSVA) RGBA() RGBA {
	return fromColorful(colorful.Hsv(normalizeHue(c.H), clamp(c.S, 0, 1), clamp(c.V, 0, 1)), c.A)
}

// HSLA converts to HSL keeping the hue, so greys keep the hue they were given.
func (c HSVA) HSLA() HSLA {
	s, v := clamp(c.S, 0, 1), clamp(c.V, 0, 1)
	l := v * (1 - s/2)
	sl := 0.0
	if l > 0 && l < 1 {
		sl = (v - l) / math.Min(l, 1-l)
	}
	return HSLA{H: normalizeHue(c.H), S: sl, L: l, A: c.A}
}

// RGBA converts to RGB with unrounded channels.
func (c HSLA) RGBA() RGBA {
	return fromColorful(colorful.Hsl(normalizeHue(c.H), clamp(c.S, 0, 1), clamp(c.L, 0, 1)), c.A)
}

// HSVA converts to HSV keeping the hue.
func (c HSLA) HSVA() HSVA {
	s, l := clamp(c.S, 0, 1), clamp(c.L, 0, 1)
	v := l + s*math.Min(l, 1-l)
	sv := 0.0
	if v > 0 {
		sv = 2 * (1 - l/v)
	}
	return HSVA{H: normalizeHue(c.H), S: sv, V: v, A: c.A}
}

// ToRGBA converts any tuple to RGBA.
func ToRGBA(t Tuple) RGBA {
	switch c := t.(type) {
	case RGBA:
		return c
	case HSLA:
		return c.RGBA()
	case HSVA:
		return c.RGBA()
	default:
		ch := t.Channels()
		return RGBA{R: ch[0], G: ch[1], B: ch[2], A: ch[3]}
	}
}

// ToHSLA converts any tuple to HSLA.
func ToHSLA(t Tuple) HSLA {
	switch c := t.(type) {
	case HSLA:
		return c
	case HSVA:
		return c.HSLA()
	default:
		return ToRGBA(t).HSLA()
	}
}

// ToHSVA converts any tuple to HSVA.
func ToHSVA(t Tuple) HSVA {
	switch c := t.(type) {
	case HSVA:
		return c
	case HSLA:
		return c.HSVA()
	default:
		return ToRGBA(t).HSVA()
	}
}

// ConvertTuple converts t into space.
func ConvertTuple(t Tuple, space Space) Tuple {
	switch space {
	case SpaceHSL:
		return ToHSLA(t)
	case SpaceHSV:
		return ToHSVA(t)
	default:
		return ToRGBA(t)
	}
}

// Colorful exposes the tuple as a go-colorful colour, dropping alpha.
func Colorful(t Tuple) colorful.Color {
	return ToRGBA(t).colorful()
}

func normalizeHue(h float64) float64 {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return 0
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
