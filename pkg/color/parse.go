package color

import (
	"fmt"
	"strconv"
	"strings"

	apperrors "github.com/alexisbeaulieu97/huekit/pkg/errors"
)

// ParseHex parses #RGB, #RGBA, #RRGGBB or #RRGGBBAA.
func ParseHex(value string) (RGBA, error) {
	value = strings.TrimSpace(value)
	if !hexPattern.MatchString(value) {
		return RGBA{}, apperrors.NewColorError(value, string(ModeHex), "expected #RGB, #RGBA, #RRGGBB or #RRGGBBAA")
	}

	digits := value[1:]
	if len(digits) <= 4 {
		expanded := make([]byte, 0, len(digits)*2)
		for i := 0; i < len(digits); i++ {
			expanded = append(expanded, digits[i], digits[i])
		}
		digits = string(expanded)
	}

	channels := [4]float64{0, 0, 0, 255}
	for i := 0; i*2 < len(digits); i++ {
		b, err := strconv.ParseUint(digits[i*2:i*2+2], 16, 8)
		if err != nil {
			return RGBA{}, apperrors.NewColorError(value, string(ModeHex), err.Error())
		}
		channels[i] = float64(b)
	}

	return RGBA{R: channels[0], G: channels[1], B: channels[2], A: channels[3] / 255}, nil
}

// ParseRGB parses rgb()/rgba() notation, or a hex literal.
func ParseRGB(value string) (RGBA, error) {
	value = strings.TrimSpace(value)
	if hexPattern.MatchString(value) {
		return ParseHex(value)
	}

	ch, err := parseFunctional(value, ModeRGB, [3]float64{255, 255, 255})
	if err != nil {
		return RGBA{}, err
	}
	return RGBA{R: ch[0], G: ch[1], B: ch[2], A: ch[3]}, nil
}

// ParseHSL parses hsl()/hsla() notation.
func ParseHSL(value string) (HSLA, error) {
	ch, err := parseFunctional(strings.TrimSpace(value), ModeHSL, [3]float64{-1, 100, 100})
	if err != nil {
		return HSLA{}, err
	}
	return HSLA{H: normalizeHue(ch[0]), S: ch[1] / 100, L: ch[2] / 100, A: ch[3]}, nil
}

// ParseHSV parses hsv()/hsva() notation.
func ParseHSV(value string) (HSVA, error) {
	ch, err := parseFunctional(strings.TrimSpace(value), ModeHSV, [3]float64{-1, 100, 100})
	if err != nil {
		return HSVA{}, err
	}
	return HSVA{H: normalizeHue(ch[0]), S: ch[1] / 100, V: ch[2] / 100, A: ch[3]}, nil
}

// Parse detects the mode of value and parses it into that mode's native tuple.
func Parse(value string) (Mode, Tuple, error) {
	mode := ParseMode(value)
	var (
		tuple Tuple
		err   error
	)
	switch mode {
	case ModeHex:
		tuple, err = ParseHex(value)
	case ModeRGB:
		tuple, err = ParseRGB(value)
	case ModeHSL:
		tuple, err = ParseHSL(value)
	case ModeHSV:
		tuple, err = ParseHSV(value)
	default:
		return ModeUnknown, nil, apperrors.NewColorError(value, "", "unrecognized color syntax")
	}
	if err != nil {
		return ModeUnknown, nil, err
	}
	return mode, tuple, nil
}

// parseFunctional extracts three channels and an optional alpha. A negative
// limit leaves that channel unbounded (hue wraps instead).
func parseFunctional(value string, mode Mode, limits [3]float64) ([4]float64, error) {
	var pattern = rgbPattern
	switch mode {
	case ModeHSL:
		pattern = hslPattern
	case ModeHSV:
		pattern = hsvPattern
	}

	matches := pattern.FindStringSubmatch(value)
	if matches == nil {
		return [4]float64{}, apperrors.NewColorError(value, string(mode), fmt.Sprintf("expected %s() or %sa() notation", mode, mode))
	}

	out := [4]float64{0, 0, 0, 1}
	for i := 0; i < 4; i++ {
		raw := matches[i+1]
		if raw == "" {
			continue
		}
		n, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return out, apperrors.NewColorError(value, string(mode), err.Error())
		}
		limit := 1.0
		if i < 3 {
			limit = limits[i]
		}
		if limit >= 0 && (n < 0 || n > limit) {
			return out, apperrors.NewColorError(value, string(mode), fmt.Sprintf("channel %d out of range [0, %g]", i+1, limit))
		}
		out[i] = n
	}
	return out, nil
}
