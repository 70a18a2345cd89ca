package color

import (
	"fmt"
	"math"
	"strconv"
)

// ToHexString formats #RRGGBB.
func ToHexString(c RGBA) string {
	return fmt.Sprintf("#%02X%02X%02X", channelByte(c.R), channelByte(c.G), channelByte(c.B))
}

// ToHexaString formats #RRGGBBAA.
func ToHexaString(c RGBA) string {
	return ToHexString(c) + fmt.Sprintf("%02X", channelByte(clamp(c.A, 0, 1)*255))
}

// ToRGBString formats rgb(r, g, b).
func ToRGBString(c RGBA) string {
	return fmt.Sprintf("rgb(%d, %d, %d)", channelByte(c.R), channelByte(c.G), channelByte(c.B))
}

// ToRGBAString formats rgba(r, g, b, a).
func ToRGBAString(c RGBA) string {
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", channelByte(c.R), channelByte(c.G), channelByte(c.B), formatAlpha(c.A))
}

// ToHSLString formats hsl(h, s%, l%).
func ToHSLString(c HSLA) string {
	return fmt.Sprintf("hsl(%s, %s%%, %s%%)", formatHue(c.H), formatPercent(c.S), formatPercent(c.L))
}

// ToHSLAString formats hsla(h, s%, l%, a).
func ToHSLAString(c HSLA) string {
	return fmt.Sprintf("hsla(%s, %s%%, %s%%, %s)", formatHue(c.H), formatPercent(c.S), formatPercent(c.L), formatAlpha(c.A))
}

// ToHSVString formats hsv(h, s%, v%).
func ToHSVString(c HSVA) string {
	return fmt.Sprintf("hsv(%s, %s%%, %s%%)", formatHue(c.H), formatPercent(c.S), formatPercent(c.V))
}

// ToHSVAString formats hsva(h, s%, v%, a).
func ToHSVAString(c HSVA) string {
	return fmt.Sprintf("hsva(%s, %s%%, %s%%, %s)", formatHue(c.H), formatPercent(c.S), formatPercent(c.V), formatAlpha(c.A))
}

func channelByte(x float64) int {
	return int(math.Round(clamp(x, 0, 255)))
}

func formatHue(h float64) string {
	return formatDecimal(normalizeHue(roundTo(normalizeHue(h), 2)), 2)
}

func formatPercent(x float64) string {
	return formatDecimal(clamp(x, 0, 1)*100, 2)
}

func formatAlpha(a float64) string {
	return formatDecimal(clamp(a, 0, 1), 3)
}

func formatDecimal(x float64, places int) string {
	// +0 folds negative zero into zero.
	return strconv.FormatFloat(roundTo(x, places)+0, 'f', -1, 64)
}

func roundTo(x float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(x*p) / p
}
