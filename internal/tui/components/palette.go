package components

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

const (
	paletteMarker = "◉"
	sliderMarker  = "┃"
)

// Palette renders the saturation/value surface for one hue. Saturation
// grows to the right and value grows upwards.
type Palette struct {
	Hue     float64
	Sat     float64
	Val     float64
	Width   int
	Height  int
	Focused bool
}

// Cell returns the grid position of a saturation/value pair.
func (p Palette) Cell(sat, val float64) (col, row int) {
	w, h := p.size()
	col = int(math.Round(clampUnit(sat) * float64(w-1)))
	row = int(math.Round((1 - clampUnit(val)) * float64(h-1)))
	return col, row
}

// StepSat is the saturation covered by one column.
func (p Palette) StepSat() float64 {
	w, _ := p.size()
	return 1 / float64(max(w-1, 1))
}

// StepVal is the value covered by one row.
func (p Palette) StepVal() float64 {
	_, h := p.size()
	return 1 / float64(max(h-1, 1))
}

// View renders the palette with the cursor marker.
func (p Palette) View() string {
	w, h := p.size()
	cursorCol, cursorRow := p.Cell(p.Sat, p.Val)

	rows := make([]string, h)
	var b strings.Builder
	for row := 0; row < h; row++ {
		b.Reset()
		val := 1 - float64(row)/float64(max(h-1, 1))
		for col := 0; col < w; col++ {
			sat := float64(col) / float64(max(w-1, 1))
			style := lipgloss.NewStyle().Background(lipgloss.Color(colorful.Hsv(p.Hue, sat, val).Clamped().Hex()))
			if col == cursorCol && row == cursorRow {
				b.WriteString(style.Foreground(markerColor(val)).Render(paletteMarker))
				continue
			}
			b.WriteString(style.Render(" "))
		}
		rows[row] = b.String()
	}

	frame := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(frameColor(p.Focused))
	return frame.Render(strings.Join(rows, "\n"))
}

func (p Palette) size() (int, int) {
	return max(p.Width, 2), max(p.Height, 2)
}

func markerColor(val float64) lipgloss.Color {
	if val < 0.5 {
		return lipgloss.Color("#FFFFFF")
	}
	return lipgloss.Color("#000000")
}

func frameColor(focused bool) lipgloss.AdaptiveColor {
	if focused {
		return lipgloss.AdaptiveColor{Light: "#18a058", Dark: "#63e2b7"}
	}
	return lipgloss.AdaptiveColor{Light: "#e0e0e6", Dark: "#48484e"}
}

func clampUnit(x float64) float64 {
	return math.Max(0, math.Min(1, x))
}
