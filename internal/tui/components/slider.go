package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// HueSlider renders the rainbow track with a marker at Hue.
type HueSlider struct {
	Hue     float64
	Width   int
	Focused bool
}

// Step is the hue covered by one cell.
func (s HueSlider) Step() float64 {
	return 360 / float64(max(s.width()-1, 1))
}

// Position returns the marker cell.
func (s HueSlider) Position() int {
	hue := math.Mod(s.Hue, 360)
	if hue < 0 {
		hue += 360
	}
	return int(math.Round(hue / 360 * float64(s.width()-1)))
}

// View renders the slider.
func (s HueSlider) View() string {
	w := s.width()
	marker := s.Position()
	var b strings.Builder
	for i := 0; i < w; i++ {
		hue := float64(i) / float64(max(w-1, 1)) * 360
		style := lipgloss.NewStyle().Background(lipgloss.Color(colorful.Hsv(hue, 1, 1).Hex()))
		if i == marker {
			b.WriteString(style.Foreground(lipgloss.Color("#FFFFFF")).Bold(true).Render(sliderMarker))
			continue
		}
		b.WriteString(style.Render(" "))
	}
	return sliderFrame(s.Focused).Render(b.String())
}

func (s HueSlider) width() int {
	return max(s.Width, 2)
}

// AlphaSlider renders opacity as a bar fading from the surface into Color.
type AlphaSlider struct {
	// Color is the opaque colour as "#rrggbb".
	Color   string
	Alpha   float64
	Width   int
	Focused bool
}

// View renders the bar and the numeric alpha.
func (s AlphaSlider) View() string {
	to := s.Color
	if to == "" {
		to = "#000000"
	}
	label := fmt.Sprintf(" %4.2f", clampUnit(s.Alpha))
	bar := progress.New(
		progress.WithGradient("#F5F5F5", to),
		progress.WithoutPercentage(),
		progress.WithWidth(max(s.Width-lipgloss.Width(label), 2)),
	)
	return sliderFrame(s.Focused).Render(bar.ViewAs(clampUnit(s.Alpha)) + label)
}

func sliderFrame(focused bool) lipgloss.Style {
	return lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(frameColor(focused))
}
