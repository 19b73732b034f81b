package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderMeter renders a bar like [████░░░░] filled to frac of width in
// the given style. frac is clamped to [0, 1].
func RenderMeter(frac float64, width int, style lipgloss.Style) string {
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	if width < 2 {
		width = 2
	}

	filled := int(frac * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)
	return "[" + style.Render(bar) + "]"
}

// RenderParticles draws n electron markers travelling toward oxygen.
func RenderParticles(n int) string {
	if n <= 0 {
		return ""
	}
	return StyleYellow.Render(strings.TrimSpace(strings.Repeat("e⁻ ", n)))
}
