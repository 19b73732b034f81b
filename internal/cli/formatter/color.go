package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/enbridge/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorOrange = lipgloss.Color("#fe8019")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleOrange = lipgloss.NewStyle().Foreground(ColorOrange)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// AcidityStyle returns the lipgloss style for an acidity bucket.
func AcidityStyle(b domain.AcidityBucket) lipgloss.Style {
	switch b {
	case domain.AcidityStrong:
		return StyleRed
	case domain.AcidityModerate:
		return StyleOrange
	case domain.AcidityWeak:
		return StyleYellow
	case domain.AcidityMinimal:
		return StyleBlue
	default:
		return StyleDim
	}
}

// AcidityIndicator returns a colored acidity label such as "● STRONG".
func AcidityIndicator(b domain.AcidityBucket) string {
	return AcidityStyle(b).Render("● " + strings.ToUpper(b.Label()))
}

// MetalStyle colors text with the metal's own display color, falling back
// to the foreground color when none is set.
func MetalStyle(m domain.Metal) lipgloss.Style {
	if m.Color == "" {
		return StyleBold
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(m.Color)).Bold(true)
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
