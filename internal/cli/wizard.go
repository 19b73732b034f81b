package cli

import (
	"fmt"

	"github.com/alexanderramin/enbridge/internal/catalog"
	"github.com/alexanderramin/enbridge/internal/chemistry"
	"github.com/alexanderramin/enbridge/internal/cli/formatter"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// enbridgeHuhTheme returns a huh theme using the formatter palette.
func enbridgeHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// metalOptions lists every catalog metal as a select option keyed by symbol.
func metalOptions(cat *catalog.Catalog) []huh.Option[string] {
	ref := cat.Reference()
	metals := cat.Metals()
	options := make([]huh.Option[string], 0, len(metals))
	for _, m := range metals {
		diff := chemistry.ComputeDifference(m, ref)
		label := fmt.Sprintf("%-2s %-10s EN %s  Δ %s", m.Symbol, m.Name,
			formatter.FormatEN(m.Electronegativity), formatter.FormatEN(diff))
		options = append(options, huh.NewOption(label, m.Symbol))
	}
	return options
}

// wizardSelectMetal creates a huh form to pick one metal from the catalog.
func wizardSelectMetal(cat *catalog.Catalog, result *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which metal cation?").
				Description(fmt.Sprintf("Compared against %s (EN %s)",
					cat.Reference().Name, formatter.FormatEN(cat.Reference().Electronegativity))).
				Options(metalOptions(cat)...).
				Value(result),
		),
	).WithTheme(enbridgeHuhTheme()).WithShowHelp(false)
}
