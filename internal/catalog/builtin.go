package catalog

import (
	"fmt"

	"github.com/alexanderramin/enbridge/internal/domain"
)

// builtinMetals is ordered from the largest EN difference to the smallest.
var builtinMetals = []domain.Metal{
	{Symbol: "Ca", Name: "Calcium", Electronegativity: 1.0, OxidationState: "2+", Color: "#c0392b"},
	{Symbol: "Mg", Name: "Magnesium", Electronegativity: 1.3, OxidationState: "2+", Color: "#e74c3c"},
	{Symbol: "Al", Name: "Aluminum", Electronegativity: 1.6, OxidationState: "3+", Color: "#e67e22"},
	{Symbol: "Zn", Name: "Zinc", Electronegativity: 1.6, OxidationState: "2+", Color: "#f39c12"},
	{Symbol: "Fe", Name: "Iron", Electronegativity: 1.8, OxidationState: "3+", Color: "#3498db"},
	{Symbol: "Cu", Name: "Copper", Electronegativity: 1.9, OxidationState: "2+", Color: "#2980b9"},
}

// Default returns the built-in six-metal catalog referenced against oxygen.
func Default() *Catalog {
	c, err := New(domain.Oxygen, builtinMetals)
	if err != nil {
		panic(fmt.Sprintf("built-in catalog is malformed: %v", err))
	}
	return c
}
