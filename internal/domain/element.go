package domain

import "fmt"

// Metal is an immutable catalog record for a metal cation.
type Metal struct {
	Symbol            string  `yaml:"symbol" validate:"required,alphanum,max=3"`
	Name              string  `yaml:"name" validate:"required"`
	Electronegativity float64 `yaml:"electronegativity" validate:"gt=0,lte=4"`
	OxidationState    string  `yaml:"oxidation_state" validate:"required"`
	Color             string  `yaml:"color" validate:"omitempty,hexcolor"`
}

// Label returns the symbol with its charge, e.g. "Ca (2+)".
func (m Metal) Label() string {
	return fmt.Sprintf("%s (%s)", m.Symbol, m.OxidationState)
}

// Reference is the fixed element every metal is compared against.
type Reference struct {
	Symbol            string  `yaml:"symbol" validate:"required,alphanum,max=3"`
	Name              string  `yaml:"name" validate:"required"`
	Electronegativity float64 `yaml:"electronegativity" validate:"gt=0,lte=4"`
	Charge            string  `yaml:"charge"`
}

// OxygenEN is oxygen's Pauling electronegativity.
const OxygenEN = 3.4

// Oxygen is the default reference element.
var Oxygen = Reference{
	Symbol:            "O",
	Name:              "Oxygen",
	Electronegativity: OxygenEN,
	Charge:            "2-",
}
