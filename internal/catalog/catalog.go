// Package catalog holds the fixed set of metal cations the walkthrough offers
// and the reference element they are compared against.
//
// A Catalog is immutable once built. Every constructor validates the data
// up front, so a metal whose electronegativity exceeds the reference can
// never reach the derivation layer.
package catalog

import (
	"strings"

	"github.com/alexanderramin/enbridge/internal/domain"
)

// Catalog is an ordered, read-only set of metals plus one reference element.
type Catalog struct {
	reference domain.Reference
	metals    []domain.Metal
	bySymbol  map[string]int
}

// New validates ref and metals and returns a Catalog preserving metal order.
func New(ref domain.Reference, metals []domain.Metal) (*Catalog, error) {
	if err := Validate(ref, metals); err != nil {
		return nil, err
	}

	c := &Catalog{
		reference: ref,
		metals:    make([]domain.Metal, len(metals)),
		bySymbol:  make(map[string]int, len(metals)),
	}
	copy(c.metals, metals)
	for i, m := range c.metals {
		c.bySymbol[symbolKey(m.Symbol)] = i
	}
	return c, nil
}

// Reference returns the reference element.
func (c *Catalog) Reference() domain.Reference {
	return c.reference
}

// Metals returns a copy of the metals in catalog order.
func (c *Catalog) Metals() []domain.Metal {
	out := make([]domain.Metal, len(c.metals))
	copy(out, c.metals)
	return out
}

// Len returns the number of metals.
func (c *Catalog) Len() int {
	return len(c.metals)
}

// At returns the metal at position i in catalog order.
func (c *Catalog) At(i int) (domain.Metal, bool) {
	if i < 0 || i >= len(c.metals) {
		return domain.Metal{}, false
	}
	return c.metals[i], true
}

// Lookup finds a metal by symbol, ignoring case.
func (c *Catalog) Lookup(symbol string) (domain.Metal, bool) {
	i, ok := c.bySymbol[symbolKey(symbol)]
	if !ok {
		return domain.Metal{}, false
	}
	return c.metals[i], true
}

// Contains reports whether m is a catalog member. The whole record must
// match, not just the symbol.
func (c *Catalog) Contains(m domain.Metal) bool {
	got, ok := c.Lookup(m.Symbol)
	return ok && got == m
}

func symbolKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
