package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/alexanderramin/enbridge/internal/catalog"
	"github.com/alexanderramin/enbridge/internal/domain"
	"github.com/stretchr/testify/require"
)

var testSymbolCounter atomic.Int64

// Metal options
type MetalOption func(*domain.Metal)

func WithSymbol(s string) MetalOption {
	return func(m *domain.Metal) {
		m.Symbol = s
	}
}

func WithOxidationState(s string) MetalOption {
	return func(m *domain.Metal) {
		m.OxidationState = s
	}
}

func WithColor(hex string) MetalOption {
	return func(m *domain.Metal) {
		m.Color = hex
	}
}

// defaultSymbol returns a short unique symbol such as "T07".
func defaultSymbol() string {
	n := testSymbolCounter.Add(1)
	return fmt.Sprintf("T%02d", n%100)
}

// NewTestMetal returns a valid metal with the given electronegativity.
func NewTestMetal(name string, en float64, opts ...MetalOption) domain.Metal {
	m := domain.Metal{
		Symbol:            defaultSymbol(),
		Name:              name,
		Electronegativity: en,
		OxidationState:    "2+",
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// NewTestCatalog builds a catalog against oxygen and fails the test if the
// metals do not validate.
func NewTestCatalog(t testing.TB, metals ...domain.Metal) *catalog.Catalog {
	t.Helper()
	return NewTestCatalogWithReference(t, domain.Oxygen, metals...)
}

// NewTestCatalogWithReference is NewTestCatalog with a custom reference.
func NewTestCatalogWithReference(t testing.TB, ref domain.Reference, metals ...domain.Metal) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New(ref, metals)
	require.NoError(t, err)
	return c
}
