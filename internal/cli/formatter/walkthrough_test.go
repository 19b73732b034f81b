package formatter

import (
	"regexp"
	"strings"
	"testing"

	"github.com/alexanderramin/enbridge/internal/catalog"
	"github.com/alexanderramin/enbridge/internal/chemistry"
	"github.com/alexanderramin/enbridge/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ansiPattern matches ANSI escape sequences for stripping before comparison.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func metricsFor(t *testing.T, symbol string) chemistry.Metrics {
	t.Helper()
	c := catalog.Default()
	m, ok := c.Lookup(symbol)
	require.True(t, ok)
	return chemistry.Derive(m, c.Reference())
}

func TestStageInstruction(t *testing.T) {
	assert.Equal(t, "Step 1: Select a Metal Cation", StageInstruction(domain.StageSelecting, false).Heading)
	assert.Equal(t, "Step 2: Electronegativity Comparison", StageInstruction(domain.StageComparingValues, false).Heading)
	assert.Equal(t, "Step 3: Electron Density Flow", StageInstruction(domain.StageFlowAnimation, false).Heading)
	assert.Equal(t, "Step 4: Proton (H⁺) Release", StageInstruction(domain.StageProtonRelease, false).Heading)
	assert.Equal(t, "Complete Process Overview", StageInstruction(domain.StageComparingValues, true).Heading)
}

func TestFormatComparison_Calcium(t *testing.T) {
	out := stripANSI(FormatComparison(metricsFor(t, "Ca")))

	assert.Contains(t, out, "Calcium")
	assert.Contains(t, out, "EN 1.0")
	assert.Contains(t, out, "EN 3.4")
	assert.Contains(t, out, "3.4 − 1.0 = 2.4")
	assert.Contains(t, out, "Very Large Difference - Strong Effect")
}

func TestFormatFlow_ParticleCount(t *testing.T) {
	out := stripANSI(FormatFlow(metricsFor(t, "Cu")))

	assert.Equal(t, 6, strings.Count(out, "e⁻"))
	assert.Contains(t, out, "Strong")
	assert.NotContains(t, out, "Very Strong")

	out = stripANSI(FormatFlow(metricsFor(t, "Ca")))
	assert.Equal(t, 8, strings.Count(out, "e⁻"))
	assert.Contains(t, out, "Very Strong")
}

func TestFormatProtonRelease_Description(t *testing.T) {
	out := stripANSI(FormatProtonRelease(metricsFor(t, "Fe")))

	assert.Contains(t, out, "Proton Released!")
	assert.Contains(t, out, "● MODERATE")
	assert.Contains(t, out, "Moderate electron-pulling → Moderate acidic behavior")
}

func TestFormatOverview_AllStages(t *testing.T) {
	out := stripANSI(FormatOverview(metricsFor(t, "Mg")))

	assert.Contains(t, out, "Complete Process Overview")
	assert.Contains(t, out, "ELECTRONEGATIVITY COMPARISON")
	assert.Contains(t, out, "ELECTRON DENSITY FLOW")
	assert.Contains(t, out, "PROTON RELEASE")
	assert.Contains(t, out, "Key Insight")
}

func TestFormatStage_SelectingIsEmpty(t *testing.T) {
	assert.Empty(t, FormatStage(domain.StageSelecting, metricsFor(t, "Ca")))
}

func TestFormatCatalog(t *testing.T) {
	out := stripANSI(FormatCatalog(catalog.Default()))

	assert.Contains(t, out, "Δ vs O")
	for _, sym := range []string{"Ca", "Mg", "Al", "Zn", "Fe", "Cu"} {
		assert.Contains(t, out, sym)
	}
	assert.Contains(t, out, "Reference: Oxygen (O) EN 3.4")
	assert.Equal(t, 2, strings.Count(out, "● STRONG"))
	assert.Equal(t, 4, strings.Count(out, "● MODERATE"))
}
