package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/enbridge/internal/catalog"
	"github.com/alexanderramin/enbridge/internal/chemistry"
	"github.com/alexanderramin/enbridge/internal/domain"
)

const meterWidth = 24

// Instruction is the heading and prompt shown above a stage.
type Instruction struct {
	Heading string
	Body    string
}

// StageInstruction returns the instruction panel text for a stage. The
// overview flag takes precedence over the stage.
func StageInstruction(stage domain.Stage, overview bool) Instruction {
	if overview {
		return Instruction{
			Heading: "Complete Process Overview",
			Body:    "See all stages of how electronegativity leads to acidic behavior in one view.",
		}
	}
	switch stage {
	case domain.StageComparingValues:
		return Instruction{
			Heading: "Step 2: Electronegativity Comparison",
			Body:    "Compare the electronegativity values and see the difference (Δ). Higher Δ means stronger electron pulling.",
		}
	case domain.StageFlowAnimation:
		return Instruction{
			Heading: "Step 3: Electron Density Flow",
			Body:    "Watch how electrons are pulled from H toward O due to the electronegativity difference.",
		}
	case domain.StageProtonRelease:
		return Instruction{
			Heading: "Step 4: Proton (H⁺) Release",
			Body:    "The electron shift weakens the O-H bond, causing H⁺ release and creating acidic behavior.",
		}
	default:
		return Instruction{
			Heading: "Step 1: Select a Metal Cation",
			Body:    "Pick any metal to explore how its electronegativity affects acid-base behavior when bonded to oxygen.",
		}
	}
}

// FormatInstruction renders an instruction panel.
func FormatInstruction(in Instruction) string {
	return StyleHeader.Render(in.Heading) + "\n" + Dim(in.Body)
}

// FormatComparison renders the electronegativity comparison stage.
func FormatComparison(m chemistry.Metrics) string {
	var b strings.Builder
	metal := MetalStyle(m.Metal)

	fmt.Fprintf(&b, "  %s  %-10s EN %s\n",
		metal.Render(fmt.Sprintf("%-2s", m.Metal.Symbol)), m.Metal.Name, Bold(FormatEN(m.Metal.Electronegativity)))
	fmt.Fprintf(&b, "  %s  %-10s EN %s\n",
		StyleRed.Render(fmt.Sprintf("%-2s", m.Reference.Symbol)), m.Reference.Name, Bold(FormatEN(m.Reference.Electronegativity)))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  Electronegativity Difference (Δ) = %s − %s = %s\n",
		FormatEN(m.Reference.Electronegativity), FormatEN(m.Metal.Electronegativity),
		AcidityStyle(m.Acidity).Render(FormatEN(m.Difference)))
	fmt.Fprintf(&b, "  %s\n", AcidityStyle(m.Acidity).Render(chemistry.DifferenceMeaning(m.Difference)))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  %s\n", Dim(fmt.Sprintf(
		"%s's higher electronegativity (%s) pulls shared electron density away from the %s–O bond.",
		m.Reference.Name, FormatEN(m.Reference.Electronegativity), m.Metal.Symbol)))
	return b.String()
}

// FormatFlow renders the electron density flow stage.
func FormatFlow(m chemistry.Metrics) string {
	var b strings.Builder
	metal := MetalStyle(m.Metal)

	fmt.Fprintf(&b, "  %s ── %s ── %s\n",
		metal.Render("Mⁿ⁺"), StyleRed.Render(m.Reference.Symbol), StyleBlue.Render("H"))
	fmt.Fprintf(&b, "         %s  %s\n", RenderParticles(m.ParticleCount), Dim("← electron density"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  Flow intensity  %s %s\n",
		RenderMeter(m.FlowIntensity, meterWidth, StyleYellow),
		Bold(chemistry.FlowStrengthLabel(m.FlowIntensity)))
	fmt.Fprintf(&b, "  %s\n", Dim("The O-H bond weakens as electrons shift toward oxygen, making H⁺ release more likely."))
	return b.String()
}

// FormatProtonRelease renders the proton release stage.
func FormatProtonRelease(m chemistry.Metrics) string {
	var b strings.Builder
	style := AcidityStyle(m.Acidity)

	fmt.Fprintf(&b, "  %s ── %s   %s   %s\n",
		MetalStyle(m.Metal).Render(m.Metal.Symbol), StyleRed.Render("OH"), Dim("+"), StyleBlue.Render("H⁺"))
	fmt.Fprintf(&b, "  %s\n", StyleGreen.Render("Proton Released!"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  Acidic Behavior  %s\n", AcidityIndicator(m.Acidity))
	fmt.Fprintf(&b, "  %s\n", style.Render(m.Description))
	fmt.Fprintf(&b, "  Acidity Level    %s\n", RenderMeter(chemistry.AcidityMeter(m.Difference), meterWidth, style))
	fmt.Fprintf(&b, "                   %s\n", Dim(fmt.Sprintf("%-*s%s", meterWidth-4, "Weak", "Strong")))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  %s\n", Bold("[M(H₂O)ₙ]ⁿ⁺ ⇌ [M(OH)(H₂O)ₙ₋₁]⁽ⁿ⁻¹⁾⁺ + H⁺"))
	return b.String()
}

// FormatStage renders one post-selection stage.
func FormatStage(stage domain.Stage, m chemistry.Metrics) string {
	switch stage {
	case domain.StageComparingValues:
		return FormatComparison(m)
	case domain.StageFlowAnimation:
		return FormatFlow(m)
	case domain.StageProtonRelease:
		return FormatProtonRelease(m)
	default:
		return ""
	}
}

// StageTitle returns the short section title for a stage.
func StageTitle(stage domain.Stage) string {
	switch stage {
	case domain.StageComparingValues:
		return "Electronegativity Comparison"
	case domain.StageFlowAnimation:
		return "Electron Density Flow"
	case domain.StageProtonRelease:
		return "Proton Release"
	default:
		return "Select a Metal Cation"
	}
}

// FormatStages renders the given stages one after another under headers.
func FormatStages(stages []domain.Stage, m chemistry.Metrics) string {
	parts := make([]string, 0, len(stages))
	for _, st := range stages {
		parts = append(parts, Header(StageTitle(st))+"\n"+FormatStage(st, m))
	}
	return strings.Join(parts, "\n")
}

// FormatOverview renders every stage for one metal with the overview
// instruction and key insight.
func FormatOverview(m chemistry.Metrics) string {
	var b strings.Builder
	b.WriteString(FormatInstruction(StageInstruction(domain.StageComparingValues, true)))
	b.WriteString("\n\n")
	b.WriteString(FormatStages([]domain.Stage{
		domain.StageComparingValues,
		domain.StageFlowAnimation,
		domain.StageProtonRelease,
	}, m))
	b.WriteString("\n")
	b.WriteString(KeyInsight())
	b.WriteString("\n")
	return b.String()
}

// KeyInsight is the closing takeaway of the walkthrough.
func KeyInsight() string {
	return StyleYellow.Render("Key Insight: ") + Dim(
		"The greater the electronegativity difference, the more electron density is pulled away from hydrogen, "+
			"making the O-H bond weaker and H⁺ release easier.")
}

// FormatCatalog renders the catalog as a table with derived values.
func FormatCatalog(c *catalog.Catalog) string {
	ref := c.Reference()
	headers := []string{"Symbol", "Name", "Charge", "EN", "Δ vs " + ref.Symbol, "Acidity"}
	rows := make([][]string, 0, c.Len())
	for _, metal := range c.Metals() {
		m := chemistry.Derive(metal, ref)
		rows = append(rows, []string{
			MetalStyle(metal).Render(metal.Symbol),
			metal.Name,
			metal.OxidationState,
			FormatEN(metal.Electronegativity),
			FormatEN(m.Difference),
			AcidityIndicator(m.Acidity),
		})
	}
	return RenderTable(headers, rows) +
		Dim(fmt.Sprintf("Reference: %s (%s) EN %s", ref.Name, ref.Symbol, FormatEN(ref.Electronegativity))) + "\n"
}
