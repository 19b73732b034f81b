package chemistry

import "github.com/alexanderramin/enbridge/internal/domain"

// Metrics bundles every value derived from one metal. It is recomputed on
// each read and never stored.
type Metrics struct {
	Metal         domain.Metal
	Reference     domain.Reference
	Difference    float64
	FlowIntensity float64
	ParticleCount int
	Acidity       domain.AcidityBucket
	Description   string
}

// Derive computes Metrics for metal against ref.
func Derive(metal domain.Metal, ref domain.Reference) Metrics {
	diff := ComputeDifference(metal, ref)
	intensity := FlowIntensity(diff)
	bucket := ClassifyAcidity(diff)
	return Metrics{
		Metal:         metal,
		Reference:     ref,
		Difference:    diff,
		FlowIntensity: intensity,
		ParticleCount: ParticleCount(intensity),
		Acidity:       bucket,
		Description:   AcidityDescription(bucket),
	}
}
