// Package chemistry derives the display values of the walkthrough from a
// metal and the reference element. Every function is pure.
package chemistry

import (
	"math"

	"github.com/alexanderramin/enbridge/internal/domain"
)

// Thresholds for classifying an EN difference. Each bound is inclusive.
const (
	StrongThreshold   = 2.0
	ModerateThreshold = 1.5
	WeakThreshold     = 1.0
)

// SaturationDifference is the difference at which flow intensity reaches 1.
const SaturationDifference = 2.0

// MeterScale is the difference shown as a full acidity meter.
const MeterScale = 2.5

const (
	minParticles   = 3
	particleSpread = 5
)

// ComputeDifference returns ref EN minus metal EN, unrounded.
func ComputeDifference(metal domain.Metal, ref domain.Reference) float64 {
	return ref.Electronegativity - metal.Electronegativity
}

// ClassifyAcidity buckets an EN difference. The first matching threshold wins.
func ClassifyAcidity(difference float64) domain.AcidityBucket {
	switch {
	case difference >= StrongThreshold:
		return domain.AcidityStrong
	case difference >= ModerateThreshold:
		return domain.AcidityModerate
	case difference >= WeakThreshold:
		return domain.AcidityWeak
	default:
		return domain.AcidityMinimal
	}
}

// AcidityDescription returns the fixed sentence for a bucket.
func AcidityDescription(bucket domain.AcidityBucket) string {
	switch bucket {
	case domain.AcidityStrong:
		return "Strong electron-pulling → Strong acidic behavior"
	case domain.AcidityModerate:
		return "Moderate electron-pulling → Moderate acidic behavior"
	case domain.AcidityWeak:
		return "Weak electron-pulling → Weak acidic behavior"
	default:
		return "Minimal electron-pulling → Minimal acidic behavior"
	}
}

// FlowIntensity normalizes a difference to at most 1. The lower end is not
// clamped: a negative difference yields a negative intensity, which callers
// should treat as bad catalog data.
func FlowIntensity(difference float64) float64 {
	return math.Min(difference/SaturationDifference, 1.0)
}

// ParticleCount returns floor(3 + intensity*5), which is in [3, 8] for
// intensity in [0, 1].
func ParticleCount(intensity float64) int {
	return int(math.Floor(minParticles + intensity*particleSpread))
}

// FlowStrengthLabel names a flow intensity for the flow stage legend.
func FlowStrengthLabel(intensity float64) string {
	switch {
	case intensity > 0.75:
		return "Very Strong"
	case intensity > 0.5:
		return "Strong"
	case intensity > 0.25:
		return "Moderate"
	default:
		return "Weak"
	}
}

// DifferenceMeaning summarizes a difference on the comparison stage.
func DifferenceMeaning(difference float64) string {
	switch ClassifyAcidity(difference) {
	case domain.AcidityStrong:
		return "Very Large Difference - Strong Effect"
	case domain.AcidityModerate:
		return "Large Difference - Moderate Effect"
	case domain.AcidityWeak:
		return "Medium Difference - Noticeable Effect"
	default:
		return "Small Difference - Weak Effect"
	}
}

// AcidityMeter returns the fill fraction of the acidity meter, in [0, 1].
func AcidityMeter(difference float64) float64 {
	return math.Max(0, math.Min(difference/MeterScale, 1))
}
