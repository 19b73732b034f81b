package domain

// Stage is one of the four instructional phases of the walkthrough.
type Stage string

const (
	StageSelecting       Stage = "select"
	StageComparingValues Stage = "en-values"
	StageFlowAnimation   Stage = "electron-flow"
	StageProtonRelease   Stage = "proton-release"
)

// AllStages returns the stages in walkthrough order.
func AllStages() []Stage {
	return []Stage{
		StageSelecting,
		StageComparingValues,
		StageFlowAnimation,
		StageProtonRelease,
	}
}

// IsValid returns true if s is a recognized stage.
func (s Stage) IsValid() bool {
	switch s {
	case StageSelecting, StageComparingValues, StageFlowAnimation, StageProtonRelease:
		return true
	default:
		return false
	}
}

func (s Stage) String() string {
	return string(s)
}

// Step returns the 1-based position of s in the walkthrough, or 0 if s is unknown.
func (s Stage) Step() int {
	for i, st := range AllStages() {
		if st == s {
			return i + 1
		}
	}
	return 0
}

// Next returns the stage reached by advancing from s.
// Only ComparingValues and FlowAnimation have a successor.
func (s Stage) Next() (Stage, bool) {
	switch s {
	case StageComparingValues:
		return StageFlowAnimation, true
	case StageFlowAnimation:
		return StageProtonRelease, true
	default:
		return s, false
	}
}

// DisplayMode says whether stages are shown one at a time or all together.
type DisplayMode string

const (
	DisplaySequential DisplayMode = "sequential"
	DisplayAll        DisplayMode = "all"
)

// AcidityBucket is the qualitative acidity classification of an EN difference.
type AcidityBucket string

const (
	AcidityMinimal  AcidityBucket = "minimal"
	AcidityWeak     AcidityBucket = "weak"
	AcidityModerate AcidityBucket = "moderate"
	AcidityStrong   AcidityBucket = "strong"
)

// Label returns the capitalized display name of the bucket.
func (b AcidityBucket) Label() string {
	switch b {
	case AcidityStrong:
		return "Strong"
	case AcidityModerate:
		return "Moderate"
	case AcidityWeak:
		return "Weak"
	case AcidityMinimal:
		return "Minimal"
	default:
		return "Unknown"
	}
}
