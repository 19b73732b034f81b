package session

import "github.com/alexanderramin/enbridge/internal/domain"

// Phase is the stage/display-mode pair of a session. Its fields are
// unexported so that only the constructors below can build one; the
// overview display mode can only pair with ComparingValues.
type Phase struct {
	stage domain.Stage
	mode  domain.DisplayMode
}

// Selecting is the initial phase: no metal chosen yet.
func Selecting() Phase {
	return Phase{stage: domain.StageSelecting, mode: domain.DisplaySequential}
}

// Sequential shows a single post-selection stage. Passing StageSelecting
// or an unknown stage returns Selecting().
func Sequential(stage domain.Stage) Phase {
	switch stage {
	case domain.StageComparingValues, domain.StageFlowAnimation, domain.StageProtonRelease:
		return Phase{stage: stage, mode: domain.DisplaySequential}
	default:
		return Selecting()
	}
}

// Overview shows every stage from ComparingValues onward at once.
func Overview() Phase {
	return Phase{stage: domain.StageComparingValues, mode: domain.DisplayAll}
}

// Stage returns the current stage.
func (p Phase) Stage() domain.Stage { return p.stage }

// Mode returns the display mode.
func (p Phase) Mode() domain.DisplayMode { return p.mode }

// ShowAll reports whether the overview mode is active.
func (p Phase) ShowAll() bool { return p.mode == domain.DisplayAll }

// VisibleStages lists the stages rendered in this phase, in order.
func (p Phase) VisibleStages() []domain.Stage {
	if p.ShowAll() {
		return []domain.Stage{
			domain.StageComparingValues,
			domain.StageFlowAnimation,
			domain.StageProtonRelease,
		}
	}
	return []domain.Stage{p.stage}
}

func (p Phase) String() string {
	if p.ShowAll() {
		return "overview"
	}
	return p.stage.String()
}
