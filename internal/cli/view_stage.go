package cli

import (
	"strings"

	"github.com/alexanderramin/enbridge/internal/cli/formatter"
	"github.com/alexanderramin/enbridge/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// stageView renders a single post-selection stage.
type stageView struct {
	state *SharedState
	stage domain.Stage
}

func newStageView(state *SharedState, stage domain.Stage) *stageView {
	return &stageView{state: state, stage: stage}
}

func (v *stageView) ID() ViewID                          { return ViewStage }
func (v *stageView) Title() string                       { return formatter.StageTitle(v.stage) }
func (v *stageView) Init() tea.Cmd                       { return nil }
func (v *stageView) Update(tea.Msg) (tea.Model, tea.Cmd) { return v, nil }

func (v *stageView) ShortHelp() []key.Binding {
	var bindings []key.Binding
	if v.state.Session.CanAdvance() {
		bindings = append(bindings, keys.Advance)
	}
	if v.stage == domain.StageComparingValues {
		bindings = append(bindings, keys.ShowAll)
	}
	return append(bindings, keys.Reset)
}

func (v *stageView) View() string {
	m, ok := v.state.Session.Metrics()
	if !ok {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(formatter.Indent(formatter.Header(formatter.StageTitle(v.stage)), 2) + "\n")
	b.WriteString(formatter.FormatStage(v.stage, m))

	if prompt := continuePrompt(v.stage); prompt != "" && v.state.Session.CanAdvance() {
		b.WriteString("\n  " + formatter.StyleYellow.Render(prompt) + "  " + formatter.Dim("(enter ↓)") + "\n")
	}
	if v.stage == domain.StageProtonRelease {
		b.WriteString("\n  " + formatter.KeyInsight() + "\n")
	}
	return b.String()
}

func continuePrompt(stage domain.Stage) string {
	switch stage {
	case domain.StageComparingValues:
		return "Now let's see what happens to the electrons..."
	case domain.StageFlowAnimation:
		return "Next, see what happens when the bond breaks..."
	default:
		return ""
	}
}
