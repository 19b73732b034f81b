package cli

import (
	"github.com/alexanderramin/enbridge/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// overviewView shows every stage at once in a scrollable viewport.
type overviewView struct {
	state *SharedState
	vp    viewport.Model
}

func newOverviewView(state *SharedState) *overviewView {
	vp := viewport.New(max(state.Width, 20), state.ContentHeight())
	vp.KeyMap = overviewKeyMap()
	v := &overviewView{state: state, vp: vp}
	v.refresh()
	return v
}

func (v *overviewView) ID() ViewID     { return ViewOverview }
func (v *overviewView) Title() string  { return "Overview" }
func (v *overviewView) Init() tea.Cmd { return nil }

func (v *overviewView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓ pgup/pgdn", "scroll")),
		keys.Reset,
	}
}

func (v *overviewView) refresh() {
	m, ok := v.state.Session.Metrics()
	if !ok {
		v.vp.SetContent("")
		return
	}
	v.vp.SetContent(formatter.FormatStages(v.state.Session.VisibleStages(), m) + "\n  " + formatter.KeyInsight())
}

func (v *overviewView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.vp.Width = max(msg.Width, 20)
		v.vp.Height = v.state.ContentHeight()
		return v, nil
	case tea.KeyMsg, tea.MouseMsg:
		var cmd tea.Cmd
		v.vp, cmd = v.vp.Update(msg)
		return v, cmd
	}
	return v, nil
}

func (v *overviewView) View() string {
	return v.vp.View()
}

// overviewKeyMap restricts scrolling to arrow/page keys so letter keys stay
// free for global shortcuts.
func overviewKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		Up:           key.NewBinding(key.WithKeys("up")),
		Down:         key.NewBinding(key.WithKeys("down")),
	}
}
