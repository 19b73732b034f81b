package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/enbridge/internal/cli/formatter"
	"github.com/alexanderramin/enbridge/internal/domain"
	"github.com/alexanderramin/enbridge/internal/session"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// appModel is the root bubbletea Model for the walkthrough.
// It applies intents to the session controller and keeps the active view
// in step with the controller's phase.
type appModel struct {
	state    *SharedState
	view     View
	phase    session.Phase
	quitting bool
}

func newAppModel(app *App, ctrl *session.Controller) appModel {
	state := &SharedState{
		App:     app,
		Session: ctrl,
	}
	m := appModel{state: state}
	m.syncView()
	return m
}

// syncView rebuilds the active view when the controller's phase changed.
func (m *appModel) syncView() tea.Cmd {
	phase := m.state.Session.State().Phase
	if m.view != nil && phase == m.phase {
		if ov, ok := m.view.(*overviewView); ok {
			ov.refresh()
		}
		return nil
	}
	m.phase = phase

	switch {
	case phase.Stage() == domain.StageSelecting:
		m.view = newSelectView(m.state)
	case phase.ShowAll():
		m.view = newOverviewView(m.state)
	default:
		m.view = newStageView(m.state, phase.Stage())
	}
	return m.view.Init()
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m appModel) Init() tea.Cmd {
	return m.view.Init()
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		return m.forward(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case selectMetalMsg:
		if err := m.state.Session.SelectSymbol(msg.symbol); err != nil {
			m.state.Notice = noticeFor(err)
		}
		return m, m.syncView()

	case advanceMsg:
		if err := m.state.Session.Advance(); err != nil {
			m.state.Notice = noticeFor(err)
		}
		return m, m.syncView()

	case showAllMsg:
		if err := m.state.Session.ShowAllStages(); err != nil {
			m.state.Notice = noticeFor(err)
		}
		return m, m.syncView()

	case resetMsg:
		m.state.Session.Reset()
		return m, m.syncView()
	}

	return m.forward(msg)
}

func (m appModel) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.view.Update(msg)
	m.view = updated.(View)
	return m, cmd
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}
	m.state.Notice = ""

	// Selection is handled entirely by the select view.
	if !m.state.Session.State().HasSelection() {
		return m.forward(msg)
	}

	switch {
	case key.Matches(msg, keys.Reset):
		return m, reset()
	case key.Matches(msg, keys.ShowAll):
		return m, showAll()
	case key.Matches(msg, keys.Advance):
		return m, advance()
	}

	return m.forward(msg)
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	phase := m.state.Session.State().Phase
	sections := []string{
		m.renderHeader(),
		formatter.Indent(formatter.FormatInstruction(formatter.StageInstruction(phase.Stage(), phase.ShowAll())), 2),
		m.view.View(),
		m.renderNotice(),
		m.renderStatusBar(),
	}
	result := strings.Join(sections, "\n")

	// Pad to terminal height to prevent stale line artifacts from
	// bubbletea's line-diff renderer in alt-screen mode.
	if m.state.Height > 0 {
		lines := strings.Count(result, "\n") + 1
		if lines < m.state.Height {
			result += strings.Repeat("\n", m.state.Height-lines)
		}
	}
	return result
}

// ── rendering helpers ────────────────────────────────────────────────────────

func (m appModel) renderHeader() string {
	title := formatter.StylePurple.Render("enbridge")

	phase := m.state.Session.State().Phase
	crumb := fmt.Sprintf("Step %d of %d", phase.Stage().Step(), len(domain.AllStages()))
	if phase.ShowAll() {
		crumb = "All stages"
	}
	header := title + " " + formatter.Dim("› "+crumb+" › "+m.view.Title())

	if sel := m.state.Session.State().Selected; sel != nil {
		metal := formatter.MetalStyle(*sel).Render(sel.Label())
		header += "  " + formatter.Dim("[") + metal + formatter.Dim("]")
	}

	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return header + "\n" + sep
}

func (m appModel) renderNotice() string {
	if m.state.Notice == "" {
		return ""
	}
	return "  " + formatter.StyleYellow.Render(m.state.Notice)
}

func (m appModel) renderStatusBar() string {
	var hints []string
	for _, b := range m.view.ShortHelp() {
		hints = append(hints, formatter.Dim(b.Help().Key+": "+b.Help().Desc))
	}
	hints = append(hints, formatter.Dim(keys.Quit.Help().Key+": "+keys.Quit.Help().Desc))

	sepStyle := lipgloss.NewStyle().Foreground(formatter.ColorDim)
	sep := sepStyle.Render(strings.Repeat("─", max(m.state.Width, 20)))
	return sep + "\n" + strings.Join(hints, "  ")
}

// noticeFor turns a controller error into user-facing feedback.
func noticeFor(err error) string {
	switch {
	case errors.Is(err, domain.ErrNoTransition):
		return "That's the whole process. Press r to choose a different metal."
	case errors.Is(err, domain.ErrInvalidState):
		return "Select a metal first."
	case errors.Is(err, domain.ErrInvalidSelection):
		return "That metal is not in the catalog."
	default:
		return err.Error()
	}
}
