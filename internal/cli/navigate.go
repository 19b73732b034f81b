package cli

import tea "github.com/charmbracelet/bubbletea"

// Intent messages used by views to request stage transitions.
// The appModel applies them to the session controller.

// selectMetalMsg asks to select the metal with the given symbol.
type selectMetalMsg struct {
	symbol string
}

// advanceMsg asks to move to the next stage.
type advanceMsg struct{}

// showAllMsg asks to switch to the overview of all stages.
type showAllMsg struct{}

// resetMsg asks to clear the selection and return to metal selection.
type resetMsg struct{}

func selectMetal(symbol string) tea.Cmd {
	return func() tea.Msg { return selectMetalMsg{symbol: symbol} }
}

func advance() tea.Cmd {
	return func() tea.Msg { return advanceMsg{} }
}

func showAll() tea.Cmd {
	return func() tea.Msg { return showAllMsg{} }
}

func reset() tea.Cmd {
	return func() tea.Msg { return resetMsg{} }
}
