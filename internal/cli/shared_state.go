package cli

import "github.com/alexanderramin/enbridge/internal/session"

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App     *App
	Session *session.Controller

	// Terminal dimensions
	Width  int
	Height int

	// Notice is a one-line feedback message cleared on the next key press.
	Notice string
}

// ContentHeight returns the available height for view content,
// accounting for header (2 lines), instruction panel (3 lines),
// notice (1 line), and status bar (2 lines).
func (s *SharedState) ContentHeight() int {
	h := s.Height - 8
	if h < 1 {
		return 1
	}
	return h
}
