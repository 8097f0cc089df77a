package cli

// SharedState carries context shared across all views in a TUI session.
type SharedState struct {
	App *App

	// Terminal dimensions, updated on resize.
	Width  int
	Height int
}

// ContentHeight returns the height available for view content after the
// header and status bar are drawn.
func (s *SharedState) ContentHeight() int {
	h := s.Height - 5
	if h < 0 {
		return 0
	}
	return h
}
