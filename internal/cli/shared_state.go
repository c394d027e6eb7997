package cli

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App

	// Terminal dimensions
	Width  int
	Height int
}

// ContentHeight is the view area height after the tab bar (two lines)
// and help line (two lines) are subtracted.
func (s *SharedState) ContentHeight() int {
	h := s.Height - 4
	if h < 1 {
		h = 1
	}
	return h
}
