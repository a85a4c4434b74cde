package app

// OpenState is the shared open/closed flag for the portfolio terminal. It
// is injected explicitly into the desk and into the dock toggle instead of
// being looked up ambiently, so the only way to misuse it is to construct a
// component without it. That misuse fails loudly below rather than falling
// back to a silent default that would mask the integration bug.
type OpenState struct {
	open bool
}

// NewOpenState returns an open flag in the given initial state.
func NewOpenState(open bool) *OpenState {
	return &OpenState{open: open}
}

// IsOpen reports whether the terminal is open.
func (s *OpenState) IsOpen() bool {
	s.mustProvided()
	return s.open
}

// Set flips the flag to the given state.
func (s *OpenState) Set(open bool) {
	s.mustProvided()
	s.open = open
}

// Toggle flips the flag.
func (s *OpenState) Toggle() {
	s.mustProvided()
	s.open = !s.open
}

func (s *OpenState) mustProvided() {
	if s == nil {
		panic("app: OpenState used before it was provided; construct the desk with NewOpenState")
	}
}
