// Package touch reads the capacitive panel laid over the display.
package touch

// State is one poll of the panel.
type State struct {
	Pressed bool
	X, Y    int
}

// Panel is a touch surface that can be polled for its current state.
type Panel interface {
	Poll() (State, error)
}
