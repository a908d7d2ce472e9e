package tui

import "time"

// TickMsg triggers a frame update.
type TickMsg time.Time

// LoopDoneMsg reports that the instrument loop has returned.
type LoopDoneMsg struct {
	Err error
}
