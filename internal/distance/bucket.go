// Package distance maps range readings onto the five-chevron indicator.
package distance

import "moto-hud.klederson.com/internal/config"

// MaxLevel is the number of chevrons shown for the closest target.
const MaxLevel = 5

// Side identifies one of the two indicators.
type Side int

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	if s == Right {
		return "right"
	}
	return "left"
}

// Classify returns the chevron level for a reading. ok is false when the
// reading causes no transition: 0, and the (25,30] band, which the
// shipped device never mapped to a level.
func Classify(d uint16) (level int, ok bool) {
	switch {
	case d > config.DistanceLimit:
		return 0, true
	case d == 0:
		return 0, false
	case d <= 5:
		return 5, true
	case d <= 10:
		return 4, true
	case d <= 15:
		return 3, true
	case d <= 20:
		return 2, true
	case d <= 25:
		return 1, true
	default:
		return 0, false
	}
}

// Bucketer remembers the level on screen for one side so redraws only
// happen on a change.
type Bucketer struct {
	Side    Side
	current int
}

// NewBucketer returns a bucketer showing no chevrons.
func NewBucketer(side Side) *Bucketer {
	return &Bucketer{Side: side}
}

// Current returns the level last reported as changed.
func (b *Bucketer) Current() int {
	return b.current
}

// Update classifies d. changed is true only when the level differs from the
// one on screen. reading is d, or 0 when d was out of range.
func (b *Bucketer) Update(d uint16) (level int, changed bool, reading uint16) {
	reading = d
	if d > config.DistanceLimit {
		reading = 0
	}
	level, ok := Classify(d)
	if !ok || level == b.current {
		return b.current, false, reading
	}
	b.current = level
	return level, true, reading
}

// Reset forgets the level on screen, e.g. after a full redraw.
func (b *Bucketer) Reset() {
	b.current = 0
}
