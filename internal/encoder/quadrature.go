// Package encoder decodes the two rotary dials.
//
// Each dial has two phase lines (A, B) that idle high and an active line
// that reads low while the dial is being worked. Decoding is edge
// synchronous: the decoder waits for each expected edge, but never longer
// than MaxWait polls.
package encoder

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/exp/constraints"
	"moto-hud.klederson.com/internal/config"
)

// ErrEdgeTimeout means an expected edge never arrived, e.g. a stuck line.
var ErrEdgeTimeout = errors.New("encoder: edge timeout")

// Line is a digital input. Get reports true for a high level.
type Line interface {
	Get() bool
}

// Clamp limits v to [lo, hi].
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Decoder turns one quadrature transition into a counter step.
type Decoder struct {
	A, B    Line
	Min     int
	Max     int
	MaxWait int
	Settle  time.Duration
	Sleep   func(time.Duration)
}

// NewDecoder returns a decoder with the dial range, settle delay and wait
// bound of the panel.
func NewDecoder(a, b Line) Decoder {
	return Decoder{
		A:       a,
		B:       b,
		Min:     config.DialMin,
		Max:     config.DialMax,
		MaxWait: config.MaxEdgePolls,
		Settle:  config.DialSettle,
		Sleep:   time.Sleep,
	}
}

// Step inspects the phase lines once. With A low and B low the dial is
// turning down: wait for B to rise, decrement, wait for A to rise. With A
// low and B high it is turning up: wait for B to fall, increment, wait for
// A and then B to rise. A settle delay follows either transition. The
// result is clamped to [Min, Max]; with A high the counter is returned as is.
func (d *Decoder) Step(counter int) (int, error) {
	if d.A.Get() {
		return counter, nil
	}
	if !d.B.Get() {
		if err := d.wait(d.B, "B", true); err != nil {
			return counter, err
		}
		counter = d.clamp(counter - 1)
		if err := d.wait(d.A, "A", true); err != nil {
			return counter, err
		}
	} else {
		if err := d.wait(d.B, "B", false); err != nil {
			return counter, err
		}
		counter = d.clamp(counter + 1)
		if err := d.wait(d.A, "A", true); err != nil {
			return counter, err
		}
		if err := d.wait(d.B, "B", true); err != nil {
			return counter, err
		}
	}
	if d.Sleep != nil && d.Settle > 0 {
		d.Sleep(d.Settle)
	}
	return counter, nil
}

func (d *Decoder) clamp(v int) int {
	return Clamp(v, d.Min, d.Max)
}

func (d *Decoder) wait(l Line, name string, high bool) error {
	for i := 0; d.MaxWait <= 0 || i < d.MaxWait; i++ {
		if l.Get() == high {
			return nil
		}
	}
	level := "low"
	if high {
		level = "high"
	}
	return fmt.Errorf("%w: line %s not %s after %d polls", ErrEdgeTimeout, name, level, d.MaxWait)
}

// Dial is one rotary dial and its counter.
type Dial struct {
	Name    string
	Active  Line
	Decoder Decoder
	Counter int
}

// NewDial returns a dial at zero.
func NewDial(name string, a, b, active Line) *Dial {
	return &Dial{Name: name, Active: active, Decoder: NewDecoder(a, b)}
}

// Poll decodes for as long as the active line is held low, calling
// onChange after every step that moved the counter. It returns the number
// of counter changes.
func (d *Dial) Poll(onChange func(counter int)) (int, error) {
	changes := 0
	for i := 0; d.Decoder.MaxWait <= 0 || i < d.Decoder.MaxWait; i++ {
		if d.Active.Get() {
			return changes, nil
		}
		next, err := d.Decoder.Step(d.Counter)
		if next != d.Counter {
			d.Counter = next
			changes++
			if onChange != nil {
				onChange(next)
			}
		}
		if err != nil {
			return changes, fmt.Errorf("dial %s: %w", d.Name, err)
		}
	}
	return changes, fmt.Errorf("dial %s: %w: active line held for %d polls", d.Name, ErrEdgeTimeout, d.Decoder.MaxWait)
}
