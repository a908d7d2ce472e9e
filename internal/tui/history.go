package tui

import "strings"

// Ring is a circular buffer of recent samples.
type Ring struct {
	buf   []float64
	pos   int
	count int
}

// NewRing creates a ring with the given capacity.
func NewRing(capacity int) *Ring {
	return &Ring{buf: make([]float64, capacity)}
}

func (r *Ring) Push(val float64) {
	r.buf[r.pos] = val
	r.pos = (r.pos + 1) % len(r.buf)
	if r.count < len(r.buf) {
		r.count++
	}
}

// Values returns the stored samples oldest first.
func (r *Ring) Values() []float64 {
	if r.count == 0 {
		return nil
	}
	out := make([]float64, r.count)
	if r.count < len(r.buf) {
		copy(out, r.buf[:r.count])
	} else {
		n := copy(out, r.buf[r.pos:])
		copy(out[n:], r.buf[:r.pos])
	}
	return out
}

// Last returns the newest sample, or 0 if empty.
func (r *Ring) Last() float64 {
	if r.count == 0 {
		return 0
	}
	return r.buf[(r.pos-1+len(r.buf))%len(r.buf)]
}

func (r *Ring) Len() int { return r.count }

var sparkLevels = []rune("▁▂▃▄▅▆▇█")

// Sparkline plots the newest width values on a lo..hi scale. Values outside
// the scale are pinned to its ends.
func Sparkline(values []float64, width int, lo, hi float64) string {
	if width <= 0 || hi <= lo {
		return ""
	}
	if len(values) > width {
		values = values[len(values)-width:]
	}
	var sb strings.Builder
	top := len(sparkLevels) - 1
	for _, v := range values {
		i := int((v - lo) / (hi - lo) * float64(top))
		sb.WriteRune(sparkLevels[min(max(i, 0), top)])
	}
	return sb.String()
}
