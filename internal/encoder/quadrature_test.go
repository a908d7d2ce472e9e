package encoder

import (
	"errors"
	"math/rand"
	"testing"
	"time"
)

// seq is a scripted input: it plays back levels one read at a time and
// then holds idle.
type seq struct {
	levels []bool
	idle   bool
	reads  int
}

func (s *seq) Get() bool {
	s.reads++
	if len(s.levels) == 0 {
		return s.idle
	}
	v := s.levels[0]
	s.levels = s.levels[1:]
	return v
}

const (
	lo = false
	hi = true
)

type fixture struct {
	a, b, active *seq
	sleeps       int
	dial         *Dial
}

func newFixture(a, b, active []bool) *fixture {
	f := &fixture{
		a:      &seq{levels: a, idle: hi},
		b:      &seq{levels: b, idle: hi},
		active: &seq{levels: active, idle: hi},
	}
	f.dial = NewDial("test", f.a, f.b, f.active)
	f.dial.Decoder.MaxWait = 50
	f.dial.Decoder.Sleep = func(time.Duration) { f.sleeps++ }
	return f
}

// Phase patterns for a single detent in each direction.
var (
	downA = []bool{lo, hi}
	downB = []bool{lo, hi}
	upA   = []bool{lo, hi}
	upB   = []bool{hi, lo, hi}
)

func TestDecrementByOne(t *testing.T) {
	f := newFixture(downA, downB, []bool{lo})
	f.dial.Counter = 5

	n, err := f.dial.Poll(nil)
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 || f.dial.Counter != 4 {
		t.Errorf("changes=%d counter=%d, want 1 and 4", n, f.dial.Counter)
	}
	if f.sleeps != 1 {
		t.Errorf("settled %d times, want 1", f.sleeps)
	}
}

func TestDecrementClampsAtZero(t *testing.T) {
	f := newFixture(downA, downB, []bool{lo})
	n, err := f.dial.Poll(nil)
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 || f.dial.Counter != 0 {
		t.Errorf("changes=%d counter=%d, want 0 and 0", n, f.dial.Counter)
	}
}

func TestIncrementByOne(t *testing.T) {
	f := newFixture(upA, upB, []bool{lo})
	f.dial.Counter = 29

	var seen []int
	n, err := f.dial.Poll(func(c int) { seen = append(seen, c) })
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 || f.dial.Counter != 30 || len(seen) != 1 || seen[0] != 30 {
		t.Errorf("changes=%d counter=%d seen=%v", n, f.dial.Counter, seen)
	}
}

func TestIncrementClampsAtThirty(t *testing.T) {
	f := newFixture(upA, upB, []bool{lo})
	f.dial.Counter = 30
	if _, err := f.dial.Poll(nil); err != nil {
		t.Fatal(err)
	}
	if f.dial.Counter != 30 {
		t.Errorf("counter = %d, want 30", f.dial.Counter)
	}
}

func TestSeveralDetents(t *testing.T) {
	a := append(append([]bool{}, upA...), upA...)
	b := append(append([]bool{}, upB...), upB...)
	f := newFixture(a, b, []bool{lo, lo})
	f.dial.Counter = 10

	n, err := f.dial.Poll(nil)
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 || f.dial.Counter != 12 {
		t.Errorf("changes=%d counter=%d, want 2 and 12", n, f.dial.Counter)
	}
}

func TestInactiveDialIsSkipped(t *testing.T) {
	f := newFixture(downA, downB, nil)
	f.dial.Counter = 7
	n, err := f.dial.Poll(nil)
	if err != nil || n != 0 || f.dial.Counter != 7 {
		t.Errorf("n=%d counter=%d err=%v", n, f.dial.Counter, err)
	}
	if f.a.reads != 0 {
		t.Error("phase lines read while dial inactive")
	}
}

func TestStuckLineTimesOut(t *testing.T) {
	f := newFixture([]bool{lo}, nil, []bool{lo})
	f.b.idle = lo // B never rises
	f.dial.Counter = 3

	_, err := f.dial.Poll(nil)
	if !errors.Is(err, ErrEdgeTimeout) {
		t.Fatalf("err = %v, want ErrEdgeTimeout", err)
	}
	if f.dial.Counter != 3 {
		t.Errorf("counter moved to %d on a failed transition", f.dial.Counter)
	}
	if f.b.reads > f.dial.Decoder.MaxWait+1 {
		t.Errorf("B polled %d times, bound is %d", f.b.reads, f.dial.Decoder.MaxWait)
	}
}

func TestHeldActiveLineIsBounded(t *testing.T) {
	f := newFixture(nil, nil, nil)
	f.active.idle = lo
	if _, err := f.dial.Poll(nil); !errors.Is(err, ErrEdgeTimeout) {
		t.Fatalf("err = %v, want ErrEdgeTimeout", err)
	}
}

type noise struct{ r *rand.Rand }

func (n noise) Get() bool { return n.r.Intn(2) == 0 }

func TestCounterNeverLeavesRange(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	d := NewDial("noise", noise{r}, noise{r}, noise{r})
	d.Decoder.MaxWait = 8
	d.Decoder.Sleep = nil
	for i := 0; i < 2000; i++ {
		d.Counter = r.Intn(31)
		_, _ = d.Poll(func(c int) {
			if c < 0 || c > 30 {
				t.Fatalf("counter left range: %d", c)
			}
		})
		if d.Counter < 0 || d.Counter > 30 {
			t.Fatalf("counter left range: %d", d.Counter)
		}
	}
}

func TestClamp(t *testing.T) {
	if Clamp(-1, 0, 30) != 0 || Clamp(31, 0, 30) != 30 || Clamp(12, 0, 30) != 12 {
		t.Error("int clamp")
	}
	if Clamp(2.5, 0.0, 1.0) != 1.0 {
		t.Error("float clamp")
	}
}
