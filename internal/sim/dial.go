package sim

import "sync"

// Dial plays quadrature sequences on its three lines. Each line keeps its
// own queue of levels; a read takes the next queued level, or the idle
// level (high) once the queue is empty.
type Dial struct {
	mu     sync.Mutex
	queues [3][]bool
	stuck  [3]*bool
}

const (
	lineA = iota
	lineB
	lineActive
)

// NewDial returns a dial at rest.
func NewDial() *Dial {
	return &Dial{}
}

// Turn queues n detents: positive turns count up, negative count down.
func (d *Dial) Turn(n int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for ; n > 0; n-- {
		d.push(lineActive, false)
		d.push(lineA, false, true)
		d.push(lineB, true, false, true)
	}
	for ; n < 0; n++ {
		d.push(lineActive, false)
		d.push(lineA, false, true)
		d.push(lineB, false, true)
	}
}

// Stick holds line A, B or the active line ("a", "b", "active") at level
// regardless of the queue, as a shorted contact would.
func (d *Dial) Stick(line string, level bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if i, ok := lineIndex(line); ok {
		d.stuck[i] = &level
	}
}

// Pending reports whether queued levels remain.
func (d *Dial) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, q := range d.queues {
		if len(q) > 0 {
			return true
		}
	}
	return false
}

func lineIndex(name string) (int, bool) {
	switch name {
	case "a":
		return lineA, true
	case "b":
		return lineB, true
	case "active":
		return lineActive, true
	}
	return 0, false
}

func (d *Dial) push(line int, levels ...bool) {
	d.queues[line] = append(d.queues[line], levels...)
}

func (d *Dial) get(line int) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if s := d.stuck[line]; s != nil {
		return *s
	}
	q := d.queues[line]
	if len(q) == 0 {
		return true
	}
	d.queues[line] = q[1:]
	return q[0]
}

// A returns the phase A input.
func (d *Dial) A() Input { return Input{d, lineA} }

// B returns the phase B input.
func (d *Dial) B() Input { return Input{d, lineB} }

// Active returns the dial's active input.
func (d *Dial) Active() Input { return Input{d, lineActive} }

// Input is one line of a Dial. It implements encoder.Line.
type Input struct {
	d    *Dial
	line int
}

func (in Input) Get() bool { return in.d.get(in.line) }
