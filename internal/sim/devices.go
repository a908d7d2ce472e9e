package sim

import (
	"sync"

	"moto-hud.klederson.com/internal/touch"
)

// Touch is a panel that reports queued taps, one per poll.
type Touch struct {
	mu   sync.Mutex
	taps []touch.State
	err  error
}

// NewTouch returns an untouched panel.
func NewTouch() *Touch {
	return &Touch{}
}

// Tap queues a press at x, y.
func (t *Touch) Tap(x, y int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.taps = append(t.taps, touch.State{Pressed: true, X: x, Y: y})
}

// Fail makes the next poll return err.
func (t *Touch) Fail(err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.err = err
}

// Pending returns the number of taps not yet polled.
func (t *Touch) Pending() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.taps)
}

func (t *Touch) Poll() (touch.State, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.err; err != nil {
		t.err = nil
		return touch.State{}, err
	}
	if len(t.taps) == 0 {
		return touch.State{}, nil
	}
	s := t.taps[0]
	t.taps = t.taps[1:]
	return s, nil
}

// Pin is an output line that remembers its level.
type Pin struct {
	mu      sync.Mutex
	high    bool
	changes int
}

// NewPin returns a low pin.
func NewPin() *Pin {
	return &Pin{}
}

func (p *Pin) Set(high bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.high != high {
		p.changes++
	}
	p.high = high
}

// High reports the level last set.
func (p *Pin) High() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.high
}

// Changes counts level transitions.
func (p *Pin) Changes() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.changes
}

// Hardware is a full simulated instrument.
type Hardware struct {
	IMU   *IMU
	Left  *Dial
	Right *Dial
	Touch *Touch
	Alert *Pin
}

// NewHardware returns simulated hardware at rest.
func NewHardware() *Hardware {
	return &Hardware{
		IMU:   NewIMU(),
		Left:  NewDial(),
		Right: NewDial(),
		Touch: NewTouch(),
		Alert: NewPin(),
	}
}
