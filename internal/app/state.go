package app

import (
	"image"
	"sync"

	"moto-hud.klederson.com/internal/config"
	"moto-hud.klederson.com/internal/distance"
	"moto-hud.klederson.com/internal/encoder"
	"moto-hud.klederson.com/internal/orientation"
	"moto-hud.klederson.com/internal/render"
	"moto-hud.klederson.com/internal/ui"
)

// State is everything the loop mutates. It is owned by the loop goroutine;
// observers read a Telemetry copy instead.
type State struct {
	Prefs ui.Preferences
	Mode  ui.Mode

	Needle  *render.Needle
	Gauges  [2]*render.Gauge
	Buckets [2]*distance.Bucketer
	Dials   [2]*encoder.Dial

	Angles   orientation.Angles
	Rotation [3]float64 // °/s, sampled but not fused
	Celsius  float64
	Alert    bool
	Readings [2]uint16

	// SensorErr holds an identity mismatch found at start-up. The loop
	// keeps running against the unconfigured sensor.
	SensorErr error

	shown  [2]int  // readout on screen per side, -1 for none
	ranged [2]bool // side read from the Ranger on the last pass
}

func newState(left, right DialLines) *State {
	s := &State{
		Prefs:  ui.DefaultPreferences(),
		Mode:   ui.Main,
		Needle: render.NewNeedle(image.Pt(config.GaugeCenterX, config.GaugeCenterY)),
		shown:  [2]int{-1, -1},
	}
	for i, l := range [2]DialLines{left, right} {
		side := distance.Side(i)
		s.Gauges[i] = render.NewGauge(side)
		s.Buckets[i] = distance.NewBucketer(side)
		s.Dials[i] = encoder.NewDial(side.String(), l.A, l.B, l.Active)
	}
	return s
}

// Telemetry is a snapshot of the loop for observers on other goroutines.
type Telemetry struct {
	Mode      ui.Mode
	Prefs     ui.Preferences
	Angles    orientation.Angles
	Alert     bool
	Celsius   float64
	Levels    [2]int
	Readings  [2]uint16
	Counters  [2]int
	Frames    int
	SensorErr error
}

type telemetry struct {
	mu   sync.Mutex
	last Telemetry
}

func (t *telemetry) publish(s *State, frames int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.last = Telemetry{
		Mode:      s.Mode,
		Prefs:     s.Prefs,
		Angles:    s.Angles,
		Alert:     s.Alert,
		Celsius:   s.Celsius,
		Readings:  s.Readings,
		Frames:    frames,
		SensorErr: s.SensorErr,
	}
	for i := range s.Gauges {
		t.last.Levels[i] = s.Gauges[i].Level()
		t.last.Counters[i] = s.Dials[i].Counter
	}
}

func (t *telemetry) get() Telemetry {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.last
}
