// Package needle places the lean needle on the gauge and drives the lean
// alarm.
package needle

import (
	"image"
	"math"

	"moto-hud.klederson.com/internal/config"
)

// Output is a digital output line such as the buzzer pin.
type Output interface {
	Set(high bool)
}

// phase rotates 0° from the +x axis to straight down (y up). On the panel
// that is the upright needle.
const phase = 3 * math.Pi / 2

// Mapper converts a roll angle into a needle tip.
type Mapper struct {
	Center    image.Point
	Radius    int
	Threshold float64 // |θ| at or above this asserts the alert
	Alert     Output  // may be nil
}

// NewMapper returns the mapper for the panel's lean gauge.
func NewMapper(alert Output) *Mapper {
	return &Mapper{
		Center:    image.Pt(config.GaugeCenterX, config.GaugeCenterY),
		Radius:    config.NeedleRadius,
		Threshold: config.AlertThreshold,
		Alert:     alert,
	}
}

// Map returns the tip for roll angle theta (degrees), rounded to the
// nearest pixel.
func (m *Mapper) Map(theta float64) image.Point {
	rad := theta*math.Pi/180 + phase
	r := float64(m.Radius)
	return image.Pt(
		int(math.Round(r*math.Cos(rad)))+m.Center.X,
		int(math.Round(r*math.Sin(rad)))+m.Center.Y,
	)
}

// Alerting reports whether theta is past the alert threshold.
func (m *Mapper) Alerting(theta float64) bool {
	return math.Abs(theta) >= m.Threshold
}

// Update maps theta and sets the alert output to match. Calling it again
// with the same theta has no further effect.
func (m *Mapper) Update(theta float64) (image.Point, bool) {
	alert := m.Alerting(theta)
	if m.Alert != nil {
		m.Alert.Set(alert)
	}
	return m.Map(theta), alert
}
