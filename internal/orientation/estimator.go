// Package orientation turns raw accelerometer samples into tilt angles.
package orientation

import (
	"errors"
	"fmt"
	"math"

	"moto-hud.klederson.com/internal/config"
)

// ErrZeroNorm is reported when both axes under the square root are zero,
// which leaves the angle undefined. The affected angle is reported as 0°.
var ErrZeroNorm = errors.New("orientation: zero-norm denominator")

// Sample is one raw accelerometer reading.
type Sample struct {
	X, Y, Z int16
}

// G converts the sample to g units.
func (s Sample) G() (x, y, z float64) {
	return float64(s.X) / config.AccelDivisor,
		float64(s.Y) / config.AccelDivisor,
		float64(s.Z) / config.AccelDivisor
}

// Angles are tilt angles in degrees.
type Angles struct {
	Pitch float64
	Roll  float64
	Yaw   float64
}

// Estimate derives pitch, roll and yaw from a single sample. Each angle is
// atan(axis / |other two axes|). The sensor faces away from the screen, so
// roll is negated. A level sample has no x/y component, so its yaw falls
// back to 0° with ErrZeroNorm.
//
// There is no smoothing: the same sample always yields the same angles.
func Estimate(s Sample) (Angles, error) {
	ax, ay, az := s.G()

	var errs []error
	pitch, err := tilt(ax, ay, az)
	if err != nil {
		errs = append(errs, fmt.Errorf("pitch: %w", err))
	}
	roll, err := tilt(ay, ax, az)
	if err != nil {
		errs = append(errs, fmt.Errorf("roll: %w", err))
	}
	yaw, err := tilt(az, ax, ay)
	if err != nil {
		errs = append(errs, fmt.Errorf("yaw: %w", err))
	}

	return Angles{Pitch: pitch, Roll: -roll, Yaw: yaw}, errors.Join(errs...)
}

func tilt(axis, a, b float64) (float64, error) {
	norm := math.Sqrt(a*a + b*b)
	if norm == 0 {
		return 0, ErrZeroNorm
	}
	return 180 * math.Atan(axis/norm) / math.Pi, nil
}
