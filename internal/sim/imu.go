// Package sim stands in for the instrument's hardware so the loop can run
// on a desktop: an MPU-6050 that answers at register level, dials driven by
// scripted quadrature, a touch panel fed with taps and a recording alert
// pin.
package sim

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"moto-hud.klederson.com/internal/config"
)

// MPU-6050 registers the emulator answers.
const (
	regSmplrtDiv   = 0x19
	regGyroConfig  = 0x1B
	regAccelConfig = 0x1C
	regAccelXoutH  = 0x3B
	regTempOutH    = 0x41
	regGyroXoutH   = 0x43
	regPwrMgmt1    = 0x6B
	regWhoAmI      = 0x75
)

// ErrNoDevice is returned for transfers to an address nothing answers on.
var ErrNoDevice = errors.New("sim: no device at address")

// Sweep rocks the bike side to side.
type Sweep struct {
	Amplitude float64 // degrees
	Period    time.Duration
	StartTime time.Time
}

// NewSweep returns a sweep that reaches the alert threshold at its peaks.
func NewSweep() *Sweep {
	return &Sweep{Amplitude: 70, Period: 6 * time.Second, StartTime: time.Now()}
}

// Angle returns the roll angle at t.
func (s *Sweep) Angle(t time.Time) float64 {
	elapsed := t.Sub(s.StartTime).Seconds()
	return s.Amplitude * math.Sin(2*math.Pi*elapsed/s.Period.Seconds())
}

// IMU emulates an MPU-6050 on an I2C bus. It implements drivers.I2C.
type IMU struct {
	mu sync.Mutex

	Addr     uint16
	Identity byte

	regs    [128]byte
	roll    float64
	sweep   *Sweep
	celsius float64
	fault   error
	now     func() time.Time
}

// NewIMU returns a level, still sensor at room temperature.
func NewIMU() *IMU {
	return &IMU{
		Addr:     config.SensorAddr,
		Identity: 0x68,
		celsius:  21,
		now:      time.Now,
	}
}

// SetRoll holds the bike at theta degrees and stops any sweep.
func (m *IMU) SetRoll(theta float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.roll = theta
	m.sweep = nil
}

// Nudge tilts the bike by delta degrees, stopping any sweep.
func (m *IMU) Nudge(delta float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sweep != nil {
		m.roll = m.sweep.Angle(m.now())
		m.sweep = nil
	}
	m.roll = max(-89, min(89, m.roll+delta))
}

// SetSweep starts or stops rocking.
func (m *IMU) SetSweep(on bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !on {
		if m.sweep != nil {
			m.roll = m.sweep.Angle(m.now())
		}
		m.sweep = nil
		return
	}
	if m.sweep == nil {
		m.sweep = NewSweep()
		m.sweep.StartTime = m.now()
	}
}

// Sweeping reports whether the sweep is running.
func (m *IMU) Sweeping() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sweep != nil
}

// Roll returns the angle the sensor is currently reporting.
func (m *IMU) Roll() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.angle()
}

// SetTemperature sets the die temperature.
func (m *IMU) SetTemperature(celsius float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.celsius = celsius
}

// Fail makes every later transfer return err; nil restores the bus.
func (m *IMU) Fail(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fault = err
}

// Register returns the last value written to reg.
func (m *IMU) Register(reg byte) byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.regs[reg&0x7F]
}

func (m *IMU) angle() float64 {
	if m.sweep != nil {
		return m.sweep.Angle(m.now())
	}
	return m.roll
}

// Tx performs one bus transfer. A one byte write selects the register
// that a following read starts at; longer writes store bytes from there.
func (m *IMU) Tx(addr uint16, w, r []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fault != nil {
		return m.fault
	}
	if addr != m.Addr {
		return fmt.Errorf("%w %#02x", ErrNoDevice, addr)
	}
	if len(w) == 0 {
		return nil
	}
	reg := w[0] & 0x7F
	for i, b := range w[1:] {
		m.regs[(int(reg)+i)&0x7F] = b
	}
	if len(r) > 0 {
		m.latch()
		for i := range r {
			r[i] = m.regs[(int(reg)+i)&0x7F]
		}
	}
	return nil
}

// latch refreshes the output registers from the simulated motion.
func (m *IMU) latch() {
	rad := m.angle() * math.Pi / 180
	// The panel shows the inverted y tilt as roll.
	ax := 0.0
	ay := -math.Sin(rad) * config.AccelDivisor
	az := math.Cos(rad) * config.AccelDivisor
	put16(m.regs[regAccelXoutH:], ax)
	put16(m.regs[regAccelXoutH+2:], ay)
	put16(m.regs[regAccelXoutH+4:], az)

	put16(m.regs[regTempOutH:], (m.celsius-36.53)*340)

	put16(m.regs[regGyroXoutH:], 0)
	put16(m.regs[regGyroXoutH+2:], 0)
	put16(m.regs[regGyroXoutH+4:], 0)

	m.regs[regWhoAmI] = m.Identity
}

func put16(b []byte, v float64) {
	v = math.Round(max(math.MinInt16, min(math.MaxInt16, v)))
	u := uint16(int16(v))
	b[0] = byte(u >> 8)
	b[1] = byte(u)
}
