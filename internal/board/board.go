// Package board opens the instrument's hardware on a Linux host through
// periph: the sensor and touch controller on I2C, the dials and the buzzer
// on GPIO, and the panel as a framebuffer device.
package board

import (
	"errors"
	"fmt"
	"log/slog"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"

	"moto-hud.klederson.com/internal/app"
	"moto-hud.klederson.com/internal/config"
	"moto-hud.klederson.com/internal/display"
	"moto-hud.klederson.com/internal/mpu6050"
	"moto-hud.klederson.com/internal/touch"
)

// ErrNoPin is returned when a configured pin name is unknown to the host.
var ErrNoPin = errors.New("board: no such pin")

// Input is a GPIO input read as a dial line.
type Input struct {
	gpio.PinIn
}

// Get reports true for a high level.
func (p Input) Get() bool {
	return p.Read() == gpio.High
}

// Output is a GPIO output driven as the alert line.
type Output struct {
	gpio.PinOut
	Log *slog.Logger // may be nil

	failing bool
}

// Set drives the pin. A failure is logged once; the next success re-arms
// the log.
func (p *Output) Set(high bool) {
	err := p.Out(gpio.Level(high))
	if err == nil {
		p.failing = false
		return
	}
	if !p.failing && p.Log != nil {
		p.Log.Warn("alert pin", "pin", p.String(), "err", err)
	}
	p.failing = true
}

// Hardware is the opened board.
type Hardware struct {
	Bus    i2c.BusCloser
	Sensor *mpu6050.Device
	Touch  *touch.GT1151
	Left   app.DialLines
	Right  app.DialLines
	Alert  *Output
	Panel  *display.Framebuffer
	FB     *display.FBDev
}

// Open initialises the host drivers and claims everything cfg names. log
// receives alert pin failures.
func Open(cfg config.Board, log *slog.Logger) (*Hardware, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("host init: %w", err)
	}
	bus, err := i2creg.Open(cfg.I2CBus)
	if err != nil {
		return nil, fmt.Errorf("open i2c bus %q: %w", cfg.I2CBus, err)
	}
	h := &Hardware{
		Bus:    bus,
		Sensor: mpu6050.NewAt(bus, cfg.SensorAddr),
		Touch:  touch.NewGT1151(&i2c.Dev{Bus: bus, Addr: cfg.TouchAddr}),
		Panel:  display.NewPanel(),
	}
	if h.Left, err = dialLines(cfg.LeftDial); err != nil {
		h.Close()
		return nil, fmt.Errorf("left dial: %w", err)
	}
	if h.Right, err = dialLines(cfg.RightDial); err != nil {
		h.Close()
		return nil, fmt.Errorf("right dial: %w", err)
	}
	if cfg.AlertPin != "" {
		p := gpioreg.ByName(cfg.AlertPin)
		if p == nil {
			h.Close()
			return nil, fmt.Errorf("alert %w: %s", ErrNoPin, cfg.AlertPin)
		}
		if err := p.Out(gpio.Low); err != nil {
			h.Close()
			return nil, fmt.Errorf("alert pin %s: %w", cfg.AlertPin, err)
		}
		h.Alert = &Output{PinOut: p, Log: log}
	}
	if cfg.FBDev != "" {
		if h.FB, err = display.OpenFBDev(cfg.FBDev, h.Panel); err != nil {
			h.Close()
			return nil, err
		}
	}
	return h, nil
}

// App returns the loop's view of the board.
func (h *Hardware) App() app.Hardware {
	hw := app.Hardware{
		Display: h.Panel,
		Sensor:  h.Sensor,
		Touch:   h.Touch,
		Left:    h.Left,
		Right:   h.Right,
	}
	if h.Alert != nil {
		hw.Alert = h.Alert
	}
	if h.FB != nil {
		hw.Flusher = h.FB
	}
	return hw
}

// Close releases the bus and the framebuffer.
func (h *Hardware) Close() error {
	var errs []error
	if h.FB != nil {
		errs = append(errs, h.FB.Close())
	}
	if h.Bus != nil {
		errs = append(errs, h.Bus.Close())
	}
	return errors.Join(errs...)
}

func dialLines(p config.DialPins) (app.DialLines, error) {
	var pins [3]Input
	for i, name := range []string{p.A, p.B, p.Active} {
		pin := gpioreg.ByName(name)
		if pin == nil {
			return app.DialLines{}, fmt.Errorf("%w: %s", ErrNoPin, name)
		}
		if err := pin.In(gpio.PullUp, gpio.NoEdge); err != nil {
			return app.DialLines{}, fmt.Errorf("pin %s: %w", name, err)
		}
		pins[i] = Input{pin}
	}
	return app.DialLines{A: pins[0], B: pins[1], Active: pins[2]}, nil
}
