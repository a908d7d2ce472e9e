// Package app runs the instrument: a fixed-cadence loop over the Main
// screen with the Settings screen as a nested loop inside it.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"moto-hud.klederson.com/internal/config"
	"moto-hud.klederson.com/internal/display"
	"moto-hud.klederson.com/internal/distance"
	"moto-hud.klederson.com/internal/encoder"
	"moto-hud.klederson.com/internal/mpu6050"
	"moto-hud.klederson.com/internal/needle"
	"moto-hud.klederson.com/internal/orientation"
	"moto-hud.klederson.com/internal/raster"
	"moto-hud.klederson.com/internal/render"
	"moto-hud.klederson.com/internal/touch"
	"moto-hud.klederson.com/internal/ui"
)

// Sensor is the inertial sensor. *mpu6050.Device implements it.
type Sensor interface {
	Configure() error
	ReadAcceleration() (orientation.Sample, error)
	ReadRotation() (x, y, z float64, err error)
	ReadTemperature() (float64, error)
}

// Ranger measures the distance to a target on one side, in meters. ok is
// false when the side is not ranged; its dial supplies the distance instead.
type Ranger interface {
	Distance(side distance.Side) (meters uint16, ok bool)
}

// Flusher pushes a finished frame to the glass.
type Flusher interface {
	Flush() error
}

// DialLines are the three inputs of one dial.
type DialLines struct {
	A, B, Active encoder.Line
}

// Hardware is what the loop drives. Ranger and Flusher may be nil; on sides
// without a Ranger reading the dial counters stand in for the distance.
type Hardware struct {
	Display display.Display
	Sensor  Sensor
	Touch   touch.Panel
	Left    DialLines
	Right   DialLines
	Alert   needle.Output
	Ranger  Ranger
	Flusher Flusher
}

// App is the instrument loop.
type App struct {
	hw  Hardware
	log *slog.Logger

	canvas   *raster.Canvas
	renderer *render.Renderer
	mapper   *needle.Mapper
	state    *State
	tel      telemetry
	frames   int

	// Interval is the Main loop cadence, SettingsInterval the touch poll
	// period on the Settings screen and Splash the pause after start-up.
	Interval         time.Duration
	SettingsInterval time.Duration
	Splash           time.Duration
}

// New wires the loop to hw. A nil logger discards.
func New(hw Hardware, log *slog.Logger) *App {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	c := raster.New(hw.Display)
	s := newState(hw.Left, hw.Right)
	pal := s.Prefs.Palette()
	return &App{
		hw:               hw,
		log:              log,
		canvas:           c,
		renderer:         render.NewRenderer(c, pal.Foreground, pal.Background),
		mapper:           needle.NewMapper(hw.Alert),
		state:            s,
		Interval:         config.LoopInterval,
		SettingsInterval: config.SettingsInterval,
		Splash:           config.SplashDelay,
	}
}

// State returns the loop state. It is only safe to use from the loop's
// goroutine, or when the loop is not running.
func (a *App) State() *State {
	return a.state
}

// Telemetry returns the state as of the last completed step.
func (a *App) Telemetry() Telemetry {
	return a.tel.get()
}

// Start configures the sensor and paints the Main screen. An identity
// mismatch is recorded and logged but not returned; bus errors are.
func (a *App) Start() error {
	a.log.Info("starting", "app", config.AppName, "version", config.AppVersion)
	if err := a.hw.Sensor.Configure(); err != nil {
		if !errors.Is(err, mpu6050.ErrIdentityMismatch) {
			return fmt.Errorf("configure sensor: %w", err)
		}
		a.state.SensorErr = err
		a.log.Warn("sensor left unconfigured", "err", err)
	}
	a.redrawMain()
	return a.flush()
}

// Run starts the instrument and steps it at Interval until ctx is done or
// a step fails. Cancellation is not an error.
func (a *App) Run(ctx context.Context) error {
	if err := a.Start(); err != nil {
		return err
	}
	if err := sleep(ctx, a.Splash); err != nil {
		return nil
	}
	ticker := time.NewTicker(a.Interval)
	defer ticker.Stop()
	for {
		if err := a.Step(ctx); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil
			}
			a.log.Error("halted", "err", err)
			return err
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// Step runs one pass of the Main loop: sample the sensor, check for a
// Settings tap, move the needle, update the distance gauges, service the
// dials and rewrite the temperature.
func (a *App) Step(ctx context.Context) error {
	s := a.state

	raw, err := a.hw.Sensor.ReadAcceleration()
	if err != nil {
		return err
	}
	gx, gy, gz, err := a.hw.Sensor.ReadRotation()
	if err != nil {
		return err
	}
	s.Rotation = [3]float64{gx, gy, gz}
	if s.Celsius, err = a.hw.Sensor.ReadTemperature(); err != nil {
		return err
	}

	st, err := a.hw.Touch.Poll()
	if err != nil {
		return fmt.Errorf("touch: %w", err)
	}
	if st.Pressed && ui.ClassifyMain(st.X, st.Y) == ui.SettingsButton {
		if err := a.settings(ctx); err != nil {
			return err
		}
	}

	angles, err := orientation.Estimate(raw)
	if err != nil {
		a.log.Debug("orientation fallback", "sample", raw, "err", err)
	}
	s.Angles = angles

	tip, alert := a.mapper.Update(angles.Roll)
	if alert != s.Alert {
		a.log.Info("lean alert", "on", alert, "roll", angles.Roll)
	}
	s.Alert = alert
	s.Needle.Point(tip)
	render.Apply(a.renderer, s.Needle, false)

	for i := range s.Buckets {
		a.bucket(distance.Side(i))
	}
	for i := range s.Dials {
		if !s.ranged[i] {
			a.dial(distance.Side(i))
		}
	}

	ui.DrawTemperature(a.canvas, s.Prefs, s.Celsius)

	if err := a.flush(); err != nil {
		return err
	}
	a.frames++
	a.tel.publish(s, a.frames)
	return nil
}

// bucket updates one side's gauge from the ranger, or from the dial counter
// when the side is not ranged.
func (a *App) bucket(side distance.Side) {
	s := a.state
	d := uint16(s.Dials[side].Counter)
	s.ranged[side] = false
	if a.hw.Ranger != nil {
		if m, ok := a.hw.Ranger.Distance(side); ok {
			d = m
			s.ranged[side] = true
		}
	}
	level, changed, reading := s.Buckets[side].Update(d)
	s.Readings[side] = reading
	if changed {
		s.Gauges[side].SetLevel(level)
		render.Apply(a.renderer, s.Gauges[side], false)
	}
	if s.ranged[side] {
		a.readout(side, reading)
	}
}

// dial services one dial for as long as it is held, redrawing its readout
// on every detent.
func (a *App) dial(side distance.Side) {
	s := a.state
	d := s.Dials[side]
	_, err := d.Poll(func(counter int) {
		a.readout(side, uint16(counter))
	})
	if err != nil {
		a.log.Warn("dial", "side", side, "err", err)
	}
	s.Readings[side] = uint16(d.Counter)
	a.readout(side, s.Readings[side])
}

func (a *App) readout(side distance.Side, v uint16) {
	s := a.state
	if s.shown[side] == int(v) {
		return
	}
	ui.DrawDistance(a.canvas, s.Prefs, side, v)
	s.shown[side] = int(v)
}

// settings runs the Settings screen until Back is touched, then repaints
// Main.
func (a *App) settings(ctx context.Context) error {
	s := a.state
	s.Mode = ui.Settings
	a.log.Info("screen", "mode", s.Mode)
	ui.DrawSettings(a.canvas, s.Prefs)
	if err := a.flush(); err != nil {
		return err
	}
	a.tel.publish(s, a.frames)

	for {
		st, err := a.hw.Touch.Poll()
		if err != nil {
			return fmt.Errorf("touch: %w", err)
		}
		if st.Pressed {
			r := ui.ClassifySettings(st.X, st.Y)
			switch {
			case r == ui.Back:
				s.Mode = ui.Main
				a.log.Info("screen", "mode", s.Mode, "prefs", fmt.Sprintf("%s/%s/%s", s.Prefs.Scheme, s.Prefs.Temp, s.Prefs.Dist))
				a.redrawMain()
				a.tel.publish(s, a.frames)
				return a.flush()
			case s.Prefs.Apply(r):
				a.log.Debug("preference", "region", r)
				ui.Rehighlight(a.canvas, s.Prefs, r)
				if err := a.flush(); err != nil {
					return err
				}
				a.tel.publish(s, a.frames)
			}
		}
		if err := sleep(ctx, a.SettingsInterval); err != nil {
			return err
		}
	}
}

// redrawMain repaints Main in the current palette and puts the needle,
// gauges and readouts back on it.
func (a *App) redrawMain() {
	s := a.state
	pal := s.Prefs.Palette()
	a.renderer.SetPalette(pal.Foreground, pal.Background)
	ui.DrawMain(a.canvas, s.Prefs)

	s.Needle.Invalidate()
	render.Apply(a.renderer, s.Needle, true)
	for _, g := range s.Gauges {
		g.Invalidate()
		render.Apply(a.renderer, g, true)
	}
	s.shown = [2]int{-1, -1}
	for i := range s.Readings {
		a.readout(distance.Side(i), s.Readings[i])
	}
	ui.DrawTemperature(a.canvas, s.Prefs, s.Celsius)
}

func (a *App) flush() error {
	if a.hw.Flusher == nil {
		return nil
	}
	if err := a.hw.Flusher.Flush(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	return nil
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
