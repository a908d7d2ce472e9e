package board

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/gpio/gpiotest"

	"moto-hud.klederson.com/internal/config"
)

func TestInputReadsLevel(t *testing.T) {
	p := &gpiotest.Pin{N: "in", L: gpio.Low}
	in := Input{p}
	if in.Get() {
		t.Error("low pin read high")
	}
	p.L = gpio.High
	if !in.Get() {
		t.Error("high pin read low")
	}
}

func TestOutputDrivesLevel(t *testing.T) {
	p := &gpiotest.Pin{N: "out"}
	out := &Output{PinOut: p}
	out.Set(true)
	if p.L != gpio.High {
		t.Error("Set(true) left the pin low")
	}
	out.Set(false)
	if p.L != gpio.Low {
		t.Error("Set(false) left the pin high")
	}
}

func TestDialLinesFromRegistry(t *testing.T) {
	names := []string{"HUD_TEST_A", "HUD_TEST_B", "HUD_TEST_ACT"}
	pins := make([]*gpiotest.Pin, len(names))
	for i, n := range names {
		pins[i] = &gpiotest.Pin{N: n, Num: 900 + i, L: gpio.High}
		if err := gpioreg.Register(pins[i]); err != nil {
			t.Fatal(err)
		}
	}
	t.Cleanup(func() {
		for _, n := range names {
			_ = gpioreg.Unregister(n)
		}
	})

	lines, err := dialLines(config.DialPins{A: names[0], B: names[1], Active: names[2]})
	if err != nil {
		t.Fatal(err)
	}
	for i, p := range pins {
		if p.P != gpio.PullUp {
			t.Errorf("pin %d pull = %v, want up", i, p.P)
		}
	}
	pins[2].L = gpio.Low
	if lines.Active.Get() {
		t.Error("active line did not follow the pin")
	}

	_, err = dialLines(config.DialPins{A: names[0], B: "HUD_MISSING", Active: names[2]})
	if !errors.Is(err, ErrNoPin) {
		t.Errorf("err = %v, want ErrNoPin", err)
	}
}

type brokenPin struct {
	gpiotest.Pin
}

func (p *brokenPin) Out(gpio.Level) error {
	return errors.New("pin gone")
}

func TestOutputLogsFailureOnce(t *testing.T) {
	var buf bytes.Buffer
	out := &Output{
		PinOut: &brokenPin{gpiotest.Pin{N: "buzzer"}},
		Log:    slog.New(slog.NewTextHandler(&buf, nil)),
	}
	out.Set(true)
	out.Set(false)
	out.Set(true)
	if n := strings.Count(buf.String(), "pin gone"); n != 1 {
		t.Errorf("logged %d times, want once: %q", n, buf.String())
	}
	if !strings.Contains(buf.String(), "buzzer") {
		t.Errorf("log does not name the pin: %q", buf.String())
	}
}
