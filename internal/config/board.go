package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DialPins names the three GPIO lines of one rotary dial.
type DialPins struct {
	A      string `yaml:"a"`
	B      string `yaml:"b"`
	Active string `yaml:"active"`
}

// Board describes how the display is wired on a Linux host.
type Board struct {
	I2CBus     string        `yaml:"i2c_bus"`
	SensorAddr uint16        `yaml:"sensor_addr"`
	TouchAddr  uint16        `yaml:"touch_addr"`
	LeftDial   DialPins      `yaml:"left_dial"`
	RightDial  DialPins      `yaml:"right_dial"`
	AlertPin   string        `yaml:"alert_pin"`
	FBDev      string        `yaml:"fbdev"`
	Interval   time.Duration `yaml:"interval"`
}

// DefaultBoard returns the wiring used by the reference build.
func DefaultBoard() Board {
	return Board{
		I2CBus:     "1",
		SensorAddr: SensorAddr,
		TouchAddr:  0x14,
		LeftDial:   DialPins{A: "GPIO5", B: "GPIO6", Active: "GPIO13"},
		RightDial:  DialPins{A: "GPIO19", B: "GPIO26", Active: "GPIO21"},
		AlertPin:   "GPIO17",
		FBDev:      "/dev/fb1",
		Interval:   LoopInterval,
	}
}

// LoadBoard reads a YAML board file. Fields left out keep their defaults.
func LoadBoard(path string) (Board, error) {
	b := DefaultBoard()
	data, err := os.ReadFile(path)
	if err != nil {
		return b, fmt.Errorf("read board file: %w", err)
	}
	if err := yaml.Unmarshal(data, &b); err != nil {
		return b, fmt.Errorf("parse board file %s: %w", path, err)
	}
	if err := b.Validate(); err != nil {
		return b, fmt.Errorf("board file %s: %w", path, err)
	}
	return b, nil
}

// Validate reports missing wiring.
func (b Board) Validate() error {
	var errs []error
	if b.I2CBus == "" {
		errs = append(errs, errors.New("i2c_bus is empty"))
	}
	if b.SensorAddr == 0 || b.SensorAddr > 0x7F {
		errs = append(errs, fmt.Errorf("sensor_addr 0x%X is not a 7-bit address", b.SensorAddr))
	}
	for name, d := range map[string]DialPins{"left_dial": b.LeftDial, "right_dial": b.RightDial} {
		if d.A == "" || d.B == "" || d.Active == "" {
			errs = append(errs, fmt.Errorf("%s needs a, b and active pins", name))
		}
	}
	if b.Interval <= 0 {
		errs = append(errs, fmt.Errorf("interval %v must be positive", b.Interval))
	}
	return errors.Join(errs...)
}
