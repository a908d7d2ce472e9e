package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadBoardKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.yaml")
	body := "i2c_bus: \"0\"\nalert_pin: GPIO4\ninterval: 50ms\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}

	b, err := LoadBoard(path)
	if err != nil {
		t.Fatalf("LoadBoard: %v", err)
	}
	if b.I2CBus != "0" || b.AlertPin != "GPIO4" {
		t.Errorf("overrides not applied: %+v", b)
	}
	if b.Interval != 50*time.Millisecond {
		t.Errorf("interval = %v, want 50ms", b.Interval)
	}
	if b.LeftDial != DefaultBoard().LeftDial {
		t.Errorf("left dial = %+v, want default", b.LeftDial)
	}
	if b.SensorAddr != SensorAddr {
		t.Errorf("sensor addr = 0x%X", b.SensorAddr)
	}
}

func TestLoadBoardRejectsBadWiring(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.yaml")
	body := "sensor_addr: 300\nright_dial:\n  a: \"\"\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadBoard(path); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestLoadBoardMissingFile(t *testing.T) {
	if _, err := LoadBoard(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
