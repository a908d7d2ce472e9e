package ranging

import (
	"math"
	"testing"
	"time"

	"moto-hud.klederson.com/internal/distance"
)

func TestRSSIToDistance(t *testing.T) {
	tests := []struct {
		rssi, want float64
	}{
		{-59, 1},
		{-84, 10},
		{-109, 100},
		{-20, 0.1}, // clamped
		{3, 0.1},
	}
	for _, tt := range tests {
		if got := RSSIToDistance(tt.rssi, -59, 2.5); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("RSSIToDistance(%v) = %v, want %v", tt.rssi, got, tt.want)
		}
	}
}

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func newTestStore() (*Store, *clock) {
	c := &clock{t: time.Unix(1000, 0)}
	s := NewStore()
	s.now = c.now
	return s, c
}

func TestStoreSmoothsRSSI(t *testing.T) {
	s, _ := newTestStore()
	s.Upsert("AA:BB", "", -60)
	s.Upsert("AA:BB", "left-tag", -70)

	b, ok := s.Find("left-tag", time.Minute)
	if !ok {
		t.Fatal("beacon not found by name")
	}
	if want := -60*0.7 + -70*0.3; math.Abs(b.RSSI-want) > 1e-9 {
		t.Errorf("RSSI = %v, want %v", b.RSSI, want)
	}
	if _, ok := s.Find("aa:bb", time.Minute); !ok {
		t.Error("address lookup should ignore case")
	}
}

func TestStoreEvicts(t *testing.T) {
	s, c := newTestStore()
	s.Upsert("old", "", -60)
	c.t = c.t.Add(10 * time.Second)
	s.Upsert("new", "", -60)
	if n := s.Evict(5 * time.Second); n != 1 {
		t.Errorf("evicted %d, want 1", n)
	}
	if s.Count() != 1 || s.Snapshot()[0].Address != "new" {
		t.Errorf("left = %+v", s.Snapshot())
	}
}

func TestSourceDistance(t *testing.T) {
	s, c := newTestStore()
	src := NewSource(s, "L", "R")

	if _, ok := src.Distance(distance.Left); !ok {
		t.Error("configured side should report")
	}
	if d, _ := src.Distance(distance.Left); d != 31 {
		t.Errorf("unseen beacon = %d, want out of range", d)
	}

	s.Upsert("11", "L", -84) // 10 m
	s.Upsert("22", "R", -40) // under a meter
	if d, ok := src.Distance(distance.Left); !ok || d != 10 {
		t.Errorf("left = %d,%v want 10", d, ok)
	}
	if d, _ := src.Distance(distance.Right); d != 1 {
		t.Errorf("right = %d, want 1", d)
	}

	s.Upsert("11", "L", -140)
	s.Upsert("11", "L", -140)
	s.Upsert("11", "L", -140)
	if d, _ := src.Distance(distance.Left); d != 31 {
		t.Errorf("far beacon = %d, want 31", d)
	}

	c.t = c.t.Add(time.Minute)
	if d, _ := src.Distance(distance.Right); d != 31 {
		t.Errorf("stale beacon = %d, want 31", d)
	}

	none := NewSource(s, "", "")
	if _, ok := none.Distance(distance.Left); ok {
		t.Error("unconfigured side reported a distance")
	}
}

func TestFallbackName(t *testing.T) {
	if got := fallbackName(0x0499, "C4:7C:8D:6A:EE:FF"); got != "Ruuvi EE:FF" {
		t.Errorf("fallbackName = %q", got)
	}
	if got := fallbackName(0xFFFF, "C4:7C:8D:6A:EE:FF"); got != "" {
		t.Errorf("unknown maker named %q", got)
	}
}
