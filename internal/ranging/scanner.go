package ranging

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sync/atomic"
	"time"

	"tinygo.org/x/bluetooth"

	"moto-hud.klederson.com/internal/config"
	"moto-hud.klederson.com/internal/distance"
)

// Scanner listens for advertisements and feeds a Store.
type Scanner struct {
	adapter *bluetooth.Adapter
	store   *Store
	log     *slog.Logger
	running atomic.Bool
}

// NewScanner returns a scanner on the default adapter.
func NewScanner(store *Store, log *slog.Logger) *Scanner {
	return &Scanner{adapter: bluetooth.DefaultAdapter, store: store, log: log}
}

// Start enables the adapter and scans in a goroutine until Stop is called
// or ctx is done. Stale beacons are evicted while it runs.
func (s *Scanner) Start(ctx context.Context) error {
	if err := s.adapter.Enable(); err != nil {
		return fmt.Errorf("enable BLE adapter: %w (try running with sudo or setcap cap_net_admin+ep)", err)
	}
	s.running.Store(true)

	go func() {
		err := s.adapter.Scan(func(_ *bluetooth.Adapter, r bluetooth.ScanResult) {
			if !s.running.Load() {
				return
			}
			addr := r.Address.String()
			name := r.LocalName()
			if name == "" {
				if mfrs := r.ManufacturerData(); len(mfrs) > 0 {
					name = fallbackName(mfrs[0].CompanyID, addr)
				}
			}
			s.store.Upsert(addr, name, float64(r.RSSI))
		})
		if err != nil {
			s.log.Warn("ble scan stopped", "err", err)
		}
	}()

	go func() {
		t := time.NewTicker(config.EvictInterval)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				s.Stop()
				return
			case <-t.C:
				if n := s.store.Evict(config.BeaconTimeout); n > 0 {
					s.log.Debug("beacons evicted", "count", n)
				}
			}
		}
	}()
	return nil
}

// Stop halts scanning.
func (s *Scanner) Stop() {
	if s.running.Swap(false) {
		_ = s.adapter.StopScan()
	}
}

// Source serves per-side distances from a Store. It implements app.Ranger.
type Source struct {
	Store  *Store
	IDs    [2]string // beacon address or local name per side
	MaxAge time.Duration
}

// NewSource returns a source for the left and right beacon ids.
func NewSource(store *Store, left, right string) *Source {
	return &Source{Store: store, IDs: [2]string{left, right}, MaxAge: config.BeaconTimeout}
}

// Distance returns the side's beacon distance in whole meters. A beacon
// that has not been seen recently reads as out of range.
func (s *Source) Distance(side distance.Side) (uint16, bool) {
	id := s.IDs[side]
	if id == "" {
		return 0, false
	}
	b, ok := s.Store.Find(id, s.MaxAge)
	if !ok {
		return config.DistanceLimit + 1, true
	}
	m := math.Round(b.Distance)
	if m > config.DistanceLimit {
		return config.DistanceLimit + 1, true
	}
	return uint16(max(m, 1)), true
}
