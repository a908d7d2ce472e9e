package ranging

import (
	"sort"
	"sync"
	"time"

	"moto-hud.klederson.com/internal/config"
)

// Store is a thread-safe set of beacons keyed by address.
type Store struct {
	mu      sync.RWMutex
	beacons map[string]*Beacon
	now     func() time.Time
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		beacons: make(map[string]*Beacon),
		now:     time.Now,
	}
}

// Upsert records an advertisement. Repeat sightings are smoothed with an
// EMA before the distance is re-estimated.
func (s *Store) Upsert(addr, name string, rssi float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if b, ok := s.beacons[addr]; ok {
		b.RSSI = b.RSSI*(1-config.SmoothingAlpha) + rssi*config.SmoothingAlpha
		b.Distance = RSSIToDistance(b.RSSI, config.MeasuredPower, config.PathLossExp)
		b.LastSeen = now
		if name != "" {
			b.Name = name
		}
		return
	}
	s.beacons[addr] = &Beacon{
		Address:  addr,
		Name:     name,
		RSSI:     rssi,
		Distance: RSSIToDistance(rssi, config.MeasuredPower, config.PathLossExp),
		LastSeen: now,
	}
}

// Find returns a copy of the freshest beacon matching id that has been seen
// within maxAge.
func (s *Store) Find(id string, maxAge time.Duration) (Beacon, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cutoff := s.now().Add(-maxAge)
	var best *Beacon
	for _, b := range s.beacons {
		if !b.Matches(id) || b.LastSeen.Before(cutoff) {
			continue
		}
		if best == nil || b.LastSeen.After(best.LastSeen) {
			best = b
		}
	}
	if best == nil {
		return Beacon{}, false
	}
	return *best, true
}

// Evict removes beacons not seen within timeout and returns how many went.
func (s *Store) Evict(timeout time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-timeout)
	count := 0
	for addr, b := range s.beacons {
		if b.LastSeen.Before(cutoff) {
			delete(s.beacons, addr)
			count++
		}
	}
	return count
}

// Snapshot returns copies of all beacons, nearest first.
func (s *Store) Snapshot() []Beacon {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Beacon, 0, len(s.beacons))
	for _, b := range s.beacons {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Distance < out[j].Distance
	})
	return out
}

// Count returns the number of tracked beacons.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.beacons)
}
