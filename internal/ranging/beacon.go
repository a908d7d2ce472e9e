// Package ranging estimates the distance to BLE beacons carried on the
// left and right of the bike, as an alternative to the dials.
package ranging

import (
	"math"
	"strings"
	"time"
)

// Beacon is one advertiser seen by the scanner.
type Beacon struct {
	Address  string
	Name     string
	RSSI     float64 // smoothed, dBm
	Distance float64 // meters
	LastSeen time.Time
}

// Matches reports whether id names this beacon by address or local name.
func (b *Beacon) Matches(id string) bool {
	return id != "" && (strings.EqualFold(b.Address, id) || b.Name == id)
}

// RSSIToDistance estimates distance from RSSI using the log-distance path
// loss model: d = 10^((measuredPower - rssi) / (10 * n)).
func RSSIToDistance(rssi, measuredPower, pathLossExp float64) float64 {
	if rssi >= 0 {
		return 0.1
	}
	d := math.Pow(10, (measuredPower-rssi)/(10*pathLossExp))
	if d < 0.1 {
		return 0.1
	}
	return d
}
