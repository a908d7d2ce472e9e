// Package ui lays out the Main and Settings screens, hit-tests touches
// against them, and holds the display preferences the Settings screen edits.
package ui

import (
	"errors"
	"fmt"
	"strings"

	"moto-hud.klederson.com/internal/display"
)

// ErrUnknownScheme is returned when a color scheme name is not recognised.
var ErrUnknownScheme = errors.New("ui: unknown color scheme")

// Scheme is one of the four color palettes.
type Scheme int

const (
	Day Scheme = iota
	Night
	Funky
	Evil
)

var schemeNames = [...]string{"day", "night", "funky", "evil"}

func (s Scheme) String() string {
	if s < Day || s > Evil {
		return fmt.Sprintf("Scheme(%d)", int(s))
	}
	return schemeNames[s]
}

// ParseScheme accepts a scheme name in any case.
func ParseScheme(name string) (Scheme, error) {
	for i, n := range schemeNames {
		if strings.EqualFold(name, n) {
			return Scheme(i), nil
		}
	}
	return Day, fmt.Errorf("%w: %q", ErrUnknownScheme, name)
}

// Palette is the pair of colors the Main screen is drawn with.
type Palette struct {
	Background display.Color
	Foreground display.Color
}

// Palette returns the colors for s. Unknown schemes fall back to Day.
func (s Scheme) Palette() Palette {
	switch s {
	case Night:
		return Palette{Background: display.Black, Foreground: display.Cyan}
	case Funky:
		return Palette{Background: display.Black, Foreground: display.Magenta}
	case Evil:
		return Palette{Background: display.Black, Foreground: display.Red}
	default:
		return Palette{Background: display.Black, Foreground: display.White}
	}
}

// TempUnit selects the temperature readout unit.
type TempUnit int

const (
	Celsius TempUnit = iota
	Fahrenheit
)

func (u TempUnit) String() string {
	if u == Fahrenheit {
		return "F"
	}
	return "C"
}

// Convert expresses a Celsius temperature in u.
func (u TempUnit) Convert(celsius float64) float64 {
	if u == Fahrenheit {
		return celsius*9/5 + 32
	}
	return celsius
}

// DistUnit selects the distance readout unit.
type DistUnit int

const (
	Meters DistUnit = iota
	Yards
)

func (u DistUnit) String() string {
	if u == Yards {
		return "yd"
	}
	return "m"
}

// Convert expresses a distance in meters in u, rounded to whole units.
func (u DistUnit) Convert(meters uint16) uint16 {
	if u == Yards {
		return uint16((uint32(meters)*10936 + 5000) / 10000)
	}
	return meters
}

// Preferences are the session's display settings. They start at the
// defaults on every power-up.
type Preferences struct {
	Scheme Scheme
	Temp   TempUnit
	Dist   DistUnit
}

// DefaultPreferences returns Day, Celsius and meters.
func DefaultPreferences() Preferences {
	return Preferences{Scheme: Day, Temp: Celsius, Dist: Meters}
}

// Palette returns the current scheme's colors.
func (p Preferences) Palette() Palette {
	return p.Scheme.Palette()
}

// Apply updates the preference a Settings region selects. It reports false
// for regions that select nothing, such as Back.
func (p *Preferences) Apply(r Region) bool {
	switch r {
	case TempC:
		p.Temp = Celsius
	case TempF:
		p.Temp = Fahrenheit
	case DistM:
		p.Dist = Meters
	case DistYd:
		p.Dist = Yards
	case SchemeDay:
		p.Scheme = Day
	case SchemeNight:
		p.Scheme = Night
	case SchemeFunky:
		p.Scheme = Funky
	case SchemeEvil:
		p.Scheme = Evil
	default:
		return false
	}
	return true
}
