package ui

// Region is a touch target.
type Region int

const (
	None Region = iota
	SettingsButton
	Back
	TempC
	TempF
	DistM
	DistYd
	SchemeDay
	SchemeNight
	SchemeFunky
	SchemeEvil
)

var regionNames = map[Region]string{
	None:           "none",
	SettingsButton: "settings",
	Back:           "back",
	TempC:          "temp-c",
	TempF:          "temp-f",
	DistM:          "dist-m",
	DistYd:         "dist-yd",
	SchemeDay:      "scheme-day",
	SchemeNight:    "scheme-night",
	SchemeFunky:    "scheme-funky",
	SchemeEvil:     "scheme-evil",
}

func (r Region) String() string {
	if n, ok := regionNames[r]; ok {
		return n
	}
	return "unknown"
}

// span is a closed or open interval on one axis.
type span struct {
	lo, hi    int
	exclusive bool
}

func (s span) contains(v int) bool {
	if s.exclusive {
		return v > s.lo && v < s.hi
	}
	return v >= s.lo && v <= s.hi
}

type target struct {
	region Region
	y      span
}

// group is a column of targets sharing an x span.
type group struct {
	x       span
	targets []target
}

func (g group) hit(x, y int) (Region, bool) {
	if !g.x.contains(x) {
		return None, false
	}
	for _, t := range g.targets {
		if t.y.contains(y) {
			return t.region, true
		}
	}
	return None, true
}

// table is scanned in order. Every free group is tried; of the chained
// groups only the first whose column contains x is tried, even if none of
// its targets hit.
type table struct {
	free  []group
	chain []group
}

func open(lo, hi int) span   { return span{lo, hi, true} }
func closed(lo, hi int) span { return span{lo, hi, false} }

var mainTable = table{
	free: []group{
		{x: open(320, 380), targets: []target{{SettingsButton, open(5, 35)}}},
	},
}

// The unit columns overlap on 131..135; the left column wins there.
var settingsTable = table{
	free: []group{
		{x: open(388, 458), targets: []target{{Back, open(20, 50)}}},
	},
	chain: []group{
		{x: closed(25, 135), targets: []target{
			{TempC, closed(135, 165)},
			{DistM, closed(195, 225)},
		}},
		{x: closed(131, 200), targets: []target{
			{TempF, closed(135, 165)},
			{DistYd, closed(215, 245)},
		}},
		{x: closed(295, 340), targets: []target{
			{SchemeDay, closed(120, 165)},
			{SchemeFunky, closed(208, 253)},
		}},
		{x: closed(396, 441), targets: []target{
			{SchemeNight, closed(120, 165)},
			{SchemeEvil, closed(208, 253)},
		}},
	},
}

func (t table) classify(x, y int) Region {
	for _, g := range t.free {
		if r, _ := g.hit(x, y); r != None {
			return r
		}
	}
	for _, g := range t.chain {
		if r, matched := g.hit(x, y); matched {
			return r
		}
	}
	return None
}

// ClassifyMain hit-tests a touch on the Main screen.
func ClassifyMain(x, y int) Region {
	return mainTable.classify(x, y)
}

// ClassifySettings hit-tests a touch on the Settings screen.
func ClassifySettings(x, y int) Region {
	return settingsTable.classify(x, y)
}

// Mode is the screen on display.
type Mode int

const (
	Main Mode = iota
	Settings
)

func (m Mode) String() string {
	if m == Settings {
		return "settings"
	}
	return "main"
}
