package ui

import (
	"fmt"
	"image"
	"math"

	"moto-hud.klederson.com/internal/config"
	"moto-hud.klederson.com/internal/display"
	"moto-hud.klederson.com/internal/distance"
	"moto-hud.klederson.com/internal/raster"
)

// Button outlines on the Settings screen, as x, y, dx, dy.
var (
	tempCButton  = image.Rect(25, 135, 25+70, 135+30)
	tempFButton  = image.Rect(131, 135, 131+70, 135+30)
	distMButton  = image.Rect(25, 215, 25+70, 215+30)
	distYdButton = image.Rect(131, 215, 131+70, 215+30)
)

const swatchSize = 45

// swatch is one palette choice on the Settings screen.
type swatch struct {
	scheme Scheme
	at     image.Point
	label  string
	labelX int
	labelY int
}

var swatches = [...]swatch{
	{Day, image.Pt(295, 120), "Day", 293, 88},
	{Night, image.Pt(396, 120), "Night", 381, 88},
	{Funky, image.Pt(295, 208), "Funky", 280, 175},
	{Evil, image.Pt(396, 208), "Evil", 389, 175},
}

// readout positions on the Main screen.
var readouts = [...]struct{ value, unit image.Point }{
	distance.Left:  {image.Pt(118, 125), image.Pt(164, 125)},
	distance.Right: {image.Pt(325, 125), image.Pt(371, 125)},
}

var tempDigitX = [3]int{220, 235, 250}

const tempDigitY = 50

// DrawMain repaints the whole Main screen in the preferred palette: the
// settings button, the temperature dial and unit, the empty lean gauge
// and the two distance placeholders. Chevrons and the needle are drawn
// by their renderers.
func DrawMain(c *raster.Canvas, p Preferences) {
	pal := p.Palette()
	fg, bg := pal.Foreground, pal.Background

	c.Clear()
	c.FillBackground(bg)

	c.Rect(320, 5, 60, 30, fg)
	c.Text(327, 11, "SET", fg, bg)

	c.Circle(240, 71, 71, fg)
	c.Circle(233, 88, 4, fg)
	c.Text(240, 85, p.Temp.String(), fg, bg)

	c.Circle(config.GaugeCenterX, config.GaugeCenterY, config.GaugeRadius, fg)

	for _, r := range readouts {
		c.Text(r.value.X, r.value.Y, ".", fg, bg)
		c.Text(r.unit.X, r.unit.Y, p.Dist.String(), fg, bg)
	}
}

// DrawTemperature writes the three cell temperature readout in the
// preferred unit. Values are clamped to -99..999; below zero the first
// cell holds the sign.
func DrawTemperature(c *raster.Canvas, p Preferences, celsius float64) {
	pal := p.Palette()
	digits := tempDigits(p.Temp.Convert(celsius))
	for i, x := range tempDigitX {
		c.Text(x, tempDigitY, digits[i:i+1], pal.Foreground, pal.Background)
	}
}

// DrawDistance writes one side's two digit distance readout. reading is in
// meters and is shown in the preferred unit.
func DrawDistance(c *raster.Canvas, p Preferences, side distance.Side, reading uint16) {
	pal := p.Palette()
	r := readouts[side]
	c.Text(r.value.X, r.value.Y, fmt.Sprintf("%2d", p.Dist.Convert(reading)), pal.Foreground, pal.Background)
	c.Text(r.unit.X, r.unit.Y, p.Dist.String(), pal.Foreground, pal.Background)
}

// DrawSettings repaints the whole Settings screen, black on white, and
// highlights the current choices.
func DrawSettings(c *raster.Canvas, p Preferences) {
	const fg, bg = display.Black, display.White

	c.Clear()

	c.Rect(160, 0, 160, 35, fg)
	c.Text(177, 8, "SETTINGS", fg, bg)
	c.Rect(403, 5, 70, 30, fg)
	c.Text(406, 11, "BACK", fg, bg)

	c.Rect(5, 61, 213, 204, fg)
	c.Text(72, 65, "Units", fg, bg)
	c.Text(24, 101, "Temperature", fg, bg)
	button(c, tempCButton)
	c.Circle(50, 143, 4, fg)
	c.Text(57, 140, "C", fg, bg)
	button(c, tempFButton)
	c.Circle(156, 143, 4, fg)
	c.Text(163, 140, "F", fg, bg)

	c.Text(52, 180, "Distance", fg, bg)
	button(c, distMButton)
	c.Text(53, 220, "m", fg, bg)
	button(c, distYdButton)
	c.Text(150, 218, "yd", fg, bg)

	c.Rect(260, 61, 213, 204, fg)
	c.Text(322, 65, "Colour", fg, bg)
	for _, s := range swatches {
		c.PaletteOutline(s.at.X, s.at.Y, swatchSize)
		c.FillPalette(s.at.X, s.at.Y, swatchSize, s.scheme.Palette().Foreground)
		c.Text(s.labelX, s.labelY, s.label, fg, bg)
	}

	HighlightTemp(c, p.Temp)
	HighlightDist(c, p.Dist)
	HighlightScheme(c, p.Scheme)
}

func button(c *raster.Canvas, r image.Rectangle) {
	c.Rect(r.Min.X, r.Min.Y, r.Dx(), r.Dy(), display.Black)
}

func highlight(c *raster.Canvas, r image.Rectangle, on bool) {
	col := display.White
	if on {
		col = display.Highlight
	}
	c.Highlight(r.Min.X, r.Min.Y, r.Dx(), r.Dy(), col)
}

// HighlightTemp frames the selected temperature button and clears the
// frame around the other.
func HighlightTemp(c *raster.Canvas, u TempUnit) {
	highlight(c, tempCButton, u == Celsius)
	highlight(c, tempFButton, u == Fahrenheit)
}

// HighlightDist frames the selected distance button.
func HighlightDist(c *raster.Canvas, u DistUnit) {
	highlight(c, distMButton, u == Meters)
	highlight(c, distYdButton, u == Yards)
}

// HighlightScheme frames the selected palette swatch.
func HighlightScheme(c *raster.Canvas, s Scheme) {
	for _, sw := range swatches {
		r := image.Rect(sw.at.X, sw.at.Y, sw.at.X+swatchSize-1, sw.at.Y+swatchSize-1)
		highlight(c, r, sw.scheme == s)
	}
}

// Rehighlight redraws whichever frames a Settings region affects.
func Rehighlight(c *raster.Canvas, p Preferences, r Region) {
	switch r {
	case TempC, TempF:
		HighlightTemp(c, p.Temp)
	case DistM, DistYd:
		HighlightDist(c, p.Dist)
	case SchemeDay, SchemeNight, SchemeFunky, SchemeEvil:
		HighlightScheme(c, p.Scheme)
	}
}

func tempDigits(t float64) string {
	v := int(math.Round(t))
	if v < 0 {
		return fmt.Sprintf("-%02d", min(-v, 99))
	}
	return fmt.Sprintf("%03d", min(v, 999))
}
