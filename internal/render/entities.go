package render

import (
	"image"

	"moto-hud.klederson.com/internal/display"
	"moto-hud.klederson.com/internal/distance"
	"moto-hud.klederson.com/internal/raster"
)

// Segment is a line from From to To.
type Segment struct {
	From, To image.Point
}

// Needle is the lean needle: a segment from the gauge center to the tip.
type Needle struct {
	center   image.Point
	prev     Segment
	cur      Segment
	onScreen bool
}

// NewNeedle returns a needle pivoting on center. Until Point is called it
// has zero length.
func NewNeedle(center image.Point) *Needle {
	s := Segment{From: center, To: center}
	return &Needle{center: center, prev: s, cur: s}
}

// Point moves the tip.
func (n *Needle) Point(tip image.Point) {
	n.cur = Segment{From: n.center, To: tip}
}

// Tip returns the tip that will be drawn next.
func (n *Needle) Tip() image.Point {
	return n.cur.To
}

// Invalidate forgets what is on screen, e.g. after a full repaint.
func (n *Needle) Invalidate() {
	n.onScreen = false
}

func (n *Needle) Previous() (Segment, bool) { return n.prev, n.onScreen }
func (n *Needle) Current() Segment           { return n.cur }

func (n *Needle) Erase(c *raster.Canvas, s Segment, col display.Color) {
	n.Draw(c, s, col)
}

func (n *Needle) Draw(c *raster.Canvas, s Segment, col display.Color) {
	c.Line(s.From.X, s.From.Y, s.To.X, s.To.Y, col)
}

func (n *Needle) Commit() {
	n.prev = n.cur
	n.onScreen = true
}

// chevronOffsets are the tip positions of segments 1..5, outermost first.
var chevronOffsets = [distance.MaxLevel]int{0, 17, 34, 51, 68}

// Gauge is one five-chevron distance indicator.
type Gauge struct {
	Side     distance.Side
	prev     int
	cur      int
	onScreen bool
}

// NewGauge returns an empty gauge for side.
func NewGauge(side distance.Side) *Gauge {
	return &Gauge{Side: side}
}

// SetLevel selects how many chevrons are lit, 0 to 5.
func (g *Gauge) SetLevel(level int) {
	g.cur = min(max(level, 0), distance.MaxLevel)
}

// Level returns the level that will be drawn next.
func (g *Gauge) Level() int {
	return g.cur
}

// Invalidate forgets what is on screen.
func (g *Gauge) Invalidate() {
	g.onScreen = false
}

func (g *Gauge) Previous() (int, bool) { return g.prev, g.onScreen }
func (g *Gauge) Current() int           { return g.cur }

// Erase blanks all five segments whatever the level on screen.
func (g *Gauge) Erase(c *raster.Canvas, _ int, col display.Color) {
	for _, x := range chevronOffsets {
		g.segment(c, x, col)
	}
}

// Draw lights segments 1..level.
func (g *Gauge) Draw(c *raster.Canvas, level int, col display.Color) {
	for i := 0; i < level; i++ {
		g.segment(c, chevronOffsets[i], col)
	}
}

func (g *Gauge) Commit() {
	g.prev = g.cur
	g.onScreen = true
}

func (g *Gauge) segment(c *raster.Canvas, x int, col display.Color) {
	reverse := g.Side == distance.Right
	c.Chevron(x, reverse, col)
	c.FillChevron(x, reverse, col)
}
