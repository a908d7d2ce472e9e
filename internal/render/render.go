// Package render updates the panel by erase-then-redraw. Every entity keeps
// the geometry it last put on screen; applying it paints the old geometry
// in the background color and the new one in the foreground color.
package render

import (
	"moto-hud.klederson.com/internal/display"
	"moto-hud.klederson.com/internal/raster"
)

// Entity is one moving element of the screen.
type Entity[G comparable] interface {
	// Previous returns the geometry on screen; ok is false if nothing is.
	Previous() (g G, ok bool)
	Current() G
	Erase(c *raster.Canvas, g G, col display.Color)
	Draw(c *raster.Canvas, g G, col display.Color)
	// Commit records Current as what is on screen.
	Commit()
}

// Renderer holds the canvas and the palette entities are drawn with.
type Renderer struct {
	Canvas     *raster.Canvas
	Foreground display.Color
	Background display.Color
}

// NewRenderer returns a renderer drawing fg on bg.
func NewRenderer(c *raster.Canvas, fg, bg display.Color) *Renderer {
	return &Renderer{Canvas: c, Foreground: fg, Background: bg}
}

// SetPalette changes the colors used by later Apply calls.
func (r *Renderer) SetPalette(fg, bg display.Color) {
	r.Foreground = fg
	r.Background = bg
}

// Apply brings e up to date and reports whether anything was drawn. An
// unchanged entity is left alone unless force is set.
func Apply[G comparable](r *Renderer, e Entity[G], force bool) bool {
	prev, onScreen := e.Previous()
	cur := e.Current()
	if onScreen && prev == cur && !force {
		return false
	}
	if onScreen {
		e.Erase(r.Canvas, prev, r.Background)
	}
	e.Draw(r.Canvas, cur, r.Foreground)
	e.Commit()
	return true
}
