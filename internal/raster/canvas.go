// Package raster draws shapes on a display.Display out of pixels and runs.
//
// Every drawing call sets the colors it needs, draws, and restores the
// canvas defaults (black on white), so callers never track color state.
package raster

import (
	"moto-hud.klederson.com/internal/config"
	"moto-hud.klederson.com/internal/display"
)

// Canvas wraps a panel with the color-restore convention.
type Canvas struct {
	d      display.Display
	width  int
	height int
}

// New creates a canvas for a panel of the configured resolution.
func New(d display.Display) *Canvas {
	return &Canvas{d: d, width: config.ScreenWidth, height: config.ScreenHeight}
}

// Default colors restored after every call.
const (
	DefaultForeground = display.Black
	DefaultBackground = display.White
)

func (c *Canvas) restore() {
	c.d.SetForeground(DefaultForeground)
	c.d.SetBackground(DefaultBackground)
}

// Clear blanks the panel to the default background.
func (c *Canvas) Clear() {
	c.restore()
	c.d.ClearScreen()
}

func (c *Canvas) Pixel(x, y int, col display.Color) {
	c.d.SetForeground(col)
	c.d.DrawPixel(x, y)
	c.restore()
}

// Line draws a Bresenham line. The end point is not included.
func (c *Canvas) Line(x0, y0, x1, y1 int, col display.Color) {
	c.d.SetForeground(col)
	line(x0, y0, x1, y1, c.d.DrawPixel)
	c.restore()
}

func (c *Canvas) Circle(cx, cy, r int, col display.Color) {
	c.d.SetForeground(col)
	circle(cx, cy, r, c.d.DrawPixel)
	c.restore()
}

// Rect outlines a dx by dy rectangle. The panel's rectangle runs leave the
// far corner open, so it is set explicitly.
func (c *Canvas) Rect(x, y, dx, dy int, col display.Color) {
	c.d.SetForeground(col)
	c.rect(x, y, dx, dy)
	c.restore()
}

func (c *Canvas) rect(x, y, dx, dy int) {
	c.d.DrawHLine(x, y, dx)
	c.d.DrawHLine(x, y+dy, dx)
	c.d.DrawVLine(x, y, dy)
	c.d.DrawVLine(x+dx, y, dy)
	c.d.DrawPixel(x+dx, y+dy)
}

// FillRect paints the interior of the rectangle Rect would outline.
func (c *Canvas) FillRect(x, y, dx, dy int, col display.Color) {
	c.d.SetForeground(col)
	for j := y + 1; j < y+dy; j++ {
		c.d.DrawHLine(x+1, j, dx-1)
	}
	c.restore()
}

// FillBackground paints the whole panel.
func (c *Canvas) FillBackground(col display.Color) {
	c.d.SetForeground(col)
	for y := 0; y < c.height; y++ {
		c.d.DrawHLine(0, y, c.width)
	}
	c.restore()
}

// Text draws s with the given foreground and cell background.
func (c *Canvas) Text(x, y int, s string, fg, bg display.Color) {
	c.d.SetForeground(fg)
	c.d.SetBackground(bg)
	c.d.DrawText(x, y, s)
	c.restore()
}
