package raster

import (
	"moto-hud.klederson.com/internal/config"
	"moto-hud.klederson.com/internal/display"
)

// Chevron geometry. A chevron is an arrow pointing at the screen edge,
// spanning the full panel height; reversed chevrons are mirrored about
// chevronMirror for the right-hand side.
const (
	chevronTip    = config.ScreenHeight / 2
	chevronTop    = 0
	chevronBottom = config.ScreenHeight
	chevronCapTop = 1
	chevronCapBot = config.ScreenHeight - 1
	chevronMirror = config.ScreenWidth - 2
	chevronSlant  = 7  // horizontal run of each arm
	chevronGap    = 10 // distance between the inner and outer outline
	chevronCapLen = 10
	chevronFill   = 5 // offset copies drawn by FillChevron
)

type mirror bool

func (m mirror) x(v int) int {
	if m {
		return chevronMirror - v
	}
	return v
}

// run returns the left end of a horizontal run of n pixels starting at v.
func (m mirror) run(v, n int) int {
	if m {
		return chevronMirror - (v + n - 1)
	}
	return v
}

// Chevron draws the outline of the chevron whose tip is x pixels in from
// the panel edge: two arms per outline plus the horizontal caps.
func (c *Canvas) Chevron(x int, reverse bool, col display.Color) {
	m := mirror(reverse)
	c.d.SetForeground(col)
	c.arm(m, x, 0)
	c.d.DrawHLine(m.run(x+chevronSlant, chevronCapLen), chevronCapTop, chevronCapLen)
	c.d.DrawHLine(m.run(x+chevronSlant, chevronCapLen), chevronCapBot, chevronCapLen)
	c.arm(m, x+chevronGap, 0)
	c.restore()
}

// FillChevron thickens a chevron with offset copies of both outlines,
// each moved toward the other.
func (c *Canvas) FillChevron(x int, reverse bool, col display.Color) {
	m := mirror(reverse)
	c.d.SetForeground(col)
	for i := 1; i <= chevronFill; i++ {
		c.arm(m, x, i)
		c.arm(m, x+chevronGap, -i)
	}
	c.restore()
}

// arm draws the upper and lower arm of one outline shifted by off.
func (c *Canvas) arm(m mirror, x, off int) {
	line(m.x(x+off), chevronTip, m.x(x+chevronSlant+off), chevronTop, c.d.DrawPixel)
	line(m.x(x+off), chevronTip, m.x(x+chevronSlant+off), chevronBottom, c.d.DrawPixel)
}

// PaletteOutline frames a d x d swatch and its diagonal.
func (c *Canvas) PaletteOutline(x, y, d int) {
	c.d.SetForeground(display.Black)
	c.rect(x, y, d, d)
	line(x, y+d, x+d, y, c.d.DrawPixel)
	c.restore()
}

// FillPalette fills a swatch as two triangles: the upper-left one in col
// and the lower-right one in black.
func (c *Canvas) FillPalette(x, y, d int, col display.Color) {
	for j := 1; j < d; j++ {
		if n := d - j - 1; n > 0 {
			c.d.SetForeground(col)
			c.d.DrawHLine(x+1, y+j, n)
		}
		c.d.SetForeground(display.Black)
		c.d.DrawHLine(x+d-j, y+j, j)
	}
	c.restore()
}

// Highlight draws a four pixel frame 5 to 8 pixels outside a button.
func (c *Canvas) Highlight(x, y, dx, dy int, col display.Color) {
	c.d.SetForeground(col)
	for i := 0; i < 4; i++ {
		c.rect(x-5-i, y-5-i, dx+10+2*i, dy+10+2*i)
	}
	c.restore()
}
