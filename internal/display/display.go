// Package display defines the pixel panel the instrument draws on and an
// in-memory implementation of it.
package display

import "image/color"

// Color is a 16-bit RGB565 panel color.
type Color uint16

// Panel colors.
const (
	Black     Color = 0x0000
	White     Color = 0xFFFF
	Magenta   Color = 0xF81F
	Cyan      Color = 0x07F9
	Red       Color = 0xFA20
	Highlight Color = 0x033F
)

// RGBA expands the color to 8 bits per channel.
func (c Color) RGBA() color.RGBA {
	r := uint8(c>>11) & 0x1F
	g := uint8(c>>5) & 0x3F
	b := uint8(c) & 0x1F
	return color.RGBA{
		R: r<<3 | r>>2,
		G: g<<2 | g>>4,
		B: b<<3 | b>>2,
		A: 0xFF,
	}
}

// FromRGBA packs an 8-bit color into RGB565.
func FromRGBA(c color.RGBA) Color {
	return Color(uint16(c.R>>3)<<11 | uint16(c.G>>2)<<5 | uint16(c.B>>3))
}

// Display is the panel primitive set. Drawing calls use the current
// foreground color; text cells are backed with the background color.
type Display interface {
	SetForeground(c Color)
	SetBackground(c Color)
	DrawPixel(x, y int)
	DrawHLine(x, y, length int)
	DrawVLine(x, y, length int)
	DrawText(x, y int, s string)
	ClearScreen()
}
