package display

import (
	"image"
	"image/draw"
	"image/png"
	"io"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"moto-hud.klederson.com/internal/config"
)

// Framebuffer is an in-memory panel. It is safe for concurrent use so a
// viewer can take snapshots while the render loop draws.
type Framebuffer struct {
	mu  sync.Mutex
	img *image.RGBA
	fg  Color
	bg  Color

	glyphs *image.Alpha // scratch for text rendering
}

// NewFramebuffer creates a framebuffer of the given size, cleared to white.
func NewFramebuffer(width, height int) *Framebuffer {
	fb := &Framebuffer{
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
		fg:  Black,
		bg:  White,
	}
	fb.ClearScreen()
	return fb
}

// NewPanel creates a framebuffer with the panel's resolution.
func NewPanel() *Framebuffer {
	return NewFramebuffer(config.ScreenWidth, config.ScreenHeight)
}

func (fb *Framebuffer) SetForeground(c Color) {
	fb.mu.Lock()
	fb.fg = c
	fb.mu.Unlock()
}

func (fb *Framebuffer) SetBackground(c Color) {
	fb.mu.Lock()
	fb.bg = c
	fb.mu.Unlock()
}

// DrawPixel paints one pixel. Pixels outside the panel are dropped.
func (fb *Framebuffer) DrawPixel(x, y int) {
	fb.mu.Lock()
	fb.set(x, y, fb.fg)
	fb.mu.Unlock()
}

func (fb *Framebuffer) DrawHLine(x, y, length int) {
	fb.mu.Lock()
	for i := 0; i < length; i++ {
		fb.set(x+i, y, fb.fg)
	}
	fb.mu.Unlock()
}

func (fb *Framebuffer) DrawVLine(x, y, length int) {
	fb.mu.Lock()
	for i := 0; i < length; i++ {
		fb.set(x, y+i, fb.fg)
	}
	fb.mu.Unlock()
}

// DrawText renders s in fixed CellWidth x CellHeight cells whose top-left
// corner is (x, y). Glyphs come from the 7x13 basic font, scaled up.
func (fb *Framebuffer) DrawText(x, y int, s string) {
	if s == "" {
		return
	}
	face := basicfont.Face7x13
	w := face.Advance * len(s)

	fb.mu.Lock()
	defer fb.mu.Unlock()

	if fb.glyphs == nil || fb.glyphs.Bounds().Dx() < w {
		fb.glyphs = image.NewAlpha(image.Rect(0, 0, w, face.Height))
	}
	draw.Draw(fb.glyphs, fb.glyphs.Bounds(), image.Transparent, image.Point{}, draw.Src)
	d := font.Drawer{
		Dst:  fb.glyphs,
		Src:  image.Opaque,
		Face: face,
		Dot:  fixed.P(0, face.Ascent),
	}
	d.DrawString(s)

	for i := range s {
		ox := x + i*config.CellWidth
		for cy := 0; cy < config.CellHeight; cy++ {
			gy := cy * face.Height / config.CellHeight
			for cx := 0; cx < config.CellWidth; cx++ {
				gx := i*face.Advance + cx*face.Advance/config.CellWidth
				c := fb.bg
				if fb.glyphs.AlphaAt(gx, gy).A > 0x7F {
					c = fb.fg
				}
				fb.set(ox+cx, y+cy, c)
			}
		}
	}
}

// ClearScreen fills the panel with the background color.
func (fb *Framebuffer) ClearScreen() {
	fb.mu.Lock()
	draw.Draw(fb.img, fb.img.Bounds(), image.NewUniform(fb.bg.RGBA()), image.Point{}, draw.Src)
	fb.mu.Unlock()
}

// At returns the color at (x, y), or Black outside the panel.
func (fb *Framebuffer) At(x, y int) Color {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	if !(image.Point{X: x, Y: y}).In(fb.img.Rect) {
		return Black
	}
	return FromRGBA(fb.img.RGBAAt(x, y))
}

// Bounds returns the panel rectangle.
func (fb *Framebuffer) Bounds() image.Rectangle {
	return fb.img.Rect
}

// Snapshot returns a copy of the current image.
func (fb *Framebuffer) Snapshot() *image.RGBA {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	cp := image.NewRGBA(fb.img.Rect)
	copy(cp.Pix, fb.img.Pix)
	return cp
}

// WritePNG encodes the current image as PNG.
func (fb *Framebuffer) WritePNG(w io.Writer) error {
	return png.Encode(w, fb.Snapshot())
}

func (fb *Framebuffer) set(x, y int, c Color) {
	if x < 0 || y < 0 || x >= fb.img.Rect.Dx() || y >= fb.img.Rect.Dy() {
		return
	}
	fb.img.SetRGBA(x, y, c.RGBA())
}
