// Package tui mirrors the simulated instrument panel in a terminal and lets
// the rider's inputs be driven from the keyboard and mouse.
package tui

import (
	"fmt"
	"image"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"moto-hud.klederson.com/internal/config"
	"moto-hud.klederson.com/internal/display"
)

// upperHalf paints its foreground over the top of a cell and lets the
// background show through below, giving two pixels per terminal cell.
const upperHalf = "▀"

type cellKey struct{ top, bottom display.Color }

// PanelRenderer turns framebuffer snapshots into styled half-block text.
// Styles are cached per color pair since a frame only uses a handful.
type PanelRenderer struct {
	styles map[cellKey]lipgloss.Style
}

func NewPanelRenderer() *PanelRenderer {
	return &PanelRenderer{styles: make(map[cellKey]lipgloss.Style)}
}

// Render draws img as rows of config.SimCellW x config.SimCellH pixel cells.
// Each half cell takes the most common color that differs from the panel
// background, so one-pixel lines survive the downscale.
func (r *PanelRenderer) Render(img *image.RGBA) string {
	b := img.Bounds()
	bg := display.FromRGBA(img.RGBAAt(b.Min.X, b.Min.Y))
	cols := b.Dx() / config.SimCellW
	rows := b.Dy() / config.SimCellH
	half := config.SimCellH / 2

	var sb strings.Builder
	for row := 0; row < rows; row++ {
		y := b.Min.Y + row*config.SimCellH
		var run cellKey
		n := 0
		for col := 0; col < cols; col++ {
			x := b.Min.X + col*config.SimCellW
			k := cellKey{
				top:    ink(img, image.Rect(x, y, x+config.SimCellW, y+half), bg),
				bottom: ink(img, image.Rect(x, y+half, x+config.SimCellW, y+config.SimCellH), bg),
			}
			if n > 0 && k != run {
				sb.WriteString(r.style(run).Render(strings.Repeat(upperHalf, n)))
				n = 0
			}
			run = k
			n++
		}
		if n > 0 {
			sb.WriteString(r.style(run).Render(strings.Repeat(upperHalf, n)))
		}
		if row < rows-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func (r *PanelRenderer) style(k cellKey) lipgloss.Style {
	if s, ok := r.styles[k]; ok {
		return s
	}
	s := lipgloss.NewStyle().Foreground(hex(k.top)).Background(hex(k.bottom))
	r.styles[k] = s
	return s
}

// ink returns the color that best represents rect against bg.
func ink(img *image.RGBA, rect image.Rectangle, bg display.Color) display.Color {
	var counts map[display.Color]int
	best, bestN := bg, 0
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			c := display.FromRGBA(img.RGBAAt(x, y))
			if c == bg {
				continue
			}
			if counts == nil {
				counts = make(map[display.Color]int)
			}
			counts[c]++
			if n := counts[c]; n > bestN {
				best, bestN = c, n
			}
		}
	}
	return best
}

func hex(c display.Color) lipgloss.Color {
	rgba := c.RGBA()
	return lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", rgba.R, rgba.G, rgba.B))
}

// RenderPanel wraps the panel text in a border.
func RenderPanel(content string) string {
	return StylePanelBorder.Render(content)
}

// PanelPoint maps a terminal cell to the panel pixel at the center of it.
// The panel sits under the menu bar and inside a one-cell border.
func PanelPoint(col, row int) (x, y int, ok bool) {
	pc, pr := col-1, row-2
	cols := config.ScreenWidth / config.SimCellW
	rows := config.ScreenHeight / config.SimCellH
	if pc < 0 || pr < 0 || pc >= cols || pr >= rows {
		return 0, 0, false
	}
	return pc*config.SimCellW + config.SimCellW/2, pr*config.SimCellH + config.SimCellH/2, true
}
