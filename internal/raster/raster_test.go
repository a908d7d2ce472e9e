package raster

import (
	"image"
	"math"
	"testing"

	"moto-hud.klederson.com/internal/display"
)

// recorder is a fake panel that remembers every lit pixel.
type recorder struct {
	fg, bg display.Color
	pix    map[image.Point]display.Color
	texts  []string
}

func newRecorder() *recorder {
	return &recorder{fg: display.Black, bg: display.White, pix: map[image.Point]display.Color{}}
}

func (r *recorder) SetForeground(c display.Color) { r.fg = c }
func (r *recorder) SetBackground(c display.Color) { r.bg = c }
func (r *recorder) DrawPixel(x, y int)            { r.pix[image.Pt(x, y)] = r.fg }
func (r *recorder) DrawHLine(x, y, n int) {
	for i := 0; i < n; i++ {
		r.DrawPixel(x+i, y)
	}
}
func (r *recorder) DrawVLine(x, y, n int) {
	for i := 0; i < n; i++ {
		r.DrawPixel(x, y+i)
	}
}
func (r *recorder) DrawText(x, y int, s string) { r.texts = append(r.texts, s) }
func (r *recorder) ClearScreen()                { r.pix = map[image.Point]display.Color{} }

func (r *recorder) assertDefaults(t *testing.T) {
	t.Helper()
	if r.fg != DefaultForeground || r.bg != DefaultBackground {
		t.Errorf("colors not restored: fg=%#04x bg=%#04x", uint16(r.fg), uint16(r.bg))
	}
}

func TestCirclePointsLieOnCircle(t *testing.T) {
	for _, r := range []int{4, 71, 130} {
		pts := CirclePoints(240, 272, r)
		if len(pts) == 0 {
			t.Fatalf("r=%d: no points", r)
		}
		for _, p := range pts {
			d := math.Hypot(float64(p.X-240), float64(p.Y-272))
			if math.Abs(d-float64(r)) > 1 {
				t.Fatalf("r=%d: point %v at distance %.2f", r, p, d)
			}
		}
		top := image.Pt(240, 272-r)
		right := image.Pt(240+r, 272)
		var sawTop, sawRight bool
		for _, p := range pts {
			sawTop = sawTop || p == top
			sawRight = sawRight || p == right
		}
		if !sawTop || !sawRight {
			t.Errorf("r=%d: missing axis points (top %v right %v)", r, sawTop, sawRight)
		}
	}
}

func TestLinePointsShallowAndSteep(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 int
		steps          int
	}{
		{"shallow", 0, 0, 10, 3, 10},
		{"shallow reversed", 10, 3, 0, 0, 10},
		{"steep", 240, 272, 230, 144, 128},
		{"steep reversed", 230, 144, 240, 272, 128},
		{"vertical", 5, 0, 5, 8, 8},
		{"horizontal", 0, 5, 8, 5, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pts := LinePoints(tt.x0, tt.y0, tt.x1, tt.y1)
			if len(pts) != tt.steps {
				t.Fatalf("len = %d, want %d", len(pts), tt.steps)
			}
			for i := 1; i < len(pts); i++ {
				dx := abs(pts[i].X - pts[i-1].X)
				dy := abs(pts[i].Y - pts[i-1].Y)
				if dx > 1 || dy > 1 {
					t.Fatalf("gap between %v and %v", pts[i-1], pts[i])
				}
			}
		})
	}
}

func TestLineIsDirectionIndependent(t *testing.T) {
	a := LinePoints(3, 40, 90, 12)
	b := LinePoints(90, 12, 3, 40)
	if len(a) != len(b) {
		t.Fatalf("len %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("point %d: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestRectClosesCorner(t *testing.T) {
	rec := newRecorder()
	c := New(rec)
	c.Rect(10, 10, 5, 4, display.Red)
	rec.assertDefaults(t)

	for _, p := range []image.Point{{10, 10}, {15, 10}, {10, 14}, {15, 14}} {
		if rec.pix[p] != display.Red {
			t.Errorf("corner %v not drawn", p)
		}
	}
	if _, ok := rec.pix[image.Pt(12, 12)]; ok {
		t.Error("outline painted its interior")
	}
}

func TestFillRectInteriorOnly(t *testing.T) {
	rec := newRecorder()
	New(rec).FillRect(0, 0, 4, 4, display.Cyan)
	rec.assertDefaults(t)
	if len(rec.pix) != 9 {
		t.Errorf("filled %d pixels, want 9", len(rec.pix))
	}
	if _, ok := rec.pix[image.Pt(0, 0)]; ok {
		t.Error("fill touched the outline")
	}
}

func TestTextRestoresBothColors(t *testing.T) {
	rec := newRecorder()
	New(rec).Text(0, 0, "SET", display.Cyan, display.Black)
	rec.assertDefaults(t)
	if len(rec.texts) != 1 || rec.texts[0] != "SET" {
		t.Errorf("texts = %v", rec.texts)
	}
}

func TestChevronMirrors(t *testing.T) {
	left := newRecorder()
	right := newRecorder()
	New(left).Chevron(17, false, display.White)
	New(right).Chevron(17, true, display.White)
	left.assertDefaults(t)

	if len(left.pix) != len(right.pix) {
		t.Fatalf("pixel counts differ: %d vs %d", len(left.pix), len(right.pix))
	}
	for p := range left.pix {
		m := image.Pt(chevronMirror-p.X, p.Y)
		if _, ok := right.pix[m]; !ok {
			t.Fatalf("mirror of %v missing", p)
		}
	}
	if left.pix[image.Pt(17, chevronTip)] != display.White {
		t.Error("tip not drawn")
	}
}

func TestFillChevronThickens(t *testing.T) {
	rec := newRecorder()
	c := New(rec)
	c.Chevron(0, false, display.White)
	outline := len(rec.pix)
	c.FillChevron(0, false, display.White)
	if len(rec.pix) <= outline {
		t.Errorf("fill added no pixels (%d -> %d)", outline, len(rec.pix))
	}
	for p := range rec.pix {
		if p.X < 0 || p.X > 17+chevronSlant {
			t.Fatalf("pixel %v outside the chevron band", p)
		}
	}
}

func TestPaletteTriangles(t *testing.T) {
	rec := newRecorder()
	c := New(rec)
	c.PaletteOutline(100, 100, 45)
	c.FillPalette(100, 100, 45, display.Magenta)
	rec.assertDefaults(t)

	if got := rec.pix[image.Pt(101, 101)]; got != display.Magenta {
		t.Errorf("upper-left = %#04x, want magenta", uint16(got))
	}
	if got := rec.pix[image.Pt(144, 144)]; got != display.Black {
		t.Errorf("lower-right = %#04x, want black", uint16(got))
	}
	if got := rec.pix[image.Pt(145, 145)]; got != display.Black {
		t.Errorf("outline corner = %#04x", uint16(got))
	}
}

func TestHighlightFrame(t *testing.T) {
	rec := newRecorder()
	New(rec).Highlight(25, 135, 70, 30, display.Highlight)
	rec.assertDefaults(t)
	for _, p := range []image.Point{{20, 130}, {17, 127}, {100, 170}, {103, 173}} {
		if rec.pix[p] != display.Highlight {
			t.Errorf("frame pixel %v missing", p)
		}
	}
	if _, ok := rec.pix[image.Pt(21, 131)]; ok {
		t.Error("frame drawn inside its inner edge")
	}
}

func TestFillBackgroundCoversPanel(t *testing.T) {
	rec := newRecorder()
	New(rec).FillBackground(display.Black)
	if len(rec.pix) != 480*272 {
		t.Errorf("painted %d pixels", len(rec.pix))
	}
	rec.assertDefaults(t)
}
