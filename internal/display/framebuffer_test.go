package display

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestColorRoundTrip(t *testing.T) {
	for _, c := range []Color{Black, White, Magenta, Cyan, Red, Highlight} {
		if got := FromRGBA(c.RGBA()); got != c {
			t.Errorf("FromRGBA(%#04x.RGBA()) = %#04x", uint16(c), uint16(got))
		}
	}
}

func TestFramebufferDrawsAndClips(t *testing.T) {
	fb := NewFramebuffer(20, 10)
	fb.SetForeground(Red)
	fb.DrawPixel(3, 4)
	fb.DrawPixel(-1, 4)
	fb.DrawPixel(25, 25)
	fb.DrawHLine(15, 0, 10)
	fb.DrawVLine(0, 5, 10)

	if got := fb.At(3, 4); got != Red {
		t.Errorf("pixel (3,4) = %#04x, want red", uint16(got))
	}
	if got := fb.At(19, 0); got != Red {
		t.Errorf("hline end = %#04x, want red", uint16(got))
	}
	if got := fb.At(0, 9); got != Red {
		t.Errorf("vline end = %#04x, want red", uint16(got))
	}
	if got := fb.At(14, 0); got != White {
		t.Errorf("pixel before hline = %#04x, want white", uint16(got))
	}
}

func TestFramebufferClearUsesBackground(t *testing.T) {
	fb := NewFramebuffer(4, 4)
	fb.SetBackground(Magenta)
	fb.ClearScreen()
	if got := fb.At(2, 2); got != Magenta {
		t.Errorf("cleared pixel = %#04x, want magenta", uint16(got))
	}
}

func TestFramebufferText(t *testing.T) {
	fb := NewFramebuffer(64, 32)
	fb.SetForeground(Black)
	fb.SetBackground(Cyan)
	fb.DrawText(0, 0, "H")

	var fg, bg int
	for y := 0; y < 24; y++ {
		for x := 0; x < 16; x++ {
			switch fb.At(x, y) {
			case Black:
				fg++
			case Cyan:
				bg++
			}
		}
	}
	if fg == 0 {
		t.Error("glyph drew no foreground pixels")
	}
	if fg+bg != 16*24 {
		t.Errorf("cell not fully painted: fg=%d bg=%d", fg, bg)
	}
	if got := fb.At(20, 5); got != White {
		t.Errorf("pixel past the cell = %#04x, want untouched white", uint16(got))
	}
}

func TestWritePNG(t *testing.T) {
	fb := NewFramebuffer(8, 8)
	var buf bytes.Buffer
	if err := fb.WritePNG(&buf); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 8 {
		t.Errorf("width = %d", img.Bounds().Dx())
	}
}

func TestFBDevFlush(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fb")
	if err := os.WriteFile(path, nil, 0o600); err != nil {
		t.Fatal(err)
	}
	fb := NewFramebuffer(2, 1)
	fb.SetForeground(Red)
	fb.DrawPixel(1, 0)

	dev, err := OpenFBDev(path, fb)
	if err != nil {
		t.Fatal(err)
	}
	defer dev.Close()
	if err := dev.Flush(); err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{0xFF, 0xFF, 0x20, 0xFA}
	if !bytes.Equal(got, want) {
		t.Errorf("fbdev bytes = % x, want % x", got, want)
	}
}
