package display

import (
	"encoding/binary"
	"fmt"
	"os"
)

// FBDev mirrors a Framebuffer onto a Linux 16bpp framebuffer device.
type FBDev struct {
	f   *os.File
	src *Framebuffer
	buf []byte
}

// OpenFBDev opens path (e.g. /dev/fb1) for writing.
func OpenFBDev(path string, src *Framebuffer) (*FBDev, error) {
	f, err := os.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("open framebuffer %s: %w", path, err)
	}
	b := src.Bounds()
	return &FBDev{
		f:   f,
		src: src,
		buf: make([]byte, b.Dx()*b.Dy()*2),
	}, nil
}

// Flush copies the current frame to the device.
func (d *FBDev) Flush() error {
	img := d.src.Snapshot()
	i := 0
	for y := img.Rect.Min.Y; y < img.Rect.Max.Y; y++ {
		for x := img.Rect.Min.X; x < img.Rect.Max.X; x++ {
			c := FromRGBA(img.RGBAAt(x, y))
			binary.LittleEndian.PutUint16(d.buf[i:], uint16(c))
			i += 2
		}
	}
	if _, err := d.f.WriteAt(d.buf, 0); err != nil {
		return fmt.Errorf("write framebuffer: %w", err)
	}
	return nil
}

func (d *FBDev) Close() error {
	return d.f.Close()
}
