package touch

import (
	"fmt"

	"periph.io/x/conn/v3"

	"moto-hud.klederson.com/internal/config"
)

// GT1151 registers.
const (
	regStatus = 0x814E
	regPoints = 0x814F

	statusReady = 0x80
	pointSize   = 8
	maxPoints   = 5
)

// GT1151 is a Goodix touch controller on I2C.
type GT1151 struct {
	dev conn.Conn

	// RawWidth and RawHeight are the controller's coordinate range; points
	// are scaled from it onto the panel.
	RawWidth, RawHeight int
}

// NewGT1151 returns a controller reporting in panel coordinates. dev is
// normally an *i2c.Dev at the controller's address.
func NewGT1151(dev conn.Conn) *GT1151 {
	return &GT1151{dev: dev, RawWidth: config.ScreenWidth, RawHeight: config.ScreenHeight}
}

func (g *GT1151) String() string {
	return fmt.Sprintf("gt1151(%s)", g.dev)
}

// Poll returns the first touch point, if any. The controller's ready flag
// is cleared after every read so the next report can latch.
func (g *GT1151) Poll() (State, error) {
	status, err := g.read(regStatus, 1)
	if err != nil {
		return State{}, fmt.Errorf("gt1151 status: %w", err)
	}
	if status[0]&statusReady == 0 {
		return State{}, nil
	}
	count := int(status[0] & 0x0F)
	if count < 1 || count > maxPoints {
		return State{}, g.ack()
	}
	data, err := g.read(regPoints, count*pointSize)
	if err != nil {
		return State{}, fmt.Errorf("gt1151 points: %w", err)
	}
	if err := g.ack(); err != nil {
		return State{}, err
	}
	x := int(data[1]) | int(data[2])<<8
	y := int(data[3]) | int(data[4])<<8
	if x >= g.RawWidth || y >= g.RawHeight {
		return State{}, nil
	}
	return State{
		Pressed: true,
		X:       x * config.ScreenWidth / g.RawWidth,
		Y:       y * config.ScreenHeight / g.RawHeight,
	}, nil
}

func (g *GT1151) ack() error {
	if err := g.write(regStatus, 0); err != nil {
		return fmt.Errorf("gt1151 ack: %w", err)
	}
	return nil
}

func (g *GT1151) read(reg uint16, n int) ([]byte, error) {
	w := []byte{byte(reg >> 8), byte(reg)}
	r := make([]byte, n)
	if err := g.dev.Tx(w, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (g *GT1151) write(reg uint16, b byte) error {
	return g.dev.Tx([]byte{byte(reg >> 8), byte(reg), b}, nil)
}
