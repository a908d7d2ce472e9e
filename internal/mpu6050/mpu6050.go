// Package mpu6050 reads the inertial sensor over an I2C bus.
//
// Only the register-level exchange lives here; converting samples to
// angles is done by the orientation package.
package mpu6050

import (
	"encoding/binary"
	"errors"
	"fmt"

	"moto-hud.klederson.com/internal/config"
	"moto-hud.klederson.com/internal/orientation"
	"tinygo.org/x/drivers"
)

// Registers.
const (
	RegSampleRateDiv = 0x19
	RegGyroConfig    = 0x1B
	RegAccelConfig   = 0x1C
	RegAccelXOutH    = 0x3B
	RegTempOutH      = 0x41
	RegGyroXOutH     = 0x43
	RegPowerMgmt1    = 0x6B
	RegWhoAmI        = 0x75

	WhoAmI = 0x68
)

// ErrIdentityMismatch means WHO_AM_I did not answer 0x68 and the sensor was
// left unconfigured.
var ErrIdentityMismatch = errors.New("mpu6050: identity mismatch")

// IdentityError carries the identity that was read back.
type IdentityError struct {
	Got byte
}

func (e *IdentityError) Error() string {
	return fmt.Sprintf("mpu6050: WHO_AM_I = 0x%02X, want 0x%02X", e.Got, WhoAmI)
}

func (e *IdentityError) Unwrap() error { return ErrIdentityMismatch }

// Device is an MPU6050 on a shared bus. Bus timeouts are the bus's concern.
type Device struct {
	bus  drivers.I2C
	addr uint16
	buf  [6]byte
}

// New returns a device at the default address.
func New(bus drivers.I2C) *Device {
	return &Device{bus: bus, addr: config.SensorAddr}
}

// NewAt returns a device at addr.
func NewAt(bus drivers.I2C, addr uint16) *Device {
	return &Device{bus: bus, addr: addr}
}

// Configure checks the identity, wakes the sensor and selects 1 kHz / 8
// sampling, ±2 g and ±250 °/s. On an identity mismatch nothing is written.
func (d *Device) Configure() error {
	id, err := d.readRegister(RegWhoAmI)
	if err != nil {
		return err
	}
	if id != WhoAmI {
		return &IdentityError{Got: id}
	}
	writes := []struct{ reg, val byte }{
		{RegPowerMgmt1, 0x00},
		{RegSampleRateDiv, 0x07},
		{RegAccelConfig, 0x00},
		{RegGyroConfig, 0x00},
	}
	for _, w := range writes {
		if err := d.writeRegister(w.reg, w.val); err != nil {
			return err
		}
	}
	return nil
}

// ReadAcceleration returns one raw accelerometer sample.
func (d *Device) ReadAcceleration() (orientation.Sample, error) {
	if err := d.readBurst(RegAccelXOutH, d.buf[:]); err != nil {
		return orientation.Sample{}, err
	}
	return orientation.Sample{
		X: int16(binary.BigEndian.Uint16(d.buf[0:])),
		Y: int16(binary.BigEndian.Uint16(d.buf[2:])),
		Z: int16(binary.BigEndian.Uint16(d.buf[4:])),
	}, nil
}

// ReadRotation returns angular rate in °/s. It is sampled for display only.
func (d *Device) ReadRotation() (x, y, z float64, err error) {
	if err := d.readBurst(RegGyroXOutH, d.buf[:]); err != nil {
		return 0, 0, 0, err
	}
	x = float64(int16(binary.BigEndian.Uint16(d.buf[0:]))) / config.GyroDivisor
	y = float64(int16(binary.BigEndian.Uint16(d.buf[2:]))) / config.GyroDivisor
	z = float64(int16(binary.BigEndian.Uint16(d.buf[4:]))) / config.GyroDivisor
	return x, y, z, nil
}

// ReadTemperature returns the die temperature in °C.
func (d *Device) ReadTemperature() (float64, error) {
	if err := d.readBurst(RegTempOutH, d.buf[:2]); err != nil {
		return 0, err
	}
	raw := int16(binary.BigEndian.Uint16(d.buf[0:]))
	return float64(raw)/340 + 36.53, nil
}

func (d *Device) readRegister(reg byte) (byte, error) {
	var b [1]byte
	if err := d.readBurst(reg, b[:]); err != nil {
		return 0, err
	}
	return b[0], nil
}

func (d *Device) readBurst(reg byte, buf []byte) error {
	if err := d.bus.Tx(d.addr, []byte{reg}, buf); err != nil {
		return fmt.Errorf("mpu6050: read 0x%02X (%d bytes): %w", reg, len(buf), err)
	}
	return nil
}

func (d *Device) writeRegister(reg, val byte) error {
	if err := d.bus.Tx(d.addr, []byte{reg, val}, nil); err != nil {
		return fmt.Errorf("mpu6050: write 0x%02X: %w", reg, err)
	}
	return nil
}
