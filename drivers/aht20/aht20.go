// Package aht20 provides a driver for the AHT20 temperature/humidity sensor.
// It exposes a two-phase measurement API:
//
//	d.Trigger()              // start a measurement (fast)
//	err := d.Collect(&s)     // fetch when ready; returns ErrNotReady while busy
//
// Read performs trigger + bounded polling and takes the wait function from
// the caller, so a battery node can spend the ~80 ms conversion asleep:
//
//	s, err := d.Read(func(dt time.Duration) { pd.Sleep(dt) })
//
// The driver avoids floating-point; helpers return tenths of units
// (deci-°C and deci-%RH).
package aht20

import (
	"errors"
	"time"

	"tinygo.org/x/drivers"
)

// I2C address.
const Address = 0x38

// Commands and status bits (per datasheet).
const (
	cmdTrigger    = 0xAC
	cmdInitialize = 0xBE
	cmdSoftReset  = 0xBA
	cmdStatus     = 0x71

	statusBusy       = 0x80
	statusCalibrated = 0x08
)

// Errors returned by the driver.
var (
	ErrTimeout  = errors.New("aht20: timeout")
	ErrNotReady = errors.New("aht20: not ready")
)

// Config controls non-hardware behaviour. All fields are optional.
type Config struct {
	// Address defaults to 0x38 if zero.
	Address uint16
	// TriggerHint is the first wait after Trigger in Read. Default 80 ms.
	TriggerHint time.Duration
	// PollInterval is the wait between further Collect attempts. Default 20 ms,
	// which rounds to one 16 ms watchdog class.
	PollInterval time.Duration
	// MaxPolls bounds the Collect attempts after the first. Default 8.
	MaxPolls int
}

// Device wraps an I2C connection to an AHT20 device.
type Device struct {
	bus drivers.I2C
	cfg Config
	buf [7]byte // reuse buffer to avoid allocations
}

// New creates a Device. The I2C bus must already be configured; New does
// not touch the sensor.
func New(bus drivers.I2C) Device {
	return Device{bus: bus, cfg: Config{Address: Address}}
}

// Configure applies cfg and calibrates the sensor if it reports otherwise.
func (d *Device) Configure(cfg Config) error {
	if cfg.Address == 0 {
		cfg.Address = Address
	}
	if cfg.TriggerHint <= 0 {
		cfg.TriggerHint = 80 * time.Millisecond
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 20 * time.Millisecond
	}
	if cfg.MaxPolls <= 0 {
		cfg.MaxPolls = 8
	}
	d.cfg = cfg

	st, err := d.Status()
	if err == nil && st&statusCalibrated != 0 {
		return nil
	}
	return d.bus.Tx(d.cfg.Address, []byte{cmdInitialize, 0x08, 0x00}, nil)
}

// Reset issues a soft reset. Give the device ~20ms afterwards before using.
func (d *Device) Reset() error {
	return d.bus.Tx(d.cfg.Address, []byte{cmdSoftReset}, nil)
}

// Status reads the status byte.
func (d *Device) Status() (byte, error) {
	data := d.buf[:1]
	if err := d.bus.Tx(d.cfg.Address, []byte{cmdStatus}, data); err != nil {
		return 0, err
	}
	return data[0], nil
}

// Trigger starts a measurement. It does not block.
func (d *Device) Trigger() error {
	return d.bus.Tx(d.cfg.Address, []byte{cmdTrigger, 0x33, 0x00}, nil)
}

// Collect reads one measurement into out. ErrNotReady is returned while the
// conversion is still running; bus errors are returned as-is.
func (d *Device) Collect(out *Sample) error {
	data := d.buf[:]
	if err := d.bus.Tx(d.cfg.Address, nil, data); err != nil {
		return err
	}
	if data[0]&statusCalibrated == 0 || data[0]&statusBusy != 0 {
		return ErrNotReady
	}
	out.RawHumidity = (uint32(data[1]) << 12) | (uint32(data[2]) << 4) | (uint32(data[3]) >> 4)
	out.RawTemp = (uint32(data[3]&0x0F) << 16) | (uint32(data[4]) << 8) | uint32(data[5])
	return nil
}

// Read triggers a measurement and polls until it is ready, calling wait for
// every delay.
func (d *Device) Read(wait func(time.Duration)) (Sample, error) {
	var s Sample
	if err := d.Trigger(); err != nil {
		return s, err
	}
	wait(d.cfg.TriggerHint)
	for i := 0; ; i++ {
		err := d.Collect(&s)
		if err != ErrNotReady {
			return s, err
		}
		if i >= d.cfg.MaxPolls {
			return s, ErrTimeout
		}
		wait(d.cfg.PollInterval)
	}
}

// Sample holds raw readings.
type Sample struct {
	RawHumidity uint32
	RawTemp     uint32
}

// DeciRelHumidity returns tenths of %RH.
func (s Sample) DeciRelHumidity() int32 {
	return int32((uint64(s.RawHumidity) * 1000) >> 20)
}

// DeciCelsius returns tenths of °C.
func (s Sample) DeciCelsius() int32 {
	return int32((uint64(s.RawTemp)*2000)>>20) - 500
}
