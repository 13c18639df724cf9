// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package tmc5160

import (
	"encoding/binary"
	"errors"
	"fmt"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// Mode is the SPI mode the TMC5160 requires: clock idle high, data
// captured on the second edge.
const Mode = spi.Mode3

const (
	frameLen  = 5
	addrMask  = 0x7F
	writeFlag = 0x80
)

var (
	// ErrBus is returned when the SPI exchange with the device fails.
	ErrBus = errors.New("tmc5160: bus error")

	// ErrPin is returned when driving the chip select or enable pin fails.
	ErrPin = errors.New("tmc5160: pin error")
)

// DataPacket is the result of one 40 bit datagram exchange: the status
// byte and the 32 bit data word shifted out by the chip.
type DataPacket struct {
	Status Status
	Data   uint32
}

func (p DataPacket) String() string {
	return fmt.Sprintf("0x%02x:0x%08x", uint8(p.Status), p.Data)
}

// Opts holds the configuration for the driver.
type Opts struct {
	// Frequency is the SPI bus clock. The chip accepts up to 8MHz with
	// internal clock timing.
	Frequency physic.Frequency

	// Clock is the clock the chip runs from, internal or external.
	Clock physic.Frequency

	// StepCount is the number of microsteps per full step the motion
	// helpers convert with.
	StepCount int

	// EnablePin is an optional pin wired to DRV_ENN. When absent,
	// Enable and Disable are no-ops.
	EnablePin gpio.PinOut

	// InvertEnable flips the polarity of EnablePin for boards that put
	// an inverting stage in front of DRV_ENN.
	InvertEnable bool
}

// DefaultOpts is the recommended default configuration: 4MHz SPI clock,
// the 12MHz internal oscillator and 256 microstepping.
var DefaultOpts = Opts{
	Frequency: 4 * physic.MegaHertz,
	Clock:     12 * physic.MegaHertz,
	StepCount: 256,
}

// Dev is a handle to a TMC5160 stepper motor driver on an SPI bus.
//
// The exported register fields are local images of the chip's write-only
// configuration registers. Change them through their setters and flush
// them with the matching Update method; the driver never reconstructs
// them from hardware reads.
type Dev struct {
	c  spi.Conn
	cs gpio.PinOut
	en gpio.PinOut

	enInverted bool
	clock      float64
	stepCount  float64

	// status is the status byte of the most recent exchange.
	status Status
	// shadow holds the last value confirmed written per register.
	shadow map[Register]uint32

	GConf     GConf
	ShortConf ShortConf
	DrvConf   DrvConf
	IHoldIRun IHoldIRun
	SwMode    SwMode
	EncMode   EncMode
	ChopConf  ChopConf
	CoolConf  CoolConf
	PwmConf   PwmConf
}

// New returns a driver for a TMC5160 connected on the given SPI port with
// the given chip select pin.
//
// Pass nil opts to use DefaultOpts.
func New(p spi.Port, cs gpio.PinOut, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &DefaultOpts
	}
	freq := opts.Frequency
	if freq == 0 {
		freq = DefaultOpts.Frequency
	}
	clock := opts.Clock
	if clock == 0 {
		clock = DefaultOpts.Clock
	}
	stepCount := opts.StepCount
	if stepCount == 0 {
		stepCount = DefaultOpts.StepCount
	}
	c, err := p.Connect(freq, Mode, 8)
	if err != nil {
		return nil, fmt.Errorf("tmc5160: %v", err)
	}
	if err := cs.Out(gpio.High); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPin, err)
	}
	return &Dev{
		c:          c,
		cs:         cs,
		en:         opts.EnablePin,
		enInverted: opts.InvertEnable,
		clock:      float64(clock) / float64(physic.Hertz),
		stepCount:  float64(stepCount),
		shadow:     map[Register]uint32{},
		ChopConf:   ChopConfFromValue(defaultChopConf),
		PwmConf:    PwmConfFromValue(defaultPwmConf),
	}, nil
}

func (d *Dev) String() string {
	return fmt.Sprintf("TMC5160{%s}", d.cs)
}

// Halt disables the driver stage if an enable pin was configured.
//
// It implements conn.Resource.
func (d *Dev) Halt() error {
	return d.Disable()
}

// encodeFrame packs a register access into the 5 byte wire datagram:
// the address byte with the write flag in bit 7, followed by the 32 bit
// data word big endian.
func encodeFrame(reg Register, write bool, value uint32) [frameLen]byte {
	var f [frameLen]byte
	f[0] = uint8(reg) & addrMask
	if write {
		f[0] |= writeFlag
	}
	binary.BigEndian.PutUint32(f[1:], value)
	return f
}

// decodeFrame splits a received datagram into status byte and data word.
func decodeFrame(f [frameLen]byte) (Status, uint32) {
	return Status(f[0]), binary.BigEndian.Uint32(f[1:])
}

// xfer exchanges one datagram inside a single chip select window. The
// chip select is released on every path, including transfer failure.
//
// The data shifted out by the chip belongs to the previous datagram, not
// to the one being sent; see ReadRegister.
func (d *Dev) xfer(w [frameLen]byte) (DataPacket, error) {
	if err := d.cs.Out(gpio.Low); err != nil {
		return DataPacket{}, fmt.Errorf("%w: %v", ErrPin, err)
	}
	var r [frameLen]byte
	txErr := d.c.Tx(w[:], r[:])
	csErr := d.cs.Out(gpio.High)
	if txErr != nil {
		return DataPacket{}, fmt.Errorf("%w: %v", ErrBus, txErr)
	}
	if csErr != nil {
		return DataPacket{}, fmt.Errorf("%w: %v", ErrPin, csErr)
	}
	status, data := decodeFrame(r)
	d.status = status
	return DataPacket{Status: status, Data: data}, nil
}

// ReadRegister reads a register.
//
// The chip pipelines replies by one datagram: the data received during an
// exchange belongs to the address sent in the previous one. A read is
// therefore two exchanges of the same read datagram, and only the second
// reply carries the requested register.
func (d *Dev) ReadRegister(reg Register) (DataPacket, error) {
	f := encodeFrame(reg, false, 0)
	if _, err := d.xfer(f); err != nil {
		return DataPacket{}, err
	}
	return d.xfer(f)
}

// WriteRegister writes value to a register. The returned packet carries
// the data belonging to the previous datagram.
func (d *Dev) WriteRegister(reg Register, value uint32) (DataPacket, error) {
	pkt, err := d.xfer(encodeFrame(reg, true, value))
	if err != nil {
		return DataPacket{}, err
	}
	d.shadow[reg] = value
	return pkt, nil
}

// LastStatus returns the status byte received with the most recent
// exchange, whatever register it addressed.
func (d *Dev) LastStatus() Status {
	return d.status
}

// Shadowed returns the last value confirmed written to reg. ok is false
// if the register has not been written since construction.
func (d *Dev) Shadowed(reg Register) (value uint32, ok bool) {
	value, ok = d.shadow[reg]
	return
}

// Enable switches on the driver stage through the enable pin. It is a
// no-op when no enable pin was configured.
func (d *Dev) Enable() error {
	// DRV_ENN is active low.
	return d.driveEnable(gpio.Low)
}

// Disable switches off the driver stage through the enable pin. It is a
// no-op when no enable pin was configured.
func (d *Dev) Disable() error {
	return d.driveEnable(gpio.High)
}

func (d *Dev) driveEnable(l gpio.Level) error {
	if d.en == nil {
		return nil
	}
	if d.enInverted {
		l = !l
	}
	if err := d.en.Out(l); err != nil {
		return fmt.Errorf("%w: %v", ErrPin, err)
	}
	return nil
}

// UpdateGConf writes the local GCONF image to the chip.
func (d *Dev) UpdateGConf() (DataPacket, error) {
	return d.WriteRegister(RegGConf, d.GConf.Value())
}

// UpdateShortConf writes the local SHORT_CONF image to the chip.
func (d *Dev) UpdateShortConf() (DataPacket, error) {
	return d.WriteRegister(RegShortConf, d.ShortConf.Value())
}

// UpdateDrvConf writes the local DRV_CONF image to the chip.
func (d *Dev) UpdateDrvConf() (DataPacket, error) {
	return d.WriteRegister(RegDrvConf, d.DrvConf.Value())
}

// UpdateIHoldIRun writes the local IHOLD_IRUN image to the chip.
func (d *Dev) UpdateIHoldIRun() (DataPacket, error) {
	return d.WriteRegister(RegIHoldIRun, d.IHoldIRun.Value())
}

// UpdateSwMode writes the local SW_MODE image to the chip.
func (d *Dev) UpdateSwMode() (DataPacket, error) {
	return d.WriteRegister(RegSwMode, d.SwMode.Value())
}

// UpdateEncMode writes the local ENCMODE image to the chip.
func (d *Dev) UpdateEncMode() (DataPacket, error) {
	return d.WriteRegister(RegEncMode, d.EncMode.Value())
}

// UpdateChopConf writes the local CHOPCONF image to the chip.
func (d *Dev) UpdateChopConf() (DataPacket, error) {
	return d.WriteRegister(RegChopConf, d.ChopConf.Value())
}

// UpdateCoolConf writes the local COOLCONF image to the chip.
func (d *Dev) UpdateCoolConf() (DataPacket, error) {
	return d.WriteRegister(RegCoolConf, d.CoolConf.Value())
}

// UpdatePwmConf writes the local PWMCONF image to the chip.
func (d *Dev) UpdatePwmConf() (DataPacket, error) {
	return d.WriteRegister(RegPwmConf, d.PwmConf.Value())
}

// ClearGStat clears the reset, driver error and undervoltage flags by
// writing ones to GSTAT.
func (d *Dev) ClearGStat() (DataPacket, error) {
	return d.WriteRegister(RegGStat, 0b111)
}

// ReadGConf reads back the GCONF register.
func (d *Dev) ReadGConf() (GConf, error) {
	pkt, err := d.ReadRegister(RegGConf)
	if err != nil {
		return GConf{}, err
	}
	return GConfFromValue(pkt.Data), nil
}

// ReadGStat reads the GSTAT register.
func (d *Dev) ReadGStat() (GStat, error) {
	pkt, err := d.ReadRegister(RegGStat)
	if err != nil {
		return GStat{}, err
	}
	return GStatFromValue(pkt.Data), nil
}

// ReadDrvStatus reads the DRV_STATUS register.
func (d *Dev) ReadDrvStatus() (DrvStatus, error) {
	pkt, err := d.ReadRegister(RegDrvStatus)
	if err != nil {
		return DrvStatus{}, err
	}
	return DrvStatusFromValue(pkt.Data), nil
}

// ReadRampStat reads the RAMP_STAT register.
func (d *Dev) ReadRampStat() (RampStat, error) {
	pkt, err := d.ReadRegister(RegRampStat)
	if err != nil {
		return RampStat{}, err
	}
	return RampStatFromValue(pkt.Data), nil
}

// ReadOffset reads the offset calibration result register.
func (d *Dev) ReadOffset() (uint32, error) {
	pkt, err := d.ReadRegister(RegOffsetRead)
	if err != nil {
		return 0, err
	}
	return pkt.Data, nil
}

// ReadTStep reads the measured time between two microsteps.
func (d *Dev) ReadTStep() (uint32, error) {
	pkt, err := d.ReadRegister(RegTStep)
	if err != nil {
		return 0, err
	}
	return pkt.Data, nil
}

// ReadGlobalScaler reads back the GLOBALSCALER register.
func (d *Dev) ReadGlobalScaler() (uint32, error) {
	pkt, err := d.ReadRegister(RegGlobalScaler)
	if err != nil {
		return 0, err
	}
	return pkt.Data, nil
}

// SetGlobalScaler writes the global current scaler, 0 or 32..255.
func (d *Dev) SetGlobalScaler(v uint32) (DataPacket, error) {
	return d.WriteRegister(RegGlobalScaler, v)
}

// SetTPowerDown writes the delay before current power down after
// standstill.
func (d *Dev) SetTPowerDown(v uint32) (DataPacket, error) {
	return d.WriteRegister(RegTPowerDown, v)
}

// SetTPwmThrs writes the upper velocity threshold for stealthChop.
func (d *Dev) SetTPwmThrs(v uint32) (DataPacket, error) {
	return d.WriteRegister(RegTPwmThrs, v)
}

// SetTCoolThrs writes the lower velocity threshold for coolStep and
// stallGuard.
func (d *Dev) SetTCoolThrs(v uint32) (DataPacket, error) {
	return d.WriteRegister(RegTCoolThrs, v)
}

// SetRampMode selects the ramp generator mode.
func (d *Dev) SetRampMode(m RampMode) (DataPacket, error) {
	return d.WriteRegister(RegRampMode, uint32(m))
}

// SetVStart writes the motor start velocity.
func (d *Dev) SetVStart(v uint32) (DataPacket, error) {
	return d.WriteRegister(RegVStart, v)
}

// SetA1 writes the first acceleration between VSTART and V1.
func (d *Dev) SetA1(v uint32) (DataPacket, error) {
	return d.WriteRegister(RegA1, v)
}

// SetV1 writes the first phase threshold velocity.
func (d *Dev) SetV1(v uint32) (DataPacket, error) {
	return d.WriteRegister(RegV1, v)
}

// SetAMax writes the acceleration between V1 and VMAX.
func (d *Dev) SetAMax(v uint32) (DataPacket, error) {
	return d.WriteRegister(RegAMax, v)
}

// SetVMax writes the target velocity of the ramp generator.
func (d *Dev) SetVMax(v uint32) (DataPacket, error) {
	return d.WriteRegister(RegVMax, v)
}

// SetDMax writes the deceleration between VMAX and V1.
func (d *Dev) SetDMax(v uint32) (DataPacket, error) {
	return d.WriteRegister(RegDMax, v)
}

// SetD1 writes the deceleration between V1 and VSTOP. Must not be zero
// in positioning mode.
func (d *Dev) SetD1(v uint32) (DataPacket, error) {
	return d.WriteRegister(RegD1, v)
}

// SetVStop writes the motor stop velocity. Keep it above VSTART.
func (d *Dev) SetVStop(v uint32) (DataPacket, error) {
	return d.WriteRegister(RegVStop, v)
}

// SetPwmAuto writes the PWM_AUTO register.
func (d *Dev) SetPwmAuto(v uint32) (DataPacket, error) {
	return d.WriteRegister(RegPwmAuto, v)
}
