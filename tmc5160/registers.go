// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package tmc5160

// Register is a TMC5160 register address. Bit 7 of the address byte on the
// wire selects write access and is not part of the address itself.
type Register uint8

// Register addresses per the TMC5160A datasheet, rev. 1.17.
const (
	// General configuration registers.
	RegGConf        Register = 0x00 // Global configuration flags
	RegGStat        Register = 0x01 // Global status flags
	RegIFCnt        Register = 0x02 // UART transmission counter
	RegSlaveConf    Register = 0x03 // UART slave configuration
	RegIOIN         Register = 0x04 // State of all input pins
	RegXCompare     Register = 0x05 // Position comparison register
	RegOTPProg      Register = 0x06 // OTP programming register
	RegOTPRead      Register = 0x07 // OTP read register
	RegFactoryConf  Register = 0x08 // Factory configuration (clock trim)
	RegShortConf    Register = 0x09 // Short detector configuration
	RegDrvConf      Register = 0x0A // Gate driver configuration
	RegGlobalScaler Register = 0x0B // Global scaling of motor current
	RegOffsetRead   Register = 0x0C // Offset calibration results

	// Velocity dependent driver feature control registers.
	RegIHoldIRun  Register = 0x10 // Driver current control
	RegTPowerDown Register = 0x11 // Delay before power down after standstill
	RegTStep      Register = 0x12 // Measured time between two microsteps
	RegTPwmThrs   Register = 0x13 // Upper velocity threshold for stealthChop
	RegTCoolThrs  Register = 0x14 // Lower velocity threshold for coolStep/stallGuard
	RegTHigh      Register = 0x15 // Velocity threshold for chopper mode switch

	// Ramp generator motion control registers.
	RegRampMode  Register = 0x20 // Driving mode (positioning, velocity, hold)
	RegXActual   Register = 0x21 // Actual motor position
	RegVActual   Register = 0x22 // Actual motor velocity from the ramp generator
	RegVStart    Register = 0x23 // Motor start velocity
	RegA1        Register = 0x24 // First acceleration between VSTART and V1
	RegV1        Register = 0x25 // First phase threshold velocity
	RegAMax      Register = 0x26 // Second acceleration between V1 and VMAX
	RegVMax      Register = 0x27 // Target velocity in velocity mode
	RegDMax      Register = 0x28 // Deceleration between VMAX and V1
	RegD1        Register = 0x2A // Deceleration between V1 and VSTOP
	RegVStop     Register = 0x2B // Motor stop velocity
	RegTZeroWait Register = 0x2C // Waiting time after ramping down to zero
	RegXTarget   Register = 0x2D // Target position for ramp mode

	// Ramp generator driver feature control registers.
	RegVDCMin   Register = 0x33 // Minimum velocity for dcStep commutation
	RegSwMode   Register = 0x34 // Reference switch mode configuration
	RegRampStat Register = 0x35 // Ramp status and switch event status
	RegXLatch   Register = 0x36 // Position latched on a switch event

	// Encoder registers.
	RegEncMode      Register = 0x38 // Encoder configuration
	RegXEnc         Register = 0x39 // Actual encoder position
	RegEncConst     Register = 0x3A // Accumulation constant
	RegEncStatus    Register = 0x3B // Encoder status information
	RegEncLatch     Register = 0x3C // Encoder position latched on N event
	RegEncDeviation Register = 0x3D // Maximum deviation between encoder and XACTUAL

	// Motor driver registers.
	RegMSLUT0     Register = 0x60 // Microstep table entry 0
	RegMSLUT1     Register = 0x61 // Microstep table entry 1
	RegMSLUT2     Register = 0x62 // Microstep table entry 2
	RegMSLUT3     Register = 0x63 // Microstep table entry 3
	RegMSLUT4     Register = 0x64 // Microstep table entry 4
	RegMSLUT5     Register = 0x65 // Microstep table entry 5
	RegMSLUT6     Register = 0x66 // Microstep table entry 6
	RegMSLUT7     Register = 0x67 // Microstep table entry 7
	RegMSLUTSel   Register = 0x68 // Microstep table segmentation
	RegMSLUTStart Register = 0x69 // Absolute current at table entries 0 and 256
	RegMSCnt      Register = 0x6A // Actual position in the microstep table
	RegMSCurAct   Register = 0x6B // Actual microstep current
	RegChopConf   Register = 0x6C // Chopper and driver configuration
	RegCoolConf   Register = 0x6D // coolStep and stallGuard2 configuration
	RegDCCtrl     Register = 0x6E // dcStep automatic commutation configuration
	RegDrvStatus  Register = 0x6F // stallGuard2 result and driver error flags
	RegPwmConf    Register = 0x70 // stealthChop voltage PWM configuration
	RegPwmScale   Register = 0x71 // Results of the stealthChop amplitude regulator
	RegPwmAuto    Register = 0x72 // Automatically determined PWM configuration
	RegLostSteps  Register = 0x73 // Input steps skipped due to dcStep
)

// Chip reset defaults for registers that cannot be read back.
const (
	defaultChopConf uint32 = 0x10410150
	defaultPwmConf  uint32 = 0xC40C001E
)

// RampMode selects how the ramp generator drives the motor.
type RampMode uint32

const (
	// Positioning drives towards XTARGET using all A, D and V parameters.
	Positioning RampMode = 0x00
	// VelocityPos holds a positive VMAX using AMAX acceleration.
	VelocityPos RampMode = 0x01
	// VelocityNeg holds a negative VMAX using AMAX acceleration.
	VelocityNeg RampMode = 0x02
	// Hold keeps the velocity unchanged unless a stop event occurs.
	Hold RampMode = 0x03
)

// Bit range helpers shared by the register views below.

func getBits(v uint32, shift, width uint) uint32 {
	return (v >> shift) & (1<<width - 1)
}

func putBits(v uint32, shift, width uint, x uint32) uint32 {
	mask := uint32(1<<width-1) << shift
	return v&^mask | x<<shift&mask
}

func getFlag(v uint32, shift uint) bool {
	return v>>shift&1 != 0
}

func putFlag(v uint32, shift uint, on bool) uint32 {
	if on {
		return v | 1<<shift
	}
	return v &^ (1 << shift)
}

// GConf is a view over the GCONF register (0x00).
//
// The setters return the receiver so that several fields can be changed in
// one chain before the value is written back with (*Dev).UpdateGConf.
type GConf struct {
	v uint32
}

// GConfFromValue reinterprets a raw register value as GCONF.
func GConfFromValue(v uint32) GConf { return GConf{v: v} }

// Value returns the raw 32 bit register value.
func (g *GConf) Value() uint32 { return g.v }

func (g *GConf) Recalibrate() bool       { return getFlag(g.v, 0) }
func (g *GConf) FastStandstill() bool    { return getFlag(g.v, 1) }
func (g *GConf) EnPwmMode() bool         { return getFlag(g.v, 2) }
func (g *GConf) MultistepFilt() bool     { return getFlag(g.v, 3) }
func (g *GConf) Shaft() bool             { return getFlag(g.v, 4) }
func (g *GConf) Diag0Error() bool        { return getFlag(g.v, 5) }
func (g *GConf) Diag0OTPW() bool         { return getFlag(g.v, 6) }
func (g *GConf) Diag0Stall() bool        { return getFlag(g.v, 7) }
func (g *GConf) Diag1Stall() bool        { return getFlag(g.v, 8) }
func (g *GConf) Diag1Index() bool        { return getFlag(g.v, 9) }
func (g *GConf) Diag1OnState() bool      { return getFlag(g.v, 10) }
func (g *GConf) Diag1StepsSkipped() bool { return getFlag(g.v, 11) }
func (g *GConf) Diag0PushPull() bool     { return getFlag(g.v, 12) }
func (g *GConf) Diag1PushPull() bool     { return getFlag(g.v, 13) }
func (g *GConf) SmallHysteresis() bool   { return getFlag(g.v, 14) }
func (g *GConf) StopEnable() bool        { return getFlag(g.v, 15) }
func (g *GConf) DirectMode() bool        { return getFlag(g.v, 16) }

func (g *GConf) SetRecalibrate(on bool) *GConf       { g.v = putFlag(g.v, 0, on); return g }
func (g *GConf) SetFastStandstill(on bool) *GConf    { g.v = putFlag(g.v, 1, on); return g }
func (g *GConf) SetEnPwmMode(on bool) *GConf         { g.v = putFlag(g.v, 2, on); return g }
func (g *GConf) SetMultistepFilt(on bool) *GConf     { g.v = putFlag(g.v, 3, on); return g }
func (g *GConf) SetShaft(on bool) *GConf             { g.v = putFlag(g.v, 4, on); return g }
func (g *GConf) SetDiag0Error(on bool) *GConf        { g.v = putFlag(g.v, 5, on); return g }
func (g *GConf) SetDiag0OTPW(on bool) *GConf         { g.v = putFlag(g.v, 6, on); return g }
func (g *GConf) SetDiag0Stall(on bool) *GConf        { g.v = putFlag(g.v, 7, on); return g }
func (g *GConf) SetDiag1Stall(on bool) *GConf        { g.v = putFlag(g.v, 8, on); return g }
func (g *GConf) SetDiag1Index(on bool) *GConf        { g.v = putFlag(g.v, 9, on); return g }
func (g *GConf) SetDiag1OnState(on bool) *GConf      { g.v = putFlag(g.v, 10, on); return g }
func (g *GConf) SetDiag1StepsSkipped(on bool) *GConf { g.v = putFlag(g.v, 11, on); return g }
func (g *GConf) SetDiag0PushPull(on bool) *GConf     { g.v = putFlag(g.v, 12, on); return g }
func (g *GConf) SetDiag1PushPull(on bool) *GConf     { g.v = putFlag(g.v, 13, on); return g }
func (g *GConf) SetSmallHysteresis(on bool) *GConf   { g.v = putFlag(g.v, 14, on); return g }
func (g *GConf) SetStopEnable(on bool) *GConf        { g.v = putFlag(g.v, 15, on); return g }
func (g *GConf) SetDirectMode(on bool) *GConf        { g.v = putFlag(g.v, 16, on); return g }

// GStat is a view over the GSTAT register (0x01). All fields are set by the
// chip and cleared by writing a one to them.
type GStat struct {
	v uint32
}

// GStatFromValue reinterprets a raw register value as GSTAT.
func GStatFromValue(v uint32) GStat { return GStat{v: v} }

// Value returns the raw 32 bit register value.
func (g GStat) Value() uint32 { return g.v }

// Reset reports that the chip has been reset since the flag was cleared.
func (g GStat) Reset() bool { return getFlag(g.v, 0) }

// DrvErr reports that the driver shut down due to overtemperature or a
// short circuit. Read DRV_STATUS for details.
func (g GStat) DrvErr() bool { return getFlag(g.v, 1) }

// UvCP reports an undervoltage on the charge pump.
func (g GStat) UvCP() bool { return getFlag(g.v, 2) }

// ShortConf is a view over the SHORT_CONF register (0x09, write only).
type ShortConf struct {
	v uint32
}

// ShortConfFromValue reinterprets a raw register value as SHORT_CONF.
func ShortConfFromValue(v uint32) ShortConf { return ShortConf{v: v} }

// Value returns the raw 32 bit register value.
func (s *ShortConf) Value() uint32 { return s.v }

func (s *ShortConf) S2VSLevel() uint8   { return uint8(getBits(s.v, 0, 4)) }
func (s *ShortConf) S2GLevel() uint8    { return uint8(getBits(s.v, 8, 4)) }
func (s *ShortConf) ShortFilter() uint8 { return uint8(getBits(s.v, 16, 2)) }
func (s *ShortConf) ShortDelay() bool   { return getFlag(s.v, 18) }

func (s *ShortConf) SetS2VSLevel(x uint8) *ShortConf {
	s.v = putBits(s.v, 0, 4, uint32(x))
	return s
}
func (s *ShortConf) SetS2GLevel(x uint8) *ShortConf {
	s.v = putBits(s.v, 8, 4, uint32(x))
	return s
}
func (s *ShortConf) SetShortFilter(x uint8) *ShortConf {
	s.v = putBits(s.v, 16, 2, uint32(x))
	return s
}
func (s *ShortConf) SetShortDelay(on bool) *ShortConf {
	s.v = putFlag(s.v, 18, on)
	return s
}

// DrvConf is a view over the DRV_CONF register (0x0A, write only).
type DrvConf struct {
	v uint32
}

// DrvConfFromValue reinterprets a raw register value as DRV_CONF.
func DrvConfFromValue(v uint32) DrvConf { return DrvConf{v: v} }

// Value returns the raw 32 bit register value.
func (d *DrvConf) Value() uint32 { return d.v }

func (d *DrvConf) BBMTime() uint8     { return uint8(getBits(d.v, 0, 5)) }
func (d *DrvConf) BBMClks() uint8     { return uint8(getBits(d.v, 8, 4)) }
func (d *DrvConf) OTSelect() uint8    { return uint8(getBits(d.v, 16, 2)) }
func (d *DrvConf) DrvStrength() uint8 { return uint8(getBits(d.v, 18, 2)) }
func (d *DrvConf) FiltISense() uint8  { return uint8(getBits(d.v, 20, 2)) }

func (d *DrvConf) SetBBMTime(x uint8) *DrvConf {
	d.v = putBits(d.v, 0, 5, uint32(x))
	return d
}
func (d *DrvConf) SetBBMClks(x uint8) *DrvConf {
	d.v = putBits(d.v, 8, 4, uint32(x))
	return d
}
func (d *DrvConf) SetOTSelect(x uint8) *DrvConf {
	d.v = putBits(d.v, 16, 2, uint32(x))
	return d
}
func (d *DrvConf) SetDrvStrength(x uint8) *DrvConf {
	d.v = putBits(d.v, 18, 2, uint32(x))
	return d
}
func (d *DrvConf) SetFiltISense(x uint8) *DrvConf {
	d.v = putBits(d.v, 20, 2, uint32(x))
	return d
}

// IHoldIRun is a view over the IHOLD_IRUN register (0x10, write only).
type IHoldIRun struct {
	v uint32
}

// IHoldIRunFromValue reinterprets a raw register value as IHOLD_IRUN.
func IHoldIRunFromValue(v uint32) IHoldIRun { return IHoldIRun{v: v} }

// Value returns the raw 32 bit register value.
func (i *IHoldIRun) Value() uint32 { return i.v }

// IHold is the standstill current, 0=1/32 up to 31=32/32.
func (i *IHoldIRun) IHold() uint8 { return uint8(getBits(i.v, 0, 5)) }

// IRun is the motor run current, 0=1/32 up to 31=32/32.
func (i *IHoldIRun) IRun() uint8 { return uint8(getBits(i.v, 8, 5)) }

// IHoldDelay is the number of clock cycles for motor power down after
// standstill, in steps of 2^18 clocks.
func (i *IHoldIRun) IHoldDelay() uint8 { return uint8(getBits(i.v, 16, 4)) }

func (i *IHoldIRun) SetIHold(x uint8) *IHoldIRun {
	i.v = putBits(i.v, 0, 5, uint32(x))
	return i
}
func (i *IHoldIRun) SetIRun(x uint8) *IHoldIRun {
	i.v = putBits(i.v, 8, 5, uint32(x))
	return i
}
func (i *IHoldIRun) SetIHoldDelay(x uint8) *IHoldIRun {
	i.v = putBits(i.v, 16, 4, uint32(x))
	return i
}

// SwMode is a view over the SW_MODE register (0x34).
type SwMode struct {
	v uint32
}

// SwModeFromValue reinterprets a raw register value as SW_MODE.
func SwModeFromValue(v uint32) SwMode { return SwMode{v: v} }

// Value returns the raw 32 bit register value.
func (s *SwMode) Value() uint32 { return s.v }

func (s *SwMode) StopLEnable() bool    { return getFlag(s.v, 0) }
func (s *SwMode) StopREnable() bool    { return getFlag(s.v, 1) }
func (s *SwMode) PolStopL() bool       { return getFlag(s.v, 2) }
func (s *SwMode) PolStopR() bool       { return getFlag(s.v, 3) }
func (s *SwMode) SwapLR() bool         { return getFlag(s.v, 4) }
func (s *SwMode) LatchLActive() bool   { return getFlag(s.v, 5) }
func (s *SwMode) LatchLInactive() bool { return getFlag(s.v, 6) }
func (s *SwMode) LatchRActive() bool   { return getFlag(s.v, 7) }
func (s *SwMode) LatchRInactive() bool { return getFlag(s.v, 8) }
func (s *SwMode) EnLatchEncoder() bool { return getFlag(s.v, 9) }
func (s *SwMode) SGStop() bool         { return getFlag(s.v, 10) }
func (s *SwMode) EnSoftStop() bool     { return getFlag(s.v, 11) }

func (s *SwMode) SetStopLEnable(on bool) *SwMode    { s.v = putFlag(s.v, 0, on); return s }
func (s *SwMode) SetStopREnable(on bool) *SwMode    { s.v = putFlag(s.v, 1, on); return s }
func (s *SwMode) SetPolStopL(on bool) *SwMode       { s.v = putFlag(s.v, 2, on); return s }
func (s *SwMode) SetPolStopR(on bool) *SwMode       { s.v = putFlag(s.v, 3, on); return s }
func (s *SwMode) SetSwapLR(on bool) *SwMode         { s.v = putFlag(s.v, 4, on); return s }
func (s *SwMode) SetLatchLActive(on bool) *SwMode   { s.v = putFlag(s.v, 5, on); return s }
func (s *SwMode) SetLatchLInactive(on bool) *SwMode { s.v = putFlag(s.v, 6, on); return s }
func (s *SwMode) SetLatchRActive(on bool) *SwMode   { s.v = putFlag(s.v, 7, on); return s }
func (s *SwMode) SetLatchRInactive(on bool) *SwMode { s.v = putFlag(s.v, 8, on); return s }
func (s *SwMode) SetEnLatchEncoder(on bool) *SwMode { s.v = putFlag(s.v, 9, on); return s }
func (s *SwMode) SetSGStop(on bool) *SwMode         { s.v = putFlag(s.v, 10, on); return s }
func (s *SwMode) SetEnSoftStop(on bool) *SwMode     { s.v = putFlag(s.v, 11, on); return s }

// RampStat is a view over the RAMP_STAT register (0x35, read only).
type RampStat struct {
	v uint32
}

// RampStatFromValue reinterprets a raw register value as RAMP_STAT.
func RampStatFromValue(v uint32) RampStat { return RampStat{v: v} }

// Value returns the raw 32 bit register value.
func (r RampStat) Value() uint32 { return r.v }

func (r RampStat) StatusStopL() bool     { return getFlag(r.v, 0) }
func (r RampStat) StatusStopR() bool     { return getFlag(r.v, 1) }
func (r RampStat) StatusLatchL() bool    { return getFlag(r.v, 2) }
func (r RampStat) StatusLatchR() bool    { return getFlag(r.v, 3) }
func (r RampStat) EventStopL() bool      { return getFlag(r.v, 4) }
func (r RampStat) EventStopR() bool      { return getFlag(r.v, 5) }
func (r RampStat) EventStopSG() bool     { return getFlag(r.v, 6) }
func (r RampStat) EventPosReached() bool { return getFlag(r.v, 7) }
func (r RampStat) VelocityReached() bool { return getFlag(r.v, 8) }
func (r RampStat) PositionReached() bool { return getFlag(r.v, 9) }
func (r RampStat) VZero() bool           { return getFlag(r.v, 10) }
func (r RampStat) TZeroWaitActive() bool { return getFlag(r.v, 11) }
func (r RampStat) SecondMove() bool      { return getFlag(r.v, 12) }
func (r RampStat) StatusSG() bool        { return getFlag(r.v, 13) }

// EncMode is a view over the ENCMODE register (0x38).
type EncMode struct {
	v uint32
}

// EncModeFromValue reinterprets a raw register value as ENCMODE.
func EncModeFromValue(v uint32) EncMode { return EncMode{v: v} }

// Value returns the raw 32 bit register value.
func (e *EncMode) Value() uint32 { return e.v }

func (e *EncMode) PolA() bool          { return getFlag(e.v, 0) }
func (e *EncMode) PolB() bool          { return getFlag(e.v, 1) }
func (e *EncMode) PolN() bool          { return getFlag(e.v, 2) }
func (e *EncMode) IgnoreAB() bool      { return getFlag(e.v, 3) }
func (e *EncMode) ClrCont() bool       { return getFlag(e.v, 4) }
func (e *EncMode) ClrOnce() bool       { return getFlag(e.v, 5) }
func (e *EncMode) PosEdge() bool       { return getFlag(e.v, 6) }
func (e *EncMode) NegEdge() bool       { return getFlag(e.v, 7) }
func (e *EncMode) ClrEncX() bool       { return getFlag(e.v, 8) }
func (e *EncMode) LatchXActual() bool  { return getFlag(e.v, 9) }
func (e *EncMode) EncSelDecimal() bool { return getFlag(e.v, 10) }

func (e *EncMode) SetPolA(on bool) *EncMode          { e.v = putFlag(e.v, 0, on); return e }
func (e *EncMode) SetPolB(on bool) *EncMode          { e.v = putFlag(e.v, 1, on); return e }
func (e *EncMode) SetPolN(on bool) *EncMode          { e.v = putFlag(e.v, 2, on); return e }
func (e *EncMode) SetIgnoreAB(on bool) *EncMode      { e.v = putFlag(e.v, 3, on); return e }
func (e *EncMode) SetClrCont(on bool) *EncMode       { e.v = putFlag(e.v, 4, on); return e }
func (e *EncMode) SetClrOnce(on bool) *EncMode       { e.v = putFlag(e.v, 5, on); return e }
func (e *EncMode) SetPosEdge(on bool) *EncMode       { e.v = putFlag(e.v, 6, on); return e }
func (e *EncMode) SetNegEdge(on bool) *EncMode       { e.v = putFlag(e.v, 7, on); return e }
func (e *EncMode) SetClrEncX(on bool) *EncMode       { e.v = putFlag(e.v, 8, on); return e }
func (e *EncMode) SetLatchXActual(on bool) *EncMode  { e.v = putFlag(e.v, 9, on); return e }
func (e *EncMode) SetEncSelDecimal(on bool) *EncMode { e.v = putFlag(e.v, 10, on); return e }

// ChopConf is a view over the CHOPCONF register (0x6C).
type ChopConf struct {
	v uint32
}

// ChopConfFromValue reinterprets a raw register value as CHOPCONF.
func ChopConfFromValue(v uint32) ChopConf { return ChopConf{v: v} }

// Value returns the raw 32 bit register value.
func (c *ChopConf) Value() uint32 { return c.v }

// TOff is the chopper off time. 0 disables the driver stage.
func (c *ChopConf) TOff() uint8 { return uint8(getBits(c.v, 0, 4)) }

// HStrt is the hysteresis start value added to HEnd.
func (c *ChopConf) HStrt() uint8 { return uint8(getBits(c.v, 4, 3)) }

// HEnd is the hysteresis low value, offset by -3.
func (c *ChopConf) HEnd() uint8    { return uint8(getBits(c.v, 7, 4)) }
func (c *ChopConf) FD3() bool      { return getFlag(c.v, 11) }
func (c *ChopConf) DisFDCC() bool  { return getFlag(c.v, 12) }
func (c *ChopConf) Chm() bool      { return getFlag(c.v, 14) }
func (c *ChopConf) TBL() uint8     { return uint8(getBits(c.v, 15, 2)) }
func (c *ChopConf) VHighFS() bool  { return getFlag(c.v, 18) }
func (c *ChopConf) VHighChm() bool { return getFlag(c.v, 19) }
func (c *ChopConf) TPFD() uint8    { return uint8(getBits(c.v, 20, 4)) }

// MRes selects the microstep resolution, 0=256 down to 8=fullstep.
func (c *ChopConf) MRes() uint8   { return uint8(getBits(c.v, 24, 4)) }
func (c *ChopConf) IntPol() bool  { return getFlag(c.v, 28) }
func (c *ChopConf) DEdge() bool   { return getFlag(c.v, 29) }
func (c *ChopConf) DisS2G() bool  { return getFlag(c.v, 30) }
func (c *ChopConf) DisS2VS() bool { return getFlag(c.v, 31) }

func (c *ChopConf) SetTOff(x uint8) *ChopConf {
	c.v = putBits(c.v, 0, 4, uint32(x))
	return c
}
func (c *ChopConf) SetHStrt(x uint8) *ChopConf {
	c.v = putBits(c.v, 4, 3, uint32(x))
	return c
}
func (c *ChopConf) SetHEnd(x uint8) *ChopConf {
	c.v = putBits(c.v, 7, 4, uint32(x))
	return c
}
func (c *ChopConf) SetFD3(on bool) *ChopConf     { c.v = putFlag(c.v, 11, on); return c }
func (c *ChopConf) SetDisFDCC(on bool) *ChopConf { c.v = putFlag(c.v, 12, on); return c }
func (c *ChopConf) SetChm(on bool) *ChopConf     { c.v = putFlag(c.v, 14, on); return c }
func (c *ChopConf) SetTBL(x uint8) *ChopConf {
	c.v = putBits(c.v, 15, 2, uint32(x))
	return c
}
func (c *ChopConf) SetVHighFS(on bool) *ChopConf  { c.v = putFlag(c.v, 18, on); return c }
func (c *ChopConf) SetVHighChm(on bool) *ChopConf { c.v = putFlag(c.v, 19, on); return c }
func (c *ChopConf) SetTPFD(x uint8) *ChopConf {
	c.v = putBits(c.v, 20, 4, uint32(x))
	return c
}
func (c *ChopConf) SetMRes(x uint8) *ChopConf {
	c.v = putBits(c.v, 24, 4, uint32(x))
	return c
}
func (c *ChopConf) SetIntPol(on bool) *ChopConf  { c.v = putFlag(c.v, 28, on); return c }
func (c *ChopConf) SetDEdge(on bool) *ChopConf   { c.v = putFlag(c.v, 29, on); return c }
func (c *ChopConf) SetDisS2G(on bool) *ChopConf  { c.v = putFlag(c.v, 30, on); return c }
func (c *ChopConf) SetDisS2VS(on bool) *ChopConf { c.v = putFlag(c.v, 31, on); return c }

// CoolConf is a view over the COOLCONF register (0x6D, write only).
type CoolConf struct {
	v uint32
}

// CoolConfFromValue reinterprets a raw register value as COOLCONF.
func CoolConfFromValue(v uint32) CoolConf { return CoolConf{v: v} }

// Value returns the raw 32 bit register value.
func (c *CoolConf) Value() uint32 { return c.v }

func (c *CoolConf) SEMin() uint8 { return uint8(getBits(c.v, 0, 4)) }
func (c *CoolConf) SEUp() uint8  { return uint8(getBits(c.v, 5, 2)) }
func (c *CoolConf) SEMax() uint8 { return uint8(getBits(c.v, 8, 4)) }
func (c *CoolConf) SEDn() uint8  { return uint8(getBits(c.v, 13, 2)) }
func (c *CoolConf) SEIMin() bool { return getFlag(c.v, 15) }

// SGT is the stallGuard2 threshold as a 7 bit two's complement value.
func (c *CoolConf) SGT() int8 {
	return int8(getBits(c.v, 16, 7)<<1) >> 1
}
func (c *CoolConf) SFilt() bool { return getFlag(c.v, 24) }

func (c *CoolConf) SetSEMin(x uint8) *CoolConf {
	c.v = putBits(c.v, 0, 4, uint32(x))
	return c
}
func (c *CoolConf) SetSEUp(x uint8) *CoolConf {
	c.v = putBits(c.v, 5, 2, uint32(x))
	return c
}
func (c *CoolConf) SetSEMax(x uint8) *CoolConf {
	c.v = putBits(c.v, 8, 4, uint32(x))
	return c
}
func (c *CoolConf) SetSEDn(x uint8) *CoolConf {
	c.v = putBits(c.v, 13, 2, uint32(x))
	return c
}
func (c *CoolConf) SetSEIMin(on bool) *CoolConf { c.v = putFlag(c.v, 15, on); return c }
func (c *CoolConf) SetSGT(x int8) *CoolConf {
	c.v = putBits(c.v, 16, 7, uint32(uint8(x)))
	return c
}
func (c *CoolConf) SetSFilt(on bool) *CoolConf { c.v = putFlag(c.v, 24, on); return c }

// DrvStatus is a view over the DRV_STATUS register (0x6F, read only).
type DrvStatus struct {
	v uint32
}

// DrvStatusFromValue reinterprets a raw register value as DRV_STATUS.
func DrvStatusFromValue(v uint32) DrvStatus { return DrvStatus{v: v} }

// Value returns the raw 32 bit register value.
func (d DrvStatus) Value() uint32 { return d.v }

// SGResult is the stallGuard2 load measurement, 0 meaning highest load.
func (d DrvStatus) SGResult() uint16 { return uint16(getBits(d.v, 0, 10)) }

// S2VSA reports a short between phase A and the supply.
func (d DrvStatus) S2VSA() bool { return getFlag(d.v, 12) }

// S2VSB reports a short between phase B and the supply.
func (d DrvStatus) S2VSB() bool { return getFlag(d.v, 13) }

// StealthChop reports that the chopper runs in stealthChop mode.
func (d DrvStatus) StealthChop() bool { return getFlag(d.v, 14) }

// FSActive reports that the driver operates in fullstep mode.
func (d DrvStatus) FSActive() bool { return getFlag(d.v, 15) }

// CSActual is the actual motor current scale set by coolStep.
func (d DrvStatus) CSActual() uint8 { return uint8(getBits(d.v, 16, 5)) }

// StallGuard reports a motor stall.
func (d DrvStatus) StallGuard() bool { return getFlag(d.v, 24) }

// OT reports an overtemperature shutdown.
func (d DrvStatus) OT() bool { return getFlag(d.v, 25) }

// OTPW reports an overtemperature pre-warning.
func (d DrvStatus) OTPW() bool { return getFlag(d.v, 26) }

// S2GA reports a short to ground on phase A.
func (d DrvStatus) S2GA() bool { return getFlag(d.v, 27) }

// S2GB reports a short to ground on phase B.
func (d DrvStatus) S2GB() bool { return getFlag(d.v, 28) }

// OLA reports an open load on phase A.
func (d DrvStatus) OLA() bool { return getFlag(d.v, 29) }

// OLB reports an open load on phase B.
func (d DrvStatus) OLB() bool { return getFlag(d.v, 30) }

// Standstill reports that no step impulse occurred for 2^20 clocks.
func (d DrvStatus) Standstill() bool { return getFlag(d.v, 31) }

// PwmConf is a view over the PWMCONF register (0x70, write only).
type PwmConf struct {
	v uint32
}

// PwmConfFromValue reinterprets a raw register value as PWMCONF.
func PwmConfFromValue(v uint32) PwmConf { return PwmConf{v: v} }

// Value returns the raw 32 bit register value.
func (p *PwmConf) Value() uint32 { return p.v }

func (p *PwmConf) PwmOfs() uint8      { return uint8(getBits(p.v, 0, 8)) }
func (p *PwmConf) PwmGrad() uint8     { return uint8(getBits(p.v, 8, 8)) }
func (p *PwmConf) PwmFreq() uint8     { return uint8(getBits(p.v, 16, 2)) }
func (p *PwmConf) PwmAutoscale() bool { return getFlag(p.v, 18) }
func (p *PwmConf) PwmAutograd() bool  { return getFlag(p.v, 19) }
func (p *PwmConf) Freewheel() uint8   { return uint8(getBits(p.v, 20, 2)) }
func (p *PwmConf) PwmReg() uint8      { return uint8(getBits(p.v, 24, 4)) }
func (p *PwmConf) PwmLim() uint8      { return uint8(getBits(p.v, 28, 4)) }

func (p *PwmConf) SetPwmOfs(x uint8) *PwmConf {
	p.v = putBits(p.v, 0, 8, uint32(x))
	return p
}
func (p *PwmConf) SetPwmGrad(x uint8) *PwmConf {
	p.v = putBits(p.v, 8, 8, uint32(x))
	return p
}
func (p *PwmConf) SetPwmFreq(x uint8) *PwmConf {
	p.v = putBits(p.v, 16, 2, uint32(x))
	return p
}
func (p *PwmConf) SetPwmAutoscale(on bool) *PwmConf { p.v = putFlag(p.v, 18, on); return p }
func (p *PwmConf) SetPwmAutograd(on bool) *PwmConf  { p.v = putFlag(p.v, 19, on); return p }
func (p *PwmConf) SetFreewheel(x uint8) *PwmConf {
	p.v = putBits(p.v, 20, 2, uint32(x))
	return p
}
func (p *PwmConf) SetPwmReg(x uint8) *PwmConf {
	p.v = putBits(p.v, 24, 4, uint32(x))
	return p
}
func (p *PwmConf) SetPwmLim(x uint8) *PwmConf {
	p.v = putBits(p.v, 28, 4, uint32(x))
	return p
}
