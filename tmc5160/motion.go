// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package tmc5160

// Motion helpers built on the raw register access. Velocities are full
// steps per second, accelerations full steps per second squared and
// positions full steps; the conversion uses the chip clock and microstep
// count given at construction.

// velocityToRegister converts full steps per second into the ramp
// generator's velocity unit of microsteps per 2^24 clocks.
func (d *Dev) velocityToRegister(hz float64) uint32 {
	return uint32(hz / (d.clock / 16777216.0) * d.stepCount)
}

// accelToRegister converts full steps per second squared into the ramp
// generator's acceleration unit.
func (d *Dev) accelToRegister(hzPerS float64) uint32 {
	return uint32(hzPerS / (d.clock * d.clock) * (512.0 * 256.0) * 16777216.0 * d.stepCount)
}

// SetVelocity writes VMAX, the ramp generator target velocity, in full
// steps per second.
func (d *Dev) SetVelocity(hz float64) (DataPacket, error) {
	return d.SetVMax(d.velocityToRegister(hz))
}

// SetAcceleration writes the same acceleration, in full steps per second
// squared, to AMAX, DMAX, A1 and D1.
func (d *Dev) SetAcceleration(hzPerS float64) (DataPacket, error) {
	a := d.accelToRegister(hzPerS)
	if _, err := d.SetAMax(a); err != nil {
		return DataPacket{}, err
	}
	if _, err := d.SetDMax(a); err != nil {
		return DataPacket{}, err
	}
	if _, err := d.SetA1(a); err != nil {
		return DataPacket{}, err
	}
	return d.SetD1(a)
}

// MoveTo enables the driver stage and sets the target position in full
// steps relative to home.
func (d *Dev) MoveTo(target int32) (DataPacket, error) {
	if err := d.Enable(); err != nil {
		return DataPacket{}, err
	}
	steps := uint32(target * int32(d.stepCount))
	return d.WriteRegister(RegXTarget, steps)
}

// Position reads the actual motor position in full steps.
func (d *Dev) Position() (float64, error) {
	pkt, err := d.ReadRegister(RegXActual)
	if err != nil {
		return 0, err
	}
	return float64(int32(pkt.Data)) / d.stepCount, nil
}

// SetPosition overwrites the actual motor position in full steps.
func (d *Dev) SetPosition(pos int32) (DataPacket, error) {
	return d.WriteRegister(RegXActual, uint32(pos*int32(d.stepCount)))
}

// Velocity reads the actual ramp generator velocity in full steps per
// second. VACTUAL is sign extended from its 24 bits.
func (d *Dev) Velocity() (float64, error) {
	pkt, err := d.ReadRegister(RegVActual)
	if err != nil {
		return 0, err
	}
	v := int32(pkt.Data<<8) >> 8
	return float64(v) * (d.clock / 16777216.0) / d.stepCount, nil
}

// Target reads the current target position in microsteps.
func (d *Dev) Target() (int32, error) {
	pkt, err := d.ReadRegister(RegXTarget)
	if err != nil {
		return 0, err
	}
	return int32(pkt.Data), nil
}

// SetHome declares the current position to be zero by clearing XACTUAL
// and XTARGET.
func (d *Dev) SetHome() (DataPacket, error) {
	if _, err := d.WriteRegister(RegXActual, 0); err != nil {
		return DataPacket{}, err
	}
	return d.WriteRegister(RegXTarget, 0)
}

// StopMotion disables the driver stage and zeroes VSTART and VMAX so the
// ramp generator stops immediately.
func (d *Dev) StopMotion() (DataPacket, error) {
	if err := d.Disable(); err != nil {
		return DataPacket{}, err
	}
	if _, err := d.SetVStart(0); err != nil {
		return DataPacket{}, err
	}
	return d.SetVMax(0)
}

// IsMoving reports whether the motor is out of standstill.
func (d *Dev) IsMoving() (bool, error) {
	st, err := d.ReadDrvStatus()
	if err != nil {
		return false, err
	}
	return !st.Standstill(), nil
}

// AtLeftLimit reports whether the left reference switch is active.
func (d *Dev) AtLeftLimit() (bool, error) {
	st, err := d.ReadRampStat()
	if err != nil {
		return false, err
	}
	return st.StatusStopL(), nil
}

// AtRightLimit reports whether the right reference switch is active.
func (d *Dev) AtRightLimit() (bool, error) {
	st, err := d.ReadRampStat()
	if err != nil {
		return false, err
	}
	return st.StatusStopR(), nil
}
