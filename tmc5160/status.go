// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package tmc5160

import "strings"

// Status is the SPI status byte the chip shifts out as the first byte of
// every datagram. It describes the state of the chip at the time of the
// previous access.
type Status uint8

// ResetFlag reports that the chip has been reset since the last GSTAT read.
func (s Status) ResetFlag() bool { return s&0x01 != 0 }

// DriverError reports that the driver stage shut down due to a fault.
// GSTAT and DRV_STATUS carry the details.
func (s Status) DriverError() bool { return s&0x02 != 0 }

// StallGuard reports an active stallGuard2 event.
func (s Status) StallGuard() bool { return s&0x04 != 0 }

// Standstill reports that the motor stands still.
func (s Status) Standstill() bool { return s&0x08 != 0 }

// VelocityReached reports that the ramp generator reached the target
// velocity.
func (s Status) VelocityReached() bool { return s&0x10 != 0 }

// PositionReached reports that the ramp generator reached the target
// position.
func (s Status) PositionReached() bool { return s&0x20 != 0 }

// StatusStopL reports the state of the left reference switch.
func (s Status) StatusStopL() bool { return s&0x40 != 0 }

// StatusStopR reports the state of the right reference switch.
func (s Status) StatusStopR() bool { return s&0x80 != 0 }

// String lists the flags that are set.
func (s Status) String() string {
	if s == 0 {
		return "Status{}"
	}
	names := []struct {
		mask Status
		name string
	}{
		{0x01, "reset"},
		{0x02, "driver_error"},
		{0x04, "sg2"},
		{0x08, "standstill"},
		{0x10, "velocity_reached"},
		{0x20, "position_reached"},
		{0x40, "status_stop_l"},
		{0x80, "status_stop_r"},
	}
	var set []string
	for _, f := range names {
		if s&f.mask != 0 {
			set = append(set, f.name)
		}
	}
	return "Status{" + strings.Join(set, "|") + "}"
}
