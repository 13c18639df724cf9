// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package tmc5160 interfaces with the Trinamic TMC5160 stepper motor
// driver and motion controller over SPI.
//
// The chip exchanges fixed 40 bit datagrams: an address byte whose top
// bit selects write access, followed by a 32 bit data word. Replies are
// pipelined by one datagram, so the driver issues two exchanges per
// register read.
//
// Several configuration registers of the chip are write only. The driver
// keeps a local image of each and exposes field setters on it, so single
// fields can be changed without clobbering their neighbours; the Update
// methods flush an image to the hardware.
//
// # Datasheet
//
// https://www.analog.com/media/en/technical-documentation/data-sheets/TMC5160A_datasheet_rev1.18.pdf
package tmc5160
