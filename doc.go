// Copyright 2021 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package devices is a container for device drivers.
//
// It currently carries the tmc5160 stepper motor driver.
package devices
