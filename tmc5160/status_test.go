// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package tmc5160

import "testing"

func TestStatusDecode(t *testing.T) {
	flags := func(s Status) [8]bool {
		return [8]bool{
			s.ResetFlag(), s.DriverError(), s.StallGuard(), s.Standstill(),
			s.VelocityReached(), s.PositionReached(), s.StatusStopL(), s.StatusStopR(),
		}
	}

	// Each bit decodes to exactly one flag.
	for bit := uint(0); bit < 8; bit++ {
		got := flags(Status(1 << bit))
		for i, f := range got {
			want := uint(i) == bit
			if f != want {
				t.Fatalf("status %#x: flag %d = %t, wanted %t", 1<<bit, i, f, want)
			}
		}
	}

	if got := flags(0); got != [8]bool{} {
		t.Fatalf("zero status decoded flags: %v", got)
	}
}

func TestStatusString(t *testing.T) {
	for _, test := range []struct {
		s    Status
		want string
	}{
		{0, "Status{}"},
		{0x01, "Status{reset}"},
		{0x09, "Status{reset|standstill}"},
		{0x80, "Status{status_stop_r}"},
	} {
		if got := test.s.String(); got != test.want {
			t.Fatalf("%#x: wanted %q, got %q", uint8(test.s), test.want, got)
		}
	}
}
