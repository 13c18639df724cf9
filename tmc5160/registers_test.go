// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package tmc5160

import "testing"

func TestGConfFields(t *testing.T) {
	var g GConf
	g.SetEnPwmMode(true).SetMultistepFilt(true).SetShaft(true)
	if got := g.Value(); got != 0x1C {
		t.Fatalf("wanted 0x1c, got %#x", got)
	}
	if !g.EnPwmMode() || !g.MultistepFilt() || !g.Shaft() {
		t.Fatal("set fields not readable")
	}
	if g.Recalibrate() || g.DirectMode() {
		t.Fatal("unset fields readable")
	}
	g.SetShaft(false)
	if g.Shaft() || g.Value() != 0x0C {
		t.Fatal("clearing a field must not disturb the others")
	}
}

func TestGConfRoundTrip(t *testing.T) {
	g := GConfFromValue(0x0001FFFF)
	for i, f := range []bool{
		g.Recalibrate(), g.FastStandstill(), g.EnPwmMode(), g.MultistepFilt(),
		g.Shaft(), g.Diag0Error(), g.Diag0OTPW(), g.Diag0Stall(),
		g.Diag1Stall(), g.Diag1Index(), g.Diag1OnState(), g.Diag1StepsSkipped(),
		g.Diag0PushPull(), g.Diag1PushPull(), g.SmallHysteresis(),
		g.StopEnable(), g.DirectMode(),
	} {
		if !f {
			t.Fatalf("bit %d not decoded", i)
		}
	}
}

func TestGStat(t *testing.T) {
	g := GStatFromValue(0b101)
	if !g.Reset() || g.DrvErr() || !g.UvCP() {
		t.Fatalf("bad decode of %#x", g.Value())
	}
}

func TestIHoldIRun(t *testing.T) {
	var i IHoldIRun
	i.SetIHold(16).SetIRun(31).SetIHoldDelay(6)
	if got := i.Value(); got != 0x00061F10 {
		t.Fatalf("wanted 0x61f10, got %#x", got)
	}
	if i.IHold() != 16 || i.IRun() != 31 || i.IHoldDelay() != 6 {
		t.Fatal("fields not readable")
	}
	// Out of range values are masked to the field width.
	i.SetIRun(0xFF)
	if i.IRun() != 31 {
		t.Fatalf("wanted masked 31, got %d", i.IRun())
	}
	if i.IHold() != 16 {
		t.Fatal("sibling field clobbered")
	}
}

func TestChopConfDefaults(t *testing.T) {
	c := ChopConfFromValue(defaultChopConf)
	if c.TOff() != 0 {
		t.Fatalf("TOff: got %d", c.TOff())
	}
	if c.HStrt() != 5 {
		t.Fatalf("HStrt: got %d", c.HStrt())
	}
	if c.HEnd() != 2 {
		t.Fatalf("HEnd: got %d", c.HEnd())
	}
	if c.TBL() != 2 {
		t.Fatalf("TBL: got %d", c.TBL())
	}
	if c.MRes() != 0 {
		t.Fatalf("MRes: got %d", c.MRes())
	}
	if !c.IntPol() {
		t.Fatal("IntPol: wanted true")
	}
}

func TestChopConfSetters(t *testing.T) {
	c := ChopConfFromValue(defaultChopConf)
	c.SetTOff(5).SetTBL(1).SetMRes(8)
	if c.TOff() != 5 || c.TBL() != 1 || c.MRes() != 8 {
		t.Fatal("fields not applied")
	}
	// Everything outside the three changed fields is untouched.
	mask := uint32(0xF) | 0x3<<15 | 0xF<<24
	if c.Value()&^mask != defaultChopConf&^mask {
		t.Fatalf("sibling bits changed: %#x", c.Value())
	}
}

func TestCoolConfSGT(t *testing.T) {
	var c CoolConf
	c.SetSGT(-5)
	if c.SGT() != -5 {
		t.Fatalf("wanted -5, got %d", c.SGT())
	}
	c.SetSGT(63)
	if c.SGT() != 63 {
		t.Fatalf("wanted 63, got %d", c.SGT())
	}
	if getBits(c.Value(), 23, 9) != 0 {
		t.Fatalf("SGT leaked outside its 7 bits: %#x", c.Value())
	}
}

func TestPwmConfDefaults(t *testing.T) {
	p := PwmConfFromValue(defaultPwmConf)
	if p.PwmOfs() != 0x1E {
		t.Fatalf("PwmOfs: got %#x", p.PwmOfs())
	}
	if p.PwmGrad() != 0 {
		t.Fatalf("PwmGrad: got %#x", p.PwmGrad())
	}
	if !p.PwmAutoscale() || !p.PwmAutograd() {
		t.Fatal("autoscale/autograd: wanted true")
	}
	if p.PwmReg() != 4 {
		t.Fatalf("PwmReg: got %d", p.PwmReg())
	}
	if p.PwmLim() != 12 {
		t.Fatalf("PwmLim: got %d", p.PwmLim())
	}
}

func TestDrvStatus(t *testing.T) {
	d := DrvStatusFromValue(0x80000000)
	if !d.Standstill() {
		t.Fatal("standstill not decoded")
	}
	d = DrvStatusFromValue(0x001F03FF)
	if d.SGResult() != 0x3FF {
		t.Fatalf("SGResult: got %#x", d.SGResult())
	}
	if d.CSActual() != 0x1F {
		t.Fatalf("CSActual: got %#x", d.CSActual())
	}
	if d.Standstill() || d.OT() {
		t.Fatal("unset flags decoded as set")
	}
}

func TestRampStat(t *testing.T) {
	r := RampStatFromValue(1<<0 | 1<<9 | 1<<10)
	if !r.StatusStopL() || r.StatusStopR() {
		t.Fatal("stop switch flags wrong")
	}
	if !r.PositionReached() || !r.VZero() {
		t.Fatal("position flags wrong")
	}
}

func TestSwModeChain(t *testing.T) {
	var s SwMode
	s.SetStopLEnable(true).SetStopREnable(true).SetEnSoftStop(true)
	if got := s.Value(); got != 1<<0|1<<1|1<<11 {
		t.Fatalf("got %#x", got)
	}
}

func TestDrvConf(t *testing.T) {
	var d DrvConf
	d.SetBBMTime(24).SetBBMClks(4).SetDrvStrength(2)
	if d.BBMTime() != 24 || d.BBMClks() != 4 || d.DrvStrength() != 2 {
		t.Fatal("fields not applied")
	}
	if got := d.Value(); got != 24|4<<8|2<<18 {
		t.Fatalf("got %#x", got)
	}
}

func TestShortConf(t *testing.T) {
	var s ShortConf
	s.SetS2VSLevel(6).SetS2GLevel(12).SetShortFilter(1).SetShortDelay(true)
	if got := s.Value(); got != 6|12<<8|1<<16|1<<18 {
		t.Fatalf("got %#x", got)
	}
}

func TestEncModeChain(t *testing.T) {
	var e EncMode
	e.SetClrCont(true).SetLatchXActual(true)
	if got := e.Value(); got != 1<<4|1<<9 {
		t.Fatalf("got %#x", got)
	}
}
