package sx126x

import (
	"fmt"
	"testing"
)

func TestSleepConfig(t *testing.T) {
	c := SleepConfig(0).WithWarmStart(true)
	if c.Bits() != 0x04 {
		t.Errorf("Bits() == %02X, want 04", c.Bits())
	}
	if !c.WarmStart() {
		t.Error("WarmStart() == false, want true")
	}
	c = c.WithWarmStart(false)
	if c.Bits() != 0 || c.WarmStart() {
		t.Errorf("cleared config == %02X, want 0", c.Bits())
	}
	// Reserved bits read back as zero.
	if v := SleepConfig(0xFB).Bits(); v != 0 {
		t.Errorf("Bits() == %02X, want 0", v)
	}
	if v := SleepConfig(0xFF).Bits(); v != 0x04 {
		t.Errorf("Bits() == %02X, want 04", v)
	}
}

func TestIrqBits(t *testing.T) {
	cases := []struct {
		name string
		irq  Irq
		want uint16
	}{
		{"TxDone", Irq(0).WithTxDone(true), 1 << 0},
		{"RxDone", Irq(0).WithRxDone(true), 1 << 1},
		{"PreambleDetected", Irq(0).WithPreambleDetected(true), 1 << 2},
		{"SyncWordValid", Irq(0).WithSyncWordValid(true), 1 << 3},
		{"HeaderValid", Irq(0).WithHeaderValid(true), 1 << 4},
		{"HeaderErr", Irq(0).WithHeaderErr(true), 1 << 5},
		{"CrcErr", Irq(0).WithCrcErr(true), 1 << 6},
		{"CadDone", Irq(0).WithCadDone(true), 1 << 7},
		{"CadDetected", Irq(0).WithCadDetected(true), 1 << 8},
		{"Timeout", Irq(0).WithTimeout(true), 1 << 9},
		{"LrFhssHop", Irq(0).WithLrFhssHop(true), 1 << 14},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if c.irq.Bits() != c.want {
				t.Errorf("Bits() == %04X, want %04X", c.irq.Bits(), c.want)
			}
		})
	}
}

func TestIrqRoundTrip(t *testing.T) {
	irq := Irq(0).WithRxDone(true).WithCrcErr(true).WithTimeout(true)
	if got := IrqFromBits(irq.Bits()); got != irq {
		t.Errorf("round trip == %04X, want %04X", got.Bits(), irq.Bits())
	}
	if !irq.RxDone() || !irq.CrcErr() || !irq.Timeout() {
		t.Errorf("flags lost in %04X", irq.Bits())
	}
	if irq.TxDone() || irq.HeaderErr() || irq.LrFhssHop() {
		t.Errorf("unexpected flags in %04X", irq.Bits())
	}
	// Reserved bits (10-13, 15) read back as zero.
	if got := IrqFromBits(0xFFFF).Bits(); got != 0x43FF {
		t.Errorf("IrqFromBits(FFFF).Bits() == %04X, want 43FF", got)
	}
}

func TestOpErrorRoundTrip(t *testing.T) {
	e := OpError(0).WithRc64kCalibErr(true).WithXoscStartErr(true).WithPaRampErr(true)
	if got := OpErrorFromBits(e.Bits()); got != e {
		t.Errorf("round trip == %04X, want %04X", got.Bits(), e.Bits())
	}
	if !e.Rc64kCalibErr() || !e.XoscStartErr() || !e.PaRampErr() {
		t.Errorf("flags lost in %04X", e.Bits())
	}
	if e.PllCalibErr() || e.ImgCalibErr() {
		t.Errorf("unexpected flags in %04X", e.Bits())
	}
	// Reserved bits (7, 9-15) read back as zero.
	if got := OpErrorFromBits(0xFFFF).Bits(); got != 0x017F {
		t.Errorf("OpErrorFromBits(FFFF).Bits() == %04X, want 017F", got)
	}
}

func TestOpErrorSingleFlags(t *testing.T) {
	cases := []struct {
		e    OpError
		want uint16
	}{
		{OpError(0).WithRc64kCalibErr(true), 1 << 0},
		{OpError(0).WithRc13mCalibErr(true), 1 << 1},
		{OpError(0).WithPllCalibErr(true), 1 << 2},
		{OpError(0).WithAdcCalibErr(true), 1 << 3},
		{OpError(0).WithImgCalibErr(true), 1 << 4},
		{OpError(0).WithXoscStartErr(true), 1 << 5},
		{OpError(0).WithPllLockErr(true), 1 << 6},
		{OpError(0).WithPaRampErr(true), 1 << 8},
	}
	for _, c := range cases {
		t.Run(fmt.Sprintf("bit_%04X", c.want), func(t *testing.T) {
			if c.e.Bits() != c.want {
				t.Errorf("Bits() == %04X, want %04X", c.e.Bits(), c.want)
			}
		})
	}
}
