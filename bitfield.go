package sx126x

// Bitfield parameter and status values. Each type packs its named
// fields into the integer the device expects. Reserved bits are only
// ever written as zero, and read back as zero.

// SleepConfig is the configuration byte of the SetSleep command.
// Its fields are MSB first: 5 reserved bits, warm start, 2 reserved
// bits, so warm start occupies bit 2.
type SleepConfig uint8

const sleepWarmStart = 1 << 2

func (c SleepConfig) WithWarmStart(on bool) SleepConfig {
	if on {
		return c | sleepWarmStart
	}
	return c &^ sleepWarmStart
}

// WarmStart reports whether device configuration is retained in sleep.
func (c SleepConfig) WarmStart() bool { return c&sleepWarmStart != 0 }

// Bits returns the encoded byte.
func (c SleepConfig) Bits() uint8 { return uint8(c & sleepWarmStart) }

// Irq is the 16-bit IRQ flag set used by SetDioIrqParams,
// GetIrqStatus and ClearIrqStatus. Flags are LSB first, matching the
// datasheet IRQ register layout; bits 10-13 and 15 are reserved.
type Irq uint16

const (
	irqTxDone           Irq = 1 << 0
	irqRxDone           Irq = 1 << 1
	irqPreambleDetected Irq = 1 << 2
	irqSyncWordValid    Irq = 1 << 3
	irqHeaderValid      Irq = 1 << 4
	irqHeaderErr        Irq = 1 << 5
	irqCrcErr           Irq = 1 << 6
	irqCadDone          Irq = 1 << 7
	irqCadDetected      Irq = 1 << 8
	irqTimeout          Irq = 1 << 9
	irqLrFhssHop        Irq = 1 << 14

	irqMask = irqTxDone | irqRxDone | irqPreambleDetected | irqSyncWordValid |
		irqHeaderValid | irqHeaderErr | irqCrcErr | irqCadDone |
		irqCadDetected | irqTimeout | irqLrFhssHop
)

// IrqFromBits decodes a raw IRQ register value, dropping reserved bits.
func IrqFromBits(v uint16) Irq { return Irq(v) & irqMask }

// Bits returns the encoded register value.
func (i Irq) Bits() uint16 { return uint16(i & irqMask) }

func (i Irq) with(bit Irq, on bool) Irq {
	if on {
		return i | bit
	}
	return i &^ bit
}

func (i Irq) WithTxDone(on bool) Irq           { return i.with(irqTxDone, on) }
func (i Irq) WithRxDone(on bool) Irq           { return i.with(irqRxDone, on) }
func (i Irq) WithPreambleDetected(on bool) Irq { return i.with(irqPreambleDetected, on) }
func (i Irq) WithSyncWordValid(on bool) Irq    { return i.with(irqSyncWordValid, on) }
func (i Irq) WithHeaderValid(on bool) Irq      { return i.with(irqHeaderValid, on) }
func (i Irq) WithHeaderErr(on bool) Irq        { return i.with(irqHeaderErr, on) }
func (i Irq) WithCrcErr(on bool) Irq           { return i.with(irqCrcErr, on) }
func (i Irq) WithCadDone(on bool) Irq          { return i.with(irqCadDone, on) }
func (i Irq) WithCadDetected(on bool) Irq      { return i.with(irqCadDetected, on) }
func (i Irq) WithTimeout(on bool) Irq          { return i.with(irqTimeout, on) }
func (i Irq) WithLrFhssHop(on bool) Irq        { return i.with(irqLrFhssHop, on) }

func (i Irq) TxDone() bool           { return i&irqTxDone != 0 }
func (i Irq) RxDone() bool           { return i&irqRxDone != 0 }
func (i Irq) PreambleDetected() bool { return i&irqPreambleDetected != 0 }
func (i Irq) SyncWordValid() bool    { return i&irqSyncWordValid != 0 }
func (i Irq) HeaderValid() bool      { return i&irqHeaderValid != 0 }
func (i Irq) HeaderErr() bool        { return i&irqHeaderErr != 0 }
func (i Irq) CrcErr() bool           { return i&irqCrcErr != 0 }
func (i Irq) CadDone() bool          { return i&irqCadDone != 0 }
func (i Irq) CadDetected() bool      { return i&irqCadDetected != 0 }
func (i Irq) Timeout() bool          { return i&irqTimeout != 0 }
func (i Irq) LrFhssHop() bool        { return i&irqLrFhssHop != 0 }

// OpError is the 16-bit error flag set returned by GetDeviceErrors.
// Flags are LSB first; bit 7 and bits 9-15 are reserved.
type OpError uint16

const (
	opErrorRc64kCalib OpError = 1 << 0
	opErrorRc13mCalib OpError = 1 << 1
	opErrorPllCalib   OpError = 1 << 2
	opErrorAdcCalib   OpError = 1 << 3
	opErrorImgCalib   OpError = 1 << 4
	opErrorXoscStart  OpError = 1 << 5
	opErrorPllLock    OpError = 1 << 6
	opErrorPaRamp     OpError = 1 << 8

	opErrorMask = opErrorRc64kCalib | opErrorRc13mCalib | opErrorPllCalib |
		opErrorAdcCalib | opErrorImgCalib | opErrorXoscStart |
		opErrorPllLock | opErrorPaRamp
)

// OpErrorFromBits decodes a raw error value, dropping reserved bits.
func OpErrorFromBits(v uint16) OpError { return OpError(v) & opErrorMask }

// Bits returns the encoded register value.
func (e OpError) Bits() uint16 { return uint16(e & opErrorMask) }

func (e OpError) with(bit OpError, on bool) OpError {
	if on {
		return e | bit
	}
	return e &^ bit
}

func (e OpError) WithRc64kCalibErr(on bool) OpError { return e.with(opErrorRc64kCalib, on) }
func (e OpError) WithRc13mCalibErr(on bool) OpError { return e.with(opErrorRc13mCalib, on) }
func (e OpError) WithPllCalibErr(on bool) OpError   { return e.with(opErrorPllCalib, on) }
func (e OpError) WithAdcCalibErr(on bool) OpError   { return e.with(opErrorAdcCalib, on) }
func (e OpError) WithImgCalibErr(on bool) OpError   { return e.with(opErrorImgCalib, on) }
func (e OpError) WithXoscStartErr(on bool) OpError  { return e.with(opErrorXoscStart, on) }
func (e OpError) WithPllLockErr(on bool) OpError    { return e.with(opErrorPllLock, on) }
func (e OpError) WithPaRampErr(on bool) OpError     { return e.with(opErrorPaRamp, on) }

func (e OpError) Rc64kCalibErr() bool { return e&opErrorRc64kCalib != 0 }
func (e OpError) Rc13mCalibErr() bool { return e&opErrorRc13mCalib != 0 }
func (e OpError) PllCalibErr() bool   { return e&opErrorPllCalib != 0 }
func (e OpError) AdcCalibErr() bool   { return e&opErrorAdcCalib != 0 }
func (e OpError) ImgCalibErr() bool   { return e&opErrorImgCalib != 0 }
func (e OpError) XoscStartErr() bool  { return e&opErrorXoscStart != 0 }
func (e OpError) PllLockErr() bool    { return e&opErrorPllLock != 0 }
func (e OpError) PaRampErr() bool     { return e&opErrorPaRamp != 0 }
