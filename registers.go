package sx126x

// Register identifies one byte-sized configuration register.
// Each register is a defined byte type whose Address method gives its
// fixed location in the register bank, so a register value carries
// both its address and its encoded byte.
type Register interface {
	~byte
	Address() uint16
}

// WhiteningInitialMsb holds bit 8 of the GFSK whitening seed.
type WhiteningInitialMsb byte

func (WhiteningInitialMsb) Address() uint16 { return 0x06B8 }

// WhiteningInitialLsb holds the low byte of the GFSK whitening seed.
type WhiteningInitialLsb byte

func (WhiteningInitialLsb) Address() uint16 { return 0x06B9 }

// IqPolaritySetup is the inverted-IQ workaround register
// (datasheet section 15.4).
type IqPolaritySetup byte

func (IqPolaritySetup) Address() uint16 { return 0x0736 }

// LoraSyncWordMsb is the high byte of the LoRa sync word.
type LoraSyncWordMsb byte

func (LoraSyncWordMsb) Address() uint16 { return 0x0740 }

// LoraSyncWordLsb is the low byte of the LoRa sync word.
type LoraSyncWordLsb byte

func (LoraSyncWordLsb) Address() uint16 { return 0x0741 }

// TxModulation is the 500 kHz bandwidth workaround register
// (datasheet section 15.1).
type TxModulation byte

func (TxModulation) Address() uint16 { return 0x0889 }

// RxGain selects the RX gain mode (power saving or boosted).
type RxGain byte

func (RxGain) Address() uint16 { return 0x08AC }

// TxClampConfig is the PA clamping threshold register
// (datasheet section 15.2).
type TxClampConfig byte

func (TxClampConfig) Address() uint16 { return 0x08D8 }

// OcpConfiguration sets the overcurrent protection level
// in steps of 2.5 mA.
type OcpConfiguration byte

func (OcpConfiguration) Address() uint16 { return 0x08E7 }

// XtaTrim is the XTAL trimming capacitor on the XTA pin.
type XtaTrim byte

func (XtaTrim) Address() uint16 { return 0x0911 }

// XtbTrim is the XTAL trimming capacitor on the XTB pin.
type XtbTrim byte

func (XtbTrim) Address() uint16 { return 0x0912 }

// WriteRegister writes one byte to a device register.
type WriteRegister struct {
	txBuf [4]byte
	rxBuf [4]byte
}

func NewWriteRegister[R Register](reg R) *WriteRegister {
	c := &WriteRegister{}
	c.txBuf[0] = opWriteRegister
	put16(c.txBuf[1:3], reg.Address())
	c.txBuf[3] = byte(reg)
	return c
}

func (c *WriteRegister) Opcode() byte      { return opWriteRegister }
func (c *WriteRegister) TxBuf() []byte     { return c.txBuf[:] }
func (c *WriteRegister) RxBuf() []byte     { return c.rxBuf[:] }
func (c *WriteRegister) TransferSize() int { return len(c.txBuf) }

// ReadRegister reads one byte from a device register.
// After the transfer, Register returns the decoded value from the
// final buffer position.
type ReadRegister[R Register] struct {
	txBuf [5]byte
	rxBuf [5]byte
}

func NewReadRegister[R Register]() *ReadRegister[R] {
	c := &ReadRegister[R]{}
	var reg R
	c.txBuf[0] = opReadRegister
	put16(c.txBuf[1:3], reg.Address())
	return c
}

func (c *ReadRegister[R]) Opcode() byte      { return opReadRegister }
func (c *ReadRegister[R]) TxBuf() []byte     { return c.txBuf[:] }
func (c *ReadRegister[R]) RxBuf() []byte     { return c.rxBuf[:] }
func (c *ReadRegister[R]) TransferSize() int { return len(c.txBuf) }

func (c *ReadRegister[R]) Register() R { return R(c.rxBuf[4]) }
