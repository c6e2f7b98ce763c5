// Package sx126x generates and decodes the SPI command buffers used to
// drive a Semtech SX126x sub-GHz radio.
package sx126x

// Command is the contract shared by every SX126x SPI command.
// A command performs no I/O itself: it exposes the bytes to clock out,
// a buffer of equal length for the bytes clocked in, and the number of
// bytes the transfer must exchange. The first transmitted byte is
// always the opcode; the first received byte is a don't-care status
// byte, so decoding accessors never look at position 0.
type Command interface {
	Opcode() byte
	TxBuf() []byte
	RxBuf() []byte
	TransferSize() int
}

// SPI command opcodes. See the SX126x datasheet, section 13.
const (
	opResetStats              byte = 0x00
	opClearIrqStatus          byte = 0x02
	opClearDeviceErrors       byte = 0x07
	opSetDioIrqParams         byte = 0x08
	opWriteRegister           byte = 0x0D
	opWriteBuffer             byte = 0x0E
	opGetStatsLora            byte = 0x10
	opGetPacketType           byte = 0x11
	opGetIrqStatus            byte = 0x12
	opGetRxBufferStatus       byte = 0x13
	opGetPacketStatusLora     byte = 0x14
	opGetDeviceErrors         byte = 0x17
	opReadRegister            byte = 0x1D
	opReadBuffer              byte = 0x1E
	opSetStandby              byte = 0x80
	opSetRx                   byte = 0x82
	opSetTx                   byte = 0x83
	opSetSleep                byte = 0x84
	opSetRfFrequency          byte = 0x86
	opSetPacketType           byte = 0x8A
	opSetModulationParamsLora byte = 0x8B
	opSetPacketParams         byte = 0x8C
	opSetTxParams             byte = 0x8E
	opSetBufferBaseAddress    byte = 0x8F
	opSetPaConfig             byte = 0x95
	opSetDio3AsTcxoCtrl       byte = 0x97
	opSetDio2AsRfSwitchCtrl   byte = 0x9D
	opSetLoraSymbNumTimeout   byte = 0xA0
	opGetStatus               byte = 0xC0
)

// SetSleep puts the device into sleep mode.
type SetSleep struct {
	txBuf [2]byte
	rxBuf [2]byte
}

func NewSetSleep(config SleepConfig) *SetSleep {
	c := &SetSleep{}
	c.txBuf[0] = opSetSleep
	c.txBuf[1] = config.Bits()
	return c
}

func (c *SetSleep) Opcode() byte      { return opSetSleep }
func (c *SetSleep) TxBuf() []byte     { return c.txBuf[:] }
func (c *SetSleep) RxBuf() []byte     { return c.rxBuf[:] }
func (c *SetSleep) TransferSize() int { return len(c.txBuf) }

// SetStandby puts the device into standby mode, running from either
// the RC oscillator or the crystal oscillator.
type SetStandby struct {
	txBuf [2]byte
	rxBuf [2]byte
}

func NewSetStandby(config StdbyConfig) *SetStandby {
	c := &SetStandby{}
	c.txBuf[0] = opSetStandby
	c.txBuf[1] = byte(config)
	return c
}

func (c *SetStandby) Opcode() byte      { return opSetStandby }
func (c *SetStandby) TxBuf() []byte     { return c.txBuf[:] }
func (c *SetStandby) RxBuf() []byte     { return c.rxBuf[:] }
func (c *SetStandby) TransferSize() int { return len(c.txBuf) }

// SetTx puts the device into transmit mode.
// The timeout is in units of 15.625 µs; 0 disables the timeout.
type SetTx struct {
	txBuf [4]byte
	rxBuf [4]byte
}

func NewSetTx(timeout uint32) *SetTx {
	c := &SetTx{}
	c.txBuf[0] = opSetTx
	put24(c.txBuf[1:], timeout)
	return c
}

func (c *SetTx) Opcode() byte      { return opSetTx }
func (c *SetTx) TxBuf() []byte     { return c.txBuf[:] }
func (c *SetTx) RxBuf() []byte     { return c.rxBuf[:] }
func (c *SetTx) TransferSize() int { return len(c.txBuf) }

// SetRx puts the device into receive mode.
// The timeout is in units of 15.625 µs; 0 means single-shot receive
// with no timeout, 0xFFFFFF means continuous receive.
type SetRx struct {
	txBuf [4]byte
	rxBuf [4]byte
}

func NewSetRx(timeout uint32) *SetRx {
	c := &SetRx{}
	c.txBuf[0] = opSetRx
	put24(c.txBuf[1:], timeout)
	return c
}

func (c *SetRx) Opcode() byte      { return opSetRx }
func (c *SetRx) TxBuf() []byte     { return c.txBuf[:] }
func (c *SetRx) RxBuf() []byte     { return c.rxBuf[:] }
func (c *SetRx) TransferSize() int { return len(c.txBuf) }

// SetPaConfig configures the power amplifier.
// The device-select and PA-LF bytes are fixed for the SX1262.
type SetPaConfig struct {
	txBuf [5]byte
	rxBuf [5]byte
}

func NewSetPaConfig(paDutyCycle, hpMax byte) *SetPaConfig {
	c := &SetPaConfig{}
	c.txBuf[0] = opSetPaConfig
	c.txBuf[1] = paDutyCycle
	c.txBuf[2] = hpMax
	c.txBuf[3] = 0x00
	c.txBuf[4] = 0x01
	return c
}

func (c *SetPaConfig) Opcode() byte      { return opSetPaConfig }
func (c *SetPaConfig) TxBuf() []byte     { return c.txBuf[:] }
func (c *SetPaConfig) RxBuf() []byte     { return c.rxBuf[:] }
func (c *SetPaConfig) TransferSize() int { return len(c.txBuf) }

// SetRfFrequency sets the RF frequency, in units of FXOSC / 2^25 Hz.
type SetRfFrequency struct {
	txBuf [5]byte
	rxBuf [5]byte
}

func NewSetRfFrequency(rfFreq uint32) *SetRfFrequency {
	c := &SetRfFrequency{}
	c.txBuf[0] = opSetRfFrequency
	put32(c.txBuf[1:], rfFreq)
	return c
}

func (c *SetRfFrequency) Opcode() byte      { return opSetRfFrequency }
func (c *SetRfFrequency) TxBuf() []byte     { return c.txBuf[:] }
func (c *SetRfFrequency) RxBuf() []byte     { return c.rxBuf[:] }
func (c *SetRfFrequency) TransferSize() int { return len(c.txBuf) }

// SetPacketType selects the packet handling protocol.
// It must be issued in standby mode before any other configuration.
type SetPacketType struct {
	txBuf [2]byte
	rxBuf [2]byte
}

func NewSetPacketType(packetType PacketType) *SetPacketType {
	c := &SetPacketType{}
	c.txBuf[0] = opSetPacketType
	c.txBuf[1] = byte(packetType)
	return c
}

func (c *SetPacketType) Opcode() byte      { return opSetPacketType }
func (c *SetPacketType) TxBuf() []byte     { return c.txBuf[:] }
func (c *SetPacketType) RxBuf() []byte     { return c.rxBuf[:] }
func (c *SetPacketType) TransferSize() int { return len(c.txBuf) }

// SetModulationParamsLora configures the LoRa modem.
type SetModulationParamsLora struct {
	txBuf [5]byte
	rxBuf [5]byte
}

func NewSetModulationParamsLora(sf Sf, bw Bw, cr Cr, lowDataRateOptimize bool) *SetModulationParamsLora {
	c := &SetModulationParamsLora{}
	c.txBuf[0] = opSetModulationParamsLora
	c.txBuf[1] = byte(sf)
	c.txBuf[2] = byte(bw)
	c.txBuf[3] = byte(cr)
	if lowDataRateOptimize {
		c.txBuf[4] = 1
	}
	return c
}

func (c *SetModulationParamsLora) Opcode() byte      { return opSetModulationParamsLora }
func (c *SetModulationParamsLora) TxBuf() []byte     { return c.txBuf[:] }
func (c *SetModulationParamsLora) RxBuf() []byte     { return c.rxBuf[:] }
func (c *SetModulationParamsLora) TransferSize() int { return len(c.txBuf) }

// SetPacketParams configures the LoRa packet handling block.
type SetPacketParams struct {
	txBuf [7]byte
	rxBuf [7]byte
}

func NewSetPacketParams(preambleLength uint16, headerType HeaderType, payloadLength byte, crcOn bool, invertIq InvertIq) *SetPacketParams {
	c := &SetPacketParams{}
	c.txBuf[0] = opSetPacketParams
	put16(c.txBuf[1:3], preambleLength)
	c.txBuf[3] = byte(headerType)
	c.txBuf[4] = payloadLength
	if crcOn {
		c.txBuf[5] = 1
	}
	c.txBuf[6] = byte(invertIq)
	return c
}

func (c *SetPacketParams) Opcode() byte      { return opSetPacketParams }
func (c *SetPacketParams) TxBuf() []byte     { return c.txBuf[:] }
func (c *SetPacketParams) RxBuf() []byte     { return c.rxBuf[:] }
func (c *SetPacketParams) TransferSize() int { return len(c.txBuf) }

// SetTxParams sets the TX output power and the PA ramping time.
type SetTxParams struct {
	txBuf [3]byte
	rxBuf [3]byte
}

func NewSetTxParams(power int8, rampTime RampTime) *SetTxParams {
	c := &SetTxParams{}
	c.txBuf[0] = opSetTxParams
	c.txBuf[1] = byte(power)
	c.txBuf[2] = byte(rampTime)
	return c
}

func (c *SetTxParams) Opcode() byte      { return opSetTxParams }
func (c *SetTxParams) TxBuf() []byte     { return c.txBuf[:] }
func (c *SetTxParams) RxBuf() []byte     { return c.rxBuf[:] }
func (c *SetTxParams) TransferSize() int { return len(c.txBuf) }

// SetBufferBaseAddress sets the TX and RX base addresses within the
// 256-byte data buffer.
type SetBufferBaseAddress struct {
	txBuf [3]byte
	rxBuf [3]byte
}

func NewSetBufferBaseAddress(txBaseAddress, rxBaseAddress byte) *SetBufferBaseAddress {
	c := &SetBufferBaseAddress{}
	c.txBuf[0] = opSetBufferBaseAddress
	c.txBuf[1] = txBaseAddress
	c.txBuf[2] = rxBaseAddress
	return c
}

func (c *SetBufferBaseAddress) Opcode() byte      { return opSetBufferBaseAddress }
func (c *SetBufferBaseAddress) TxBuf() []byte     { return c.txBuf[:] }
func (c *SetBufferBaseAddress) RxBuf() []byte     { return c.rxBuf[:] }
func (c *SetBufferBaseAddress) TransferSize() int { return len(c.txBuf) }

// SetLoraSymbNumTimeout sets the number of symbols the modem uses to
// validate a reception.
type SetLoraSymbNumTimeout struct {
	txBuf [2]byte
	rxBuf [2]byte
}

func NewSetLoraSymbNumTimeout(symbNum byte) *SetLoraSymbNumTimeout {
	c := &SetLoraSymbNumTimeout{}
	c.txBuf[0] = opSetLoraSymbNumTimeout
	c.txBuf[1] = symbNum
	return c
}

func (c *SetLoraSymbNumTimeout) Opcode() byte      { return opSetLoraSymbNumTimeout }
func (c *SetLoraSymbNumTimeout) TxBuf() []byte     { return c.txBuf[:] }
func (c *SetLoraSymbNumTimeout) RxBuf() []byte     { return c.rxBuf[:] }
func (c *SetLoraSymbNumTimeout) TransferSize() int { return len(c.txBuf) }

// SetDioIrqParams sets the IRQ mask and the routing of IRQ sources to
// the DIO1, DIO2 and DIO3 pins.
type SetDioIrqParams struct {
	txBuf [9]byte
	rxBuf [9]byte
}

func NewSetDioIrqParams(irqMask, dio1Mask, dio2Mask, dio3Mask Irq) *SetDioIrqParams {
	c := &SetDioIrqParams{}
	c.txBuf[0] = opSetDioIrqParams
	put16(c.txBuf[1:3], irqMask.Bits())
	put16(c.txBuf[3:5], dio1Mask.Bits())
	put16(c.txBuf[5:7], dio2Mask.Bits())
	put16(c.txBuf[7:9], dio3Mask.Bits())
	return c
}

func (c *SetDioIrqParams) Opcode() byte      { return opSetDioIrqParams }
func (c *SetDioIrqParams) TxBuf() []byte     { return c.txBuf[:] }
func (c *SetDioIrqParams) RxBuf() []byte     { return c.rxBuf[:] }
func (c *SetDioIrqParams) TransferSize() int { return len(c.txBuf) }

// ClearIrqStatus clears the given flags in the IRQ register.
type ClearIrqStatus struct {
	txBuf [3]byte
	rxBuf [3]byte
}

func NewClearIrqStatus(clear Irq) *ClearIrqStatus {
	c := &ClearIrqStatus{}
	c.txBuf[0] = opClearIrqStatus
	put16(c.txBuf[1:3], clear.Bits())
	return c
}

func (c *ClearIrqStatus) Opcode() byte      { return opClearIrqStatus }
func (c *ClearIrqStatus) TxBuf() []byte     { return c.txBuf[:] }
func (c *ClearIrqStatus) RxBuf() []byte     { return c.rxBuf[:] }
func (c *ClearIrqStatus) TransferSize() int { return len(c.txBuf) }

// SetDio2AsRfSwitchCtrl configures DIO2 to drive an external RF switch.
type SetDio2AsRfSwitchCtrl struct {
	txBuf [2]byte
	rxBuf [2]byte
}

func NewSetDio2AsRfSwitchCtrl(enable bool) *SetDio2AsRfSwitchCtrl {
	c := &SetDio2AsRfSwitchCtrl{}
	c.txBuf[0] = opSetDio2AsRfSwitchCtrl
	if enable {
		c.txBuf[1] = 1
	}
	return c
}

func (c *SetDio2AsRfSwitchCtrl) Opcode() byte      { return opSetDio2AsRfSwitchCtrl }
func (c *SetDio2AsRfSwitchCtrl) TxBuf() []byte     { return c.txBuf[:] }
func (c *SetDio2AsRfSwitchCtrl) RxBuf() []byte     { return c.rxBuf[:] }
func (c *SetDio2AsRfSwitchCtrl) TransferSize() int { return len(c.txBuf) }

// SetDio3AsTcxoCtrl configures DIO3 to supply an external TCXO.
// The delay is the oscillator stabilization time in units of 15.625 µs.
type SetDio3AsTcxoCtrl struct {
	txBuf [5]byte
	rxBuf [5]byte
}

func NewSetDio3AsTcxoCtrl(voltage TcxoVoltage, delay uint32) *SetDio3AsTcxoCtrl {
	c := &SetDio3AsTcxoCtrl{}
	c.txBuf[0] = opSetDio3AsTcxoCtrl
	c.txBuf[1] = byte(voltage)
	put24(c.txBuf[2:], delay)
	return c
}

func (c *SetDio3AsTcxoCtrl) Opcode() byte      { return opSetDio3AsTcxoCtrl }
func (c *SetDio3AsTcxoCtrl) TxBuf() []byte     { return c.txBuf[:] }
func (c *SetDio3AsTcxoCtrl) RxBuf() []byte     { return c.rxBuf[:] }
func (c *SetDio3AsTcxoCtrl) TransferSize() int { return len(c.txBuf) }

// ResetStats resets the packet counters read by GetStatsLora.
type ResetStats struct {
	txBuf [7]byte
	rxBuf [7]byte
}

func NewResetStats() *ResetStats {
	c := &ResetStats{}
	c.txBuf[0] = opResetStats
	return c
}

func (c *ResetStats) Opcode() byte      { return opResetStats }
func (c *ResetStats) TxBuf() []byte     { return c.txBuf[:] }
func (c *ResetStats) RxBuf() []byte     { return c.rxBuf[:] }
func (c *ResetStats) TransferSize() int { return len(c.txBuf) }

// ClearDeviceErrors clears the error flags read by GetDeviceErrors.
type ClearDeviceErrors struct {
	txBuf [3]byte
	rxBuf [3]byte
}

func NewClearDeviceErrors() *ClearDeviceErrors {
	c := &ClearDeviceErrors{}
	c.txBuf[0] = opClearDeviceErrors
	return c
}

func (c *ClearDeviceErrors) Opcode() byte      { return opClearDeviceErrors }
func (c *ClearDeviceErrors) TxBuf() []byte     { return c.txBuf[:] }
func (c *ClearDeviceErrors) RxBuf() []byte     { return c.rxBuf[:] }
func (c *ClearDeviceErrors) TransferSize() int { return len(c.txBuf) }
