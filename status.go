package sx126x

// Status is the device status byte, clocked out on every transfer and
// decoded explicitly by GetStatus.
type Status byte

// ChipMode is the operating mode reported in status bits 6:4.
// 0x0 is unused; 0x1 and 0x7 are reserved but still decode.
type ChipMode byte

//go:generate stringer -type ChipMode

const (
	ChipModeUnused   ChipMode = 0x0
	ChipModeStbyRc   ChipMode = 0x2
	ChipModeStbyXosc ChipMode = 0x3
	ChipModeFs       ChipMode = 0x4
	ChipModeRx       ChipMode = 0x5
	ChipModeTx       ChipMode = 0x6
)

// CommandStatus is the command result reported in status bits 3:1.
// 0x0, 0x1 and 0x7 are reserved but still decode.
type CommandStatus byte

//go:generate stringer -type CommandStatus

const (
	CommandStatusDataAvailable   CommandStatus = 0x2
	CommandStatusTimeout         CommandStatus = 0x3
	CommandStatusProcessingError CommandStatus = 0x4
	CommandStatusExecuteFailure  CommandStatus = 0x5
	CommandStatusTxDone          CommandStatus = 0x6
)

// ChipMode extracts the operating mode field.
func (s Status) ChipMode() ChipMode { return ChipMode((s >> 4) & 0x07) }

// CommandStatus extracts the command status field.
func (s Status) CommandStatus() CommandStatus { return CommandStatus((s >> 1) & 0x07) }

// GetStatus reads the device status byte.
type GetStatus struct {
	txBuf [2]byte
	rxBuf [2]byte
}

func NewGetStatus() *GetStatus {
	c := &GetStatus{}
	c.txBuf[0] = opGetStatus
	return c
}

func (c *GetStatus) Opcode() byte      { return opGetStatus }
func (c *GetStatus) TxBuf() []byte     { return c.txBuf[:] }
func (c *GetStatus) RxBuf() []byte     { return c.rxBuf[:] }
func (c *GetStatus) TransferSize() int { return len(c.txBuf) }

// Status returns the status byte received during the transfer.
func (c *GetStatus) Status() Status { return Status(c.rxBuf[1]) }

func (c *GetStatus) ChipMode() ChipMode           { return c.Status().ChipMode() }
func (c *GetStatus) CommandStatus() CommandStatus { return c.Status().CommandStatus() }

// GetPacketType reads back the configured packet type.
type GetPacketType struct {
	txBuf [3]byte
	rxBuf [3]byte
}

func NewGetPacketType() *GetPacketType {
	c := &GetPacketType{}
	c.txBuf[0] = opGetPacketType
	return c
}

func (c *GetPacketType) Opcode() byte      { return opGetPacketType }
func (c *GetPacketType) TxBuf() []byte     { return c.txBuf[:] }
func (c *GetPacketType) RxBuf() []byte     { return c.rxBuf[:] }
func (c *GetPacketType) TransferSize() int { return len(c.txBuf) }

func (c *GetPacketType) PacketType() PacketType { return PacketTypeFromBits(c.rxBuf[2]) }

// GetIrqStatus reads the IRQ register.
type GetIrqStatus struct {
	txBuf [4]byte
	rxBuf [4]byte
}

func NewGetIrqStatus() *GetIrqStatus {
	c := &GetIrqStatus{}
	c.txBuf[0] = opGetIrqStatus
	return c
}

func (c *GetIrqStatus) Opcode() byte      { return opGetIrqStatus }
func (c *GetIrqStatus) TxBuf() []byte     { return c.txBuf[:] }
func (c *GetIrqStatus) RxBuf() []byte     { return c.rxBuf[:] }
func (c *GetIrqStatus) TransferSize() int { return len(c.txBuf) }

func (c *GetIrqStatus) IrqStatus() Irq { return IrqFromBits(get16(c.rxBuf[2:4])) }

// GetRxBufferStatus reads the length of the last received packet and
// the data buffer address of its first byte.
type GetRxBufferStatus struct {
	txBuf [4]byte
	rxBuf [4]byte
}

func NewGetRxBufferStatus() *GetRxBufferStatus {
	c := &GetRxBufferStatus{}
	c.txBuf[0] = opGetRxBufferStatus
	return c
}

func (c *GetRxBufferStatus) Opcode() byte      { return opGetRxBufferStatus }
func (c *GetRxBufferStatus) TxBuf() []byte     { return c.txBuf[:] }
func (c *GetRxBufferStatus) RxBuf() []byte     { return c.rxBuf[:] }
func (c *GetRxBufferStatus) TransferSize() int { return len(c.txBuf) }

func (c *GetRxBufferStatus) PayloadLengthRx() byte      { return c.rxBuf[2] }
func (c *GetRxBufferStatus) RxStartBufferPointer() byte { return c.rxBuf[3] }

// GetPacketStatusLora reads the signal quality of the last received
// LoRa packet.
type GetPacketStatusLora struct {
	txBuf [5]byte
	rxBuf [5]byte
}

func NewGetPacketStatusLora() *GetPacketStatusLora {
	c := &GetPacketStatusLora{}
	c.txBuf[0] = opGetPacketStatusLora
	return c
}

func (c *GetPacketStatusLora) Opcode() byte      { return opGetPacketStatusLora }
func (c *GetPacketStatusLora) TxBuf() []byte     { return c.txBuf[:] }
func (c *GetPacketStatusLora) RxBuf() []byte     { return c.rxBuf[:] }
func (c *GetPacketStatusLora) TransferSize() int { return len(c.txBuf) }

// RssiPkt returns the average packet RSSI in dBm.
// The raw byte holds twice the magnitude of the (non-positive) value.
func (c *GetPacketStatusLora) RssiPkt() int8 { return -int8(c.rxBuf[2] / 2) }

// SnrPkt returns the estimated packet SNR in dB.
// The raw byte is a signed quantity scaled by 4.
func (c *GetPacketStatusLora) SnrPkt() int8 { return int8(c.rxBuf[3]) / 4 }

// SignalRssiPkt returns the RSSI of the despread LoRa signal in dBm.
func (c *GetPacketStatusLora) SignalRssiPkt() int8 { return -int8(c.rxBuf[4] / 2) }

// GetStatsLora reads the LoRa packet counters.
type GetStatsLora struct {
	txBuf [8]byte
	rxBuf [8]byte
}

func NewGetStatsLora() *GetStatsLora {
	c := &GetStatsLora{}
	c.txBuf[0] = opGetStatsLora
	return c
}

func (c *GetStatsLora) Opcode() byte      { return opGetStatsLora }
func (c *GetStatsLora) TxBuf() []byte     { return c.txBuf[:] }
func (c *GetStatsLora) RxBuf() []byte     { return c.rxBuf[:] }
func (c *GetStatsLora) TransferSize() int { return len(c.txBuf) }

func (c *GetStatsLora) NbPktReceived() uint16  { return get16(c.rxBuf[2:4]) }
func (c *GetStatsLora) NbPktCrcError() uint16  { return get16(c.rxBuf[4:6]) }
func (c *GetStatsLora) NbPktHeaderErr() uint16 { return get16(c.rxBuf[6:8]) }

// GetDeviceErrors reads the device error flags.
type GetDeviceErrors struct {
	txBuf [4]byte
	rxBuf [4]byte
}

func NewGetDeviceErrors() *GetDeviceErrors {
	c := &GetDeviceErrors{}
	c.txBuf[0] = opGetDeviceErrors
	return c
}

func (c *GetDeviceErrors) Opcode() byte      { return opGetDeviceErrors }
func (c *GetDeviceErrors) TxBuf() []byte     { return c.txBuf[:] }
func (c *GetDeviceErrors) RxBuf() []byte     { return c.rxBuf[:] }
func (c *GetDeviceErrors) TransferSize() int { return len(c.txBuf) }

func (c *GetDeviceErrors) OpError() OpError { return OpErrorFromBits(get16(c.rxBuf[2:4])) }
