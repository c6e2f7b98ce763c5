package sx126x

// Enumerated command parameters. Decoders mask the raw response byte
// to the width of the field first, so every reachable bit pattern maps
// to a member; patterns the datasheet marks reserved decode to their
// reserved values rather than failing.

// StdbyConfig selects the oscillator used in standby mode.
type StdbyConfig byte

const (
	StdbyRc   StdbyConfig = 0x00
	StdbyXosc StdbyConfig = 0x01
)

// PacketType identifies the packet handling protocol.
type PacketType byte

//go:generate stringer -type PacketType

const (
	PacketTypeGfsk     PacketType = 0x00
	PacketTypeLora     PacketType = 0x01
	PacketTypeReserved PacketType = 0x02
	PacketTypeLrFhss   PacketType = 0x03
)

// PacketTypeFromBits decodes the 2-bit packet type field.
func PacketTypeFromBits(v byte) PacketType { return PacketType(v & 0x03) }

// RampTime is the PA ramping time for SetTxParams.
type RampTime byte

const (
	Ramp10us   RampTime = 0x00
	Ramp20us   RampTime = 0x01
	Ramp40us   RampTime = 0x02
	Ramp80us   RampTime = 0x03
	Ramp200us  RampTime = 0x04
	Ramp800us  RampTime = 0x05
	Ramp1700us RampTime = 0x06
	Ramp3400us RampTime = 0x07
)

// RampTimeFromBits decodes the 3-bit ramp time field.
func RampTimeFromBits(v byte) RampTime { return RampTime(v & 0x07) }

// Sf is the LoRa spreading factor.
// Values outside Sf5..Sf12 are reserved but still decode.
type Sf byte

const (
	Sf5  Sf = 0x05
	Sf6  Sf = 0x06
	Sf7  Sf = 0x07
	Sf8  Sf = 0x08
	Sf9  Sf = 0x09
	Sf10 Sf = 0x0A
	Sf11 Sf = 0x0B
	Sf12 Sf = 0x0C
)

// SfFromBits decodes the 4-bit spreading factor field.
func SfFromBits(v byte) Sf { return Sf(v & 0x0F) }

// Bw is the LoRa modem bandwidth.
// Values 0x0B..0x0F are reserved but still decode.
type Bw byte

const (
	Bw7_8   Bw = 0x00 // 7.81 kHz
	Bw10_4  Bw = 0x08 // 10.42 kHz
	Bw15_6  Bw = 0x01 // 15.63 kHz
	Bw20_8  Bw = 0x09 // 20.83 kHz
	Bw31_25 Bw = 0x02
	Bw41_7  Bw = 0x0A // 41.67 kHz
	Bw62_5  Bw = 0x03
	Bw125   Bw = 0x04
	Bw250   Bw = 0x05
	Bw500   Bw = 0x06
)

// BwFromBits decodes the 4-bit bandwidth field.
func BwFromBits(v byte) Bw { return Bw(v & 0x0F) }

// Cr is the LoRa forward error correction coding rate.
// 0x00 is reserved but still decodes.
type Cr byte

const (
	Cr4_5   Cr = 0x01
	Cr4_6   Cr = 0x02
	Cr4_7   Cr = 0x03
	Cr4_8   Cr = 0x04
	Cr4_5Li Cr = 0x05 // long interleaving
	Cr4_6Li Cr = 0x06
	Cr4_8Li Cr = 0x07
)

// CrFromBits decodes the 3-bit coding rate field.
func CrFromBits(v byte) Cr { return Cr(v & 0x07) }

// HeaderType selects explicit or implicit LoRa headers.
type HeaderType byte

const (
	HeaderTypeVariableLength HeaderType = 0x00 // explicit header
	HeaderTypeFixedLength    HeaderType = 0x01 // implicit header
)

// HeaderTypeFromBits decodes the 1-bit header type field.
func HeaderTypeFromBits(v byte) HeaderType { return HeaderType(v & 0x01) }

// InvertIq selects standard or inverted IQ polarity.
type InvertIq byte

const (
	InvertIqStandard InvertIq = 0x00
	InvertIqInverted InvertIq = 0x01
)

// InvertIqFromBits decodes the 1-bit IQ polarity field.
func InvertIqFromBits(v byte) InvertIq { return InvertIq(v & 0x01) }

// TcxoVoltage is the supply voltage DIO3 provides to an external TCXO.
type TcxoVoltage byte

const (
	Tcxo1V6 TcxoVoltage = 0x00
	Tcxo1V7 TcxoVoltage = 0x01
	Tcxo1V8 TcxoVoltage = 0x02
	Tcxo2V2 TcxoVoltage = 0x03
	Tcxo2V4 TcxoVoltage = 0x04
	Tcxo2V7 TcxoVoltage = 0x05
	Tcxo3V0 TcxoVoltage = 0x06
	Tcxo3V3 TcxoVoltage = 0x07
)
