package sx126x

// Packing of multi-byte fields into command buffers.
// All multi-byte fields on the SX126x SPI interface are big-endian.

func put16(b []byte, v uint16) {
	b[0] = byte(v >> 8)
	b[1] = byte(v)
}

func put24(b []byte, v uint32) {
	b[0] = byte(v >> 16)
	b[1] = byte(v >> 8)
	b[2] = byte(v)
}

func put32(b []byte, v uint32) {
	put16(b, uint16(v>>16))
	put16(b[2:], uint16(v))
}

func get16(b []byte) uint16 {
	return uint16(b[0])<<8 | uint16(b[1])
}
