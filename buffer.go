package sx126x

// Variable-length data buffer commands. Buffer capacity is fixed when
// the command is constructed; the logical data length may be shrunk
// afterwards, which changes only the transfer size, never the bytes
// already stored. The device auto-increments its buffer pointer for
// each byte transferred and wraps from 255 back to 0; that wraparound
// is a property of the device and is not validated here.

const (
	writeBufferHeader = 2 // opcode + offset
	readBufferHeader  = 3 // opcode + offset + dummy
)

// WriteBuffer stores payload bytes into the device data buffer,
// starting at the given offset.
type WriteBuffer struct {
	txBuf      []byte
	rxBuf      []byte
	dataLength int
}

func NewWriteBuffer(offset byte, data []byte) *WriteBuffer {
	c := &WriteBuffer{
		txBuf:      make([]byte, writeBufferHeader+len(data)),
		rxBuf:      make([]byte, writeBufferHeader+len(data)),
		dataLength: len(data),
	}
	c.txBuf[0] = opWriteBuffer
	c.txBuf[1] = offset
	copy(c.txBuf[writeBufferHeader:], data)
	return c
}

// SetDataLength changes the number of payload bytes the next transfer
// sends. n must fit within the capacity fixed at construction.
func (c *WriteBuffer) SetDataLength(n int) {
	if n < 0 || writeBufferHeader+n > len(c.txBuf) {
		panic("sx126x: data length exceeds buffer capacity")
	}
	c.dataLength = n
}

func (c *WriteBuffer) Opcode() byte      { return opWriteBuffer }
func (c *WriteBuffer) TxBuf() []byte     { return c.txBuf }
func (c *WriteBuffer) RxBuf() []byte     { return c.rxBuf }
func (c *WriteBuffer) TransferSize() int { return writeBufferHeader + c.dataLength }

// ReadBuffer reads payload bytes from the device data buffer,
// starting at the given offset. n is the maximum number of bytes to
// read, fixed as the command's capacity.
type ReadBuffer struct {
	txBuf      []byte
	rxBuf      []byte
	dataLength int
}

func NewReadBuffer(offset byte, n int) *ReadBuffer {
	c := &ReadBuffer{
		txBuf:      make([]byte, readBufferHeader+n),
		rxBuf:      make([]byte, readBufferHeader+n),
		dataLength: n,
	}
	c.txBuf[0] = opReadBuffer
	c.txBuf[1] = offset
	return c
}

// SetDataLength changes the number of payload bytes the next transfer
// reads. n must fit within the capacity fixed at construction.
func (c *ReadBuffer) SetDataLength(n int) {
	if n < 0 || readBufferHeader+n > len(c.txBuf) {
		panic("sx126x: data length exceeds buffer capacity")
	}
	c.dataLength = n
}

// Data returns the payload received by the last transfer:
// exactly the current data length of bytes following the
// status, offset-echo and dummy prefix.
func (c *ReadBuffer) Data() []byte {
	return c.rxBuf[readBufferHeader : readBufferHeader+c.dataLength]
}

func (c *ReadBuffer) Opcode() byte      { return opReadBuffer }
func (c *ReadBuffer) TxBuf() []byte     { return c.txBuf }
func (c *ReadBuffer) RxBuf() []byte     { return c.rxBuf }
func (c *ReadBuffer) TransferSize() int { return readBufferHeader + c.dataLength }
