package sx126x

// Descriptor flattens a command into the form an external transfer
// queue consumes: the bytes to send, the buffer to receive into, and
// how many bytes to clock.
type Descriptor struct {
	TxBuf        []byte
	RxBuf        []byte
	TransferSize int
}

// Describe builds the transfer descriptor for cmd. The descriptor
// aliases the command's buffers, so the command must stay live until
// the transfer completes.
func Describe(cmd Command) Descriptor {
	n := cmd.TransferSize()
	return Descriptor{
		TxBuf:        cmd.TxBuf()[:n],
		RxBuf:        cmd.RxBuf()[:n],
		TransferSize: n,
	}
}
