package sx126x

import (
	"time"
)

// SX126x hardware-related constants.
const (
	FXOSC    = 32000000 // crystal frequency in Hz
	frfShift = 25       // frequency steps are FXOSC / 2^25 Hz

	// MaxPacketSize is the largest payload a LoRa packet can carry.
	MaxPacketSize = 255

	defaultPreambleLength = 8
	defaultTxPower        = 14 // dBm
)

// frf converts a frequency in Hertz to SetRfFrequency units.
func frf(freq uint32) uint32 {
	return uint32((uint64(freq)<<frfShift + FXOSC/2) / FXOSC)
}

// timeoutSteps converts a duration to the 15.625 µs units used by the
// SetTx and SetRx timeouts.
func timeoutSteps(d time.Duration) uint32 {
	return uint32(d / (15625 * time.Nanosecond))
}

// Init initializes the radio device for LoRa operation.
func (r *Radio) Init(frequency uint32) {
	r.Execute(NewSetStandby(StdbyRc))
	r.Execute(NewSetPacketType(PacketTypeLora))
	r.SetFrequency(frequency)
	r.Execute(NewSetBufferBaseAddress(0, 0))
	r.Execute(NewSetModulationParamsLora(Sf7, Bw125, Cr4_5, false))
	r.Execute(NewSetPaConfig(0x04, 0x07))
	r.Execute(NewSetTxParams(defaultTxPower, Ramp200us))
	r.Execute(NewSetDio2AsRfSwitchCtrl(true))
	irq := Irq(0).WithTxDone(true).WithRxDone(true).WithTimeout(true)
	r.Execute(NewSetDioIrqParams(irq, irq, 0, 0))
	r.Execute(NewClearDeviceErrors())
}

// Frequency returns the frequency most recently programmed with
// SetFrequency. (The SX126x has no command to read it back.)
func (r *Radio) Frequency() uint32 {
	return r.frequency
}

// SetFrequency sets the radio to the given frequency, in Hertz.
func (r *Radio) SetFrequency(freq uint32) {
	r.Execute(NewSetRfFrequency(frf(freq)))
	if r.err == nil {
		r.frequency = freq
	}
}

// Send transmits the given packet.
func (r *Radio) Send(data []byte) {
	if r.Error() != nil {
		return
	}
	if len(data) > MaxPacketSize {
		panic("packet too long")
	}
	r.Execute(NewSetStandby(StdbyRc))
	r.Execute(NewClearIrqStatus(IrqFromBits(0xFFFF)))
	r.Execute(NewSetBufferBaseAddress(0, 0))
	r.Execute(NewWriteBuffer(0, data))
	r.Execute(NewSetPacketParams(defaultPreambleLength, HeaderTypeVariableLength, byte(len(data)), true, InvertIqStandard))
	timeout := 3*time.Second + time.Duration(len(data))*time.Millisecond
	r.Execute(NewSetTx(timeoutSteps(timeout)))
	irq := r.waitIrq(Irq(0).WithTxDone(true).WithTimeout(true), timeout)
	r.Execute(NewClearIrqStatus(IrqFromBits(0xFFFF)))
	if irq.TxDone() && r.err == nil {
		r.stats.Packets.Sent++
		r.stats.Bytes.Sent += len(data)
	}
}

// Receive listens with the given timeout for an incoming packet.
// It returns the packet and the associated RSSI.
func (r *Radio) Receive(timeout time.Duration) ([]byte, int) {
	if r.Error() != nil {
		return nil, -128
	}
	r.Execute(NewClearIrqStatus(IrqFromBits(0xFFFF)))
	r.Execute(NewSetRx(timeoutSteps(timeout)))
	// Wait a little longer than the modem does.
	irq := r.waitIrq(Irq(0).WithRxDone(true).WithTimeout(true), timeout+5*time.Millisecond)
	if !irq.RxDone() {
		return nil, -128
	}
	s := NewGetRxBufferStatus()
	r.Execute(s)
	n := int(s.PayloadLengthRx())
	rb := NewReadBuffer(s.RxStartBufferPointer(), n)
	r.Execute(rb)
	p := NewGetPacketStatusLora()
	r.Execute(p)
	r.Execute(NewClearIrqStatus(IrqFromBits(0xFFFF)))
	if r.Error() != nil {
		return nil, -128
	}
	r.stats.Packets.Received++
	r.stats.Bytes.Received += n
	data := make([]byte, n)
	copy(data, rb.Data())
	return data, int(p.RssiPkt())
}

// SendAndReceive sends the given packet, then listens with the given
// timeout for an incoming packet.
// It returns the packet and the associated RSSI.
func (r *Radio) SendAndReceive(p []byte, timeout time.Duration) ([]byte, int) {
	r.Send(p)
	return r.Receive(timeout)
}

// waitIrq polls the IRQ register until one of the flags in mask is
// set, and returns the flags seen (zero on timeout or error).
func (r *Radio) waitIrq(mask Irq, timeout time.Duration) Irq {
	const pollInterval = 1 * time.Millisecond
	for timeout > 0 {
		g := NewGetIrqStatus()
		r.Execute(g)
		if r.err != nil {
			return 0
		}
		if irq := g.IrqStatus() & mask; irq != 0 {
			return irq
		}
		time.Sleep(pollInterval)
		timeout -= pollInterval
	}
	return 0
}
