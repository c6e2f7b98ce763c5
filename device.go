package sx126x

import (
	"fmt"
	"log"
	"time"

	"github.com/ecc1/gpio"
	"github.com/ecc1/radio"
	"github.com/ecc1/spi"
)

const (
	// Largest possible transfer: ReadBuffer header + full data buffer.
	maxTransfer = readBufferHeader + 256

	busyTimeout      = 10 * time.Millisecond
	busyPollInterval = 100 * time.Microsecond

	verbose    = false
	verboseSPI = false
)

func init() {
	if verbose || verboseSPI {
		log.SetFlags(log.Ltime | log.Lmicroseconds | log.LUTC)
	}
}

// Radio represents an open radio device.
type Radio struct {
	device    *spi.Device
	resetPin  gpio.OutputPin
	busyPin   gpio.InputPin
	xferBuf   [maxTransfer]byte
	frequency uint32
	stats     radio.Statistics
	err       error
}

// Open opens the radio device.
func Open() *Radio {
	const spiSpeed = 8000000 // Hz
	r := &Radio{}
	r.device, r.err = spi.Open(spiDevice, spiSpeed, 0)
	if r.err != nil {
		return r
	}
	r.resetPin, r.err = gpio.Output(resetPin, true, false)
	if r.err != nil {
		r.Close()
		return r
	}
	r.busyPin, r.err = gpio.Input(busyPin, false)
	if r.err != nil {
		r.Close()
		return r
	}
	r.Reset()
	g := NewGetStatus()
	r.Execute(g)
	if r.err == nil {
		if m := g.ChipMode(); m != ChipModeStbyRc {
			r.err = fmt.Errorf("unexpected chip mode %d after reset", m)
		}
	}
	if r.err != nil {
		r.Close()
	}
	return r
}

// Close closes the radio device.
func (r *Radio) Close() {
	r.err = r.device.Close()
}

// Name returns the radio's name.
func (r *Radio) Name() string {
	return "SX126x"
}

// Device returns the pathname of the radio's device.
func (r *Radio) Device() string {
	return spiDevice
}

// State returns the radio's state.
func (r *Radio) State() string {
	g := NewGetStatus()
	r.Execute(g)
	if r.err != nil {
		return "unknown"
	}
	s := g.Status()
	return fmt.Sprintf("chip mode %d, command status %d", s.ChipMode(), s.CommandStatus())
}

// Reset resets the SX126x hardware by pulsing NRESET.
func (r *Radio) Reset() {
	if r.Error() != nil {
		return
	}
	_ = r.resetPin.Write(true)
	time.Sleep(200 * time.Microsecond)
	r.err = r.resetPin.Write(false)
	time.Sleep(5 * time.Millisecond)
	r.waitBusy()
}

// Statistics returns the byte and packet counts for the radio device.
func (r *Radio) Statistics() radio.Statistics {
	return r.stats
}

// Error returns the error state of the radio device.
func (r *Radio) Error() error {
	return r.err
}

// SetError sets the error state of the radio device.
func (r *Radio) SetError(err error) {
	r.err = err
}

// Hardware returns the radio's hardware information.
func (r *Radio) Hardware() *radio.Hardware {
	panic("unimplemented")
}

// waitBusy waits for the BUSY line to go low, which the chip requires
// before NSS may be asserted for a command.
func (r *Radio) waitBusy() {
	if r.err != nil {
		return
	}
	for timeout := busyTimeout; timeout > 0; timeout -= busyPollInterval {
		busy, err := r.busyPin.Read()
		if err != nil {
			r.err = err
			return
		}
		if !busy {
			return
		}
		time.Sleep(busyPollInterval)
	}
	r.err = fmt.Errorf("BUSY did not go low within %v", busyTimeout)
}

// Execute performs the SPI transfer for cmd and leaves the device's
// response in the command's receive buffer.
func (r *Radio) Execute(cmd Command) {
	if r.err != nil {
		return
	}
	r.waitBusy()
	if r.err != nil {
		return
	}
	n := cmd.TransferSize()
	buf := r.xferBuf[:n]
	copy(buf, cmd.TxBuf())
	if verboseSPI {
		log.Printf("xfer % X", buf)
	}
	r.err = r.device.Transfer(buf)
	copy(cmd.RxBuf(), buf)
	if verboseSPI && r.err == nil {
		log.Printf("  -> % X", buf)
	}
}
