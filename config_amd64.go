package sx126x

// Configuration for an x86 dev board with spidev and sysfs GPIO.

const (
	spiDevice = "/dev/spidev0.0"
	resetPin  = 23
	busyPin   = 24
)
