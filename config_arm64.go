package sx126x

// Configuration for Raspberry Pi with Waveshare SX1262 LoRa HAT.

const (
	spiDevice = "/dev/spidev0.0"
	resetPin  = 18
	busyPin   = 20
)
