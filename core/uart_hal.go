package core

// UARTDriver is the transmit half of the serial port. Receive is
// interrupt driven and enters core through Serial.HandleRx.
type UARTDriver interface {
	// TxReady reports whether the transmit register can take a byte
	TxReady() bool

	// Transmit hands one byte to the hardware
	Transmit(b byte)
}
