package core

// Serial is the console: blocking byte transmit plus the receive path that
// feeds a LineBuffer and echoes accepted characters.
type Serial struct {
	uart  UARTDriver
	lines *LineBuffer
}

// NewSerial returns a console on uart delivering lines into lines.
func NewSerial(uart UARTDriver, lines *LineBuffer) *Serial {
	return &Serial{uart: uart, lines: lines}
}

// Lines returns the buffer filled by HandleRx.
func (s *Serial) Lines() *LineBuffer {
	return s.lines
}

// WriteByte waits for the transmitter and sends b.
func (s *Serial) WriteByte(b byte) error {
	for !s.uart.TxReady() {
	}
	s.uart.Transmit(b)
	return nil
}

// Write sends p byte by byte.
func (s *Serial) Write(p []byte) (int, error) {
	for _, b := range p {
		s.WriteByte(b)
	}
	return len(p), nil
}

// WriteString sends str byte by byte.
func (s *Serial) WriteString(str string) (int, error) {
	for i := 0; i < len(str); i++ {
		s.WriteByte(str[i])
	}
	return len(str), nil
}

// HandleRx is the receive interrupt body.
func (s *Serial) HandleRx(b byte) {
	if s.lines.Receive(b) {
		s.WriteByte(b)
	}
}
