package core

import "time"

type fakeADC struct {
	values map[ADCChannel][]ADCValue
	reads  int
	err    error
}

func (f *fakeADC) ConfigureChannel(ADCChannel) error { return f.err }

func (f *fakeADC) ReadRaw(ch ADCChannel) (ADCValue, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.reads++
	q := f.values[ch]
	v := q[0]
	if len(q) > 1 {
		f.values[ch] = q[1:]
	}
	return v, nil
}

type dutyWrite struct {
	ch    PWMChannel
	value PWMValue
}

type fakePWM struct {
	writes []dutyWrite
}

func (f *fakePWM) ConfigureChannel(PWMChannel) error { return nil }

func (f *fakePWM) SetDutyCycle(ch PWMChannel, value PWMValue) error {
	f.writes = append(f.writes, dutyWrite{ch, value})
	return nil
}

type fakeGPIO struct {
	levels  map[GPIOPin]bool
	outputs map[GPIOPin]bool
	// onRead runs before each read so a test can script pin changes
	onRead func(pin GPIOPin)
}

func newFakeGPIO() *fakeGPIO {
	return &fakeGPIO{levels: map[GPIOPin]bool{}, outputs: map[GPIOPin]bool{}}
}

func (f *fakeGPIO) ConfigureOutput(pin GPIOPin) error { f.outputs[pin] = false; return nil }

func (f *fakeGPIO) ConfigureInputPullUp(pin GPIOPin) error { f.levels[pin] = true; return nil }

func (f *fakeGPIO) SetPin(pin GPIOPin, value bool) error { f.outputs[pin] = value; return nil }

func (f *fakeGPIO) ReadPin(pin GPIOPin) bool {
	if f.onRead != nil {
		f.onRead(pin)
	}
	return f.levels[pin]
}

type memEEPROM struct {
	cells []byte
	busy  int
}

func newMemEEPROM(size int) *memEEPROM {
	m := &memEEPROM{cells: make([]byte, size)}
	for i := range m.cells {
		m.cells[i] = 0xFF
	}
	return m
}

func (m *memEEPROM) Size() int { return len(m.cells) }

func (m *memEEPROM) Busy() bool {
	if m.busy > 0 {
		m.busy--
		return true
	}
	return false
}

func (m *memEEPROM) LoadByte(addr uint16) byte { return m.cells[addr] }

func (m *memEEPROM) StoreByte(addr uint16, v byte) {
	m.cells[addr] = v
	m.busy = 2
}

type recordingSleeper struct {
	calls []time.Duration
}

func (r *recordingSleeper) Sleep(d time.Duration) { r.calls = append(r.calls, d) }

type fakeUART struct {
	sent []byte
}

func (f *fakeUART) TxReady() bool { return true }

func (f *fakeUART) Transmit(b byte) { f.sent = append(f.sent, b) }

// bufferedEEPROM holds stores until Commit, like flash emulation.
type bufferedEEPROM struct {
	*memEEPROM
	durable []byte
	commits int
	err     error
}

func newBufferedEEPROM(size int) *bufferedEEPROM {
	m := newMemEEPROM(size)
	return &bufferedEEPROM{memEEPROM: m, durable: append([]byte(nil), m.cells...)}
}

func (b *bufferedEEPROM) Commit() error {
	if b.err != nil {
		return b.err
	}
	b.commits++
	copy(b.durable, b.cells)
	return nil
}
