package sim

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	log "github.com/sirupsen/logrus"
)

// DefaultEEPROMSize matches the 1 KiB part on the reference board.
const DefaultEEPROMSize = 1024

// EEPROM is byte-addressed memory persisted to an image file. A missing
// or short image is padded with erased (0xFF) bytes.
type EEPROM struct {
	mu      sync.Mutex
	cells   []byte
	file    *os.File
	metrics *Metrics
}

// NewMemoryEEPROM returns an erased EEPROM that is not backed by a file.
func NewMemoryEEPROM(size int, m *Metrics) *EEPROM {
	e := &EEPROM{cells: make([]byte, size), metrics: m}
	for i := range e.cells {
		e.cells[i] = 0xFF
	}
	return e
}

// OpenEEPROM loads or creates the image at path.
func OpenEEPROM(path string, size int, m *Metrics) (*EEPROM, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open eeprom image: %w", err)
	}
	e := NewMemoryEEPROM(size, m)
	n, err := io.ReadFull(f, e.cells)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		f.Close()
		return nil, fmt.Errorf("read eeprom image: %w", err)
	}
	if n < size {
		if _, err := f.WriteAt(e.cells[n:], int64(n)); err != nil {
			f.Close()
			return nil, fmt.Errorf("extend eeprom image: %w", err)
		}
	}
	e.file = f
	return e, nil
}

// Size returns the capacity in bytes.
func (e *EEPROM) Size() int {
	return len(e.cells)
}

// Busy is always false; writes complete synchronously.
func (e *EEPROM) Busy() bool {
	return false
}

// LoadByte reads one byte.
func (e *EEPROM) LoadByte(addr uint16) byte {
	e.mu.Lock()
	defer e.mu.Unlock()
	if int(addr) >= len(e.cells) {
		return 0xFF
	}
	return e.cells[addr]
}

// StoreByte writes one byte through to the image file.
func (e *EEPROM) StoreByte(addr uint16, value byte) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if int(addr) >= len(e.cells) {
		return
	}
	e.cells[addr] = value
	e.metrics.eepromWrites.Inc()
	if e.file != nil {
		if _, err := e.file.WriteAt([]byte{value}, int64(addr)); err != nil {
			log.Errorf("eeprom write at %d: %v", addr, err)
		}
	}
}

// Close flushes and closes the image file.
func (e *EEPROM) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.file == nil {
		return nil
	}
	err := e.file.Close()
	e.file = nil
	return err
}
