package core

// EEPROM serializes byte access on a driver, waiting out any write that is
// still in progress before the next read or write.
type EEPROM struct {
	drv EEPROMDriver
}

// NewEEPROM wraps a driver.
func NewEEPROM(drv EEPROMDriver) *EEPROM {
	return &EEPROM{drv: drv}
}

func (e *EEPROM) wait() {
	for e.drv.Busy() {
	}
}

// Size returns the driver's capacity in bytes.
func (e *EEPROM) Size() int {
	return e.drv.Size()
}

// Load reads one byte.
func (e *EEPROM) Load(addr uint16) byte {
	e.wait()
	return e.drv.LoadByte(addr)
}

// Store writes one byte.
func (e *EEPROM) Store(addr uint16, value byte) {
	e.wait()
	e.drv.StoreByte(addr, value)
}

// Commit flushes buffered stores on drivers that buffer them.
func (e *EEPROM) Commit() error {
	if c, ok := e.drv.(EEPROMCommitter); ok {
		return c.Commit()
	}
	return nil
}
