package core

// EEPROMDriver is byte-addressed non-volatile memory.
// Erased cells read back as 0xFF.
type EEPROMDriver interface {
	// Size returns the number of addressable bytes
	Size() int

	// Busy reports whether a previous write is still in progress
	Busy() bool

	// LoadByte reads one byte
	LoadByte(addr uint16) byte

	// StoreByte starts a write of one byte. Callers wait for !Busy()
	// before the next access.
	StoreByte(addr uint16, value byte)
}

// EEPROMCommitter is implemented by drivers that buffer stores, such as
// EEPROM emulated in flash. Commit makes every buffered store durable.
type EEPROMCommitter interface {
	Commit() error
}
