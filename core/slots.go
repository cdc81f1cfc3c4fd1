package core

import (
	"errors"
	"fmt"
)

// Slot store layout: MaxSlots records of RecordSize bytes from address 0,
// followed by the saved-count byte.
const (
	MaxSlots   = 10
	RecordSize = 4

	countAddr = MaxSlots * RecordSize
	erased    = 0xFF
)

// ErrSlotOutOfRange is returned for slot indices >= MaxSlots.
var ErrSlotOutOfRange = errors.New("slot index out of range")

// Slots persists up to MaxSlots poses in EEPROM.
type Slots struct {
	mem *EEPROM
}

// NewSlots returns a slot store on drv. Call Init before use.
func NewSlots(drv EEPROMDriver) *Slots {
	return &Slots{mem: NewEEPROM(drv)}
}

// Init checks capacity and turns an erased count byte into zero.
func (s *Slots) Init() error {
	if s.mem.Size() <= countAddr {
		return fmt.Errorf("eeprom too small: %d bytes, need %d", s.mem.Size(), countAddr+1)
	}
	if s.mem.Load(countAddr) == erased {
		s.mem.Store(countAddr, 0)
		if err := s.mem.Commit(); err != nil {
			return fmt.Errorf("init slot count: %w", err)
		}
	}
	return nil
}

// Count returns the number of saved slots, never more than MaxSlots.
func (s *Slots) Count() uint8 {
	n := s.mem.Load(countAddr)
	if n > MaxSlots {
		return MaxSlots
	}
	return n
}

// Save writes rec to slot i. Saving at or beyond the current count grows
// the count to i+1.
func (s *Slots) Save(i uint8, rec Record) error {
	if i >= MaxSlots {
		return fmt.Errorf("save slot %d: %w", i, ErrSlotOutOfRange)
	}
	base := uint16(i) * RecordSize
	for k, b := range rec {
		s.mem.Store(base+uint16(k), b)
	}
	if i >= s.Count() {
		s.mem.Store(countAddr, i+1)
	}
	if err := s.mem.Commit(); err != nil {
		return fmt.Errorf("save slot %d: %w", i, err)
	}
	return nil
}

// Load reads slot i. It does not check i against the saved count.
func (s *Slots) Load(i uint8) (Record, error) {
	var rec Record
	if i >= MaxSlots {
		return rec, fmt.Errorf("load slot %d: %w", i, ErrSlotOutOfRange)
	}
	base := uint16(i) * RecordSize
	for k := range rec {
		rec[k] = s.mem.Load(base + uint16(k))
	}
	return rec, nil
}

// Clear forgets every slot by zeroing the count. Slot bytes are left as is.
func (s *Slots) Clear() {
	s.mem.Store(countAddr, 0)
	if err := s.mem.Commit(); err != nil {
		DebugPrintln("clear slots: " + err.Error())
	}
}
