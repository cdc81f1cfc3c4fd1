//go:build rp2040

package main

import (
	"machine"
)

// flashEEPROMSize is the emulated EEPROM size; one erase block holds it.
const flashEEPROMSize = 256

// FlashEEPROM emulates byte-addressed EEPROM in the first block of the
// flash data area. A RAM shadow serves reads and collects stores; Commit
// rewrites the block once per slot save or clear. Erased flash reads 0xFF,
// which matches an erased EEPROM.
type FlashEEPROM struct {
	shadow [flashEEPROMSize]byte
	dirty  bool
}

// NewFlashEEPROM loads the shadow from flash.
func NewFlashEEPROM() (*FlashEEPROM, error) {
	e := &FlashEEPROM{}
	if _, err := machine.Flash.ReadAt(e.shadow[:], 0); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *FlashEEPROM) Size() int { return flashEEPROMSize }

// Busy is false; flash writes block until done.
func (e *FlashEEPROM) Busy() bool { return false }

func (e *FlashEEPROM) LoadByte(addr uint16) byte {
	if int(addr) >= flashEEPROMSize {
		return 0xFF
	}
	return e.shadow[addr]
}

func (e *FlashEEPROM) StoreByte(addr uint16, value byte) {
	if int(addr) >= flashEEPROMSize || e.shadow[addr] == value {
		return
	}
	e.shadow[addr] = value
	e.dirty = true
}

// Commit erases the block and writes the shadow back if anything changed.
func (e *FlashEEPROM) Commit() error {
	if !e.dirty {
		return nil
	}
	if err := machine.Flash.EraseBlocks(0, 1); err != nil {
		return err
	}
	if _, err := machine.Flash.WriteAt(e.shadow[:], 0); err != nil {
		return err
	}
	e.dirty = false
	return nil
}
