package core

import "fmt"

// ModeLight selects which mode LED is lit.
type ModeLight uint8

const (
	LightNone ModeLight = iota
	LightManual
	LightSerial
	LightSlotProgram
)

// Indicators drives three mode LEDs (at most one lit) and two LEDs that
// show the low bits of the current slot index.
type Indicators struct {
	gpio GPIODriver
	mode [3]GPIOPin
	slot [2]GPIOPin
}

// NewIndicators returns indicators on the given pins. mode is ordered
// Manual, Serial, SlotProgram; slot is ordered bit 0, bit 1.
func NewIndicators(gpio GPIODriver, mode [3]GPIOPin, slot [2]GPIOPin) *Indicators {
	return &Indicators{gpio: gpio, mode: mode, slot: slot}
}

// Configure sets every LED pin to output and turns it off.
func (ind *Indicators) Configure() error {
	for _, pin := range append(ind.mode[:], ind.slot[:]...) {
		if err := ind.gpio.ConfigureOutput(pin); err != nil {
			return fmt.Errorf("configure led pin %d: %w", pin, err)
		}
		if err := ind.gpio.SetPin(pin, false); err != nil {
			return err
		}
	}
	return nil
}

// ShowMode lights the LED for l and turns the others off.
func (ind *Indicators) ShowMode(l ModeLight) error {
	for i, pin := range ind.mode {
		if err := ind.gpio.SetPin(pin, ModeLight(i+1) == l); err != nil {
			return err
		}
	}
	return nil
}

// ShowSlot displays bits 0 and 1 of slot.
func (ind *Indicators) ShowSlot(slot uint8) error {
	for bit, pin := range ind.slot {
		if err := ind.gpio.SetPin(pin, slot&(1<<bit) != 0); err != nil {
			return err
		}
	}
	return nil
}

// ClearSlot turns both slot LEDs off.
func (ind *Indicators) ClearSlot() error {
	return ind.ShowSlot(0)
}
