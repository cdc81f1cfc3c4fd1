package controller

import "gripper/core"

// Mode is the active input source.
type Mode uint8

const (
	ModeMenu Mode = iota
	ModeManual
	ModeSerial
	ModeSlotProgram
)

func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "Menu"
	case ModeManual:
		return "Manual"
	case ModeSerial:
		return "Serial"
	case ModeSlotProgram:
		return "SlotProgram"
	}
	return "Unknown"
}

// Next is the mode the mode button selects. The menu is never part of
// the cycle.
func (m Mode) Next() Mode {
	if m >= ModeSlotProgram {
		return ModeManual
	}
	return m + 1
}

func (m Mode) light() core.ModeLight {
	switch m {
	case ModeManual:
		return core.LightManual
	case ModeSerial:
		return core.LightSerial
	case ModeSlotProgram:
		return core.LightSlotProgram
	}
	return core.LightNone
}
