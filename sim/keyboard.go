package sim

import (
	log "github.com/sirupsen/logrus"

	"gripper/core"
)

// Control keys understood by the simulator. Everything else goes to the
// firmware's serial port.
const (
	KeyMode    = 0x01 // Ctrl-A
	KeyPlay    = 0x10 // Ctrl-P
	KeySave    = 0x13 // Ctrl-S
	KeyNextPot = 0x14 // Ctrl-T
	KeyPotUp   = 0x15 // Ctrl-U
	KeyPotDown = 0x0e // Ctrl-N
	KeyQuit    = 0x03 // Ctrl-C
	KeyEOF     = 0x04 // Ctrl-D
)

// PotStep is how far one key press turns the selected potentiometer.
const PotStep = 32

// KeyHelp describes the control keys.
const KeyHelp = "Ctrl-A mode button, Ctrl-S save button, Ctrl-P play button, " +
	"Ctrl-T select pot, Ctrl-U/Ctrl-N turn pot, Ctrl-C quit"

// HandleKey acts on one input byte.
func (b *Board) HandleKey(c byte) error {
	switch c {
	case KeyQuit, KeyEOF:
		return ErrQuit
	case KeyMode:
		b.Press(core.ButtonMode)
	case KeySave:
		b.Press(core.ButtonSave)
	case KeyPlay:
		b.Press(core.ButtonPlay)
	case KeyNextPot:
		b.selected = (b.selected + 1) % core.Joint(len(core.AllJoints()))
		log.Infof("pot %s selected", b.selected)
	case KeyPotUp:
		b.turnPot(PotStep)
	case KeyPotDown:
		b.turnPot(-PotStep)
	default:
		b.Receive(c)
	}
	return nil
}

func (b *Board) turnPot(delta int) {
	ch := core.ADCChannel(b.Config.Pins.Pots[b.selected])
	v := b.ADC.Nudge(ch, delta)
	log.Infof("pot %s at %d (%d deg)", b.selected, v, core.ToAngle(v))
}
