package core

import (
	"fmt"
	"time"
)

// Button identifies one of the active-low push buttons.
type Button uint8

const (
	ButtonMode Button = iota
	ButtonSave
	ButtonPlay

	buttonCount
)

func (b Button) String() string {
	switch b {
	case ButtonMode:
		return "mode"
	case ButtonSave:
		return "save"
	case ButtonPlay:
		return "play"
	}
	return "unknown"
}

// ButtonPins maps each Button to its pin.
type ButtonPins [buttonCount]GPIOPin

// Debouncer detects presses on pull-up inputs. A press is a high-to-low
// transition that still reads low after the settle delay; each press sets
// a flag that stays up until Take consumes it.
type Debouncer struct {
	gpio    GPIODriver
	pins    ButtonPins
	settle  time.Duration
	sleeper Sleeper

	last    [buttonCount]bool
	pending [buttonCount]bool
}

// NewDebouncer returns a debouncer that assumes all buttons start released.
func NewDebouncer(gpio GPIODriver, pins ButtonPins, settle time.Duration, sleeper Sleeper) *Debouncer {
	d := &Debouncer{
		gpio:    gpio,
		pins:    pins,
		settle:  settle,
		sleeper: sleeper,
	}
	for i := range d.last {
		d.last[i] = true
	}
	return d
}

// Configure sets every button pin to input with pull-up.
func (d *Debouncer) Configure() error {
	for i, pin := range d.pins {
		if err := d.gpio.ConfigureInputPullUp(pin); err != nil {
			return fmt.Errorf("configure %s button: %w", Button(i), err)
		}
	}
	return nil
}

// Poll samples all buttons once, then confirms each new falling edge.
func (d *Debouncer) Poll() {
	var now [buttonCount]bool
	for i, pin := range d.pins {
		now[i] = d.gpio.ReadPin(pin)
	}
	for i, pin := range d.pins {
		if d.last[i] && !now[i] {
			d.sleeper.Sleep(d.settle)
			if !d.gpio.ReadPin(pin) {
				d.pending[i] = true
				DebugPrintln("button " + Button(i).String() + " pressed")
			}
		}
	}
	d.last = now
}

// Take reports and clears the pending press for b.
func (d *Debouncer) Take(b Button) bool {
	if b >= buttonCount {
		return false
	}
	p := d.pending[b]
	d.pending[b] = false
	return p
}
