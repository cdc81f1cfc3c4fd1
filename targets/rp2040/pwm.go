//go:build rp2040

package main

import (
	"errors"
	"machine"

	"tinygo.org/x/drivers/servo"

	"gripper/core"
)

// Tick lengths of the two timer pairs of the reference board, in
// nanoseconds. Pair 0 ran at 16 MHz / 1024, pair 1 at 16 MHz / 8. Compare
// values from core are converted to pulse widths with these so the same
// duty tables drive the RP2040's PWM slices.
const (
	coarseTickNanos = 64000
	fineTickNanos   = 500
)

// ServoPWMDriver implements core.PWMDriver with tinygo's servo driver,
// one servo per channel at 50 Hz.
type ServoPWMDriver struct {
	pins   [4]machine.Pin
	servos map[core.PWMChannel]servo.Servo
}

// NewServoPWMDriver maps channels to pins. pins is in base, arm1, arm2,
// gripper order.
func NewServoPWMDriver(pins []uint32) *ServoPWMDriver {
	d := &ServoPWMDriver{servos: make(map[core.PWMChannel]servo.Servo)}
	if len(pins) == 4 {
		d.pins[core.PWM0B] = machine.Pin(pins[core.JointBase])
		d.pins[core.PWM0A] = machine.Pin(pins[core.JointArm1])
		d.pins[core.PWM1A] = machine.Pin(pins[core.JointArm2])
		d.pins[core.PWM1B] = machine.Pin(pins[core.JointGripper])
	}
	return d
}

// ConfigureChannel attaches a servo to the channel's pin.
func (d *ServoPWMDriver) ConfigureChannel(ch core.PWMChannel) error {
	if int(ch) >= len(d.pins) {
		return errors.New("unsupported PWM channel")
	}
	pin := d.pins[ch]
	s, err := servo.New(pwmSlice(pin), pin)
	if err != nil {
		return err
	}
	d.servos[ch] = s
	return nil
}

// SetDutyCycle converts the compare value to a pulse width.
func (d *ServoPWMDriver) SetDutyCycle(ch core.PWMChannel, value core.PWMValue) error {
	s, ok := d.servos[ch]
	if !ok {
		return errors.New("PWM channel not configured")
	}
	tick := uint32(fineTickNanos)
	if ch == core.PWM0A || ch == core.PWM0B {
		tick = coarseTickNanos
	}
	s.SetMicroseconds(int16(uint32(value) * tick / 1000))
	return nil
}

// pwmSlice returns the PWM slice that drives pin.
// RP2040: GPIO N is on slice (N >> 1) & 7.
func pwmSlice(pin machine.Pin) servo.PWM {
	switch (pin >> 1) & 0x7 {
	case 0:
		return machine.PWM0
	case 1:
		return machine.PWM1
	case 2:
		return machine.PWM2
	case 3:
		return machine.PWM3
	case 4:
		return machine.PWM4
	case 5:
		return machine.PWM5
	case 6:
		return machine.PWM6
	default:
		return machine.PWM7
	}
}
