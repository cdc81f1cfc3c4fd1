package core

// PWMChannel names one compare output of the two servo timers.
// Pair 0 is the coarse 8-bit timer, pair 1 the fine 16-bit timer.
type PWMChannel uint8

const (
	PWM0A PWMChannel = iota // arm1
	PWM0B                   // base
	PWM1A                   // arm2
	PWM1B                   // gripper
)

// PWMChannels lists every output in hardware order.
var PWMChannels = [...]PWMChannel{PWM0A, PWM0B, PWM1A, PWM1B}

func (c PWMChannel) String() string {
	switch c {
	case PWM0A:
		return "PWM0A"
	case PWM0B:
		return "PWM0B"
	case PWM1A:
		return "PWM1A"
	case PWM1B:
		return "PWM1B"
	}
	return "PWM?"
}

// PWMValue is a compare value in timer ticks. The tick length differs
// between the two timer pairs and is known only to the target driver.
type PWMValue uint16

// PWMDriver is the abstract PWM interface that core code uses.
// Platform-specific implementations handle actual hardware control.
type PWMDriver interface {
	// ConfigureChannel starts the 50 Hz servo frame on a channel
	ConfigureChannel(ch PWMChannel) error

	// SetDutyCycle sets the compare value for a channel
	SetDutyCycle(ch PWMChannel, value PWMValue) error
}
