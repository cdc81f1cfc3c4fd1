package core

import "fmt"

// DutyRange is the compare value span of one timer pair, Min at 0 degrees
// and Max at 180.
type DutyRange struct {
	Min PWMValue
	Max PWMValue
}

// Duty maps an angle to a compare value. The angle is clamped first.
func (r DutyRange) Duty(angle int) PWMValue {
	return r.Min + r.span(angle)
}

// Inverted maps an angle so that 0 degrees gives Max and 180 gives Min.
func (r DutyRange) Inverted(angle int) PWMValue {
	return r.Max - r.span(angle)
}

func (r DutyRange) span(angle int) PWMValue {
	return PWMValue(uint32(r.Max-r.Min) * uint32(ClampAngle(angle)) / MaxAngle)
}

// ServoBank drives the four joints on the two timer pairs:
// base on PWM0B, arm1 on PWM0A, arm2 on PWM1A and the gripper on PWM1B
// using the inverted fine mapping divided by gripperDivisor.
type ServoBank struct {
	pwm            PWMDriver
	coarse         DutyRange
	fine           DutyRange
	gripperDivisor PWMValue
}

// NewServoBank returns a bank writing through pwm.
func NewServoBank(pwm PWMDriver, coarse, fine DutyRange, gripperDivisor int) *ServoBank {
	if gripperDivisor < 1 {
		gripperDivisor = 1
	}
	return &ServoBank{
		pwm:            pwm,
		coarse:         coarse,
		fine:           fine,
		gripperDivisor: PWMValue(gripperDivisor),
	}
}

// Configure starts every PWM output.
func (s *ServoBank) Configure() error {
	for _, ch := range PWMChannels {
		if err := s.pwm.ConfigureChannel(ch); err != nil {
			return fmt.Errorf("configure %s: %w", ch, err)
		}
	}
	return nil
}

// Duties returns the compare value for each channel, indexed by PWMChannel.
func (s *ServoBank) Duties(a JointAngles) [len(PWMChannels)]PWMValue {
	var d [len(PWMChannels)]PWMValue
	d[PWM0B] = s.coarse.Duty(a.Base)
	d[PWM0A] = s.coarse.Duty(a.Arm1)
	d[PWM1A] = s.fine.Duty(a.Arm2)
	d[PWM1B] = s.fine.Inverted(a.Gripper) / s.gripperDivisor
	return d
}

// Apply writes all four duty cycles. It stops at the first driver error.
func (s *ServoBank) Apply(a JointAngles) error {
	d := s.Duties(a)
	for _, ch := range []PWMChannel{PWM0B, PWM0A, PWM1A, PWM1B} {
		if err := s.pwm.SetDutyCycle(ch, d[ch]); err != nil {
			return fmt.Errorf("set %s: %w", ch, err)
		}
	}
	return nil
}
