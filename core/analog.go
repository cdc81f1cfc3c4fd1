package core

import (
	"fmt"
	"time"
)

// DeadbandChannels is the number of channels that keep a last-reported value.
const DeadbandChannels = 4

// Analog reads potentiometers through an ADCDriver, averaging several
// conversions and suppressing small changes per channel.
type Analog struct {
	adc      ADCDriver
	sleeper  Sleeper
	pause    time.Duration
	deadband int

	last [DeadbandChannels]ADCValue
}

// NewAnalog returns a filter that sleeps pause after every sample and
// ignores changes smaller than deadband counts.
func NewAnalog(adc ADCDriver, sleeper Sleeper, pause time.Duration, deadband int) *Analog {
	return &Analog{
		adc:      adc,
		sleeper:  sleeper,
		pause:    pause,
		deadband: deadband,
	}
}

// Configure prepares every given channel on the driver.
func (a *Analog) Configure(channels ...ADCChannel) error {
	for _, ch := range channels {
		if err := a.adc.ConfigureChannel(ch); err != nil {
			return fmt.Errorf("configure adc channel %d: %w", ch, err)
		}
	}
	return nil
}

// Read returns one unfiltered conversion.
func (a *Analog) Read(ch ADCChannel) (ADCValue, error) {
	v, err := a.adc.ReadRaw(ch)
	if err != nil {
		return 0, fmt.Errorf("read adc channel %d: %w", ch, err)
	}
	if v > ADCMax {
		v = ADCMax
	}
	return v, nil
}

// ReadFiltered averages samples conversions (truncating) and then applies
// the channel's deadband. A sample count below one reads once.
func (a *Analog) ReadFiltered(ch ADCChannel, samples int) (ADCValue, error) {
	if samples < 1 {
		samples = 1
	}
	var sum uint32
	for i := 0; i < samples; i++ {
		v, err := a.Read(ch)
		if err != nil {
			return 0, err
		}
		sum += uint32(v)
		a.sleeper.Sleep(a.pause)
	}
	return a.Deadband(ch, ADCValue(sum/uint32(samples))), nil
}

// Deadband returns the last reported value while |avg - last| stays below
// the threshold, and otherwise records and returns avg. Channels without
// a slot pass through unchanged.
func (a *Analog) Deadband(ch ADCChannel, avg ADCValue) ADCValue {
	if int(ch) >= len(a.last) {
		return avg
	}
	diff := int(avg) - int(a.last[ch])
	if diff < 0 {
		diff = -diff
	}
	if diff < a.deadband {
		return a.last[ch]
	}
	a.last[ch] = avg
	return avg
}

// ToAngle maps a 10-bit reading linearly onto 0..180 degrees.
func ToAngle(v ADCValue) int {
	if v > ADCMax {
		v = ADCMax
	}
	return int(uint32(v) * MaxAngle / uint32(ADCMax))
}
