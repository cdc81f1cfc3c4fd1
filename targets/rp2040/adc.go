//go:build rp2040

package main

import (
	"errors"
	"machine"

	"gripper/core"
)

// RpAdcDriver implements core.ADCDriver using TinyGo's machine.ADC.
// Channels 0-3 are GPIO26-29.
type RpAdcDriver struct {
	channels map[core.ADCChannel]*machine.ADC
}

// NewRPAdcDriver initializes the ADC block.
func NewRPAdcDriver() *RpAdcDriver {
	machine.InitADC()
	return &RpAdcDriver{
		channels: make(map[core.ADCChannel]*machine.ADC),
	}
}

// ConfigureChannel sets up the pin mux for one channel.
func (d *RpAdcDriver) ConfigureChannel(ch core.ADCChannel) error {
	if _, ok := d.channels[ch]; ok {
		return nil
	}

	var adc machine.ADC
	switch ch {
	case 0:
		adc = machine.ADC{Pin: machine.ADC0}
	case 1:
		adc = machine.ADC{Pin: machine.ADC1}
	case 2:
		adc = machine.ADC{Pin: machine.ADC2}
	case 3:
		adc = machine.ADC{Pin: machine.ADC3}
	default:
		return errors.New("unsupported ADC channel")
	}

	if err := adc.Configure(machine.ADCConfig{}); err != nil {
		return err
	}
	d.channels[ch] = &adc
	return nil
}

// ReadRaw converts once. machine.ADC scales every result to 16 bits, so
// the top 10 bits are returned.
func (d *RpAdcDriver) ReadRaw(ch core.ADCChannel) (core.ADCValue, error) {
	adc, ok := d.channels[ch]
	if !ok {
		return 0, errors.New("ADC channel not configured")
	}
	return core.ADCValue(adc.Get() >> 6), nil
}
