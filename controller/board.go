package controller

import (
	"fmt"

	"gripper/config"
	"gripper/core"
)

// Drivers are the HAL implementations a target provides.
type Drivers struct {
	ADC     core.ADCDriver
	PWM     core.PWMDriver
	GPIO    core.GPIODriver
	EEPROM  core.EEPROMDriver
	UART    core.UARTDriver
	Sleeper core.Sleeper
}

// Assemble configures the peripherals and builds a controller over them.
// The returned console's HandleRx must be wired to the receive interrupt.
func Assemble(cfg *config.Config, d Drivers) (*Controller, *core.Serial, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	core.SetDebugEnabled(cfg.Debug)

	analog := core.NewAnalog(d.ADC, d.Sleeper, cfg.Timing.SamplePause, cfg.Filter.Deadband)
	var pots []core.ADCChannel
	for _, p := range cfg.Pins.Pots {
		pots = append(pots, core.ADCChannel(p))
	}
	if err := analog.Configure(pots...); err != nil {
		return nil, nil, err
	}

	servos := core.NewServoBank(d.PWM,
		core.DutyRange{Min: core.PWMValue(cfg.Servo.PairA.Min), Max: core.PWMValue(cfg.Servo.PairA.Max)},
		core.DutyRange{Min: core.PWMValue(cfg.Servo.PairB.Min), Max: core.PWMValue(cfg.Servo.PairB.Max)},
		cfg.Servo.GripperDivisor)
	if err := servos.Configure(); err != nil {
		return nil, nil, err
	}

	buttons := core.NewDebouncer(d.GPIO, core.ButtonPins{
		core.ButtonMode: core.GPIOPin(cfg.Pins.Mode),
		core.ButtonSave: core.GPIOPin(cfg.Pins.Save),
		core.ButtonPlay: core.GPIOPin(cfg.Pins.Play),
	}, cfg.Timing.Settle, d.Sleeper)
	if err := buttons.Configure(); err != nil {
		return nil, nil, err
	}

	leds := core.NewIndicators(d.GPIO,
		[3]core.GPIOPin{core.GPIOPin(cfg.Pins.ModeLEDs[0]), core.GPIOPin(cfg.Pins.ModeLEDs[1]), core.GPIOPin(cfg.Pins.ModeLEDs[2])},
		[2]core.GPIOPin{core.GPIOPin(cfg.Pins.SlotLEDs[0]), core.GPIOPin(cfg.Pins.SlotLEDs[1])})
	if err := leds.Configure(); err != nil {
		return nil, nil, fmt.Errorf("configure leds: %w", err)
	}

	console := core.NewSerial(d.UART, &core.LineBuffer{})

	c := New(cfg, Board{
		Analog:  analog,
		Servos:  servos,
		Slots:   core.NewSlots(d.EEPROM),
		LEDs:    leds,
		Buttons: buttons,
		Lines:   console.Lines(),
		Console: console,
		Sleeper: d.Sleeper,
	})
	return c, console, nil
}
