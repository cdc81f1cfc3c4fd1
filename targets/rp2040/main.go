//go:build rp2040

package main

import (
	"machine"
	"runtime"
	"time"

	"gripper/config"
	"gripper/controller"
	"gripper/core"
)

func main() {
	cfg := config.Default()

	uart := machine.UART0
	uart.Configure(machine.UARTConfig{
		BaudRate: cfg.Baud,
		TX:       machine.UART0_TX_PIN,
		RX:       machine.UART0_RX_PIN,
	})
	core.SetDebugWriter(func(s string) {
		uart.Write([]byte("[debug] " + s + "\r\n"))
	})

	eeprom, err := NewFlashEEPROM()
	if err != nil {
		fail()
	}

	ctrl, console, err := controller.Assemble(cfg, controller.Drivers{
		ADC:     NewRPAdcDriver(),
		PWM:     NewServoPWMDriver(cfg.Pins.Servos),
		GPIO:    NewRPGPIODriver(),
		EEPROM:  eeprom,
		UART:    uartDriver{uart: uart},
		Sleeper: core.SystemSleeper,
	})
	if err != nil {
		fail()
	}

	go rxLoop(uart, console)

	if err := ctrl.Boot(); err != nil {
		fail()
	}
	for {
		ctrl.Step()
		// let rxLoop run when the loop has no blocking delay of its own
		runtime.Gosched()
	}
}

// fail blinks the on-board LED forever.
func fail() {
	led := machine.LED
	led.Configure(machine.PinConfig{Mode: machine.PinOutput})
	for {
		led.High()
		time.Sleep(100 * time.Millisecond)
		led.Low()
		time.Sleep(100 * time.Millisecond)
	}
}
