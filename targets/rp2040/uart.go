//go:build rp2040

package main

import (
	"machine"
	"time"

	"gripper/core"
)

// uartDriver is the transmit side of UART0.
type uartDriver struct {
	uart *machine.UART
}

func (u uartDriver) TxReady() bool { return true }

func (u uartDriver) Transmit(b byte) { u.uart.WriteByte(b) }

// rxLoop drains the UART receive ring into the console. It runs as its own
// goroutine so it also runs while the main loop sleeps.
func rxLoop(uart *machine.UART, console *core.Serial) {
	for {
		for uart.Buffered() > 0 {
			b, err := uart.ReadByte()
			if err != nil {
				break
			}
			console.HandleRx(b)
		}
		time.Sleep(time.Millisecond)
	}
}
