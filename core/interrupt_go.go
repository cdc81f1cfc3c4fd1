//go:build !tinygo

package core

import "sync"

// On regular Go the receive "interrupt" is a goroutine, so the guard is a
// plain mutex.
var irqMu sync.Mutex

type irqState struct{}

// disableInterrupts blocks the receive producer until restoreInterrupts
func disableInterrupts() irqState {
	irqMu.Lock()
	return irqState{}
}

// restoreInterrupts releases the guard taken by disableInterrupts
func restoreInterrupts(irqState) {
	irqMu.Unlock()
}
