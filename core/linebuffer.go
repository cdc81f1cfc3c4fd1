package core

import "sync/atomic"

// LineCapacity is the receive buffer size including the terminator, so a
// line holds at most LineCapacity-1 characters.
const LineCapacity = 20

// LineBuffer assembles received bytes into lines. Receive runs in the
// receive interrupt; Take runs in the main loop. A completed line waits in
// a one-deep mailbox and is overwritten if another line completes before
// the main loop takes it.
type LineBuffer struct {
	// producer side, touched only by Receive
	staging [LineCapacity - 1]byte
	n       int

	// mailbox, guarded by disableInterrupts
	line    [LineCapacity - 1]byte
	lineLen int
	ready   atomic.Bool
}

// Receive handles one byte from the port and reports whether it should be
// echoed. CR and LF end a non-empty line and are never echoed. Bytes past
// the capacity are dropped without echo.
func (lb *LineBuffer) Receive(b byte) bool {
	if b == '\r' || b == '\n' {
		if lb.n == 0 {
			return false
		}
		state := disableInterrupts()
		copy(lb.line[:], lb.staging[:lb.n])
		lb.lineLen = lb.n
		lb.ready.Store(true)
		restoreInterrupts(state)
		lb.n = 0
		return false
	}
	if lb.n >= len(lb.staging) {
		return false
	}
	lb.staging[lb.n] = b
	lb.n++
	return true
}

// Ready reports whether a completed line is waiting.
func (lb *LineBuffer) Ready() bool {
	return lb.ready.Load()
}

// Take returns the pending line and clears the mailbox.
func (lb *LineBuffer) Take() (string, bool) {
	if !lb.ready.Load() {
		return "", false
	}
	state := disableInterrupts()
	defer restoreInterrupts(state)
	line := string(lb.line[:lb.lineLen])
	lb.ready.Store(false)
	return line, true
}
