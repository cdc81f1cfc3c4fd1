package core

import "time"

// Sleeper blocks the main loop for a fixed delay. Tests substitute a
// recorder so that loop timing can be asserted without waiting.
type Sleeper interface {
	Sleep(d time.Duration)
}

// SleeperFunc adapts a plain function to Sleeper.
type SleeperFunc func(time.Duration)

// Sleep calls f(d).
func (f SleeperFunc) Sleep(d time.Duration) { f(d) }

// SystemSleeper sleeps on the real clock.
var SystemSleeper Sleeper = SleeperFunc(time.Sleep)
