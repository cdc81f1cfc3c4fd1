package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var testButtonPins = ButtonPins{10, 11, 12}

func newTestDebouncer(t *testing.T) (*Debouncer, *fakeGPIO, *recordingSleeper) {
	t.Helper()
	gpio := newFakeGPIO()
	sl := &recordingSleeper{}
	d := NewDebouncer(gpio, testButtonPins, 50*time.Millisecond, sl)
	require.NoError(t, d.Configure())
	return d, gpio, sl
}

func TestDebouncerPressOnce(t *testing.T) {
	d, gpio, sl := newTestDebouncer(t)

	gpio.levels[11] = false
	d.Poll()
	require.Equal(t, []time.Duration{50 * time.Millisecond}, sl.calls)

	// held down: no new edge
	d.Poll()
	require.Len(t, sl.calls, 1)

	require.True(t, d.Take(ButtonSave))
	require.False(t, d.Take(ButtonSave))
	require.False(t, d.Take(ButtonMode))
	require.False(t, d.Take(ButtonPlay))
}

func TestDebouncerRejectsBounce(t *testing.T) {
	d, gpio, _ := newTestDebouncer(t)

	gpio.levels[10] = false
	reads := 0
	gpio.onRead = func(pin GPIOPin) {
		if pin != 10 {
			return
		}
		reads++
		if reads == 2 {
			// released again before the settle delay ran out
			gpio.levels[10] = true
		}
	}
	d.Poll()
	require.False(t, d.Take(ButtonMode))
}

func TestDebouncerPressReleasePress(t *testing.T) {
	d, gpio, _ := newTestDebouncer(t)

	presses := 0
	for i := 0; i < 3; i++ {
		gpio.levels[12] = false
		d.Poll()
		gpio.levels[12] = true
		d.Poll()
		if d.Take(ButtonPlay) {
			presses++
		}
	}
	require.Equal(t, 3, presses)
}

func TestDebouncerFlagPersistsUntilTaken(t *testing.T) {
	d, gpio, _ := newTestDebouncer(t)
	gpio.levels[10] = false
	d.Poll()
	gpio.levels[10] = true
	d.Poll()
	d.Poll()
	require.True(t, d.Take(ButtonMode))
}
