package sim

import (
	"fmt"
	"math/rand"
	"sync"

	"gripper/core"
)

// ADC returns potentiometer positions set by the operator, optionally with
// random jitter of up to ±Jitter counts.
type ADC struct {
	mu     sync.Mutex
	values map[core.ADCChannel]core.ADCValue
	jitter int
	rnd    *rand.Rand
}

// NewADC returns an ADC with every channel at mid scale.
func NewADC(jitter int, seed int64) *ADC {
	return &ADC{
		values: map[core.ADCChannel]core.ADCValue{},
		jitter: jitter,
		rnd:    rand.New(rand.NewSource(seed)),
	}
}

// ConfigureChannel puts the channel at mid scale.
func (a *ADC) ConfigureChannel(ch core.ADCChannel) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, ok := a.values[ch]; !ok {
		a.values[ch] = core.ADCMax / 2
	}
	return nil
}

// ReadRaw returns the channel's value plus jitter.
func (a *ADC) ReadRaw(ch core.ADCChannel) (core.ADCValue, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	v, ok := a.values[ch]
	if !ok {
		return 0, fmt.Errorf("adc channel %d not configured", ch)
	}
	n := int(v)
	if a.jitter > 0 {
		n += a.rnd.Intn(2*a.jitter+1) - a.jitter
	}
	if n < 0 {
		n = 0
	}
	if n > int(core.ADCMax) {
		n = int(core.ADCMax)
	}
	return core.ADCValue(n), nil
}

// Set moves a potentiometer.
func (a *ADC) Set(ch core.ADCChannel, v core.ADCValue) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if v > core.ADCMax {
		v = core.ADCMax
	}
	a.values[ch] = v
}

// Nudge moves a potentiometer by delta counts, saturating at the ends.
func (a *ADC) Nudge(ch core.ADCChannel, delta int) core.ADCValue {
	a.mu.Lock()
	defer a.mu.Unlock()
	n := int(a.values[ch]) + delta
	if n < 0 {
		n = 0
	}
	if n > int(core.ADCMax) {
		n = int(core.ADCMax)
	}
	a.values[ch] = core.ADCValue(n)
	return a.values[ch]
}
