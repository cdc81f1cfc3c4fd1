package sim

import (
	"fmt"
	"strconv"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"gripper/core"
)

// GPIO simulates pull-up inputs driven by Press and outputs that are only
// recorded.
type GPIO struct {
	mu      sync.Mutex
	inputs  map[core.GPIOPin]bool
	outputs map[core.GPIOPin]bool
	names   map[core.GPIOPin]string
	// free is when a pin may next be pressed, one hold after its release
	free    map[core.GPIOPin]time.Time
	metrics *Metrics
}

// NewGPIO returns a GPIO bank with no configured pins.
func NewGPIO(m *Metrics) *GPIO {
	return &GPIO{
		inputs:  map[core.GPIOPin]bool{},
		outputs: map[core.GPIOPin]bool{},
		names:   map[core.GPIOPin]string{},
		free:    map[core.GPIOPin]time.Time{},
		metrics: m,
	}
}

// Name attaches a label used in logs and metrics.
func (g *GPIO) Name(pin core.GPIOPin, name string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.names[pin] = name
}

func (g *GPIO) label(pin core.GPIOPin) string {
	if n, ok := g.names[pin]; ok {
		return n
	}
	return strconv.Itoa(int(pin))
}

// ConfigureOutput makes pin an output driven low.
func (g *GPIO) ConfigureOutput(pin core.GPIOPin) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.inputs[pin]; ok {
		return fmt.Errorf("pin %d already configured as input", pin)
	}
	g.outputs[pin] = false
	return nil
}

// ConfigureInputPullUp makes pin an input that idles high.
func (g *GPIO) ConfigureInputPullUp(pin core.GPIOPin) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.outputs[pin]; ok {
		return fmt.Errorf("pin %d already configured as output", pin)
	}
	g.inputs[pin] = true
	return nil
}

// SetPin drives an output.
func (g *GPIO) SetPin(pin core.GPIOPin, value bool) error {
	g.mu.Lock()
	old, ok := g.outputs[pin]
	if !ok {
		g.mu.Unlock()
		return fmt.Errorf("pin %d is not an output", pin)
	}
	g.outputs[pin] = value
	name := g.label(pin)
	g.mu.Unlock()

	g.metrics.gpioWrites.WithLabelValues(name).Inc()
	if old != value {
		log.Debugf("gpio %s: %t", name, value)
	}
	return nil
}

// ReadPin returns the level of an input or the last value of an output.
func (g *GPIO) ReadPin(pin core.GPIOPin) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if v, ok := g.inputs[pin]; ok {
		return v
	}
	return g.outputs[pin]
}

// Output returns the level of an output pin.
func (g *GPIO) Output(pin core.GPIOPin) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.outputs[pin]
}

// Press pulls an input low for hold and then releases it. A press that
// arrives while the pin is still held, or released for less than hold, is
// queued behind it so that every press produces its own falling edge.
func (g *GPIO) Press(pin core.GPIOPin, hold time.Duration) {
	g.mu.Lock()
	now := time.Now()
	start := now
	if next, ok := g.free[pin]; ok && next.After(now) {
		start = next
	}
	release := start.Add(hold)
	g.free[pin] = release.Add(hold)
	name := g.label(pin)
	if start.Equal(now) {
		g.inputs[pin] = false
	}
	g.mu.Unlock()

	g.metrics.presses.WithLabelValues(name).Inc()
	if !start.Equal(now) {
		time.AfterFunc(start.Sub(now), func() { g.setInput(pin, false) })
	}
	time.AfterFunc(release.Sub(now), func() { g.setInput(pin, true) })
}

func (g *GPIO) setInput(pin core.GPIOPin, level bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.inputs[pin] = level
}
