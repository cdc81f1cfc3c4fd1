package sim

import (
	"sync"

	log "github.com/sirupsen/logrus"

	"gripper/core"
)

// PWM records the compare value of each channel.
type PWM struct {
	mu      sync.Mutex
	duty    map[core.PWMChannel]core.PWMValue
	metrics *Metrics
}

// NewPWM returns a PWM recorder.
func NewPWM(m *Metrics) *PWM {
	return &PWM{duty: map[core.PWMChannel]core.PWMValue{}, metrics: m}
}

// ConfigureChannel starts a channel at zero duty.
func (p *PWM) ConfigureChannel(ch core.PWMChannel) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.duty[ch] = 0
	return nil
}

// SetDutyCycle stores value and logs changes.
func (p *PWM) SetDutyCycle(ch core.PWMChannel, value core.PWMValue) error {
	p.mu.Lock()
	old := p.duty[ch]
	p.duty[ch] = value
	p.mu.Unlock()

	p.metrics.pwmWrites.WithLabelValues(ch.String()).Inc()
	if old != value {
		log.Debugf("pwm %s: %d -> %d", ch, old, value)
	}
	return nil
}

// Duty returns the last value written to ch.
func (p *PWM) Duty(ch core.PWMChannel) core.PWMValue {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.duty[ch]
}
