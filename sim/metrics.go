package sim

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts peripheral activity of a simulated board.
type Metrics struct {
	registry *prometheus.Registry

	pwmWrites    *prometheus.CounterVec
	gpioWrites   *prometheus.CounterVec
	presses      *prometheus.CounterVec
	eepromWrites prometheus.Counter
	rxBytes      prometheus.Counter
	txBytes      prometheus.Counter
	lines        prometheus.Counter
}

// NewMetrics registers every counter on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		pwmWrites: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gripper_pwm_writes_total",
			Help: "Duty cycle writes per PWM channel",
		}, []string{"channel"}),
		gpioWrites: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gripper_gpio_writes_total",
			Help: "Output level writes per GPIO pin",
		}, []string{"pin"}),
		presses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gripper_button_presses_total",
			Help: "Simulated button presses",
		}, []string{"button"}),
		eepromWrites: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gripper_eeprom_writes_total",
			Help: "EEPROM byte writes",
		}),
		rxBytes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gripper_uart_rx_bytes_total",
			Help: "Bytes delivered to the receive handler",
		}),
		txBytes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gripper_uart_tx_bytes_total",
			Help: "Bytes transmitted by the firmware",
		}),
		lines: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gripper_uart_line_terminators_total",
			Help: "CR or LF bytes received",
		}),
	}
	m.registry.MustRegister(m.pwmWrites, m.gpioWrites, m.presses,
		m.eepromWrites, m.rxBytes, m.txBytes, m.lines)
	return m
}

// Gatherer exposes the registry.
func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.registry
}

// WriteTextfile dumps all counters in the node exporter textfile format.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
