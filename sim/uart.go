package sim

import (
	"io"
	"sync"

	log "github.com/sirupsen/logrus"
)

// UART sends transmitted bytes to a writer. Writes from the control loop
// and echoes from the receive goroutine are serialized.
type UART struct {
	mu      sync.Mutex
	w       io.Writer
	metrics *Metrics
}

// NewUART returns a UART writing to w.
func NewUART(w io.Writer, m *Metrics) *UART {
	return &UART{w: w, metrics: m}
}

// TxReady is always true.
func (u *UART) TxReady() bool {
	return true
}

// Transmit writes one byte.
func (u *UART) Transmit(b byte) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if _, err := u.w.Write([]byte{b}); err != nil {
		log.Warningf("uart transmit: %v", err)
		return
	}
	u.metrics.txBytes.Inc()
}
