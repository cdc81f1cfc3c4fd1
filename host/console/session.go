// Package console talks to the gripper firmware's line protocol over a
// serial port.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"gripper/core"
)

// ErrSlotList means the L output could not be understood.
var ErrSlotList = errors.New("unexpected slot list")

// Session sends command lines and collects the firmware's replies.
type Session struct {
	port  io.ReadWriter
	quiet time.Duration
	limit time.Duration
}

// NewSession wraps port. A reply is complete once the port has been quiet
// for quiet; Collect never waits longer than limit in total.
func NewSession(port io.ReadWriter, quiet, limit time.Duration) *Session {
	return &Session{port: port, quiet: quiet, limit: limit}
}

// Send writes line terminated by CR.
func (s *Session) Send(line string) error {
	log.Debugf("send %q", line)
	if _, err := io.WriteString(s.port, line+"\r"); err != nil {
		return fmt.Errorf("write %q: %w", line, err)
	}
	return nil
}

// Collect reads until the port goes quiet. Timeouts of the underlying
// port show up as empty reads or io.EOF and are not errors.
func (s *Session) Collect() (string, error) {
	var sb strings.Builder
	buf := make([]byte, 256)
	start := time.Now()
	last := start
	for time.Since(last) < s.quiet && time.Since(start) < s.limit {
		n, err := s.port.Read(buf)
		if n > 0 {
			sb.Write(buf[:n])
			last = time.Now()
		}
		if err != nil && !errors.Is(err, io.EOF) {
			return sb.String(), fmt.Errorf("read reply: %w", err)
		}
		if n == 0 {
			time.Sleep(10 * time.Millisecond)
		}
	}
	return sb.String(), nil
}

// Command sends line and returns the reply.
func (s *Session) Command(line string) (string, error) {
	if err := s.Send(line); err != nil {
		return "", err
	}
	return s.Collect()
}

// Slot is one saved position as listed by the firmware.
type Slot struct {
	Index  int
	Angles core.JointAngles
}

// ListSlots switches the firmware to EEPROM mode, parses its listing and
// returns the firmware to the menu.
func (s *Session) ListSlots() ([]Slot, error) {
	for _, line := range []string{"menu", "3"} {
		if _, err := s.Command(line); err != nil {
			return nil, err
		}
	}
	out, err := s.Command("L")
	if err != nil {
		return nil, err
	}
	if _, err := s.Command("menu"); err != nil {
		return nil, err
	}
	return ParseSlotList(out)
}

// ParseSlotList parses the reply to L: a count line followed by one line
// per slot. Other lines, such as the echoed command, are ignored.
func ParseSlotList(text string) ([]Slot, error) {
	count := -1
	var slots []Slot
	sc := bufio.NewScanner(strings.NewReader(text))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		var n int
		if _, err := fmt.Sscanf(line, "%d saved positions", &n); err == nil {
			count = n
			continue
		}
		if !strings.HasPrefix(line, "Pos ") {
			continue
		}
		var sl Slot
		a := &sl.Angles
		if _, err := fmt.Sscanf(line, "Pos %d: Base=%d, Arm1=%d, Arm2=%d, Gripper=%d",
			&sl.Index, &a.Base, &a.Arm1, &a.Arm2, &a.Gripper); err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrSlotList, line, err)
		}
		slots = append(slots, sl)
	}
	if count < 0 {
		return nil, fmt.Errorf("%w: no count line", ErrSlotList)
	}
	if count != len(slots) {
		return nil, fmt.Errorf("%w: count %d but %d entries", ErrSlotList, count, len(slots))
	}
	return slots, nil
}
