package controller

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"gripper/config"
	"gripper/core"
)

type fakePots struct {
	values map[core.ADCChannel]core.ADCValue
	calls  int
}

func (f *fakePots) ReadFiltered(ch core.ADCChannel, samples int) (core.ADCValue, error) {
	f.calls++
	return f.values[ch], nil
}

type fakeServos struct {
	applied []core.JointAngles
}

func (f *fakeServos) Apply(a core.JointAngles) error {
	f.applied = append(f.applied, a)
	return nil
}

func (f *fakeServos) last() core.JointAngles {
	return f.applied[len(f.applied)-1]
}

type fakeLEDs struct {
	mode    core.ModeLight
	slot    uint8
	slotSet bool
}

func (f *fakeLEDs) ShowMode(l core.ModeLight) error { f.mode = l; return nil }

func (f *fakeLEDs) ShowSlot(slot uint8) error { f.slot, f.slotSet = slot, true; return nil }

func (f *fakeLEDs) ClearSlot() error { f.slot, f.slotSet = 0, false; return nil }

type fakeButtons struct {
	pending map[core.Button]bool
}

func (f *fakeButtons) Poll() {}

func (f *fakeButtons) Take(b core.Button) bool {
	p := f.pending[b]
	delete(f.pending, b)
	return p
}

type fakeLines struct {
	queue []string
}

func (f *fakeLines) Take() (string, bool) {
	if len(f.queue) == 0 {
		return "", false
	}
	line := f.queue[0]
	f.queue = f.queue[1:]
	return line, true
}

type memEEPROM struct {
	cells  []byte
	stores int
}

func newMemEEPROM() *memEEPROM {
	m := &memEEPROM{cells: make([]byte, 64)}
	for i := range m.cells {
		m.cells[i] = 0xFF
	}
	return m
}

func (m *memEEPROM) Size() int                     { return len(m.cells) }
func (m *memEEPROM) Busy() bool                    { return false }
func (m *memEEPROM) LoadByte(addr uint16) byte     { return m.cells[addr] }
func (m *memEEPROM) StoreByte(addr uint16, v byte) { m.cells[addr] = v; m.stores++ }

type recordingSleeper struct {
	calls []time.Duration
}

func (r *recordingSleeper) Sleep(d time.Duration) { r.calls = append(r.calls, d) }

type harness struct {
	ctrl    *Controller
	pots    *fakePots
	servos  *fakeServos
	leds    *fakeLEDs
	buttons *fakeButtons
	lines   *fakeLines
	slots   *core.Slots
	mem     *memEEPROM
	out     *strings.Builder
	sleeper *recordingSleeper
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		pots:    &fakePots{values: map[core.ADCChannel]core.ADCValue{}},
		servos:  &fakeServos{},
		leds:    &fakeLEDs{},
		buttons: &fakeButtons{pending: map[core.Button]bool{}},
		lines:   &fakeLines{},
		mem:     newMemEEPROM(),
		out:     &strings.Builder{},
		sleeper: &recordingSleeper{},
	}
	h.slots = core.NewSlots(h.mem)
	h.ctrl = New(config.Default(), Board{
		Analog:  h.pots,
		Servos:  h.servos,
		Slots:   h.slots,
		LEDs:    h.leds,
		Buttons: h.buttons,
		Lines:   h.lines,
		Console: h.out,
		Sleeper: h.sleeper,
	})
	require.NoError(t, h.ctrl.Boot())
	h.out.Reset()
	return h
}

// send queues a line and runs one loop iteration, returning the output.
func (h *harness) send(line string) string {
	h.lines.queue = append(h.lines.queue, line)
	return h.step()
}

func (h *harness) press(b core.Button) string {
	h.buttons.pending[b] = true
	return h.step()
}

func (h *harness) step() string {
	h.out.Reset()
	h.ctrl.Step()
	return h.out.String()
}

func (h *harness) saveSlots(t *testing.T, recs ...core.Record) {
	t.Helper()
	for i, r := range recs {
		require.NoError(t, h.slots.Save(uint8(i), r))
	}
}
