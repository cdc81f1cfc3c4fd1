package controller

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"gripper/config"
	"gripper/core"
)

func TestModeNext(t *testing.T) {
	require.Equal(t, ModeManual, ModeMenu.Next())
	require.Equal(t, ModeSerial, ModeManual.Next())
	require.Equal(t, ModeSlotProgram, ModeSerial.Next())
	require.Equal(t, ModeManual, ModeSlotProgram.Next())
}

func TestBoot(t *testing.T) {
	mem := newMemEEPROM()
	mem.cells[40] = 2
	servos := &fakeServos{}
	leds := &fakeLEDs{mode: core.LightSerial}
	out := &strings.Builder{}
	c := New(config.Default(), Board{
		Servos:  servos,
		Slots:   core.NewSlots(mem),
		LEDs:    leds,
		Console: out,
	})
	require.NoError(t, c.Boot())

	require.Equal(t, []core.JointAngles{{Base: 90, Arm1: 180, Arm2: 90, Gripper: 0}}, servos.applied)
	require.Contains(t, out.String(), "Option: ")
	require.Equal(t, core.LightNone, leds.mode)
	require.Equal(t, State{
		Mode:     ModeMenu,
		Angles:   core.JointAngles{Base: 90, Arm1: 180, Arm2: 90, Gripper: 0},
		NextSave: 2,
	}, c.State())
}

func TestBootFailsOnTinyEEPROM(t *testing.T) {
	c := New(config.Default(), Board{Slots: core.NewSlots(&memEEPROM{cells: make([]byte, 8)})})
	require.Error(t, c.Boot())
}

func TestModeButtonCycles(t *testing.T) {
	h := newHarness(t)

	out := h.press(core.ButtonMode)
	require.Equal(t, ModeManual, h.ctrl.State().Mode)
	require.Equal(t, core.LightManual, h.leds.mode)
	require.Contains(t, out, "[BUTTON] Potentiometer control mode enabled")

	out = h.press(core.ButtonMode)
	require.Equal(t, ModeSerial, h.ctrl.State().Mode)
	require.NotContains(t, out, "Example")

	h.press(core.ButtonMode)
	require.Equal(t, ModeSlotProgram, h.ctrl.State().Mode)
	require.Equal(t, core.LightSlotProgram, h.leds.mode)

	h.press(core.ButtonMode)
	require.Equal(t, ModeManual, h.ctrl.State().Mode)
}

func TestModeButtonStopsSequenceAndClearsSlotLEDs(t *testing.T) {
	h := newHarness(t)
	h.saveSlots(t, core.Record{1, 2, 3, 4}, core.Record{5, 6, 7, 8})
	h.send("3")
	h.send("E")
	require.True(t, h.ctrl.State().Running)
	h.step()
	require.True(t, h.leds.slotSet)

	h.press(core.ButtonMode)
	require.False(t, h.ctrl.State().Running)
	require.False(t, h.leds.slotSet)
	require.Equal(t, ModeManual, h.ctrl.State().Mode)
}

func TestManualTick(t *testing.T) {
	h := newHarness(t)
	h.pots.values = map[core.ADCChannel]core.ADCValue{0: 512, 1: 0, 2: 1023, 3: 1023}
	h.send("1")
	require.Equal(t, ModeManual, h.ctrl.State().Mode)
	applied := len(h.servos.applied)
	h.sleeper.calls = nil

	// the selection tick ran no manual work yet, so two more ticks reach
	// the third iteration
	h.step()
	h.step()
	require.Len(t, h.servos.applied, applied)
	h.step()
	require.Len(t, h.servos.applied, applied+1)
	require.Equal(t, core.JointAngles{Base: 90, Arm1: 0, Arm2: 180, Gripper: 0}, h.servos.last())
	require.Equal(t, []time.Duration{30 * time.Millisecond, 30 * time.Millisecond, 30 * time.Millisecond}, h.sleeper.calls)

	h.step()
	h.step()
	h.step()
	require.Len(t, h.servos.applied, applied+2)
}

func TestSaveButton(t *testing.T) {
	h := newHarness(t)
	h.send("2")
	h.send("S,10,20,30,40")

	out := h.press(core.ButtonSave)
	require.Contains(t, out, "[SAVE BUTTON] Position saved to slot 0")
	require.Equal(t, uint8(1), h.slots.Count())
	rec, err := h.slots.Load(0)
	require.NoError(t, err)
	require.Equal(t, core.Record{10, 20, 30, 40}, rec)
	require.Equal(t, uint8(1), h.ctrl.State().NextSave)
}

func TestSaveButtonFull(t *testing.T) {
	h := newHarness(t)
	h.send("2")
	for i := 0; i < core.MaxSlots; i++ {
		h.press(core.ButtonSave)
	}
	require.Equal(t, uint8(core.MaxSlots), h.slots.Count())

	cells := append([]byte(nil), h.mem.cells...)
	stores := h.mem.stores

	out := h.press(core.ButtonSave)
	require.Contains(t, out, "EEPROM full")
	require.Equal(t, uint8(core.MaxSlots), h.ctrl.State().NextSave)
	require.Equal(t, stores, h.mem.stores)
	require.Equal(t, cells, h.mem.cells)
}

func TestButtonsOutsideTheirModeAreDiscarded(t *testing.T) {
	h := newHarness(t)
	h.saveSlots(t, core.Record{1, 2, 3, 4})

	require.Empty(t, h.press(core.ButtonSave))
	require.Empty(t, h.press(core.ButtonPlay))
	require.Equal(t, uint8(1), h.slots.Count())

	// a play press from the menu must not fire later
	h.send("3")
	applied := len(h.servos.applied)
	h.step()
	require.Len(t, h.servos.applied, applied)
}

func TestPlayButton(t *testing.T) {
	h := newHarness(t)
	h.send("3")

	out := h.press(core.ButtonPlay)
	require.Contains(t, out, "No saved positions to play")

	h.saveSlots(t, core.Record{1, 2, 3, 4}, core.Record{5, 6, 7, 8})
	out = h.press(core.ButtonPlay)
	require.Contains(t, out, "Playing position 1 of 2")
	require.Equal(t, core.JointAngles{Base: 1, Arm1: 2, Arm2: 3, Gripper: 4}, h.servos.last())

	h.press(core.ButtonPlay)
	require.Equal(t, core.JointAngles{Base: 5, Arm1: 6, Arm2: 7, Gripper: 8}, h.servos.last())
	require.Equal(t, uint8(1), h.leds.slot)

	// wraps back to the first slot
	out = h.press(core.ButtonPlay)
	require.Contains(t, out, "Playing position 1 of 2")
	require.Equal(t, uint8(0), h.leds.slot)
}

func TestPlayButtonIgnoredWhileSequenceRuns(t *testing.T) {
	h := newHarness(t)
	h.saveSlots(t, core.Record{1, 2, 3, 4}, core.Record{5, 6, 7, 8})
	h.send("3")
	h.send("E")

	h.buttons.pending[core.ButtonPlay] = true
	out := h.step()
	require.Contains(t, out, "press ignored")
	require.Contains(t, out, "Running position 1 of 2")
}

func TestAutoSequence(t *testing.T) {
	h := newHarness(t)
	h.saveSlots(t, core.Record{1, 2, 3, 4}, core.Record{5, 6, 7, 8})
	h.send("3")
	require.Contains(t, h.send("E"), "Running saved position sequence")
	h.sleeper.calls = nil

	out := h.step()
	require.Contains(t, out, "Running position 1 of 2")
	require.Equal(t, core.JointAngles{Base: 1, Arm1: 2, Arm2: 3, Gripper: 4}, h.servos.last())

	out = h.step()
	require.Contains(t, out, "Running position 2 of 2")
	require.Equal(t, core.JointAngles{Base: 5, Arm1: 6, Arm2: 7, Gripper: 8}, h.servos.last())
	require.Equal(t, []time.Duration{time.Second, time.Second}, h.sleeper.calls)

	applied := len(h.servos.applied)
	out = h.step()
	require.Contains(t, out, "Sequence complete")
	require.False(t, h.ctrl.State().Running)
	require.Len(t, h.servos.applied, applied)

	require.Empty(t, h.step())
}

func TestAutoSequenceEmptiedStore(t *testing.T) {
	h := newHarness(t)
	h.saveSlots(t, core.Record{1, 2, 3, 4})
	h.send("3")
	h.lines.queue = append(h.lines.queue, "E")
	h.step()
	// E was taken at the end of the iteration; clear before the first tick
	h.slots.Clear()

	applied := len(h.servos.applied)
	out := h.step()
	require.Contains(t, out, "Sequence complete")
	require.False(t, h.ctrl.State().Running)
	require.Len(t, h.servos.applied, applied)
}

func TestSerialCommandAppliesExactlyOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	servos := NewMockActuator(ctrl)
	leds := NewMockIndicator(ctrl)
	lines := &fakeLines{}
	out := &strings.Builder{}

	gomock.InOrder(
		servos.EXPECT().Apply(core.JointAngles{Base: 90, Arm1: 180, Arm2: 90, Gripper: 0}).Return(nil),
		servos.EXPECT().Apply(core.JointAngles{Base: 90, Arm1: 45, Arm2: 120, Gripper: 30}).Return(nil),
	)
	gomock.InOrder(
		leds.EXPECT().ShowMode(core.LightNone).Return(nil),
		leds.EXPECT().ShowMode(core.LightSerial).Return(nil),
	)

	c := New(config.Default(), Board{
		Servos:  servos,
		Slots:   core.NewSlots(newMemEEPROM()),
		LEDs:    leds,
		Buttons: &fakeButtons{pending: map[core.Button]bool{}},
		Lines:   lines,
		Console: out,
	})
	require.NoError(t, c.Boot())

	lines.queue = []string{"2", "S,90,45,120,30"}
	c.Step()
	c.Step()
	require.Contains(t, out.String(), "Position updated")
	require.Equal(t, core.JointAngles{Base: 90, Arm1: 45, Arm2: 120, Gripper: 30}, c.State().Angles)
}

func TestServoErrorsAreNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	servos := NewMockActuator(ctrl)
	servos.EXPECT().Apply(gomock.Any()).Return(errors.New("pwm fault")).Times(2)

	lines := &fakeLines{}
	out := &strings.Builder{}
	c := New(config.Default(), Board{
		Servos:  servos,
		Slots:   core.NewSlots(newMemEEPROM()),
		LEDs:    &fakeLEDs{},
		Buttons: &fakeButtons{pending: map[core.Button]bool{}},
		Lines:   lines,
		Console: out,
	})
	require.NoError(t, c.Boot())
	lines.queue = []string{"2", "S,1,2,3,4"}
	c.Step()
	c.Step()
	require.Equal(t, ModeSerial, c.State().Mode)
}

func TestRunStopsOnCancel(t *testing.T) {
	h := newHarness(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, h.ctrl.Run(ctx), context.Canceled)
}
