// Package controller is the gripper's mode state machine. It owns the
// commanded pose, the sequencer cursor and the next-save counter, and
// runs one main loop iteration per Step.
package controller

import (
	"context"
	"fmt"
	"io"

	"gripper/config"
	"gripper/core"
)

// Analog returns filtered potentiometer readings.
type Analog interface {
	ReadFiltered(ch core.ADCChannel, samples int) (core.ADCValue, error)
}

// Actuator drives the four servos.
type Actuator interface {
	Apply(a core.JointAngles) error
}

// SlotStore persists poses.
type SlotStore interface {
	Init() error
	Count() uint8
	Save(i uint8, rec core.Record) error
	Load(i uint8) (core.Record, error)
	Clear()
}

// Indicator shows the mode and the current slot.
type Indicator interface {
	ShowMode(l core.ModeLight) error
	ShowSlot(slot uint8) error
	ClearSlot() error
}

// Buttons yields debounced one-shot presses.
type Buttons interface {
	Poll()
	Take(b core.Button) bool
}

// Lines yields completed console lines.
type Lines interface {
	Take() (string, bool)
}

// Board is everything the controller talks to.
type Board struct {
	Analog  Analog
	Servos  Actuator
	Slots   SlotStore
	LEDs    Indicator
	Buttons Buttons
	Lines   Lines
	Console io.StringWriter
	Sleeper core.Sleeper
}

// State is a snapshot of the controller for reports and tests.
type State struct {
	Mode     Mode
	Angles   core.JointAngles
	Running  bool
	Cursor   uint8
	NextSave uint8
}

// Controller runs the main loop.
type Controller struct {
	cfg     *config.Config
	analog  Analog
	servos  Actuator
	slots   SlotStore
	leds    Indicator
	buttons Buttons
	lines   Lines
	console io.StringWriter
	sleeper core.Sleeper
	pots    [4]core.ADCChannel

	mode        Mode
	angles      core.JointAngles
	running     bool
	cursor      uint8
	nextSave    uint8
	manualTicks int
}

// New returns a controller in Menu mode. Call Boot before Step.
func New(cfg *config.Config, b Board) *Controller {
	c := &Controller{
		cfg:     cfg,
		analog:  b.Analog,
		servos:  b.Servos,
		slots:   b.Slots,
		leds:    b.LEDs,
		buttons: b.Buttons,
		lines:   b.Lines,
		console: b.Console,
		sleeper: b.Sleeper,
		mode:    ModeMenu,
	}
	for i := range c.pots {
		if i < len(cfg.Pins.Pots) {
			c.pots[i] = core.ADCChannel(cfg.Pins.Pots[i])
		} else {
			c.pots[i] = core.ADCChannel(i)
		}
	}
	return c
}

// Boot prepares the slot store, moves to the initial pose and prints the
// menu.
func (c *Controller) Boot() error {
	if err := c.slots.Init(); err != nil {
		return fmt.Errorf("init slot store: %w", err)
	}
	c.nextSave = c.slots.Count()
	p := c.cfg.InitialPose
	c.angles = core.JointAngles{Base: p.Base, Arm1: p.Arm1, Arm2: p.Arm2, Gripper: p.Gripper}
	c.apply()
	c.say(msgMenu)
	c.showMode()
	return nil
}

// State returns a snapshot of the loop state.
func (c *Controller) State() State {
	return State{
		Mode:     c.mode,
		Angles:   c.angles,
		Running:  c.running,
		Cursor:   c.cursor,
		NextSave: c.nextSave,
	}
}

// Run calls Step until ctx is done.
func (c *Controller) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		c.Step()
		if c.cfg.Timing.Idle > 0 {
			c.sleeper.Sleep(c.cfg.Timing.Idle)
		}
	}
}

// Step runs one main loop iteration: buttons, then the mode's periodic
// work, then at most one console line.
func (c *Controller) Step() {
	c.buttons.Poll()

	// Take always consumes, so presses outside their mode are discarded.
	if c.buttons.Take(core.ButtonMode) {
		c.cycleMode()
	}
	if c.buttons.Take(core.ButtonPlay) && c.mode == ModeSlotProgram {
		c.playNext()
	}
	if c.buttons.Take(core.ButtonSave) && (c.mode == ModeManual || c.mode == ModeSerial) {
		c.saveNext()
	}

	switch {
	case c.mode == ModeManual:
		c.manualTick()
	case c.mode == ModeSlotProgram && c.running:
		c.sequenceTick()
	}

	if line, ok := c.lines.Take(); ok {
		c.Interpret(line)
	}
}

func (c *Controller) cycleMode() {
	c.mode = c.mode.Next()
	c.running = false
	c.clearSlotLEDs()
	c.announce(c.mode, true)
	c.showMode()
}

func (c *Controller) manualTick() {
	for _, j := range core.AllJoints() {
		raw, err := c.analog.ReadFiltered(c.pots[j], c.cfg.Filter.Samples)
		if err != nil {
			core.DebugPrintln("manual: " + err.Error())
			c.sleeper.Sleep(c.cfg.Timing.ManualDelay)
			return
		}
		angle := core.ToAngle(raw)
		if j == core.JointGripper {
			angle = core.MaxAngle - angle
		}
		c.angles.Set(j, angle)
	}
	c.manualTicks++
	if c.manualTicks >= c.cfg.Manual.Throttle {
		c.apply()
		c.manualTicks = 0
	}
	c.sleeper.Sleep(c.cfg.Timing.ManualDelay)
}

func (c *Controller) sequenceTick() {
	n := c.slots.Count()
	if n == 0 || c.cursor >= n {
		c.running = false
		c.say(msgSequenceDone)
		return
	}
	if !c.loadSlot(c.cursor) {
		c.running = false
		return
	}
	c.say(msgRunning(int(c.cursor)+1, int(n)))
	c.cursor++
	c.sleeper.Sleep(c.cfg.Timing.Dwell)
}

func (c *Controller) playNext() {
	if c.running {
		c.say(msgPlayBusy)
		return
	}
	n := c.slots.Count()
	if n == 0 {
		c.say(msgNothingToPlay)
		return
	}
	if c.cursor >= n {
		c.cursor = 0
	}
	if !c.loadSlot(c.cursor) {
		return
	}
	c.say(msgPlaying(int(c.cursor)+1, int(n)))
	c.cursor++
}

func (c *Controller) saveNext() {
	if c.nextSave >= core.MaxSlots {
		c.say(msgMemoryFull)
		return
	}
	if err := c.slots.Save(c.nextSave, core.RecordFrom(c.angles)); err != nil {
		core.DebugPrintln("save: " + err.Error())
		return
	}
	c.say(msgButtonSavedSlot(int(c.nextSave)))
	c.nextSave++
}

// loadSlot makes slot i the commanded pose, drives the servos and shows
// the slot on the LEDs.
func (c *Controller) loadSlot(i uint8) bool {
	rec, err := c.slots.Load(i)
	if err != nil {
		core.DebugPrintln("load: " + err.Error())
		return false
	}
	c.angles = rec.Angles()
	c.apply()
	if err := c.leds.ShowSlot(i); err != nil {
		core.DebugPrintln("leds: " + err.Error())
	}
	return true
}

func (c *Controller) apply() {
	if err := c.servos.Apply(c.angles); err != nil {
		core.DebugPrintln("servos: " + err.Error())
	}
}

func (c *Controller) showMode() {
	if err := c.leds.ShowMode(c.mode.light()); err != nil {
		core.DebugPrintln("leds: " + err.Error())
	}
}

func (c *Controller) clearSlotLEDs() {
	if err := c.leds.ClearSlot(); err != nil {
		core.DebugPrintln("leds: " + err.Error())
	}
}

func (c *Controller) say(s string) {
	c.console.WriteString(s)
}
