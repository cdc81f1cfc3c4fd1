package controller

import (
	"errors"

	"gripper/controller/command"
	"gripper/core"
)

// slotCommand is one entry of the EEPROM mode command table.
type slotCommand struct {
	Kind        command.Kind
	Syntax      string
	Run         func(c *Controller, slot int)
	Description string
}

var slotCommands = []*slotCommand{
	{
		Kind:        command.SaveSlot,
		Syntax:      "G,n",
		Run:         (*Controller).saveSlot,
		Description: "Save the current position to slot n",
	},
	{
		Kind:        command.LoadSlot,
		Syntax:      "C,n",
		Run:         (*Controller).recallSlot,
		Description: "Load slot n",
	},
	{
		Kind:        command.Execute,
		Syntax:      "E",
		Run:         (*Controller).startSequence,
		Description: "Run the saved position sequence",
	},
	{
		Kind:        command.Clear,
		Syntax:      "B",
		Run:         (*Controller).clearSlots,
		Description: "Clear all saved positions",
	},
	{
		Kind:        command.List,
		Syntax:      "L",
		Run:         (*Controller).listSlots,
		Description: "List saved positions",
	},
}

func slotUsage() string {
	s := "Available commands:\r\n"
	for _, sc := range slotCommands {
		s += sc.Syntax + " - " + sc.Description + "\r\n"
	}
	return s + "Press the play button to step through the saved positions one by one\r\n" + msgBackToMenu
}

func serialUsage() string {
	return msgFormat + "P - Report the current position\r\n" + msgBackToMenu
}

// Interpret runs one completed console line against the current mode.
func (c *Controller) Interpret(line string) {
	if command.IsMenu(line) {
		c.mode = ModeMenu
		c.running = false
		c.say(msgMenu)
		c.showMode()
		return
	}

	switch c.mode {
	case ModeMenu:
		c.selectMode(line)
	case ModeSerial:
		c.serialLine(line)
	case ModeSlotProgram:
		c.slotLine(line)
	case ModeManual:
		c.say(msgManualActive + msgSaveHint + msgBackToMenu)
	}
}

func (c *Controller) selectMode(line string) {
	sel, ok := command.ParseSelection(line)
	if !ok {
		c.say(msgInvalidOption + msgMenu)
		return
	}
	c.mode = Mode(sel)
	c.running = false
	c.announce(c.mode, false)
	c.showMode()
}

// announce prints the banner of mode m. Banners triggered by the mode
// button carry a prefix and omit the serial example.
func (c *Controller) announce(m Mode, fromButton bool) {
	prefix := "\r\n"
	if fromButton {
		prefix += buttonPrefix
	}
	switch m {
	case ModeManual:
		c.say(prefix + msgManualOn + msgSaveHint + msgBackToMenu)
	case ModeSerial:
		s := prefix + msgSerialOn + msgFormat
		if !fromButton {
			s += msgExample
		}
		c.say(s + msgSaveHint + msgBackToMenu)
	case ModeSlotProgram:
		c.say(prefix + msgSlotsOn + slotUsage())
	}
}

func (c *Controller) serialLine(line string) {
	if command.IsReport(line) {
		a := c.angles
		c.say(msgTelemetry(a.Base, a.Arm1, a.Arm2, a.Gripper))
		return
	}
	angles, err := command.ParseAngles(line)
	switch {
	case errors.Is(err, command.ErrNotAngles):
		c.say(msgInvalidCommand + serialUsage())
		return
	case err != nil:
		// partial S commands leave the pose untouched
		core.DebugPrintln("serial: " + err.Error() + ": " + line)
		return
	}
	c.angles = angles
	c.apply()
	c.say(msgUpdated)
}

func (c *Controller) slotLine(line string) {
	cmd := command.ParseSlot(line)
	for _, sc := range slotCommands {
		if sc.Kind == cmd.Kind {
			sc.Run(c, cmd.Slot)
			return
		}
	}
	c.say(msgInvalidCommand + slotUsage())
}

func (c *Controller) saveSlot(slot int) {
	if slot < 0 || slot >= core.MaxSlots {
		c.say(msgInvalidSlot)
		return
	}
	if err := c.slots.Save(uint8(slot), core.RecordFrom(c.angles)); err != nil {
		core.DebugPrintln("save: " + err.Error())
		return
	}
	if uint8(slot) >= c.nextSave {
		c.nextSave = uint8(slot) + 1
	}
	c.say(msgSavedSlot(slot))
}

func (c *Controller) recallSlot(slot int) {
	if slot < 0 || slot >= int(c.slots.Count()) {
		c.say(msgNotSaved)
		return
	}
	if c.loadSlot(uint8(slot)) {
		c.say(msgLoaded(slot))
	}
}

func (c *Controller) startSequence(int) {
	if c.slots.Count() == 0 {
		c.say(msgNothingToRun)
		return
	}
	c.running = true
	c.cursor = 0
	c.say(msgSequenceStart)
}

func (c *Controller) clearSlots(int) {
	c.slots.Clear()
	c.nextSave = 0
	c.clearSlotLEDs()
	c.say(msgCleared)
}

func (c *Controller) listSlots(int) {
	n := c.slots.Count()
	c.say(msgSavedCount(int(n)))
	for i := uint8(0); i < n; i++ {
		rec, err := c.slots.Load(i)
		if err != nil {
			core.DebugPrintln("list: " + err.Error())
			return
		}
		c.say(msgListEntry(int(i), int(rec[core.JointBase]), int(rec[core.JointArm1]),
			int(rec[core.JointArm2]), int(rec[core.JointGripper])))
	}
}
