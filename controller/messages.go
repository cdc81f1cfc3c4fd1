package controller

import "strconv"

const (
	msgMenu = "\r\n--- ROBOTIC GRIPPER ---\r\n" +
		"Type the number of an option:\r\n" +
		"1. Control the gripper with the potentiometers (Manual mode)\r\n" +
		"2. Set a new position over serial\r\n" +
		"3. EEPROM mode (save/load positions)\r\n" +
		"The mode button also cycles through the modes\r\n" +
		"Option: "

	msgBackToMenu = "Type 'menu' to return to the main menu\r\n"
	msgSaveHint   = "Press the save button to store the current position in EEPROM\r\n"
	msgFormat     = "Format: S,base,arm1,arm2,gripper\r\n"
	msgExample    = "Example: S,90,45,120,30\r\n"

	msgManualOn  = "Potentiometer control mode enabled\r\n"
	msgSerialOn  = "Serial control mode enabled\r\n"
	msgSlotsOn   = "EEPROM mode enabled\r\n"
	buttonPrefix = "[BUTTON] "

	msgInvalidOption  = "\r\nInvalid option. Try again\r\n"
	msgInvalidCommand = "\r\nInvalid command\r\n"
	msgManualActive   = "\r\nIn potentiometer control mode\r\n"
	msgUpdated        = "\r\nPosition updated\r\n"
	msgInvalidSlot    = "\r\nInvalid position number\r\n"
	msgNotSaved       = "\r\nInvalid position number or not saved\r\n"
	msgSequenceStart  = "\r\nRunning saved position sequence\r\n"
	msgNothingToRun   = "\r\nNo saved positions to run\r\n"
	msgCleared        = "\r\nAll positions have been cleared\r\n"
	msgSequenceDone   = "\r\nSequence complete\r\n"
	msgNothingToPlay  = "\r\nNo saved positions to play\r\n"
	msgPlayBusy       = "\r\n[PLAY BUTTON] Sequence running, press ignored\r\n"
	msgMemoryFull     = "\r\n[SAVE BUTTON] Error: EEPROM full\r\n"
)

func itoa(v int) string {
	return strconv.Itoa(v)
}

func msgSavedSlot(slot int) string {
	return "\r\nPosition saved to slot " + itoa(slot) + "\r\n"
}

func msgButtonSavedSlot(slot int) string {
	return "\r\n[SAVE BUTTON] Position saved to slot " + itoa(slot) + "\r\n"
}

func msgLoaded(slot int) string {
	return "\r\nPosition " + itoa(slot) + " loaded\r\n"
}

func msgRunning(k, n int) string {
	return "\r\nRunning position " + itoa(k) + " of " + itoa(n) + "\r\n"
}

func msgPlaying(k, n int) string {
	return "\r\n[PLAY BUTTON] Playing position " + itoa(k) + " of " + itoa(n) + "\r\n"
}

func msgSavedCount(n int) string {
	return "\r\n" + itoa(n) + " saved positions\r\n"
}

func msgListEntry(i int, b, a1, a2, g int) string {
	return "Pos " + itoa(i) + ": Base=" + itoa(b) + ", Arm1=" + itoa(a1) +
		", Arm2=" + itoa(a2) + ", Gripper=" + itoa(g) + "\r\n"
}

func msgTelemetry(b, a1, a2, g int) string {
	return "P," + itoa(b) + "," + itoa(a1) + "," + itoa(a2) + "," + itoa(g) + "\r\n"
}
