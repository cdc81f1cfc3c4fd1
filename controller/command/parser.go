// Package command parses the line protocol of the gripper console.
// Parsing is pure; the controller decides what each command does in the
// current mode.
package command

import (
	"errors"
	"math"

	"gripper/core"
)

// Kind is a slot program command.
type Kind uint8

const (
	Unknown Kind = iota
	SaveSlot
	LoadSlot
	Execute
	Clear
	List
)

func (k Kind) String() string {
	switch k {
	case SaveSlot:
		return "save"
	case LoadSlot:
		return "load"
	case Execute:
		return "execute"
	case Clear:
		return "clear"
	case List:
		return "list"
	}
	return "unknown"
}

// SlotCommand is a parsed slot program line. Slot is only meaningful for
// SaveSlot and LoadSlot and is not range checked here.
type SlotCommand struct {
	Kind Kind
	Slot int
}

var (
	// ErrNotAngles means the line is not an S command at all.
	ErrNotAngles = errors.New("not an angle command")
	// ErrMissingField means an S command had fewer than four angles.
	ErrMissingField = errors.New("angle command needs four fields")
)

// MenuKeyword returns to the menu from any mode.
const MenuKeyword = "menu"

// IsMenu reports whether line is exactly the menu keyword.
func IsMenu(line string) bool {
	return line == MenuKeyword
}

// ParseSelection reads a menu choice from the first character.
func ParseSelection(line string) (int, bool) {
	if len(line) == 0 || line[0] < '1' || line[0] > '3' {
		return 0, false
	}
	return int(line[0] - '0'), true
}

// IsReport reports whether line asks for the current angles.
func IsReport(line string) bool {
	return line == "P"
}

// ParseAngles parses "S,base,arm1,arm2,gripper". Fields are separated by
// commas, empty fields are skipped and each value is read with Atoi.
// Extra fields are ignored.
func ParseAngles(line string) (core.JointAngles, error) {
	var a core.JointAngles
	if len(line) < 2 || line[0] != 'S' || line[1] != ',' {
		return a, ErrNotAngles
	}
	fields := Tokens(line[2:], ',')
	if len(fields) < len(core.AllJoints()) {
		return a, ErrMissingField
	}
	for _, j := range core.AllJoints() {
		a.Set(j, Atoi(fields[j]))
	}
	return a, nil
}

// ParseSlot parses a slot program line: "G,n", "C,n", "E", "B" or "L".
// The single letter commands only look at the first character.
func ParseSlot(line string) SlotCommand {
	if len(line) == 0 {
		return SlotCommand{Kind: Unknown}
	}
	if len(line) >= 2 && line[1] == ',' {
		switch line[0] {
		case 'G':
			return SlotCommand{Kind: SaveSlot, Slot: Atoi(line[2:])}
		case 'C':
			return SlotCommand{Kind: LoadSlot, Slot: Atoi(line[2:])}
		}
	}
	switch line[0] {
	case 'E':
		return SlotCommand{Kind: Execute}
	case 'B':
		return SlotCommand{Kind: Clear}
	case 'L':
		return SlotCommand{Kind: List}
	}
	return SlotCommand{Kind: Unknown}
}

// Tokens splits s on sep and drops empty fields.
func Tokens(s string, sep byte) []string {
	var out []string
	start := 0
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == sep {
			if i > start {
				out = append(out, s[start:i])
			}
			start = i + 1
		}
	}
	return out
}

// Atoi converts the leading decimal integer of s, skipping leading
// whitespace and accepting one sign. Anything unparseable yields 0 and
// trailing garbage is ignored. Results saturate at the int32 range.
func Atoi(s string) int {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	negative := false
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		negative = s[i] == '-'
		i++
	}
	value := 0
	for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		d := int(s[i] - '0')
		if value > (math.MaxInt32-d)/10 {
			value = math.MaxInt32
			continue
		}
		value = value*10 + d
	}
	if negative {
		value = -value
	}
	return value
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}
