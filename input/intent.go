package input

import "github.com/lixenwraith/snek/game"

// EventKind discriminates directional requests from commands
type EventKind uint8

const (
	EventNone EventKind = iota
	EventDirection
	EventCommand
)

// Command is a non-directional request handled by the loop
type Command uint8

const (
	CmdNone        Command = iota
	CmdStart               // Enter
	CmdTogglePause         // Space, p
	CmdRestart             // r
	CmdQuit                // q, Esc, Ctrl+C
	CmdRedraw              // Ctrl+L, terminal resize
)

var commandNames = [...]string{
	CmdNone:        "none",
	CmdStart:       "start",
	CmdTogglePause: "pause",
	CmdRestart:     "restart",
	CmdQuit:        "quit",
	CmdRedraw:      "redraw",
}

func (c Command) String() string {
	if int(c) < len(commandNames) {
		return commandNames[c]
	}
	return "unknown"
}

// Event is a single translated input
type Event struct {
	Kind EventKind
	Dir  game.Direction
	Cmd  Command
}

// Turn builds a directional event
func Turn(d game.Direction) Event {
	return Event{Kind: EventDirection, Dir: d}
}

// Do builds a command event
func Do(c Command) Event {
	return Event{Kind: EventCommand, Cmd: c}
}
