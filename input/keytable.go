package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/snek/game"
)

// KeyTable maps terminal keys to events
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Enter, Esc)
	Keys map[tcell.Key]Event

	// Printable runes, matched case-insensitively
	Runes map[rune]Event
}

// DefaultKeyTable returns the default bindings: arrows, WASD and hjkl steer
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Keys: map[tcell.Key]Event{
			tcell.KeyUp:     Turn(game.DirUp),
			tcell.KeyDown:   Turn(game.DirDown),
			tcell.KeyLeft:   Turn(game.DirLeft),
			tcell.KeyRight:  Turn(game.DirRight),
			tcell.KeyEnter:  Do(CmdStart),
			tcell.KeyEscape: Do(CmdQuit),
			tcell.KeyCtrlC:  Do(CmdQuit),
			tcell.KeyCtrlL:  Do(CmdRedraw),
		},
		Runes: map[rune]Event{
			'w': Turn(game.DirUp),
			'a': Turn(game.DirLeft),
			's': Turn(game.DirDown),
			'd': Turn(game.DirRight),
			'k': Turn(game.DirUp),
			'h': Turn(game.DirLeft),
			'j': Turn(game.DirDown),
			'l': Turn(game.DirRight),

			' ': Do(CmdTogglePause),
			'p': Do(CmdTogglePause),
			'r': Do(CmdRestart),
			'q': Do(CmdQuit),
		},
	}
}

// Translate resolves a key event; ok is false for unbound keys
func (t *KeyTable) Translate(ev *tcell.EventKey) (Event, bool) {
	if ev.Key() == tcell.KeyRune {
		e, ok := t.Runes[unicode.ToLower(ev.Rune())]
		return e, ok
	}
	e, ok := t.Keys[ev.Key()]
	return e, ok
}
