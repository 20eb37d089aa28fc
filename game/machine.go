package game

import (
	"github.com/pkg/errors"
)

// ErrInvalidTransition is returned when a command does not apply to the current state
var ErrInvalidTransition = errors.New("invalid transition")

// Phase tags the variant held by the machine
type Phase uint8

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhasePaused
	PhaseGameOver
	PhaseTerminated
)

func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	case PhaseTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// State is the sealed game state variant
type State interface {
	Phase() Phase
}

// Menu is the initial state; Grid is the board the next game will use
type Menu struct {
	Grid Grid
}

// Playing holds the live world
type Playing struct {
	World *World
}

// Paused holds a snapshot of the world taken at pause time
type Paused struct {
	Snapshot *World
}

// GameOver holds the final result; World is the last state for display
type GameOver struct {
	Score int
	Cause OutcomeKind
	World *World
}

// Terminated is the exit state, no further transitions
type Terminated struct{}

func (Menu) Phase() Phase       { return PhaseMenu }
func (Playing) Phase() Phase    { return PhasePlaying }
func (Paused) Phase() Phase     { return PhasePaused }
func (GameOver) Phase() Phase   { return PhaseGameOver }
func (Terminated) Phase() Phase { return PhaseTerminated }

// Machine owns the game state and applies transitions
// Not safe for concurrent use; the game loop is the single owner
type Machine struct {
	settings Settings
	spawner  *Spawner
	state    State
}

// NewMachine starts in Menu
func NewMachine(settings Settings, spawner *Spawner) *Machine {
	return &Machine{
		settings: settings,
		spawner:  spawner,
		state:    Menu{Grid: Grid{Width: settings.Width, Height: settings.Height}},
	}
}

// State returns the current variant
func (m *Machine) State() State {
	return m.state
}

// Phase returns the current phase tag
func (m *Machine) Phase() Phase {
	return m.state.Phase()
}

// Start leaves the menu with a fresh world
func (m *Machine) Start() error {
	if m.Phase() != PhaseMenu {
		return errors.Wrapf(ErrInvalidTransition, "start from %s", m.Phase())
	}
	return m.newGame()
}

// Restart begins a fresh game after game over
func (m *Machine) Restart() error {
	if m.Phase() != PhaseGameOver {
		return errors.Wrapf(ErrInvalidTransition, "restart from %s", m.Phase())
	}
	return m.newGame()
}

func (m *Machine) newGame() error {
	w, err := NewWorld(m.settings, m.spawner)
	if err != nil {
		if errors.Is(err, ErrNoSpaceLeft) {
			m.state = GameOver{Score: 0, Cause: BoardFull, World: w}
			return nil
		}
		return err
	}
	m.state = Playing{World: w}
	return nil
}

// Pause snapshots the live world
func (m *Machine) Pause() error {
	p, ok := m.state.(Playing)
	if !ok {
		return errors.Wrapf(ErrInvalidTransition, "pause from %s", m.Phase())
	}
	m.state = Paused{Snapshot: p.World.Clone()}
	return nil
}

// Resume restores the paused snapshot
func (m *Machine) Resume() error {
	p, ok := m.state.(Paused)
	if !ok {
		return errors.Wrapf(ErrInvalidTransition, "resume from %s", m.Phase())
	}
	m.state = Playing{World: p.Snapshot.Clone()}
	return nil
}

// TogglePause pauses while playing and resumes while paused
func (m *Machine) TogglePause() error {
	if m.Phase() == PhasePaused {
		return m.Resume()
	}
	return m.Pause()
}

// Quit terminates from any state except Terminated
func (m *Machine) Quit() error {
	if m.Phase() == PhaseTerminated {
		return errors.Wrap(ErrInvalidTransition, "quit from terminated")
	}
	m.state = Terminated{}
	return nil
}

// Tick runs one rules step while playing and moves to GameOver on a terminal outcome
func (m *Machine) Tick(dir Direction) (Outcome, error) {
	p, ok := m.state.(Playing)
	if !ok {
		return Outcome{}, errors.Wrapf(ErrInvalidTransition, "tick in %s", m.Phase())
	}

	out := Step(p.World, dir)
	if out.Kind.Terminal() {
		m.state = GameOver{Score: out.Score, Cause: out.Kind, World: p.World}
	}
	return out, nil
}

// World returns the world visible in the current state, nil in Menu and Terminated
func (m *Machine) World() *World {
	switch s := m.state.(type) {
	case Playing:
		return s.World
	case Paused:
		return s.Snapshot
	case GameOver:
		return s.World
	default:
		return nil
	}
}
