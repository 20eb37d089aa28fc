// Package engine runs the game loop.
//
// The loop is the single owner of the game state machine. Each cycle drains the input queue,
// applies commands, advances the simulation when the tick deadline has passed in game time and
// hands a freshly built frame to the painter and any frame sinks.
package engine

import (
	"context"
	"io"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/snek/config"
	"github.com/lixenwraith/snek/game"
	"github.com/lixenwraith/snek/input"
	"github.com/lixenwraith/snek/render"
	"github.com/lixenwraith/snek/status"
	"github.com/lixenwraith/snek/theme"
)

// Painter draws a frame on the output device
type Painter interface {
	Paint(f render.Frame) error
}

// Redrawer is implemented by painters that can force a full repaint
type Redrawer interface {
	Redraw()
}

// FrameSink receives every frame after it is painted
// Publish must not block the loop
type FrameSink interface {
	Publish(f render.Frame)
}

// Sound plays short cues for game events
type Sound interface {
	PlayEat()
	PlayCrash()
	PlayWin()
}

type silence struct{}

func (silence) PlayEat()   {}
func (silence) PlayCrash() {}
func (silence) PlayWin()   {}

// Options wires a Loop; Config, Machine, Queue, Table and Painter are required
type Options struct {
	Config   config.Config
	Machine  *game.Machine
	Queue    *input.Queue
	Table    *theme.Table
	Painter  Painter
	Sinks    []FrameSink
	Sound    Sound
	Time     TimeProvider
	Registry *status.Registry
	Logger   logrus.FieldLogger
}

// Loop reconciles the tick clock, the render cadence and the input queue
type Loop struct {
	cfg     config.Config
	machine *game.Machine
	queue   *input.Queue
	table   *theme.Table
	painter Painter
	sinks   []FrameSink
	sound   Sound
	clock   *PausableClock
	base    logrus.FieldLogger
	log     logrus.FieldLogger

	pending  game.Direction   // latest request, consumed by the next tick
	turns    []game.Direction // buffered turns when cfg.BufferTurns
	nextTick time.Time        // game time
	redraw   bool
	session  string

	statTicks       *atomic.Int64
	statFrames      *atomic.Int64
	statPaintErrors *atomic.Int64
	statDropped     *atomic.Int64
	statScore       *atomic.Int64
	statLength      *atomic.Int64
	statGames       *atomic.Int64
	statSpeed       *status.AtomicFloat
	statPhase       *status.AtomicString
	statSession     *status.AtomicString
}

// NewLoop creates a loop in whatever phase the machine is in
func NewLoop(opts Options) *Loop {
	if opts.Sound == nil {
		opts.Sound = silence{}
	}
	if opts.Time == nil {
		opts.Time = MonotonicTimeProvider{}
	}
	if opts.Registry == nil {
		opts.Registry = status.NewRegistry()
	}
	if opts.Logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		opts.Logger = l
	}

	reg := opts.Registry
	l := &Loop{
		cfg:     opts.Config,
		machine: opts.Machine,
		queue:   opts.Queue,
		table:   opts.Table,
		painter: opts.Painter,
		sinks:   opts.Sinks,
		sound:   opts.Sound,
		clock:   NewPausableClock(opts.Time),
		base:    opts.Logger,
		log:     opts.Logger,

		statTicks:       reg.Ints.Get(status.KeyTicks),
		statFrames:      reg.Ints.Get(status.KeyFrames),
		statPaintErrors: reg.Ints.Get(status.KeyPaintErrors),
		statDropped:     reg.Ints.Get(status.KeyDroppedInputs),
		statScore:       reg.Ints.Get(status.KeyScore),
		statLength:      reg.Ints.Get(status.KeyLength),
		statGames:       reg.Ints.Get(status.KeyGames),
		statSpeed:       reg.Floats.Get(status.KeySpeed),
		statPhase:       reg.Strings.Get(status.KeyPhase),
		statSession:     reg.Strings.Get(status.KeySession),
	}
	if l.machine.Phase() == game.PhasePlaying {
		l.beginGame()
	}
	return l
}

// Run cycles until the game is quit or ctx is cancelled
// Input wakes the loop immediately; otherwise it cycles at the frame interval
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.cfg.FrameInterval)
	defer ticker.Stop()

	l.log.WithField("phase", l.machine.Phase()).Info("loop started")
	if !l.Cycle() {
		return nil
	}

	for {
		select {
		case <-ctx.Done():
			if l.machine.Phase() != game.PhaseTerminated {
				_ = l.machine.Quit()
			}
			l.log.Info("loop cancelled")
			return nil
		case <-l.queue.Ready():
		case <-ticker.C:
		}

		if !l.Cycle() {
			l.log.Info("loop finished")
			return nil
		}
	}
}

// Cycle runs one iteration and reports whether the loop should continue
func (l *Loop) Cycle() bool {
	batch := l.queue.Drain()
	for _, cmd := range batch.Commands {
		l.apply(cmd)
		if l.machine.Phase() == game.PhaseTerminated {
			l.statPhase.Store(game.PhaseTerminated.String())
			return false
		}
	}
	l.steer(batch.Dirs)

	if l.machine.Phase() == game.PhasePlaying {
		l.advance()
	}

	l.present()
	return true
}

// Clock exposes game time
func (l *Loop) Clock() *PausableClock {
	return l.clock
}

// Session returns the id of the current game, empty before the first start
func (l *Loop) Session() string {
	return l.session
}

func (l *Loop) apply(cmd input.Command) {
	var err error
	started := false
	before := l.machine.Phase()

	switch cmd {
	case input.CmdStart:
		switch before {
		case game.PhaseMenu:
			err, started = l.machine.Start(), true
		case game.PhaseGameOver:
			err, started = l.machine.Restart(), true
		}
	case input.CmdRestart:
		if before == game.PhaseGameOver {
			err, started = l.machine.Restart(), true
		}
	case input.CmdTogglePause:
		if before == game.PhasePlaying || before == game.PhasePaused {
			err = l.machine.TogglePause()
		}
	case input.CmdQuit:
		err = l.machine.Quit()
	case input.CmdRedraw:
		l.redraw = true
	}

	if err != nil {
		l.log.WithError(err).WithField("command", cmd).Debug("command rejected")
		return
	}

	after := l.machine.Phase()
	if after == before && !started {
		return
	}
	l.log.WithFields(logrus.Fields{"from": before, "to": after, "command": cmd}).Debug("transition")

	switch {
	case before == game.PhasePlaying && after == game.PhasePaused:
		l.clock.Pause()
	case before == game.PhasePaused && after == game.PhasePlaying:
		l.clock.Resume()
	case started:
		l.beginGame()
		if after == game.PhaseGameOver {
			// no room for food on the fresh board
			l.endGame()
		}
	}
}

// beginGame resets per-game loop state for a fresh world
func (l *Loop) beginGame() {
	l.clock.Resume()
	l.session = uuid.NewString()
	l.log = l.base.WithField("game", l.session)
	l.pending = game.DirNone
	l.turns = l.turns[:0]
	l.nextTick = l.clock.Now().Add(l.interval())

	l.statGames.Add(1)
	l.statSession.Store(l.session)
	l.log.WithFields(logrus.Fields{
		"width":  l.cfg.Width,
		"height": l.cfg.Height,
		"walls":  l.cfg.WallPolicy,
	}).Info("game started")
}

func (l *Loop) endGame() {
	over, ok := l.machine.State().(game.GameOver)
	if !ok {
		return
	}
	switch over.Cause {
	case game.BoardFull:
		l.sound.PlayWin()
	default:
		l.sound.PlayCrash()
	}
	l.log.WithFields(logrus.Fields{"score": over.Score, "cause": over.Cause}).Info("game over")
}

// steer records directional requests; they are discarded outside Playing
func (l *Loop) steer(dirs []game.Direction) {
	if len(dirs) == 0 || l.machine.Phase() != game.PhasePlaying {
		return
	}

	if !l.cfg.BufferTurns {
		l.pending = dirs[len(dirs)-1]
		return
	}

	current := l.machine.World().Snake.Heading()
	for _, d := range dirs {
		if n := len(l.turns); n > 0 {
			current = l.turns[n-1]
		}
		if len(l.turns) < config.MaxBufferedTurns && d.Perpendicular(current) {
			l.turns = append(l.turns, d)
		}
	}
}

func (l *Loop) nextTurn() game.Direction {
	if l.cfg.BufferTurns {
		if len(l.turns) == 0 {
			return game.DirNone
		}
		d := l.turns[0]
		l.turns = append(l.turns[:0], l.turns[1:]...)
		return d
	}
	d := l.pending
	l.pending = game.DirNone
	return d
}

func (l *Loop) interval() time.Duration {
	eaten := 0
	if w := l.machine.World(); w != nil {
		eaten = w.Eaten
	}
	return l.cfg.IntervalAfter(eaten)
}

// advance runs every tick whose game-time deadline has passed
// More than two frames or two intervals behind, the deadline is rebased and missed ticks are dropped
func (l *Loop) advance() {
	now := l.clock.Now()
	if now.Before(l.nextTick) {
		return
	}
	if now.Sub(l.nextTick) > 2*max(l.interval(), l.cfg.FrameInterval) {
		l.nextTick = now
	}

	for !now.Before(l.nextTick) {
		out, err := l.machine.Tick(l.nextTurn())
		if err != nil {
			l.log.WithError(err).Warn("tick rejected")
			return
		}
		l.statTicks.Add(1)

		switch {
		case out.Kind == game.AteFood:
			l.sound.PlayEat()
			l.log.WithFields(logrus.Fields{"score": out.Score, "at": out.Head}).Debug("food eaten")
		case out.Kind.Terminal():
			l.endGame()
			return
		}
		l.nextTick = l.nextTick.Add(l.interval())
	}
}

func (l *Loop) present() {
	f := render.Build(l.machine.State(), l.table)

	if l.redraw {
		if r, ok := l.painter.(Redrawer); ok {
			r.Redraw()
		}
		l.redraw = false
	}
	if err := l.painter.Paint(f); err != nil {
		l.statPaintErrors.Add(1)
		l.log.WithError(err).Warn("paint failed")
	}
	for _, s := range l.sinks {
		s.Publish(f)
	}

	l.statFrames.Add(1)
	l.statDropped.Store(l.queue.Dropped())
	l.statPhase.Store(f.Phase.String())
	l.statScore.Store(int64(f.Score))
	if w := l.machine.World(); w != nil {
		l.statLength.Store(int64(w.Snake.Len()))
		l.statSpeed.Store(float64(time.Second) / float64(l.interval()))
	}
}
