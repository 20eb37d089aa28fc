package input

import (
	"sync"
	"sync/atomic"

	"github.com/lixenwraith/snek/game"
)

// DefaultCapacity bounds the pending directional requests
const DefaultCapacity = 5

// Queue carries events from the terminal reader to the game loop
// Push never blocks. Directions live in a fixed ring that drops the oldest entry when full;
// commands are never dropped. Ready delivers at most one pending wakeup.
type Queue struct {
	mu   sync.Mutex
	ring []game.Direction
	head int
	size int
	cmds []Command

	notify  chan struct{}
	dropped atomic.Int64
}

// Batch is everything drained in one loop cycle, oldest first
type Batch struct {
	Dirs     []game.Direction
	Commands []Command
}

// Latest returns the most recent directional request or DirNone
func (b Batch) Latest() game.Direction {
	if len(b.Dirs) == 0 {
		return game.DirNone
	}
	return b.Dirs[len(b.Dirs)-1]
}

// Empty reports whether nothing was drained
func (b Batch) Empty() bool {
	return len(b.Dirs) == 0 && len(b.Commands) == 0
}

// NewQueue creates a queue holding up to capacity directions
func NewQueue(capacity int) *Queue {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Queue{
		ring:   make([]game.Direction, capacity),
		notify: make(chan struct{}, 1),
	}
}

// Push enqueues ev and signals the consumer
func (q *Queue) Push(ev Event) {
	switch ev.Kind {
	case EventDirection:
		if ev.Dir == game.DirNone {
			return
		}
		q.mu.Lock()
		if q.size == len(q.ring) {
			q.head = (q.head + 1) % len(q.ring)
			q.size--
			q.dropped.Add(1)
		}
		q.ring[(q.head+q.size)%len(q.ring)] = ev.Dir
		q.size++
		q.mu.Unlock()
	case EventCommand:
		if ev.Cmd == CmdNone {
			return
		}
		q.mu.Lock()
		q.cmds = append(q.cmds, ev.Cmd)
		q.mu.Unlock()
	default:
		return
	}

	select {
	case q.notify <- struct{}{}:
	default:
	}
}

// Drain removes and returns all pending events without blocking
func (q *Queue) Drain() Batch {
	q.mu.Lock()
	defer q.mu.Unlock()

	var b Batch
	if q.size > 0 {
		b.Dirs = make([]game.Direction, q.size)
		for i := range b.Dirs {
			b.Dirs[i] = q.ring[(q.head+i)%len(q.ring)]
		}
		q.head, q.size = 0, 0
	}
	if len(q.cmds) > 0 {
		b.Commands = q.cmds
		q.cmds = nil
	}
	return b
}

// Ready fires after at least one Push since the last receive
func (q *Queue) Ready() <-chan struct{} {
	return q.notify
}

// Dropped returns the count of directions discarded by overflow
func (q *Queue) Dropped() int64 {
	return q.dropped.Load()
}
