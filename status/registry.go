// Package status holds the process-wide metric registry.
//
// The game loop writes counters every cycle; the spectator feed reads them concurrently.
// All values are atomics so neither side takes a lock after registration.
package status

import "sync/atomic"

// Well-known metric keys
const (
	KeyTicks          = "engine.ticks"
	KeyFrames         = "engine.frames"
	KeyPaintErrors    = "engine.paint_errors"
	KeyDroppedInputs  = "input.dropped"
	KeyScore          = "game.score"
	KeyLength         = "game.length"
	KeyGames          = "game.count"
	KeyPhase          = "game.phase"
	KeySession        = "game.session"
	KeySpeed          = "game.speed"
	KeySpectators     = "spectate.clients"
	KeyAudioAvailable = "audio.available"
)

// Registry groups metric maps by value type
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns the number of metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Snapshot copies every current value into a flat map
func (r *Registry) Snapshot() map[string]any {
	out := make(map[string]any, r.TotalCount())
	r.Bools.Range(func(k string, v *atomic.Bool) { out[k] = v.Load() })
	r.Ints.Range(func(k string, v *atomic.Int64) { out[k] = v.Load() })
	r.Floats.Range(func(k string, v *AtomicFloat) { out[k] = v.Load() })
	r.Strings.Range(func(k string, v *AtomicString) { out[k] = v.Load() })
	return out
}
