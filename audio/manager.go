// Package audio plays short synthesized cues through the system speaker.
//
// Audio is optional: when no output device can be opened the manager stays silent and every
// Play call is a no-op.
package audio

import (
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/snek/config"
	"github.com/lixenwraith/snek/status"
)

// DefaultVolume scales every cue
const DefaultVolume = 0.25

// speakerBuffer is the device buffer length
const speakerBuffer = 100 * time.Millisecond

// Output is the device the manager plays through
type Output interface {
	Init(sr beep.SampleRate, bufferSize int) error
	Play(s beep.Streamer)
	Lock()
	Unlock()
	Close()
}

type systemSpeaker struct{}

func (systemSpeaker) Init(sr beep.SampleRate, n int) error { return speaker.Init(sr, n) }
func (systemSpeaker) Play(s beep.Streamer)                 { speaker.Play(s) }
func (systemSpeaker) Lock()                                { speaker.Lock() }
func (systemSpeaker) Unlock()                              { speaker.Unlock() }
func (systemSpeaker) Close()                               { speaker.Close() }

// SoundManager owns the mixer and plays cues on game events
type SoundManager struct {
	mu      sync.Mutex
	out     Output
	mixer   *beep.Mixer
	cache   soundCache
	volume  float64
	running bool

	muted     atomic.Bool
	available *atomic.Bool
	log       logrus.FieldLogger
}

// NewSoundManager creates a manager for the system speaker
// A nil registry or logger is replaced by a private one
func NewSoundManager(reg *status.Registry, log logrus.FieldLogger) *SoundManager {
	return newSoundManager(systemSpeaker{}, reg, log)
}

func newSoundManager(out Output, reg *status.Registry, log logrus.FieldLogger) *SoundManager {
	if reg == nil {
		reg = status.NewRegistry()
	}
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &SoundManager{
		out:       out,
		mixer:     &beep.Mixer{},
		volume:    DefaultVolume,
		available: reg.Bools.Get(status.KeyAudioAvailable),
		log:       log.WithField("service", "audio"),
	}
}

// Name implements service.Service
func (sm *SoundManager) Name() string {
	return "audio"
}

// Dependencies implements service.Service
func (sm *SoundManager) Dependencies() []string {
	return nil
}

// Init implements service.Service
// args[0] may be a config.Config or a bool mute flag
func (sm *SoundManager) Init(args ...any) error {
	if len(args) > 0 {
		switch a := args[0].(type) {
		case config.Config:
			sm.muted.Store(a.Mute)
		case bool:
			sm.muted.Store(a)
		}
	}
	sm.cache.preload()
	return nil
}

// Start implements service.Service
// A missing device leaves the manager silent rather than failing
func (sm *SoundManager) Start() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.running {
		return nil
	}
	if sm.muted.Load() {
		sm.log.Info("audio muted, device not opened")
		return nil
	}

	if err := sm.out.Init(SampleRate, SampleRate.N(speakerBuffer)); err != nil {
		sm.log.WithError(err).Warn("audio unavailable, continuing without sound")
		return nil
	}
	sm.out.Play(sm.mixer)
	sm.running = true
	sm.available.Store(true)
	return nil
}

// Stop implements service.Service
func (sm *SoundManager) Stop() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.running {
		return nil
	}
	sm.out.Lock()
	sm.mixer.Clear()
	sm.out.Unlock()
	sm.out.Close()

	sm.running = false
	sm.available.Store(false)
	return nil
}

// SetMuted silences or restores cues; the device stays open
func (sm *SoundManager) SetMuted(muted bool) {
	sm.muted.Store(muted)
}

// IsMuted reports the mute state
func (sm *SoundManager) IsMuted() bool {
	return sm.muted.Load()
}

// PlayEat plays the food cue
func (sm *SoundManager) PlayEat() { sm.play(CueEat) }

// PlayCrash plays the collision cue
func (sm *SoundManager) PlayCrash() { sm.play(CueCrash) }

// PlayWin plays the full-board cue
func (sm *SoundManager) PlayWin() { sm.play(CueWin) }

// play queues cue on the mixer; returns whether it was queued
func (sm *SoundManager) play(cue Cue) bool {
	if sm.muted.Load() {
		return false
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()
	if !sm.running {
		return false
	}

	buf := sm.cache.get(cue)
	if buf == nil {
		return false
	}
	sm.out.Lock()
	sm.mixer.Add(newBufferStreamer(buf, sm.volume))
	sm.out.Unlock()
	return true
}
