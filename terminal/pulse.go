package terminal

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// pulseSeconds is one half-cycle of the banner pulse
const pulseSeconds = 0.8

// pulse is a 0..1..0 blend factor driven by wall time
type pulse struct {
	tween   *gween.Tween
	forward bool
	last    time.Time
}

func newPulse() *pulse {
	return &pulse{tween: gween.New(0, 1, pulseSeconds, ease.InOutSine), forward: true}
}

// next advances the tween to now and returns the blend factor
func (p *pulse) next(now time.Time) float64 {
	var dt float32
	if !p.last.IsZero() {
		dt = float32(now.Sub(p.last).Seconds())
		// Long gaps restart the half-cycle
		if dt > pulseSeconds {
			dt = pulseSeconds
		}
	}
	p.last = now

	v, done := p.tween.Update(dt)
	if done {
		p.forward = !p.forward
		if p.forward {
			p.tween = gween.New(0, 1, pulseSeconds, ease.InOutSine)
		} else {
			p.tween = gween.New(1, 0, pulseSeconds, ease.InOutSine)
		}
	}
	return float64(v)
}
