package audio

import (
	"math"

	"github.com/gopxl/beep"
	"golang.org/x/exp/rand"
)

// SampleRate is the output rate handed to the speaker
const SampleRate = beep.SampleRate(44100)

// WaveType selects the oscillator shape
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// floatBuffer is mono samples at unity gain
type floatBuffer []float64

// noiseSeed keeps noise cues identical between runs
const noiseSeed = 0x5eed

// oscillator generates samples of the given wave at freq Hz
func oscillator(wave WaveType, freq float64, samples int) floatBuffer {
	buf := make(floatBuffer, samples)
	phase := 0.0
	phaseInc := freq / float64(SampleRate)
	rng := rand.New(rand.NewSource(noiseSeed))

	for i := range buf {
		switch wave {
		case WaveSine:
			buf[i] = math.Sin(2 * math.Pi * phase)
		case WaveSquare:
			if phase < 0.5 {
				buf[i] = 1
			} else {
				buf[i] = -1
			}
		case WaveSaw:
			buf[i] = 2 * (phase - 0.5)
		case WaveNoise:
			buf[i] = rng.Float64()*2 - 1
		}

		phase += phaseInc
		if phase >= 1 {
			phase -= 1
		}
	}
	return buf
}

// applyEnvelope ramps volume up over attack and down over release, in place
func applyEnvelope(buf floatBuffer, attackSec, releaseSec float64) {
	total := len(buf)
	attack := samplesFor(attackSec)
	release := samplesFor(releaseSec)

	releaseStart := total - release
	if releaseStart < attack {
		releaseStart = attack
	}

	for i := range buf {
		vol := 1.0
		if i < attack && attack > 0 {
			vol = float64(i) / float64(attack)
		} else if i >= releaseStart && release > 0 {
			vol = float64(total-i) / float64(release)
		}
		buf[i] *= vol
	}
}

// mix adds b scaled into a, extending a if b is longer
func mix(a, b floatBuffer, scale float64) floatBuffer {
	if len(b) > len(a) {
		extended := make(floatBuffer, len(b))
		copy(extended, a)
		a = extended
	}
	for i := range b {
		a[i] += b[i] * scale
	}
	return a
}

func concat(bufs ...floatBuffer) floatBuffer {
	var n int
	for _, b := range bufs {
		n += len(b)
	}
	out := make(floatBuffer, 0, n)
	for _, b := range bufs {
		out = append(out, b...)
	}
	return out
}

func samplesFor(sec float64) int {
	return int(sec * float64(SampleRate))
}

// tone is a single enveloped note
func tone(wave WaveType, freq, sec float64) floatBuffer {
	buf := oscillator(wave, freq, samplesFor(sec))
	applyEnvelope(buf, 0.005, sec/2)
	return buf
}

// generateEat is a short rising blip
func generateEat() floatBuffer {
	return concat(tone(WaveSquare, 660, 0.04), tone(WaveSquare, 990, 0.06))
}

// generateCrash is a low saw buzz over a noise burst
func generateCrash() floatBuffer {
	n := samplesFor(0.35)
	buzz := oscillator(WaveSaw, 90, n)
	applyEnvelope(buzz, 0.01, 0.25)
	noise := oscillator(WaveNoise, 0, n)
	applyEnvelope(noise, 0.001, 0.3)
	return mix(buzz, noise, 0.5)
}

// generateWin is a major arpeggio
func generateWin() floatBuffer {
	return concat(
		tone(WaveSine, 523.25, 0.1),
		tone(WaveSine, 659.25, 0.1),
		tone(WaveSine, 783.99, 0.1),
		tone(WaveSine, 1046.5, 0.25),
	)
}
