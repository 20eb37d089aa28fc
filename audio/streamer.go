package audio

import "github.com/gopxl/beep"

// bufferStreamer plays a mono buffer on both channels once
type bufferStreamer struct {
	buf    floatBuffer
	pos    int
	volume float64
}

var _ beep.Streamer = (*bufferStreamer)(nil)

func newBufferStreamer(buf floatBuffer, volume float64) *bufferStreamer {
	return &bufferStreamer{buf: buf, volume: volume}
}

func (s *bufferStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if s.pos >= len(s.buf) {
		return 0, false
	}
	for i := range samples {
		if s.pos >= len(s.buf) {
			return i, true
		}
		v := s.buf[s.pos] * s.volume
		samples[i][0] = v
		samples[i][1] = v
		s.pos++
	}
	return len(samples), true
}

func (s *bufferStreamer) Err() error {
	return nil
}
