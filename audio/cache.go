package audio

import "sync"

// Cue names a sound effect
type Cue int

const (
	CueEat Cue = iota
	CueCrash
	CueWin
	cueCount
)

var generators = [cueCount]func() floatBuffer{
	CueEat:   generateEat,
	CueCrash: generateCrash,
	CueWin:   generateWin,
}

// soundCache stores rendered unity-gain buffers
type soundCache struct {
	mu    sync.RWMutex
	store [cueCount]floatBuffer
}

// get returns the cached buffer, rendering it on first use
func (c *soundCache) get(cue Cue) floatBuffer {
	if cue < 0 || cue >= cueCount {
		return nil
	}

	c.mu.RLock()
	buf := c.store[cue]
	c.mu.RUnlock()
	if buf != nil {
		return buf
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.store[cue] == nil {
		c.store[cue] = generators[cue]()
	}
	return c.store[cue]
}

func (c *soundCache) preload() {
	for cue := Cue(0); cue < cueCount; cue++ {
		c.get(cue)
	}
}
