// Package config resolves the game configuration from defaults, an optional TOML file and
// command-line flags. A Config is validated once at startup and never mutated afterwards.
package config

import (
	"fmt"
	"time"

	"github.com/lixenwraith/snek/game"
	"github.com/lixenwraith/snek/theme"
)

const (
	// MinWidth and MinHeight bound the smallest playable field
	MinWidth  = 5
	MinHeight = 5

	// MaxBufferedTurns caps the turn FIFO used with BufferTurns
	MaxBufferedTurns = 5

	// DefaultFrameInterval is ~60 FPS
	DefaultFrameInterval = 16 * time.Millisecond
)

// Wall policy names accepted in files and flags
const (
	WallsWrap  = "wrap"
	WallsSolid = "solid"
)

// Config holds every tunable of a game session
type Config struct {
	Width      int  `toml:"width"`
	Height     int  `toml:"height"`
	Fullscreen bool `toml:"fullscreen"`

	TickInterval time.Duration `toml:"tick_interval"`
	SpeedUpEvery int           `toml:"speed_up_every"`
	WallPolicy   string        `toml:"walls"`

	StartingLength int `toml:"snake_length"`
	FoodCount      int `toml:"food"`
	GrowthPerFood  int `toml:"growth_per_food"`
	ScorePerFood   int `toml:"score_per_food"`

	Seed        uint64 `toml:"seed"`
	BufferTurns bool   `toml:"buffer_turns"`

	Theme theme.Selection `toml:"theme"`

	Debug         bool          `toml:"debug"`
	Mute          bool          `toml:"mute"`
	Spectate      string        `toml:"spectate"`
	FrameInterval time.Duration `toml:"frame_interval"`
}

// Default returns the stock configuration: 25x15 wrapping field, six moves per second
func Default() Config {
	return Config{
		Width:          25,
		Height:         15,
		TickInterval:   time.Second / 6,
		SpeedUpEvery:   4,
		WallPolicy:     WallsWrap,
		StartingLength: 3,
		FoodCount:      1,
		GrowthPerFood:  1,
		ScorePerFood:   1,
		Theme:          theme.DefaultSelection(),
		FrameInterval:  DefaultFrameInterval,
	}
}

// ConfigError reports a single invalid field
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Reason)
}

func invalid(field, format string, args ...any) *ConfigError {
	return &ConfigError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// Validate checks field ranges and cross-field constraints
// The first violation found is returned as a *ConfigError
func (c *Config) Validate() error {
	switch {
	case c.Width < MinWidth:
		return invalid("width", "must be at least %d, got %d", MinWidth, c.Width)
	case c.Height < MinHeight:
		return invalid("height", "must be at least %d, got %d", MinHeight, c.Height)
	case c.TickInterval <= 0:
		return invalid("tick_interval", "must be positive, got %v", c.TickInterval)
	case c.FrameInterval <= 0:
		return invalid("frame_interval", "must be positive, got %v", c.FrameInterval)
	case c.SpeedUpEvery < 0:
		return invalid("speed_up_every", "must not be negative")
	case c.StartingLength < 1:
		return invalid("snake_length", "must be at least 1, got %d", c.StartingLength)
	case c.StartingLength > c.Width:
		return invalid("snake_length", "%d does not fit in width %d", c.StartingLength, c.Width)
	case c.FoodCount < 1:
		return invalid("food", "must be at least 1, got %d", c.FoodCount)
	case c.StartingLength+c.FoodCount > c.Width*c.Height:
		return invalid("food", "snake of %d and %d food exceed %d cells",
			c.StartingLength, c.FoodCount, c.Width*c.Height)
	case c.GrowthPerFood < 0:
		return invalid("growth_per_food", "must not be negative")
	case c.ScorePerFood < 0:
		return invalid("score_per_food", "must not be negative")
	}

	if _, err := ParseWalls(c.WallPolicy); err != nil {
		return err
	}
	if _, err := theme.Resolve(c.Theme); err != nil {
		return invalid("theme", "%v", err)
	}
	return nil
}

// ParseWalls maps a wall policy name to the grid policy
func ParseWalls(name string) (game.WallPolicy, error) {
	switch name {
	case WallsWrap, "":
		return game.WallWrap, nil
	case WallsSolid:
		return game.WallSolid, nil
	default:
		return game.WallWrap, invalid("walls", "unknown policy %q (want %s or %s)", name, WallsWrap, WallsSolid)
	}
}

// Policy returns the validated wall policy
func (c *Config) Policy() game.WallPolicy {
	p, _ := ParseWalls(c.WallPolicy)
	return p
}

// Settings projects the config onto the game model
func (c *Config) Settings() game.Settings {
	return game.Settings{
		Width:          c.Width,
		Height:         c.Height,
		StartingLength: c.StartingLength,
		FoodCount:      c.FoodCount,
		Rules: game.Rules{
			Policy:        c.Policy(),
			GrowthPerFood: c.GrowthPerFood,
			ScorePerFood:  c.ScorePerFood,
		},
	}
}

// IntervalAfter returns the tick interval once eaten food items have been consumed
// Every SpeedUpEvery items add one move per second to the base rate
func (c *Config) IntervalAfter(eaten int) time.Duration {
	if c.SpeedUpEvery <= 0 || eaten < c.SpeedUpEvery {
		return c.TickInterval
	}
	base := float64(time.Second) / float64(c.TickInterval)
	rate := base + float64(eaten/c.SpeedUpEvery)
	return time.Duration(float64(time.Second) / rate)
}

// SetSpeed sets the base rate in moves per second
func (c *Config) SetSpeed(movesPerSecond int) error {
	if movesPerSecond <= 0 {
		return invalid("speed", "must be positive, got %d", movesPerSecond)
	}
	c.TickInterval = time.Second / time.Duration(movesPerSecond)
	return nil
}

// ApplyTerminalSize sizes the field to fill a terminal of cols x rows, leaving room for the border
func (c *Config) ApplyTerminalSize(cols, rows int) {
	c.Width = (cols - 2) / theme.CellWidth
	c.Height = rows - 2
}
