package config

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lixenwraith/snek/theme"
)

// NewFlagSet binds every flag onto cfg; current field values become the flag defaults
func NewFlagSet(name string, cfg *Config) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)

	fs.String("config", "", "path to a TOML config file")

	fs.IntVar(&cfg.Width, "width", cfg.Width, "field width in cells")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "field height in cells")
	fs.BoolVar(&cfg.Fullscreen, "fullscreen", cfg.Fullscreen, "size the field to the terminal window")

	fs.DurationVar(&cfg.TickInterval, "tick", cfg.TickInterval, "initial time between moves")
	fs.Func("speed", "initial speed in moves per second (overrides -tick)", func(s string) error {
		n, err := strconv.Atoi(s)
		if err != nil {
			return err
		}
		return cfg.SetSpeed(n)
	})
	fs.IntVar(&cfg.SpeedUpEvery, "speed-up", cfg.SpeedUpEvery, "food needed to increase speed, 0 disables")
	fs.StringVar(&cfg.WallPolicy, "wall-policy", cfg.WallPolicy, "wall policy: wrap or solid")
	fs.BoolFunc("walls", "make the walls solid", func(s string) error {
		on, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		if on {
			cfg.WallPolicy = WallsSolid
		} else {
			cfg.WallPolicy = WallsWrap
		}
		return nil
	})

	fs.IntVar(&cfg.StartingLength, "snake-length", cfg.StartingLength, "initial length of the snake")
	fs.IntVar(&cfg.FoodCount, "food", cfg.FoodCount, "amount of food on the field")
	fs.IntVar(&cfg.GrowthPerFood, "growth", cfg.GrowthPerFood, "segments gained per food")
	fs.IntVar(&cfg.ScorePerFood, "points", cfg.ScorePerFood, "score gained per food")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "RNG seed, 0 for random")
	fs.BoolVar(&cfg.BufferTurns, "buffer-turns", cfg.BufferTurns,
		fmt.Sprintf("queue up to %d turns and apply one per move", MaxBufferedTurns))

	fs.StringVar(&cfg.Theme.Snake, "snake-theme", cfg.Theme.Snake, "snake theme: "+strings.Join(theme.SnakeNames(), ", "))
	fs.StringVar(&cfg.Theme.Board, "board-theme", cfg.Theme.Board, "board theme: "+strings.Join(theme.BoardNames(), ", "))
	fs.StringVar(&cfg.Theme.Food, "food-theme", cfg.Theme.Food, "food theme: "+strings.Join(theme.FoodNames(), ", "))
	fs.BoolVar(&cfg.Theme.HideScore, "hide-score", cfg.Theme.HideScore, "don't display the score")

	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "write debug logs to logs/")
	fs.BoolVar(&cfg.Mute, "mute", cfg.Mute, "disable sound effects")
	fs.StringVar(&cfg.Spectate, "spectate", cfg.Spectate, "serve a read-only spectator feed on this address")
	fs.DurationVar(&cfg.FrameInterval, "frame", cfg.FrameInterval, "render interval")

	return fs
}

// configPath finds -config / --config in args without parsing the rest
func configPath(args []string) string {
	for i := 0; i < len(args); i++ {
		a := args[i]
		if a == "--" {
			break
		}
		name := strings.TrimLeft(a, "-")
		if name == a || len(a)-len(name) > 2 {
			continue
		}
		if v, ok := strings.CutPrefix(name, "config="); ok {
			return v
		}
		if name == "config" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}

// FromArgs resolves defaults, then the -config file, then explicit flags
// The result is not validated: fullscreen sizing still has to be applied by the caller
func FromArgs(name string, args []string, output io.Writer) (Config, error) {
	cfg := Default()

	if path := configPath(args); path != "" {
		if err := Load(path, &cfg); err != nil {
			return cfg, err
		}
	}

	fs := NewFlagSet(name, &cfg)
	if output != nil {
		fs.SetOutput(output)
	}
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if fs.NArg() > 0 {
		return cfg, &ConfigError{Field: "args", Reason: "unexpected argument " + strconv.Quote(fs.Arg(0))}
	}
	return cfg, nil
}
