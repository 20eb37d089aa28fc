package game

import (
	"github.com/pkg/errors"
)

// Rules are the per-game constants applied by Step
type Rules struct {
	Policy        WallPolicy
	GrowthPerFood int
	ScorePerFood  int
}

// Settings is the gameplay subset of the resolved configuration
type Settings struct {
	Width          int
	Height         int
	StartingLength int
	FoodCount      int
	Rules          Rules
}

// World is the full state of a game in progress
type World struct {
	Grid  Grid
	Snake *Snake
	Foods []Food
	Score int
	Eaten int
	Ticks uint64
	Rules Rules

	spawner *Spawner
}

// NewWorld lays out a fresh game: centered snake heading right and FoodCount items
// Returns the world and ErrNoSpaceLeft if not every food item could be placed
func NewWorld(s Settings, spawner *Spawner) (*World, error) {
	grid, err := NewGrid(s.Width, s.Height)
	if err != nil {
		return nil, err
	}
	if s.StartingLength <= 0 || s.StartingLength > grid.Width {
		return nil, errors.Errorf("invalid starting length %d for width %d", s.StartingLength, grid.Width)
	}

	w := &World{
		Grid:    grid,
		Snake:   NewStraightSnake(grid, s.StartingLength),
		Rules:   s.Rules,
		spawner: spawner,
	}

	for i := 0; i < s.FoodCount; i++ {
		if err := w.spawnFood(); err != nil {
			return w, err
		}
	}
	return w, nil
}

// NewWorldWith assembles a world from explicit parts
func NewWorldWith(grid Grid, snake *Snake, foods []Food, rules Rules, spawner *Spawner) *World {
	f := make([]Food, len(foods))
	copy(f, foods)
	return &World{
		Grid:    grid,
		Snake:   snake,
		Foods:   f,
		Rules:   rules,
		spawner: spawner,
	}
}

// Occupied reports whether c holds a snake segment or a food item
func (w *World) Occupied(c Coord) bool {
	if w.Snake.Occupies(c) {
		return true
	}
	return w.foodIndex(c) >= 0
}

// FoodAt returns the food at c, if any
func (w *World) FoodAt(c Coord) (Food, bool) {
	if i := w.foodIndex(c); i >= 0 {
		return w.Foods[i], true
	}
	return Food{}, false
}

func (w *World) foodIndex(c Coord) int {
	for i, f := range w.Foods {
		if f.Pos == c {
			return i
		}
	}
	return -1
}

func (w *World) removeFood(i int) Food {
	f := w.Foods[i]
	w.Foods = append(w.Foods[:i], w.Foods[i+1:]...)
	return f
}

func (w *World) spawnFood() error {
	f, err := w.spawner.NewFood(w.Grid, w.Occupied)
	if err != nil {
		return err
	}
	w.Foods = append(w.Foods, f)
	return nil
}

// Clone returns a deep copy sharing only the spawner
func (w *World) Clone() *World {
	c := *w
	c.Snake = w.Snake.Clone()
	c.Foods = make([]Food, len(w.Foods))
	copy(c.Foods, w.Foods)
	return &c
}
