package game

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

// ErrNoSpaceLeft is returned when every cell of the grid is occupied
var ErrNoSpaceLeft = errors.New("no space left")

// Food is a consumable item
// Variant selects the glyph (low 16 bits) and color (high 16 bits) from the food theme
type Food struct {
	Pos     Coord
	Variant uint32
}

// Source is the random source consumed by the spawner
// *rand.Rand from golang.org/x/exp/rand satisfies it
type Source interface {
	Intn(n int) int
	Uint32() uint32
}

// NewSource returns a seeded PCG source
func NewSource(seed uint64) Source {
	return rand.New(rand.NewSource(seed))
}

// Spawner places food uniformly among free cells
type Spawner struct {
	rng Source
}

// NewSpawner creates a spawner over the given random source
func NewSpawner(rng Source) *Spawner {
	return &Spawner{rng: rng}
}

// Spawn picks an unoccupied cell
// occupied reports whether a cell is taken by a snake segment or another food
func (sp *Spawner) Spawn(g Grid, occupied func(Coord) bool) (Coord, error) {
	free := make([]Coord, 0, g.Cells())
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			c := Coord{X: x, Y: y}
			if !occupied(c) {
				free = append(free, c)
			}
		}
	}

	if len(free) == 0 {
		return Coord{}, ErrNoSpaceLeft
	}
	return free[sp.rng.Intn(len(free))], nil
}

// NewFood spawns a food item with a random variant
func (sp *Spawner) NewFood(g Grid, occupied func(Coord) bool) (Food, error) {
	pos, err := sp.Spawn(g, occupied)
	if err != nil {
		return Food{}, err
	}
	return Food{Pos: pos, Variant: sp.rng.Uint32()}, nil
}
