package game

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrOutOfBounds signals a move past the edge of a solid-walled grid
var ErrOutOfBounds = errors.New("out of bounds")

// Coord is a cell position, origin at top-left
type Coord struct {
	X, Y int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// Direction is one of the four cardinal headings
// DirNone is the zero value and means "no request"
type Direction uint8

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// Opposite returns the 180° reversal
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return DirNone
	}
}

// Perpendicular reports whether d and other lie on different axes
func (d Direction) Perpendicular(other Direction) bool {
	if d == DirNone || other == DirNone {
		return false
	}
	return d.vertical() != other.vertical()
}

func (d Direction) vertical() bool {
	return d == DirUp || d == DirDown
}

// Delta returns the unit step, Up decreases Y
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// WallPolicy selects what happens at the grid edge
type WallPolicy uint8

const (
	WallWrap WallPolicy = iota
	WallSolid
)

func (p WallPolicy) String() string {
	if p == WallSolid {
		return "solid"
	}
	return "wrap"
}

// Grid is the fixed-size playing field
// Stateless; all methods are pure
type Grid struct {
	Width  int
	Height int
}

// NewGrid returns a grid, rejecting non-positive dimensions
func NewGrid(width, height int) (Grid, error) {
	if width <= 0 || height <= 0 {
		return Grid{}, errors.Errorf("invalid grid size %dx%d", width, height)
	}
	return Grid{Width: width, Height: height}, nil
}

// Cells returns the total cell count
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// Contains reports whether c lies inside the grid
func (g Grid) Contains(c Coord) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// Translate moves c one step in dir
// Wrap re-enters at the opposite edge; solid returns ErrOutOfBounds when leaving the grid
func (g Grid) Translate(c Coord, dir Direction, policy WallPolicy) (Coord, error) {
	dx, dy := dir.Delta()
	next := Coord{X: c.X + dx, Y: c.Y + dy}

	if g.Contains(next) {
		return next, nil
	}

	if policy == WallSolid {
		return c, ErrOutOfBounds
	}

	next.X = ((next.X % g.Width) + g.Width) % g.Width
	next.Y = ((next.Y % g.Height) + g.Height) % g.Height
	return next, nil
}

// Neighbor returns the side of a on which the adjacent cell b lies, accounting for wraparound
// Returns DirNone when the cells are not adjacent
func (g Grid) Neighbor(a, b Coord) Direction {
	for _, d := range [...]Direction{DirUp, DirDown, DirLeft, DirRight} {
		if next, err := g.Translate(a, d, WallWrap); err == nil && next == b {
			return d
		}
	}
	return DirNone
}
