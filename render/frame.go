// Package render turns game state into terminal-independent frames.
//
// A Frame is a row-major grid of glyphs plus header and banner text. Building a frame has no
// side effects; painting it is left to the terminal driver.
package render

import (
	"github.com/lixenwraith/snek/game"
	"github.com/lixenwraith/snek/theme"
)

// Kind classifies what occupies a frame cell
type Kind uint8

const (
	KindEmpty Kind = iota
	KindSnakeHead
	KindSnakeBody
	KindFood
	KindWall
)

var kindNames = [...]string{"empty", "head", "body", "food", "wall"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Glyph is one rendered cell
// Text is already sized: CellWidth columns for field cells, border cells vary by position
type Glyph struct {
	Kind  Kind
	Shape theme.Shape
	Text  string
	Fg    theme.Color
}

// Frame is a complete screen image
type Frame struct {
	Phase game.Phase
	Score int

	// Cols and Rows count cells, including the border ring when Bordered
	Cols     int
	Rows     int
	Cells    []Glyph
	Bordered bool

	// Header is drawn over the top border, or on its own line above an unbordered field
	Header string
	Banner []string

	BannerColor theme.Color
	AccentColor theme.Color
}

// At returns the glyph at cell (x, y)
func (f *Frame) At(x, y int) Glyph {
	return f.Cells[y*f.Cols+x]
}

func (f *Frame) set(x, y int, g Glyph) {
	f.Cells[y*f.Cols+x] = g
}

// Row returns the text of row y concatenated
func (f *Frame) Row(y int) string {
	var n int
	for x := 0; x < f.Cols; x++ {
		n += len(f.At(x, y).Text)
	}
	buf := make([]byte, 0, n)
	for x := 0; x < f.Cols; x++ {
		buf = append(buf, f.At(x, y).Text...)
	}
	return string(buf)
}
