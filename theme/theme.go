// Package theme provides the built-in glyph and color tables.
//
// A Selection names one snake, board and food table; Resolve turns it into a Table once at
// startup. Every glyph occupies CellWidth terminal columns.
package theme

import (
	"sort"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"
	"github.com/pkg/errors"
)

// CellWidth is the terminal column count of one grid cell
const CellWidth = 2

// ErrUnknownTheme is returned for a name with no built-in table
var ErrUnknownTheme = errors.New("unknown theme")

// Shape is the directional form of a snake segment
// Heads are named by heading, tails and bodies by the sides their neighbors occupy
type Shape uint8

const (
	ShapeNone Shape = iota
	HeadUp
	HeadDown
	HeadLeft
	HeadRight
	TailUp    // body neighbor above
	TailDown  // body neighbor below
	TailLeft  // body neighbor to the left
	TailRight // body neighbor to the right
	BodyVertical
	BodyHorizontal
	BodyUpRight
	BodyUpLeft
	BodyDownRight
	BodyDownLeft
	shapeCount
)

// Color is an optional RGB foreground; the zero value is the terminal default
type Color struct {
	colorful.Color
	Set bool
}

// Hex parses a #rrggbb color, panicking on malformed input
func Hex(s string) Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return Color{Color: c, Set: true}
}

// Border holds the frame drawn around the board
type Border struct {
	Horizontal  string
	Vertical    string
	TopLeft     string
	TopRight    string
	BottomLeft  string
	BottomRight string
}

// Board is the field background and optional border
type Board struct {
	Empty  string
	Border *Border
}

// Snake maps each shape to a glyph
type Snake struct {
	Glyphs [shapeCount]string
	Color  Color
}

// Food holds the glyph and color cycles indexed by food variant
type Food struct {
	Glyphs []string
	Colors []Color
}

// Selection names the built-in tables to combine
type Selection struct {
	Snake     string `toml:"snake"`
	Board     string `toml:"board"`
	Food      string `toml:"food"`
	HideScore bool   `toml:"hide_score"`
}

// DefaultSelection matches the classic look
func DefaultSelection() Selection {
	return Selection{Snake: "braille", Board: "rounded", Food: "emoji"}
}

// Table is the resolved lookup table consumed by the frame builder
type Table struct {
	Snake     Snake
	Board     Board
	Food      Food
	Banner    Color
	Accent    Color
	ShowScore bool
}

// SnakeGlyph returns the glyph for shape, falling back to the horizontal body
func (t *Table) SnakeGlyph(s Shape) string {
	if s > ShapeNone && s < shapeCount && t.Snake.Glyphs[s] != "" {
		return t.Snake.Glyphs[s]
	}
	return t.Snake.Glyphs[BodyHorizontal]
}

// FoodGlyph returns the glyph and color for a food variant
// Low 16 bits pick the glyph, high 16 bits pick the color
func (t *Table) FoodGlyph(variant uint32) (string, Color) {
	glyph := t.Food.Glyphs[int(variant&0xFFFF)%len(t.Food.Glyphs)]
	if len(t.Food.Colors) == 0 {
		return glyph, Color{}
	}
	return glyph, t.Food.Colors[int(variant>>16)%len(t.Food.Colors)]
}

// Resolve builds the lookup table for a selection
func Resolve(sel Selection) (*Table, error) {
	snake, ok := snakes[sel.Snake]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownTheme, "snake theme %q", sel.Snake)
	}
	board, ok := boards[sel.Board]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownTheme, "board theme %q", sel.Board)
	}
	food, ok := foods[sel.Food]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownTheme, "food theme %q", sel.Food)
	}

	return &Table{
		Snake:     snake,
		Board:     board,
		Food:      food,
		Banner:    Hex("#ffd75f"),
		Accent:    Hex("#ff5f5f"),
		ShowScore: !sel.HideScore,
	}, nil
}

// SnakeNames lists the built-in snake themes
func SnakeNames() []string { return sortedKeys(snakes) }

// BoardNames lists the built-in board themes
func BoardNames() []string { return sortedKeys(boards) }

// FoodNames lists the built-in food themes
func FoodNames() []string { return sortedKeys(foods) }

func sortedKeys[T any](m map[string]T) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Width returns the display width of a glyph in terminal columns
func Width(glyph string) int {
	return runewidth.StringWidth(glyph)
}

// Fit pads or truncates glyph to exactly CellWidth columns
func Fit(glyph string) string {
	w := Width(glyph)
	switch {
	case w == CellWidth:
		return glyph
	case w < CellWidth:
		return runewidth.FillRight(glyph, CellWidth)
	default:
		return runewidth.Truncate(glyph, CellWidth, "")
	}
}
