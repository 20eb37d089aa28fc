package render

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/snek/game"
	"github.com/lixenwraith/snek/theme"
)

// Build renders state with the resolved theme table
func Build(state game.State, t *theme.Table) Frame {
	var (
		grid  game.Grid
		world *game.World
	)

	switch s := state.(type) {
	case game.Menu:
		grid = s.Grid
	case game.Playing:
		world = s.World
	case game.Paused:
		world = s.Snapshot
	case game.GameOver:
		world = s.World
	}
	if world != nil {
		grid = world.Grid
	}

	f := Frame{
		Phase:       state.Phase(),
		Bordered:    t.Board.Border != nil,
		Cols:        grid.Width,
		Rows:        grid.Height,
		BannerColor: t.Banner,
		AccentColor: t.Accent,
	}
	off := 0
	if f.Bordered {
		f.Cols += 2
		f.Rows += 2
		off = 1
	}
	f.Cells = make([]Glyph, f.Cols*f.Rows)

	empty := Glyph{Kind: KindEmpty, Text: theme.Fit(t.Board.Empty)}
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			f.set(x+off, y+off, empty)
		}
	}
	if f.Bordered {
		drawBorder(&f, t.Board.Border)
	}

	if world != nil {
		f.Score = world.Score
		for _, food := range world.Foods {
			text, fg := t.FoodGlyph(food.Variant)
			f.set(food.Pos.X+off, food.Pos.Y+off, Glyph{Kind: KindFood, Text: theme.Fit(text), Fg: fg})
		}

		segs := world.Snake.Segments()
		shapes := SegmentShapes(world.Grid, segs, world.Snake.Heading())
		for i, c := range segs {
			kind := KindSnakeBody
			if i == 0 {
				kind = KindSnakeHead
			}
			f.set(c.X+off, c.Y+off, Glyph{
				Kind:  kind,
				Shape: shapes[i],
				Text:  theme.Fit(t.SnakeGlyph(shapes[i])),
				Fg:    t.Snake.Color,
			})
		}

		if t.ShowScore {
			f.Header = fmt.Sprintf("Score: %d", world.Score)
		}
	}

	f.Banner = banner(state)
	return f
}

func drawBorder(f *Frame, b *theme.Border) {
	wall := func(s string) Glyph { return Glyph{Kind: KindWall, Text: s} }
	span := strings.Repeat(b.Horizontal, theme.CellWidth)
	last := f.Rows - 1

	f.set(0, 0, wall(b.TopLeft))
	f.set(f.Cols-1, 0, wall(b.TopRight))
	f.set(0, last, wall(b.BottomLeft))
	f.set(f.Cols-1, last, wall(b.BottomRight))

	for x := 1; x < f.Cols-1; x++ {
		f.set(x, 0, wall(span))
		f.set(x, last, wall(span))
	}
	for y := 1; y < last; y++ {
		f.set(0, y, wall(b.Vertical))
		f.set(f.Cols-1, y, wall(b.Vertical))
	}
}

func banner(state game.State) []string {
	switch s := state.(type) {
	case game.Menu:
		return []string{"S N E K", "", "enter to start", "arrows, wasd or hjkl to steer", "space pauses, q quits"}
	case game.Paused:
		return []string{"PAUSED", "space to resume"}
	case game.GameOver:
		title := "GAME OVER"
		switch s.Cause {
		case game.BoardFull:
			title = "YOU WON!"
		case game.SelfCollision:
			title = "GAME OVER: bit your tail"
		case game.WallCollision:
			title = "GAME OVER: hit the wall"
		}
		return []string{title, fmt.Sprintf("score %d", s.Score), "r to restart, q to quit"}
	default:
		return nil
	}
}

// SegmentShapes picks the directional shape of every segment, head first
// Heads follow the heading; tails and bodies follow the sides their neighbors occupy,
// looking across wrapped edges
func SegmentShapes(g game.Grid, segs []game.Coord, heading game.Direction) []theme.Shape {
	shapes := make([]theme.Shape, len(segs))
	if len(segs) == 0 {
		return shapes
	}
	shapes[0] = headShape(heading)

	for i := 1; i < len(segs); i++ {
		toPrev := g.Neighbor(segs[i], segs[i-1])
		if i == len(segs)-1 {
			shapes[i] = tailShape(toPrev)
			continue
		}
		shapes[i] = bodyShape(toPrev, g.Neighbor(segs[i], segs[i+1]))
	}
	return shapes
}

func headShape(d game.Direction) theme.Shape {
	switch d {
	case game.DirUp:
		return theme.HeadUp
	case game.DirDown:
		return theme.HeadDown
	case game.DirLeft:
		return theme.HeadLeft
	default:
		return theme.HeadRight
	}
}

func tailShape(toBody game.Direction) theme.Shape {
	switch toBody {
	case game.DirUp:
		return theme.TailUp
	case game.DirDown:
		return theme.TailDown
	case game.DirLeft:
		return theme.TailLeft
	default:
		return theme.TailRight
	}
}

func bodyShape(a, b game.Direction) theme.Shape {
	has := func(d game.Direction) bool { return a == d || b == d }
	switch {
	case has(game.DirUp) && has(game.DirDown):
		return theme.BodyVertical
	case has(game.DirUp) && has(game.DirRight):
		return theme.BodyUpRight
	case has(game.DirUp) && has(game.DirLeft):
		return theme.BodyUpLeft
	case has(game.DirDown) && has(game.DirRight):
		return theme.BodyDownRight
	case has(game.DirDown) && has(game.DirLeft):
		return theme.BodyDownLeft
	default:
		return theme.BodyHorizontal
	}
}
