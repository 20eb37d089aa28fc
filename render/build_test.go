package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/snek/game"
	"github.com/lixenwraith/snek/theme"
)

func table(t *testing.T, snake, board, food string) *theme.Table {
	t.Helper()
	tbl, err := theme.Resolve(theme.Selection{Snake: snake, Board: board, Food: food})
	require.NoError(t, err)
	return tbl
}

func testWorld(segs []game.Coord, heading game.Direction, foods ...game.Food) *game.World {
	return game.NewWorldWith(
		game.Grid{Width: 5, Height: 5},
		game.NewSnake(segs, heading),
		foods,
		game.Rules{Policy: game.WallWrap, GrowthPerFood: 1, ScorePerFood: 1},
		game.NewSpawner(game.NewSource(1)),
	)
}

func TestBuildPlayingBordered(t *testing.T) {
	w := testWorld(
		[]game.Coord{{X: 2, Y: 2}, {X: 1, Y: 2}, {X: 1, Y: 1}},
		game.DirRight,
		game.Food{Pos: game.Coord{X: 4, Y: 4}},
	)
	w.Score = 7

	f := Build(game.Playing{World: w}, table(t, "line", "rounded", "ascii"))

	require.Equal(t, 7, f.Cols)
	require.Equal(t, 7, f.Rows)
	require.Len(t, f.Cells, 49)
	assert.True(t, f.Bordered)
	assert.Equal(t, game.PhasePlaying, f.Phase)
	assert.Equal(t, "Score: 7", f.Header)
	assert.Empty(t, f.Banner)

	head := f.At(3, 3)
	assert.Equal(t, KindSnakeHead, head.Kind)
	assert.Equal(t, theme.HeadRight, head.Shape)
	assert.Equal(t, "━ ", head.Text)

	body := f.At(2, 3)
	assert.Equal(t, KindSnakeBody, body.Kind)
	assert.Equal(t, theme.BodyUpRight, body.Shape)
	assert.Equal(t, "┗━", body.Text)

	tail := f.At(2, 2)
	assert.Equal(t, theme.TailDown, tail.Shape)
	assert.Equal(t, "╻ ", tail.Text)

	food := f.At(5, 5)
	assert.Equal(t, KindFood, food.Kind)
	assert.Equal(t, "<>", food.Text)
	assert.True(t, food.Fg.Set)

	assert.Equal(t, KindEmpty, f.At(1, 1).Kind)
	assert.Equal(t, "  ", f.At(1, 1).Text)

	assert.Equal(t, "╭──────────╮", f.Row(0))
	assert.Equal(t, "╰──────────╯", f.Row(6))
	assert.Equal(t, "│          │", f.Row(1))
	for y := 0; y < f.Rows; y++ {
		assert.Equal(t, KindWall, f.At(0, y).Kind)
		assert.Equal(t, KindWall, f.At(f.Cols-1, y).Kind)
	}
}

func TestBuildUnbordered(t *testing.T) {
	w := testWorld([]game.Coord{{X: 2, Y: 2}}, game.DirUp)
	f := Build(game.Playing{World: w}, table(t, "basic", "classic", "star"))

	assert.False(t, f.Bordered)
	assert.Equal(t, 5, f.Cols)
	assert.Equal(t, 5, f.Rows)
	assert.Equal(t, "[]", f.At(2, 2).Text)
	assert.Equal(t, "` ", f.At(0, 0).Text)
	for _, g := range f.Cells {
		assert.NotEqual(t, KindWall, g.Kind)
	}
}

func TestBuildHidesScore(t *testing.T) {
	tbl := table(t, "basic", "empty", "ascii")
	tbl.ShowScore = false
	f := Build(game.Playing{World: testWorld([]game.Coord{{X: 2, Y: 2}}, game.DirUp)}, tbl)
	assert.Empty(t, f.Header)
}

func TestBuildMenuShowsEmptyBoard(t *testing.T) {
	m := game.NewMachine(game.Settings{Width: 6, Height: 5, StartingLength: 2, FoodCount: 1}, game.NewSpawner(game.NewSource(1)))
	f := Build(m.State(), table(t, "braille", "double", "emoji"))

	assert.Equal(t, game.PhaseMenu, f.Phase)
	assert.Equal(t, 8, f.Cols)
	assert.Equal(t, 7, f.Rows)
	assert.Empty(t, f.Header)
	require.NotEmpty(t, f.Banner)
	for _, g := range f.Cells {
		assert.NotEqual(t, KindSnakeHead, g.Kind)
		assert.NotEqual(t, KindFood, g.Kind)
	}
}

func TestBuildBanners(t *testing.T) {
	tbl := table(t, "basic", "empty", "ascii")
	w := testWorld([]game.Coord{{X: 2, Y: 2}}, game.DirUp)

	paused := Build(game.Paused{Snapshot: w}, tbl)
	assert.Equal(t, "PAUSED", paused.Banner[0])
	assert.Equal(t, "Score: 0", paused.Header)

	won := Build(game.GameOver{Score: 24, Cause: game.BoardFull, World: w}, tbl)
	assert.Equal(t, "YOU WON!", won.Banner[0])
	assert.Contains(t, won.Banner, "score 24")

	wall := Build(game.GameOver{Cause: game.WallCollision, World: w}, tbl)
	assert.Contains(t, wall.Banner[0], "wall")

	self := Build(game.GameOver{Cause: game.SelfCollision, World: w}, tbl)
	assert.Contains(t, self.Banner[0], "tail")

	done := Build(game.Terminated{}, tbl)
	assert.Empty(t, done.Banner)
	assert.Empty(t, done.Cells)
}

func TestBuildIsPure(t *testing.T) {
	w := testWorld([]game.Coord{{X: 2, Y: 2}, {X: 1, Y: 2}}, game.DirRight, game.Food{Pos: game.Coord{X: 0, Y: 0}})
	before := w.Clone()
	tbl := table(t, "line", "rounded", "emoji")

	a := Build(game.Playing{World: w}, tbl)
	b := Build(game.Playing{World: w}, tbl)
	assert.Equal(t, a, b)
	assert.Equal(t, before.Snake.Segments(), w.Snake.Segments())
	assert.Equal(t, before.Foods, w.Foods)
}

func TestSegmentShapesCorners(t *testing.T) {
	g := game.Grid{Width: 5, Height: 5}
	cases := []struct {
		name string
		segs []game.Coord
		want theme.Shape
	}{
		{"up-right", []game.Coord{{X: 2, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 2}}, theme.BodyUpRight},
		{"up-left", []game.Coord{{X: 2, Y: 1}, {X: 2, Y: 2}, {X: 1, Y: 2}}, theme.BodyUpLeft},
		{"down-right", []game.Coord{{X: 2, Y: 3}, {X: 2, Y: 2}, {X: 3, Y: 2}}, theme.BodyDownRight},
		{"down-left", []game.Coord{{X: 2, Y: 3}, {X: 2, Y: 2}, {X: 1, Y: 2}}, theme.BodyDownLeft},
		{"vertical", []game.Coord{{X: 2, Y: 1}, {X: 2, Y: 2}, {X: 2, Y: 3}}, theme.BodyVertical},
		{"horizontal", []game.Coord{{X: 1, Y: 2}, {X: 2, Y: 2}, {X: 3, Y: 2}}, theme.BodyHorizontal},
	}
	for _, tc := range cases {
		shapes := SegmentShapes(g, tc.segs, game.DirUp)
		assert.Equal(t, tc.want, shapes[1], tc.name)
	}
}

func TestSegmentShapesAcrossWrap(t *testing.T) {
	g := game.Grid{Width: 5, Height: 5}
	segs := []game.Coord{{X: 0, Y: 2}, {X: 4, Y: 2}, {X: 3, Y: 2}}
	shapes := SegmentShapes(g, segs, game.DirRight)

	assert.Equal(t, []theme.Shape{theme.HeadRight, theme.BodyHorizontal, theme.TailRight}, shapes)

	vertical := SegmentShapes(g, []game.Coord{{X: 1, Y: 4}, {X: 1, Y: 0}}, game.DirUp)
	assert.Equal(t, theme.TailUp, vertical[1])
}

func TestSegmentShapesSingle(t *testing.T) {
	g := game.Grid{Width: 5, Height: 5}
	assert.Equal(t, []theme.Shape{theme.HeadLeft}, SegmentShapes(g, []game.Coord{{X: 2, Y: 2}}, game.DirLeft))
	assert.Empty(t, SegmentShapes(g, nil, game.DirLeft))
}
