package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var defaultRules = Rules{Policy: WallWrap, GrowthPerFood: 1, ScorePerFood: 10}

func TestStepEatScenario(t *testing.T) {
	g := Grid{Width: 5, Height: 5}
	snake := NewSnake([]Coord{{2, 2}}, DirRight)
	w := NewWorldWith(g, snake, []Food{{Pos: Coord{3, 2}}}, defaultRules, NewSpawner(NewSource(3)))

	out := Step(w, DirNone)
	require.Equal(t, AteFood, out.Kind)
	assert.Equal(t, 10, out.Score)
	assert.Equal(t, 10, w.Score)
	assert.Equal(t, Coord{3, 2}, w.Snake.Head())
	assert.Equal(t, 1, w.Snake.Len(), "growth is pending until the next move")
	assert.Equal(t, 1, w.Snake.Pending())
	require.NotNil(t, out.Food)
	assert.Equal(t, Coord{3, 2}, out.Food.Pos)

	// Food was respawned somewhere free
	require.Len(t, w.Foods, 1)
	assert.False(t, w.Snake.Occupies(w.Foods[0].Pos))

	// Move away from the respawned food so the next tick is a plain move
	dir := DirRight
	if next, _ := g.Translate(Coord{3, 2}, DirRight, WallWrap); next == w.Foods[0].Pos {
		dir = DirUp
	}
	out = Step(w, dir)
	assert.Equal(t, Continued, out.Kind)
	assert.Equal(t, 2, w.Snake.Len())
	assert.Equal(t, 0, w.Snake.Pending())
}

func TestStepLengthInvariantWithoutFood(t *testing.T) {
	g := Grid{Width: 8, Height: 8}
	snake := NewSnake([]Coord{{3, 3}, {2, 3}, {1, 3}}, DirRight)
	w := NewWorldWith(g, snake, nil, defaultRules, NewSpawner(NewSource(1)))

	turns := []Direction{DirNone, DirDown, DirNone, DirLeft, DirNone, DirUp, DirUp, DirRight}
	for _, d := range turns {
		out := Step(w, d)
		require.Equal(t, Continued, out.Kind)
		assert.Equal(t, 3, w.Snake.Len())
	}
	assert.EqualValues(t, len(turns), w.Ticks)
}

func TestStepGrowthResolvesOverGrowthPerFoodTicks(t *testing.T) {
	rules := Rules{Policy: WallWrap, GrowthPerFood: 3, ScorePerFood: 1}
	g := Grid{Width: 20, Height: 3}
	snake := NewSnake([]Coord{{1, 1}, {0, 1}}, DirRight)
	// Deterministic respawn at the top-left corner, out of the snake's path
	w := NewWorldWith(g, snake, []Food{{Pos: Coord{2, 1}}}, rules, NewSpawner(&seqSource{seq: []int{0}}))

	out := Step(w, DirNone)
	require.Equal(t, AteFood, out.Kind)
	assert.Equal(t, 2, w.Snake.Len())

	for i := 1; i <= 3; i++ {
		require.Equal(t, Continued, Step(w, DirNone).Kind)
		assert.Equal(t, 2+i, w.Snake.Len())
	}
	require.Equal(t, Continued, Step(w, DirNone).Kind)
	assert.Equal(t, 5, w.Snake.Len())
}

func TestStepWallBeatsFood(t *testing.T) {
	g := Grid{Width: 5, Height: 5}
	snake := NewSnake([]Coord{{4, 2}, {3, 2}}, DirRight)
	rules := defaultRules
	rules.Policy = WallSolid
	// Under wrap this cell would be the next head
	w := NewWorldWith(g, snake, []Food{{Pos: Coord{0, 2}}}, rules, NewSpawner(NewSource(1)))

	out := Step(w, DirNone)
	assert.Equal(t, WallCollision, out.Kind)
	assert.Equal(t, 0, w.Score)
	assert.Len(t, w.Foods, 1)
	assert.Equal(t, []Coord{{4, 2}, {3, 2}}, w.Snake.Segments())
}

func TestStepWrapEatsAcrossEdge(t *testing.T) {
	g := Grid{Width: 5, Height: 5}
	snake := NewSnake([]Coord{{4, 2}, {3, 2}}, DirRight)
	w := NewWorldWith(g, snake, []Food{{Pos: Coord{0, 2}}}, defaultRules, NewSpawner(NewSource(1)))

	out := Step(w, DirNone)
	assert.Equal(t, AteFood, out.Kind)
	assert.Equal(t, Coord{0, 2}, w.Snake.Head())
}

func TestStepSelfCollision(t *testing.T) {
	g := Grid{Width: 6, Height: 6}
	// Heading up into the second-to-last body cell
	snake := NewSnake([]Coord{{2, 2}, {3, 2}, {3, 1}, {2, 1}, {1, 1}}, DirLeft)
	w := NewWorldWith(g, snake, nil, defaultRules, NewSpawner(NewSource(1)))
	before := w.Snake.Segments()

	out := Step(w, DirUp)
	assert.Equal(t, SelfCollision, out.Kind)
	assert.Equal(t, Coord{2, 1}, out.Head)
	assert.Equal(t, before, w.Snake.Segments(), "collision halts before mutation")
}

func TestStepChasingTailIsSafe(t *testing.T) {
	g := Grid{Width: 6, Height: 6}
	snake := NewSnake([]Coord{{2, 2}, {2, 3}, {1, 3}, {1, 2}}, DirLeft)
	w := NewWorldWith(g, snake, nil, defaultRules, NewSpawner(NewSource(1)))

	out := Step(w, DirNone)
	assert.Equal(t, Continued, out.Kind)
	assert.Equal(t, Coord{1, 2}, w.Snake.Head())
}

func TestStepChasingTailWhileGrowingCollides(t *testing.T) {
	g := Grid{Width: 6, Height: 6}
	snake := NewSnake([]Coord{{2, 2}, {2, 3}, {1, 3}, {1, 2}}, DirLeft)
	snake.Grow(1)
	w := NewWorldWith(g, snake, nil, defaultRules, NewSpawner(NewSource(1)))

	assert.Equal(t, SelfCollision, Step(w, DirNone).Kind)
}

func TestStepReversalIgnored(t *testing.T) {
	g := Grid{Width: 6, Height: 6}
	snake := NewSnake([]Coord{{2, 2}, {1, 2}}, DirRight)
	w := NewWorldWith(g, snake, nil, defaultRules, NewSpawner(NewSource(1)))

	out := Step(w, DirLeft)
	assert.Equal(t, Continued, out.Kind)
	assert.Equal(t, Coord{3, 2}, w.Snake.Head())
}

func TestStepBoardFullOnLastFood(t *testing.T) {
	g := Grid{Width: 3, Height: 1}
	snake := NewSnake([]Coord{{1, 0}, {0, 0}}, DirRight)
	rules := Rules{Policy: WallWrap, GrowthPerFood: 1, ScorePerFood: 1}
	w := NewWorldWith(g, snake, []Food{{Pos: Coord{2, 0}}}, rules, NewSpawner(NewSource(1)))

	// Head moves to (2,0), tail (0,0) is vacated: respawn lands there
	out := Step(w, DirNone)
	require.Equal(t, AteFood, out.Kind)
	require.Len(t, w.Foods, 1)
	assert.Equal(t, Coord{0, 0}, w.Foods[0].Pos)

	// Head wraps onto that food while the tail is held by pending growth: no free cell left
	out = Step(w, DirNone)
	assert.Equal(t, BoardFull, out.Kind)
	assert.Equal(t, 2, out.Score)
	assert.Empty(t, w.Foods)
}

func TestOutcomeKindTerminal(t *testing.T) {
	assert.False(t, Continued.Terminal())
	assert.False(t, AteFood.Terminal())
	assert.True(t, SelfCollision.Terminal())
	assert.True(t, WallCollision.Terminal())
	assert.True(t, BoardFull.Terminal())
}
