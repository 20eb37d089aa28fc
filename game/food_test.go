package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seqSource replays a fixed sequence of values
type seqSource struct {
	seq []int
	i   int
}

func (s *seqSource) next() int {
	if len(s.seq) == 0 {
		return 0
	}
	v := s.seq[s.i%len(s.seq)]
	s.i++
	return v
}

func (s *seqSource) Intn(n int) int  { return s.next() % n }
func (s *seqSource) Uint32() uint32 { return uint32(s.next()) }

func occupiedSet(cells ...Coord) func(Coord) bool {
	set := make(map[Coord]bool, len(cells))
	for _, c := range cells {
		set[c] = true
	}
	return func(c Coord) bool { return set[c] }
}

func TestSpawnPicksAmongFreeCellsInRowOrder(t *testing.T) {
	g := Grid{Width: 3, Height: 3}
	sp := NewSpawner(&seqSource{seq: []int{0, 1, 6}})
	occ := occupiedSet(Coord{0, 0}, Coord{1, 0})

	c, err := sp.Spawn(g, occ)
	require.NoError(t, err)
	assert.Equal(t, Coord{2, 0}, c)

	c, _ = sp.Spawn(g, occ)
	assert.Equal(t, Coord{0, 1}, c)

	c, _ = sp.Spawn(g, occ)
	assert.Equal(t, Coord{2, 2}, c)
}

func TestSpawnNeverOnOccupiedCell(t *testing.T) {
	g := Grid{Width: 6, Height: 4}
	sp := NewSpawner(NewSource(42))

	var taken []Coord
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x += 2 {
			taken = append(taken, Coord{x, y})
		}
	}
	occ := occupiedSet(taken...)

	for i := 0; i < 500; i++ {
		c, err := sp.Spawn(g, occ)
		require.NoError(t, err)
		assert.True(t, g.Contains(c))
		assert.False(t, occ(c), "spawned on occupied %v", c)
	}
}

func TestSpawnFailsOnlyWhenFull(t *testing.T) {
	g := Grid{Width: 3, Height: 3}
	sp := NewSpawner(NewSource(1))

	var all []Coord
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			all = append(all, Coord{x, y})
		}
	}

	for n := 0; n <= len(all); n++ {
		_, err := sp.Spawn(g, occupiedSet(all[:n]...))
		if n == g.Cells() {
			assert.ErrorIs(t, err, ErrNoSpaceLeft)
		} else {
			assert.NoError(t, err, "occupied %d of %d", n, g.Cells())
		}
	}
}

func TestSpawnBoardFullScenario(t *testing.T) {
	// 3x3 wrap grid, snake over every cell but one, the last cell holds pending food
	g := Grid{Width: 3, Height: 3}
	snake := NewSnake([]Coord{
		{0, 0}, {1, 0}, {2, 0},
		{2, 1}, {1, 1}, {0, 1},
		{0, 2}, {1, 2},
	}, DirLeft)
	w := NewWorldWith(g, snake, []Food{{Pos: Coord{2, 2}}}, Rules{}, NewSpawner(NewSource(7)))

	_, err := w.spawner.Spawn(g, w.Occupied)
	assert.ErrorIs(t, err, ErrNoSpaceLeft)

	// Only the snake occupies cells: the free cell is the sole choice
	c, err := w.spawner.Spawn(g, snake.Occupies)
	require.NoError(t, err)
	assert.Equal(t, Coord{2, 2}, c)
}

func TestNewSourceIsDeterministic(t *testing.T) {
	a, b := NewSource(99), NewSource(99)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Intn(1000), b.Intn(1000))
	}
}
