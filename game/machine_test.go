package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSettings() Settings {
	return Settings{
		Width:          10,
		Height:         8,
		StartingLength: 3,
		FoodCount:      2,
		Rules:          Rules{Policy: WallWrap, GrowthPerFood: 1, ScorePerFood: 1},
	}
}

func TestMachineStartsInMenu(t *testing.T) {
	m := NewMachine(testSettings(), NewSpawner(NewSource(1)))
	assert.Equal(t, PhaseMenu, m.Phase())
	assert.Nil(t, m.World())
}

func TestMachineStartBuildsFreshWorld(t *testing.T) {
	m := NewMachine(testSettings(), NewSpawner(NewSource(1)))
	require.NoError(t, m.Start())
	require.Equal(t, PhasePlaying, m.Phase())

	w := m.World()
	require.NotNil(t, w)
	assert.Equal(t, 3, w.Snake.Len())
	assert.Len(t, w.Foods, 2)
	assert.Equal(t, 0, w.Score)
	for _, f := range w.Foods {
		assert.False(t, w.Snake.Occupies(f.Pos))
	}
}

func TestMachinePauseResumePreservesState(t *testing.T) {
	m := NewMachine(testSettings(), NewSpawner(NewSource(5)))
	require.NoError(t, m.Start())
	for i := 0; i < 3; i++ {
		_, err := m.Tick(DirNone)
		require.NoError(t, err)
	}
	require.Equal(t, PhasePlaying, m.Phase())

	before := m.World().Clone()

	require.NoError(t, m.Pause())
	require.Equal(t, PhasePaused, m.Phase())
	p := m.State().(Paused)
	assert.Equal(t, before.Snake.Segments(), p.Snapshot.Snake.Segments())
	assert.Equal(t, before.Foods, p.Snapshot.Foods)
	assert.Equal(t, before.Score, p.Snapshot.Score)

	_, err := m.Tick(DirDown)
	assert.ErrorIs(t, err, ErrInvalidTransition, "no ticks while paused")

	require.NoError(t, m.Resume())
	require.Equal(t, PhasePlaying, m.Phase())
	after := m.World()
	assert.Equal(t, before.Grid, after.Grid)
	assert.Equal(t, before.Snake.Segments(), after.Snake.Segments())
	assert.Equal(t, before.Snake.Heading(), after.Snake.Heading())
	assert.Equal(t, before.Snake.Pending(), after.Snake.Pending())
	assert.Equal(t, before.Foods, after.Foods)
	assert.Equal(t, before.Score, after.Score)
	assert.Equal(t, before.Ticks, after.Ticks)
}

func TestMachineTogglePause(t *testing.T) {
	m := NewMachine(testSettings(), NewSpawner(NewSource(1)))
	assert.ErrorIs(t, m.TogglePause(), ErrInvalidTransition)

	require.NoError(t, m.Start())
	require.NoError(t, m.TogglePause())
	assert.Equal(t, PhasePaused, m.Phase())
	require.NoError(t, m.TogglePause())
	assert.Equal(t, PhasePlaying, m.Phase())
}

func TestMachineCollisionEndsGame(t *testing.T) {
	s := testSettings()
	s.Rules.Policy = WallSolid
	s.FoodCount = 1
	m := NewMachine(s, NewSpawner(&seqSource{seq: []int{0}}))
	require.NoError(t, m.Start())

	// Straight right from the center hits the east wall within Width ticks
	var out Outcome
	for i := 0; i < s.Width; i++ {
		var err error
		out, err = m.Tick(DirNone)
		require.NoError(t, err)
		if out.Kind.Terminal() {
			break
		}
	}
	require.Equal(t, WallCollision, out.Kind)
	require.Equal(t, PhaseGameOver, m.Phase())

	over := m.State().(GameOver)
	assert.Equal(t, WallCollision, over.Cause)
	assert.Equal(t, out.Score, over.Score)
	assert.NotNil(t, m.World())
}

func TestMachineRestartResetsScore(t *testing.T) {
	s := testSettings()
	s.Rules.Policy = WallSolid
	m := NewMachine(s, NewSpawner(NewSource(9)))
	require.NoError(t, m.Start())
	assert.ErrorIs(t, m.Restart(), ErrInvalidTransition)

	for m.Phase() == PhasePlaying {
		_, err := m.Tick(DirNone)
		require.NoError(t, err)
	}
	require.Equal(t, PhaseGameOver, m.Phase())

	require.NoError(t, m.Restart())
	assert.Equal(t, PhasePlaying, m.Phase())
	assert.Equal(t, 0, m.World().Score)
	assert.Equal(t, 3, m.World().Snake.Len())
}

func TestMachineQuit(t *testing.T) {
	m := NewMachine(testSettings(), NewSpawner(NewSource(1)))
	require.NoError(t, m.Quit())
	assert.Equal(t, PhaseTerminated, m.Phase())
	assert.ErrorIs(t, m.Quit(), ErrInvalidTransition)
	assert.ErrorIs(t, m.Start(), ErrInvalidTransition)
}

func TestMachineInvalidTransitionsKeepState(t *testing.T) {
	m := NewMachine(testSettings(), NewSpawner(NewSource(1)))
	assert.ErrorIs(t, m.Pause(), ErrInvalidTransition)
	assert.ErrorIs(t, m.Resume(), ErrInvalidTransition)
	_, err := m.Tick(DirUp)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, PhaseMenu, m.Phase())

	require.NoError(t, m.Start())
	assert.ErrorIs(t, m.Start(), ErrInvalidTransition)
	assert.ErrorIs(t, m.Resume(), ErrInvalidTransition)
	assert.Equal(t, PhasePlaying, m.Phase())
}

func TestMachineNoRoomForFoodIsBoardFull(t *testing.T) {
	s := Settings{
		Width:          3,
		Height:         1,
		StartingLength: 3,
		FoodCount:      1,
		Rules:          Rules{Policy: WallWrap, GrowthPerFood: 1, ScorePerFood: 1},
	}
	m := NewMachine(s, NewSpawner(NewSource(1)))
	require.NoError(t, m.Start())

	require.Equal(t, PhaseGameOver, m.Phase())
	assert.Equal(t, BoardFull, m.State().(GameOver).Cause)
}
