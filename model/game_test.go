package model

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zucenko/runordye/config"
)

func layoutGame(t *testing.T, layout string, player Cell, pursuers ...Cell) *Game {
	t.Helper()
	cfg := config.Default()
	cfg.Pursuers = len(pursuers)
	g, err := NewGameWithLayout(cfg, mustParse(t, layout), rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	g.Player = player
	g.Pursuers = pursuers
	return g
}

func assertDistinctFree(t *testing.T, g *Game) {
	t.Helper()
	seen := map[Cell]bool{}
	for _, c := range append([]Cell{g.Player}, g.Pursuers...) {
		assert.True(t, g.Grid.Free(c), "%v must be free", c)
		assert.False(t, seen[c], "%v placed twice", c)
		seen[c] = true
	}
}

func TestNewGamePlacesActorsOnDistinctFreeCells(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		g, err := NewGame(config.Default(), rand.New(rand.NewSource(seed)))
		require.NoError(t, err)
		assert.Equal(t, PLAYING, g.State)
		assert.Len(t, g.Pursuers, 3)
		assert.Equal(t, 20, g.Grid.Width())
		assert.Equal(t, 15, g.Grid.Height())
		assert.LessOrEqual(t, len(g.Grid.BlockedCells()), 50)
		assertDistinctFree(t, g)
	}
}

func TestNewGameRejectsBadConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Width = 0
	_, err := NewGame(cfg, rand.New(rand.NewSource(1)))
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestPlacement(t *testing.T) {
	t.Run("not enough free cells", func(t *testing.T) {
		cfg := config.Default()
		cfg.Pursuers = 1
		_, err := NewGameWithLayout(cfg, mustParse(t, "#.\n##\n"), rand.New(rand.NewSource(1)))
		assert.ErrorIs(t, err, ErrNoFreeCell)
	})

	t.Run("single free cell for the player", func(t *testing.T) {
		cfg := config.Default()
		cfg.Pursuers = 0
		g, err := NewGameWithLayout(cfg, mustParse(t, "#.\n##\n"), rand.New(rand.NewSource(1)))
		require.NoError(t, err)
		assert.Equal(t, Cell{X: 1, Y: 0}, g.Player)
	})

	t.Run("falls back to scan when draws keep missing", func(t *testing.T) {
		cfg := config.Default()
		cfg.Pursuers = 1
		cfg.MaxPlacementAttempts = 5
		// every draw lands on the obstacle at (0,0)
		g, err := NewGameWithLayout(cfg, mustParse(t, "#..\n"), &scriptedRand{values: []int{0}})
		require.NoError(t, err)
		assert.Equal(t, Cell{X: 1, Y: 0}, g.Player)
		assert.Equal(t, []Cell{{X: 2, Y: 0}}, g.Pursuers)
	})
}

func TestBlockedMoveKeepsPlayer(t *testing.T) {
	g := layoutGame(t, "...\n.#.\n...\n", Cell{X: 1, Y: 0}, Cell{X: 2, Y: 2})

	require.NoError(t, g.Turn(MOVE_DOWN))
	assert.Equal(t, Cell{X: 1, Y: 0}, g.Player)
	assert.Equal(t, []Cell{{X: 2, Y: 1}}, g.Pursuers, "pursuers still move")
	assert.Equal(t, 1, g.Turns)

	require.NoError(t, g.Turn(MOVE_UP))
	assert.Equal(t, Cell{X: 1, Y: 0}, g.Player, "off the grid")
}

func TestPlayerMoves(t *testing.T) {
	g := layoutGame(t, "....\n....\n", Cell{X: 1, Y: 1}, Cell{X: 3, Y: 0})

	require.NoError(t, g.Turn(MOVE_LEFT))
	assert.Equal(t, Cell{X: 0, Y: 1}, g.Player)
	require.NoError(t, g.Turn(MOVE_UP))
	assert.Equal(t, Cell{X: 0, Y: 0}, g.Player)
	assert.Equal(t, PLAYING, g.State)
}

func TestNonMoveIntentsSkipTheTurn(t *testing.T) {
	g := layoutGame(t, ".....\n", Cell{X: 0, Y: 0}, Cell{X: 4, Y: 0})

	require.NoError(t, g.Turn(NONE))
	require.NoError(t, g.Turn(RESTART))
	assert.Equal(t, Cell{X: 0, Y: 0}, g.Player)
	assert.Equal(t, []Cell{{X: 4, Y: 0}}, g.Pursuers)
	assert.Equal(t, 0, g.Turns)
}

func TestPursuersMayShareACell(t *testing.T) {
	g := layoutGame(t, "#.#\n...\n#.#\n", Cell{X: 1, Y: 2}, Cell{X: 0, Y: 1}, Cell{X: 2, Y: 1})

	require.NoError(t, g.Turn(MOVE_DOWN))
	assert.Equal(t, []Cell{{X: 1, Y: 1}, {X: 1, Y: 1}}, g.Pursuers)
	assert.Equal(t, PLAYING, g.State)
}

func TestCatchEndsGameUntilRestart(t *testing.T) {
	g := layoutGame(t, ".....\n", Cell{X: 0, Y: 0}, Cell{X: 2, Y: 0})

	require.NoError(t, g.Turn(MOVE_LEFT))
	assert.Equal(t, []Cell{{X: 1, Y: 0}}, g.Pursuers)
	assert.Equal(t, PLAYING, g.State)
	assert.Empty(t, g.Snapshot().Message)

	require.NoError(t, g.Turn(MOVE_LEFT))
	assert.Equal(t, GAME_OVER, g.State)
	assert.True(t, g.Over())
	assert.Equal(t, 2, g.Turns)

	// moves are ignored once over
	require.NoError(t, g.Turn(MOVE_RIGHT))
	assert.Equal(t, Cell{X: 0, Y: 0}, g.Player)
	assert.Equal(t, 2, g.Turns)
	assert.True(t, g.CheckCollision())

	snap := g.Snapshot()
	assert.Equal(t, GAME_OVER, snap.Status)
	assert.Equal(t, GameOverMessage, snap.Message)

	require.NoError(t, g.Turn(RESTART))
	assert.Equal(t, PLAYING, g.State)
	assert.Equal(t, 0, g.Turns)
	assertDistinctFree(t, g)
	assert.Equal(t, ".....\n", g.Grid.String(), "fixed layout survives restart")
}

func TestPlayerWalkingIntoPursuer(t *testing.T) {
	g := layoutGame(t, "...\n", Cell{X: 0, Y: 0}, Cell{X: 2, Y: 0})

	// after the player steps next to it the pursuer steps onto the player
	require.NoError(t, g.Turn(MOVE_RIGHT))
	assert.Equal(t, Cell{X: 1, Y: 0}, g.Player)
	assert.Equal(t, GAME_OVER, g.State)
}

func TestRestartRegeneratesRandomObstacles(t *testing.T) {
	g, err := NewGame(config.Default(), rand.New(rand.NewSource(3)))
	require.NoError(t, err)
	before := g.Grid.String()

	g.State = GAME_OVER
	require.NoError(t, g.ApplyPlayerIntent(RESTART))
	assert.Equal(t, PLAYING, g.State)
	assert.NotEqual(t, before, g.Grid.String())
	assertDistinctFree(t, g)
}

func TestSnapshotIsACopy(t *testing.T) {
	g := layoutGame(t, "..#\n...\n", Cell{X: 0, Y: 0}, Cell{X: 2, Y: 1})
	snap := g.Snapshot()
	snap.Pursuers[0] = Cell{X: 9, Y: 9}

	assert.Equal(t, []Cell{{X: 2, Y: 1}}, g.Pursuers)
	assert.Equal(t, 3, snap.Width)
	assert.Equal(t, 2, snap.Height)
	assert.Equal(t, []Cell{{X: 2, Y: 0}}, snap.Blocked)
	assert.Equal(t, PLAYING, snap.Status)
}
