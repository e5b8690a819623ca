package automatic

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aureliano/dominoes/game"
	"github.com/aureliano/dominoes/tiles"
)

func normalize(t tiles.Tile) tiles.Tile {
	if t.Left() > t.Right() {
		return t.Flipped()
	}
	return t
}

// checkInvariants asserts tile conservation and snake adjacency on the
// current state of g.
func checkInvariants(t *testing.T, g *game.Game) {
	t.Helper()

	seen := make(map[tiles.Tile]int)
	for _, seat := range []game.Seat{game.SeatHuman, game.SeatComputer} {
		for _, tile := range g.HandFor(seat).Tiles() {
			seen[normalize(tile)]++
		}
	}
	for _, tile := range g.Stock().Peek() {
		seen[normalize(tile)]++
	}
	board := g.Snake().Tiles()
	for _, tile := range board {
		seen[normalize(tile)]++
	}
	require.Len(t, seen, tiles.SetSize)
	for tile, n := range seen {
		require.Equalf(t, 1, n, "tile %v appears %d times", tile, n)
	}

	for i := 0; i+1 < len(board); i++ {
		require.Equalf(t, board[i].Right(), board[i+1].Left(),
			"junction mismatch after %v", board[i])
	}
}

func TestPlayoutsKeepInvariants(t *testing.T) {
	terminals := map[game.Status]int{}
	for seed := int64(0); seed < 100; seed++ {
		r := NewGameRunner(rand.New(rand.NewSource(seed)))
		require.NoError(t, r.StartGame())
		checkInvariants(t, r.Game())

		turns := 0
		for !r.Game().Over() && turns < TurnCap {
			require.NoError(t, r.PlayTurn())
			checkInvariants(t, r.Game())
			turns++
		}
		if r.Game().Over() {
			terminals[r.Game().Status()]++
			assert.True(t, r.Game().Status().Terminal())
		}
	}
	// Greedy self-play finishes the overwhelming majority of games.
	assert.NotEmpty(t, terminals)
}

func TestPlayoutReachesATerminalStatusOrStalls(t *testing.T) {
	r := NewGameRunner(rand.New(rand.NewSource(11)))
	status, err := r.Playout()
	if err != nil {
		require.True(t, errors.Is(err, ErrStalled))
		return
	}
	assert.True(t, status.Terminal())
}
