// Package automatic runs computer-vs-computer games to completion. It is
// used to soak-test the engine's invariants across many random deals.
package automatic

import (
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/aureliano/dominoes/ai"
	"github.com/aureliano/dominoes/game"
	"github.com/aureliano/dominoes/tiles"
)

// ErrStalled is returned when a playout exceeds the turn cap. A blocked
// board whose ends show different fully-exhausted pips never satisfies
// the draw rule, so both sides draw no-ops forever; the cap turns that
// livelock into a reportable outcome.
var ErrStalled = errors.New("playout exceeded the turn cap")

// TurnCap is far above any finishable game's length (at most 28 tile
// placements plus a bounded number of draws per side).
const TurnCap = 500

// GameRunner plays a strategy against itself on a fresh game.
type GameRunner struct {
	g          *game.Game
	strategies [2]ai.Strategy
}

// NewGameRunner instantiates a runner with the given shuffler (nil for a
// production source) and the greedy strategy on both seats.
func NewGameRunner(r tiles.Shuffler) *GameRunner {
	return &GameRunner{
		g:          game.NewGame(r),
		strategies: [2]ai.Strategy{ai.Greedy{}, ai.Greedy{}},
	}
}

// Game exposes the underlying game, e.g. for invariant checks mid-playout.
func (r *GameRunner) Game() *game.Game {
	return r.g
}

// StartGame deals and places the opener.
func (r *GameRunner) StartGame() error {
	return r.g.StartGame()
}

// PlayTurn makes a single strategy move for the seat on turn.
func (r *GameRunner) PlayTurn() error {
	seat := r.g.PlayerOnTurn()
	m := r.strategies[seat].ChooseMove(r.g.HandFor(seat).Tiles(), r.g.Snake())
	return r.g.PlayMove(m)
}

// Playout starts a game and plays it to a terminal status.
func (r *GameRunner) Playout() (game.Status, error) {
	if err := r.StartGame(); err != nil {
		return r.g.Status(), err
	}
	for turns := 0; !r.g.Over(); turns++ {
		if turns >= TurnCap {
			log.Warn().Msg("playout stalled on an undetectable blocked board")
			return r.g.Status(), ErrStalled
		}
		if err := r.PlayTurn(); err != nil {
			return r.g.Status(), err
		}
	}
	return r.g.Status(), nil
}
