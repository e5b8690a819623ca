// Package ai implements the computer's move selection.
package ai

import (
	"github.com/rs/zerolog/log"

	"github.com/aureliano/dominoes/game"
	"github.com/aureliano/dominoes/move"
	"github.com/aureliano/dominoes/snake"
	"github.com/aureliano/dominoes/tiles"
)

// A Strategy selects a move for the given hand against the given snake.
// The hand slice is in hand order; returned placement moves use the
// 1-based indices of the move encoding.
type Strategy interface {
	ChooseMove(hand []tiles.Tile, s *snake.Snake) move.Move
}

// Greedy is a one-ply heuristic with no lookahead: each tile is scored by
// how often its pips occur across the hand and the snake, and the
// highest-scoring tile that can legally extend an end is played. The
// intuition is to hold on to rare pips and shed common ones.
type Greedy struct{}

// ChooseMove scores every hand tile, then tries tiles from the highest
// score down (ties broken by hand order), checking the left end before
// the right. A tried tile is disqualified permanently. If nothing in the
// hand can be placed, it draws.
func (Greedy) ChooseMove(hand []tiles.Tile, s *snake.Snake) move.Move {
	var freq [int(tiles.MaxPip) + 1]int
	count := func(ts []tiles.Tile) {
		for _, t := range ts {
			freq[t.Left()]++
			freq[t.Right()]++
		}
	}
	count(hand)
	count(s.Tiles())

	scores := make([]int, len(hand))
	for i, t := range hand {
		scores[i] = freq[t.Left()] + freq[t.Right()]
	}

	for range scores {
		best := maxIndex(scores)
		scores[best] = -1
		for _, m := range []move.Move{move.Left(best + 1), move.Right(best + 1)} {
			if game.Legal(hand[best], m, s) {
				log.Debug().Stringer("tile", hand[best]).Stringer("move", m).
					Msg("greedy pick")
				return m
			}
		}
	}
	log.Debug().Msg("no playable tile, drawing from stock")
	return move.Draw
}

// maxIndex returns the index of the first occurrence of the maximum.
// The tie-break matters: it is what makes the strategy deterministic for
// a given hand order.
func maxIndex(scores []int) int {
	best := 0
	for i, sc := range scores {
		if sc > scores[best] {
			best = i
		}
	}
	return best
}
