// Package snake implements the board of a dominoes game: the ordered
// chain of oriented tiles, with its two open ends.
package snake

import (
	"strings"

	"github.com/samber/lo"

	"github.com/aureliano/dominoes/tiles"
)

// AbbrevThreshold is the snake length above which the display form is
// abbreviated to the first and last three tiles.
const AbbrevThreshold = 6

// A Snake is an ordered sequence of oriented tiles. Invariant: for every
// adjacent pair, the right pip of the left tile equals the left pip of the
// right tile. Prepend and Append maintain the invariant by flipping the
// incoming tile when needed.
type Snake struct {
	tiles []tiles.Tile
}

func New() *Snake {
	return &Snake{}
}

func (s *Snake) Len() int {
	return len(s.tiles)
}

func (s *Snake) Empty() bool {
	return len(s.tiles) == 0
}

// LeftEnd returns the open pip on the left end. Callers must not query
// the ends of an empty snake; doing so is a state-machine violation, not
// a recoverable condition.
func (s *Snake) LeftEnd() tiles.Pip {
	if len(s.tiles) == 0 {
		panic("queried left end of an empty snake")
	}
	return s.tiles[0].Left()
}

// RightEnd returns the open pip on the right end.
func (s *Snake) RightEnd() tiles.Pip {
	if len(s.tiles) == 0 {
		panic("queried right end of an empty snake")
	}
	return s.tiles[len(s.tiles)-1].Right()
}

// Prepend places t on the left end, flipping it if its right pip does not
// already match the current left end. The very first tile is placed as-is.
func (s *Snake) Prepend(t tiles.Tile) {
	if len(s.tiles) > 0 && t.Right() != s.LeftEnd() {
		t = t.Flipped()
	}
	s.tiles = append([]tiles.Tile{t}, s.tiles...)
}

// Append places t on the right end, flipping it if its left pip does not
// already match the current right end. The very first tile is placed as-is.
func (s *Snake) Append(t tiles.Tile) {
	if len(s.tiles) > 0 && t.Left() != s.RightEnd() {
		t = t.Flipped()
	}
	s.tiles = append(s.tiles, t)
}

// Tiles returns a copy of the snake's tiles, left to right, in their
// current orientation.
func (s *Snake) Tiles() []tiles.Tile {
	ts := make([]tiles.Tile, len(s.tiles))
	copy(ts, s.tiles)
	return ts
}

// PipOccurrences counts how many times p occurs across the snake's tiles.
// A double counts twice.
func (s *Snake) PipOccurrences(p tiles.Pip) int {
	n := 0
	for _, t := range s.tiles {
		if t.Left() == p {
			n++
		}
		if t.Right() == p {
			n++
		}
	}
	return n
}

// String renders the snake for display: all tiles when the snake is short,
// otherwise the first three tiles, an ellipsis, and the last three.
func (s *Snake) String() string {
	strs := lo.Map(s.tiles, func(t tiles.Tile, _ int) string {
		return t.String()
	})
	if len(strs) <= AbbrevThreshold {
		return strings.Join(strs, "")
	}
	head := strings.Join(strs[:3], "")
	tail := strings.Join(strs[len(strs)-3:], "")
	return head + "..." + tail
}
