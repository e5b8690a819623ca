package tiles

import (
	"strings"

	"github.com/samber/lo"
)

// A Hand is the ordered, mutable collection of tiles held by one side.
// Order matters: the move encoding references tiles by their position in
// the hand. Indices here are 0-based; the 1-based indices of the move
// encoding are translated by the move package.
type Hand struct {
	tiles []Tile
}

// NewHand creates a hand holding the given tiles, in order.
func NewHand(ts ...Tile) *Hand {
	h := &Hand{tiles: make([]Tile, len(ts))}
	copy(h.tiles, ts)
	return h
}

// Add appends a tile to the end of the hand.
func (h *Hand) Add(t Tile) {
	h.tiles = append(h.tiles, t)
}

// TileAt returns the tile at the given 0-based index. The index must be
// in range; callers are responsible for bounds checks.
func (h *Hand) TileAt(i int) Tile {
	return h.tiles[i]
}

// TakeAt removes and returns the tile at the given 0-based index,
// preserving the order of the remaining tiles.
func (h *Hand) TakeAt(i int) Tile {
	t := h.tiles[i]
	h.tiles = append(h.tiles[:i], h.tiles[i+1:]...)
	return t
}

// Remove removes the first tile equal to t (in either orientation) and
// reports whether one was found.
func (h *Hand) Remove(t Tile) bool {
	for i, ht := range h.tiles {
		if ht.EqualsIgnoreOrientation(t) {
			h.TakeAt(i)
			return true
		}
	}
	return false
}

// Contains reports whether the hand holds t in either orientation.
func (h *Hand) Contains(t Tile) bool {
	return lo.ContainsBy(h.tiles, func(ht Tile) bool {
		return ht.EqualsIgnoreOrientation(t)
	})
}

func (h *Hand) Len() int {
	return len(h.tiles)
}

func (h *Hand) Empty() bool {
	return len(h.tiles) == 0
}

// Tiles returns a copy of the hand's tiles in hand order.
func (h *Hand) Tiles() []Tile {
	ts := make([]Tile, len(h.tiles))
	copy(ts, h.tiles)
	return ts
}

// Copy returns a deep copy of this hand.
func (h *Hand) Copy() *Hand {
	return NewHand(h.tiles...)
}

func (h *Hand) String() string {
	return strings.Join(lo.Map(h.tiles, func(t Tile, _ int) string {
		return t.String()
	}), " ")
}
