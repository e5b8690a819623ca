// Package tiles contains the primitives of the double-six domino set:
// pip values, the Tile value type, and the 28-tile universe.
package tiles

import "fmt"

// A Pip is one of the two numeric values on a domino tile.
type Pip uint8

// MaxPip is the highest pip value in the double-six set.
const MaxPip Pip = 6

// SetSize is the number of unique tiles in the double-six set.
const SetSize = 28

// A Tile is an oriented pair of pips. Tiles are small values; they are
// copied around freely and never mutated. Re-orientation is done by
// replacing a tile with its Flipped counterpart.
type Tile struct {
	left, right Pip
}

// New creates a tile with the given left and right pips.
func New(left, right Pip) Tile {
	return Tile{left: left, right: right}
}

func (t Tile) Left() Pip  { return t.left }
func (t Tile) Right() Pip { return t.right }

// Flipped returns the tile with its pips swapped.
func (t Tile) Flipped() Tile {
	return Tile{left: t.right, right: t.left}
}

// Contains reports whether either pip of the tile is p.
func (t Tile) Contains(p Pip) bool {
	return t.left == p || t.right == p
}

// IsDouble reports whether both pips are equal.
func (t Tile) IsDouble() bool {
	return t.left == t.right
}

// EqualsIgnoreOrientation reports whether two tiles are the same physical
// tile, regardless of how they are currently oriented.
func (t Tile) EqualsIgnoreOrientation(o Tile) bool {
	return t == o || t == o.Flipped()
}

func (t Tile) String() string {
	return fmt.Sprintf("[%d, %d]", t.left, t.right)
}

// FullSet returns a fresh copy of the 28 unique tiles of the double-six
// set, in canonical order (lower pip first).
func FullSet() []Tile {
	ts := make([]Tile, 0, SetSize)
	for lo := Pip(0); lo <= MaxPip; lo++ {
		for hi := lo; hi <= MaxPip; hi++ {
			ts = append(ts, New(lo, hi))
		}
	}
	return ts
}
