package tiles

import (
	"testing"

	"github.com/matryer/is"
)

func TestHandTakeAt(t *testing.T) {
	is := is.New(t)

	h := NewHand(New(0, 1), New(2, 3), New(4, 5))
	taken := h.TakeAt(1)
	is.Equal(taken, New(2, 3))
	is.Equal(h.Len(), 2)
	// Order of the remaining tiles is preserved; indices shift down.
	is.Equal(h.TileAt(0), New(0, 1))
	is.Equal(h.TileAt(1), New(4, 5))
}

func TestHandRemove(t *testing.T) {
	is := is.New(t)

	h := NewHand(New(0, 1), New(2, 3))
	// Removal matches either orientation.
	is.True(h.Remove(New(3, 2)))
	is.Equal(h.Len(), 1)
	is.True(!h.Remove(New(6, 6)))
	is.Equal(h.Len(), 1)
}

func TestHandAddAndContains(t *testing.T) {
	is := is.New(t)

	h := NewHand()
	is.True(h.Empty())
	h.Add(New(5, 6))
	is.True(h.Contains(New(6, 5)))
	is.True(!h.Contains(New(5, 5)))
	is.Equal(h.Len(), 1)
}

func TestHandTilesIsACopy(t *testing.T) {
	is := is.New(t)

	h := NewHand(New(0, 0), New(1, 1))
	ts := h.Tiles()
	ts[0] = New(6, 6)
	is.Equal(h.TileAt(0), New(0, 0))
}
