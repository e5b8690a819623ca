package tiles

import "fmt"

// A Shuffler provides the permutation used when building a fresh stock.
// Both *math/rand.Rand and *frand.RNG satisfy it, so tests can inject a
// fixed-seed source while production uses a cryptographically seeded one.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// A Stock is the pool of tiles not yet dealt or drawn. The draw order is
// fixed once, at shuffle time; tiles come off one end.
type Stock struct {
	tiles []Tile
}

// NewStock builds a stock containing the full double-six set, shuffled
// with the given shuffler.
func NewStock(r Shuffler) *Stock {
	ts := FullSet()
	r.Shuffle(len(ts), func(i, j int) {
		ts[i], ts[j] = ts[j], ts[i]
	})
	return &Stock{tiles: ts}
}

// Draw draws n tiles from the stock.
func (s *Stock) Draw(n int) ([]Tile, error) {
	if n > len(s.tiles) {
		return nil, fmt.Errorf("tried to draw %v tiles, stock has %v",
			n, len(s.tiles))
	}
	drawn := make([]Tile, n)
	copy(drawn, s.tiles[:n])
	s.tiles = s.tiles[n:]
	return drawn, nil
}

// DrawOne draws a single tile, reporting false if the stock is empty.
// An empty stock is not an error here; the game layer treats that draw
// as a turn-consuming no-op.
func (s *Stock) DrawOne() (Tile, bool) {
	if len(s.tiles) == 0 {
		return Tile{}, false
	}
	t := s.tiles[0]
	s.tiles = s.tiles[1:]
	return t, true
}

// Peek returns a copy of the remaining tiles, in draw order.
func (s *Stock) Peek() []Tile {
	ts := make([]Tile, len(s.tiles))
	copy(ts, s.tiles)
	return ts
}

func (s *Stock) Len() int {
	return len(s.tiles)
}

func (s *Stock) Empty() bool {
	return len(s.tiles) == 0
}
