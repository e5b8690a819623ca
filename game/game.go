// Package game encapsulates the mechanics of a two-player double-six
// dominoes game: dealing, the opening double, move validation and
// application, and end-of-game detection. A Game doesn't care how it is
// played; the interactive shell and the computer strategy live outside
// this package and drive it through its public API.
package game

import (
	"errors"

	"github.com/avast/retry-go/v4"
	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"github.com/aureliano/dominoes/move"
	"github.com/aureliano/dominoes/snake"
	"github.com/aureliano/dominoes/tiles"
)

const (
	// HandSize is the number of tiles dealt to each side.
	HandSize = 7

	// BlockedPipOccurrences is how many times a pip value must occur in
	// the snake for the board to be blocked when both ends show it: one
	// end of each of the seven tiles carrying the pip, plus the second
	// pip of the double. Derived from the set size, not a free constant.
	BlockedPipOccurrences = int(tiles.MaxPip) + 2

	// DefaultMaxRedeals bounds the automatic reshuffles when neither
	// hand receives a double. The probability of even a handful of
	// consecutive failures is tiny; the bound only guards against a
	// broken shuffler.
	DefaultMaxRedeals = 100
)

var (
	// ErrIllegalMove means the chosen tile matches neither end it was
	// aimed at. State is unchanged; callers may re-prompt.
	ErrIllegalMove = errors.New("tile does not match that end of the snake")
	// ErrOutOfBounds means the move's index exceeds the acting hand.
	ErrOutOfBounds = errors.New("move index exceeds hand size")
	// ErrGameOver means a move was submitted after a terminal status.
	ErrGameOver = errors.New("cannot play a move on a game that is over")
	// ErrNoOpener means no double was found in either hand after the
	// configured number of redeals.
	ErrNoOpener = errors.New("neither hand holds a double tile")
)

// Status drives whose turn it is and whether the game has ended.
type Status uint8

const (
	StatusAwaitingHuman Status = iota
	StatusAwaitingComputer
	StatusHumanWon
	StatusComputerWon
	StatusDrawn
)

func (s Status) Terminal() bool {
	return s != StatusAwaitingHuman && s != StatusAwaitingComputer
}

func (s Status) String() string {
	switch s {
	case StatusAwaitingHuman:
		return "awaiting-human"
	case StatusAwaitingComputer:
		return "awaiting-computer"
	case StatusHumanWon:
		return "human-wins"
	case StatusComputerWon:
		return "computer-wins"
	case StatusDrawn:
		return "draw"
	}
	return "unknown"
}

// A Seat identifies one of the two sides.
type Seat uint8

const (
	SeatHuman Seat = iota
	SeatComputer
)

func (s Seat) Other() Seat {
	return 1 - s
}

func (s Seat) String() string {
	if s == SeatHuman {
		return "human"
	}
	return "computer"
}

// Game is the owned game state: both hands, the stock, the snake, and the
// status. There is no global state; every game is an explicit value.
type Game struct {
	hands  [2]*tiles.Hand
	stock  *tiles.Stock
	snake  *snake.Snake
	status Status

	shuffler   tiles.Shuffler
	maxRedeals uint
}

// NewGame creates a game that will shuffle with r. A nil r uses a
// cryptographically seeded source; tests pass a fixed-seed *rand.Rand.
func NewGame(r tiles.Shuffler) *Game {
	if r == nil {
		r = frand.New()
	}
	return &Game{shuffler: r, maxRedeals: DefaultMaxRedeals}
}

// SetMaxRedeals overrides the bound on automatic reshuffles.
func (g *Game) SetMaxRedeals(n uint) {
	g.maxRedeals = n
}

// StartGame deals fresh hands and places the opening double. If neither
// hand holds a double the deal is retried, since the game cannot open
// otherwise; ErrNoOpener is returned only if every attempt fails.
func (g *Game) StartGame() error {
	return retry.Do(
		func() error {
			g.deal()
			opener, owner, ok := g.chooseOpener()
			if !ok {
				log.Debug().Msg("no double in either hand, redealing")
				return ErrNoOpener
			}
			g.snake = snake.New()
			g.snake.Append(opener)
			// The opener's owner has moved; the other side is on turn.
			if owner == SeatComputer {
				g.status = StatusAwaitingHuman
			} else {
				g.status = StatusAwaitingComputer
			}
			log.Debug().Stringer("opener", opener).Stringer("owner", owner).
				Msg("game started")
			return nil
		},
		retry.Attempts(g.maxRedeals),
		retry.Delay(0),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
	)
}

// deal shuffles a fresh stock and draws seven tiles for each side,
// leaving fourteen in stock. Draws are without replacement, so the hands
// are disjoint by construction.
func (g *Game) deal() {
	g.stock = tiles.NewStock(g.shuffler)
	for seat := range g.hands {
		drawn, err := g.stock.Draw(HandSize)
		if err != nil {
			// A full stock always covers two opening hands.
			panic(err)
		}
		g.hands[seat] = tiles.NewHand(drawn...)
	}
}

// chooseOpener scans doubles from (6,6) down to (0,0) and removes the
// first one found from its owner's hand, checking the computer's hand
// first at each value. It reports false when neither hand has a double.
func (g *Game) chooseOpener() (tiles.Tile, Seat, bool) {
	for p := tiles.MaxPip; ; p-- {
		double := tiles.New(p, p)
		if g.hands[SeatComputer].Remove(double) {
			return double, SeatComputer, true
		}
		if g.hands[SeatHuman].Remove(double) {
			return double, SeatHuman, true
		}
		if p == 0 {
			return tiles.Tile{}, 0, false
		}
	}
}

// Legal reports whether tile t can be played with move m against the
// given snake. A draw is always legal; a placement is legal iff the tile
// carries the pip at the targeted end. Bounds checking the move against
// the hand is the caller's responsibility.
func Legal(t tiles.Tile, m move.Move, s *snake.Snake) bool {
	switch {
	case m.IsLeft():
		return t.Contains(s.LeftEnd())
	case m.IsRight():
		return t.Contains(s.RightEnd())
	default:
		return true
	}
}

// ValidateMove checks m for the side on turn without mutating anything.
// It returns ErrOutOfBounds, ErrIllegalMove, ErrGameOver, or nil.
func (g *Game) ValidateMove(m move.Move) error {
	if g.status.Terminal() {
		return ErrGameOver
	}
	hand := g.handOnTurn()
	if !m.InBounds(hand.Len()) {
		return ErrOutOfBounds
	}
	if m.IsDraw() {
		return nil
	}
	if !Legal(hand.TileAt(m.HandIndex()), m, g.snake) {
		return ErrIllegalMove
	}
	return nil
}

// PlayMove validates and applies m for the side on turn, then evaluates
// the end-of-game conditions. An invalid move leaves the state untouched.
// Drawing from an empty stock is a no-op that still consumes the turn.
func (g *Game) PlayMove(m move.Move) error {
	if err := g.ValidateMove(m); err != nil {
		return err
	}
	hand := g.handOnTurn()
	switch {
	case m.IsLeft():
		g.snake.Prepend(hand.TakeAt(m.HandIndex()))
	case m.IsRight():
		g.snake.Append(hand.TakeAt(m.HandIndex()))
	default:
		if t, ok := g.stock.DrawOne(); ok {
			hand.Add(t)
		}
	}
	log.Debug().Stringer("move", m).Stringer("seat", g.PlayerOnTurn()).
		Int("snake", g.snake.Len()).Msg("applied move")
	g.detectEndgame()
	return nil
}

// detectEndgame runs the terminal checks in their fixed order:
// hand exhaustion first (human before computer), then the blocked board,
// otherwise the turn passes to the other side.
func (g *Game) detectEndgame() {
	switch {
	case g.hands[SeatHuman].Empty():
		g.status = StatusHumanWon
	case g.hands[SeatComputer].Empty():
		g.status = StatusComputerWon
	case g.blocked():
		g.status = StatusDrawn
	case g.status == StatusAwaitingHuman:
		g.status = StatusAwaitingComputer
	default:
		g.status = StatusAwaitingHuman
	}
	if g.status.Terminal() {
		log.Info().Stringer("status", g.status).Msg("game is over")
	}
}

// blocked reports whether both ends show the same pip and every
// occurrence of that pip is already committed to the snake, so neither
// side can ever extend either end.
func (g *Game) blocked() bool {
	end := g.snake.LeftEnd()
	if end != g.snake.RightEnd() {
		return false
	}
	return g.snake.PipOccurrences(end) >= BlockedPipOccurrences
}

func (g *Game) handOnTurn() *tiles.Hand {
	if g.status == StatusAwaitingComputer {
		return g.hands[SeatComputer]
	}
	return g.hands[SeatHuman]
}

// PlayerOnTurn returns the seat that moves next. Meaningless once the
// game is over.
func (g *Game) PlayerOnTurn() Seat {
	if g.status == StatusAwaitingComputer {
		return SeatComputer
	}
	return SeatHuman
}

func (g *Game) Status() Status {
	return g.status
}

func (g *Game) Over() bool {
	return g.status.Terminal()
}

// HandFor returns the hand for the given seat.
func (g *Game) HandFor(seat Seat) *tiles.Hand {
	return g.hands[seat]
}

// Stock returns the current stock.
func (g *Game) Stock() *tiles.Stock {
	return g.stock
}

// Snake returns the current board state.
func (g *Game) Snake() *snake.Snake {
	return g.snake
}
