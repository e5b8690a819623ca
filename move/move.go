// Package move defines the signed-integer move encoding shared by the
// human input layer and the computer strategy: a negative move plays the
// hand tile at 1-based index |m| on the left end of the snake, a positive
// move plays index m on the right end, and zero draws from the stock.
package move

import "fmt"

// A Move is a single encoded action for the side on turn.
type Move int

// Draw is the draw-from-stock move.
const Draw Move = 0

// Left encodes playing the hand tile at 1-based index i on the left end.
func Left(i int) Move {
	return Move(-i)
}

// Right encodes playing the hand tile at 1-based index i on the right end.
func Right(i int) Move {
	return Move(i)
}

func (m Move) IsDraw() bool  { return m == 0 }
func (m Move) IsLeft() bool  { return m < 0 }
func (m Move) IsRight() bool { return m > 0 }

// HandIndex returns the 0-based hand index the move refers to. It is
// meaningless for the draw move.
func (m Move) HandIndex() int {
	if m < 0 {
		return int(-m) - 1
	}
	return int(m) - 1
}

// InBounds reports whether the move's index fits a hand of the given
// size. The draw move is always in bounds. The comparison avoids
// negating m, which would overflow for the most negative integer.
func (m Move) InBounds(handSize int) bool {
	return m >= Move(-handSize) && m <= Move(handSize)
}

func (m Move) String() string {
	switch {
	case m.IsDraw():
		return "(draw)"
	case m.IsLeft():
		return fmt.Sprintf("(left #%d)", -int(m))
	default:
		return fmt.Sprintf("(right #%d)", int(m))
	}
}
