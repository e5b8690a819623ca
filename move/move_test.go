package move

import (
	"math"
	"testing"

	"github.com/matryer/is"
)

func TestEncoding(t *testing.T) {
	is := is.New(t)

	is.Equal(Left(3), Move(-3))
	is.Equal(Right(3), Move(3))
	is.True(Draw.IsDraw())
	is.True(Left(1).IsLeft())
	is.True(Right(1).IsRight())
	is.True(!Left(1).IsRight())
}

func TestHandIndex(t *testing.T) {
	is := is.New(t)

	is.Equal(Left(1).HandIndex(), 0)
	is.Equal(Right(7).HandIndex(), 6)
	is.Equal(Left(4).HandIndex(), 3)
}

func TestInBounds(t *testing.T) {
	is := is.New(t)

	is.True(Left(7).InBounds(7))
	is.True(!Left(8).InBounds(7))
	is.True(Right(1).InBounds(1))
	is.True(!Right(2).InBounds(1))
	// The draw move fits any hand, even an empty one.
	is.True(Draw.InBounds(0))
}

func TestInBoundsExtremeInputs(t *testing.T) {
	is := is.New(t)

	// Any parseable integer can arrive from the input layer; negating
	// MinInt overflows, so the bounds check must reject it without
	// negating.
	is.True(!Move(math.MinInt).InBounds(7))
	is.True(!Move(math.MaxInt).InBounds(7))
	is.True(!Move(math.MinInt).InBounds(0))
}
