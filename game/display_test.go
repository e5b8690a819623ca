package game

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aureliano/dominoes/snake"
	"github.com/aureliano/dominoes/tiles"
)

func TestToDisplayText(t *testing.T) {
	g := NewGame(nil)
	g.hands[SeatHuman] = tiles.NewHand(tiles.New(0, 1), tiles.New(2, 6))
	g.hands[SeatComputer] = tiles.NewHand(tiles.New(5, 5))
	g.snake = snake.New()
	g.snake.Append(tiles.New(3, 3))
	g.stock = tiles.NewStock(rand.New(rand.NewSource(9)))
	g.status = StatusAwaitingHuman

	out := g.ToDisplayText()
	assert.True(t, strings.HasPrefix(out, strings.Repeat("=", 70)))
	assert.Contains(t, out, "Stock size: 28")
	assert.Contains(t, out, "Computer pieces: 1")
	assert.Contains(t, out, "[3, 3]")
	assert.Contains(t, out, "1:[0, 1]")
	assert.Contains(t, out, "2:[2, 6]")
	assert.Contains(t, out, "Status: It's your turn to make a move. Enter your command.")
}

func TestStatusLines(t *testing.T) {
	lines := map[Status]string{
		StatusAwaitingComputer: "Computer is about to make a move. Press Enter to continue...",
		StatusHumanWon:         "The game is over. You won!",
		StatusComputerWon:      "The game is over. The computer won!",
		StatusDrawn:            "The game is over. It's a draw!",
	}
	g := NewGame(nil)
	for st, want := range lines {
		g.status = st
		assert.Equal(t, want, g.statusLine())
	}
}
