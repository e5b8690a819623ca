package game

import (
	"fmt"
	"strings"
)

const headerWidth = 70

func (g *Game) statusLine() string {
	switch g.status {
	case StatusAwaitingHuman:
		return "It's your turn to make a move. Enter your command."
	case StatusAwaitingComputer:
		return "Computer is about to make a move. Press Enter to continue..."
	case StatusHumanWon:
		return "The game is over. You won!"
	case StatusComputerWon:
		return "The game is over. The computer won!"
	case StatusDrawn:
		return "The game is over. It's a draw!"
	}
	return ""
}

// ToDisplayText turns the current state of the game into a displayable
// string: stock and computer hand sizes, the snake (abbreviated when
// long), the human's hand enumerated from 1, and a status line. Anything
// a renderer needs beyond this is available from the public accessors.
func (g *Game) ToDisplayText() string {
	var sb strings.Builder
	sb.WriteString(strings.Repeat("=", headerWidth))
	sb.WriteByte('\n')
	fmt.Fprintf(&sb, "Stock size: %d\n", g.stock.Len())
	fmt.Fprintf(&sb, "Computer pieces: %d\n\n", g.hands[SeatComputer].Len())
	sb.WriteString(g.snake.String())
	sb.WriteString("\n\n")
	sb.WriteString("Your pieces:\n")
	for i, t := range g.hands[SeatHuman].Tiles() {
		fmt.Fprintf(&sb, "%d:%s\n", i+1, t)
	}
	sb.WriteByte('\n')
	fmt.Fprintf(&sb, "Status: %s", g.statusLine())
	return sb.String()
}
