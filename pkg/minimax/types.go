package minimax

import (
	"fmt"
	"math"
)

// Other types, shared by the search core and the games

type MoveLike comparable

// Side to move, the first player is always X
type Player uint8

const (
	First Player = iota
	Second
)

func (p Player) Opponent() Player {
	return p ^ 1
}

func (p Player) String() string {
	if p == First {
		return "X"
	}
	return "O"
}

// Content of a single board square, the zero value is an empty square
type Cell uint8

const (
	Empty Cell = iota
	FirstCell
	SecondCell
)

// Cell occupied by the given player
func Occupied(p Player) Cell {
	return Cell(p) + 1
}

// Returns the owner of the cell, ok is false for an empty cell
func (c Cell) Player() (p Player, ok bool) {
	switch c {
	case FirstCell:
		return First, true
	case SecondCell:
		return Second, true
	case Empty:
		return 0, false
	}
	panic(fmt.Sprintf("minimax: invalid cell value %d", uint8(c)))
}

func (c Cell) String() string {
	if p, ok := c.Player(); ok {
		return p.String()
	}
	return "."
}

// Classification of a position: a winner, a draw or a game still in progress.
// The zero value is InProgress.
type Outcome uint8

const (
	InProgress Outcome = iota
	Draw
	FirstWon
	SecondWon
)

// Outcome in which the given player has won
func Winner(p Player) Outcome {
	return FirstWon + Outcome(p)
}

// Returns the winning player, ok is false for a draw or an unfinished game
func (o Outcome) Winner() (p Player, ok bool) {
	switch o {
	case FirstWon:
		return First, true
	case SecondWon:
		return Second, true
	}
	return 0, false
}

func (o Outcome) IsTerminal() bool {
	return o != InProgress
}

func (o Outcome) String() string {
	switch o {
	case InProgress:
		return "in progress"
	case Draw:
		return "draw"
	case FirstWon:
		return "X won"
	case SecondWon:
		return "O won"
	}
	return fmt.Sprintf("Outcome(%d)", uint8(o))
}

// Evaluation of a position from the perspective of one player.
// WON and LOST are symmetric, so negating any score never overflows.
type Score int32

const (
	WON  Score = math.MaxInt32
	LOST Score = -WON
	TIE  Score = 0
)

func (s Score) String() string {
	switch s {
	case WON:
		return "WON"
	case LOST:
		return "LOST"
	}
	return fmt.Sprintf("%d", int32(s))
}
