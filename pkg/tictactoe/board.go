package tictactoe

import (
	"errors"
	"fmt"
	"iter"
	"strconv"
	"strings"

	"github.com/IlikeChooros/go-minimax/pkg/minimax"
)

const (
	Size     = 9
	cellBits = 2
	cellMask = 1<<cellBits - 1

	// Number of bits used by the encoding, the rest of the word stays zero
	encodingBits = Size * cellBits
)

var (
	ErrInvalidMove = errors.New("tictactoe: move must be a cell number from 0 to 8")
	ErrOccupied    = errors.New("tictactoe: cell is already occupied")
)

// Cell index, row*3 + column
type Move int

// 3x3 board packed in a single word, 2 bits per cell holding a minimax.Cell value.
// The zero value is an empty board.
type Board struct {
	bits uint32
}

func New() *Board {
	return &Board{}
}

// Board with the given cells, in row-major order
func FromCells(cells [Size]minimax.Cell) *Board {
	b := New()
	for i, c := range cells {
		b.Set(i, c)
	}
	return b
}

func (b *Board) Empty() *Board {
	return New()
}

func (b *Board) Clone() *Board {
	clone := *b
	return &clone
}

func (b *Board) cell(i int) minimax.Cell {
	return minimax.Cell(b.bits >> (i * cellBits) & cellMask)
}

func (b *Board) Get(i int) minimax.Cell {
	c := b.cell(i)
	if validating && c > minimax.SecondCell {
		panic(fmt.Sprintf("tictactoe: invalid code %d in cell %d of %#x", c, i, b.bits))
	}
	return c
}

func (b *Board) Set(i int, c minimax.Cell) {
	if c > minimax.SecondCell {
		panic(fmt.Sprintf("tictactoe: cannot store cell value %d", c))
	}
	shift := i * cellBits
	b.bits = b.bits&^(cellMask<<shift) | uint32(c)<<shift
}

// All cells in row-major order
func (b *Board) Cells() iter.Seq2[int, minimax.Cell] {
	return func(yield func(int, minimax.Cell) bool) {
		for i := range Size {
			if !yield(i, b.Get(i)) {
				return
			}
		}
	}
}

func (b *Board) Full() bool {
	for _, c := range b.Cells() {
		if c == minimax.Empty {
			return false
		}
	}
	return true
}

// Empty cells, left to right and top to bottom
func (b *Board) PossibleMoves() iter.Seq[Move] {
	return func(yield func(Move) bool) {
		for i := range Size {
			if b.Get(i) == minimax.Empty && !yield(Move(i)) {
				return
			}
		}
	}
}

func (b *Board) MakeMove(m Move, p minimax.Player) {
	if b.Get(int(m)) != minimax.Empty {
		panic(fmt.Sprintf("tictactoe: move %d on an occupied cell", m))
	}
	b.Set(int(m), minimax.Occupied(p))
}

func (b *Board) UndoMove(m Move) {
	b.Set(int(m), minimax.Empty)
}

func (b *Board) Result() minimax.Outcome {
	outcome := winTable()[b.bits]
	if outcome == invalidEntry {
		panic(fmt.Sprintf("tictactoe: invalid board encoding %#x", b.bits))
	}
	return outcome
}

// The game is always searched to the end, so the rating is exact
func (b *Board) Rate(p minimax.Player) minimax.Score {
	outcome := b.Result()
	if winner, ok := outcome.Winner(); ok {
		if winner == p {
			return minimax.WON
		}
		return minimax.LOST
	}
	return minimax.TIE
}

func (b *Board) ReasonableSearchDepth() int {
	return minimax.DefaultDepthLimit
}

func (b *Board) ParseMove(s string) (Move, error) {
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || i < 0 || i >= Size {
		return 0, fmt.Errorf("%q: %w", s, ErrInvalidMove)
	}
	if b.Get(i) != minimax.Empty {
		return 0, fmt.Errorf("cell %d: %w", i, ErrOccupied)
	}
	return Move(i), nil
}

func (b *Board) String() string {
	builder := strings.Builder{}
	for i, c := range b.Cells() {
		builder.WriteString(c.String())
		switch {
		case i%3 != 2:
			builder.WriteByte(' ')
		case i != Size-1:
			builder.WriteByte('\n')
		}
	}
	return builder.String()
}

var _ minimax.Position[Move, *Board] = (*Board)(nil)
