package connect4

import (
	"errors"
	"fmt"
	"iter"
	"strconv"
	"strings"

	"github.com/IlikeChooros/go-minimax/pkg/minimax"
)

const (
	Width  = 7
	Height = 4
	Size   = Width * Height
)

var (
	ErrInvalidColumn = errors.New("connect4: column must be a number from 0 to 6")
	ErrColumnFull    = errors.New("connect4: column is full")
)

// Column to drop the stone in
type Move int

// Stone values are chosen so that the sum of four cells identifies a line
// owned by a single player: 4 for X, 64 for O.
type stone uint8

const (
	none   stone = 0
	xStone stone = 1
	oStone stone = 16

	xLine = 4 * xStone
	oLine = 4 * oStone
)

func stoneOf(p minimax.Player) stone {
	if p == minimax.First {
		return xStone
	}
	return oStone
}

// Center columns first, they take part in the most lines
var moveOrder = [Width]Move{3, 2, 4, 1, 5, 0, 6}

// 7x4 board, cell index is row*Width + column, row 0 is the top.
// The zero value is an empty board.
type Board struct {
	cells [Size]stone
}

func New() *Board {
	return &Board{}
}

func (b *Board) Empty() *Board {
	return New()
}

func (b *Board) Clone() *Board {
	clone := *b
	return &clone
}

func (b *Board) Get(i int) minimax.Cell {
	switch s := b.cells[i]; s {
	case none:
		return minimax.Empty
	case xStone:
		return minimax.FirstCell
	case oStone:
		return minimax.SecondCell
	default:
		panic(fmt.Sprintf("connect4: invalid stone %d in cell %d", s, i))
	}
}

func (b *Board) Set(i int, c minimax.Cell) {
	if p, ok := c.Player(); ok {
		b.cells[i] = stoneOf(p)
	} else {
		b.cells[i] = none
	}
}

// All cells in row-major order, top row first
func (b *Board) Cells() iter.Seq2[int, minimax.Cell] {
	return func(yield func(int, minimax.Cell) bool) {
		for i := range Size {
			if !yield(i, b.Get(i)) {
				return
			}
		}
	}
}

// Index of the cell a stone dropped in the column lands on. The column must not be full.
func (b *Board) Drop(col Move) int {
	c := int(col)
	for row := range Height - 1 {
		if b.cells[c+(row+1)*Width] != none {
			return c + row*Width
		}
	}
	return c + (Height-1)*Width
}

// Columns with a free top cell, center-out
func (b *Board) PossibleMoves() iter.Seq[Move] {
	return func(yield func(Move) bool) {
		for _, col := range moveOrder {
			if b.cells[col] == none && !yield(col) {
				return
			}
		}
	}
}

func (b *Board) MakeMove(col Move, p minimax.Player) {
	if b.cells[col] != none {
		panic(fmt.Sprintf("connect4: move to full column %d", col))
	}
	b.cells[b.Drop(col)] = stoneOf(p)
}

// Remove the topmost stone of the column
func (b *Board) UndoMove(col Move) {
	for row := range Height {
		if i := int(col) + row*Width; b.cells[i] != none {
			b.cells[i] = none
			return
		}
	}
	panic(fmt.Sprintf("connect4: undo on empty column %d", col))
}

func (b *Board) Full() bool {
	for _, s := range b.cells {
		if s == none {
			return false
		}
	}
	return true
}

func (b *Board) ReasonableSearchDepth() int {
	return 11
}

func (b *Board) ParseMove(s string) (Move, error) {
	col, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || col < 0 || col >= Width {
		return 0, fmt.Errorf("%q: %w", s, ErrInvalidColumn)
	}
	if b.cells[col] != none {
		return 0, fmt.Errorf("column %d: %w", col, ErrColumnFull)
	}
	return Move(col), nil
}

func (b *Board) String() string {
	builder := strings.Builder{}
	for i, c := range b.Cells() {
		builder.WriteString(c.String())
		if i%Width != Width-1 {
			builder.WriteByte(' ')
		} else {
			builder.WriteByte('\n')
		}
	}
	for col := range Width {
		if col > 0 {
			builder.WriteByte(' ')
		}
		builder.WriteString(strconv.Itoa(col))
	}
	return builder.String()
}

var _ minimax.Position[Move, *Board] = (*Board)(nil)
