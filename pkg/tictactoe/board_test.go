package tictactoe

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IlikeChooros/go-minimax/pkg/minimax"
)

// Independent reference: count stones of each player on every line.
// Reports false for boards where both players own a line, those are unreachable
func referenceOutcome(cells [Size]minimax.Cell) (minimax.Outcome, bool) {
	at := func(row, col int) minimax.Cell { return cells[row*3+col] }
	owns := func(c minimax.Cell, get func(k int) minimax.Cell) bool {
		for k := range 3 {
			if get(k) != c {
				return false
			}
		}
		return true
	}

	winners := 0
	outcome := minimax.InProgress
	for _, c := range []minimax.Cell{minimax.FirstCell, minimax.SecondCell} {
		won := false
		for k := range 3 {
			row, col := k, k
			won = won || owns(c, func(i int) minimax.Cell { return at(row, i) })
			won = won || owns(c, func(i int) minimax.Cell { return at(i, col) })
		}
		won = won || owns(c, func(i int) minimax.Cell { return at(i, i) })
		won = won || owns(c, func(i int) minimax.Cell { return at(i, 2-i) })
		if won {
			p, _ := c.Player()
			outcome = minimax.Winner(p)
			winners++
		}
	}
	if winners > 0 {
		return outcome, winners == 1
	}

	for _, c := range cells {
		if c == minimax.Empty {
			return minimax.InProgress, true
		}
	}
	return minimax.Draw, true
}

func TestEmptyBoard(t *testing.T) {
	b := New()
	assert.Equal(t, uint32(0), b.bits)
	assert.Equal(t, minimax.InProgress, b.Result())

	var moves []Move
	for m := range b.PossibleMoves() {
		moves = append(moves, m)
	}
	assert.Equal(t, []Move{0, 1, 2, 3, 4, 5, 6, 7, 8}, moves)
}

func TestWinTableMatchesScan(t *testing.T) {
	// Every encoding without the unused code, 3^9 boards
	var cells [Size]minimax.Cell
	var walk func(i int)
	checked, doubleWins := 0, 0

	walk = func(i int) {
		if i == Size {
			b := FromCells(cells)
			want, reachable := referenceOutcome(cells)
			if !reachable {
				// Either winner is acceptable, the table only has to report one
				if got := b.Result(); got != minimax.FirstWon && got != minimax.SecondWon {
					t.Fatalf("table outcome of\n%s\n= %v, want a winner", b, got)
				}
				doubleWins++
				return
			}
			if got := b.Result(); got != want {
				t.Fatalf("table outcome of\n%s\n= %v, want %v", b, got, want)
			}
			if got := b.scan(); got != want {
				t.Fatalf("scan outcome of\n%s\n= %v, want %v", b, got, want)
			}
			checked++
			return
		}
		for _, c := range []minimax.Cell{minimax.Empty, minimax.FirstCell, minimax.SecondCell} {
			cells[i] = c
			walk(i + 1)
		}
	}

	walk(0)
	assert.Equal(t, 19683, checked+doubleWins)
	assert.Equal(t, 312, doubleWins)
}

func TestMakeUndoRestoresEncoding(t *testing.T) {
	b := New()
	visited := 0

	var walk func(p minimax.Player)
	walk = func(p minimax.Player) {
		visited++
		if b.Result().IsTerminal() {
			return
		}
		for m := range b.PossibleMoves() {
			before := b.bits
			b.MakeMove(m, p)
			require.Equal(t, minimax.Occupied(p), b.Get(int(m)))
			walk(p.Opponent())
			b.UndoMove(m)
			require.Equal(t, before, b.bits, "undo of move %d", m)
		}
	}

	walk(minimax.First)
	assert.Equal(t, 549946, visited)
	assert.Equal(t, uint32(0), b.bits)
}

func TestSecondPlayerWin(t *testing.T) {
	b := FromCells([Size]minimax.Cell{
		minimax.SecondCell, minimax.SecondCell, minimax.SecondCell,
		minimax.FirstCell, minimax.FirstCell, minimax.Empty,
		minimax.FirstCell, minimax.Empty, minimax.Empty,
	})

	assert.Equal(t, minimax.Winner(minimax.Second), b.Result())
	assert.Equal(t, minimax.WON, b.Rate(minimax.Second))
	assert.Equal(t, minimax.LOST, b.Rate(minimax.First))
}

func TestDraw(t *testing.T) {
	x, o := minimax.FirstCell, minimax.SecondCell
	b := FromCells([Size]minimax.Cell{
		x, o, x,
		x, o, o,
		o, x, x,
	})

	assert.Equal(t, minimax.Draw, b.Result())
	assert.Equal(t, minimax.TIE, b.Rate(minimax.First))
	_, ok := minimax.FirstMove(b.PossibleMoves())
	assert.False(t, ok)
}

func TestInvalidEncoding(t *testing.T) {
	b := &Board{bits: cellMask << 4}
	assert.Panics(t, func() { b.Result() })
	assert.Panics(t, func() { New().Set(0, minimax.Cell(3)) })
	assert.Panics(t, func() {
		b := New()
		b.MakeMove(4, minimax.First)
		b.MakeMove(4, minimax.Second)
	})
}

func TestParseMove(t *testing.T) {
	b := New()
	b.MakeMove(4, minimax.First)

	m, err := b.ParseMove(" 8\n")
	require.NoError(t, err)
	assert.Equal(t, Move(8), m)

	for _, input := range []string{"9", "-1", "a", ""} {
		_, err := b.ParseMove(input)
		assert.True(t, errors.Is(err, ErrInvalidMove), "input %q: %v", input, err)
	}

	_, err = b.ParseMove("4")
	assert.ErrorIs(t, err, ErrOccupied)
}

func TestString(t *testing.T) {
	b := New()
	b.MakeMove(0, minimax.First)
	b.MakeMove(4, minimax.Second)
	assert.Equal(t, "X . .\n. O .\n. . .", b.String())
}

func BenchmarkResult(b *testing.B) {
	board := New()
	board.MakeMove(0, minimax.First)
	board.MakeMove(4, minimax.Second)
	winTable()

	b.ResetTimer()
	for range b.N {
		_ = board.Result()
	}
}
