package connect4

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/IlikeChooros/go-minimax/pkg/minimax"
)

func mustParse(t testing.TB, notation string) *Board {
	t.Helper()
	b, err := Parse(notation)
	require.NoError(t, err)
	return b
}

func TestPossibleMovesOrder(t *testing.T) {
	b := mustParse(t, "__X____/__O____/__X____/__O___X")

	var moves []Move
	for m := range b.PossibleMoves() {
		moves = append(moves, m)
	}
	assert.Equal(t, []Move{3, 4, 1, 5, 0, 6}, moves)
}

func TestDropAndUndo(t *testing.T) {
	b := New()
	assert.Equal(t, 24, b.Drop(3))

	b.MakeMove(3, minimax.First)
	b.MakeMove(3, minimax.Second)
	assert.Equal(t, 10, b.Drop(3))
	assert.Equal(t, "_______/_______/___O___/___X___", b.Notation())

	b.UndoMove(3)
	assert.Equal(t, "_______/_______/_______/___X___", b.Notation())
	b.UndoMove(3)
	assert.Equal(t, *New(), *b)

	assert.Panics(t, func() { b.UndoMove(3) })
	full := mustParse(t, "X______/O______/X______/O______")
	assert.Panics(t, func() { full.MakeMove(0, minimax.First) })
}

func TestMakeUndoRandomGames(t *testing.T) {
	r := rand.New(rand.NewSource(7))

	for range 200 {
		b := New()
		p := minimax.First
		for !b.Result().IsTerminal() {
			var moves []Move
			for m := range b.PossibleMoves() {
				moves = append(moves, m)
			}

			before := *b
			for _, m := range moves {
				b.MakeMove(m, p)
				b.UndoMove(m)
				require.Equal(t, before, *b, "make/undo of column %d", m)
			}

			b.MakeMove(moves[r.Intn(len(moves))], p)
			p = p.Opponent()
		}
	}
}

func TestResult(t *testing.T) {
	cases := []struct {
		notation string
		want     minimax.Outcome
	}{
		{"_______/_______/_______/_______", minimax.InProgress},
		{"___X___/___X___/___X___/___X___", minimax.Winner(minimax.First)},
		{"_______/_______/_______/OOOO___", minimax.Winner(minimax.Second)},
		{"_______/_______/_______/___OOOO", minimax.Winner(minimax.Second)},
		{"___X___/__XO___/_XOO___/XOOX___", minimax.Winner(minimax.First)},
		{"X______/OX_____/OOX____/XOOX___", minimax.Winner(minimax.First)},
		{"XXOOXXO/OOXXOOX/XXOOXXO/OOXXOOX", minimax.Draw},
		{"_______/_______/___OO__/_XXXO__", minimax.InProgress},
	}

	for _, tc := range cases {
		b := mustParse(t, tc.notation)
		assert.Equal(t, tc.want, b.Result(), tc.notation)
	}
}

func TestRate(t *testing.T) {
	center := mustParse(t, "_______/_______/_______/___X___")
	left := mustParse(t, "_______/_______/_______/X______")
	right := mustParse(t, "_______/_______/_______/______X")

	assert.Equal(t, minimax.Score(7), center.Rate(minimax.First))
	assert.Equal(t, minimax.Score(-7), center.Rate(minimax.Second))
	assert.Equal(t, minimax.Score(3), left.Rate(minimax.First))
	assert.Equal(t, left.Rate(minimax.First), right.Rate(minimax.First))
	assert.Greater(t, center.Rate(minimax.First), left.Rate(minimax.First))

	assert.Equal(t, minimax.Score(4), mustParse(t, "_______/_______/_______/O__X___").Rate(minimax.First))
	assert.Equal(t, minimax.TIE, mustParse(t, "_______/_______/_______/O_____X").Rate(minimax.First))

	won := mustParse(t, "_______/_______/OOO____/XXXX___")
	assert.Equal(t, minimax.WON, won.Rate(minimax.First))
	assert.Equal(t, minimax.LOST, won.Rate(minimax.Second))
}

func TestRateSwappedStones(t *testing.T) {
	b := mustParse(t, "_______/__O____/__XO___/_XXOO__")
	swapped := mustParse(t, "_______/__X____/__OX___/_OOXX__")

	for _, p := range []minimax.Player{minimax.First, minimax.Second} {
		assert.Equal(t, b.Rate(p), swapped.Rate(p.Opponent()))
	}
}

func TestWeightsSymmetric(t *testing.T) {
	for row := range Height {
		for col := range Width {
			i := row*Width + col
			assert.Equal(t, weights[i], weights[row*Width+Width-1-col], "mirrored column of %d", i)
			assert.Equal(t, weights[i], weights[(Height-1-row)*Width+col], "mirrored row of %d", i)
		}
	}
}

func TestNotation(t *testing.T) {
	for _, notation := range []string{
		"_______/_______/_______/___X___",
		"XXOOXXO/OOXXOOX/XXOOXXO/OOXXOOX",
		"_______/__O____/__XO___/_XXOO__",
	} {
		assert.Equal(t, notation, mustParse(t, notation).Notation())
	}

	grid := `
		. . . . . . .
		. . . . . . .
		. . . . . . .
		. . . x . . .`
	assert.Equal(t, "_______/_______/_______/___X___", mustParse(t, grid).Notation())

	for _, notation := range []string{
		"",
		"_______/_______/_______",
		"_______/_______/_______/______",
		"_______/_______/_______/___Y___",
	} {
		_, err := Parse(notation)
		assert.ErrorIs(t, err, ErrInvalidNotation, notation)
	}

	_, err := Parse("_______/___X___/_______/_______")
	assert.ErrorIs(t, err, ErrFloatingStone)
}

func TestParseMove(t *testing.T) {
	b := mustParse(t, "X______/O______/X______/O______")

	m, err := b.ParseMove("6")
	require.NoError(t, err)
	assert.Equal(t, Move(6), m)

	_, err = b.ParseMove("0")
	assert.ErrorIs(t, err, ErrColumnFull)
	_, err = b.ParseMove("7")
	assert.ErrorIs(t, err, ErrInvalidColumn)
}

func TestExchangeIndex(t *testing.T) {
	assert.Equal(t, 21, ExchangeIndex(0))
	assert.Equal(t, 14, ExchangeIndex(7))
	assert.Equal(t, 7, ExchangeIndex(14))
	assert.Equal(t, 3, ExchangeIndex(24))
	assert.Equal(t, 6, ExchangeIndex(27))

	for i := range Size {
		assert.Equal(t, i, ExchangeIndex(ExchangeIndex(i)))
	}
}

func TestString(t *testing.T) {
	b := mustParse(t, "_______/_______/_______/___X___")
	want := ". . . . . . .\n" +
		". . . . . . .\n" +
		". . . . . . .\n" +
		". . . X . . .\n" +
		"0 1 2 3 4 5 6"
	assert.Equal(t, want, b.String())
}

func BenchmarkResult(b *testing.B) {
	board := mustParse(b, "_______/__O____/__XO___/_XXOO__")
	for range b.N {
		_ = board.Result()
	}
}
