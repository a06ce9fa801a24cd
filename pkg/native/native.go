// Package native converts boards exchanged with host applications and runs
// the engine on them. Every exported call is guarded: a panic never crosses
// the boundary, the process aborts instead.
package native

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/IlikeChooros/go-minimax/pkg/connect4"
	"github.com/IlikeChooros/go-minimax/pkg/minimax"
)

// Cell values of the exchange format
const (
	CellFirst  int8 = 0
	CellSecond int8 = 1
	CellEmpty  int8 = 2
)

// Result code of Connect4Winner when nobody has won (yet)
const NoWinner = 2

var (
	ErrBoardLength = errors.New("native: board must have 28 cells")
	ErrCellValue   = errors.New("native: cell value out of range")
	ErrPlayer      = errors.New("native: player must be 0 or 1")
)

// Called when a guarded call fails, replaced by the cgo library with C.abort
var Abort = func() {
	os.Exit(134)
}

// Run f, turning any panic into a logged Abort
func Guard[R any](name string, f func() R) (result R) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Str("call", name).Interface("panic", r).Msg("native-call-failed")
			Abort()
		}
	}()
	return f()
}

func player(code int) (minimax.Player, error) {
	switch code {
	case int(CellFirst):
		return minimax.First, nil
	case int(CellSecond):
		return minimax.Second, nil
	}
	return 0, fmt.Errorf("%w: %d", ErrPlayer, code)
}

// Decode an exchange board, its rows are stored bottom first
func FromExchange(cells []int8) (*connect4.Board, error) {
	if len(cells) != connect4.Size {
		return nil, fmt.Errorf("%w, got %d", ErrBoardLength, len(cells))
	}

	b := connect4.New()
	for i, v := range cells {
		var c minimax.Cell
		switch v {
		case CellFirst:
			c = minimax.FirstCell
		case CellSecond:
			c = minimax.SecondCell
		case CellEmpty:
			c = minimax.Empty
		default:
			return nil, fmt.Errorf("%w: %d at %d", ErrCellValue, v, i)
		}
		b.Set(connect4.ExchangeIndex(i), c)
	}
	return b, nil
}

// Encode a board in the exchange format
func ToExchange(b *connect4.Board) []int8 {
	cells := make([]int8, connect4.Size)
	for i := range cells {
		switch b.Get(connect4.ExchangeIndex(i)) {
		case minimax.FirstCell:
			cells[i] = CellFirst
		case minimax.SecondCell:
			cells[i] = CellSecond
		default:
			cells[i] = CellEmpty
		}
	}
	return cells
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Search the board for the given player (0 or 1) at the default depth and
// return the exchange index of the cell the engine's stone lands on
func Connect4Play(playerCode int, cells []int8) int {
	return Guard("connect4-play", func() int {
		p := must(player(playerCode))
		b := must(FromExchange(cells))

		move, _ := minimax.NewPerfect[connect4.Move, *connect4.Board](true).BestMove(b, p)
		return connect4.ExchangeIndex(b.Drop(move))
	})
}

// 0 or 1 for the winning player, NoWinner for a draw or an unfinished game
func Connect4Winner(cells []int8) int {
	return Guard("connect4-winner", func() int {
		b := must(FromExchange(cells))
		if winner, ok := b.Result().Winner(); ok {
			return int(winner)
		}
		return NoWinner
	})
}
