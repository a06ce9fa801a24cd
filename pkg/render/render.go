// Package render draws boards for terminals, coloring stones and the
// numbers a human types to play a move.
package render

import (
	"strconv"
	"strings"

	"github.com/muesli/termenv"

	"github.com/IlikeChooros/go-minimax/pkg/connect4"
	"github.com/IlikeChooros/go-minimax/pkg/minimax"
	"github.com/IlikeChooros/go-minimax/pkg/tictactoe"
)

type Renderer struct {
	out *termenv.Output
}

// Colors are dropped when the output does not support them
func New(out *termenv.Output) *Renderer {
	return &Renderer{out: out}
}

func (r *Renderer) stone(c minimax.Cell) string {
	switch c {
	case minimax.FirstCell:
		return r.out.String("X").Foreground(termenv.ANSIRed).Bold().String()
	case minimax.SecondCell:
		return r.out.String("O").Foreground(termenv.ANSIBlue).Bold().String()
	}
	return ""
}

func (r *Renderer) index(i int) string {
	return r.out.String(strconv.Itoa(i)).Foreground(termenv.ANSIMagenta).String()
}

// Empty cells show the number to type to play there
func (r *Renderer) TicTacToe(b *tictactoe.Board) string {
	builder := strings.Builder{}
	for i, c := range b.Cells() {
		if c == minimax.Empty {
			builder.WriteString(r.index(i))
		} else {
			builder.WriteString(r.stone(c))
		}

		switch {
		case i%3 != 2:
			builder.WriteString(" | ")
		case i != tictactoe.Size-1:
			builder.WriteString("\n---------\n")
		}
	}
	return builder.String()
}

// Column numbers are printed below the board
func (r *Renderer) Connect4(b *connect4.Board) string {
	builder := strings.Builder{}
	for i, c := range b.Cells() {
		builder.WriteByte('|')
		if c == minimax.Empty {
			builder.WriteByte(' ')
		} else {
			builder.WriteString(r.stone(c))
		}
		if i%connect4.Width == connect4.Width-1 {
			builder.WriteString("|\n")
		}
	}
	for col := range connect4.Width {
		builder.WriteByte(' ')
		builder.WriteString(r.index(col))
	}
	return builder.String()
}
