package connect4

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/IlikeChooros/go-minimax/pkg/minimax"
)

var (
	ErrInvalidNotation = errors.New("connect4: invalid board notation")
	ErrFloatingStone   = errors.New("connect4: stone without support below it")
)

// Parse a board from its notation: rows from top to bottom separated with '/',
// '_' or '.' for an empty cell, 'X' and 'O' for stones. Whitespace is ignored,
// without separators the notation must hold exactly 28 cells.
//
// Example: "_______/_______/_______/___X___"
func Parse(notation string) (*Board, error) {
	stripped := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, notation)

	var rows []string
	if strings.ContainsRune(stripped, '/') {
		rows = strings.Split(stripped, "/")
	} else {
		for len(stripped) > Width {
			rows = append(rows, stripped[:Width])
			stripped = stripped[Width:]
		}
		rows = append(rows, stripped)
	}

	if len(rows) != Height {
		return nil, fmt.Errorf("%w: expected %d rows, got %d", ErrInvalidNotation, Height, len(rows))
	}

	b := New()
	for row, line := range rows {
		if len(line) != Width {
			return nil, fmt.Errorf("%w: row %d has %d cells", ErrInvalidNotation, row, len(line))
		}

		for col, char := range []byte(line) {
			var c minimax.Cell
			switch char {
			case '_', '.':
				c = minimax.Empty
			case 'X', 'x':
				c = minimax.FirstCell
			case 'O', 'o':
				c = minimax.SecondCell
			default:
				return nil, fmt.Errorf("%w: unexpected character %q", ErrInvalidNotation, char)
			}
			b.Set(row*Width+col, c)
		}
	}

	if err := b.validateGravity(); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Board) validateGravity() error {
	for i := range Size - Width {
		if b.cells[i] != none && b.cells[i+Width] == none {
			return fmt.Errorf("%w: cell %d", ErrFloatingStone, i)
		}
	}
	return nil
}

// Inverse of Parse
func (b *Board) Notation() string {
	builder := strings.Builder{}
	for i, c := range b.Cells() {
		if i > 0 && i%Width == 0 {
			builder.WriteByte('/')
		}
		if c == minimax.Empty {
			builder.WriteByte('_')
		} else {
			builder.WriteString(c.String())
		}
	}
	return builder.String()
}
