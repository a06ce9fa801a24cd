package tictactoe

import (
	"sync"

	"github.com/IlikeChooros/go-minimax/pkg/minimax"
)

const tableSize = 1 << encodingBits

// Table entry of encodings using the unused 2-bit code
const invalidEntry minimax.Outcome = 0xFF

var lines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

// Outcome of every possible encoding, built on first use
var winTable = sync.OnceValue(func() *[tableSize]minimax.Outcome {
	table := new([tableSize]minimax.Outcome)
	for bits := range uint32(tableSize) {
		b := Board{bits: bits}
		if !b.valid() {
			table[bits] = invalidEntry
			continue
		}
		table[bits] = b.scan()
	}
	return table
})

func (b *Board) valid() bool {
	for i := range Size {
		if b.cell(i) > minimax.SecondCell {
			return false
		}
	}
	return true
}

// Outcome computed by checking every row, column and diagonal
func (b *Board) scan() minimax.Outcome {
	for _, line := range lines {
		c := b.cell(line[0])
		if c != minimax.Empty && c == b.cell(line[1]) && c == b.cell(line[2]) {
			p, _ := c.Player()
			return minimax.Winner(p)
		}
	}

	if b.Full() {
		return minimax.Draw
	}
	return minimax.InProgress
}
