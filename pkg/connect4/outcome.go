package connect4

import "github.com/IlikeChooros/go-minimax/pkg/minimax"

// Every run of four cells: columns, rows, then both diagonals
var fours = func() (lines [][4]int) {
	for col := range Width {
		lines = append(lines, [4]int{col, col + Width, col + 2*Width, col + 3*Width})
	}
	for row := range Height {
		for offset := range Width - 3 {
			s := row*Width + offset
			lines = append(lines, [4]int{s, s + 1, s + 2, s + 3})
		}
	}
	// '/' diagonals, going down to the left
	for s := 3; s < Width; s++ {
		lines = append(lines, [4]int{s, s + Width - 1, s + 2*(Width-1), s + 3*(Width-1)})
	}
	// '\' diagonals, going down to the right
	for s := range Width - 3 {
		lines = append(lines, [4]int{s, s + Width + 1, s + 2*(Width+1), s + 3*(Width+1)})
	}
	return lines
}()

func (b *Board) Result() minimax.Outcome {
	for _, line := range fours {
		switch b.cells[line[0]] + b.cells[line[1]] + b.cells[line[2]] + b.cells[line[3]] {
		case xLine:
			return minimax.Winner(minimax.First)
		case oLine:
			return minimax.Winner(minimax.Second)
		}
	}

	if b.Full() {
		return minimax.Draw
	}
	return minimax.InProgress
}
