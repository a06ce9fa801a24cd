package connect4

// Boards exchanged with host applications store the bottom row first.
// Maps an exchange cell index to the board's cell index, and back.
func ExchangeIndex(i int) int {
	row, col := i/Width, i%Width
	return (Height-1-row)*Width + col
}
