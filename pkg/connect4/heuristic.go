package connect4

import "github.com/IlikeChooros/go-minimax/pkg/minimax"

// Number of lines each cell can take part in, roughly
var weights = [Size]minimax.Score{
	3, 4, 6, 7, 6, 4, 3,
	2, 4, 6, 7, 6, 4, 2,
	2, 4, 6, 7, 6, 4, 2,
	3, 4, 6, 7, 6, 4, 3,
}

// Weight of own stones minus weight of the opponent's stones.
// A board with four in a row is rated exactly.
func (b *Board) Rate(p minimax.Player) minimax.Score {
	if winner, ok := b.Result().Winner(); ok {
		if winner == p {
			return minimax.WON
		}
		return minimax.LOST
	}

	own := stoneOf(p)
	var score minimax.Score
	for i, s := range b.cells {
		switch s {
		case none:
		case own:
			score += weights[i]
		default:
			score -= weights[i]
		}
	}
	return score
}
