package players

import "github.com/IlikeChooros/go-minimax/pkg/minimax"

// Always plays the first move in the game's preferred order
type Greedy[T minimax.MoveLike, G minimax.Game[T]] struct{}

func NewGreedy[T minimax.MoveLike, G minimax.Game[T]]() *Greedy[T, G] {
	return &Greedy[T, G]{}
}

func (*Greedy[T, G]) NextMove(board G, player minimax.Player) {
	move, ok := minimax.FirstMove(board.PossibleMoves())
	if !ok {
		panic("players: greedy player called on a position without legal moves")
	}
	board.MakeMove(move, player)
}
