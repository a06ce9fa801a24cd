package minimax

// Called after every move of a game, 'moves' counts the moves played so far
type PlayObserver[T MoveLike, G Game[T]] func(board G, mover Player, moves int)

// Play a game to the end, X moves first. Returns the final outcome.
func Play[T MoveLike, G Game[T]](board G, x, o GamePlayer[T, G], observe PlayObserver[T, G]) Outcome {
	players := [2]GamePlayer[T, G]{x, o}
	mover := First

	for moves := 1; ; moves++ {
		if outcome := board.Result(); outcome.IsTerminal() {
			return outcome
		}

		players[mover].NextMove(board, mover)
		if observe != nil {
			observe(board, mover, moves)
		}
		mover = mover.Opponent()
	}
}
