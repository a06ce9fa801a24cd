package minimax

// Search the position for the player to move, returns the best move and its score.
// The board is restored to its initial state before returning.
//
// Panics if the position has no legal moves.
func (mm *Minimax[T, G]) Search(board G, player Player) (T, Score) {
	mm.Limiter.Reset()
	mm.SearchStats.reset()
	mm.hasBest = false

	score := mm.negamax(board, player, LOST, WON, 0)

	// Every move loses (or the root was cut off), play the first one
	if !mm.hasBest {
		move, ok := FirstMove(board.PossibleMoves())
		if !ok {
			panic("minimax: search called on a position without legal moves")
		}
		mm.bestMove = move
	}

	mm.score = score
	mm.invokeListener(mm.listener.onStop, score)
	return mm.bestMove, score
}

// Negamax, every layer maximizes for its own player, the child's score is negated.
// Fail-hard: the result is clamped to the (alpha, beta) window.
func (mm *Minimax[T, G]) negamax(board G, player Player, alpha, beta Score, depth int) Score {
	mm.visit(depth)

	if mm.Limiter.Cutoff(depth) {
		mm.leaves++
		return board.Rate(player)
	}

	switch outcome := board.Result(); outcome {
	case InProgress:
	case Draw:
		mm.terminals++
		return TIE
	default:
		mm.terminals++
		if winner, _ := outcome.Winner(); winner == player {
			return WON
		}
		return LOST
	}

	best := alpha
	opponent := player.Opponent()
	for move := range board.PossibleMoves() {
		var value Score

		board.MakeMove(move, player)
		if mm.pruning {
			value = -mm.negamax(board, opponent, -beta, -best, depth+1)
		} else {
			value = -mm.negamax(board, opponent, LOST, WON, depth+1)
		}
		board.UndoMove(move)

		if value > best {
			best = value
			if depth == 0 {
				mm.bestMove = move
				mm.hasBest = true
				mm.invokeListener(mm.listener.onBestMove, best)
			}
		}

		if mm.pruning && best >= beta {
			mm.cutoffs++
			break
		}
	}

	return best
}
