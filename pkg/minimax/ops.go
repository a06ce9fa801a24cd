package minimax

import (
	"fmt"
	"iter"
)

// Capabilities the search core needs from a game. The board is mutated in place,
// MakeMove and UndoMove must be exact inverses.
type Game[T MoveLike] interface {
	// Legal moves in the game's preferred order, evaluated lazily. The sequence
	// may be consumed while the board is changed, as long as every change is
	// undone before the next move is requested.
	PossibleMoves() iter.Seq[T]
	// Classify the current position
	Result() Outcome
	// Static evaluation from the perspective of the given player,
	// used only when the search hits its depth limit
	Rate(Player) Score
	// Play the move for the given player
	MakeMove(T, Player)
	// Take back the most recent MakeMove with the same move
	UndoMove(T)
	// Default depth limit for perfect players, DefaultDepthLimit searches
	// until the game ends
	ReasonableSearchDepth() int
}

// A game board usable outside of the search: by the arena, human players and the cli
type Position[T MoveLike, G any] interface {
	Game[T]
	fmt.Stringer
	// Starting position of this game
	Empty() G
	// Copy without any shared memory with the original
	Clone() G
	// Parse a move typed by a human, validated against the current position
	ParseMove(string) (T, error)
}

// Returns the first move of the sequence, ok is false if there are none
func FirstMove[T MoveLike](moves iter.Seq[T]) (move T, ok bool) {
	for m := range moves {
		return m, true
	}
	return move, false
}
