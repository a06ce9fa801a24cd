package minimax

import (
	"github.com/rs/zerolog/log"
)

// Anything able to choose and play a move on the board
type GamePlayer[T MoveLike, G Game[T]] interface {
	// Mutate the board with a move for the given player
	NextMove(board G, player Player)
}

// Plays the best move found by the minimax search
type Perfect[T MoveLike, G Game[T]] struct {
	engine   *Minimax[T, G]
	quiet    bool
	maxDepth int
	hasDepth bool
}

// Create new perfect player, searching to the game's reasonable depth.
// Unless quiet, every move logs the time it took to find it.
func NewPerfect[T MoveLike, G Game[T]](quiet bool) *Perfect[T, G] {
	return &Perfect[T, G]{
		engine: NewMinimax[T, G](),
		quiet:  quiet,
	}
}

// Override the game's reasonable search depth
func (p *Perfect[T, G]) WithMaxDepth(depth int) *Perfect[T, G] {
	p.maxDepth = depth
	p.hasDepth = true
	return p
}

func (p *Perfect[T, G]) WithPruning(pruning bool) *Perfect[T, G] {
	p.engine.SetPruning(pruning)
	return p
}

func (p *Perfect[T, G]) WithListener(listener StatsListener[T]) *Perfect[T, G] {
	p.engine.SetListener(listener)
	return p
}

// Underlying search engine, holds the stats of the last search
func (p *Perfect[T, G]) Engine() *Minimax[T, G] {
	return p.engine
}

// Depth limit used for the given board
func (p *Perfect[T, G]) Depth(board G) int {
	if p.hasDepth {
		return p.maxDepth
	}
	return board.ReasonableSearchDepth()
}

// Search the board without playing, returns the chosen move and its score
func (p *Perfect[T, G]) BestMove(board G, player Player) (T, Score) {
	p.engine.SetLimits(DefaultLimits().SetDepth(p.Depth(board)))
	return p.engine.Search(board, player)
}

func (p *Perfect[T, G]) NextMove(board G, player Player) {
	move, score := p.BestMove(board, player)

	if !p.quiet {
		log.Info().
			Stringer("player", player).
			Any("move", move).
			Stringer("score", score).
			Uint64("nodes", p.engine.Nodes()).
			Dur("took", p.engine.Limiter.Elapsed()).
			Msg("search-done")
	}

	board.MakeMove(move, player)
}
