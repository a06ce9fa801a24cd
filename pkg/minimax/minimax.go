package minimax

// Depth-limited negamax search with alpha-beta pruning, generic over the game.
// One instance searches one board at a time; use separate instances (and boards)
// for concurrent searches.
type Minimax[T MoveLike, G Game[T]] struct {
	SearchStats
	listener *StatsListener[T]
	Limiter  LimiterLike
	pruning  bool
	bestMove T
	hasBest  bool
	score    Score
}

// Create new search engine, with pruning enabled and no depth limit
func NewMinimax[T MoveLike, G Game[T]]() *Minimax[T, G] {
	return &Minimax[T, G]{
		listener: &StatsListener[T]{},
		Limiter:  LimiterLike(NewLimiter()),
		pruning:  true,
	}
}

func (mm *Minimax[T, G]) SetLimits(limits *Limits) {
	mm.Limiter.SetLimits(limits)
}

// Turn alpha-beta pruning on or off. Without pruning every node is searched
// with the full window, the result is the same, only slower.
func (mm *Minimax[T, G]) SetPruning(pruning bool) {
	mm.pruning = pruning
}

func (mm *Minimax[T, G]) Pruning() bool {
	return mm.pruning
}

func (mm *Minimax[T, G]) StatsListener() *StatsListener[T] {
	return mm.listener
}

func (mm *Minimax[T, G]) SetListener(listener StatsListener[T]) {
	*mm.listener = listener
}

// Best move found by the last search
func (mm *Minimax[T, G]) BestMove() T {
	return mm.bestMove
}

// Score of the last searched position, from the perspective of the player to move
func (mm *Minimax[T, G]) Score() Score {
	return mm.score
}

// Nodes per second of the last search
func (mm *Minimax[T, G]) Nps() uint64 {
	return mm.Nodes() * 1000 / uint64(mm.Limiter.Timer.Deltatime())
}

func (mm *Minimax[T, G]) invokeListener(f ListenerFunc[T], score Score) {
	if f != nil {
		f(toListenerStats(mm, score))
	}
}
