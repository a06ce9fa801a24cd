package minimax

import "time"

type ListenerSearchStats[T MoveLike] struct {
	BestMove   T
	Score      Score
	Maxdepth   int
	Nodes      uint64
	Cutoffs    uint64
	Elapsed    time.Duration
	Nps        uint64
	StopReason StopReason
}

// Convert search state to 'ListenerSearchStats' struct
func toListenerStats[T MoveLike, G Game[T]](mm *Minimax[T, G], score Score) ListenerSearchStats[T] {
	return ListenerSearchStats[T]{
		BestMove:   mm.bestMove,
		Score:      score,
		Maxdepth:   mm.MaxDepth(),
		Nodes:      mm.Nodes(),
		Cutoffs:    mm.Cutoffs(),
		Elapsed:    mm.Limiter.Elapsed(),
		Nps:        mm.Nps(),
		StopReason: mm.Limiter.StopReason(),
	}
}

// Listener function callback, will recieve current search statistics
type ListenerFunc[T MoveLike] func(ListenerSearchStats[T])

type StatsListener[T MoveLike] struct {
	// called when a better root move is found, receives the provisional best move and its score
	onBestMove ListenerFunc[T]

	// called once the search returns
	onStop ListenerFunc[T]
}

func NewStatsListener[T MoveLike]() StatsListener[T] {
	return StatsListener[T]{}
}

// Attach new 'root move improved' callback
func (listener *StatsListener[T]) OnBestMove(onBestMove ListenerFunc[T]) *StatsListener[T] {
	listener.onBestMove = onBestMove
	return listener
}

// Attach 'on search end' callback, makes 'StopReason' available in the stats
func (listener *StatsListener[T]) OnStop(onStop ListenerFunc[T]) *StatsListener[T] {
	listener.onStop = onStop
	return listener
}
