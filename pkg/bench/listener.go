package bench

import (
	"github.com/rs/zerolog/log"

	"github.com/IlikeChooros/go-minimax/pkg/minimax"
)

// Game counts are those of the reporting worker
type ListenerStats[G any] struct {
	WorkerID      int
	NGames        int
	FinishedGames int
	GameMoveNum   int
	Board         G
	Outcome       minimax.Outcome
}

// Arena events, called from every worker goroutine so implementations
// must be safe for concurrent use. The board must not be modified.
type ListenerLike[G any] interface {
	OnMoveMade(stats ListenerStats[G])
	OnFinishedGame(stats ListenerStats[G])
	OnFinishedWork(info VersusWorkerInfo)
	Summary(summary VersusSummaryInfo)
}

type DefaultListener[G any] struct{}

func (DefaultListener[G]) OnMoveMade(ListenerStats[G])     {}
func (DefaultListener[G]) OnFinishedGame(ListenerStats[G]) {}
func (DefaultListener[G]) OnFinishedWork(VersusWorkerInfo) {}
func (DefaultListener[G]) Summary(VersusSummaryInfo)       {}

// Logs finished games at debug level and the summary at info level
type LogListener[G any] struct {
	DefaultListener[G]
}

func (LogListener[G]) OnFinishedGame(stats ListenerStats[G]) {
	log.Debug().
		Int("worker", stats.WorkerID).
		Int("game", stats.FinishedGames).
		Int("moves", stats.GameMoveNum).
		Stringer("outcome", stats.Outcome).
		Msg("arena-game-finished")
}

func (LogListener[G]) OnFinishedWork(info VersusWorkerInfo) {
	log.Debug().
		Int("worker", info.WorkerID).
		Int("games", info.NGames).
		Int("p1-wins", info.P1Wins).
		Int("p2-wins", info.P2Wins).
		Int("draws", info.Draws).
		Msg("arena-worker-done")
}

func (LogListener[G]) Summary(s VersusSummaryInfo) {
	log.Info().
		Str("player1", s.P1Name).
		Str("player2", s.P2Name).
		Int("games", s.TotalGames).
		Int("p1-wins", s.P1Wins).
		Int("p2-wins", s.P2Wins).
		Int("draws", s.Draws).
		Float64("mean-length", s.MeanGameLength).
		Float64("p1-move-ms", s.P1MeanMoveMs).
		Float64("p2-move-ms", s.P2MeanMoveMs).
		Msg("arena-summary")
}
