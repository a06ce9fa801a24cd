package bench

import (
	"context"
	"sync"
	"time"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"github.com/IlikeChooros/go-minimax/pkg/minimax"
)

/*
Arena benchmark subpackage, plays a series of games between two players.
Seats alternate by game number, so each player moves first in half of the games.
*/

type VersusArena[T minimax.MoveLike, G minimax.Position[T, G]] struct {
	VersusArenaStats
	Player1  Contender[T, G]
	Player2  Contender[T, G]
	NGames   uint
	NThreads uint
	Position G
	ctx      context.Context

	mu          sync.Mutex
	gameLengths []float64
	moveTimes   [2][]float64
}

func NewVersusArena[T minimax.MoveLike, G minimax.Position[T, G]](
	position G, player1, player2 Contender[T, G],
) *VersusArena[T, G] {
	return &VersusArena[T, G]{
		Player1:  player1,
		Player2:  player2,
		NGames:   100,
		NThreads: 2,
		Position: position,
		ctx:      context.Background(),
	}
}

func (va *VersusArena[T, G]) WithContext(ctx context.Context) *VersusArena[T, G] {
	va.ctx = ctx
	return va
}

func (va *VersusArena[T, G]) Setup(nGames uint, nThreads uint) *VersusArena[T, G] {
	va.NGames = nGames
	va.NThreads = max(nThreads, 1)
	return va
}

// Play all games, blocks until they finish or the context is cancelled.
// A nil listener uses DefaultListener.
func (va *VersusArena[T, G]) Run(listener ListenerLike[G]) (VersusSummaryInfo, error) {
	if listener == nil {
		listener = DefaultListener[G]{}
	}

	va.reset()
	group, ctx := errgroup.WithContext(va.ctx)
	workers := min(va.NThreads, max(va.NGames, 1))

	for id := range workers {
		group.Go(func() error {
			return va.worker(ctx, int(id), int(workers), listener)
		})
	}

	if err := group.Wait(); err != nil {
		return VersusSummaryInfo{}, err
	}

	summary := va.summary(int(workers))
	listener.Summary(summary)
	return summary, nil
}

func (va *VersusArena[T, G]) reset() {
	va.VersusArenaStats = VersusArenaStats{}
	va.gameLengths = va.gameLengths[:0]
	va.moveTimes = [2][]float64{}
}

// Worker 'id' plays games id, id+workers, id+2*workers...
func (va *VersusArena[T, G]) worker(ctx context.Context, id, workers int, listener ListenerLike[G]) error {
	p1 := va.Player1.New()
	p2 := va.Player2.New()
	local := VersusArenaStats{}
	info := VersusWorkerInfo{WorkerID: id}
	var lengths []float64
	var times [2][]float64

	for game := id; game < int(va.NGames); game += workers {
		info.NGames++
	}

	for game := id; game < int(va.NGames); game += workers {
		if err := ctx.Err(); err != nil {
			return err
		}

		p1First := game%2 == 0
		players := [2]minimax.GamePlayer[T, G]{p1, p2}
		owners := [2]int{0, 1}
		if !p1First {
			players[0], players[1] = p2, p1
			owners[0], owners[1] = 1, 0
		}

		board := va.Position.Clone()
		mover := minimax.First
		moves := 0
		outcome := board.Result()

		for !outcome.IsTerminal() {
			if err := ctx.Err(); err != nil {
				return err
			}

			start := time.Now()
			players[mover].NextMove(board, mover)
			times[owners[mover]] = append(times[owners[mover]], float64(time.Since(start).Microseconds())/1e3)

			moves++
			outcome = board.Result()
			mover = mover.Opponent()

			listener.OnMoveMade(ListenerStats[G]{
				WorkerID:      id,
				NGames:        info.NGames,
				FinishedGames: info.FinishedGames,
				GameMoveNum:   moves,
				Board:         board,
				Outcome:       outcome,
			})
		}

		gameOutcome := computeOutcome(outcome)
		result := toAgentResult(gameOutcome, p1First)
		va.add(result, gameOutcome)
		local.add(result, gameOutcome)
		lengths = append(lengths, float64(moves))
		info.FinishedGames++

		listener.OnFinishedGame(ListenerStats[G]{
			WorkerID:      id,
			NGames:        info.NGames,
			FinishedGames: info.FinishedGames,
			GameMoveNum:   moves,
			Board:         board,
			Outcome:       outcome,
		})
	}

	va.mu.Lock()
	va.gameLengths = append(va.gameLengths, lengths...)
	va.moveTimes[0] = append(va.moveTimes[0], times[0]...)
	va.moveTimes[1] = append(va.moveTimes[1], times[1]...)
	va.mu.Unlock()

	info.P1Wins = local.P1Wins()
	info.P2Wins = local.P2Wins()
	info.Draws = local.Draws()
	listener.OnFinishedWork(info)
	return nil
}

func (va *VersusArena[T, G]) summary(workers int) VersusSummaryInfo {
	va.mu.Lock()
	defer va.mu.Unlock()

	summary := VersusSummaryInfo{
		TotalGames:       va.Total(),
		P1Wins:           va.P1Wins(),
		P2Wins:           va.P2Wins(),
		FirstToMoveWins:  va.FirstToMoveWins(),
		SecondToMoveWins: va.SecondToMoveWins(),
		Draws:            va.Draws(),
		Workers:          workers,
		P1Name:           va.Player1.Name,
		P2Name:           va.Player2.Name,
		TotalMoves:       int(lo.Sum(va.gameLengths)),
	}

	if len(va.gameLengths) > 0 {
		summary.MeanGameLength = stat.Mean(va.gameLengths, nil)
	}
	if len(va.gameLengths) > 1 {
		summary.StdGameLength = stat.StdDev(va.gameLengths, nil)
	}
	if len(va.moveTimes[0]) > 0 {
		summary.P1MeanMoveMs = stat.Mean(va.moveTimes[0], nil)
	}
	if len(va.moveTimes[1]) > 0 {
		summary.P2MeanMoveMs = stat.Mean(va.moveTimes[1], nil)
	}
	return summary
}
