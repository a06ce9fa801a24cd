package bench

import (
	"encoding/json"
	"strings"
	"sync/atomic"

	"github.com/IlikeChooros/go-minimax/pkg/minimax"
)

type VersusMatchResult int

const (
	VersusPl1Win VersusMatchResult = 1
	VersusPl2Win VersusMatchResult = -1
	VersusDraw   VersusMatchResult = 0
)

// A player taking part in the arena, 'New' is called once per worker
// so players never share state between goroutines
type Contender[T minimax.MoveLike, G minimax.Game[T]] struct {
	Name string
	New  func() minimax.GamePlayer[T, G]
}

type VersusArenaStats struct {
	p1Wins           uint32
	p2Wins           uint32
	draws            uint32
	firstToMoveWins  uint32
	secondToMoveWins uint32
}

func (vas *VersusArenaStats) Total() int {
	return int(vas.P1Wins() + vas.P2Wins() + vas.Draws())
}

func (vas *VersusArenaStats) P1Wins() int {
	return int(atomic.LoadUint32(&vas.p1Wins))
}

func (vas *VersusArenaStats) P2Wins() int {
	return int(atomic.LoadUint32(&vas.p2Wins))
}

func (vas *VersusArenaStats) Draws() int {
	return int(atomic.LoadUint32(&vas.draws))
}

func (vas *VersusArenaStats) FirstToMoveWins() int {
	return int(atomic.LoadUint32(&vas.firstToMoveWins))
}

func (vas *VersusArenaStats) SecondToMoveWins() int {
	return int(atomic.LoadUint32(&vas.secondToMoveWins))
}

func (vas *VersusArenaStats) add(result VersusMatchResult, outcome GameOutcome) {
	switch result {
	case VersusDraw:
		atomic.AddUint32(&vas.draws, 1)
		return
	case VersusPl1Win:
		atomic.AddUint32(&vas.p1Wins, 1)
	case VersusPl2Win:
		atomic.AddUint32(&vas.p2Wins, 1)
	}

	if outcome.FirstPlayerWon {
		atomic.AddUint32(&vas.firstToMoveWins, 1)
	} else {
		atomic.AddUint32(&vas.secondToMoveWins, 1)
	}
}

type VersusWorkerInfo struct {
	WorkerID      int
	NGames        int
	FinishedGames int
	P1Wins        int
	P2Wins        int
	Draws         int
}

type VersusSummaryInfo struct {
	TotalGames       int     `json:"total_games"`
	P1Wins           int     `json:"player1_wins"`
	P2Wins           int     `json:"player2_wins"`
	FirstToMoveWins  int     `json:"first_to_move_wins"`
	SecondToMoveWins int     `json:"second_to_move_wins"`
	Draws            int     `json:"draws"`
	Workers          int     `json:"workers"`
	P1Name           string  `json:"player1_name"`
	P2Name           string  `json:"player2_name"`
	TotalMoves       int     `json:"total_moves"`
	MeanGameLength   float64 `json:"mean_game_length"`
	StdGameLength    float64 `json:"std_game_length"`
	P1MeanMoveMs     float64 `json:"player1_mean_move_ms"`
	P2MeanMoveMs     float64 `json:"player2_mean_move_ms"`
}

func (s VersusSummaryInfo) String() string {
	builder := strings.Builder{}
	_ = json.NewEncoder(&builder).Encode(s)
	return builder.String()
}

// represents result from the first-player's perspective in a single game
type GameOutcome struct {
	FirstPlayerWon bool
	IsDraw         bool
}

// maps a game outcome to which agent won, given player assignments
func toAgentResult(outcome GameOutcome, p1WentFirst bool) VersusMatchResult {
	if outcome.IsDraw {
		return VersusDraw
	}

	if p1WentFirst == outcome.FirstPlayerWon {
		return VersusPl1Win
	}
	return VersusPl2Win
}

// determines the winner from the final position
func computeOutcome(outcome minimax.Outcome) GameOutcome {
	if !outcome.IsTerminal() {
		panic("computeOutcome: position not terminated")
	}

	winner, ok := outcome.Winner()
	if !ok {
		return GameOutcome{IsDraw: true}
	}
	return GameOutcome{FirstPlayerWon: winner == minimax.First}
}
