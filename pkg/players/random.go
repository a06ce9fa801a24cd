package players

import (
	"time"

	"golang.org/x/exp/rand"

	"github.com/IlikeChooros/go-minimax/pkg/minimax"
)

type SeedGeneratorFnType func() uint64

var SeedGeneratorFn SeedGeneratorFnType = func() uint64 {
	return uint64(time.Now().UnixNano())
}

// Set custom seed generator function for random players created without a seed,
// by default uses current time in nanoseconds
func SetSeedGeneratorFn(f SeedGeneratorFnType) {
	if f != nil {
		SeedGeneratorFn = f
	}
}

// Plays a uniformly random legal move. Not safe for concurrent use.
type Random[T minimax.MoveLike, G minimax.Game[T]] struct {
	rand  *rand.Rand
	moves []T
}

// Seed 0 uses SeedGeneratorFn
func NewRandom[T minimax.MoveLike, G minimax.Game[T]](seed uint64) *Random[T, G] {
	if seed == 0 {
		seed = SeedGeneratorFn()
	}
	return &Random[T, G]{
		rand: rand.New(rand.NewSource(seed)),
	}
}

func (r *Random[T, G]) NextMove(board G, player minimax.Player) {
	r.moves = r.moves[:0]
	for m := range board.PossibleMoves() {
		r.moves = append(r.moves, m)
	}

	if len(r.moves) == 0 {
		panic("players: random player called on a position without legal moves")
	}
	board.MakeMove(r.moves[r.rand.Intn(len(r.moves))], player)
}
