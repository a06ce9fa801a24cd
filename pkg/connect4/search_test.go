package connect4

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IlikeChooros/go-minimax/pkg/minimax"
)

func TestSearchFindsWin(t *testing.T) {
	for _, depth := range []int{1, 2, 3, 4, 5, 6, 7, 8} {
		b := mustParse(t, "_______/_______/___OO__/_XXXO__")
		before := b.Notation()

		move, score := minimax.NewPerfect[Move, *Board](true).
			WithMaxDepth(depth).
			BestMove(b, minimax.First)

		assert.Equal(t, Move(0), move, "depth %d", depth)
		assert.Equal(t, minimax.WON, score, "depth %d", depth)
		assert.Equal(t, before, b.Notation(), "board must be restored")
	}
}

func TestSearchBlocksThree(t *testing.T) {
	for _, depth := range []int{2, 3, 4, 5, 6, 7, 8} {
		b := mustParse(t, "_______/_______/___XX__/_OOOX__")
		move, _ := minimax.NewPerfect[Move, *Board](true).
			WithMaxDepth(depth).
			BestMove(b, minimax.First)
		assert.Equal(t, Move(0), move, "depth %d", depth)
	}

	// One ply only rates the stones, the threat on column 0 is past the horizon
	b := mustParse(t, "_______/_______/___XX__/_OOOX__")
	move, _ := minimax.NewPerfect[Move, *Board](true).WithMaxDepth(1).BestMove(b, minimax.First)
	assert.Equal(t, Move(3), move)
}

func TestDeeperSearchNeverLoses(t *testing.T) {
	if testing.Short() {
		t.Skip("plays two full games at depth 7")
	}

	deep := func() minimax.GamePlayer[Move, *Board] {
		return minimax.NewPerfect[Move, *Board](true).WithMaxDepth(7)
	}
	shallow := func() minimax.GamePlayer[Move, *Board] {
		return minimax.NewPerfect[Move, *Board](true).WithMaxDepth(5)
	}

	outcome := minimax.Play(New(), deep(), shallow(), nil)
	assert.NotEqual(t, minimax.Winner(minimax.Second), outcome, "deep player as X")

	outcome = minimax.Play(New(), shallow(), deep(), nil)
	assert.Equal(t, minimax.Winner(minimax.Second), outcome, "deep player as O")
}

func TestPrunedSearchMatchesFullWindow(t *testing.T) {
	b := mustParse(t, "_______/___O___/__XX___/_OXOX__")

	for depth := 1; depth <= 5; depth++ {
		pruned := minimax.NewPerfect[Move, *Board](true).WithMaxDepth(depth)
		full := minimax.NewPerfect[Move, *Board](true).WithMaxDepth(depth).WithPruning(false)

		m1, s1 := pruned.BestMove(b, minimax.First)
		m2, s2 := full.BestMove(b, minimax.First)
		require.Equal(t, m2, m1, "depth %d", depth)
		require.Equal(t, s2, s1, "depth %d", depth)
		assert.LessOrEqual(t, pruned.Engine().Nodes(), full.Engine().Nodes())
		assert.Equal(t, minimax.StopDepth, pruned.Engine().Limiter.StopReason())
	}
}
