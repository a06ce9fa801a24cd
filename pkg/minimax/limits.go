package minimax

import (
	"encoding/json"
	"math"
	"strings"
)

type Limits struct {
	Depth    int
	Infinite bool
}

func (l Limits) String() string {
	builder := strings.Builder{}
	_ = json.NewEncoder(&builder).Encode(l)
	return builder.String()
}

// Depth limit meaning 'search until the game ends'
const DefaultDepthLimit int = math.MaxInt

func DefaultLimits() *Limits {
	return &Limits{
		Depth:    DefaultDepthLimit,
		Infinite: true,
	}
}

// Set the maximum depth of the search, at that depth positions are rated
// statically instead of being expanded
func (l *Limits) SetDepth(depth int) *Limits {
	l.Depth = max(depth, 0)
	l.Infinite = l.Depth == DefaultDepthLimit
	return l
}
