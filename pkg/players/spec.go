package players

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/IlikeChooros/go-minimax/pkg/minimax"
)

var (
	ErrUnknownPlayer = errors.New("players: unknown player")
	ErrNoInput       = errors.New("players: human player needs an input")
)

type Options[G any] struct {
	// Suppress search timing logs of perfect players
	Quiet bool
	// Seed of random players, 0 picks one
	Seed uint64
	// Input of human players
	Input Input
	// Board rendering for human players, optional
	Render func(G) string
}

type factory[T minimax.MoveLike, G minimax.Position[T, G]] func(arg string, opts Options[G]) (minimax.GamePlayer[T, G], error)

func factories[T minimax.MoveLike, G minimax.Position[T, G]]() map[string]factory[T, G] {
	return map[string]factory[T, G]{
		"perfect": func(arg string, opts Options[G]) (minimax.GamePlayer[T, G], error) {
			p := minimax.NewPerfect[T, G](opts.Quiet)
			if arg == "" {
				return p, nil
			}
			depth, err := strconv.Atoi(arg)
			if err != nil || depth < 1 {
				return nil, fmt.Errorf("perfect: invalid depth %q", arg)
			}
			return p.WithMaxDepth(depth), nil
		},
		"greedy": func(string, Options[G]) (minimax.GamePlayer[T, G], error) {
			return NewGreedy[T, G](), nil
		},
		"random": func(_ string, opts Options[G]) (minimax.GamePlayer[T, G], error) {
			return NewRandom[T, G](opts.Seed), nil
		},
		"human": func(_ string, opts Options[G]) (minimax.GamePlayer[T, G], error) {
			if opts.Input == nil {
				return nil, ErrNoInput
			}
			return NewHuman[T, G](opts.Input, opts.Render), nil
		},
	}
}

// Known player kinds, sorted
func Kinds[T minimax.MoveLike, G minimax.Position[T, G]]() []string {
	kinds := lo.Keys(factories[T, G]())
	slices.Sort(kinds)
	return kinds
}

// Player kind named by a description, 'Perfect:7' is 'perfect'
func Kind(spec string) string {
	name, _ := splitSpec(spec)
	return name
}

func splitSpec(spec string) (name, arg string) {
	name, arg, _ = strings.Cut(strings.ToLower(strings.TrimSpace(spec)), ":")
	return name, arg
}

// Create a player from its description: 'human', 'greedy', 'random',
// 'perfect' or 'perfect:<depth>'
func FromSpec[T minimax.MoveLike, G minimax.Position[T, G]](spec string, opts Options[G]) (minimax.GamePlayer[T, G], error) {
	name, arg := splitSpec(spec)

	create, ok := factories[T, G]()[name]
	if !ok {
		return nil, fmt.Errorf("%w %q, expected one of %s", ErrUnknownPlayer, spec, strings.Join(Kinds[T, G](), ", "))
	}
	if name != "perfect" && arg != "" {
		return nil, fmt.Errorf("%s: unexpected argument %q", name, arg)
	}
	return create(arg, opts)
}
