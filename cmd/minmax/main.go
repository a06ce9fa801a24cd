package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync/atomic"

	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/IlikeChooros/go-minimax/pkg/bench"
	"github.com/IlikeChooros/go-minimax/pkg/config"
	"github.com/IlikeChooros/go-minimax/pkg/connect4"
	"github.com/IlikeChooros/go-minimax/pkg/minimax"
	"github.com/IlikeChooros/go-minimax/pkg/players"
	"github.com/IlikeChooros/go-minimax/pkg/render"
	"github.com/IlikeChooros/go-minimax/pkg/tictactoe"
)

func main() {
	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("log-level")
	}
	zerolog.SetGlobalLevel(level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	out := termenv.NewOutput(os.Stdout)
	r := render.New(out)

	switch cfg.Game {
	case config.GameConnect4:
		err = run[connect4.Move](ctx, cfg, out, connect4.New(), r.Connect4)
	default:
		err = run[tictactoe.Move](ctx, cfg, out, tictactoe.New(), r.TicTacToe)
	}

	if err != nil && !errors.Is(err, players.ErrQuit) {
		log.Error().Err(err).Msg("minmax")
		os.Exit(1)
	}
}

func run[T minimax.MoveLike, G minimax.Position[T, G]](
	ctx context.Context, cfg *config.Config, out *termenv.Output, board G, draw func(G) string,
) (err error) {
	opts := players.Options[G]{Quiet: cfg.Quiet, Seed: cfg.Seed, Render: draw}

	if cfg.Games > 1 {
		return runArena(ctx, cfg, board, opts)
	}

	if players.Kind(cfg.X) == "human" || players.Kind(cfg.O) == "human" {
		terminal, err := players.NewTerminal()
		if err != nil {
			return err
		}
		defer terminal.Close()
		opts.Input = terminal
	}

	x, err := players.FromSpec[T](cfg.X, opts)
	if err != nil {
		return fmt.Errorf("x: %w", err)
	}
	o, err := players.FromSpec[T](cfg.O, opts)
	if err != nil {
		return fmt.Errorf("o: %w", err)
	}

	defer func() {
		if r := recover(); r != nil {
			if r != players.ErrQuit {
				panic(r)
			}
			err = players.ErrQuit
		}
	}()

	outcome := minimax.Play(board, x, o, nil)
	fmt.Fprintln(out, draw(board))
	fmt.Fprintln(out, out.String(outcome.String()).Bold())
	return nil
}

func runArena[T minimax.MoveLike, G minimax.Position[T, G]](
	ctx context.Context, cfg *config.Config, board G, opts players.Options[G],
) error {
	contender := func(spec string, seedOffset uint64) (bench.Contender[T, G], error) {
		if _, err := players.FromSpec[T](spec, opts); err != nil {
			return bench.Contender[T, G]{}, err
		}

		var seed atomic.Uint64
		return bench.Contender[T, G]{
			Name: spec,
			New: func() minimax.GamePlayer[T, G] {
				o := opts
				o.Quiet = true
				// distinct seeds per worker, keeping runs reproducible
				if opts.Seed != 0 {
					o.Seed = opts.Seed + seedOffset + seed.Add(1)*2
				}
				p, _ := players.FromSpec[T](spec, o)
				return p
			},
		}, nil
	}

	x, err := contender(cfg.X, 0)
	if err != nil {
		return fmt.Errorf("x: %w", err)
	}
	o, err := contender(cfg.O, 1)
	if err != nil {
		return fmt.Errorf("o: %w", err)
	}

	_, err = bench.NewVersusArena(board, x, o).
		WithContext(ctx).
		Setup(uint(cfg.Games), uint(cfg.Workers)).
		Run(bench.LogListener[G]{})
	return err
}
