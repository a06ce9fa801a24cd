package players

import (
	"errors"
	"fmt"
	"io"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog/log"

	"github.com/IlikeChooros/go-minimax/pkg/minimax"
)

// Raised (as a panic value) when the human closes the input
var ErrQuit = errors.New("players: input closed")

// Line input, satisfied by *readline.Instance
type Input interface {
	Readline() (string, error)
	SetPrompt(string)
	Stdout() io.Writer
}

// Reads moves from the terminal, asking again until the move is valid
type Human[T minimax.MoveLike, G minimax.Position[T, G]] struct {
	input  Input
	render func(G) string
}

// Render draws the board before every prompt, nil uses the board's String method
func NewHuman[T minimax.MoveLike, G minimax.Position[T, G]](input Input, render func(G) string) *Human[T, G] {
	if render == nil {
		render = func(board G) string { return board.String() }
	}
	return &Human[T, G]{input: input, render: render}
}

// Open a readline terminal for human players
func NewTerminal() (*readline.Instance, error) {
	return readline.NewEx(&readline.Config{
		Prompt:          "> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
}

// Panics with ErrQuit when the input is closed or interrupted
func (h *Human[T, G]) NextMove(board G, player minimax.Player) {
	fmt.Fprintln(h.input.Stdout(), h.render(board))
	h.input.SetPrompt(fmt.Sprintf("%s to move> ", player))

	for {
		line, err := h.input.Readline()
		if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
			panic(ErrQuit)
		}
		if err != nil {
			log.Error().Err(err).Msg("read-move")
			panic(ErrQuit)
		}

		move, err := board.ParseMove(line)
		if err != nil {
			fmt.Fprintln(h.input.Stdout(), err)
			continue
		}

		board.MakeMove(move, player)
		return
	}
}
