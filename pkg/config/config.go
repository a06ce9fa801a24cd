package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	GameTicTacToe = "tictactoe"
	GameConnect4  = "connect4"

	EnvPrefix = "MINIMAX"
)

var ErrUnknownGame = errors.New("config: unknown game")

type Config struct {
	Game     string
	X        string
	O        string
	Quiet    bool
	Games    int
	Workers  int
	Seed     uint64
	LogLevel string
	File     string
}

func DefaultConfig() *Config {
	return &Config{
		Game:     GameTicTacToe,
		X:        "perfect",
		O:        "human",
		Games:    1,
		Workers:  2,
		LogLevel: "info",
	}
}

// Load the configuration from command line arguments, MINIMAX_* environment
// variables and an optional config file, in that order of precedence
func (c *Config) Load(args []string) error {
	def := DefaultConfig()
	fs := pflag.NewFlagSet("minmax", pflag.ContinueOnError)
	fs.StringP("game", "g", def.Game, "game to play: tictactoe or connect4")
	fs.StringP("x", "x", def.X, "first player: human, greedy, random, perfect or perfect:<depth>")
	fs.StringP("o", "o", def.O, "second player, same choices as for x")
	fs.BoolP("quiet", "q", def.Quiet, "do not log search times of perfect players")
	fs.IntP("games", "n", def.Games, "number of games, more than one plays them without a board display")
	fs.Int("workers", def.Workers, "concurrent games when playing more than one")
	fs.Uint64("seed", def.Seed, "seed of random players, 0 picks one")
	fs.String("log-level", def.LogLevel, "log level: debug, info, warn, error or disabled")
	fs.String("config", def.File, "optional config file")

	if err := fs.Parse(args); err != nil {
		return err
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return err
	}

	if file := v.GetString("config"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("config: reading %s: %w", file, err)
		}
	}

	c.Game = strings.ToLower(v.GetString("game"))
	c.X = v.GetString("x")
	c.O = v.GetString("o")
	c.Quiet = v.GetBool("quiet")
	c.Games = v.GetInt("games")
	c.Workers = v.GetInt("workers")
	c.Seed = v.GetUint64("seed")
	c.LogLevel = v.GetString("log-level")
	c.File = v.GetString("config")
	return c.Validate()
}

func (c *Config) Validate() error {
	switch c.Game {
	case GameTicTacToe, GameConnect4:
	default:
		return fmt.Errorf("%w %q", ErrUnknownGame, c.Game)
	}

	if c.Games < 1 {
		return fmt.Errorf("config: games must be positive, got %d", c.Games)
	}
	if c.Workers < 1 {
		return fmt.Errorf("config: workers must be positive, got %d", c.Workers)
	}
	return nil
}
