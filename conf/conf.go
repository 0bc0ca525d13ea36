package conf

import (
	"othello/engine"
	"othello/experiments"
	"othello/game"
	"othello/searcher"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Internal representation, as written in a TOML file
type conf struct {
	Board struct {
		Size int `toml:"size"`
	} `toml:"board"`
	Search struct {
		Depth   int  `toml:"depth"`
		Prune   bool `toml:"prune"`
		Metrics bool `toml:"metrics"`
	} `toml:"search"`
	Personalities struct {
		First  []int `toml:"first"`
		Second []int `toml:"second"`
	} `toml:"personalities"`
	Log struct {
		Level string `toml:"level"`
	} `toml:"log"`
	SelfPlay struct {
		Games   int    `toml:"games"`
		Workers int    `toml:"workers"`
		Dir     string `toml:"dir"`
	} `toml:"selfplay"`
}

// Public configuration
type Conf struct {
	// Board and search
	Size          int
	Depth         int
	Prune         bool // evict boards off the played line
	Metrics       bool // collect search metrics
	Personalities [2]game.Weights

	LogLevel zerolog.Level

	// Self-play
	Games   int    // per matchup
	Workers int    // games played at once
	Dir     string // where records are written
}

// Configuration object used by default
var defaultConfig = Conf{
	Size:          game.DefaultSize,
	Depth:         searcher.DefaultDepth,
	Personalities: game.DefaultPersonalities,
	LogLevel:      zerolog.InfoLevel,
	Games:         10,
	Workers:       4,
	Dir:           "experiments",
}

// Validate reports the first setting that cannot be used.
func (c *Conf) Validate() error {
	if err := game.ValidateSize(c.Size); err != nil {
		return err
	}
	if c.Depth < 0 {
		return errors.Wrapf(searcher.ErrNegativeDepth, "search.depth = %d", c.Depth)
	}
	if c.Games < 1 {
		return errors.Wrapf(ErrInvalidConfig, "selfplay.games = %d", c.Games)
	}
	if c.Workers < 1 {
		return errors.Wrapf(ErrInvalidConfig, "selfplay.workers = %d", c.Workers)
	}
	return nil
}

func (c *Conf) SearchOptions() []searcher.Option {
	options := []searcher.Option{
		searcher.WithDepth(c.Depth),
		searcher.WithPersonalities(c.Personalities),
	}
	if c.Prune {
		options = append(options, searcher.WithPruning())
	}
	if c.Metrics {
		options = append(options, searcher.WithMetrics())
	}
	return options
}

func (c *Conf) SessionOptions() []engine.Option {
	return []engine.Option{
		engine.WithSize(c.Size),
		engine.WithSearchOptions(c.SearchOptions()...),
	}
}

func (c *Conf) ExperimentSettings() experiments.Settings {
	return experiments.Settings{
		Size:          c.Size,
		Games:         c.Games,
		Workers:       c.Workers,
		Personalities: c.Personalities,
		Prune:         c.Prune,
	}
}
