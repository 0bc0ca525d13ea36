package conf

import (
	"io"
	"os"
	"othello/game"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Parse a configuration from r. Keys the file leaves out keep their default.
func Load(r io.Reader) (*Conf, error) {
	data := dump(&defaultConfig)
	md, err := toml.NewDecoder(r).Decode(&data)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidConfig, err.Error())
	}
	for _, key := range md.Undecoded() {
		log.Warn().Msgf("ignoring unknown configuration key %q", key.String())
	}

	c := defaultConfig
	c.Size = data.Board.Size
	c.Depth = data.Search.Depth
	c.Prune = data.Search.Prune
	c.Metrics = data.Search.Metrics
	if c.Personalities[game.First], err = weights("personalities.first", data.Personalities.First); err != nil {
		return nil, err
	}
	if c.Personalities[game.Second], err = weights("personalities.second", data.Personalities.Second); err != nil {
		return nil, err
	}
	if c.LogLevel, err = zerolog.ParseLevel(data.Log.Level); err != nil {
		return nil, errors.Wrapf(ErrInvalidConfig, "log.level: %v", err)
	}
	c.Games = data.SelfPlay.Games
	c.Workers = data.SelfPlay.Workers
	c.Dir = data.SelfPlay.Dir

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Open a configuration file and return it
func Open(name string) (*Conf, error) {
	file, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	c, err := Load(file)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load %s", name)
	}
	return c, nil
}

// Return a copy of the default configuration
func Default() *Conf {
	c := defaultConfig
	return &c
}

// Serialise the configuration into a writer
func (c *Conf) Dump(wr io.Writer) error {
	return toml.NewEncoder(wr).Encode(dump(c))
}

func dump(c *Conf) conf {
	var data conf
	data.Board.Size = c.Size
	data.Search.Depth = c.Depth
	data.Search.Prune = c.Prune
	data.Search.Metrics = c.Metrics
	// fresh slices: the decoder writes into existing backing arrays
	data.Personalities.First = append([]int(nil), c.Personalities[game.First][:]...)
	data.Personalities.Second = append([]int(nil), c.Personalities[game.Second][:]...)
	data.Log.Level = c.LogLevel.String()
	data.SelfPlay.Games = c.Games
	data.SelfPlay.Workers = c.Workers
	data.SelfPlay.Dir = c.Dir
	return data
}

func weights(key string, values []int) (game.Weights, error) {
	var w game.Weights
	if len(values) != len(w) {
		return w, errors.Wrapf(ErrInvalidConfig, "%s needs %d weights, got %d", key, len(w), len(values))
	}
	copy(w[:], values)
	return w, nil
}
