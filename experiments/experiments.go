package experiments

import (
	"context"
	"othello/engine"
	"othello/experiments/metrics"
	"othello/game"
	"othello/player"
	"othello/searcher"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const (
	KindSearch = "search"
	KindGreedy = "greedy"
	KindRandom = "random"
)

var ErrUnknownKind = errors.New("unknown agent kind")

// Settings apply to every game of an experiment.
type Settings struct {
	Size          int
	Games         int // per matchup
	Workers       int // games played at once
	Personalities [2]game.Weights
	Prune         bool
}

func DefaultSettings() Settings {
	return Settings{
		Size:          game.DefaultSize,
		Games:         10,
		Workers:       4,
		Personalities: game.DefaultPersonalities,
	}
}

// Matchup pairs two agents. Agent1 starts the odd games and Agent2 the even ones.
type Matchup struct {
	Agent1 metrics.AgentConfig
	Agent2 metrics.AgentConfig
}

type Records struct {
	Configs []metrics.AgentConfig
	Games   []metrics.GameRecord
	Moves   []metrics.MoveRecord
}

type job struct {
	matchup int
	game    int
	first   metrics.AgentConfig // plays Player1
	second  metrics.AgentConfig
}

type outcome struct {
	result player.Result
	first  metrics.AgentConfig
	second metrics.AgentConfig
}

// Run plays settings.Games games for every matchup, settings.Workers at a time. Each game builds
// its own pickers, so nothing is shared between goroutines. Records come back in matchup order.
func Run(ctx context.Context, settings Settings, matchups []Matchup) (*Records, error) {
	jobs := []job{}
	for mi, matchup := range matchups {
		for i := 0; i < settings.Games; i++ {
			j := job{matchup: mi, game: i, first: matchup.Agent1, second: matchup.Agent2}
			if i%2 == 1 {
				j.first, j.second = j.second, j.first
			}
			jobs = append(jobs, j)
		}
	}

	outcomes := make([]outcome, len(jobs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(settings.Workers, 1))
	for ji, j := range jobs {
		g.Go(func() error {
			log.Debug().Msgf("starting matchup %d of %d game %d of %d...", j.matchup+1, len(matchups), j.game+1, settings.Games)

			result, err := runGame(ctx, settings, j.first, j.second)
			if err != nil {
				return errors.Wrapf(err, "matchup %d game %d", j.matchup+1, j.game+1)
			}
			outcomes[ji] = outcome{result: result, first: j.first, second: j.second}

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %s", j.matchup+1, len(matchups), j.game+1, result.Winner)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	records := &Records{Configs: configsOf(matchups)}
	for i, o := range outcomes {
		id := i + 1
		records.Games = append(records.Games, metrics.GameRecord{
			ID:         id,
			Agent1:     o.first.ID,
			Agent2:     o.second.ID,
			GameMetric: o.result.GameMetric(),
		})
		for _, mm := range o.result.Moves {
			records.Moves = append(records.Moves, metrics.MoveRecord{
				Game:       id,
				MoveMetric: mm,
			})
		}
	}
	return records, nil
}

// runGame plays a single game and returns its result.
func runGame(ctx context.Context, settings Settings, config1, config2 metrics.AgentConfig) (player.Result, error) {
	p1, err := NewPicker(config1, settings)
	if err != nil {
		return player.Result{}, err
	}
	p2, err := NewPicker(config2, settings)
	if err != nil {
		return player.Result{}, err
	}
	return player.Match(ctx, p1, p2, settings.Size)
}

// NewPicker builds a fresh picker for one game.
func NewPicker(config metrics.AgentConfig, settings Settings) (player.Picker, error) {
	switch config.Kind {
	case KindGreedy:
		return player.NewGreedy(), nil
	case KindRandom:
		return player.NewRandom(config.Seed), nil
	case KindSearch:
		options := []searcher.Option{
			searcher.WithDepth(config.Depth),
			searcher.WithPersonalities(settings.Personalities),
			searcher.WithMetrics(),
		}
		if settings.Prune {
			options = append(options, searcher.WithPruning())
		}
		return player.NewSearching(config.Personality, engine.WithSize(settings.Size), engine.WithSearchOptions(options...))
	}
	return nil, errors.Wrapf(ErrUnknownKind, "%q", config.Kind)
}

func configsOf(matchups []Matchup) []metrics.AgentConfig {
	seen := map[int]bool{}
	configs := []metrics.AgentConfig{}
	for _, matchup := range matchups {
		for _, config := range []metrics.AgentConfig{matchup.Agent1, matchup.Agent2} {
			if !seen[config.ID] {
				seen[config.ID] = true
				configs = append(configs, config)
			}
		}
	}
	return configs
}

// Write stores the records as CSV files under <root>/<name>/<timestamp> and returns that directory.
func Write(records *Records, root, name string) (string, error) {
	writer, err := metrics.NewWriter(root, name)
	if err != nil {
		return "", err
	}

	if err := writer.WriteAgentConfigs(records.Configs); err != nil {
		return "", err
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(records.Games); err != nil {
		return "", err
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(records.Moves); err != nil {
		return "", err
	}
	log.Info().Msg("stored move records")

	return writer.Dir(), nil
}
