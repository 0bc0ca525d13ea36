package experiments

import (
	"context"
	"othello/experiments/metrics"
	"othello/game"

	"github.com/rs/zerolog/log"
)

// PersonalityMatchups pits the two personalities against each other at every depth.
func PersonalityMatchups(depths ...int) []Matchup {
	matchups := []Matchup{}
	for i, depth := range depths {
		matchups = append(matchups, Matchup{
			Agent1: metrics.AgentConfig{ID: 2*i + 1, Kind: KindSearch, Depth: depth, Personality: game.First},
			Agent2: metrics.AgentConfig{ID: 2*i + 2, Kind: KindSearch, Depth: depth, Personality: game.Second},
		})
	}
	return matchups
}

// BaselineMatchups pairs a searching agent against the greedy and random baselines.
func BaselineMatchups(depth int, personality game.Personality, seed uint64) []Matchup {
	search := metrics.AgentConfig{ID: 0, Kind: KindSearch, Depth: depth, Personality: personality}
	return []Matchup{
		{Agent1: search, Agent2: metrics.AgentConfig{ID: 1, Kind: KindGreedy}},
		{Agent1: search, Agent2: metrics.AgentConfig{ID: 2, Kind: KindRandom, Seed: seed}},
	}
}

// RunExperiment plays the matchups and stores the records under <root>/<name>. It returns the
// directory the records were written to.
func RunExperiment(ctx context.Context, name, root string, settings Settings, matchups []Matchup) (string, error) {
	log.Info().Msgf("starting %s experiment: %d matchups, %d games each, %d workers", name, len(matchups), settings.Games, settings.Workers)

	records, err := Run(ctx, settings, matchups)
	if err != nil {
		return "", err
	}
	log.Info().Msgf("completed %s experiment", name)

	return Write(records, root, name)
}
