package main

import (
	"bufio"
	"context"
	"flag"
	"os"
	"os/signal"
	"othello/conf"
	"othello/engine"
	"othello/experiments"
	"othello/game"

	"github.com/pkg/profile"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	var (
		configFile = flag.String("config", "", "TOML configuration file")
		size       = flag.Int("size", game.DefaultSize, "board size (even, 4 to 26)")
		depth      = flag.Int("depth", 0, "search depth in plies")
		level      = flag.String("log", "", "log level (debug, info, warn, error)")
		prof       = flag.String("profile", "", "write a cpu or mem profile to the working directory")
		selfPlay   = flag.Bool("selfplay", false, "play the engine against itself and the baselines, then exit")
	)
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := conf.Default()
	if *configFile != "" {
		var err error
		if cfg, err = conf.Open(*configFile); err != nil {
			log.Fatal().Err(err).Msg("cannot load configuration")
		}
	}

	// flags given on the command line win over the file
	var err error
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "size":
			cfg.Size = *size
		case "depth":
			cfg.Depth = *depth
		case "log":
			if cfg.LogLevel, err = zerolog.ParseLevel(*level); err != nil {
				log.Fatal().Err(err).Msg("bad log level")
			}
		}
	})
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("bad configuration")
	}
	zerolog.SetGlobalLevel(cfg.LogLevel)

	switch *prof {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	default:
		log.Fatal().Msgf("unknown profile %q, want cpu or mem", *prof)
	}

	if *selfPlay {
		runSelfPlay(cfg)
		return
	}

	session := engine.NewSession(cfg.SessionOptions()...)
	r := newREPL(session, bufio.NewScanner(os.Stdin), os.Stdout)
	if err := r.run(); err != nil {
		log.Error().Err(err).Msg("reading commands")
	}
}

func runSelfPlay(cfg *conf.Conf) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	settings := cfg.ExperimentSettings()
	suites := []struct {
		name     string
		matchups []experiments.Matchup
	}{
		{"personalities", experiments.PersonalityMatchups(cfg.Depth)},
		{"baselines", experiments.BaselineMatchups(cfg.Depth, game.First, 1)},
	}
	for _, suite := range suites {
		dir, err := experiments.RunExperiment(ctx, suite.name, cfg.Dir, settings, suite.matchups)
		if err != nil {
			log.Error().Err(err).Msgf("%s experiment failed", suite.name)
			return
		}
		log.Info().Msgf("%s records written to %s", suite.name, dir)
	}
}
