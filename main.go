package main

import (
	"flag"
	"math/rand"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/aureliano/dominoes/ai"
	"github.com/aureliano/dominoes/config"
	"github.com/aureliano/dominoes/game"
	"github.com/aureliano/dominoes/shell"
	"github.com/aureliano/dominoes/tiles"
)

var configPath = flag.String("config", "", "path to an optional yaml config file")

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("loading config")
	}
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("parsing log level")
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// A nonzero seed replays the same deal, which is handy when
	// reporting engine bugs.
	var shuffler tiles.Shuffler
	if cfg.Seed != 0 {
		log.Info().Int64("seed", cfg.Seed).Msg("using fixed seed")
		shuffler = rand.New(rand.NewSource(cfg.Seed))
	}

	g := game.NewGame(shuffler)
	g.SetMaxRedeals(cfg.MaxRedeals)
	if err := g.StartGame(); err != nil {
		log.Fatal().Err(err).Msg("starting game")
	}

	sh, err := shell.NewShell(cfg, g, ai.Greedy{})
	if err != nil {
		log.Fatal().Err(err).Msg("opening shell")
	}
	defer sh.Close()

	if err := sh.Loop(); err != nil {
		log.Fatal().Err(err).Msg("game loop")
	}
}
