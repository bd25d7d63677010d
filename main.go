package main

import (
	"flag"
	"fulltree/config"
	"fulltree/experiments"
	"fulltree/searcher/agent"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "Path to a config file (yaml, json or toml)")
	mode := flag.String("mode", "play", "play: run games against the configured opponent; serve: start the agent server")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(level)

	switch *mode {
	case "play":
		if _, err := experiments.Run(*cfg, os.Stdin, os.Stdout); err != nil {
			log.Fatal().Err(err).Msg("failed to play")
		}
	case "serve":
		server := agent.NewServer(agent.NewFullTreeAgent(), agent.WithHumanAgent(agent.NewRandomAgent(cfg.Seed)))
		if err := server.ListenAndServe(cfg.Port); err != nil {
			log.Fatal().Err(err).Msg("agent server stopped")
		}
	default:
		log.Fatal().Msgf("unknown mode %q", *mode)
	}
}
