package experiments

import (
	"fmt"
	"fulltree/config"
	"fulltree/engine"
	"fulltree/experiments/metrics"
	"fulltree/game"
	"fulltree/searcher/agent"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

// Run plays cfg.Games games between the full tree agent and the configured
// opponent, and stores the records when cfg.MetricsDir is set.
func Run(cfg config.Config, in io.Reader, out io.Writer) (metrics.Summary, error) {
	var summary metrics.Summary
	if err := cfg.Validate(); err != nil {
		return summary, err
	}

	opponent := newOpponent(cfg, in, out)
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %d games against %s opponent...", cfg.Games, cfg.Opponent)

	for i := 0; i < cfg.Games; i++ {
		outcome, gameMetric, moveMetrics, err := runGame(cfg, i, opponent)
		if err != nil {
			return summary, fmt.Errorf("game %d: %w", i+1, err)
		}
		summary.Add(outcome)

		id := i + 1
		gameRecords = append(gameRecords, metrics.GameRecord{
			ID:         id,
			Opponent:   cfg.Opponent,
			GameMetric: gameMetric,
		})
		for _, mm := range moveMetrics {
			moveRecords = append(moveRecords, metrics.MoveRecord{
				Game:       id,
				MoveMetric: mm,
			})
		}

		log.Info().Msgf("completed game %d of %d with outcome: %v", id, cfg.Games, outcome)
	}

	log.Info().
		Int("games", summary.Games).
		Int("ai_wins", summary.AIWins).
		Int("human_wins", summary.HumanWins).
		Int("draws", summary.Draws).
		Msg("completed games")

	if cfg.MetricsDir == "" {
		return summary, nil
	}
	if err := writeRecords(cfg.MetricsDir, gameRecords, moveRecords); err != nil {
		return summary, err
	}
	return summary, nil
}

func newOpponent(cfg config.Config, in io.Reader, out io.Writer) agent.Agent {
	switch cfg.Opponent {
	case config.OpponentConsole:
		return agent.NewConsoleAgent(in, out)
	case config.OpponentRemote:
		return agent.NewRemoteAgent(cfg.RemoteURL, &http.Client{Timeout: time.Minute})
	default:
		return agent.NewRandomAgent(cfg.Seed)
	}
}

func runGame(cfg config.Config, index int, opponent agent.Agent) (game.Outcome, metrics.GameMetric, []metrics.MoveMetric, error) {
	board, err := game.NewBoard(cfg.Size)
	if err != nil {
		return game.InProgress, metrics.GameMetric{}, nil, err
	}
	e, err := engine.LocalEngine(board, map[game.Symbol]agent.Agent{
		game.AI:    agent.NewFullTreeAgent(),
		game.Human: opponent,
	}, cfg.StarterFor(index))
	if err != nil {
		return game.InProgress, metrics.GameMetric{}, nil, err
	}

	outcome, gameMetric, moveMetrics, err := e.Run()
	if err != nil {
		return game.InProgress, gameMetric, moveMetrics, err
	}
	log.Debug().Msgf("final board:\n%s", board)
	return outcome, gameMetric, moveMetrics, nil
}

func writeRecords(dir string, gameRecords []metrics.GameRecord, moveRecords []metrics.MoveRecord) error {
	writer, err := metrics.NewWriter(dir)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msgf("stored move records in %s", writer.Dir())
	return nil
}
