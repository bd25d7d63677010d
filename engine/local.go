package engine

import (
	"errors"
	"fmt"
	"fulltree/experiments/metrics"
	"fulltree/game"
	"fulltree/searcher/agent"
	"time"

	"github.com/rs/zerolog/log"
)

var ErrNoBoard = errors.New("engine needs a board")

type Engine struct {
	Board   *game.Board
	Agents  map[game.Symbol]agent.Agent
	Starter game.Symbol
}

// LocalEngine plays a game on board between the agents seated at game.AI and
// game.Human, starting with starter.
func LocalEngine(board *game.Board, agents map[game.Symbol]agent.Agent, starter game.Symbol) (*Engine, error) {
	if board == nil {
		return nil, ErrNoBoard
	}
	if starter != game.AI && starter != game.Human {
		return nil, fmt.Errorf("starter %v: %w", starter, game.ErrInvalidSymbol)
	}
	for _, player := range []game.Symbol{game.AI, game.Human} {
		if agents[player] == nil {
			return nil, fmt.Errorf("no agent seated for %v", player)
		}
	}

	return &Engine{
		Board:   board,
		Agents:  agents,
		Starter: starter,
	}, nil
}

// Run alternates turns until the game ends. Each move fills a cell, so the
// loop ends after at most one move per cell.
func (e *Engine) Run() (game.Outcome, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.Starter,
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("%v is starting on a %dx%d board", e.Starter, e.Board.Size(), e.Board.Size())

	player := e.Starter
	for step := 1; !e.Board.Outcome().IsTerminal(); step++ {
		move, searchMetric, err := e.Agents[player].FindMove(e.Board, player)
		if err != nil {
			return game.InProgress, gameMetric, moveMetrics, fmt.Errorf("%v failed to find move %d: %w", player, step, err)
		}
		if err := e.Board.Play(move, player); err != nil {
			return game.InProgress, gameMetric, moveMetrics, fmt.Errorf("%v played an illegal move %d: %w", player, step, err)
		}

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       player,
			Move:         move,
			SearchMetric: searchMetric,
		})
		log.Debug().Msgf("step %d: %v played (%d, %d) in %s", step, player, move.Row, move.Col, searchMetric.Duration)

		player = player.Opponent()
	}

	outcome := e.Board.Outcome()
	gameMetric.Outcome = outcome
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)

	log.Info().Msgf("game over after %d moves: %v", gameMetric.TotalMoves, outcome)
	return outcome, gameMetric, moveMetrics, nil
}
