package agent

import (
	"fulltree/experiments/metrics"
	"fulltree/game"
	"sync"
	"time"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	mu  sync.Mutex // guards rng across concurrent requests
	rng *rand.Rand
}

// NewRandomAgent returns an agent that picks a uniformly random empty cell.
// Agents with the same seed play the same sequence of moves.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(board *game.Board, player game.Symbol) (game.Position, metrics.SearchMetric, error) {
	start := time.Now()
	state := board.StateCopy()
	if board.Classify(state).IsTerminal() {
		return game.Position{}, metrics.SearchMetric{}, game.ErrGameOver
	}
	moves := board.EmptyCells(state)
	if len(moves) == 0 {
		return game.Position{}, metrics.SearchMetric{}, ErrNoMoves
	}

	a.mu.Lock()
	move := moves[a.rng.Intn(len(moves))]
	a.mu.Unlock()
	return move, metrics.SearchMetric{
		Agent:      "random",
		Duration:   time.Since(start),
		Candidates: len(moves),
	}, nil
}
