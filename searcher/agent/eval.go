package agent

import (
	"fmt"
	"fulltree/experiments/metrics"
	"fulltree/game"
	"fulltree/searcher"
	"time"

	"github.com/rs/zerolog/log"
)

// Evaluation is the full-tree score of one candidate move for the AI.
type Evaluation struct {
	Move    game.Position         `json:"move"`
	Points  int                   `json:"points"`
	Metrics searcher.BuildMetrics `json:"-"`
}

// Evaluate builds one full tree per empty cell and scores each of them.
func Evaluate(board searcher.Board, options ...searcher.Option) ([]Evaluation, error) {
	state := board.StateCopy()
	if outcome := board.Classify(state); outcome.IsTerminal() {
		return nil, fmt.Errorf("position is %v: %w", outcome, game.ErrGameOver)
	}

	cells := board.EmptyCells(state)
	evaluations := make([]Evaluation, 0, len(cells))
	for _, cell := range cells {
		tree, err := searcher.NewFullTree(board, cell, options...)
		if err != nil {
			return nil, fmt.Errorf("failed to create tree for (%d, %d): %w", cell.Row, cell.Col, err)
		}
		tree.Build()

		evaluation := Evaluation{
			Move:    tree.Choice(),
			Points:  tree.Points(),
			Metrics: tree.Metrics(),
		}
		evaluations = append(evaluations, evaluation)

		log.Debug().
			Int("row", evaluation.Move.Row).
			Int("col", evaluation.Move.Col).
			Int("points", evaluation.Points).
			Int("nodes", evaluation.Metrics.Nodes).
			Int("max_depth", evaluation.Metrics.MaxDepth).
			Dur("duration", evaluation.Metrics.Duration).
			Msg("evaluated move")
	}
	return evaluations, nil
}

// findMax returns the evaluation with the most points, the earliest on ties.
func findMax(evaluations []Evaluation) (Evaluation, error) {
	if len(evaluations) == 0 {
		return Evaluation{}, ErrNoMoves
	}

	best := evaluations[0]
	for _, evaluation := range evaluations[1:] {
		if evaluation.Points > best.Points {
			best = evaluation
		}
	}
	return best, nil
}

type fullTreeAgent struct {
	options []searcher.Option
}

// NewFullTreeAgent returns an agent that plays the AI move whose full tree
// sums to the most points.
func NewFullTreeAgent(options ...searcher.Option) Agent {
	return fullTreeAgent{options: append([]searcher.Option{searcher.WithMetrics()}, options...)}
}

func (a fullTreeAgent) FindMove(board *game.Board, player game.Symbol) (game.Position, metrics.SearchMetric, error) {
	if player != game.AI {
		return game.Position{}, metrics.SearchMetric{}, fmt.Errorf("full tree agent as %v: %w", player, ErrUnsupportedPlayer)
	}

	start := time.Now()
	evaluations, err := Evaluate(board, a.options...)
	if err != nil {
		return game.Position{}, metrics.SearchMetric{}, err
	}
	best, err := findMax(evaluations)
	if err != nil {
		return game.Position{}, metrics.SearchMetric{}, err
	}

	metric := metrics.SearchMetric{
		Agent:      "full_tree",
		Duration:   time.Since(start),
		Candidates: len(evaluations),
		Points:     best.Points,
	}
	for _, evaluation := range evaluations {
		metric.Nodes += evaluation.Metrics.Nodes
		metric.Leaves += evaluation.Metrics.Leaves()
	}
	return best.Move, metric, nil
}
