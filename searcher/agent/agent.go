package agent

import (
	"errors"
	"fulltree/experiments/metrics"
	"fulltree/game"
)

var (
	ErrNoMoves           = errors.New("no legal moves")
	ErrUnsupportedPlayer = errors.New("agent cannot play this symbol")
)

type Agent interface {
	// FindMove picks a cell for player on the board's current state. The board is not modified.
	FindMove(board *game.Board, player game.Symbol) (game.Position, metrics.SearchMetric, error)
}
