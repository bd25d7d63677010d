package agent

import (
	"bufio"
	"fmt"
	"fulltree/experiments/metrics"
	"fulltree/game"
	"io"
	"time"
)

type consoleAgent struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewConsoleAgent reads moves as "row col" lines from in and prompts on out.
func NewConsoleAgent(in io.Reader, out io.Writer) Agent {
	return &consoleAgent{scanner: bufio.NewScanner(in), out: out}
}

func (a *consoleAgent) FindMove(board *game.Board, player game.Symbol) (game.Position, metrics.SearchMetric, error) {
	start := time.Now()
	state := board.StateCopy()
	if board.Classify(state).IsTerminal() {
		return game.Position{}, metrics.SearchMetric{}, game.ErrGameOver
	}

	for {
		fmt.Fprintf(a.out, "%s\n%v to move (row col): ", state, player)
		if !a.scanner.Scan() {
			err := a.scanner.Err()
			if err == nil {
				err = io.ErrUnexpectedEOF
			}
			return game.Position{}, metrics.SearchMetric{}, fmt.Errorf("failed to read move: %w", err)
		}

		var move game.Position
		if _, err := fmt.Sscan(a.scanner.Text(), &move.Row, &move.Col); err != nil {
			fmt.Fprintf(a.out, "expected two numbers, got %q\n", a.scanner.Text())
			continue
		}
		if err := legal(state, move); err != nil {
			fmt.Fprintf(a.out, "illegal move: %v\n", err)
			continue
		}

		return move, metrics.SearchMetric{
			Agent:    "console",
			Duration: time.Since(start),
		}, nil
	}
}

func legal(state game.State, move game.Position) error {
	symbol, err := state.At(move)
	if err != nil {
		return err
	}
	if symbol != game.Empty {
		return fmt.Errorf("(%d, %d): %w", move.Row, move.Col, game.ErrOccupied)
	}
	return nil
}
