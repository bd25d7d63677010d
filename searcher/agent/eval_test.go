package agent

import (
	"bytes"
	"fulltree/game"
	"fulltree/searcher"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/require"
)

func newBoard(t *testing.T, rows ...string) *game.Board {
	t.Helper()
	state, err := game.ParseState(rows)
	require.NoError(t, err)
	board, err := game.NewBoardFromState(state)
	require.NoError(t, err)
	return board
}

func TestEvaluate(t *testing.T) {
	t.Run("scoring every opening", func(t *testing.T) {
		board := newBoard(t, "...", "...", "...")

		evaluations, err := Evaluate(board)

		require.NoError(t, err)
		require.Len(t, evaluations, 9, "Every empty cell should be a candidate")
		got := map[game.Position]int{}
		for _, evaluation := range evaluations {
			got[evaluation.Move] = evaluation.Points
		}
		require.Equal(t, map[game.Position]int{
			{Row: 0, Col: 0}: 6756, {Row: 0, Col: 1}: 4056, {Row: 0, Col: 2}: 6756,
			{Row: 1, Col: 0}: 4056, {Row: 1, Col: 1}: 10032, {Row: 1, Col: 2}: 4056,
			{Row: 2, Col: 0}: 6756, {Row: 2, Col: 1}: 4056, {Row: 2, Col: 2}: 6756,
		}, got)
		require.Equal(t, []string{"...", "...", "..."}, board.StateCopy().Rows(), "Evaluation should not change the board")
	})

	t.Run("logging build metrics per candidate", func(t *testing.T) {
		var buf bytes.Buffer
		logger, level := log.Logger, zerolog.GlobalLevel()
		log.Logger = zerolog.New(&buf)
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		defer func() {
			log.Logger = logger
			zerolog.SetGlobalLevel(level)
		}()
		board := newBoard(t, "XOX", "OOX", ".X.")

		_, err := Evaluate(board, searcher.WithMetrics())

		require.NoError(t, err)
		require.Contains(t, buf.String(), `"nodes":2,"max_depth":1`, "(2, 0) leaves one human reply")
		require.Contains(t, buf.String(), `"nodes":1,"max_depth":0`, "(2, 2) wins at once")
	})

	t.Run("rejecting a finished game", func(t *testing.T) {
		board := newBoard(t, "XXX", "OO.", "...")

		_, err := Evaluate(board)

		require.ErrorIs(t, err, game.ErrGameOver)
	})
}

func TestFindMax(t *testing.T) {
	t.Run("picking the most points", func(t *testing.T) {
		best, err := findMax([]Evaluation{
			{Move: game.Position{Row: 0, Col: 0}, Points: -3},
			{Move: game.Position{Row: 0, Col: 1}, Points: 7},
			{Move: game.Position{Row: 0, Col: 2}, Points: 2},
		})
		require.NoError(t, err)
		require.Equal(t, game.Position{Row: 0, Col: 1}, best.Move)
	})

	t.Run("breaking ties by order", func(t *testing.T) {
		best, err := findMax([]Evaluation{
			{Move: game.Position{Row: 1, Col: 0}, Points: 4},
			{Move: game.Position{Row: 2, Col: 0}, Points: 4},
		})
		require.NoError(t, err)
		require.Equal(t, game.Position{Row: 1, Col: 0}, best.Move)
	})

	t.Run("failing without candidates", func(t *testing.T) {
		_, err := findMax(nil)
		require.ErrorIs(t, err, ErrNoMoves)
	})
}

func TestFullTreeAgentFindMove(t *testing.T) {
	t.Run("opening in the center", func(t *testing.T) {
		board := newBoard(t, "...", "...", "...")

		move, metric, err := NewFullTreeAgent().FindMove(board, game.AI)

		require.NoError(t, err)
		require.Equal(t, game.Position{Row: 1, Col: 1}, move)
		require.Equal(t, 9, metric.Candidates)
		require.Equal(t, 10032, metric.Points)
		require.Equal(t, 549945, metric.Nodes)
		require.Equal(t, 255168, metric.Leaves)
	})

	t.Run("preferring more winning continuations over an immediate win", func(t *testing.T) {
		board := newBoard(t, "XO.", "OX.", "...")

		move, metric, err := NewFullTreeAgent().FindMove(board, game.AI)

		require.NoError(t, err)
		require.Equal(t, game.Position{Row: 0, Col: 2}, move, "Summed points rank (0, 2) above the winning (2, 2)")
		require.Equal(t, 14, metric.Points)
	})

	t.Run("refusing to play the human", func(t *testing.T) {
		board := newBoard(t, "...", "...", "...")

		_, _, err := NewFullTreeAgent().FindMove(board, game.Human)

		require.ErrorIs(t, err, ErrUnsupportedPlayer)
	})

	t.Run("failing on a finished game", func(t *testing.T) {
		board := newBoard(t, "XOX", "XOO", "OXX")

		_, _, err := NewFullTreeAgent().FindMove(board, game.AI)

		require.ErrorIs(t, err, game.ErrGameOver)
	})
}
