package searcher

import (
	"fulltree/game"
	"testing"

	"github.com/stretchr/testify/require"
)

// mockBoard plays by the real rules and counts how often it is asked.
type mockBoard struct {
	state      game.State
	classified int
	enumerated int
}

func newMockBoard(t *testing.T, rows ...string) *mockBoard {
	t.Helper()
	state, err := game.ParseState(rows)
	require.NoError(t, err)
	return &mockBoard{state: state}
}

func (m *mockBoard) StateCopy() game.State {
	return m.state.Copy()
}

func (m *mockBoard) Classify(state game.State) game.Outcome {
	m.classified++
	return game.Classify(state)
}

func (m *mockBoard) EmptyCells(state game.State) []game.Position {
	m.enumerated++
	return game.EmptyCells(state)
}

// endlessBoard never reports a terminal state and always offers the same cell.
type endlessBoard struct{}

func (endlessBoard) StateCopy() game.State {
	return game.NewState(2)
}

func (endlessBoard) Classify(game.State) game.Outcome {
	return game.InProgress
}

func (endlessBoard) EmptyCells(game.State) []game.Position {
	return []game.Position{{Row: 0, Col: 0}}
}

func TestNodeExpand(t *testing.T) {
	t.Run("expanding an in-progress node", func(t *testing.T) {
		board := newMockBoard(t, "XO.", "...", "...")
		parent := newNode(board.StateCopy(), game.Human, game.Position{Row: 0, Col: 1})

		parent.expand(board)

		require.Len(t, parent.children, 7, "Node should add one child per empty cell")
		for _, child := range parent.children {
			require.Equal(t, game.AI, child.lastSymbol, "Child should be played by the opponent of the parent's player")
			require.Equal(t, game.AI, child.state[child.lastPos.Row][child.lastPos.Col], "Child state should hold the move")
			require.Len(t, game.EmptyCells(child.state), 6, "Child state should fill exactly one cell")
			require.Empty(t, child.children, "Children should not be expanded yet")
		}
		require.Equal(t, []string{"XO.", "...", "..."}, parent.state.Rows(), "Parent state should not change")
	})

	t.Run("alternating turns", func(t *testing.T) {
		board := newMockBoard(t, "X..", "...", "...")
		root := newNode(board.StateCopy(), game.AI, game.Position{Row: 0, Col: 0})

		root.expand(board)
		grandParent := root.children[0]
		grandParent.expand(board)

		require.Equal(t, game.Human, grandParent.lastSymbol)
		for _, child := range grandParent.children {
			require.Equal(t, game.AI, child.lastSymbol)
		}
	})

	t.Run("skipping a terminal node", func(t *testing.T) {
		board := newMockBoard(t, "XXX", "OO.", "...")
		leaf := newNode(board.StateCopy(), game.AI, game.Position{Row: 0, Col: 2})

		leaf.expand(board)

		require.Empty(t, leaf.children, "Terminal node should have no children")
		require.Equal(t, 0, board.enumerated, "Terminal node should not enumerate moves")
	})

	t.Run("expanding only once", func(t *testing.T) {
		board := newMockBoard(t, "XO.", "...", "...")
		parent := newNode(board.StateCopy(), game.Human, game.Position{Row: 0, Col: 1})

		parent.expand(board)
		first := parent.children
		parent.expand(board)

		require.Len(t, parent.children, 7, "Second expansion should not add children")
		require.Same(t, first[0], parent.children[0], "Second expansion should keep the existing children")
	})

	t.Run("copying state per child", func(t *testing.T) {
		board := newMockBoard(t, "XO.", "O..", "...")
		parent := newNode(board.StateCopy(), game.Human, game.Position{Row: 1, Col: 0})
		parent.expand(board)

		parent.children[0].state[2][2] = game.Human

		require.Equal(t, game.Empty, parent.state[2][2], "Mutating a child should not change the parent")
		for _, sibling := range parent.children[1:] {
			if sibling.lastPos != (game.Position{Row: 2, Col: 2}) {
				require.Equal(t, game.Empty, sibling.state[2][2], "Mutating a child should not change its siblings")
			}
		}
	})
}

func TestNodeOutcome(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		want game.Outcome
	}{
		{"in progress", []string{"X..", "...", "..."}, game.InProgress},
		{"ai wins", []string{"XXX", "OO.", "..."}, game.AIWins},
		{"human wins", []string{"OOO", "XX.", "X.."}, game.HumanWins},
		{"draw", []string{"XOX", "XOO", "OXX"}, game.Draw},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := newMockBoard(t, tt.rows...)
			n := newNode(board.StateCopy(), game.AI, game.Position{})
			require.Equal(t, tt.want, n.outcome(board))
			require.Equal(t, tt.want, n.outcome(board), "Classification should have no side effects")
		})
	}
}
