package searcher

import "fulltree/game"

type node struct {
	state      game.State
	lastSymbol game.Symbol
	lastPos    game.Position
	children   []*node
}

func newNode(state game.State, lastSymbol game.Symbol, lastPos game.Position) *node {
	return &node{
		state:      state,
		lastSymbol: lastSymbol,
		lastPos:    lastPos,
	}
}

func (n *node) outcome(board Board) game.Outcome {
	return board.Classify(n.state)
}

// expand adds one child per empty cell, played by the opponent of lastSymbol.
// Children are populated once; terminal nodes stay leaves.
func (n *node) expand(board Board) {
	if len(n.children) > 0 { // Already expanded
		return
	}
	if n.outcome(board).IsTerminal() {
		return
	}

	next := n.lastSymbol.Opponent()
	cells := board.EmptyCells(n.state)
	n.children = make([]*node, 0, len(cells))
	for _, pos := range cells {
		state := n.state.Copy()
		state[pos.Row][pos.Col] = next
		n.children = append(n.children, newNode(state, next, pos))
	}
}
