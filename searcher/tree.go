package searcher

import (
	"fmt"
	"fulltree/game"
)

type Option func(t *FullTree)

// WithMetrics records node and leaf counts while building.
func WithMetrics() Option {
	return func(t *FullTree) {
		t.metrics = NewMetricsCollector()
	}
}

// FullTree holds every continuation of the game after the AI plays one
// candidate move. It is built once and scored by summing its leaves.
type FullTree struct {
	board   Board
	root    *node
	metrics MetricsCollector
	built   BuildMetrics
}

// NewFullTree roots a tree at the board's current state with the AI's choice
// applied. Errors from placing the choice are returned unchanged.
func NewFullTree(board Board, choice game.Position, options ...Option) (*FullTree, error) {
	state := board.StateCopy()
	if err := state.Set(choice, game.AI); err != nil {
		return nil, err
	}

	t := &FullTree{
		board:   board,
		root:    newNode(state, game.AI, choice),
		metrics: NewNoMetricsCollector(),
	}
	for _, option := range options {
		option(t)
	}
	return t, nil
}

// Choice returns the candidate move the tree was built for.
func (t *FullTree) Choice() game.Position {
	return t.root.lastPos
}

// Build expands every reachable position depth first until each branch ends
// in a win, a loss or a draw.
func (t *FullTree) Build() {
	// Every move fills a cell, so a well-behaved board ends the game within
	// this many moves.
	limit := len(t.board.EmptyCells(t.root.state))

	t.metrics.Start()
	t.build(t.root, 0, limit)
	t.built = t.metrics.Complete()
}

func (t *FullTree) build(n *node, depth int, limit int) {
	if n == nil {
		return
	}
	t.metrics.AddNode(depth)

	if outcome := n.outcome(t.board); outcome.IsTerminal() {
		t.metrics.AddLeaf(outcome)
		return
	}
	if depth >= limit {
		panic(fmt.Sprintf("no terminal state after %d moves from %+v", depth, t.root.lastPos))
	}

	n.expand(t.board)
	for _, child := range n.children {
		t.build(child, depth+1, limit)
	}
}

// Points sums WIN, LOSS and DRAW over every leaf. Each leaf counts the same
// regardless of depth; this is not minimax.
func (t *FullTree) Points() int {
	return t.points(t.root)
}

func (t *FullTree) points(n *node) int {
	if n == nil {
		return 0
	}

	outcome := n.outcome(t.board)
	if outcome.IsTerminal() {
		return points(outcome)
	}

	sum := 0
	for _, child := range n.children {
		sum += t.points(child)
	}
	return sum
}

// Metrics returns the statistics of the last Build. It is zero unless the
// tree was created WithMetrics.
func (t *FullTree) Metrics() BuildMetrics {
	return t.built
}
