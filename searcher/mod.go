package searcher

import "fulltree/game"

// Points awarded to a terminal leaf, from the AI's point of view.
const (
	WIN  = 1
	LOSS = -WIN
	DRAW = 0
)

// Board is what a FullTree needs from the game. Symbols are game.AI and game.Human.
type Board interface {
	// StateCopy returns a copy of the current state that shares nothing with the board.
	StateCopy() game.State
	// Classify reports the outcome of a state using only the state itself.
	Classify(state game.State) game.Outcome
	// EmptyCells lists the legal moves of a state.
	EmptyCells(state game.State) []game.Position
}

func points(outcome game.Outcome) int {
	switch outcome {
	case game.AIWins:
		return WIN
	case game.HumanWins:
		return LOSS
	default:
		return DRAW
	}
}
