package game

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidSize   = errors.New("board size must be at least 1")
	ErrOutOfRange    = errors.New("position is outside the board")
	ErrOccupied      = errors.New("cell is already occupied")
	ErrGameOver      = errors.New("game is already over")
	ErrInvalidSymbol = errors.New("symbol must be AI or Human")
)

// Symbol marks a cell and identifies the player who placed it.
type Symbol int

const (
	Empty Symbol = iota
	AI
	Human
)

// Opponent returns the player moving after s. Empty has no opponent.
func (s Symbol) Opponent() Symbol {
	switch s {
	case AI:
		return Human
	case Human:
		return AI
	default:
		return Empty
	}
}

func (s Symbol) String() string {
	switch s {
	case AI:
		return "AI"
	case Human:
		return "HUMAN"
	default:
		return "EMPTY"
	}
}

// ParseSymbol reads "ai" or "human" in any case.
func ParseSymbol(value string) (Symbol, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "ai":
		return AI, nil
	case "human":
		return Human, nil
	default:
		return Empty, fmt.Errorf("%q: %w", value, ErrInvalidSymbol)
	}
}

func (s Symbol) mark() byte {
	switch s {
	case AI:
		return 'X'
	case Human:
		return 'O'
	default:
		return '.'
	}
}

// Outcome classifies a state. InProgress is distinct from Draw so that
// "no result yet" never looks like a finished game.
type Outcome int

const (
	InProgress Outcome = iota
	AIWins
	HumanWins
	Draw
)

func (o Outcome) IsTerminal() bool {
	return o != InProgress
}

func (o Outcome) String() string {
	switch o {
	case AIWins:
		return "ai_wins"
	case HumanWins:
		return "human_wins"
	case Draw:
		return "draw"
	default:
		return "in_progress"
	}
}

// Position is a zero-based board coordinate.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}
