package game

import "fmt"

// Board owns the live state of a game. Searchers only ever see copies of it.
type Board struct {
	state State
}

func NewBoard(size int) (*Board, error) {
	if size < 1 {
		return nil, fmt.Errorf("size %d: %w", size, ErrInvalidSize)
	}
	return &Board{state: NewState(size)}, nil
}

// NewBoardFromState takes a copy of state as the starting position.
func NewBoardFromState(state State) (*Board, error) {
	if len(state) == 0 {
		return nil, ErrInvalidSize
	}
	for i, row := range state {
		if len(row) != len(state) {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", i, len(row), len(state), ErrInvalidSize)
		}
	}
	return &Board{state: state.Copy()}, nil
}

// StateCopy returns an independent copy of the current state.
func (b *Board) StateCopy() State {
	return b.state.Copy()
}

func (b *Board) Classify(state State) Outcome {
	return Classify(state)
}

func (b *Board) EmptyCells(state State) []Position {
	return EmptyCells(state)
}

// Play places symbol at pos on the live state.
func (b *Board) Play(pos Position, symbol Symbol) error {
	if symbol != AI && symbol != Human {
		return fmt.Errorf("%v: %w", symbol, ErrInvalidSymbol)
	}
	if b.Outcome().IsTerminal() {
		return ErrGameOver
	}
	current, err := b.state.At(pos)
	if err != nil {
		return err
	}
	if current != Empty {
		return fmt.Errorf("(%d, %d) holds %v: %w", pos.Row, pos.Col, current, ErrOccupied)
	}
	return b.state.Set(pos, symbol)
}

func (b *Board) Outcome() Outcome {
	return Classify(b.state)
}

func (b *Board) Size() int {
	return b.state.Size()
}

func (b *Board) String() string {
	return b.state.String()
}
