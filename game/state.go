package game

import (
	"fmt"
	"strings"
	"sync"
)

// State is a square grid of symbols. It is a slice of slices, so assignment
// aliases: use Copy before mutating a state owned by someone else.
type State [][]Symbol

// NewState returns an empty size x size grid.
func NewState(size int) State {
	state := make(State, size)
	for i := range state {
		state[i] = make([]Symbol, size)
	}
	return state
}

// ParseState builds a state from rows of 'X' (AI), 'O' (Human) and '.' (empty).
func ParseState(rows []string) (State, error) {
	if len(rows) == 0 {
		return nil, ErrInvalidSize
	}
	state := NewState(len(rows))
	for i, row := range rows {
		if len(row) != len(rows) {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", i, len(row), len(rows), ErrInvalidSize)
		}
		for j := 0; j < len(row); j++ {
			switch row[j] {
			case 'X', 'x':
				state[i][j] = AI
			case 'O', 'o':
				state[i][j] = Human
			case '.', ' ', '_':
				state[i][j] = Empty
			default:
				return nil, fmt.Errorf("row %d col %d: unknown cell %q", i, j, row[j])
			}
		}
	}
	return state, nil
}

// Copy returns a deep copy that shares no rows with s.
func (s State) Copy() State {
	stateCopy := make(State, len(s))
	for i, row := range s {
		rowCopy := make([]Symbol, len(row))
		copy(rowCopy, row)
		stateCopy[i] = rowCopy
	}
	return stateCopy
}

func (s State) Size() int {
	return len(s)
}

func (s State) Contains(pos Position) bool {
	return pos.Row >= 0 && pos.Row < len(s) && pos.Col >= 0 && pos.Col < len(s[pos.Row])
}

func (s State) At(pos Position) (Symbol, error) {
	if !s.Contains(pos) {
		return Empty, fmt.Errorf("(%d, %d): %w", pos.Row, pos.Col, ErrOutOfRange)
	}
	return s[pos.Row][pos.Col], nil
}

// Set overwrites the cell at pos. It does not check occupancy.
func (s State) Set(pos Position, symbol Symbol) error {
	if !s.Contains(pos) {
		return fmt.Errorf("(%d, %d): %w", pos.Row, pos.Col, ErrOutOfRange)
	}
	s[pos.Row][pos.Col] = symbol
	return nil
}

// Rows renders the state in the format read by ParseState.
func (s State) Rows() []string {
	rows := make([]string, len(s))
	for i, row := range s {
		b := make([]byte, len(row))
		for j, symbol := range row {
			b[j] = symbol.mark()
		}
		rows[i] = string(b)
	}
	return rows
}

func (s State) String() string {
	return strings.Join(s.Rows(), "\n")
}

// Classify returns the outcome of s: a full row, column or diagonal of one
// player wins, a full board without a line is a draw.
func Classify(s State) Outcome {
	for _, line := range lines(len(s)) {
		if winner := lineOwner(s, line); winner != Empty {
			if winner == AI {
				return AIWins
			}
			return HumanWins
		}
	}
	if !hasEmpty(s) {
		return Draw
	}
	return InProgress
}

func hasEmpty(s State) bool {
	for _, row := range s {
		for _, symbol := range row {
			if symbol == Empty {
				return true
			}
		}
	}
	return false
}

// EmptyCells lists the empty cells of s in row-major order.
func EmptyCells(s State) []Position {
	cells := []Position{}
	for i, row := range s {
		for j, symbol := range row {
			if symbol == Empty {
				cells = append(cells, Position{Row: i, Col: j})
			}
		}
	}
	return cells
}

func lineOwner(s State, line []Position) Symbol {
	first := s[line[0].Row][line[0].Col]
	if first == Empty {
		return Empty
	}
	for _, pos := range line[1:] {
		if s[pos.Row][pos.Col] != first {
			return Empty
		}
	}
	return first
}

var lineCache sync.Map // size -> [][]Position

func lines(size int) [][]Position {
	if cached, ok := lineCache.Load(size); ok {
		return cached.([][]Position)
	}
	result := buildLines(size)
	lineCache.Store(size, result)
	return result
}

// buildLines enumerates row i and column i for each i, then the two diagonals
// of a size x size grid.
func buildLines(size int) [][]Position {
	if size == 0 {
		return nil
	}
	result := make([][]Position, 0, 2*size+2)
	for i := 0; i < size; i++ {
		row := make([]Position, size)
		col := make([]Position, size)
		for j := 0; j < size; j++ {
			row[j] = Position{Row: i, Col: j}
			col[j] = Position{Row: j, Col: i}
		}
		result = append(result, row, col)
	}
	diagonal := make([]Position, size)
	antiDiagonal := make([]Position, size)
	for i := 0; i < size; i++ {
		diagonal[i] = Position{Row: i, Col: i}
		antiDiagonal[i] = Position{Row: i, Col: size - 1 - i}
	}
	return append(result, diagonal, antiDiagonal)
}
