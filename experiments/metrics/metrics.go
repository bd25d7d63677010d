package metrics

import (
	"fulltree/game"
	"time"
)

// SearchMetric describes the work an agent did to pick one move.
type SearchMetric struct {
	Agent      string
	Duration   time.Duration
	Candidates int // Trees built, one per legal move
	Nodes      int
	Leaves     int
	Points     int // Points of the chosen move
}

type MoveMetric struct {
	Step   int
	Player game.Symbol
	Move   game.Position
	SearchMetric
}

type GameMetric struct {
	StartingPlayer game.Symbol
	Outcome        game.Outcome
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

// Summary counts game outcomes from the AI's side.
type Summary struct {
	Games     int
	AIWins    int
	HumanWins int
	Draws     int
}

func (s *Summary) Add(outcome game.Outcome) {
	s.Games++
	switch outcome {
	case game.AIWins:
		s.AIWins++
	case game.HumanWins:
		s.HumanWins++
	case game.Draw:
		s.Draws++
	}
}
