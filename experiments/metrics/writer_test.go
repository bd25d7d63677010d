package metrics

import (
	"encoding/csv"
	"fulltree/game"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriter(t *testing.T) {
	writer, err := NewWriter(t.TempDir())
	require.NoError(t, err)

	start := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	t.Run("writing game records", func(t *testing.T) {
		err := writer.WriteGameRecords([]GameRecord{{
			ID:       1,
			Opponent: "random",
			GameMetric: GameMetric{
				StartingPlayer: game.AI,
				Outcome:        game.AIWins,
				StartTime:      start,
				EndTime:        start.Add(time.Second),
				Duration:       time.Second,
				TotalMoves:     7,
			},
		}})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(writer.Dir(), "game_records.csv"))
		require.Len(t, rows, 2, "File should hold a header and one record")
		require.Equal(t, []string{"1", "random", "AI", "ai_wins", "2024-01-02T03:04:05Z", "2024-01-02T03:04:06Z", "1s", "7"}, rows[1])
	})

	t.Run("writing move records", func(t *testing.T) {
		err := writer.WriteMoveRecords([]MoveRecord{{
			Game: 1,
			MoveMetric: MoveMetric{
				Step:   1,
				Player: game.AI,
				Move:   game.Position{Row: 1, Col: 1},
				SearchMetric: SearchMetric{
					Agent:      "full_tree",
					Duration:   time.Millisecond,
					Candidates: 9,
					Nodes:      549945,
					Leaves:     255168,
					Points:     10032,
				},
			},
		}})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(writer.Dir(), "move_records.csv"))
		require.Len(t, rows, 2)
		require.Equal(t, "game", rows[0][0])
		require.Equal(t, []string{"1", "1", "AI", "1", "1", "full_tree", "1ms", "9", "549945", "255168", "10032"}, rows[1])
	})
}

func TestSummaryAdd(t *testing.T) {
	var summary Summary
	for _, outcome := range []game.Outcome{game.AIWins, game.Draw, game.AIWins, game.HumanWins} {
		summary.Add(outcome)
	}

	require.Equal(t, Summary{Games: 4, AIWins: 2, HumanWins: 1, Draws: 1}, summary)
}
