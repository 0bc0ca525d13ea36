package metrics

import (
	"encoding/csv"
	"os"
	"othello/game"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	t.Run("counts one expansion", func(t *testing.T) {
		c := NewCollector()
		c.Start(3)
		c.AddBoard()
		c.AddBoard()
		c.AddCacheHit()
		c.AddReuse()
		c.AddLeaf()
		c.AddTerminal()

		m := c.Complete(7)

		require.Equal(t, SearchMetric{
			Depth:           3,
			Duration:        m.Duration,
			BoardsCreated:   2,
			CacheHits:       1,
			Reused:          1,
			LeafEvaluations: 1,
			TerminalNodes:   1,
			CacheSize:       7,
		}, m)
	})

	t.Run("evictions are reported with the next expansion", func(t *testing.T) {
		c := NewCollector()
		c.AddPruned(4)
		c.AddPruned(1)

		c.Start(1)
		require.Equal(t, 5, c.Complete(0).Pruned)

		c.Start(1)
		require.Zero(t, c.Complete(0).Pruned)
	})

	t.Run("the dummy collector reports nothing", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start(2)
		c.AddBoard()
		c.AddPruned(3)

		require.Equal(t, SearchMetric{}, c.Complete(10))
	})
}

func TestWriter(t *testing.T) {
	root := t.TempDir()
	w, err := NewWriter(root, "test")
	require.NoError(t, err)
	require.DirExists(t, w.Dir())

	start := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	t.Run("writes agent configs", func(t *testing.T) {
		require.NoError(t, w.WriteAgentConfigs([]AgentConfig{
			{ID: 1, Kind: "search", Depth: 4, Personality: game.Second},
			{ID: 2, Kind: "random", Seed: 12},
		}))

		require.Equal(t, [][]string{
			{"id", "kind", "depth", "personality", "seed"},
			{"1", "search", "4", "second", "0"},
			{"2", "random", "0", "", "12"},
		}, readRows(t, filepath.Join(w.Dir(), "agent_configs.csv")))
	})

	t.Run("writes game records", func(t *testing.T) {
		require.NoError(t, w.WriteGameRecords([]GameRecord{{
			ID:     1,
			Agent1: 1,
			Agent2: 2,
			GameMetric: GameMetric{
				StartingPlayer: game.Player1,
				Winner:         game.Empty,
				Counts:         game.Counts{0, 32, 32},
				StartTime:      start,
				EndTime:        start.Add(time.Second),
				Duration:       time.Second,
				TotalMoves:     60,
			},
		}}))

		rows := readRows(t, filepath.Join(w.Dir(), "game_records.csv"))
		require.Len(t, rows, 2)
		require.Equal(t, []string{"1", "1", "2", "Player1", "draw", "32", "32", "60", "2024-01-02T03:04:05Z", "2024-01-02T03:04:06Z", "1s"}, rows[1])
	})

	t.Run("writes move records", func(t *testing.T) {
		require.NoError(t, w.WriteMoveRecords([]MoveRecord{{
			Game: 1,
			MoveMetric: MoveMetric{
				Step:         1,
				Player:       game.Player1,
				Move:         "d3",
				SearchMetric: SearchMetric{Depth: 2, BoardsCreated: 20, CacheSize: 21},
			},
		}}))

		rows := readRows(t, filepath.Join(w.Dir(), "move_records.csv"))
		require.Len(t, rows, 2)
		require.Equal(t, []string{"1", "1", "Player1", "d3", "2", "0s", "20", "0", "0", "0", "0", "21", "0"}, rows[1])
	})
}

func readRows(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}
