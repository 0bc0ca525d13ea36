package metrics

import (
	"encoding/csv"
	"os"
	"othello/game"
	"path/filepath"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

// AgentConfig describes one side of a matchup.
type AgentConfig struct {
	ID          int
	Kind        string           // "search", "greedy" or "random"
	Depth       int              // search only
	Personality game.Personality // search only
	Seed        uint64           // random only
}

type GameRecord struct {
	ID     int
	Agent1 int // AgentConfig.ID, plays Player1
	Agent2 int // AgentConfig.ID, plays Player2
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates <root>/<name>/<timestamp> and writes every file there.
func NewWriter(root, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(root, name, timestamp)
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, errors.Wrap(err, "failed to create directory")
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	header := []string{"id", "kind", "depth", "personality", "seed"}
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			config.Kind,
			strconv.Itoa(config.Depth),
			personalityName(config),
			strconv.FormatUint(config.Seed, 10),
		})
	}
	return w.write("agent_configs.csv", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "agent1", "agent2", "starting_player", "winner", "player1_discs", "player2_discs", "total_moves", "start_time", "end_time", "duration"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Agent1),
			strconv.Itoa(record.Agent2),
			record.StartingPlayer.String(),
			winnerName(record.Winner),
			strconv.Itoa(record.Counts[game.Player1]),
			strconv.Itoa(record.Counts[game.Player2]),
			strconv.Itoa(record.TotalMoves),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
		})
	}
	return w.write("game_records.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "step", "player", "move", "depth", "duration", "boards_created", "cache_hits", "reused", "leaf_evaluations", "terminal_nodes", "cache_size", "pruned"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			record.Player.String(),
			string(record.Move),
			strconv.Itoa(record.Depth),
			record.Duration.String(),
			strconv.Itoa(record.BoardsCreated),
			strconv.Itoa(record.CacheHits),
			strconv.Itoa(record.Reused),
			strconv.Itoa(record.LeafEvaluations),
			strconv.Itoa(record.TerminalNodes),
			strconv.Itoa(record.CacheSize),
			strconv.Itoa(record.Pruned),
		})
	}
	return w.write("move_records.csv", header, rows)
}

func (w *Writer) write(name string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", name)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(header); err != nil {
		return errors.Wrapf(err, "failed to write %s header", name)
	}
	if err := writer.WriteAll(rows); err != nil {
		return errors.Wrapf(err, "failed to write %s rows", name)
	}
	return nil
}

func personalityName(config AgentConfig) string {
	if config.Kind != "search" {
		return ""
	}
	return config.Personality.String()
}

func winnerName(winner game.Square) string {
	if winner == game.Empty {
		return "draw"
	}
	return winner.String()
}
