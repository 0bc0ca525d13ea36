package metrics

import (
	"othello/game"
	"time"
)

// SearchMetric describes one look-ahead expansion.
type SearchMetric struct {
	Depth           int
	Duration        time.Duration
	BoardsCreated   int // boards materialized into the cache
	CacheHits       int // boards found in the cache
	Reused          int // cached boards whose values were already deep enough
	LeafEvaluations int
	TerminalNodes   int
	CacheSize       int
	Pruned          int
}

type MoveMetric struct {
	Step   int
	Player game.Square
	Move   game.Move
	SearchMetric
}

type GameMetric struct {
	StartingPlayer game.Square
	Winner         game.Square // Empty on a draw
	Counts         game.Counts
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	Start(depth int)
	AddBoard()
	AddCacheHit()
	AddReuse()
	AddLeaf()
	AddTerminal()
	AddPruned(n int)
	Complete(cacheSize int) SearchMetric
}

// collector is not safe for concurrent use; a searcher runs on a single goroutine.
type collector struct {
	current   SearchMetric
	startTime time.Time
	pruned    int
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(depth int) {
	m.current = SearchMetric{Depth: depth, Pruned: m.pruned}
	m.pruned = 0
	m.startTime = time.Now()
}

func (m *collector) AddBoard() {
	m.current.BoardsCreated++
}

func (m *collector) AddCacheHit() {
	m.current.CacheHits++
}

func (m *collector) AddReuse() {
	m.current.Reused++
}

func (m *collector) AddLeaf() {
	m.current.LeafEvaluations++
}

func (m *collector) AddTerminal() {
	m.current.TerminalNodes++
}

// AddPruned counts evictions; they are reported with the next expansion.
func (m *collector) AddPruned(n int) {
	m.pruned += n
}

func (m *collector) Complete(cacheSize int) SearchMetric {
	m.current.Duration = time.Since(m.startTime)
	m.current.CacheSize = cacheSize
	return m.current
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(depth int)                     {}
func (m *dummyCollector) AddBoard()                           {}
func (m *dummyCollector) AddCacheHit()                        {}
func (m *dummyCollector) AddReuse()                           {}
func (m *dummyCollector) AddLeaf()                            {}
func (m *dummyCollector) AddTerminal()                        {}
func (m *dummyCollector) AddPruned(n int)                     {}
func (m *dummyCollector) Complete(cacheSize int) SearchMetric { return SearchMetric{} }
