package searcher

import (
	"fulltree/game"
	"time"
)

type BuildMetrics struct {
	Duration  time.Duration
	Nodes     int
	MaxDepth  int
	AIWins    int
	HumanWins int
	Draws     int
}

func (m BuildMetrics) Leaves() int {
	return m.AIWins + m.HumanWins + m.Draws
}

type MetricsCollector interface {
	Start()
	AddNode(depth int)
	AddLeaf(outcome game.Outcome)
	Complete() BuildMetrics
}

type metricsCollector struct {
	startTime time.Time
	nodes     int
	maxDepth  int
	aiWins    int
	humanWins int
	draws     int
}

func NewMetricsCollector() MetricsCollector {
	return &metricsCollector{}
}

func (m *metricsCollector) Start() {
	*m = metricsCollector{startTime: time.Now()}
}

func (m *metricsCollector) AddNode(depth int) {
	m.nodes++
	if depth > m.maxDepth {
		m.maxDepth = depth
	}
}

func (m *metricsCollector) AddLeaf(outcome game.Outcome) {
	switch outcome {
	case game.AIWins:
		m.aiWins++
	case game.HumanWins:
		m.humanWins++
	case game.Draw:
		m.draws++
	}
}

func (m *metricsCollector) Complete() BuildMetrics {
	return BuildMetrics{
		Duration:  time.Since(m.startTime),
		Nodes:     m.nodes,
		MaxDepth:  m.maxDepth,
		AIWins:    m.aiWins,
		HumanWins: m.humanWins,
		Draws:     m.draws,
	}
}

type noMetricsCollector struct{}

func NewNoMetricsCollector() MetricsCollector {
	return &noMetricsCollector{}
}

func (m *noMetricsCollector) Start()                       {}
func (m *noMetricsCollector) AddNode(depth int)            {}
func (m *noMetricsCollector) AddLeaf(outcome game.Outcome) {}
func (m *noMetricsCollector) Complete() BuildMetrics       { return BuildMetrics{} }
