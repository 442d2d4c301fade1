package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Goroutines   int
	Duration     time.Duration
	Horizon      int
	Rollouts     int
	FullPlayouts int // Rollouts that reached the end of the game
	Choices      int // Distinct first actions sampled
}

type TurnMetric struct {
	Turn int
	Day  int
	SearchMetric
}

type Collector interface {
	Start(goroutines, horizon int)
	AddRollout()
	AddFullPlayout()
	Complete(choices int) SearchMetric
}

type collector struct {
	goroutines   int
	horizon      int
	startTime    time.Time
	rollouts     atomic.Int64
	fullPlayouts atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(goroutines, horizon int) {
	m.startTime = time.Now()
	m.goroutines = goroutines
	m.horizon = horizon
	m.rollouts.Store(0)
	m.fullPlayouts.Store(0)
}

func (m *collector) AddRollout() {
	m.rollouts.Add(1)
}

func (m *collector) AddFullPlayout() {
	m.fullPlayouts.Add(1)
}

func (m *collector) Complete(choices int) SearchMetric {
	return SearchMetric{
		Goroutines:   m.goroutines,
		Duration:     time.Since(m.startTime),
		Horizon:      m.horizon,
		Rollouts:     int(m.rollouts.Load()),
		FullPlayouts: int(m.fullPlayouts.Load()),
		Choices:      choices,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(goroutines, horizon int)     {}
func (m *dummyCollector) AddRollout()                       {}
func (m *dummyCollector) AddFullPlayout()                   {}
func (m *dummyCollector) Complete(choices int) SearchMetric { return SearchMetric{Choices: choices} }
