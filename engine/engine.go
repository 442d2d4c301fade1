package engine

import "photosynthesis/experiments/metrics"

type Engine interface {
	// Run plays turns until the referee closes the input and returns per turn search metrics
	Run() ([]metrics.TurnMetric, error)
}
