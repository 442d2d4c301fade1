package experiments

import (
	"fmt"
	"photosynthesis/experiments/metrics"
	"photosynthesis/game"
	"photosynthesis/searcher"

	"github.com/rs/zerolog/log"
)

// RunThroughput plans state runs times for each config and records every run.
func RunThroughput(state *game.GameState, configs []metrics.BenchConfig, runs int, seed uint64) ([]metrics.RunRecord, error) {
	records := []metrics.RunRecord{}
	for ci, config := range configs {
		log.Info().Msgf("running config %d of %d: %+v", ci+1, len(configs), config)

		planner, err := createPlanner(config, seed+uint64(config.ID))
		if err != nil {
			return nil, err
		}
		for i := 0; i < runs; i++ {
			decision := planner.Plan(state)
			records = append(records, metrics.RunRecord{
				Config:       config.ID,
				Run:          i + 1,
				Action:       decision.Action.String(),
				Score:        decision.Score,
				SearchMetric: decision.Metric,
			})
		}
	}
	return records, nil
}

func createPlanner(config metrics.BenchConfig, seed uint64) (*searcher.Planner, error) {
	mode, err := searcher.ParseSeedWindowMode(config.SeedWindow)
	if err != nil {
		return nil, fmt.Errorf("config %d: %w", config.ID, err)
	}
	options := []searcher.Option{
		searcher.WithGoroutines(config.Goroutines),
		searcher.WithDuration(config.Duration),
		searcher.WithHorizon(config.Horizon),
		searcher.WithSeedWindow(mode),
		searcher.WithSeed(seed),
	}

	options = append(options, searcher.WithMetrics())
	return searcher.NewPlanner(options...), nil
}
