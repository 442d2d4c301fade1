package experiments

import (
	"fmt"
	"io"
	"photosynthesis/experiments/metrics"
	"photosynthesis/game"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	NumRuns    = 20 // Per config
	TimeBudget = 95 * time.Millisecond
)

var ThroughputConfigs = []metrics.BenchConfig{
	{ID: 1, Goroutines: 1, Duration: TimeBudget, Horizon: 10, SeedWindow: "per_ply"},
	{ID: 2, Goroutines: 2, Duration: TimeBudget, Horizon: 10, SeedWindow: "per_ply"},
	{ID: 3, Goroutines: 4, Duration: TimeBudget, Horizon: 10, SeedWindow: "per_ply"},
	{ID: 4, Goroutines: 8, Duration: TimeBudget, Horizon: 10, SeedWindow: "per_ply"},
	{ID: 5, Goroutines: 1, Duration: TimeBudget, Horizon: 10, SeedWindow: "per_rollout"},
	{ID: 6, Goroutines: 1, Duration: TimeBudget, Horizon: 24, SeedWindow: "per_ply"},
}

// OpeningPosition is the usual first turn: two small trees per player on
// opposite edges of the standard board.
func OpeningPosition() *game.GameState {
	trees := game.Forest{
		19: {Cell: 19, Size: 1, Owner: game.Me},
		28: {Cell: 28, Size: 1, Owner: game.Me},
		22: {Cell: 22, Size: 1, Owner: game.Opponent},
		31: {Cell: 31, Size: 1, Owner: game.Opponent},
	}
	gs := game.NewGameState(game.CreateBoard(game.BoardRadius), 0, 20, trees)
	gs.Sun = [2]int{4, 4}
	return gs
}

// RunThroughputExperiment plans the opening position runs times per config,
// stores the records under dir and prints a summary table to out.
func RunThroughputExperiment(dir string, configs []metrics.BenchConfig, runs int, seed uint64, out io.Writer) error {
	log.Info().Msgf("starting throughput experiment with %d configs...", len(configs))
	records, err := RunThroughput(OpeningPosition(), configs, runs, seed)
	if err != nil {
		return err
	}
	log.Info().Msg("completed throughput experiment")

	writer, err := metrics.NewWriter(dir, "throughput")
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteBenchConfigs(configs); err != nil {
		return fmt.Errorf("failed to store bench configs: %w", err)
	}
	log.Info().Msg("stored bench configs")
	if err := writer.WriteRunRecords(records); err != nil {
		return fmt.Errorf("failed to write run records: %w", err)
	}
	log.Info().Msgf("stored run records in %s", writer.Dir())

	return RenderReport(out, configs, records)
}
