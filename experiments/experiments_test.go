package experiments

import (
	"bytes"
	"os"
	"path/filepath"
	"photosynthesis/experiments/metrics"
	"photosynthesis/game"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var quickConfigs = []metrics.BenchConfig{
	{ID: 1, Goroutines: 1, Duration: 2 * time.Millisecond, Horizon: 10, SeedWindow: "per_ply"},
	{ID: 2, Goroutines: 2, Duration: 2 * time.Millisecond, Horizon: 5, SeedWindow: "per_rollout"},
}

func TestOpeningPosition(t *testing.T) {
	gs := OpeningPosition()
	require.Equal(t, 0, gs.Day)
	require.Equal(t, 2, gs.TreeCount(game.Me))
	require.Equal(t, 2, gs.TreeCount(game.Opponent))
	require.Greater(t, len(game.LegalActions(gs, game.Me, game.LastDay)), 1, "The opening should offer a real choice")
}

func TestRunThroughput(t *testing.T) {
	t.Run("one record per run", func(t *testing.T) {
		records, err := RunThroughput(OpeningPosition(), quickConfigs, 3, 1)
		require.NoError(t, err)
		require.Len(t, records, 6)
		for _, r := range records {
			require.Positive(t, r.Rollouts, "Config %d run %d did no work", r.Config, r.Run)
			require.NotEmpty(t, r.Action)
		}
		require.Equal(t, 2, records[5].Config)
		require.Equal(t, 3, records[5].Run)
	})

	t.Run("unknown seed window", func(t *testing.T) {
		bad := []metrics.BenchConfig{{ID: 9, Goroutines: 1, Duration: time.Millisecond, Horizon: 3, SeedWindow: "sometimes"}}
		_, err := RunThroughput(OpeningPosition(), bad, 1, 1)
		require.Error(t, err)
	})
}

func TestSummarize(t *testing.T) {
	records := []metrics.RunRecord{
		{Config: 1, Run: 1, Action: "WAIT", SearchMetric: metrics.SearchMetric{Duration: 10 * time.Millisecond, Rollouts: 100, FullPlayouts: 10, Choices: 4}},
		{Config: 1, Run: 2, Action: "GROW 19", SearchMetric: metrics.SearchMetric{Duration: 10 * time.Millisecond, Rollouts: 300, FullPlayouts: 10, Choices: 6}},
		{Config: 1, Run: 3, Action: "GROW 19", SearchMetric: metrics.SearchMetric{Duration: 20 * time.Millisecond, Rollouts: 200, Choices: 5}},
	}

	summaries := Summarize(quickConfigs, records)
	require.Len(t, summaries, 2)

	s := summaries[0]
	require.Equal(t, 3, s.Runs)
	require.InDelta(t, 200.0, s.MeanRollouts, 1e-9)
	require.InDelta(t, 15.0, s.RolloutsPerMs, 1e-9, "600 rollouts over 40ms")
	require.InDelta(t, 20.0/600, s.FullPlayouts, 1e-9)
	require.InDelta(t, 5.0, s.MeanChoices, 1e-9)
	require.Equal(t, "GROW 19", s.TopAction)

	require.Zero(t, summaries[1].Runs, "Configs without records stay empty")
}

func TestRunThroughputExperiment(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer

	err := RunThroughputExperiment(dir, quickConfigs[:1], 2, 7, &out)
	require.NoError(t, err)
	require.Contains(t, out.String(), "Throughput over 2 runs")
	require.Contains(t, out.String(), "per_ply")

	runs, err := filepath.Glob(filepath.Join(dir, "throughput", "*", "run_records.csv"))
	require.NoError(t, err)
	require.Len(t, runs, 1)
	_, err = os.Stat(filepath.Join(filepath.Dir(runs[0]), "bench_configs.csv"))
	require.NoError(t, err)
}
