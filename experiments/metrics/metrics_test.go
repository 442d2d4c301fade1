package metrics

import (
	"encoding/csv"
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

func TestCollector(t *testing.T) {
	t.Run("counts rollouts and playouts", func(t *testing.T) {
		c := NewCollector()
		c.Start(2, 10)
		for i := 0; i < 5; i++ {
			c.AddRollout()
		}
		c.AddFullPlayout()

		metric := c.Complete(3)
		require.Equal(t, 2, metric.Goroutines)
		require.Equal(t, 10, metric.Horizon)
		require.Equal(t, 5, metric.Rollouts)
		require.Equal(t, 1, metric.FullPlayouts)
		require.Equal(t, 3, metric.Choices)
	})

	t.Run("start resets counters", func(t *testing.T) {
		c := NewCollector()
		c.Start(1, 10)
		c.AddRollout()
		c.Start(1, 10)

		require.Zero(t, c.Complete(0).Rollouts)
	})

	t.Run("dummy collector", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start(4, 10)
		c.AddRollout()

		require.Equal(t, SearchMetric{Choices: 2}, c.Complete(2))
	})
}

func TestWriter(t *testing.T) {
	w, err := NewWriter(t.TempDir(), "throughput")
	require.NoError(t, err)

	configs := []BenchConfig{{ID: 1, Goroutines: 2, Duration: 10 * time.Millisecond, Horizon: 10, SeedWindow: "per_ply"}}
	require.NoError(t, w.WriteBenchConfigs(configs))

	records := []RunRecord{{Config: 1, Run: 3, Action: "GROW 4", Score: 12.5,
		SearchMetric: SearchMetric{Duration: time.Millisecond, Rollouts: 900, FullPlayouts: 0, Choices: 6}}}
	require.NoError(t, w.WriteRunRecords(records))

	rows := readCSV(t, filepath.Join(w.Dir(), "bench_configs.csv"))
	require.Equal(t, [][]string{
		{"id", "goroutines", "duration", "horizon", "seed_window"},
		{"1", "2", "10ms", "10", "per_ply"},
	}, rows)

	rows = readCSV(t, filepath.Join(w.Dir(), "run_records.csv"))
	require.Len(t, rows, 2)
	require.Equal(t, []string{"1", "3", "GROW 4", "12.500", "1ms", "900", "0", "6"}, rows[1])
}
