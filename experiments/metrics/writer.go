package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// BenchConfig is one planner setting measured by the throughput experiment.
type BenchConfig struct {
	ID         int
	Goroutines int
	Duration   time.Duration
	Horizon    int
	SeedWindow string
}

type RunRecord struct {
	Config int // BenchConfig.ID
	Run    int
	Action string
	Score  float64
	SearchMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates dir/name/<timestamp> to hold the experiment files.
func NewWriter(dir, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(dir, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteBenchConfigs(configs []BenchConfig) error {
	header := []string{"id", "goroutines", "duration", "horizon", "seed_window"}
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			strconv.Itoa(config.Goroutines),
			config.Duration.String(),
			strconv.Itoa(config.Horizon),
			config.SeedWindow,
		})
	}
	return w.write("bench_configs.csv", header, rows)
}

func (w *Writer) WriteRunRecords(records []RunRecord) error {
	header := []string{"config", "run", "action", "score", "duration", "rollouts", "full_playouts", "choices"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Config),
			strconv.Itoa(record.Run),
			record.Action,
			strconv.FormatFloat(record.Score, 'f', 3, 64),
			record.Duration.String(),
			strconv.Itoa(record.Rollouts),
			strconv.Itoa(record.FullPlayouts),
			strconv.Itoa(record.Choices),
		})
	}
	return w.write("run_records.csv", header, rows)
}

func (w *Writer) WriteTurnMetrics(turns []TurnMetric) error {
	header := []string{"turn", "day", "goroutines", "duration", "rollouts", "full_playouts", "choices"}
	rows := make([][]string, 0, len(turns))
	for _, turn := range turns {
		rows = append(rows, []string{
			strconv.Itoa(turn.Turn),
			strconv.Itoa(turn.Day),
			strconv.Itoa(turn.Goroutines),
			turn.Duration.String(),
			strconv.Itoa(turn.Rollouts),
			strconv.Itoa(turn.FullPlayouts),
			strconv.Itoa(turn.Choices),
		})
	}
	return w.write("turn_metrics.csv", header, rows)
}

func (w *Writer) write(file string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, file)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", file, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", file, err)
	}
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write %s rows: %w", file, err)
	}
	return nil
}
