package experiments

import (
	"fmt"
	"io"
	"photosynthesis/experiments/metrics"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

// Summary aggregates the runs of one config.
type Summary struct {
	Config        metrics.BenchConfig
	Runs          int
	MeanRollouts  float64
	RolloutsPerMs float64
	FullPlayouts  float64 // Share of rollouts that reached the end of the game
	MeanChoices   float64
	TopAction     string // Most frequent decision
}

func Summarize(configs []metrics.BenchConfig, records []metrics.RunRecord) []Summary {
	summaries := make([]Summary, 0, len(configs))
	for _, config := range configs {
		s := Summary{Config: config}
		var rollouts, full, choices int
		var elapsedMs float64
		actions := map[string]int{}
		for _, r := range records {
			if r.Config != config.ID {
				continue
			}
			s.Runs++
			rollouts += r.Rollouts
			full += r.FullPlayouts
			choices += r.Choices
			elapsedMs += float64(r.Duration.Microseconds()) / 1000
			actions[r.Action]++
			if actions[r.Action] > actions[s.TopAction] {
				s.TopAction = r.Action
			}
		}
		if s.Runs > 0 {
			s.MeanRollouts = float64(rollouts) / float64(s.Runs)
			s.MeanChoices = float64(choices) / float64(s.Runs)
		}
		if elapsedMs > 0 {
			s.RolloutsPerMs = float64(rollouts) / elapsedMs
		}
		if rollouts > 0 {
			s.FullPlayouts = float64(full) / float64(rollouts)
		}
		summaries = append(summaries, s)
	}
	return summaries
}

func RenderReport(out io.Writer, configs []metrics.BenchConfig, records []metrics.RunRecord) error {
	titleColor := color.New(color.FgCyan, color.Bold)
	titleColor.Fprintf(out, "Throughput over %d runs\n", len(records))

	table := tablewriter.NewTable(out,
		tablewriter.WithHeader([]string{"Config", "Goroutines", "Budget", "Horizon", "Seed window", "Rollouts", "Rollouts/ms", "Full playouts", "Choices", "Top action"}),
	)
	for _, s := range Summarize(configs, records) {
		row := []string{
			fmt.Sprintf("%d", s.Config.ID),
			fmt.Sprintf("%d", s.Config.Goroutines),
			s.Config.Duration.String(),
			fmt.Sprintf("%d", s.Config.Horizon),
			s.Config.SeedWindow,
			fmt.Sprintf("%.0f", s.MeanRollouts),
			fmt.Sprintf("%.1f", s.RolloutsPerMs),
			fmt.Sprintf("%.1f%%", 100*s.FullPlayouts),
			fmt.Sprintf("%.1f", s.MeanChoices),
			s.TopAction,
		}
		if err := table.Append(row); err != nil {
			return fmt.Errorf("failed to append row: %w", err)
		}
	}
	return table.Render()
}
