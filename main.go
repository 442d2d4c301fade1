package main

import (
	"fmt"
	"os"
	"photosynthesis/agent"
	"photosynthesis/communication"
	"photosynthesis/config"
	"photosynthesis/engine"
	"photosynthesis/experiments"
	"photosynthesis/experiments/metrics"
	"photosynthesis/searcher"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	configFile string
	budget     time.Duration
	horizon    int
	goroutines int
	rollouts   int
	seed       uint64
	seedWindow string
	logLevel   string
	metricsDir string
	benchDir   string
	runs       int
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	rootCmd := &cobra.Command{
		Use:   "photosynthesis",
		Short: "Rollout planning bot for the Photosynthesis referee protocol",
		Long: `Reads the board and every turn from stdin and answers each turn on
stdout with the action whose randomized rollouts score best.`,
		SilenceUsage: true,
		RunE:         runBot,
	}
	bindPlannerFlags(rootCmd.PersistentFlags())
	rootCmd.Flags().StringVarP(&metricsDir, "metrics", "m", "", "Directory to store per turn search metrics")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "Measure planner throughput on the opening position",
		RunE:  runBench,
	}
	benchCmd.Flags().IntVarP(&runs, "runs", "n", experiments.NumRuns, "Plans per config")
	benchCmd.Flags().StringVarP(&benchDir, "out", "o", "experiments", "Directory to store the results")
	rootCmd.AddCommand(benchCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Fatal().Err(err).Msg("bot stopped")
	}
}

func bindPlannerFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&configFile, "config", "c", "", "Path to YAML config file")
	flags.DurationVarP(&budget, "budget", "b", config.DefaultBudget, "Thinking time per turn")
	flags.IntVar(&horizon, "horizon", config.DefaultHorizon, "Days simulated past the current one")
	flags.IntVarP(&goroutines, "goroutines", "g", config.DefaultGoroutines, "Parallel rollout workers")
	flags.IntVarP(&rollouts, "rollouts", "r", 0, "Fixed rollouts per turn instead of a time budget")
	flags.Uint64VarP(&seed, "seed", "s", 0, "Random seed, 0 for a time derived one")
	flags.StringVar(&seedWindow, "seed-window", config.DefaultSeedWindow, "When to draw the seeding cutoff day: per_ply or per_rollout")
	flags.StringVarP(&logLevel, "log-level", "l", config.DefaultLogLevel, "Log level")
}

// loadConfig reads the config file and applies the flags set on the command line.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("budget") {
		cfg.Budget = budget
	}
	if flags.Changed("horizon") {
		cfg.Horizon = horizon
	}
	if flags.Changed("goroutines") {
		cfg.Goroutines = goroutines
	}
	if flags.Changed("rollouts") {
		cfg.Rollouts = rollouts
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("seed-window") {
		cfg.SeedWindow = seedWindow
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	zerolog.SetGlobalLevel(cfg.Level())
	return cfg, nil
}

func createPlanner(cfg config.Config) (*searcher.Planner, error) {
	mode, err := searcher.ParseSeedWindowMode(cfg.SeedWindow)
	if err != nil {
		return nil, err
	}
	options := []searcher.Option{
		searcher.WithDuration(cfg.Budget),
		searcher.WithHorizon(cfg.Horizon),
		searcher.WithGoroutines(cfg.Goroutines),
		searcher.WithSeedWindow(mode),
		searcher.WithMetrics(),
	}
	if cfg.Rollouts > 0 {
		options = append(options, searcher.WithRollouts(cfg.Rollouts))
	}
	if cfg.Seed != 0 {
		options = append(options, searcher.WithSeed(cfg.Seed))
	}
	return searcher.NewPlanner(options...), nil
}

func runBot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	planner, err := createPlanner(cfg)
	if err != nil {
		return err
	}
	log.Info().Msgf("starting bot with %+v", cfg)

	comm := communication.NewStdioCommunicator(os.Stdin, os.Stdout)
	e := engine.NewLocalEngine(comm, agent.NewEvaluationAgent(planner))
	turnMetrics, err := e.Run()
	if err != nil {
		return err
	}

	if metricsDir == "" {
		return nil
	}
	writer, err := metrics.NewWriter(metricsDir, "game")
	if err != nil {
		return err
	}
	if err := writer.WriteTurnMetrics(turnMetrics); err != nil {
		return err
	}
	log.Info().Msgf("stored turn metrics in %s", writer.Dir())
	return nil
}

func runBench(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	configs := make([]metrics.BenchConfig, len(experiments.ThroughputConfigs))
	copy(configs, experiments.ThroughputConfigs)
	if cmd.Flags().Changed("budget") || configFile != "" {
		for i := range configs {
			configs[i].Duration = cfg.Budget
		}
	}
	return experiments.RunThroughputExperiment(benchDir, configs, runs, cfg.Seed, os.Stdout)
}
