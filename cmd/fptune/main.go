// Command fptune tunes the faction point multiplier curves: it compares the
// candidate curve families across player scenarios, grid-searches peak and
// ceiling configurations for the best-scoring setup, and renders the curve
// landscape as plots.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kalepail/blendizzard/internal/curve"
	"github.com/kalepail/blendizzard/internal/report"
	"github.com/kalepail/blendizzard/internal/reward"
	"github.com/kalepail/blendizzard/internal/tuning"
	"github.com/kalepail/blendizzard/internal/viz"
	"github.com/kalepail/blendizzard/pkg/config"
	"github.com/kalepail/blendizzard/pkg/logger"
)

const usage = `Usage: fptune [flags] <command>

Commands:
  simulate    compare all curve families across the scenario battery
  optimize    grid-search peak and ceiling configurations and rank them
  visualize   render curve and efficiency plots
  all         run simulate, optimize, and visualize

Flags:
`

func main() {
	var configPath string
	var logLevel string
	var outputDir string
	var topN int

	flag.StringVar(&configPath, "config", "", "path to YAML config (defaults apply when empty)")
	flag.StringVar(&logLevel, "log-level", "", "log level override (debug, info, warn, error)")
	flag.StringVar(&outputDir, "out", "", "output directory override for CSV and plot artifacts")
	flag.IntVar(&topN, "top", 5, "number of ranked configurations to detail")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fptune: %v\n", err)
		os.Exit(1)
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if outputDir != "" {
		cfg.OutputDir = outputDir
	}

	logger.SetDefault(logger.NewText(cfg.LogLevel, os.Stderr))

	command := flag.Arg(0)
	if command == "" {
		command = "all"
	}

	if err := run(command, cfg, topN); err != nil {
		logger.Error("command failed", "command", command, "error", err)
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.LoadConfig(path)
}

func run(command string, cfg *config.Config, topN int) error {
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output dir %s: %w", cfg.OutputDir, err)
	}

	switch command {
	case "simulate":
		return runSimulate(cfg)
	case "optimize":
		return runOptimize(cfg, topN)
	case "visualize":
		return runVisualize(cfg)
	case "all":
		if err := runSimulate(cfg); err != nil {
			return err
		}
		if err := runOptimize(cfg, topN); err != nil {
			return err
		}
		return runVisualize(cfg)
	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

func bounds(cfg *config.Config) (amount, time curve.Bounds, err error) {
	amount, err = curve.NewBounds(cfg.Bounds.TargetAmountUSD, cfg.Bounds.MaxAmountUSD)
	if err != nil {
		return amount, time, fmt.Errorf("invalid amount bounds: %w", err)
	}
	time, err = curve.NewBounds(cfg.Bounds.TargetTimeDays, cfg.Bounds.MaxTimeDays)
	if err != nil {
		return amount, time, fmt.Errorf("invalid time bounds: %w", err)
	}
	return amount, time, nil
}

func runSimulate(cfg *config.Config) error {
	amountBounds, timeBounds, err := bounds(cfg)
	if err != nil {
		return err
	}

	peak := cfg.Simulation.Peak
	logger.Info("comparing curve families",
		"peak", peak, "scenarios", len(reward.ComparisonScenarios()))

	comparisons := tuning.CompareFamilies(peak, reward.ComparisonScenarios(), amountBounds, timeBounds)
	if err := report.WriteAnalysisReport(os.Stdout, comparisons); err != nil {
		return err
	}

	section := fmt.Sprintf("PEAK MULTIPLIER SENSITIVITY (%s)", curve.Smooth.DisplayName())
	fmt.Println(section)
	sensitivity := tuning.PeakSensitivity(curve.Smooth, cfg.Optimization.Peaks, amountBounds, timeBounds)
	report.WritePeakSensitivityTable(os.Stdout, sensitivity)

	csvPath := filepath.Join(cfg.OutputDir, "comparison.csv")
	f, err := os.Create(csvPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", csvPath, err)
	}
	defer f.Close()
	if err := report.WriteComparisonCSV(f, comparisons); err != nil {
		return err
	}

	logger.Info("comparison written", "csv", csvPath)
	return nil
}

func runOptimize(cfg *config.Config, topN int) error {
	ceilings := make([]tuning.Ceiling, len(cfg.Optimization.Ceilings))
	for i, c := range cfg.Optimization.Ceilings {
		ceilings[i] = tuning.Ceiling{
			MaxAmountUSD: c.MaxAmountUSD,
			MaxTimeDays:  c.MaxTimeDays,
			Label:        c.Label,
		}
	}

	opts := tuning.Options{
		TargetAmountUSD: cfg.Bounds.TargetAmountUSD,
		TargetTimeDays:  cfg.Bounds.TargetTimeDays,
	}

	logger.Info("running configuration sweep",
		"peaks", len(cfg.Optimization.Peaks), "ceilings", len(ceilings))

	result := tuning.Sweep(cfg.Optimization.Peaks, ceilings, opts)
	if len(result.Ranked) == 0 {
		report.WriteSweepFailures(os.Stdout, result.Failures)
		return fmt.Errorf("no configuration could be scored")
	}

	fmt.Println("CONFIGURATION RANKING")
	report.WriteRankingTable(os.Stdout, result.Ranked, topN)
	fmt.Println()

	for i, s := range result.Ranked {
		if i >= topN {
			break
		}
		report.WriteScoreBreakdown(os.Stdout, i+1, s)
		fmt.Println()
	}
	report.WriteSweepFailures(os.Stdout, result.Failures)

	csvPath := filepath.Join(cfg.OutputDir, "ranking.csv")
	f, err := os.Create(csvPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", csvPath, err)
	}
	defer f.Close()
	if err := report.WriteRankingCSV(f, result.Ranked); err != nil {
		return err
	}

	best := result.Ranked[0]
	logger.Info("sweep complete",
		"best_peak", best.Peak, "best_ceiling", best.Ceiling.Label,
		"best_score", best.TotalScore, "csv", csvPath)
	return nil
}

func runVisualize(cfg *config.Config) error {
	amountBounds, timeBounds, err := bounds(cfg)
	if err != nil {
		return err
	}

	families := make([]curve.Family, len(cfg.Visualization.HeatmapCurves))
	for i, key := range cfg.Visualization.HeatmapCurves {
		family, err := curve.ParseFamily(key)
		if err != nil {
			return err
		}
		families[i] = family
	}

	opts := viz.Options{
		Peak:         cfg.Visualization.Peak,
		AmountBounds: amountBounds,
		TimeBounds:   timeBounds,
		Samples:      cfg.Visualization.Samples,
	}

	written, err := viz.RenderAll(cfg.OutputDir, families, opts)
	for _, path := range written {
		logger.Info("plot written", "path", path)
	}
	if err != nil {
		return fmt.Errorf("plot rendering failed: %w", err)
	}
	return nil
}
