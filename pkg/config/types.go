// Package config defines the YAML configuration for the FP multiplier
// tuning tools: domain bounds, simulation settings, the optimization sweep
// grid, and visualization output.
package config

// Config is the root configuration for the fptune CLI.
type Config struct {
	LogLevel      string              `yaml:"log_level"`
	OutputDir     string              `yaml:"output_dir"`
	Bounds        BoundsConfig        `yaml:"bounds"`
	Simulation    SimulationConfig    `yaml:"simulation"`
	Optimization  OptimizationConfig  `yaml:"optimization"`
	Visualization VisualizationConfig `yaml:"visualization"`
}

// BoundsConfig holds the sweet-spot targets and domain ceilings for both
// axes. The optimization sweep overrides the ceilings per tested
// configuration; the targets are shared by every component.
type BoundsConfig struct {
	TargetAmountUSD float64 `yaml:"target_amount_usd"`
	MaxAmountUSD    float64 `yaml:"max_amount_usd"`
	TargetTimeDays  float64 `yaml:"target_time_days"`
	MaxTimeDays     float64 `yaml:"max_time_days"`
}

// SimulationConfig configures the multi-family comparison run.
type SimulationConfig struct {
	Peak float64 `yaml:"peak"`
}

// OptimizationConfig configures the grid-search scoring sweep.
type OptimizationConfig struct {
	Peaks    []float64       `yaml:"peaks"`
	Ceilings []CeilingConfig `yaml:"ceilings"`
}

// CeilingConfig is one ceiling configuration under test: the per-axis maxima
// and a human-readable label carried into reports.
type CeilingConfig struct {
	MaxAmountUSD float64 `yaml:"max_amount_usd"`
	MaxTimeDays  float64 `yaml:"max_time_days"`
	Label        string  `yaml:"label"`
}

// VisualizationConfig configures plot rendering.
type VisualizationConfig struct {
	Peak          float64  `yaml:"peak"`
	HeatmapCurves []string `yaml:"heatmap_curves"`
	Samples       int      `yaml:"samples"`
}

// Default returns the configuration used when no config file is provided:
// the canonical $1k/35d sweet spot, $100k/350d ceilings, peaks 3-8, and the
// tight/medium/wide ceiling grid.
func Default() *Config {
	return &Config{
		LogLevel:  "info",
		OutputDir: "out",
		Bounds: BoundsConfig{
			TargetAmountUSD: 1_000,
			MaxAmountUSD:    100_000,
			TargetTimeDays:  35,
			MaxTimeDays:     350,
		},
		Simulation: SimulationConfig{Peak: 5.0},
		Optimization: OptimizationConfig{
			Peaks: []float64{3.0, 4.0, 5.0, 6.0, 7.0, 8.0},
			Ceilings: []CeilingConfig{
				{MaxAmountUSD: 10_000, MaxTimeDays: 245, Label: "Tight (5-35w, $1k-$10k)"},
				{MaxAmountUSD: 50_000, MaxTimeDays: 280, Label: "Medium ($1k-$50k, 5-40w)"},
				{MaxAmountUSD: 100_000, MaxTimeDays: 350, Label: "Wide ($1k-$100k, 5-50w)"},
			},
		},
		Visualization: VisualizationConfig{
			Peak:          5.0,
			HeatmapCurves: []string{"gaussian", "smooth", "current"},
			Samples:       200,
		},
	}
}
