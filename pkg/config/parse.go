package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/kalepail/blendizzard/internal/curve"
)

// ParseConfigYAML parses a Config from YAML bytes, fills unset fields from
// the defaults, and validates the result. Malformed configurations fail here,
// before any evaluation runs.
func ParseConfigYAML(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config yaml: %w", err)
	}

	applyDefaults(cfg)

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// ParseConfigYAMLString parses a Config from a YAML string and validates it.
func ParseConfigYAMLString(yamlText string) (*Config, error) {
	return ParseConfigYAML([]byte(yamlText))
}

// applyDefaults fills fields yaml.Unmarshal may have zeroed when a section
// was present but a scalar was omitted.
func applyDefaults(cfg *Config) {
	def := Default()
	if cfg.LogLevel == "" {
		cfg.LogLevel = def.LogLevel
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = def.OutputDir
	}
	if cfg.Simulation.Peak == 0 {
		cfg.Simulation.Peak = def.Simulation.Peak
	}
	if cfg.Visualization.Peak == 0 {
		cfg.Visualization.Peak = def.Visualization.Peak
	}
	if cfg.Visualization.Samples == 0 {
		cfg.Visualization.Samples = def.Visualization.Samples
	}
	if len(cfg.Visualization.HeatmapCurves) == 0 {
		cfg.Visualization.HeatmapCurves = def.Visualization.HeatmapCurves
	}
	if len(cfg.Optimization.Peaks) == 0 {
		cfg.Optimization.Peaks = def.Optimization.Peaks
	}
	if len(cfg.Optimization.Ceilings) == 0 {
		cfg.Optimization.Ceilings = def.Optimization.Ceilings
	}
}

// validateConfig performs validation on the configuration.
func validateConfig(cfg *Config) error {
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[cfg.LogLevel] {
		return fmt.Errorf("invalid log_level: %s (must be debug, info, warn, or error)", cfg.LogLevel)
	}

	if err := validateBounds(&cfg.Bounds); err != nil {
		return fmt.Errorf("bounds validation failed: %w", err)
	}

	if cfg.Simulation.Peak < 1.0 {
		return fmt.Errorf("simulation.peak must be >= 1.0, got %v", cfg.Simulation.Peak)
	}

	if err := validateOptimization(&cfg.Optimization, &cfg.Bounds); err != nil {
		return fmt.Errorf("optimization validation failed: %w", err)
	}

	if err := validateVisualization(&cfg.Visualization); err != nil {
		return fmt.Errorf("visualization validation failed: %w", err)
	}

	return nil
}

// validateBounds checks each axis has a positive target strictly below its
// max; the piecewise segment slopes divide by max-target.
func validateBounds(b *BoundsConfig) error {
	if _, err := curve.NewBounds(b.TargetAmountUSD, b.MaxAmountUSD); err != nil {
		return fmt.Errorf("amount axis: %w", err)
	}
	if _, err := curve.NewBounds(b.TargetTimeDays, b.MaxTimeDays); err != nil {
		return fmt.Errorf("time axis: %w", err)
	}
	return nil
}

// validateOptimization validates the sweep grid.
func validateOptimization(o *OptimizationConfig, b *BoundsConfig) error {
	if len(o.Peaks) == 0 {
		return fmt.Errorf("at least one peak value must be defined")
	}
	for i, peak := range o.Peaks {
		if peak < 1.0 {
			return fmt.Errorf("peak %d: must be >= 1.0, got %v", i, peak)
		}
	}

	if len(o.Ceilings) == 0 {
		return fmt.Errorf("at least one ceiling configuration must be defined")
	}
	labels := make(map[string]bool)
	for i, c := range o.Ceilings {
		if c.Label == "" {
			return fmt.Errorf("ceiling %d: label cannot be empty", i)
		}
		if labels[c.Label] {
			return fmt.Errorf("duplicate ceiling label: %s", c.Label)
		}
		labels[c.Label] = true
		if _, err := curve.NewBounds(b.TargetAmountUSD, c.MaxAmountUSD); err != nil {
			return fmt.Errorf("ceiling %q amount axis: %w", c.Label, err)
		}
		if _, err := curve.NewBounds(b.TargetTimeDays, c.MaxTimeDays); err != nil {
			return fmt.Errorf("ceiling %q time axis: %w", c.Label, err)
		}
	}
	return nil
}

// validateVisualization validates plot settings, including that every
// requested heatmap curve names a known family.
func validateVisualization(v *VisualizationConfig) error {
	if v.Peak < 1.0 {
		return fmt.Errorf("peak must be >= 1.0, got %v", v.Peak)
	}
	if v.Samples < 2 {
		return fmt.Errorf("samples must be >= 2, got %d", v.Samples)
	}
	for _, key := range v.HeatmapCurves {
		if _, err := curve.ParseFamily(key); err != nil {
			return err
		}
	}
	return nil
}
