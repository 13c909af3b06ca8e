//go:build integration
// +build integration

package integration_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/kalepail/blendizzard/internal/curve"
	"github.com/kalepail/blendizzard/internal/report"
	"github.com/kalepail/blendizzard/internal/reward"
	"github.com/kalepail/blendizzard/internal/tuning"
	"github.com/kalepail/blendizzard/internal/viz"
	"github.com/kalepail/blendizzard/pkg/config"
)

func loadRepoConfig(t *testing.T) *config.Config {
	t.Helper()
	cfgPath := filepath.Join("..", "..", "config", "config.yaml")
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		t.Fatalf("failed to load repo config: %v", err)
	}
	return cfg
}

func TestIntegration_RepoConfigMatchesDefaults(t *testing.T) {
	cfg := loadRepoConfig(t)
	def := config.Default()

	if cfg.Bounds != def.Bounds {
		t.Fatalf("repo config bounds drifted from defaults: %+v vs %+v", cfg.Bounds, def.Bounds)
	}
	if len(cfg.Optimization.Peaks) != len(def.Optimization.Peaks) {
		t.Fatalf("repo config peak grid drifted: %v vs %v",
			cfg.Optimization.Peaks, def.Optimization.Peaks)
	}
	if len(cfg.Optimization.Ceilings) != len(def.Optimization.Ceilings) {
		t.Fatalf("repo config ceiling grid drifted")
	}
}

func TestIntegration_FullTuningPipeline(t *testing.T) {
	cfg := loadRepoConfig(t)

	amountBounds, err := curve.NewBounds(cfg.Bounds.TargetAmountUSD, cfg.Bounds.MaxAmountUSD)
	if err != nil {
		t.Fatalf("invalid amount bounds: %v", err)
	}
	timeBounds, err := curve.NewBounds(cfg.Bounds.TargetTimeDays, cfg.Bounds.MaxTimeDays)
	if err != nil {
		t.Fatalf("invalid time bounds: %v", err)
	}

	// Family comparison end to end: battery -> analyses -> composed report.
	comparisons := tuning.CompareFamilies(cfg.Simulation.Peak, reward.ComparisonScenarios(), amountBounds, timeBounds)
	var reportBuf bytes.Buffer
	if err := report.WriteAnalysisReport(&reportBuf, comparisons); err != nil {
		t.Fatalf("analysis report failed: %v", err)
	}
	if reportBuf.Len() == 0 {
		t.Fatalf("analysis report produced no output")
	}

	// Grid sweep end to end: every configured pair must be scoreable.
	ceilings := make([]tuning.Ceiling, len(cfg.Optimization.Ceilings))
	for i, c := range cfg.Optimization.Ceilings {
		ceilings[i] = tuning.Ceiling{MaxAmountUSD: c.MaxAmountUSD, MaxTimeDays: c.MaxTimeDays, Label: c.Label}
	}
	opts := tuning.Options{
		TargetAmountUSD: cfg.Bounds.TargetAmountUSD,
		TargetTimeDays:  cfg.Bounds.TargetTimeDays,
	}

	result := tuning.Sweep(cfg.Optimization.Peaks, ceilings, opts)
	if len(result.Failures) != 0 {
		t.Fatalf("default grid produced failures: %+v", result.Failures)
	}
	wantConfigs := len(cfg.Optimization.Peaks) * len(ceilings)
	if len(result.Ranked) != wantConfigs {
		t.Fatalf("expected %d ranked configurations, got %d", wantConfigs, len(result.Ranked))
	}

	var csvBuf bytes.Buffer
	if err := report.WriteRankingCSV(&csvBuf, result.Ranked); err != nil {
		t.Fatalf("ranking csv failed: %v", err)
	}

	// Re-running the sweep must reproduce the ranking byte for byte.
	var csvBuf2 bytes.Buffer
	if err := report.WriteRankingCSV(&csvBuf2, tuning.Sweep(cfg.Optimization.Peaks, ceilings, opts).Ranked); err != nil {
		t.Fatalf("second ranking csv failed: %v", err)
	}
	if !bytes.Equal(csvBuf.Bytes(), csvBuf2.Bytes()) {
		t.Fatalf("sweep is not deterministic")
	}
}

func TestIntegration_VisualizationArtifacts(t *testing.T) {
	cfg := loadRepoConfig(t)
	dir := t.TempDir()

	families := make([]curve.Family, len(cfg.Visualization.HeatmapCurves))
	for i, key := range cfg.Visualization.HeatmapCurves {
		family, err := curve.ParseFamily(key)
		if err != nil {
			t.Fatalf("repo config names unknown curve %q: %v", key, err)
		}
		families[i] = family
	}

	written, err := viz.RenderAll(dir, families, viz.Options{
		Peak:    cfg.Visualization.Peak,
		Samples: 32,
	})
	if err != nil {
		t.Fatalf("plot rendering failed: %v", err)
	}
	for _, path := range written {
		info, statErr := os.Stat(path)
		if statErr != nil {
			t.Fatalf("artifact %s missing: %v", path, statErr)
		}
		if info.Size() == 0 {
			t.Fatalf("artifact %s is empty", path)
		}
	}
}
