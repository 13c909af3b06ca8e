package viz

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/kalepail/blendizzard/internal/curve"
)

func testOptions() Options {
	return Options{
		Peak:         5.0,
		AmountBounds: curve.DefaultAmountBounds,
		TimeBounds:   curve.DefaultTimeBounds,
		Samples:      16,
	}
}

func TestOptionsWithDefaults(t *testing.T) {
	opts := Options{}.withDefaults()
	if opts.Peak != 5.0 {
		t.Fatalf("expected default peak 5.0, got %v", opts.Peak)
	}
	if opts.AmountBounds != curve.DefaultAmountBounds || opts.TimeBounds != curve.DefaultTimeBounds {
		t.Fatalf("expected default bounds, got %+v", opts)
	}
	if opts.Samples != 200 {
		t.Fatalf("expected default samples 200, got %d", opts.Samples)
	}
}

func TestEfficiencyGrid(t *testing.T) {
	opts := testOptions()
	grid := newEfficiencyGrid(curve.Smooth, opts)

	cols, rows := grid.Dims()
	if cols != opts.Samples || rows != opts.Samples {
		t.Fatalf("expected %dx%d grid, got %dx%d", opts.Samples, opts.Samples, cols, rows)
	}
	if grid.X(0) != 0 || grid.X(cols-1) != opts.AmountBounds.Max {
		t.Fatalf("amount axis should span [0, max]: %v..%v", grid.X(0), grid.X(cols-1))
	}
	if grid.Y(0) != 0 || grid.Y(rows-1) != opts.TimeBounds.Max {
		t.Fatalf("time axis should span [0, max]: %v..%v", grid.Y(0), grid.Y(rows-1))
	}

	// The floor cell is base efficiency; every cell stays at or above it.
	floor := grid.Z(0, 0)
	if math.Abs(floor-100) > 1e-9 {
		t.Fatalf("expected floor efficiency 100, got %v", floor)
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if grid.Z(c, r) < floor {
				t.Fatalf("cell (%d,%d) below floor: %v", c, r, grid.Z(c, r))
			}
		}
	}
}

func TestMultiplierCurvePlot(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "amount.png")

	if err := MultiplierCurvePlot(path, curve.AxisAmount, testOptions()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("plot not written: %v", err)
	}
	if info.Size() == 0 {
		t.Fatalf("plot file is empty")
	}
}

func TestRenderAll(t *testing.T) {
	dir := t.TempDir()

	written, err := RenderAll(dir, []curve.Family{curve.Gaussian, curve.Smooth}, testOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{
		"amount_multipliers.png",
		"time_multipliers.png",
		"efficiency_vs_amount.png",
		"efficiency_vs_time.png",
		"heatmap_gaussian.png",
		"heatmap_smooth.png",
	}
	if len(written) != len(want) {
		t.Fatalf("expected %d plots, got %d", len(want), len(written))
	}
	for i, name := range want {
		if written[i] != filepath.Join(dir, name) {
			t.Fatalf("expected %s at %d, got %s", name, i, written[i])
		}
		if _, err := os.Stat(written[i]); err != nil {
			t.Fatalf("plot %s not written: %v", name, err)
		}
	}
}
