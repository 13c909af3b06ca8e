// Package viz renders the multiplier curves and efficiency landscape as PNG
// artifacts: per-family curve overlays for each axis, efficiency sections
// through the sweet spot, and FP-efficiency heatmaps over the full
// (amount, time) plane.
package viz

import (
	"fmt"
	"image/color"
	"path/filepath"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/kalepail/blendizzard/internal/curve"
	"github.com/kalepail/blendizzard/internal/reward"
)

// Options configures plot rendering. The zero value selects the default
// bounds, a 5.0x peak, and 200 samples per axis.
type Options struct {
	Peak         float64
	AmountBounds curve.Bounds
	TimeBounds   curve.Bounds
	Samples      int
}

func (o Options) withDefaults() Options {
	if o.Peak == 0 {
		o.Peak = 5.0
	}
	if o.AmountBounds == (curve.Bounds{}) {
		o.AmountBounds = curve.DefaultAmountBounds
	}
	if o.TimeBounds == (curve.Bounds{}) {
		o.TimeBounds = curve.DefaultTimeBounds
	}
	if o.Samples < 2 {
		o.Samples = 200
	}
	return o
}

func span(n int, lo, hi float64) []float64 {
	return floats.Span(make([]float64, n), lo, hi)
}

var (
	targetLineColor = color.RGBA{G: 128, A: 255}
	maxLineColor    = color.RGBA{R: 200, A: 255}
	peakLineColor   = color.RGBA{R: 128, G: 128, B: 128, A: 255}
)

func referenceLine(p *plot.Plot, xys plotter.XYs, c color.Color, name string) error {
	line, err := plotter.NewLine(xys)
	if err != nil {
		return fmt.Errorf("failed to build reference line %q: %w", name, err)
	}
	line.Color = c
	line.Dashes = []vg.Length{vg.Points(4), vg.Points(4)}
	p.Add(line)
	p.Legend.Add(name, line)
	return nil
}

func axisReferences(p *plot.Plot, b curve.Bounds, yMin, yMax, peak float64) error {
	if err := referenceLine(p, plotter.XYs{{X: b.Target, Y: yMin}, {X: b.Target, Y: yMax}}, targetLineColor, "Target"); err != nil {
		return err
	}
	if err := referenceLine(p, plotter.XYs{{X: b.Max, Y: yMin}, {X: b.Max, Y: yMax}}, maxLineColor, "Max"); err != nil {
		return err
	}
	if peak > 0 {
		if err := referenceLine(p, plotter.XYs{{X: 0, Y: peak}, {X: b.Max, Y: peak}}, peakLineColor, fmt.Sprintf("Peak (%.1fx)", peak)); err != nil {
			return err
		}
	}
	return nil
}

// MultiplierCurvePlot renders every family's multiplier over one axis.
func MultiplierCurvePlot(path string, axis curve.Axis, opts Options) error {
	opts = opts.withDefaults()

	bounds := opts.AmountBounds
	title := fmt.Sprintf("Amount Multiplier Comparison (Peak = %.1fx)", opts.Peak)
	xLabel := "Deposit Amount (USD)"
	yLabel := "Amount Multiplier"
	if axis == curve.AxisTime {
		bounds = opts.TimeBounds
		title = fmt.Sprintf("Time Multiplier Comparison (Peak = %.1fx)", opts.Peak)
		xLabel = "Time Held (Days)"
		yLabel = "Time Multiplier"
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.Legend.Top = true

	values := span(opts.Samples, 0, bounds.Max)
	for i, family := range curve.Families() {
		funcs := family.Funcs(opts.AmountBounds, opts.TimeBounds)
		eval := funcs.Amount
		if axis == curve.AxisTime {
			eval = funcs.Time
		}

		xys := make(plotter.XYs, len(values))
		for j, v := range values {
			xys[j].X = v
			xys[j].Y = eval(v, opts.Peak)
		}

		line, err := plotter.NewLine(xys)
		if err != nil {
			return fmt.Errorf("failed to build %s curve line: %w", family, err)
		}
		line.Color = plotutil.Color(i)
		line.Width = vg.Points(1.5)
		p.Add(line)
		p.Legend.Add(funcs.Name, line)
	}

	if err := axisReferences(p, bounds, 1.0, opts.Peak, opts.Peak); err != nil {
		return err
	}

	if err := p.Save(12*vg.Inch, 7*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save plot %s: %w", path, err)
	}
	return nil
}

// EfficiencySectionPlot renders FP efficiency against one axis, holding the
// other axis at its target.
func EfficiencySectionPlot(path string, axis curve.Axis, opts Options) error {
	opts = opts.withDefaults()

	bounds := opts.AmountBounds
	title := fmt.Sprintf("FP Efficiency vs Amount @ %.0f days (Peak = %.1fx)", opts.TimeBounds.Target, opts.Peak)
	xLabel := "Deposit Amount (USD)"
	if axis == curve.AxisTime {
		bounds = opts.TimeBounds
		title = fmt.Sprintf("FP Efficiency vs Time @ $%.0f (Peak = %.1fx)", opts.AmountBounds.Target, opts.Peak)
		xLabel = "Time Held (Days)"
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = "FP Efficiency (FP per $1)"
	p.Legend.Top = true

	values := span(opts.Samples, 0, bounds.Max)
	maxEfficiency := 0.0
	for i, family := range curve.Families() {
		funcs := family.Funcs(opts.AmountBounds, opts.TimeBounds)

		xys := make(plotter.XYs, len(values))
		for j, v := range values {
			amount, days := v, opts.TimeBounds.Target
			if axis == curve.AxisTime {
				amount, days = opts.AmountBounds.Target, v
			}
			// Efficiency is amount-independent: base FP is 100/$, so
			// FP/$ = 100 * combined.
			efficiency := reward.BaseFPPerDollar * funcs.Combined(amount, days, opts.Peak)
			xys[j].X = v
			xys[j].Y = efficiency
			if efficiency > maxEfficiency {
				maxEfficiency = efficiency
			}
		}

		line, err := plotter.NewLine(xys)
		if err != nil {
			return fmt.Errorf("failed to build %s efficiency line: %w", family, err)
		}
		line.Color = plotutil.Color(i)
		line.Width = vg.Points(1.5)
		p.Add(line)
		p.Legend.Add(funcs.Name, line)
	}

	if err := axisReferences(p, bounds, 0, maxEfficiency, 0); err != nil {
		return err
	}

	if err := p.Save(12*vg.Inch, 7*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save plot %s: %w", path, err)
	}
	return nil
}

// RenderAll writes the full plot set into outDir: both multiplier curve
// overlays, both efficiency sections, and a heatmap per requested family.
// Returns the paths written.
func RenderAll(outDir string, heatmapFamilies []curve.Family, opts Options) ([]string, error) {
	opts = opts.withDefaults()

	type job struct {
		path   string
		render func(string) error
	}

	jobs := []job{
		{"amount_multipliers.png", func(p string) error { return MultiplierCurvePlot(p, curve.AxisAmount, opts) }},
		{"time_multipliers.png", func(p string) error { return MultiplierCurvePlot(p, curve.AxisTime, opts) }},
		{"efficiency_vs_amount.png", func(p string) error { return EfficiencySectionPlot(p, curve.AxisAmount, opts) }},
		{"efficiency_vs_time.png", func(p string) error { return EfficiencySectionPlot(p, curve.AxisTime, opts) }},
	}
	for _, family := range heatmapFamilies {
		f := family
		jobs = append(jobs, job{
			fmt.Sprintf("heatmap_%s.png", f.Key()),
			func(p string) error { return HeatmapPlot(p, f, opts) },
		})
	}

	written := make([]string, 0, len(jobs))
	for _, j := range jobs {
		path := filepath.Join(outDir, j.path)
		if err := j.render(path); err != nil {
			return written, err
		}
		written = append(written, path)
	}
	return written, nil
}
