package viz

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/kalepail/blendizzard/internal/curve"
	"github.com/kalepail/blendizzard/internal/reward"
)

// efficiencyGrid is the FP-efficiency surface for one family, sampled on a
// regular (amount, time) grid. Implements plotter.GridXYZ.
type efficiencyGrid struct {
	amounts []float64
	times   []float64
	z       []float64 // row-major, len = len(times)*len(amounts)
}

func newEfficiencyGrid(family curve.Family, opts Options) efficiencyGrid {
	g := efficiencyGrid{
		amounts: span(opts.Samples, 0, opts.AmountBounds.Max),
		times:   span(opts.Samples, 0, opts.TimeBounds.Max),
	}
	g.z = make([]float64, len(g.times)*len(g.amounts))

	funcs := family.Funcs(opts.AmountBounds, opts.TimeBounds)
	for r, days := range g.times {
		for c, amount := range g.amounts {
			g.z[r*len(g.amounts)+c] = reward.BaseFPPerDollar * funcs.Combined(amount, days, opts.Peak)
		}
	}
	return g
}

func (g efficiencyGrid) Dims() (c, r int)   { return len(g.amounts), len(g.times) }
func (g efficiencyGrid) Z(c, r int) float64 { return g.z[r*len(g.amounts)+c] }
func (g efficiencyGrid) X(c int) float64    { return g.amounts[c] }
func (g efficiencyGrid) Y(r int) float64    { return g.times[r] }

// HeatmapPlot renders one family's FP efficiency over the whole
// (amount, time) plane, with the sweet spot marked.
func HeatmapPlot(path string, family curve.Family, opts Options) error {
	opts = opts.withDefaults()

	grid := newEfficiencyGrid(family, opts)
	heatmap := plotter.NewHeatMap(grid, moreland.SmoothBlueRed().Palette(255))

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s: FP Efficiency Heatmap (Peak = %.1fx)", family.DisplayName(), opts.Peak)
	p.X.Label.Text = "Deposit Amount (USD)"
	p.Y.Label.Text = "Time Held (Days)"
	p.Add(heatmap)

	sweetSpot, err := plotter.NewScatter(plotter.XYs{{X: opts.AmountBounds.Target, Y: opts.TimeBounds.Target}})
	if err != nil {
		return fmt.Errorf("failed to build sweet spot marker: %w", err)
	}
	sweetSpot.GlyphStyle.Shape = draw.CrossGlyph{}
	sweetSpot.GlyphStyle.Radius = vg.Points(6)
	sweetSpot.GlyphStyle.Color = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	p.Add(sweetSpot)
	p.Legend.Add("Sweet Spot", sweetSpot)
	p.Legend.Top = true

	if err := p.Save(10*vg.Inch, 8*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save heatmap %s: %w", path, err)
	}
	return nil
}
