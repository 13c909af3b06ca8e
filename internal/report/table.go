// Package report renders the tuning results for humans: grid tables on the
// terminal, CSV exports, and the composed analysis report. Everything here
// is a pure adapter over the structured results the tuning package exposes.
package report

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/kalepail/blendizzard/internal/curve"
	"github.com/kalepail/blendizzard/internal/tuning"
)

// fpPrinter formats faction-point totals with thousands separators.
var fpPrinter = message.NewPrinter(language.English)

// ComparisonMetric selects which column of the family comparison a table
// displays.
type ComparisonMetric int

const (
	// MetricFinalFP shows the final faction-point award.
	MetricFinalFP ComparisonMetric = iota
	// MetricMultiplier shows the combined multiplier.
	MetricMultiplier
	// MetricEfficiency shows FP per dollar deposited.
	MetricEfficiency
)

// Title returns the table heading for the metric.
func (m ComparisonMetric) Title() string {
	switch m {
	case MetricFinalFP:
		return "FINAL FP COMPARISON"
	case MetricMultiplier:
		return "COMBINED MULTIPLIER COMPARISON"
	case MetricEfficiency:
		return "FP EFFICIENCY (FP per $1) COMPARISON"
	}
	return "COMPARISON"
}

func (m ComparisonMetric) format(fr tuning.FamilyResult) string {
	switch m {
	case MetricFinalFP:
		return fpPrinter.Sprintf("%d", int64(fr.Result.FinalFP))
	case MetricMultiplier:
		return fmt.Sprintf("%.2fx", fr.Result.CombinedMult)
	case MetricEfficiency:
		return fmt.Sprintf("%.0f", fr.Result.FPPerDollar)
	}
	return ""
}

// WriteComparisonTable renders one metric of the family comparison as a
// grid table, one row per scenario and one column per curve family.
func WriteComparisonTable(w io.Writer, comparisons []tuning.ScenarioComparison, metric ComparisonMetric) {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)

	header := []string{"Scenario", "Amount", "Time"}
	for _, family := range curve.Families() {
		header = append(header, family.DisplayName())
	}
	table.SetHeader(header)

	for _, sc := range comparisons {
		row := []string{
			sc.Scenario.Label,
			fpPrinter.Sprintf("$%d", int64(sc.Scenario.AmountUSD)),
			fmt.Sprintf("%.0fd", sc.Scenario.TimeDays),
		}
		for _, fr := range sc.ByFamily {
			row = append(row, metric.format(fr))
		}
		table.Append(row)
	}

	table.Render()
}

// WriteRankingTable renders the top-N configurations of a sweep.
func WriteRankingTable(w io.Writer, ranked []*tuning.Score, topN int) {
	if topN > len(ranked) {
		topN = len(ranked)
	}

	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{
		"Rank", "Peak", "Config", "Total", "Early", "Retention", "Whale",
		"Target FP/$", "W20 Retention", "Max Whale Eff",
	})

	for i, s := range ranked[:topN] {
		table.Append([]string{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%.1fx", s.Peak),
			s.Ceiling.Label,
			fmt.Sprintf("%.1f", s.TotalScore),
			fmt.Sprintf("%.1f", s.EarlyScore),
			fmt.Sprintf("%.1f", s.RetentionScore),
			fmt.Sprintf("%.1f", s.WhaleScore),
			fmt.Sprintf("%.0f", s.TargetFPPerDollar),
			fmt.Sprintf("%.2f", s.Week20Retention),
			fmt.Sprintf("%.2f", s.MaxWhaleEfficiency),
		})
	}

	table.Render()
}

// WritePeakSensitivityTable renders the peak trade-off table: target versus
// maximum whale as the requested peak grows.
func WritePeakSensitivityTable(w io.Writer, entries []tuning.PeakSensitivityEntry) {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Peak", "Target FP", "Target FP/$", "Whale FP", "Whale FP/$", "Whale/Target"})

	for _, e := range entries {
		table.Append([]string{
			fmt.Sprintf("%.1fx", e.Peak),
			fpPrinter.Sprintf("%d", int64(e.TargetFP)),
			fmt.Sprintf("%.0f", e.TargetFPPerDollar),
			fpPrinter.Sprintf("%d", int64(e.WhaleFP)),
			fmt.Sprintf("%.0f", e.WhaleFPPerDollar),
			fmt.Sprintf("%.2fx", e.WhaleVsTarget),
		})
	}

	table.Render()
}
