package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/kalepail/blendizzard/internal/curve"
	"github.com/kalepail/blendizzard/internal/tuning"
)

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// WriteRankingCSV exports a sweep's ranked configurations as CSV, one row
// per configuration in rank order.
func WriteRankingCSV(w io.Writer, ranked []*tuning.Score) error {
	cw := csv.NewWriter(w)

	header := []string{
		"rank", "peak", "config", "max_amount_usd", "max_time_days",
		"total_score", "early_score", "retention_score", "whale_score",
		"target_score", "flash_score",
		"early_growth_rate", "week20_retention", "max_whale_efficiency",
		"flash_whale_efficiency", "target_fp_per_dollar",
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for i, s := range ranked {
		row := []string{
			strconv.Itoa(i + 1),
			formatFloat(s.Peak),
			s.Ceiling.Label,
			formatFloat(s.Ceiling.MaxAmountUSD),
			formatFloat(s.Ceiling.MaxTimeDays),
			formatFloat(s.TotalScore),
			formatFloat(s.EarlyScore),
			formatFloat(s.RetentionScore),
			formatFloat(s.WhaleScore),
			formatFloat(s.TargetScore),
			formatFloat(s.FlashScore),
			formatFloat(s.GrowthRate),
			formatFloat(s.Week20Retention),
			formatFloat(s.MaxWhaleEfficiency),
			formatFloat(s.FlashWhaleEfficiency),
			formatFloat(s.TargetFPPerDollar),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write csv row %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteComparisonCSV exports the raw family comparison as CSV: per scenario,
// the final FP, combined multiplier, and efficiency under every family.
func WriteComparisonCSV(w io.Writer, comparisons []tuning.ScenarioComparison) error {
	cw := csv.NewWriter(w)

	header := []string{"scenario", "amount_usd", "time_days"}
	for _, family := range curve.Families() {
		key := family.Key()
		header = append(header, key+"_fp", key+"_mult", key+"_fp_per_dollar")
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, sc := range comparisons {
		row := []string{
			sc.Scenario.Label,
			formatFloat(sc.Scenario.AmountUSD),
			formatFloat(sc.Scenario.TimeDays),
		}
		for _, fr := range sc.ByFamily {
			row = append(row,
				formatFloat(fr.Result.FinalFP),
				formatFloat(fr.Result.CombinedMult),
				formatFloat(fr.Result.FPPerDollar),
			)
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write csv row for %q: %w", sc.Scenario.Label, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
