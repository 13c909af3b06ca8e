package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/kalepail/blendizzard/internal/tuning"
)

const rule = "================================================================================"

func section(w io.Writer, title string) {
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, rule)
}

// WriteAnalysisReport composes the full family comparison report: the three
// metric tables followed by the sweet-spot, whale-discouragement, and
// fairness analyses.
func WriteAnalysisReport(w io.Writer, comparisons []tuning.ScenarioComparison) error {
	section(w, "FACTION POINTS MULTIPLIER SIMULATION REPORT")
	fmt.Fprintln(w)

	for _, metric := range []ComparisonMetric{MetricFinalFP, MetricMultiplier, MetricEfficiency} {
		section(w, metric.Title())
		WriteComparisonTable(w, comparisons, metric)
		fmt.Fprintln(w)
	}

	if err := writeSweetSpotAnalysis(w, comparisons); err != nil {
		return err
	}
	if err := writeWhaleDiscouragement(w, comparisons); err != nil {
		return err
	}
	return writeFairness(w, comparisons)
}

func writeSweetSpotAnalysis(w io.Writer, comparisons []tuning.ScenarioComparison) error {
	entries, err := tuning.SweetSpotAnalysis(comparisons)
	if err != nil {
		return fmt.Errorf("sweet spot analysis failed: %w", err)
	}

	fmt.Fprintln(w, "=== SWEET SPOT ANALYSIS ($1,000 @ 35 days) ===")
	fmt.Fprintln(w)
	for _, e := range entries {
		fmt.Fprintf(w, "%-30s | FP: %12s | Mult: %5.2fx | FP/$: %6.0f\n",
			e.Family.DisplayName(),
			fpPrinter.Sprintf("%d", int64(e.FinalFP)),
			e.CombinedMult,
			e.FPPerDollar)
	}
	fmt.Fprintln(w)
	return nil
}

func verdictLine(v tuning.WhaleVerdict) string {
	switch v {
	case tuning.WhaleVerdictGood:
		return "GOOD: mega whales get <50% efficiency of target"
	case tuning.WhaleVerdictReduced:
		return "OK: mega whales get reduced efficiency"
	default:
		return "BAD: mega whales get same or better efficiency"
	}
}

func writeWhaleDiscouragement(w io.Writer, comparisons []tuning.ScenarioComparison) error {
	entries, err := tuning.WhaleDiscouragementAnalysis(comparisons)
	if err != nil {
		return fmt.Errorf("whale discouragement analysis failed: %w", err)
	}

	fmt.Fprintln(w, "=== WHALE DISCOURAGEMENT ANALYSIS ===")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Comparing FP efficiency (FP per $1) - LOWER is better for balance")
	for _, e := range entries {
		fmt.Fprintf(w, "\n%s:\n", e.Family.DisplayName())
		fmt.Fprintf(w, "  Target ($1k, 35d):       %6.0f FP/$\n", e.TargetFPPerDollar)
		fmt.Fprintf(w, "  Mega Whale ($100k, 50w): %6.0f FP/$ (%.2fx target)\n", e.WhaleFPPerDollar, e.WhaleRatio)
		fmt.Fprintf(w, "  Flash Whale ($10k, 1d):  %6.0f FP/$ (%.2fx target)\n", e.FlashFPPerDollar, e.FlashRatio)
		fmt.Fprintf(w, "  %s\n", verdictLine(e.Verdict))
	}
	fmt.Fprintln(w)
	return nil
}

func writeFairness(w io.Writer, comparisons []tuning.ScenarioComparison) error {
	entries, err := tuning.FairnessAnalysis(comparisons)
	if err != nil {
		return fmt.Errorf("fairness analysis failed: %w", err)
	}

	fmt.Fprintln(w, "=== FAIRNESS ANALYSIS ===")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "How do small, medium, and large players compare?")
	for _, e := range entries {
		fmt.Fprintf(w, "\n%s:\n", e.Family.DisplayName())
		fmt.Fprintf(w, "  Small ($100, 1w):     %6.0f FP/$\n", e.SmallFPPerDollar)
		fmt.Fprintf(w, "  Target ($1k, 5w):     %6.0f FP/$\n", e.TargetFPPerDollar)
		fmt.Fprintf(w, "  Large ($10k, 3mo):    %6.0f FP/$\n", e.LargeFPPerDollar)
		fmt.Fprintf(w, "  Efficiency Spread: %.2fx (lower is more fair)\n", e.Spread)
	}
	fmt.Fprintln(w)
	return nil
}

// WriteScoreBreakdown writes the detailed breakdown for one ranked
// configuration: component scores and the three analysis groups.
func WriteScoreBreakdown(w io.Writer, rank int, s *tuning.Score) {
	section(w, fmt.Sprintf("RANK #%d: Peak %.1fx, %s", rank, s.Peak, s.Ceiling.Label))
	fmt.Fprintf(w, "Total Score: %.1f/100\n\n", s.TotalScore)

	fmt.Fprintln(w, "Component Scores:")
	fmt.Fprintf(w, "  Early Adoption:  %.1f/100\n", s.EarlyScore)
	fmt.Fprintf(w, "  Retention:       %.1f/100\n", s.RetentionScore)
	fmt.Fprintf(w, "  Whale Control:   %.1f/100\n", s.WhaleScore)
	fmt.Fprintf(w, "  Target Hit:      %.1f/100\n", s.TargetScore)
	fmt.Fprintf(w, "  Flash Control:   %.1f/100\n", s.FlashScore)
	fmt.Fprintln(w)

	early := s.Analysis.Early
	fmt.Fprintln(w, "Early Adoption Metrics:")
	fmt.Fprintf(w, "  Week 1: %.0f FP/$ (%.1f%% of target)\n", early.Week1FPPerDollar, early.Week1VsTarget*100)
	fmt.Fprintf(w, "  Week 2: %.0f FP/$\n", early.Week2FPPerDollar)
	fmt.Fprintf(w, "  Week 3: %.0f FP/$ (%.1f%% of target)\n", early.Week3FPPerDollar, early.Week3VsTarget*100)
	fmt.Fprintf(w, "  Growth Rate: %.1f%% (week 1 to 3)\n", early.GrowthRate*100)
	fmt.Fprintln(w)

	retention := s.Analysis.Retention
	fmt.Fprintln(w, "Retention Metrics:")
	fmt.Fprintf(w, "  Target (5w): %.0f FP/$\n", retention.TargetFPPerDollar)
	fmt.Fprintf(w, "  10 Weeks:    %.0f FP/$ (%.1f%% of target)\n", retention.Week10FPPerDollar, retention.Week10VsTarget*100)
	fmt.Fprintf(w, "  20 Weeks:    %.0f FP/$ (%.1f%% of target)\n", retention.Week20FPPerDollar, retention.Week20VsTarget*100)
	if retention.HasLongMicro {
		fmt.Fprintf(w, "  Long Micro:  %.0f FP/$ (%.1f%% of target)\n", retention.LongMicroFPPerDollar, retention.LongMicroVsTarget*100)
	}
	fmt.Fprintln(w)

	whale := s.Analysis.Whale
	fmt.Fprintln(w, "Whale Control Metrics:")
	fmt.Fprintf(w, "  Target: %.0f FP/$\n", whale.TargetFPPerDollar)
	for _, obs := range whale.Whales {
		fmt.Fprintf(w, "  %-26s %.0f FP/$ (%.1f%% efficiency)\n",
			obs.Label+":", obs.FPPerDollar, obs.VsTarget*100)
	}
}

// WriteSweepFailures lists configurations that could not be scored.
func WriteSweepFailures(w io.Writer, failures []tuning.ConfigFailure) {
	if len(failures) == 0 {
		return
	}
	fmt.Fprintf(w, "%d configuration(s) could not be scored:\n", len(failures))
	for _, f := range failures {
		fmt.Fprintf(w, "  - peak %.1fx, %s: %v\n", f.Peak, f.Ceiling.Label, f.Err)
	}
	fmt.Fprintln(w, strings.Repeat("-", 40))
}
